// Package foundation holds small generic types shared across packages.
package foundation

// Result is the outcome of one unit of work: a value or an error, never both.
// The driver records one per work item so a batch keeps going after failures.
type Result[T any, E error] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a successful value.
func Ok[T any, E error](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err wraps a failure.
func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the work succeeded.
func (r Result[T, E]) IsOk() bool { return r.ok }

// Get returns the value and error in the usual Go shape. Exactly one of them
// is meaningful.
func (r Result[T, E]) Get() (T, E) {
	return r.value, r.err
}

// UnwrapErr returns the failure. It panics on a successful result.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("foundation: UnwrapErr on Ok result")
	}
	return r.err
}
