// Package errors provides the classified error primitives used across sitegen.
//
// Every failure that reaches the command line is a ClassifiedError: it carries a
// category (config, validation, not_found, render and others), a
// severity and optional structured context. The CLI adapter maps categories to
// process exit codes.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryRender, "render failed").
//		WithContext("slug", post.Slug).
//		Build()
//
// Error() returns the bare message (followed by ": cause" when wrapped) so that
// validation messages reach the user verbatim.
package errors
