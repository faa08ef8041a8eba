package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyJob        = "job"
	KeyKind       = "kind"
	KeySlug       = "slug"
	KeyName       = "name"
	KeyPath       = "path"
	KeyTemplate   = "template"
	KeySize       = "size"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Job(name string) slog.Attr       { return slog.String(KeyJob, name) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Name(n string) slog.Attr         { return slog.String(KeyName, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Template(t string) slog.Attr     { return slog.String(KeyTemplate, t) }
func Size(px int) slog.Attr           { return slog.Int(KeySize, px) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
