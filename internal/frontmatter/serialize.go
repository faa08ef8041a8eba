package frontmatter

import (
	"strings"
)

// Field is one ordered frontmatter entry. Value is written verbatim, so
// callers quote it themselves where needed.
type Field struct {
	Key   string
	Value string
}

// Quote wraps s in single quotes, doubling embedded single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteList renders values as a flow sequence of single-quoted strings.
func QuoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Serialize renders fields as `key: value` lines (without delimiters) in the
// given order. The returned bytes use the newline style provided by Style
// (defaults to \n).
func Serialize(fields []Field, style Style) []byte {
	nl := style.Newline
	if nl == "" {
		nl = "\n"
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString(nl)
	}
	return []byte(b.String())
}
