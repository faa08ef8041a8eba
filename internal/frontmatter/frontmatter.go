package frontmatter

import (
	"bytes"
	"errors"
	"strings"
)

// Delimiter is the line that opens and closes a frontmatter block.
const Delimiter = "---"

// Style captures formatting details needed for stable rewriting.
type Style struct {
	Newline string
}

// ErrMissingClosingDelimiter indicates the document started with a frontmatter
// delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

// Split separates the `---` delimited frontmatter block from the document body.
//
// The opening delimiter must be the first line (trailing spaces allowed). The
// block ends at the next line made of three or more dashes, again allowing
// trailing spaces; it may be the last line of the file. If the document does
// not start with a delimiter, had is false and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)
	nl := []byte(style.Newline)

	firstLineEnd := bytes.Index(content, nl)
	if firstLineEnd < 0 || strings.TrimRight(string(content[:firstLineEnd]), " \t") != Delimiter {
		return nil, content, false, style, nil
	}

	rest := content[firstLineEnd+len(nl):]
	for pos := 0; pos <= len(rest); {
		lineEnd := bytes.Index(rest[pos:], nl)
		next := len(rest)
		if lineEnd < 0 {
			lineEnd = len(rest)
		} else {
			lineEnd += pos
			next = lineEnd + len(nl)
		}
		if isClosing(rest[pos:lineEnd]) {
			return rest[:pos], rest[next:], true, style, nil
		}
		if lineEnd == len(rest) {
			break
		}
		pos = next
	}
	return nil, content, false, style, ErrMissingClosingDelimiter
}

// isClosing reports whether line is a closing delimiter: at least three
// dashes and nothing else but trailing blanks.
func isClosing(line []byte) bool {
	trimmed := strings.TrimRight(string(line), " \t")
	return len(trimmed) >= len(Delimiter) && strings.Trim(trimmed, "-") == ""
}

// Join reassembles a document from raw frontmatter and body.
//
// If had is false, Join returns body as-is.
func Join(frontmatter []byte, body []byte, had bool, style Style) []byte {
	if !had {
		return body
	}

	nl := style.Newline
	if nl == "" {
		nl = "\n"
	}

	open := []byte(Delimiter + nl)
	closing := []byte(Delimiter + nl)

	out := make([]byte, 0, len(open)+len(frontmatter)+len(closing)+len(body))
	out = append(out, open...)
	out = append(out, frontmatter...)
	if len(frontmatter) > 0 && !bytes.HasSuffix(frontmatter, []byte(nl)) {
		out = append(out, nl...)
	}
	out = append(out, closing...)
	out = append(out, body...)
	return out
}

// ParseFlat parses a frontmatter block (without delimiters) into a flat
// string mapping.
//
// Each line is split at its first colon; key and value are trimmed and a
// matching pair of surrounding single or double quotes is removed from the
// value. Lines without a colon are ignored. Values are never type-coerced.
func ParseFlat(block []byte) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(block), "\n") {
		line = strings.TrimSuffix(line, "\r")
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		key := strings.TrimSpace(line[:colon])
		if key == "" {
			continue
		}
		fields[key] = Unquote(strings.TrimSpace(line[colon+1:]))
	}
	return fields
}

// Unquote strips one matching pair of surrounding single or double quotes.
// Inside single quotes a doubled quote ('') stands for one quote.
func Unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	switch {
	case first == '\'' && last == '\'':
		return strings.ReplaceAll(value[1:len(value)-1], "''", "'")
	case first == '"' && last == '"':
		return value[1 : len(value)-1]
	default:
		return value
	}
}

func detectStyle(content []byte) Style {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return Style{Newline: "\r\n"}
	}
	return Style{Newline: "\n"}
}
