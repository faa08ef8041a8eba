// Package content enumerates the blog's content store: one directory per post,
// each holding an index document with a frontmatter block and the post's assets.
package content

import (
	"strings"
	"time"

	"github.com/justoffbyone/sitegen/internal/frontmatter"
)

// Output filename prefixes used to detect images that were already generated.
const (
	OgImagePrefix = "og-image."
	BannerPrefix  = "banner."
)

// DefaultTitle is used when a post has no title field.
const DefaultTitle = "Untitled"

// Post is one entry of the content store. Posts are built fresh on every
// enumeration and never mutated afterwards.
type Post struct {
	Slug       string
	Dir        string
	IndexFile  string
	HasOgImage bool
	HasBanner  bool
	Fields     map[string]string
	WordCount  int
}

// Title returns the post title, defaulting to DefaultTitle.
func (p Post) Title() string {
	if t := strings.TrimSpace(p.Fields["title"]); t != "" {
		return t
	}
	return DefaultTitle
}

// Description returns the post description, possibly empty.
func (p Post) Description() string {
	return strings.TrimSpace(p.Fields["description"])
}

// Draft reports whether the post is marked `draft: true`.
func (p Post) Draft() bool {
	return p.Fields["draft"] == "true"
}

// Tags decodes the string-encoded tags field.
func (p Post) Tags() []string {
	return frontmatter.ParseTags(p.Fields["tags"])
}

// Date parses the date field. ok is false when the field is absent or not in
// a recognised layout.
func (p Post) Date() (t time.Time, ok bool) {
	return ParseDate(p.Fields["date"])
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000Z",
}

// ParseDate parses a frontmatter date in any of the layouts the blog uses.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
