// Package scaffold creates new blog posts from a short interactive prompt.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/frontmatter"
)

// IndexFile is the document written for every new post.
const IndexFile = "index.mdx"

const starterBody = `
import Callout from '@/components/Callout.astro'

## Introduction

Your content here...
`

var (
	slugInvalid   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparator = regexp.MustCompile(`[\s_]+`)
)

// Post holds the answers collected for a new post.
type Post struct {
	Title       string
	Description string
	Date        time.Time
	Tags        []string
	Author      string
	Draft       bool
}

// GenerateSlug derives a directory name from a title: lowercased, stripped
// of everything but word characters, whitespace and hyphens, with runs of
// whitespace or underscores turned into a hyphen and outer hyphens removed.
func GenerateSlug(title string) string {
	s := strings.TrimSpace(cases.Lower(language.English).String(title))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSeparator.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// RenderPost returns the complete index document for p.
func RenderPost(p Post) []byte {
	fields := []frontmatter.Field{
		{Key: "title", Value: frontmatter.Quote(p.Title)},
		{Key: "description", Value: frontmatter.Quote(p.Description)},
		{Key: "date", Value: p.Date.Format("2006-01-02")},
	}
	if len(p.Tags) > 0 {
		fields = append(fields, frontmatter.Field{Key: "tags", Value: frontmatter.QuoteList(p.Tags)})
	}
	fields = append(fields,
		frontmatter.Field{Key: "ogImage", Value: frontmatter.Quote("./og-image.png")},
		frontmatter.Field{Key: "authors", Value: frontmatter.QuoteList([]string{p.Author})},
	)
	if p.Draft {
		fields = append(fields, frontmatter.Field{Key: "draft", Value: "true"})
	}

	block := frontmatter.Serialize(fields, frontmatter.Style{})
	return frontmatter.Join(block, []byte(starterBody), true, frontmatter.Style{})
}

// Exists reports whether contentDir already has a post directory named slug.
func Exists(contentDir, slug string) bool {
	info, err := os.Stat(filepath.Join(contentDir, slug))
	return err == nil && info.IsDir()
}

// Create writes the post into contentDir/slug/index.mdx and returns the file
// path. An existing post directory is never touched.
func Create(contentDir, slug string, p Post) (string, error) {
	if slug == "" {
		return "", foundationerrors.ValidationError("cannot create a post with an empty slug").Build()
	}
	if Exists(contentDir, slug) {
		return "", foundationerrors.ExistsError(fmt.Sprintf("A post with slug %q already exists", slug)).
			WithContext("slug", slug).
			Build()
	}

	dir := filepath.Join(contentDir, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "Failed to create post").
			WithContext("dir", dir).
			Build()
	}
	path := filepath.Join(dir, IndexFile)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", foundationerrors.ExistsError(fmt.Sprintf("%s already exists", path)).Build()
		}
		return "", foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "Failed to create post").Build()
	}
	if _, err := f.Write(RenderPost(p)); err != nil {
		_ = f.Close()
		return "", foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "Failed to create post").Build()
	}
	if err := f.Close(); err != nil {
		return "", foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "Failed to create post").Build()
	}
	return path, nil
}
