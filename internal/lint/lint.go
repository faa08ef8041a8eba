// Package lint checks post bodies for internal links that will not match the
// site's directory-style URLs.
package lint

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/justoffbyone/sitegen/internal/content"
	"github.com/justoffbyone/sitegen/internal/frontmatter"
	"github.com/justoffbyone/sitegen/internal/logfields"
	"github.com/justoffbyone/sitegen/internal/urlpath"
)

// PostsPrefix marks links to other posts.
const PostsPrefix = "/posts/"

// Issue is one internal link missing its trailing slash.
type Issue struct {
	File string
	Line int
	Href string
	Want string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s:%d %q should be %q", i.File, i.Line, i.Href, i.Want)
}

// Check scans the index document of every post in the catalog. Issues are
// ordered by post, then by position in the file.
func Check(ctx context.Context, catalog *content.Catalog, logger *slog.Logger) ([]Issue, error) {
	if logger == nil {
		logger = slog.Default()
	}
	posts, err := catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, post := range posts {
		if err := ctx.Err(); err != nil {
			return issues, err
		}
		path := filepath.Join(post.Dir, post.IndexFile)
		// #nosec G304 -- path comes from the catalog walk, not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return issues, fmt.Errorf("read %s: %w", path, err)
		}
		found := CheckDocument(path, data)
		logger.Debug("Checked post links", logfields.Slug(post.Slug), logfields.Count(len(found)))
		issues = append(issues, found...)
	}
	return issues, nil
}

// CheckDocument reports the /posts/ links in a document whose href differs
// from its trailing-slash form. Line numbers refer to the whole file,
// frontmatter included. Links inside code are not links and are ignored.
func CheckDocument(file string, data []byte) []Issue {
	body := data
	lineOffset := 0
	if _, b, had, _, err := frontmatter.Split(data); err == nil && had {
		body = b
		lineOffset = bytes.Count(data[:len(data)-len(body)], []byte("\n"))
	}

	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var issues []Issue
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		link, ok := n.(*gmast.Link)
		if !ok {
			return gmast.WalkContinue, nil
		}
		href := string(link.Destination)
		if !strings.HasPrefix(href, PostsPrefix) {
			return gmast.WalkContinue, nil
		}
		if want := urlpath.EnsureTrailingSlash(href); want != href {
			issues = append(issues, Issue{
				File: file,
				Line: lineOffset + lineOf(body, offsetOf(link)),
				Href: href,
				Want: want,
			})
		}
		return gmast.WalkContinue, nil
	})
	return issues
}

// offsetOf returns the byte offset of the first text inside n, or of the
// enclosing block when n has no text.
func offsetOf(n gmast.Node) int {
	offset := -1
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if t, ok := c.(*gmast.Text); ok && entering {
			offset = t.Segment.Start
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	if offset >= 0 {
		return offset
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == gmast.TypeBlock && p.Lines().Len() > 0 {
			return p.Lines().At(0).Start
		}
	}
	return 0
}

func lineOf(body []byte, offset int) int {
	offset = min(max(offset, 0), len(body))
	return 1 + bytes.Count(body[:offset], []byte("\n"))
}
