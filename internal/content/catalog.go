package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/frontmatter"
	"github.com/justoffbyone/sitegen/internal/logfields"
)

// Catalog reads posts from a content store root directory.
type Catalog struct {
	root   string
	logger *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used for skipped directories and listing
// summaries.
func WithLogger(l *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog returns a catalog over root. The path is made absolute so post
// directories are stable regardless of the working directory.
func NewCatalog(root string, opts ...CatalogOption) (*Catalog, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "resolve content directory").
			Fatal().
			WithContext("dir", root).
			Build()
	}
	c := &Catalog{root: abs, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Root returns the absolute content store root.
func (c *Catalog) Root() string { return c.root }

// List enumerates every post in the content store, in directory listing
// (lexical) order. Directories without an index document or without a
// frontmatter block are skipped. An unreadable root is fatal.
func (c *Catalog) List(ctx context.Context) ([]Post, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "read content directory").
			Fatal().
			WithContext("dir", c.root).
			Build()
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		post, err := c.load(entry.Name())
		if err != nil {
			if errors.Is(err, frontmatter.ErrNoIndex) || errors.Is(err, frontmatter.ErrNoFrontmatter) {
				c.logger.Debug("Skipping directory", logfields.Slug(entry.Name()), logfields.Error(err))
				continue
			}
			return nil, err
		}
		posts = append(posts, post)
	}

	c.logger.Debug("Catalog enumerated", logfields.Path(c.root), logfields.Count(len(posts)))
	return posts, nil
}

// Get loads a single post by slug. Unlike List, a missing index document or
// frontmatter block is reported as an error.
func (c *Catalog) Get(slug string) (Post, error) {
	if slug == "" || strings.ContainsAny(slug, `/\`) || slug == "." || slug == ".." {
		return Post{}, foundationerrors.ValidationError(fmt.Sprintf("Invalid blog post slug: %s", slug)).Build()
	}

	post, err := c.load(slug)
	switch {
	case err == nil:
		return post, nil
	case errors.Is(err, os.ErrNotExist):
		return Post{}, foundationerrors.NotFoundError(fmt.Sprintf("Unknown blog post slug: %s", slug)).Build()
	case errors.Is(err, frontmatter.ErrNoIndex):
		return Post{}, foundationerrors.ContentError(fmt.Sprintf("No index.mdx or index.md found in %s", slug)).Build()
	case errors.Is(err, frontmatter.ErrNoFrontmatter):
		return Post{}, foundationerrors.ContentError(fmt.Sprintf("No frontmatter found in %s/%s", slug, post.IndexFile)).Build()
	default:
		return Post{}, err
	}
}

// load reads one post directory. On ErrNoFrontmatter the returned post still
// carries Slug, Dir and IndexFile.
func (c *Catalog) load(slug string) (Post, error) {
	dir := filepath.Join(c.root, slug)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Post{}, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}

	post := Post{
		Slug:       slug,
		Dir:        dir,
		IndexFile:  frontmatter.FindIndex(files),
		HasOgImage: hasPrefix(files, OgImagePrefix),
		HasBanner:  hasPrefix(files, BannerPrefix),
	}

	doc, err := frontmatter.Read(dir, files)
	if err != nil {
		return post, err
	}

	post.Fields = doc.Fields
	post.WordCount = CountWords(doc.Body)
	return post, nil
}

func hasPrefix(files []string, prefix string) bool {
	for _, f := range files {
		if strings.HasPrefix(f, prefix) {
			return true
		}
	}
	return false
}
