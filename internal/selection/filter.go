package selection

import (
	"fmt"

	"github.com/justoffbyone/sitegen/internal/content"
	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/util/sets"
)

// FilterPosts selects the posts an OG image pass should generate, using
// HasOgImage as the existing-output flag.
func FilterPosts(posts []content.Post, opts Options) ([]content.Post, error) {
	return FilterPostsBy(posts, opts, func(p content.Post) bool { return p.HasOgImage })
}

// FilterPostsBy selects posts for generation.
//
// With explicit slugs every slug must exist in posts, and exactly those posts
// are returned in catalog order regardless of draft status or OnlyMissing.
// Without slugs, drafts are dropped and, when OnlyMissing is set, so are posts
// for which hasOutput reports true.
func FilterPostsBy(posts []content.Post, opts Options, hasOutput func(content.Post) bool) ([]content.Post, error) {
	if len(opts.Slugs) > 0 {
		known := sets.New[string]()
		for _, p := range posts {
			known.Add(p.Slug)
		}
		for _, slug := range opts.Slugs {
			if !known.Has(slug) {
				return nil, foundationerrors.NotFoundError(
					fmt.Sprintf("Unknown blog post slug: %s", slug),
				).WithContext("slug", slug).Build()
			}
		}

		wanted := sets.New(opts.Slugs...)
		selected := make([]content.Post, 0, len(opts.Slugs))
		for _, p := range posts {
			if wanted.Has(p.Slug) {
				selected = append(selected, p)
			}
		}
		return selected, nil
	}

	selected := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		if p.Draft() {
			continue
		}
		if opts.OnlyMissing && hasOutput(p) {
			continue
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// FilterStatic applies OnlyMissing to static pages. Pages are not affected by
// slugs or drafts; the caller decides whether static pages run at all.
func FilterStatic[T any](pages []T, opts Options, exists func(T) bool) []T {
	selected := make([]T, 0, len(pages))
	for _, page := range pages {
		if opts.OnlyMissing && exists(page) {
			continue
		}
		selected = append(selected, page)
	}
	return selected
}
