package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justoffbyone/sitegen/internal/content"
	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
)

func catalogFixture() []content.Post {
	return []content.Post{
		{Slug: "first-post", Fields: map[string]string{}},
		{Slug: "draft-post", Fields: map[string]string{"draft": "true"}},
		{Slug: "complete-post", HasOgImage: true, Fields: map[string]string{}},
	}
}

func slugsOf(posts []content.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func TestFilterPosts(t *testing.T) {
	tests := []struct {
		name string
		opts func(*Options)
		want []string
	}{
		{name: "defaults skip drafts and generated", opts: func(*Options) {}, want: []string{"first-post"}},
		{name: "all posts keeps generated", opts: func(o *Options) { o.OnlyMissing = false }, want: []string{"first-post", "complete-post"}},
		{name: "explicit slug includes draft", opts: func(o *Options) { o.Slugs = []string{"draft-post"} }, want: []string{"draft-post"}},
		{name: "explicit slug includes generated", opts: func(o *Options) { o.Slugs = []string{"complete-post"} }, want: []string{"complete-post"}},
		{
			name: "explicit slugs keep catalog order",
			opts: func(o *Options) { o.Slugs = []string{"complete-post", "first-post"} },
			want: []string{"first-post", "complete-post"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.opts(&opts)
			got, err := FilterPosts(catalogFixture(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slugsOf(got))
		})
	}
}

func TestFilterPosts_UnknownSlug(t *testing.T) {
	opts := DefaultOptions()
	opts.Slugs = []string{"first-post", "missing", "also-missing"}

	got, err := FilterPosts(catalogFixture(), opts)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, "Unknown blog post slug: missing", err.Error())
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryNotFound))
}

func TestFilterPostsBy_UsesPredicate(t *testing.T) {
	posts := []content.Post{
		{Slug: "has-og", HasOgImage: true, Fields: map[string]string{}},
		{Slug: "has-banner", HasBanner: true, Fields: map[string]string{}},
	}

	got, err := FilterPostsBy(posts, DefaultOptions(), func(p content.Post) bool { return p.HasBanner })
	require.NoError(t, err)
	assert.Equal(t, []string{"has-og"}, slugsOf(got))
}

func TestFilterPosts_EmptyCatalog(t *testing.T) {
	got, err := FilterPosts(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterStatic(t *testing.T) {
	pages := []string{"about", "subscribe"}
	exists := func(p string) bool { return p == "about" }

	assert.Equal(t, []string{"subscribe"}, FilterStatic(pages, DefaultOptions(), exists))

	opts := DefaultOptions()
	opts.OnlyMissing = false
	assert.Equal(t, pages, FilterStatic(pages, opts, exists))
}
