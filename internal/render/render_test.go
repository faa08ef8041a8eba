package render

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func sampleProps() Props {
	return Props{
		Title:       "Hiring Pipelines Are Funnels, Not Pipes",
		Description: "Why the conversion rate at every stage matters more than the number of candidates you start with.",
		Date:        time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"hiring", "management", "math", "extra"},
		ReadingTime: "6 min read",
		Brand:       Brand{Title: "Off by One", Subtitle: "by Can Duruk", URL: "https://justoffbyone.com"},
	}
}

func assertColor(t *testing.T, want color.RGBA, got color.Color) {
	t.Helper()
	r, g, b, a := got.RGBA()
	assert.Equal(t, want, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})
}

func TestRenderer_Templates(t *testing.T) {
	r := newTestRenderer(t)
	assert.Equal(t, []string{"default-og", "favicon", "hero", "og"}, r.Templates())
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.Render("poster", sampleProps(), CardSize)
	require.Error(t, err)
	assert.Equal(t, "unknown template: poster", err.Error())
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryRender))
}

func TestRenderer_InvalidSize(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.Render("og", sampleProps(), image.Pt(0, 630))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid canvas size")
}

func TestOGTemplate(t *testing.T) {
	r := newTestRenderer(t)

	img, err := r.Render("og", sampleProps(), CardSize)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, CardWidth, CardHeight), img.Bounds())
	assertColor(t, flexokiBlack, img.At(5, 5))
	assertColor(t, flexokiBlack, img.At(CardWidth-5, CardHeight-5))
}

func TestOGTemplate_MinimalProps(t *testing.T) {
	r := newTestRenderer(t)

	img, err := r.Render("og", Props{Title: "Untitled"}, CardSize)
	require.NoError(t, err)
	assert.Equal(t, CardSize, img.Bounds().Size())
}

func TestHeroTemplate(t *testing.T) {
	r := newTestRenderer(t)

	img, err := r.Render("hero", sampleProps(), CardSize)
	require.NoError(t, err)
	assertColor(t, heroGradientFrom, img.At(0, 0))
	assertColor(t, heroGradientTo, img.At(CardWidth-1, CardHeight-1))
}

func TestHeroMeta(t *testing.T) {
	assert.Equal(t, "March 4, 2025 · 6 min read", heroMeta(sampleProps()))
	assert.Equal(t, "", heroMeta(Props{}))
	assert.Equal(t, "2 min read", heroMeta(Props{ReadingTime: "2 min read"}))
}

func TestDefaultOGTemplate(t *testing.T) {
	r := newTestRenderer(t)

	img, err := r.Render("default-og", Props{Brand: sampleProps().Brand}, CardSize)
	require.NoError(t, err)
	assertColor(t, flexokiBlack, img.At(5, 5))

	// Logo box sits above center; sample inside its top-left quadrant,
	// clear of both the rounded corner and the glyphs.
	total := 200 + 48 + 77 + 16 + 43
	top := (CardHeight - total) / 2
	assertColor(t, flexokiRed, img.At(CardWidth/2-60, top+20))
}

func TestFaviconTemplate(t *testing.T) {
	r := newTestRenderer(t)

	for _, size := range []int{16, 32, 180, 512} {
		img, err := r.Render("favicon", Props{}, image.Pt(size, size))
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, image.Pt(size, size), img.Bounds().Size())

		// Corners are transparent, the top edge is red.
		_, _, _, a := img.At(0, 0).RGBA()
		assert.Zero(t, a, "size %d", size)
		assertColor(t, flexokiRed, img.At(size/2, 1))
	}
}

func TestFaviconTemplate_SVG(t *testing.T) {
	r := newTestRenderer(t)

	svg, err := r.RenderSVG("favicon", Props{}, image.Pt(64, 64))
	require.NoError(t, err)
	out := string(svg)
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, `viewBox="0 0 64 64"`)
	assert.Contains(t, out, `rx="12.8"`)
	assert.Contains(t, out, `fill="#AF3029"`)
	assert.Contains(t, out, `fill="#FFFCF0"`)
	assert.Contains(t, out, `font-size="35"`)
	assert.Contains(t, out, ">-1</text>")
}

func TestRenderer_RenderSVGErrors(t *testing.T) {
	r := newTestRenderer(t)

	_, err := r.RenderSVG("og", sampleProps(), CardSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no vector form")
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryRender))

	_, err = r.RenderSVG("nope", Props{}, image.Pt(64, 64))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template: nope")

	_, err = r.RenderSVG("favicon", Props{}, image.Pt(0, 64))
	require.Error(t, err)
}

func TestBrandHost(t *testing.T) {
	assert.Equal(t, "justoffbyone.com", Brand{URL: "https://justoffbyone.com/"}.Host())
	assert.Equal(t, "example.org/blog", Brand{URL: "http://example.org/blog"}.Host())
	assert.Equal(t, "", Brand{}.Host())
}
