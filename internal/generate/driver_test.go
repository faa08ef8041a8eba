package generate

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justoffbyone/sitegen/internal/metrics"
	"github.com/justoffbyone/sitegen/internal/render"
	"github.com/justoffbyone/sitegen/internal/selection"
)

// stubRenderer returns a small canvas, or fails for titles listed in fail,
// or panics for titles listed in panics.
type stubRenderer struct {
	fail   map[string]bool
	panics map[string]bool
	calls  []string
}

func (s *stubRenderer) Render(name string, p render.Props, size image.Point) (*image.RGBA, error) {
	s.calls = append(s.calls, p.Title)
	if s.panics[p.Title] {
		panic("boom")
	}
	if s.fail[p.Title] {
		return nil, errors.New("renderer exploded")
	}
	return image.NewRGBA(image.Rect(0, 0, size.X, size.Y)), nil
}

type countingRecorder struct {
	metrics.NoopRecorder
	results  map[metrics.ResultLabel]int
	outcomes []metrics.RunOutcomeLabel
}

func (c *countingRecorder) IncItemResult(_, _ string, r metrics.ResultLabel) {
	if c.results == nil {
		c.results = map[metrics.ResultLabel]int{}
	}
	c.results[r]++
}

func (c *countingRecorder) IncRunOutcome(_ string, o metrics.RunOutcomeLabel) {
	c.outcomes = append(c.outcomes, o)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func item(dir, title string) WorkItem {
	return WorkItem{
		Kind:     KindPost,
		Name:     strings.ToLower(title),
		Template: "og",
		Props:    render.Props{Title: title},
		Size:     image.Pt(8, 4),
		Output:   filepath.Join(dir, strings.ToLower(title), "og-image.png"),
	}
}

func TestDriver_IsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	stub := &stubRenderer{fail: map[string]bool{"Two": true}, panics: map[string]bool{"Three": true}}
	rec := &countingRecorder{}
	var progress bytes.Buffer
	d := NewDriver(stub, WithRecorder(rec), WithLogger(quietLogger()), WithProgress(&progress))

	items := []WorkItem{item(dir, "One"), item(dir, "Two"), item(dir, "Three"), item(dir, "Four")}
	report := d.Run(context.Background(), "og", items)

	assert.Equal(t, []string{"One", "Two", "Three", "Four"}, stub.calls)
	require.Len(t, report.Items, 4)
	assert.Len(t, report.Succeeded(), 2)
	require.Len(t, report.Failed(), 2)
	artifacts := report.Artifacts()
	require.Len(t, artifacts, 2)
	assert.Equal(t, filepath.Join(dir, "one", "og-image.png"), artifacts[0].Path)
	assert.Positive(t, artifacts[1].Bytes)
	assert.Equal(t, metrics.RunPartial, report.Outcome())
	assert.NotEmpty(t, report.RunID)

	failed := report.Failed()[0]
	assert.Equal(t, "two", failed.Item.Name)
	assert.Contains(t, failed.Result.UnwrapErr().Error(), "Failed to generate og image for two")
	assert.Contains(t, failed.Result.UnwrapErr().Error(), "renderer exploded")
	assert.Contains(t, report.Failed()[1].Result.UnwrapErr().Error(), "panicked: boom")

	for _, name := range []string{"one", "four"} {
		data, err := os.ReadFile(filepath.Join(dir, name, "og-image.png"))
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Width)
	}
	assert.NoFileExists(t, filepath.Join(dir, "two", "og-image.png"))

	assert.Equal(t, map[metrics.ResultLabel]int{metrics.ResultSuccess: 2, metrics.ResultFailed: 2}, rec.results)
	assert.Equal(t, []metrics.RunOutcomeLabel{metrics.RunPartial}, rec.outcomes)

	out := progress.String()
	assert.Contains(t, out, "Generating image for: One")
	assert.Contains(t, out, "✓ Generated: "+filepath.Join(dir, "one", "og-image.png"))
	assert.Contains(t, out, "✗ Failed to generate og image for two")
}

func TestDriver_WriteFailure(t *testing.T) {
	d := NewDriver(&stubRenderer{}, WithLogger(quietLogger()), WithWriter(func(string, []byte) error {
		return errors.New("disk full")
	}))

	report := d.Run(context.Background(), "hero", []WorkItem{item(t.TempDir(), "Only")})
	require.Len(t, report.Failed(), 1)
	assert.Contains(t, report.Failed()[0].Result.UnwrapErr().Error(), "disk full")
	assert.Equal(t, metrics.RunFailed, report.Outcome())
}

func TestDriver_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stub := &stubRenderer{}
	calls := 0
	d := NewDriver(stub, WithLogger(quietLogger()), WithWriter(func(string, []byte) error {
		calls++
		cancel()
		return nil
	}))

	dir := t.TempDir()
	report := d.Run(ctx, "og", []WorkItem{item(dir, "A"), item(dir, "B"), item(dir, "C")})

	assert.Equal(t, 1, calls)
	assert.True(t, report.Canceled)
	assert.Equal(t, metrics.RunCanceled, report.Outcome())
	require.Len(t, report.Items, 3)
	assert.True(t, report.Items[0].Result.IsOk())
	assert.ErrorIs(t, report.Items[1].Result.UnwrapErr(), context.Canceled)
	assert.ErrorIs(t, report.Items[2].Result.UnwrapErr(), context.Canceled)
}

func TestDriver_EmptyRun(t *testing.T) {
	report := NewDriver(&stubRenderer{}, WithLogger(quietLogger())).Run(context.Background(), "og", nil)
	assert.Empty(t, report.Items)
	assert.Equal(t, metrics.RunEmpty, report.Outcome())
}

func TestDriver_WritesFaviconICO(t *testing.T) {
	cfg := testConfig(t)
	r, err := render.NewRenderer()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	items := FaviconItems(cfg)
	report := NewDriver(r, WithLogger(quietLogger())).Run(context.Background(), "favicon", items)
	require.Empty(t, report.Failed())

	data, err := os.ReadFile(cfg.PublicPath(FaviconICO))
	require.NoError(t, err)
	require.Greater(t, len(data), 6)
	assert.Equal(t, []byte{0, 0, 1, 0, 3, 0}, data[:6])

	for _, fav := range cfg.Favicons {
		assert.FileExists(t, cfg.PublicPath(fav.File))
	}
}

func TestDriver_WritesSVGLogo(t *testing.T) {
	cfg := testConfig(t)
	r, err := render.NewRenderer()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	report := NewDriver(r, WithLogger(quietLogger())).Run(context.Background(), "logo", []WorkItem{LogoItem(cfg)})
	require.Empty(t, report.Failed())

	data, err := os.ReadFile(cfg.PublicPath(LogoOutput))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<svg ")))
	assert.Contains(t, string(data), `width="64"`)
}

func TestDriver_SVGNeedsVectorRenderer(t *testing.T) {
	cfg := testConfig(t)
	report := NewDriver(&stubRenderer{}, WithLogger(quietLogger())).Run(context.Background(), "logo", []WorkItem{LogoItem(cfg)})

	require.Len(t, report.Failed(), 1)
	assert.Contains(t, report.Failed()[0].Result.UnwrapErr().Error(), "no vector output")
	assert.NoFileExists(t, cfg.PublicPath(LogoOutput))
}

func writePost(t *testing.T, root, slug, frontmatter string) {
	t.Helper()
	dir := filepath.Join(root, slug)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("---\n"+frontmatter+"\n---\n\nSome body text here.\n"), 0o644))
}

func TestPipeline_SecondMissingOnlyRunWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	writePost(t, cfg.ContentDir, "alpha", "title: Alpha")
	writePost(t, cfg.ContentDir, "beta", "title: 'Beta'\ndescription: Second")
	writePost(t, cfg.ContentDir, "gamma", "title: Gamma\ndraft: true")

	var writes []string
	writer := func(path string, data []byte) error {
		writes = append(writes, path)
		return os.WriteFile(path, data, 0o644)
	}
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.PublicDir, "static", "og"), 0o755))

	p, err := NewPipeline(cfg, NewDriver(&stubRenderer{}, WithLogger(quietLogger()), WithWriter(writer)), quietLogger())
	require.NoError(t, err)

	first, err := p.RunJob(context.Background(), OGJob, selection.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "about", "subscribe"}, names(itemsOf(first)))
	assert.Len(t, writes, 4)

	writes = nil
	second, err := p.RunJob(context.Background(), OGJob, selection.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, second.Items)
	assert.Empty(t, writes)
	assert.Equal(t, metrics.RunEmpty, second.Outcome())

	// Explicit selection regenerates regardless.
	opts := selection.DefaultOptions()
	opts.Slugs = []string{"gamma", "alpha"}
	opts.IncludeStatic = false
	third, err := p.RunJob(context.Background(), OGJob, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "gamma"}, names(itemsOf(third)))
}

func TestPipeline_UnknownSlugAbortsBeforeWork(t *testing.T) {
	cfg := testConfig(t)
	writePost(t, cfg.ContentDir, "alpha", "title: Alpha")

	stub := &stubRenderer{}
	p, err := NewPipeline(cfg, NewDriver(stub, WithLogger(quietLogger())), quietLogger())
	require.NoError(t, err)

	opts := selection.DefaultOptions()
	opts.Slugs = []string{"alpha", "nope"}
	_, err = p.RunJob(context.Background(), OGJob, opts)
	require.Error(t, err)
	assert.Equal(t, "Unknown blog post slug: nope", err.Error())
	assert.Empty(t, stub.calls)
}

func itemsOf(r *Report) []WorkItem {
	out := make([]WorkItem, 0, len(r.Items))
	for _, res := range r.Items {
		out = append(out, res.Item)
	}
	return out
}

func TestPipeline_GenerateMissing(t *testing.T) {
	cfg := testConfig(t)
	writePost(t, cfg.ContentDir, "alpha", "title: Alpha")
	writePost(t, cfg.ContentDir, "draft", "title: Draft\ndraft: true")

	stub := &stubRenderer{}
	p, err := NewPipeline(cfg, NewDriver(stub, WithLogger(quietLogger())), quietLogger())
	require.NoError(t, err)
	ctx := context.Background()

	reports, err := p.GenerateMissing(ctx, "alpha", Jobs())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "og", reports[0].Job)
	assert.Equal(t, "hero", reports[1].Job)
	assert.FileExists(t, filepath.Join(cfg.ContentDir, "alpha", "og-image.png"))
	assert.FileExists(t, filepath.Join(cfg.ContentDir, "alpha", "banner.png"))

	// Both images now exist, so nothing is rendered again.
	stub.calls = nil
	reports, err = p.GenerateMissing(ctx, "alpha", Jobs())
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.Empty(t, stub.calls)

	reports, err = p.GenerateMissing(ctx, "draft", Jobs())
	require.NoError(t, err)
	assert.Empty(t, reports)

	// Not yet written or already removed.
	reports, err = p.GenerateMissing(ctx, "ghost", Jobs())
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.Empty(t, stub.calls)
}
