package generate

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/justoffbyone/sitegen/internal/foundation"
	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/imaging"
	"github.com/justoffbyone/sitegen/internal/logfields"
	"github.com/justoffbyone/sitegen/internal/metrics"
	"github.com/justoffbyone/sitegen/internal/render"
)

// Renderer draws a named template. *render.Renderer satisfies it.
type Renderer interface {
	Render(name string, p render.Props, size image.Point) (*image.RGBA, error)
}

// VectorRenderer emits a named template as SVG. *render.Renderer satisfies it.
type VectorRenderer interface {
	RenderSVG(name string, p render.Props, size image.Point) ([]byte, error)
}

// Driver renders, encodes and writes work items one at a time.
type Driver struct {
	renderer Renderer
	recorder metrics.Recorder
	logger   *slog.Logger
	progress io.Writer
	write    func(path string, data []byte) error
	now      func() time.Time
	newRunID func() string
}

// Option configures a Driver.
type Option func(*Driver)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(d *Driver) {
		if r != nil {
			d.recorder = r
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithProgress sets where human-readable progress lines go.
func WithProgress(w io.Writer) Option {
	return func(d *Driver) {
		if w != nil {
			d.progress = w
		}
	}
}

// WithWriter replaces the file writer.
func WithWriter(write func(path string, data []byte) error) Option {
	return func(d *Driver) {
		if write != nil {
			d.write = write
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDriver returns a driver that writes files atomically, records no
// metrics and logs through slog.Default.
func NewDriver(r Renderer, opts ...Option) *Driver {
	d := &Driver{
		renderer: r,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		progress: io.Discard,
		write:    imaging.WriteFile,
		now:      time.Now,
		newRunID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run processes items in order. It never returns an error: each item's
// outcome is in the report.
func (d *Driver) Run(ctx context.Context, job string, items []WorkItem) *Report {
	report := &Report{
		RunID: d.newRunID(),
		Job:   job,
		Start: d.now(),
		Items: make([]ItemResult, 0, len(items)),
	}
	log := d.logger.With(logfields.RunID(report.RunID), logfields.Job(job))
	log.Info("Generation started", logfields.Count(len(items)))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			report.Canceled = true
			for _, rest := range items[i:] {
				report.Items = append(report.Items, ItemResult{Item: rest, Result: foundation.Err[Artifact](err)})
				d.recorder.IncItemResult(job, string(rest.Kind), metrics.ResultCanceled)
			}
			log.Warn("Generation canceled", logfields.Count(len(items)-i), logfields.Error(err))
			break
		}

		fmt.Fprintf(d.progress, "Generating image for: %s\n", displayName(item))
		start := d.now()
		artifact, err := d.generate(item)
		elapsed := d.now().Sub(start)

		d.recorder.ObserveItemDuration(job, string(item.Kind), elapsed)
		itemLog := log.With(logfields.Kind(string(item.Kind)), logfields.Name(item.Name))
		if err != nil {
			err = foundationerrors.WrapError(err, foundationerrors.CategoryRender,
				fmt.Sprintf("Failed to generate %s image for %s", job, item.Name)).
				WithContext("output", item.Output).
				Build()
			report.Items = append(report.Items, ItemResult{Item: item, Result: foundation.Err[Artifact](err)})
			d.recorder.IncItemResult(job, string(item.Kind), metrics.ResultFailed)
			itemLog.Error("Image generation failed", logfields.Path(item.Output), logfields.Error(err))
			fmt.Fprintf(d.progress, "✗ %v\n", err)
			continue
		}

		artifact.Duration = elapsed
		report.Items = append(report.Items, ItemResult{Item: item, Result: foundation.Ok[Artifact, error](artifact)})
		d.recorder.IncItemResult(job, string(item.Kind), metrics.ResultSuccess)
		itemLog.Info("Image generated",
			logfields.Path(artifact.Path),
			logfields.Size(artifact.Bytes),
			logfields.DurationMS(float64(elapsed.Microseconds())/1000))
		fmt.Fprintf(d.progress, "✓ Generated: %s\n", artifact.Path)
	}

	report.End = d.now()
	d.recorder.ObserveRunDuration(job, report.Duration())
	d.recorder.IncRunOutcome(job, report.Outcome())
	d.recorder.SetLastRun(job, report.End)
	log.Info("Generation finished",
		slog.String("outcome", string(report.Outcome())),
		slog.Int("succeeded", len(report.Succeeded())),
		slog.Int("failed", len(report.Failed())),
		logfields.DurationMS(float64(report.Duration().Microseconds())/1000))
	return report
}

// generate runs one item. A panicking template is reported as an error.
func (d *Driver) generate(item WorkItem) (artifact Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = foundationerrors.InternalError(fmt.Sprintf("template %s panicked: %v", item.Template, r)).
				WithContext("template", item.Template).
				Build()
		}
	}()

	if item.Encoding.Format == imaging.SVG {
		vr, ok := d.renderer.(VectorRenderer)
		if !ok {
			return Artifact{}, foundationerrors.RenderError("renderer has no vector output").
				WithContext("template", item.Template).
				Build()
		}
		data, err := vr.RenderSVG(item.Template, item.Props, item.Size)
		if err != nil {
			return Artifact{}, err
		}
		return d.writeArtifact(item, data)
	}

	img, err := d.renderer.Render(item.Template, item.Props, item.Size)
	if err != nil {
		return Artifact{}, err
	}

	var data []byte
	if len(item.ICOSizes) > 0 {
		data, err = encodeICO(img, item.ICOSizes)
	} else {
		data, err = imaging.EncodeBytes(img, item.Encoding)
	}
	if err != nil {
		return Artifact{}, foundationerrors.WrapError(err, foundationerrors.CategoryRender, "encode image").Build()
	}
	return d.writeArtifact(item, data)
}

func (d *Driver) writeArtifact(item WorkItem, data []byte) (Artifact, error) {
	if err := d.write(item.Output, data); err != nil {
		return Artifact{}, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "write image").
			WithContext("path", item.Output).
			Build()
	}
	return Artifact{Path: item.Output, Bytes: len(data)}, nil
}

func encodeICO(src image.Image, sizes []int) ([]byte, error) {
	images := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		images = append(images, imaging.Scale(src, image.Pt(s, s)))
	}
	var buf bytes.Buffer
	if err := imaging.EncodeICO(&buf, images); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func displayName(item WorkItem) string {
	if item.Props.Title != "" {
		return item.Props.Title
	}
	return item.Name
}
