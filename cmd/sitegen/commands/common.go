package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/justoffbyone/sitegen/internal/config"
	"github.com/justoffbyone/sitegen/internal/generate"
	"github.com/justoffbyone/sitegen/internal/logfields"
	"github.com/justoffbyone/sitegen/internal/metrics"
	"github.com/justoffbyone/sitegen/internal/render"
)

// Global carries process-wide state shared by subcommands.
type Global struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger

	registry *prom.Registry
	recorder metrics.Recorder
}

// NewGlobal returns the shared state for one invocation. With collectMetrics
// the driver records into a fresh Prometheus registry.
func NewGlobal(ctx context.Context, collectMetrics bool) *Global {
	g := &Global{
		Ctx:      ctx,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	if collectMetrics {
		g.registry = prom.NewRegistry()
		g.recorder = metrics.NewPrometheusRecorder(g.registry)
	}
	return g
}

// WriteMetrics writes collected metrics to path in Prometheus text format.
// Without a registry it does nothing.
func (g *Global) WriteMetrics(path string) error {
	if g.registry == nil {
		return nil
	}
	return metrics.WriteTextfile(path, g.registry)
}

// pipeline wires a renderer and driver for cfg. The returned closer releases
// the renderer's font faces.
func (g *Global) pipeline(cfg *config.Config) (*generate.Pipeline, func(), error) {
	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := renderer.Close(); err != nil {
			g.Logger.Warn("Failed to release fonts", logfields.Error(err))
		}
	}

	driver := generate.NewDriver(renderer,
		generate.WithRecorder(g.recorder),
		generate.WithLogger(g.Logger),
		generate.WithProgress(g.Stdout),
	)
	p, err := generate.NewPipeline(cfg, driver, g.Logger)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return p, closer, nil
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path (defaults to sitegen.yaml when present)"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	MetricsFile string           `name:"metrics-file" help:"Write run metrics in Prometheus text format to this file" type:"path"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Og        OgCmd        `cmd:"" passthrough:"" help:"Generate OG images for posts and static pages"`
	Hero      HeroCmd      `cmd:"" passthrough:"" help:"Generate hero banner images for posts"`
	Favicon   FaviconCmd   `cmd:"" help:"Generate the favicon PNG set and favicon.ico"`
	DefaultOG DefaultOGCmd `cmd:"" name:"default-og" help:"Generate the site-wide fallback OG image"`
	Logo      LogoCmd      `cmd:"" help:"Generate the SVG header logo"`
	Lint      LintCmd      `cmd:"" help:"Check internal post links for a trailing slash"`
	New       NewCmd       `cmd:"" help:"Create a new blog post interactively"`
	Watch     WatchCmd     `cmd:"" help:"Watch the content store and generate missing images"`
	Init      InitCmd      `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration named by --config, or the default file.
func (c *CLI) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	slog.Debug("Configuration loaded",
		slog.String("content_dir", cfg.ContentDir),
		slog.String("public_dir", cfg.PublicDir),
		slog.String("format", string(cfg.Output.Format)))
	return cfg, nil
}

// printSummary writes the closing line for a run to w.
func printSummary(w io.Writer, r *generate.Report) {
	if len(r.Items) == 0 {
		fmt.Fprintln(w, "Nothing to generate.")
		return
	}
	var total int
	artifacts := r.Artifacts()
	for _, a := range artifacts {
		total += a.Bytes
	}
	if failed := len(r.Failed()); failed > 0 {
		fmt.Fprintf(w, "\nGenerated %d of %d images, %d failed (%.1f KB)\n", len(artifacts), len(r.Items), failed, float64(total)/1024)
		return
	}
	fmt.Fprintf(w, "\nGenerated %d images (%.1f KB)\n", len(artifacts), float64(total)/1024)
}
