package commands

import (
	"context"
	"time"

	"github.com/justoffbyone/sitegen/internal/generate"
	"github.com/justoffbyone/sitegen/internal/logfields"
	"github.com/justoffbyone/sitegen/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before a changed post is processed" default:"750ms"`
	Jobs     []string      `name:"job" help:"Image jobs to run for a changed post, in order" default:"og,hero"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	jobs := make([]generate.Job, 0, len(w.Jobs))
	for _, name := range w.Jobs {
		job, err := generate.LookupJob(name)
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
	}

	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	p, closeRenderer, err := g.pipeline(cfg)
	if err != nil {
		return err
	}
	defer closeRenderer()

	handler := func(ctx context.Context, slug string) error {
		reports, err := p.GenerateMissing(ctx, slug, jobs)
		for _, r := range reports {
			printSummary(g.Stdout, r)
		}
		return err
	}

	watcher, err := watch.New(p.Catalog().Root(), handler,
		watch.WithDebounce(w.Debounce),
		watch.WithLogger(g.Logger))
	if err != nil {
		return err
	}

	g.Logger.Info("Press Ctrl+C to stop", logfields.Path(p.Catalog().Root()))
	if err := watcher.Run(g.Ctx); err != nil {
		return err
	}
	g.Logger.Info("Watcher stopped")
	return nil
}
