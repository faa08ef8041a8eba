package commands

import (
	"fmt"

	"github.com/justoffbyone/sitegen/internal/generate"
	"github.com/justoffbyone/sitegen/internal/selection"
)

// OgCmd implements the 'og' command. Its flags are parsed by
// selection.ParseArgs so they match the documented generator interface.
type OgCmd struct {
	Args []string `arg:"" optional:"" help:"Selection flags: --slug, --posts-only, --tasks, --all-posts, --no-static"`
}

func (o *OgCmd) Run(g *Global, root *CLI) error {
	return runJob(g, root, generate.OGJob, o.Args)
}

// HeroCmd implements the 'hero' command. Static page flags are accepted but
// hero images have no static pages.
type HeroCmd struct {
	Args []string `arg:"" optional:"" help:"Selection flags: --slug, --posts-only, --tasks, --all-posts, --no-static"`
}

func (h *HeroCmd) Run(g *Global, root *CLI) error {
	return runJob(g, root, generate.HeroJob, h.Args)
}

// runJob parses selection flags, then generates job images. Per-item failures
// are reported and do not fail the command.
func runJob(g *Global, root *CLI, job generate.Job, args []string) error {
	opts, err := selection.ParseArgs(args)
	if err != nil {
		return err
	}
	if opts.Help {
		fmt.Fprint(g.Stdout, selection.Usage(job.Name))
		return nil
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

	fmt.Fprintf(g.Stdout, "Generating %s images...\n\n", job.Name)
	report, err := p.RunJob(g.Ctx, job, opts)
	if err != nil {
		return err
	}
	printSummary(g.Stdout, report)
	return nil
}
