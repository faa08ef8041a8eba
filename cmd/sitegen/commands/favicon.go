package commands

import "fmt"

// FaviconCmd implements the 'favicon' command.
type FaviconCmd struct{}

func (f *FaviconCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	p, closeRenderer, err := g.pipeline(cfg)
	if err != nil {
		return err
	}
	defer closeRenderer()

	fmt.Fprintln(g.Stdout, "Generating favicons...")
	printSummary(g.Stdout, p.RunFavicons(g.Ctx))
	return nil
}

// DefaultOGCmd implements the 'default-og' command.
type DefaultOGCmd struct{}

func (d *DefaultOGCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	p, closeRenderer, err := g.pipeline(cfg)
	if err != nil {
		return err
	}
	defer closeRenderer()

	fmt.Fprintln(g.Stdout, "Generating default OG image...")
	printSummary(g.Stdout, p.RunDefaultOG(g.Ctx))
	return nil
}

// LogoCmd implements the 'logo' command.
type LogoCmd struct{}

func (l *LogoCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	p, closeRenderer, err := g.pipeline(cfg)
	if err != nil {
		return err
	}
	defer closeRenderer()

	fmt.Fprintln(g.Stdout, "Generating logo.svg...")
	printSummary(g.Stdout, p.RunLogo(g.Ctx))
	return nil
}
