package commands

import (
	"log/slog"

	"github.com/justoffbyone/sitegen/internal/logfields"
	"github.com/justoffbyone/sitegen/internal/scaffold"
)

// NewCmd implements the 'new' command.
type NewCmd struct {
	Author string `help:"Author written into the frontmatter (defaults to default_author from config)"`
}

func (n *NewCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}

	author := n.Author
	if author == "" {
		author = cfg.DefaultAuthor
	}

	res, err := scaffold.Run(g.Ctx, scaffold.NewPrompter(g.Stdin, g.Stdout), g.Stdout, scaffold.Options{
		ContentDir: cfg.ContentDir,
		Author:     author,
		SiteURL:    cfg.Site.URL,
	})
	if err != nil {
		return err
	}
	g.Logger.Debug("Post scaffolded", logfields.Slug(res.Slug), logfields.Path(res.Path), slog.Bool("draft", res.Draft))
	return nil
}
