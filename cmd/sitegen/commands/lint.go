package commands

import (
	"fmt"

	"github.com/justoffbyone/sitegen/internal/content"
	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct{}

func (l *LintCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	catalog, err := content.NewCatalog(cfg.ContentDir, content.WithLogger(g.Logger))
	if err != nil {
		return err
	}

	issues, err := lint.Check(g.Ctx, catalog, g.Logger)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Fprintln(g.Stdout, "All internal post links end with a trailing slash.")
		return nil
	}

	fmt.Fprintln(g.Stdout, "Found internal /posts/ links without trailing slashes:")
	for _, issue := range issues {
		fmt.Fprintf(g.Stdout, "  %s\n", issue)
	}
	return foundationerrors.ValidationError(fmt.Sprintf("%d internal links missing a trailing slash", len(issues))).
		WithContext("count", len(issues)).
		Build()
}
