package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/justoffbyone/sitegen/cmd/sitegen/commands"
	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("sitegen"),
		kong.Description("Generate social images, favicons and new posts for the blog."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	global := commands.NewGlobal(ctx, cli.MetricsFile != "")
	err := parser.Run(global, &cli)
	if cli.MetricsFile != "" {
		if werr := global.WriteMetrics(cli.MetricsFile); werr != nil {
			slog.Warn("Failed to write metrics file", "path", cli.MetricsFile, "error", werr)
		}
	}
	if err != nil {
		cancel()
		foundationerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
