package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doxyrun/cmd/doxyrun/commands"
	derrors "git.home.luguber.info/inful/doxyrun/internal/errors"
	"git.home.luguber.info/inful/doxyrun/internal/version"
)

func main() {
	var cli commands.CLI
	kong.Parse(&cli,
		kong.Name("doxyrun"),
		kong.Description("Generate Doxygen documentation for a VB project using an awk input filter"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cli.Run(ctx)
	cancel()

	os.Exit(derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).Report(err))
}
