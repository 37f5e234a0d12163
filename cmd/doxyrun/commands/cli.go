package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doxyrun/internal/config"
	"git.home.luguber.info/inful/doxyrun/internal/doxygen"
	derrors "git.home.luguber.info/inful/doxyrun/internal/errors"
	"git.home.luguber.info/inful/doxyrun/internal/filter"
	"git.home.luguber.info/inful/doxyrun/internal/pipeline"
)

// LogLevelEnv overrides the log level when --verbose is not given.
const LogLevelEnv = "DOXYRUN_LOG_LEVEL"

// CLI definition & global flags.
type CLI struct {
	Config    string           `arg:"" name:"config-file" help:"Configuration file (INI, or YAML by extension) containing a [General] section"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`
	DryRun    bool             `name:"dry-run" help:"Write the filter script and print the generator command without running it"`
	Strict    bool             `help:"Exit non-zero when the documentation generator fails"`
	ExpandEnv bool             `name:"expand-env" help:"Expand $${VAR} references in configuration values"`
	EnvFile   []string         `name:"env-file" help:"Dotenv file(s) loaded before reading the configuration" placeholder:"FILE"`
	Dialect   string           `help:"Filter script dialect" enum:"auto,batch,posix" default:"auto"`

	stdout io.Writer
	runner doxygen.Runner
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the level from --verbose, then DOXYRUN_LOG_LEVEL.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv(LogLevelEnv))) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Run executes one documentation run for the parsed flags.
func (c *CLI) Run(ctx context.Context) error {
	dialect, err := filter.ParseDialect(c.Dialect)
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryValidation, derrors.SeverityFatal, "invalid --dialect")
	}

	out := c.stdout
	if out == nil {
		out = os.Stdout
	}
	runner := c.runner
	if runner == nil {
		runner = doxygen.NewBinaryRunner()
	}

	_, err = pipeline.New(out, runner).Run(ctx, pipeline.Options{
		ConfigPath: c.Config,
		Load: config.LoadOptions{
			EnvFiles:  c.EnvFile,
			ExpandEnv: c.ExpandEnv,
		},
		Dialect: dialect,
		DryRun:  c.DryRun,
		Strict:  c.Strict,
	})
	return err
}
