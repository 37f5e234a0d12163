// Package pipeline runs one doxyrun invocation end to end:
// load config, write the filter script, synthesize and run the generator,
// report elapsed time.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/doxyrun/internal/config"
	"git.home.luguber.info/inful/doxyrun/internal/doxygen"
	"git.home.luguber.info/inful/doxyrun/internal/filter"
	"git.home.luguber.info/inful/doxyrun/internal/logfields"
)

// Options describes a single run.
type Options struct {
	ConfigPath string
	Load       config.LoadOptions
	Dialect    filter.Dialect
	// WorkDir receives the filter script. Defaults to the current directory.
	WorkDir string
	// DryRun stops before the generator is started and prints the command instead.
	DryRun bool
	// Strict returns generator failures as errors instead of only logging them.
	Strict bool
}

// Result summarizes a completed run.
type Result struct {
	RunID        string
	FilterScript string
	Command      *doxygen.Command
	Elapsed      time.Duration
	// GeneratorErr is set when the generator failed; it is only returned as
	// the run error in strict mode.
	GeneratorErr error
}

// Pipeline holds the collaborators of a run.
type Pipeline struct {
	out    io.Writer
	runner doxygen.Runner
	now    func() time.Time
}

// New creates a Pipeline printing progress to out and executing through runner.
func New(out io.Writer, runner doxygen.Runner) *Pipeline {
	return &Pipeline{out: out, runner: runner, now: time.Now}
}

// WithClock replaces time.Now (tests).
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	if now != nil {
		p.now = now
	}
	return p
}

// Run executes the pipeline. Validation and filesystem errors abort before
// the generator starts. A generator failure is logged and, unless
// opts.Strict is set, the run still succeeds.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := slog.Default().With(logfields.RunID(res.RunID))

	absConfig, err := filepath.Abs(opts.ConfigPath)
	if err != nil {
		absConfig = opts.ConfigPath
	}
	p.printf("Reading parameter from config file: %s\n", absConfig)

	settings, err := config.Load(opts.ConfigPath, opts.Load)
	if err != nil {
		return nil, err
	}
	log.Debug("Settings validated", logfields.Stage("load"), logfields.ConfigPath(absConfig))

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	dialect := opts.Dialect
	if dialect == "" {
		dialect = filter.DefaultDialect()
	}
	res.FilterScript, err = filter.Write(workDir, settings.AwkProg(), settings.AwkFilterScript(), dialect)
	if err != nil {
		return nil, err
	}
	log.Debug("Filter script ready", logfields.Stage("filter"), logfields.Path(res.FilterScript))

	p.printf("Generate documentation...\n")

	res.Command, err = doxygen.Synthesize(settings, res.FilterScript)
	if err != nil {
		return nil, err
	}
	log.Debug("Generator command synthesized",
		logfields.Stage("synthesize"),
		logfields.Overrides(len(res.Command.Overrides)),
		slog.String("command", res.Command.StringFor(dialect)))

	if opts.DryRun {
		p.printf("Dry run, not invoking %s\n", res.Command.Program)
		p.printf("Command: %s\n", res.Command.StringFor(dialect))
		p.printf("--- stdin ---\n%s--- end ---\n", res.Command.Stdin)
		return res, nil
	}

	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("Generator detected",
			logfields.Program(res.Command.Program),
			logfields.Version(doxygen.DetectVersion(ctx, res.Command.Program)))
	}

	start := p.now()
	runErr := p.runner.Run(ctx, res.Command)
	res.Elapsed = p.now().Sub(start)

	if runErr != nil {
		res.GeneratorErr = runErr
		log.Warn("Documentation generator reported a failure",
			logfields.Program(res.Command.Program),
			logfields.Error(runErr),
			slog.Bool("strict", opts.Strict))
		if opts.Strict {
			return res, runErr
		}
	}

	p.printf("Done...\n")
	p.printf("It took %s to generate documentation\n", FormatElapsed(res.Elapsed))
	log.Info("Documentation run finished", logfields.Stage("run"), logfields.Duration(res.Elapsed))
	return res, nil
}

func (p *Pipeline) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// FormatElapsed renders d as HH:MM:SS, truncating sub-second precision.
// Negative durations clamp to zero; hours are not wrapped at 24.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
