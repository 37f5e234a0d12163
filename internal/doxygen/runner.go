package doxygen

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"

	derrors "git.home.luguber.info/inful/doxyrun/internal/errors"
	"git.home.luguber.info/inful/doxyrun/internal/logfields"
)

// Runner executes a synthesized Command. BinaryRunner is the real
// implementation; tests substitute their own.
type Runner interface {
	Run(ctx context.Context, cmd *Command) error
}

// BinaryRunner starts the generator as a child process with argument-array
// semantics, so no shell interprets the configured paths.
type BinaryRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewBinaryRunner forwards the generator's output to the process streams.
func NewBinaryRunner() *BinaryRunner {
	return &BinaryRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *BinaryRunner) Run(ctx context.Context, c *Command) error {
	// #nosec G204 -- DOXYGEN_PROG is operator-supplied configuration
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Stdin = bytes.NewReader(c.Stdin)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	slog.Debug("Invoking generator",
		logfields.Program(c.Program),
		slog.Any("args", c.Args),
		slog.Int("stdin_bytes", len(c.Stdin)))

	if err := cmd.Run(); err != nil {
		return derrors.GeneratorFailed(c.Program, err)
	}
	return nil
}
