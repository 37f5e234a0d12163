// Package filter writes the one-line script Doxygen runs as INPUT_FILTER.
//
// The script invokes the configured awk with the configured filter program and
// forwards every argument Doxygen passes (the source file name).
package filter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	derrors "git.home.luguber.info/inful/doxyrun/internal/errors"
	"git.home.luguber.info/inful/doxyrun/internal/logfields"
)

// Dialect selects the script flavor.
type Dialect string

const (
	// DialectBatch writes filter.bat for cmd.exe.
	DialectBatch Dialect = "batch"
	// DialectPOSIX writes filter.sh for /bin/sh.
	DialectPOSIX Dialect = "posix"
)

// DefaultDialect returns the dialect native to the running platform.
func DefaultDialect() Dialect {
	if runtime.GOOS == "windows" {
		return DialectBatch
	}
	return DialectPOSIX
}

// ParseDialect maps a CLI value to a Dialect; "auto" and "" mean DefaultDialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DefaultDialect(), nil
	case string(DialectBatch), "bat":
		return DialectBatch, nil
	case string(DialectPOSIX), "sh":
		return DialectPOSIX, nil
	default:
		return "", fmt.Errorf("unknown script dialect %q (want auto, batch or posix)", s)
	}
}

// FileName is the fixed script name for the dialect.
func (d Dialect) FileName() string {
	if d == DialectBatch {
		return "filter.bat"
	}
	return "filter.sh"
}

func (d Dialect) forwardArgs() string {
	if d == DialectBatch {
		return "%*%"
	}
	return `"$@"`
}

func (d Dialect) mode() os.FileMode {
	if d == DialectBatch {
		return 0o644
	}
	return 0o755
}

// Content renders the script body: one line, newline-terminated.
// Paths are substituted verbatim inside double quotes.
func Content(awkProg, awkScript string, d Dialect) string {
	return `"` + awkProg + `" -f "` + awkScript + `" ` + d.forwardArgs() + "\n"
}

// Write (over)writes the script into dir and returns its absolute path.
func Write(dir, awkProg, awkScript string, d Dialect) (string, error) {
	path := filepath.Join(dir, d.FileName())

	// #nosec G306 -- the POSIX script must be executable
	if err := os.WriteFile(path, []byte(Content(awkProg, awkScript, d)), d.mode()); err != nil {
		return "", derrors.FilterWriteFailed(path, err)
	}
	// WriteFile keeps the old mode of an existing file.
	if err := os.Chmod(path, d.mode()); err != nil {
		return "", derrors.FilterWriteFailed(path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", derrors.FilterWriteFailed(path, err)
	}

	slog.Debug("Filter script written", logfields.Path(abs), slog.String("dialect", string(d)))
	return abs, nil
}
