// Package logfields defines canonical slog keys so log records stay greppable.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyConfigPath = "config_path"
	KeySection    = "section"
	KeyKey        = "key"
	KeyPath       = "path"
	KeyProgram    = "program"
	KeyVersion    = "version"
	KeyDurationMS = "duration_ms"
	KeyOverrides  = "overrides"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr      { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr    { return slog.String(KeyStage, name) }
func ConfigPath(p string) slog.Attr  { return slog.String(KeyConfigPath, p) }
func Key(k string) slog.Attr         { return slog.String(KeyKey, k) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Program(p string) slog.Attr     { return slog.String(KeyProgram, p) }
func Version(v string) slog.Attr     { return slog.String(KeyVersion, v) }
func Overrides(n int) slog.Attr      { return slog.Int(KeyOverrides, n) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d)/float64(time.Millisecond))
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
