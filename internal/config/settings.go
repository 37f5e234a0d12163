// Package config loads and validates the doxyrun configuration file.
//
// The file holds a single section named General. Four keys are required and
// must be non-blank; three are optional and are kept as foundation.Option so
// that "not provided" and "provided but empty" stay distinguishable.
package config

import (
	"strings"

	derrors "git.home.luguber.info/inful/doxyrun/internal/errors"
	"git.home.luguber.info/inful/doxyrun/internal/foundation"
)

// SectionGeneral is the only section read from the configuration file.
const SectionGeneral = "General"

// Required keys, in validation order.
const (
	KeyDoxyfile        = "DOXYFILE"
	KeyAwkProg         = "AWK_PROG"
	KeyAwkFilterScript = "AWK_FILTER_SCRIPT"
	KeyDoxygenProg     = "DOXYGEN_PROG"
)

// Optional keys.
const (
	KeyInputPath  = "INPUT_PATH"
	KeyOutputPath = "OUTPUT_PATH"
	KeyDotPath    = "DOT_PATH"
)

// RequiredKeys lists the mandatory keys in the order they are validated.
var RequiredKeys = []string{KeyDoxyfile, KeyAwkProg, KeyAwkFilterScript, KeyDoxygenProg}

// OptionalKeys lists keys that may be omitted.
var OptionalKeys = []string{KeyInputPath, KeyOutputPath, KeyDotPath}

// Settings is the validated, read-only view of the General section.
type Settings struct {
	source          string
	doxyfile        string
	awkProg         string
	awkFilterScript string
	doxygenProg     string
	inputPath       foundation.Option[string]
	outputPath      foundation.Option[string]
	dotPath         foundation.Option[string]
}

// Source is the path the settings were loaded from (empty when built in memory).
func (s *Settings) Source() string { return s.source }

// Doxyfile is the base Doxygen configuration file (DOXYFILE).
func (s *Settings) Doxyfile() string { return s.doxyfile }

// AwkProg is the awk executable run by the filter script (AWK_PROG).
func (s *Settings) AwkProg() string { return s.awkProg }

// AwkFilterScript is the awk program passed via -f (AWK_FILTER_SCRIPT).
func (s *Settings) AwkFilterScript() string { return s.awkFilterScript }

// DoxygenProg is the generator executable (DOXYGEN_PROG).
func (s *Settings) DoxygenProg() string { return s.doxygenProg }

// InputPath overrides INPUT when provided (INPUT_PATH).
func (s *Settings) InputPath() foundation.Option[string] { return s.inputPath }

// OutputPath overrides OUTPUT_DIRECTORY when provided (OUTPUT_PATH).
func (s *Settings) OutputPath() foundation.Option[string] { return s.outputPath }

// DotPath overrides DOT_PATH when provided (DOT_PATH).
func (s *Settings) DotPath() foundation.Option[string] { return s.dotPath }

// FromSection validates the key/value pairs of the General section.
// Keys are matched case-insensitively. Required keys are checked in
// RequiredKeys order and the first failure is returned.
func FromSection(values map[string]string) (*Settings, error) {
	normalized := make(map[string]string, len(values))
	for k, v := range values {
		normalized[strings.ToUpper(strings.TrimSpace(k))] = v
	}

	required := make(map[string]string, len(RequiredKeys))
	for _, key := range RequiredKeys {
		v, ok := normalized[key]
		if !ok {
			return nil, derrors.ParameterMissing(key, &MissingKeyError{Section: SectionGeneral, Key: key})
		}
		if strings.TrimSpace(v) == "" {
			return nil, derrors.ParameterEmpty(key, &EmptyValueError{Section: SectionGeneral, Key: key})
		}
		required[key] = v
	}

	optional := make(map[string]foundation.Option[string], len(OptionalKeys))
	for _, key := range OptionalKeys {
		if v, ok := normalized[key]; ok {
			optional[key] = foundation.Some(v)
		} else {
			optional[key] = foundation.None[string]()
		}
	}

	return &Settings{
		doxyfile:        required[KeyDoxyfile],
		awkProg:         required[KeyAwkProg],
		awkFilterScript: required[KeyAwkFilterScript],
		doxygenProg:     required[KeyDoxygenProg],
		inputPath:       optional[KeyInputPath],
		outputPath:      optional[KeyOutputPath],
		dotPath:         optional[KeyDotPath],
	}, nil
}
