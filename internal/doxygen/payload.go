package doxygen

import (
	"bytes"
	"os"

	"git.home.luguber.info/inful/doxyrun/internal/config"
	derrors "git.home.luguber.info/inful/doxyrun/internal/errors"
)

// Doxygen setting names that may be overridden.
const (
	SettingInputFilter     = "INPUT_FILTER"
	SettingInput           = "INPUT"
	SettingOutputDirectory = "OUTPUT_DIRECTORY"
	SettingDotPath         = "DOT_PATH"
)

// Override is one appended `SETTING=value` line.
type Override struct {
	Setting string
	Value   string
}

// Line renders the override without a trailing newline.
func (o Override) Line() string {
	return o.Setting + "=" + o.Value
}

// Overrides returns the lines appended after the base Doxyfile, in order.
// INPUT_FILTER is always present; the others only when their key was provided.
func Overrides(filterPath string, s *config.Settings) []Override {
	out := []Override{{Setting: SettingInputFilter, Value: filterPath}}

	if v, ok := s.InputPath().Get(); ok {
		out = append(out, Override{Setting: SettingInput, Value: v})
	}
	if v, ok := s.OutputPath().Get(); ok {
		out = append(out, Override{Setting: SettingOutputDirectory, Value: v})
	}
	if v, ok := s.DotPath().Get(); ok {
		out = append(out, Override{Setting: SettingDotPath, Value: v})
	}
	return out
}

// BuildPayload concatenates the base Doxyfile content and the override lines.
// A newline is inserted when base does not end with one.
func BuildPayload(base []byte, overrides []Override) []byte {
	var buf bytes.Buffer
	buf.Grow(len(base) + 64*len(overrides))
	buf.Write(base)
	if len(base) > 0 && base[len(base)-1] != '\n' {
		buf.WriteByte('\n')
	}
	for _, o := range overrides {
		buf.WriteString(o.Line())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Synthesize reads the base Doxyfile and assembles the generator invocation.
func Synthesize(s *config.Settings, filterPath string) (*Command, error) {
	// #nosec G304 -- DOXYFILE is operator-supplied configuration
	base, err := os.ReadFile(s.Doxyfile())
	if err != nil {
		return nil, derrors.DoxyfileReadFailed(s.Doxyfile(), err)
	}

	overrides := Overrides(filterPath, s)
	return &Command{
		Program:   s.DoxygenProg(),
		Args:      []string{"-"},
		Doxyfile:  s.Doxyfile(),
		Overrides: overrides,
		Stdin:     BuildPayload(base, overrides),
	}, nil
}
