package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/doxyrun/internal/errors"
	"git.home.luguber.info/inful/doxyrun/internal/logfields"
)

// LoadOptions tunes how the configuration file is read.
type LoadOptions struct {
	// EnvFiles are dotenv files loaded into the process environment before
	// parsing. Variables already set are not overwritten.
	EnvFiles []string
	// ExpandEnv enables ${VAR} expansion in values.
	ExpandEnv bool
}

// Load reads path and validates its General section.
// Files ending in .yaml or .yml are parsed as YAML; everything else as INI.
func Load(path string, opts LoadOptions) (*Settings, error) {
	if len(opts.EnvFiles) > 0 {
		if err := loadEnvFiles(opts.EnvFiles); err != nil {
			return nil, err
		}
	}

	// #nosec G304 -- path is the operator-supplied config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.ConfigNotFound(path, err)
	}

	var section map[string]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		section, err = parseYAML(path, data, opts)
	default:
		section, err = parseINI(path, data, opts)
	}
	if err != nil {
		return nil, err
	}

	settings, err := FromSection(section)
	if err != nil {
		return nil, err
	}
	settings.source = path

	slog.Debug("Configuration loaded",
		logfields.ConfigPath(path),
		slog.Int("keys", len(section)),
		slog.Bool("expand_env", opts.ExpandEnv))
	return settings, nil
}

func loadEnvFiles(files []string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			return derrors.EnvFileFailed(f, err)
		}
		slog.Debug("Loaded environment file", logfields.Path(f))
	}
	return nil
}

func parseINI(path string, data []byte, opts LoadOptions) (map[string]string, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
		// Values are plain strings; a trailing backslash ends a Windows path.
		IgnoreContinuation: true,
	}, data)
	if err != nil {
		return nil, derrors.ConfigMalformed(path, err)
	}
	if opts.ExpandEnv {
		file.ValueMapper = os.ExpandEnv
	}

	sec, err := file.GetSection(SectionGeneral)
	if err != nil {
		return nil, derrors.SectionMissing(SectionGeneral, &MissingSectionError{Section: SectionGeneral})
	}

	// Keys of the DEFAULT section apply to General unless General sets them.
	values := make(map[string]string, len(sec.Keys()))
	for _, k := range file.Section(ini.DefaultSection).Keys() {
		values[k.Name()] = k.String()
	}
	for _, k := range sec.Keys() {
		values[k.Name()] = k.String()
	}
	for name := range values {
		if !sec.HasKey(name) {
			slog.Debug("Key inherited from DEFAULT section", logfields.Key(name))
		}
	}
	return values, nil
}

func parseYAML(path string, data []byte, opts LoadOptions) (map[string]string, error) {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, derrors.ConfigMalformed(path, fmt.Errorf("yaml: %w", err))
	}

	sec, ok := doc[SectionGeneral]
	if !ok {
		return nil, derrors.SectionMissing(SectionGeneral, &MissingSectionError{Section: SectionGeneral})
	}

	values := make(map[string]string, len(sec))
	for k, v := range sec {
		if opts.ExpandEnv {
			v = os.ExpandEnv(v)
		}
		values[k] = v
	}
	return values, nil
}
