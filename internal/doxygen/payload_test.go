package doxygen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doxyrun/internal/config"
	derrors "git.home.luguber.info/inful/doxyrun/internal/errors"
	"git.home.luguber.info/inful/doxyrun/internal/filter"
)

func settings(t *testing.T, extra map[string]string) *config.Settings {
	t.Helper()
	values := map[string]string{
		"DOXYFILE":          "Doxyfile",
		"AWK_PROG":          "awk",
		"AWK_FILTER_SCRIPT": "filter.awk",
		"DOXYGEN_PROG":      "doxygen",
	}
	for k, v := range extra {
		values[k] = v
	}
	s, err := config.FromSection(values)
	require.NoError(t, err)
	return s
}

func settingNames(overrides []Override) []string {
	names := make([]string, 0, len(overrides))
	for _, o := range overrides {
		names = append(names, o.Setting)
	}
	return names
}

func TestOverrides_OnlyInputFilterByDefault(t *testing.T) {
	got := Overrides("/work/filter.bat", settings(t, nil))
	assert.Equal(t, []Override{{Setting: SettingInputFilter, Value: "/work/filter.bat"}}, got)
}

func TestOverrides_OutputPathOnly(t *testing.T) {
	got := Overrides("/work/filter.bat", settings(t, map[string]string{"OUTPUT_PATH": "/tmp/out"}))
	assert.Equal(t, []Override{
		{Setting: SettingInputFilter, Value: "/work/filter.bat"},
		{Setting: SettingOutputDirectory, Value: "/tmp/out"},
	}, got)
}

func TestOverrides_PresenceMatrix(t *testing.T) {
	keys := []struct {
		key     string
		setting string
	}{
		{"INPUT_PATH", SettingInput},
		{"OUTPUT_PATH", SettingOutputDirectory},
		{"DOT_PATH", SettingDotPath},
	}

	// every subset of the three optional keys
	for mask := 0; mask < 8; mask++ {
		extra := map[string]string{}
		want := []string{SettingInputFilter}
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				extra[k.key] = "value-" + k.key
				want = append(want, k.setting)
			}
		}
		got := Overrides("/f", settings(t, extra))
		assert.Equal(t, want, settingNames(got), "mask %03b", mask)
	}
}

func TestOverrides_PresentButEmptyIsEmitted(t *testing.T) {
	got := Overrides("/f", settings(t, map[string]string{"DOT_PATH": ""}))
	require.Len(t, got, 2)
	assert.Equal(t, "DOT_PATH=", got[1].Line())
}

func TestBuildPayload(t *testing.T) {
	overrides := []Override{
		{Setting: SettingInputFilter, Value: "/f.bat"},
		{Setting: SettingOutputDirectory, Value: "/tmp/out"},
	}

	t.Run("base with trailing newline", func(t *testing.T) {
		got := BuildPayload([]byte("PROJECT_NAME = VBA\n"), overrides)
		assert.Equal(t, "PROJECT_NAME = VBA\nINPUT_FILTER=/f.bat\nOUTPUT_DIRECTORY=/tmp/out\n", string(got))
	})

	t.Run("base without trailing newline", func(t *testing.T) {
		got := BuildPayload([]byte("PROJECT_NAME = VBA"), overrides)
		assert.Equal(t, "PROJECT_NAME = VBA\nINPUT_FILTER=/f.bat\nOUTPUT_DIRECTORY=/tmp/out\n", string(got))
	})

	t.Run("empty base", func(t *testing.T) {
		got := BuildPayload(nil, overrides[:1])
		assert.Equal(t, "INPUT_FILTER=/f.bat\n", string(got))
	})
}

func TestSynthesize_MinimalConfig(t *testing.T) {
	dir := t.TempDir()
	doxyfile := filepath.Join(dir, "Doxyfile")
	require.NoError(t, os.WriteFile(doxyfile, []byte("INPUT = src\nOUTPUT_DIRECTORY = docs\n"), 0o600))

	cmd, err := Synthesize(settings(t, map[string]string{"DOXYFILE": doxyfile}), "/work/filter.bat")
	require.NoError(t, err)

	assert.Equal(t, "doxygen", cmd.Program)
	assert.Equal(t, []string{"-"}, cmd.Args)
	assert.Equal(t, "INPUT = src\nOUTPUT_DIRECTORY = docs\nINPUT_FILTER=/work/filter.bat\n", string(cmd.Stdin))
	assert.Equal(t, 1, strings.Count(string(cmd.Stdin), "INPUT_FILTER="))
}

func TestSynthesize_OutputOverrideFollowsFilter(t *testing.T) {
	dir := t.TempDir()
	doxyfile := filepath.Join(dir, "Doxyfile")
	require.NoError(t, os.WriteFile(doxyfile, []byte("PROJECT_NAME = VBA\n"), 0o600))

	cmd, err := Synthesize(settings(t, map[string]string{
		"DOXYFILE":    doxyfile,
		"OUTPUT_PATH": "/tmp/out",
	}), "/work/filter.bat")
	require.NoError(t, err)

	payload := string(cmd.Stdin)
	filterAt := strings.Index(payload, "INPUT_FILTER=/work/filter.bat\n")
	outputAt := strings.Index(payload, "OUTPUT_DIRECTORY=/tmp/out\n")
	require.GreaterOrEqual(t, filterAt, 0)
	require.Greater(t, outputAt, filterAt)
	assert.True(t, strings.HasSuffix(payload, "OUTPUT_DIRECTORY=/tmp/out\n"))
	assert.NotContains(t, payload, "DOT_PATH=")
	assert.NotContains(t, payload, "\nINPUT=")
	assert.Len(t, cmd.Overrides, 2)
}

func TestSynthesize_MissingDoxyfile(t *testing.T) {
	_, err := Synthesize(settings(t, map[string]string{
		"DOXYFILE": filepath.Join(t.TempDir(), "Doxyfile"),
	}), "/f")
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryFileSystem))
}

func TestCommand_String(t *testing.T) {
	cmd := &Command{
		Program:  "doxygen",
		Args:     []string{"-"},
		Doxyfile: "Doxyfile",
		Overrides: []Override{
			{Setting: SettingInputFilter, Value: "/w/filter.sh"},
			{Setting: SettingDotPath, Value: "/usr/bin"},
		},
	}
	assert.Equal(t, "( cat Doxyfile; echo INPUT_FILTER=/w/filter.sh; echo DOT_PATH=/usr/bin ) | doxygen -", cmd.String())
}

func TestCommand_StringFor(t *testing.T) {
	cmd := &Command{
		Program:  `C:\doxygen\bin\doxygen.exe`,
		Args:     []string{"-"},
		Doxyfile: "Doxyfile",
		Overrides: []Override{
			{Setting: SettingInputFilter, Value: `C:\work\filter.bat`},
			{Setting: SettingOutputDirectory, Value: `C:\out`},
		},
	}

	assert.Equal(t,
		`( type Doxyfile & echo INPUT_FILTER=C:\work\filter.bat & echo OUTPUT_DIRECTORY=C:\out ) | C:\doxygen\bin\doxygen.exe -`,
		cmd.StringFor(filter.DialectBatch))
	assert.Equal(t, cmd.String(), cmd.StringFor(filter.DialectPOSIX))
}
