package doxygen

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
)

var versionRegex = regexp.MustCompile(`(\d+\.\d+\.\d+)`)

// DetectVersion runs `<prog> --version` and returns the x.y.z it reports,
// or "" if the program cannot be run or prints no version.
func DetectVersion(ctx context.Context, prog string) string {
	// #nosec G204 -- prog is operator-supplied configuration
	out, err := exec.CommandContext(ctx, prog, "--version").Output()
	if err != nil {
		return ""
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the first semantic version from generator output,
// e.g. "1.9.8 (c2ba5c9...)" yields "1.9.8".
func ParseVersion(output string) string {
	if m := versionRegex.FindStringSubmatch(strings.TrimSpace(output)); len(m) >= 2 {
		return m[1]
	}
	return ""
}
