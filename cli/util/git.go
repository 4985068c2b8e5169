package util

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-version"
)

// parseGitVersion extracts version from `git --version` output,
// e.g. "git version 2.39.3 (Apple Git-146)" or "git version 2.44.0.windows.1".
func parseGitVersion(gitOutput string) (*version.Version, error) {
	for _, field := range strings.Fields(gitOutput) {
		if !unicode.IsDigit(rune(field[0])) {
			continue
		}
		end := strings.IndexFunc(field, func(r rune) bool {
			return !unicode.IsDigit(r) && r != '.'
		})
		if end != -1 {
			field = field[:end]
		}
		return version.NewVersion(strings.Trim(field, "."))
	}
	return nil, fmt.Errorf("no version found in %q", gitOutput)
}

// IsGitVersionAtLeast checks if the version reported in gitOutput
// is greater or equal to minVersion.
func IsGitVersionAtLeast(gitOutput string, minVersion string) bool {
	gitVersion, err := parseGitVersion(gitOutput)
	if err != nil {
		return false
	}
	required, err := version.NewVersion(minVersion)
	if err != nil {
		return false
	}
	return gitVersion.GreaterThanOrEqual(required)
}
