package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "launchkit"
)

// Get the value of this variables at build time.
// See magefile for more details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// GetVersion return string with launchkit version info.
func GetVersion(showShort bool, needCommit bool) string {
	var version string

	if gitTag == "" {
		version = unknownVersion
	} else {
		if normalizedVersion, err := goVersion.NewVersion(gitTag); err != nil {
			version = gitTag
		} else {
			var versionStrNumbers []string
			for _, num := range normalizedVersion.Segments() {
				versionStrNumbers = append(versionStrNumbers, strconv.Itoa(num))
			}

			version = strings.Join(versionStrNumbers, ".")
		}

		if versionLabel != "" {
			version = fmt.Sprintf("%s/%s", version, versionLabel)
		}
	}

	if showShort || needCommit {
		if needCommit {
			return fmt.Sprintf("%s.%s", version, gitCommit)
		}

		return version
	}

	return fmt.Sprintf(
		"%s version %s, %s/%s. commit: %s",
		cliVersionTitle, version, runtime.GOOS, runtime.GOARCH, gitCommit,
	)
}

// BuildInfo describes the running launchkit binary.
type BuildInfo struct {
	// Version is a normalized launchkit version.
	Version string
	// Commit is a git commit the binary is built from.
	Commit string
	// GoVersion is a Go runtime version the binary is built with.
	GoVersion string
	// Platform is an OS/architecture pair.
	Platform string
}

// GetBuildInfo returns information about the running binary.
func GetBuildInfo() BuildInfo {
	commit := gitCommit
	if commit == "" {
		commit = unknownVersion
	}
	return BuildInfo{
		Version:   GetVersion(true, false),
		Commit:    commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
