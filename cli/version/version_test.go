package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBuildInfo(t *testing.T, tag, commit, label string) {
	oldTag, oldCommit, oldLabel := gitTag, gitCommit, versionLabel
	gitTag, gitCommit, versionLabel = tag, commit, label
	t.Cleanup(func() {
		gitTag, gitCommit, versionLabel = oldTag, oldCommit, oldLabel
	})
}

func TestGetVersion(t *testing.T) {
	setBuildInfo(t, "v1.4.0", "abc1234", "")

	assert.Equal(t, "1.4.0", GetVersion(true, false))
	assert.Equal(t, "1.4.0.abc1234", GetVersion(false, true))
	assert.Equal(t, "launchkit version 1.4.0, "+runtime.GOOS+"/"+runtime.GOARCH+
		". commit: abc1234", GetVersion(false, false))
}

func TestGetVersionLabelAndUnknown(t *testing.T) {
	setBuildInfo(t, "2.0.1", "f00", "nightly")
	assert.Equal(t, "2.0.1/nightly", GetVersion(true, false))

	setBuildInfo(t, "", "", "")
	assert.Equal(t, "<unknown>", GetVersion(true, false))

	setBuildInfo(t, "not-a-version", "", "")
	assert.Equal(t, "not-a-version", GetVersion(true, false))
}

func TestGetBuildInfo(t *testing.T) {
	setBuildInfo(t, "1.0.0", "", "")

	info := GetBuildInfo()
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "<unknown>", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}
