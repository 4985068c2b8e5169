package util

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmptyDir(t *testing.T) {
	tmpDir := t.TempDir()

	empty, err := IsEmptyDir(tmpDir)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file"), []byte{}, 0644))
	empty, err = IsEmptyDir(tmpDir)
	require.NoError(t, err)
	assert.False(t, empty)

	_, err = IsEmptyDir(filepath.Join(tmpDir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetYamlFileName(t *testing.T) {
	tmpDir := t.TempDir()

	fileName, err := GetYamlFileName(filepath.Join(tmpDir, "launchkit.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, "", fileName)

	_, err = GetYamlFileName(filepath.Join(tmpDir, "launchkit.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "launchkit.yml"), []byte{}, 0644))
	fileName, err = GetYamlFileName(filepath.Join(tmpDir, "launchkit.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "launchkit.yml"), fileName)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "launchkit.yaml"), []byte{}, 0644))
	_, err = GetYamlFileName(filepath.Join(tmpDir, "launchkit.yaml"), true)
	assert.ErrorContains(t, err, "more than one YAML files are found")

	_, err = GetYamlFileName(filepath.Join(tmpDir, "launchkit.json"), true)
	assert.EqualError(t, err, "provided file '"+filepath.Join(tmpDir, "launchkit.json")+
		"' has no .yaml/.yml extension")
}

func TestProbeBinary(t *testing.T) {
	binDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "fake-tool"),
		[]byte("#!/bin/sh\necho 'fake-tool 1.2.3'\necho 'second line'\n"), 0755))
	t.Setenv("PATH", binDir)

	out, err := ProbeBinary("fake-tool")
	require.NoError(t, err)
	assert.Equal(t, "fake-tool 1.2.3", out)

	_, err = ProbeBinary("missing-tool")
	assert.Error(t, err)
}

func TestHandleCmdErrKeepsPercentSigns(t *testing.T) {
	if os.Getenv("LAUNCHKIT_HANDLE_CMD_ERR") == "1" {
		HandleCmdErr(&cobra.Command{}, errors.New(`failed to read "/tmp/100%done/app"`))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestHandleCmdErrKeepsPercentSigns$")
	cmd.Env = append(os.Environ(), "LAUNCHKIT_HANDLE_CMD_ERR=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), `failed to read "/tmp/100%done/app"`)
	assert.NotContains(t, string(out), "%!d")
}
