package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/launchkit/launchkit/cli/cmdcontext"
	"github.com/launchkit/launchkit/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, ConfigName)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestGetCliOptsDefaults(t *testing.T) {
	cliOpts, err := GetCliOpts("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultCliOpts(), cliOpts)
}

func TestGetCliOpts(t *testing.T) {
	configDir := t.TempDir()
	configPath := writeConfig(t, configDir, `launchkit:
  templates:
    - path: ./my_templates
    - path: /opt/templates
  package_manager: pnpm
  install_attempts: 3
  exclude: "*.log"
  log_file: logs/launchkit.log
  git:
    commit_message: "chore: scaffold"
`)

	cliOpts, err := GetCliOpts(configPath)
	require.NoError(t, err)

	assert.Equal(t, []config.TemplateOpts{
		{Path: filepath.Join(configDir, "my_templates")},
		{Path: "/opt/templates"},
	}, cliOpts.Templates)
	assert.Equal(t, "pnpm", cliOpts.PackageManager)
	assert.EqualValues(t, 3, cliOpts.InstallAttempts)
	assert.Equal(t, []string{"*.log"}, cliOpts.Exclude)
	assert.Equal(t, filepath.Join(configDir, "logs", "launchkit.log"), cliOpts.LogFile)
	assert.Equal(t, "chore: scaffold", cliOpts.Git.CommitMessage)
}

func TestGetCliOptsPartialConfig(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), `launchkit:
  exclude:
    - "*.log"
    - tmp/
`)

	cliOpts, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log", "tmp/"}, cliOpts.Exclude)
	assert.Equal(t, DefaultPackageManager, cliOpts.PackageManager)
	assert.EqualValues(t, 1, cliOpts.InstallAttempts)
	assert.Equal(t, DefaultCommitMessage, cliOpts.Git.CommitMessage)
}

func TestGetCliOptsErrors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		errMessage string
	}{
		{
			name:       "missing section",
			content:    "other:\n  key: value\n",
			errMessage: "missing launchkit section",
		},
		{
			name:       "unknown key",
			content:    "launchkit:\n  unknown_key: 1\n",
			errMessage: "unknown_key",
		},
		{
			name:       "invalid yaml",
			content:    "launchkit: [\n",
			errMessage: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, t.TempDir(), tt.content)
			_, err := GetCliOpts(configPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMessage)
		})
	}
}

func TestCliFindsConfigInParentDir(t *testing.T) {
	rootDir := t.TempDir()
	configPath := writeConfig(t, rootDir, "launchkit:\n")
	nestedDir := filepath.Join(rootDir, "a", "b")
	require.NoError(t, os.MkdirAll(nestedDir, 0755))
	t.Chdir(nestedDir)

	cmdCtx := cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))

	expected, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(cmdCtx.Cli.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, filepath.Dir(cmdCtx.Cli.ConfigPath), cmdCtx.Cli.ConfigDir)
}

func TestCliFindsUserConfig(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	userConfigDir := filepath.Join(configHome, cliExecutableName)
	require.NoError(t, os.MkdirAll(userConfigDir, 0755))
	configPath := writeConfig(t, userConfigDir, "launchkit:\n")

	cmdCtx := cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, configPath, cmdCtx.Cli.ConfigPath)
}

func TestCliExplicitConfigMissing(t *testing.T) {
	cmdCtx := cmdcontext.CmdCtx{}
	cmdCtx.Cli.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")
	err := Cli(&cmdCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "specified path to the configuration file is invalid")
}

func TestTemplateSearchPaths(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cliOpts := GetDefaultCliOpts()
	cliOpts.Templates = []config.TemplateOpts{{Path: "/configured"}}

	exeDir := t.TempDir()
	executable := filepath.Join(exeDir, "launchkit")
	searchPaths := TemplateSearchPaths(cliOpts, executable, "/work")

	assert.Equal(t, []string{
		"/configured",
		filepath.Join(exeDir, "templates"),
		filepath.Join(exeDir, "..", "share", "launchkit", "templates"),
		filepath.Join("/work", "templates"),
		filepath.Join(dataHome, "launchkit", "templates"),
	}, searchPaths)
}

func TestTemplateSearchPathsNoExecutable(t *testing.T) {
	searchPaths := TemplateSearchPaths(GetDefaultCliOpts(), "", "")
	require.Len(t, searchPaths, 1)
	assert.Equal(t, filepath.Join(xdg.DataHome, "launchkit", "templates"), searchPaths[0])
}
