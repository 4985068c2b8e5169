package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/adrg/xdg"
	"github.com/apex/log"
	"github.com/launchkit/launchkit/cli/cmdcontext"
	"github.com/launchkit/launchkit/cli/config"
	"github.com/launchkit/launchkit/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	ConfigName        = "launchkit.yaml"
	cliExecutableName = "launchkit"
	// TemplatesDirName is a name of the directory with templates in all
	// template search locations.
	TemplatesDirName = "templates"
	// DefaultPackageManager is used if no package manager is configured.
	DefaultPackageManager = "npm"
	// DefaultCommitMessage is a message of the initial commit.
	DefaultCommitMessage = "Initial commit from launchkit"
)

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Templates:       []config.TemplateOpts{},
		PackageManager:  DefaultPackageManager,
		InstallAttempts: 1,
		Exclude:         []string{},
		Git: &config.GitOpts{
			CommitMessage: DefaultCommitMessage,
		},
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
func adjustPathWithConfigLocation(filePath, configDir string) (string, error) {
	if filePath == "" {
		return "", nil
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateCliOpts resolves all paths in config relative to specified location, and
// sets uninitialized values to defaults.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error

	for i := range cliOpts.Templates {
		if cliOpts.Templates[i].Path == "" {
			cliOpts.Templates[i].Path = "."
		}
		if cliOpts.Templates[i].Path, err = adjustPathWithConfigLocation(
			cliOpts.Templates[i].Path, configDir); err != nil {
			return err
		}
	}

	if cliOpts.LogFile, err = adjustPathWithConfigLocation(cliOpts.LogFile,
		configDir); err != nil {
		return err
	}

	if cliOpts.PackageManager == "" {
		cliOpts.PackageManager = DefaultPackageManager
	}
	if cliOpts.InstallAttempts == 0 {
		cliOpts.InstallAttempts = 1
	}
	if cliOpts.Git == nil {
		cliOpts.Git = &config.GitOpts{}
	}
	if cliOpts.Git.CommitMessage == "" {
		cliOpts.Git.CommitMessage = DefaultCommitMessage
	}

	return nil
}

// decodeStringAsArrayField allows to set a list field with a single string.
func decodeStringAsArrayField(from, to reflect.Type, value interface{}) (
	interface{}, error,
) {
	if to != reflect.TypeOf([]string{}) || from.Kind() != reflect.String {
		return value, nil
	}
	return []string{value.(string)}, nil
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(decodeStringAsArrayField),
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns launchkit options from the config file
// located at path configurePath. Empty configurePath means no config file,
// defaults are returned in this case.
func GetCliOpts(configurePath string) (*config.CliOpts, error) {
	cfg := config.Config{CliConfig: GetDefaultCliOpts()}

	configDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	if configurePath != "" {
		rawConfigOpts, err := util.ParseYAML(configurePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse launchkit configuration: %s", err)
		}

		if _, found := rawConfigOpts[cliExecutableName]; !found {
			return nil,
				fmt.Errorf("failed to parse launchkit configuration: missing launchkit section")
		}

		if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse launchkit configuration: %s", err)
		}

		if configDir, err = filepath.Abs(filepath.Dir(configurePath)); err != nil {
			return nil, err
		}
	}

	if err = updateCliOpts(cfg.CliConfig, configDir); err != nil {
		return nil, err
	}

	return cfg.CliConfig, nil
}

// getConfigPath looks for the path to the launchkit.yaml configuration file,
// looking through all directories from the current one to the root. The user
// config directory is checked last.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %s", err)
	}

	for {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		parentDir := filepath.Dir(curDir)
		if parentDir == curDir {
			break
		}
		curDir = parentDir
	}

	configPath, err := util.GetYamlFileName(
		filepath.Join(xdg.ConfigHome, cliExecutableName, configName), false)
	if err != nil {
		return "", err
	}
	return configPath, nil
}

// Cli detects launchkit configuration file location.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	var err error

	if cmdCtx.Cli.ConfigPath != "" {
		if cmdCtx.Cli.ConfigPath, err = util.GetYamlFileName(cmdCtx.Cli.ConfigPath,
			true); err != nil {
			return fmt.Errorf("specified path to the configuration file is invalid: %s", err)
		}
	} else if cmdCtx.Cli.ConfigPath, err = getConfigPath(ConfigName); err != nil {
		return fmt.Errorf("failed to get launchkit config: %s", err)
	}

	if cmdCtx.Cli.ConfigPath != "" {
		if cmdCtx.Cli.ConfigPath, err = filepath.Abs(cmdCtx.Cli.ConfigPath); err != nil {
			return err
		}
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
		log.Debugf("Using configuration file %q", cmdCtx.Cli.ConfigPath)
	} else if cmdCtx.Cli.ConfigDir, err = os.Getwd(); err != nil {
		return err
	}

	return nil
}

// TemplateSearchPaths returns an ordered list of directories to look templates up in:
// configured paths, locations next to the launchkit executable, the templates
// directory of the current working directory and the user data directory.
func TemplateSearchPaths(cliOpts *config.CliOpts, executablePath, workDir string) []string {
	searchPaths := make([]string, 0, len(cliOpts.Templates)+4)
	for _, templateOpts := range cliOpts.Templates {
		searchPaths = append(searchPaths, templateOpts.Path)
	}

	if executablePath != "" {
		if resolved, err := filepath.EvalSymlinks(executablePath); err == nil {
			executablePath = resolved
		}
		exeDir := filepath.Dir(executablePath)
		searchPaths = append(searchPaths,
			filepath.Join(exeDir, TemplatesDirName),
			filepath.Join(exeDir, "..", "share", cliExecutableName, TemplatesDirName))
	}

	if workDir != "" {
		searchPaths = append(searchPaths, filepath.Join(workDir, TemplatesDirName))
	}

	searchPaths = append(searchPaths,
		filepath.Join(xdg.DataHome, cliExecutableName, TemplatesDirName))

	return searchPaths
}
