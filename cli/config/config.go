package config

// Config used to store all information from the
// launchkit.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"launchkit" yaml:"launchkit"`
}

// CliOpts stores information about launchkit configuration.
// Filled in when parsing the launchkit.yaml configuration file.
//
// launchkit.yaml file format:
// launchkit:
//   templates:
//     - path: path/to/templates
//   package_manager: npm|pnpm|yarn|bun
//   install_attempts: num
//   exclude: pattern | [pattern, ...]
//   log_file: path
//   git:
//     commit_message: text
type CliOpts struct {
	// Templates is a list of directories to search templates in.
	Templates []TemplateOpts `mapstructure:"templates" yaml:"templates"`
	// PackageManager is a package manager used to install dependencies.
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`
	// InstallAttempts is a number of dependencies installation attempts.
	InstallAttempts uint `mapstructure:"install_attempts" yaml:"install_attempts"`
	// Exclude contains additional gitignore-style patterns of the template
	// entries to skip while copying and rendering.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
	// LogFile is a path to the file to duplicate log output to.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
	// Git contains git repository initialization options.
	Git *GitOpts `mapstructure:"git" yaml:"git"`
}

// TemplateOpts contains templates location options.
type TemplateOpts struct {
	// Path is a directory containing templates.
	Path string `mapstructure:"path" yaml:"path"`
}

// GitOpts is used to store git repository initialization options.
type GitOpts struct {
	// CommitMessage is a message of the initial commit.
	CommitMessage string `mapstructure:"commit_message" yaml:"commit_message"`
}
