package create_ctx

import "github.com/launchkit/launchkit/cli/config"

// CreateCtx contains information for creating projects from templates.
type CreateCtx struct {
	// ProjectName is a package name of the project to create.
	ProjectName string
	// WorkDir is launchkit working directory.
	WorkDir string
	// DestinationDir is the path where a project directory will be created.
	DestinationDir string
	// TemplateSearchPaths is an ordered set of paths to search for a template.
	TemplateSearchPaths []string
	// TemplateName is a template to use for project creation. Empty name means
	// the template is chosen interactively.
	TemplateName string
	// VarsFromCli template variables definitions provided in command line.
	VarsFromCli []string
	// TypeScript enables TypeScript tooling.
	TypeScript bool
	// Tailwind enables Tailwind CSS tooling.
	Tailwind bool
	// PackageManager is a package manager used to install dependencies.
	PackageManager string
	// NoInstall disables dependencies installation.
	NoInstall bool
	// NoGit disables git repository initialization.
	NoGit bool
	// Verbose enables subprocess output.
	Verbose bool
	// SilentMode if set, disables user interaction.
	SilentMode bool
	// CliOpts is loaded launchkit configuration.
	CliOpts *config.CliOpts
}
