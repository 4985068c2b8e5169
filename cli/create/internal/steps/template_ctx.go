package steps

import (
	"github.com/launchkit/launchkit/cli/templates"
)

// TemplateCtx contains an information required for project template rendering.
type TemplateCtx struct {
	// PackageName is a validated package name.
	PackageName string
	// TargetPath is a path to the project directory to create.
	TargetPath string
	// AppPath is a path to acquired project directory. It is set once the target
	// directory is checked and is removed if any further step fails.
	AppPath string
	// Template is a chosen template.
	Template templates.Name
	// TemplatePath is a path to the template directory. Empty if the project is
	// bootstrapped.
	TemplatePath string
	// Bootstrapped is true if the template is not found and a starter is generated.
	Bootstrapped bool
	// Vars is a map of variables to be used for template rendering.
	Vars map[string]string
	// Engine is a template engine to use for template rendering.
	Engine templates.TemplateEngine
	// Report is a result of variables substitution.
	Report templates.Report
	// InstallFailed is true if dependencies installation is attempted and failed.
	InstallFailed bool
	// GitInitialized is true if a git repository is created.
	GitInitialized bool
}

// NewTemplateContext creates new project template context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	ctx.Engine = templates.NewDefaultEngine()
	return ctx
}
