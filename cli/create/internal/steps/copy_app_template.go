package steps

import (
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/launchkit/launchkit/cli/create/bootstrap"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/templates"
)

// CopyAppTemplate represents a step of template instantiation in the project directory.
type CopyAppTemplate struct{}

// exclusions returns template exclusions extended with configured patterns.
func exclusions(createCtx *create_ctx.CreateCtx) *templates.Exclusions {
	if createCtx.CliOpts == nil {
		return templates.NewExclusions()
	}
	return templates.NewExclusions(createCtx.CliOpts.Exclude...)
}

// Run copies the template to the project directory. If the template is not found,
// a starter project is generated.
func (CopyAppTemplate) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if templateCtx.AppPath == "" {
		return fmt.Errorf("project directory is not acquired")
	}

	templatePath, err := templates.Resolve(templateCtx.Template, createCtx.TemplateSearchPaths)
	if errors.Is(err, templates.ErrTemplateNotFound) {
		log.Infof("Template %q is not found locally, generating a starter project",
			templateCtx.Template)
		if err = bootstrap.Bootstrap(templateCtx.AppPath, templateCtx.Template); err != nil {
			return fmt.Errorf("failed to generate a starter project: %w", err)
		}
		templateCtx.Bootstrapped = true
		return nil
	} else if err != nil {
		return err
	}

	log.Infof("Using template from %s", templatePath)
	if err = templates.CopyTree(templatePath, templateCtx.AppPath,
		exclusions(createCtx)); err != nil {
		return fmt.Errorf("template copying failed: %w", err)
	}
	templateCtx.TemplatePath = templatePath
	return nil
}
