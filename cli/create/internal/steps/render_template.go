package steps

import (
	"fmt"

	"github.com/apex/log"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/templates"
)

// RenderTemplate represents template render step.
type RenderTemplate struct{}

// Run substitutes template variables in the project directory.
func (RenderTemplate) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	substitutor := templates.Substitutor{
		Engine:     templateCtx.Engine,
		Exclusions: exclusions(createCtx),
	}
	if substitutor.Engine == nil {
		substitutor.Engine = templates.NewDefaultEngine()
	}

	report, err := substitutor.Substitute(templateCtx.AppPath, templateCtx.Vars)
	if err != nil {
		return fmt.Errorf("template instantiation error: %w", err)
	}
	templateCtx.Report = report
	log.Debugf("Processed %d files, renamed %d files", len(report.Processed),
		len(report.Renamed))
	if len(report.Skipped) > 0 {
		log.Warnf("%d files were not processed", len(report.Skipped))
	}
	return nil
}
