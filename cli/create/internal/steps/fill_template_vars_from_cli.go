package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/templates"
	"github.com/launchkit/launchkit/cli/util"
)

const formatError = `wrong variable definition format: %s
Usage: --var "var-name=value"`

// FillTemplateVarsFromCli represents a step for collecting variables from command line.
type FillTemplateVarsFromCli struct {
}

// Run collects variables passed using command line args.
func (FillTemplateVarsFromCli) Run(ctx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	for _, varDefinition := range ctx.VarsFromCli {
		varDefinition = strings.TrimSpace(varDefinition)
		varName, value, found := strings.Cut(varDefinition, "=")
		if !found || varName == "" || value == "" {
			return util.NewArgError(fmt.Sprintf(formatError, varDefinition))
		}
		if varName == "projectName" {
			return util.NewArgError("projectName variable cannot be redefined, " +
				"use the project name argument")
		}
		if placeholders := templates.Placeholders(value); len(placeholders) > 0 {
			return util.NewArgError(fmt.Sprintf("value of %s variable cannot contain "+
				"placeholders: {{%s}}", varName, strings.Join(placeholders, "}}, {{")))
		}
		log.Debugf("Setting var from CLI: %s = %s", varName, value)
		templateCtx.Vars[varName] = value
	}
	return nil
}
