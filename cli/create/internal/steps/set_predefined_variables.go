package steps

import (
	"strconv"
	"time"

	"github.com/launchkit/launchkit/cli/create/bootstrap"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
)

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct {
	// Now returns current time. time.Now is used if not set.
	Now func() time.Time
}

// Run sets predefined variables values.
func (step SetPredefinedVariables) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	now := time.Now
	if step.Now != nil {
		now = step.Now
	}

	templateCtx.Vars["projectName"] = createCtx.ProjectName
	templateCtx.Vars["template"] = string(templateCtx.Template)
	templateCtx.Vars["typescript"] = strconv.FormatBool(createCtx.TypeScript)
	templateCtx.Vars["tailwind"] = strconv.FormatBool(createCtx.Tailwind)
	templateCtx.Vars["packageManager"] = packageManager(createCtx)
	templateCtx.Vars["description"] = bootstrap.Description(templateCtx.Template)
	templateCtx.Vars["year"] = strconv.Itoa(now().Year())
	return nil
}
