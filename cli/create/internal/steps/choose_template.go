package steps

import (
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/launchkit/launchkit/cli/create/bootstrap"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/templates"
	"github.com/launchkit/launchkit/cli/util"
	"github.com/manifoldco/promptui"
)

// Selector asks a user to choose one of the items.
type Selector interface {
	// Select returns an index of the chosen item.
	Select(label string, items []string) (int, error)
}

// PromptSelector shows a menu in terminal.
type PromptSelector struct{}

// Select shows a menu in terminal to choose one of the items.
func (PromptSelector) Select(label string, items []string) (int, error) {
	itemSelect := promptui.Select{
		Label:        label,
		Items:        items,
		HideSelected: true,
	}
	index, _, err := itemSelect.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return -1, util.ErrCmdAbort
	}
	return index, err
}

// ChooseTemplate represents a step of template selection.
type ChooseTemplate struct {
	// Selector is used to choose a template if it is not specified.
	Selector Selector
}

// Run sets the template to use. The template is requested from a user if it is not
// specified in command line.
func (chooseTemplate ChooseTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if createCtx.TemplateName != "" {
		name, err := templates.ParseName(createCtx.TemplateName)
		if err != nil {
			return util.NewArgError(err.Error())
		}
		templateCtx.Template = name
		return nil
	}

	if createCtx.SilentMode || chooseTemplate.Selector == nil {
		return util.NewArgError("template is not specified: use --template " +
			"or one of --portfolio, --ecom, --dashboard, --webapp")
	}

	names := templates.Names()
	items := make([]string, 0, len(names))
	for _, name := range names {
		items = append(items, fmt.Sprintf("%-10s %s", name, bootstrap.Description(name)))
	}
	index, err := chooseTemplate.Selector.Select("Select a template", items)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(names) {
		return fmt.Errorf("invalid template selection: %d", index)
	}
	templateCtx.Template = names[index]
	log.Debugf("Template %q is chosen", templateCtx.Template)
	return nil
}
