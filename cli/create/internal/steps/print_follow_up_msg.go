package steps

import (
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/util"
)

// PrintFollowUpMessage represents a step printing next steps for the created project.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints project follow-up message. The project is complete at this point, so
// write errors are reported as warnings.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if printFollowUpMsgStep.Writer == nil {
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s Created %s in %s\n", color.GreenString("Success!"),
		util.Bold(templateCtx.PackageName),
		util.RelativeToCurrentWorkingDir(templateCtx.AppPath))
	if templateCtx.Bootstrapped {
		fmt.Fprintf(&msg, "Template %q was not found, a starter project was generated.\n",
			templateCtx.Template)
	}
	if len(templateCtx.Report.Unresolved) > 0 {
		fmt.Fprintf(&msg, "Unresolved placeholders are left as is: %s\n",
			strings.Join(templateCtx.Report.Unresolved, ", "))
	}

	pm := packageManager(createCtx)
	commands := []string{"cd " + util.RelativeToCurrentWorkingDir(templateCtx.AppPath)}
	if createCtx.NoInstall || templateCtx.InstallFailed {
		commands = append(commands, pm+" install")
	}
	commands = append(commands, pm+" run dev")

	msg.WriteString("\nNext steps:\n")
	for _, command := range commands {
		fmt.Fprintf(&msg, "  %s\n", util.Command(command))
	}

	if _, err := io.WriteString(printFollowUpMsgStep.Writer, msg.String()); err != nil {
		log.Warnf("Failed to print follow-up message: %s", err)
	}
	return nil
}
