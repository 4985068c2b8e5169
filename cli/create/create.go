package create

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/launchkit/launchkit/cli/config"
	"github.com/launchkit/launchkit/cli/configure"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/create/internal/steps"
	"github.com/launchkit/launchkit/cli/util"
	"github.com/launchkit/launchkit/cli/version"
)

// Options contains the create command interaction settings.
type Options struct {
	// Selector is used to choose a template interactively. Terminal menu is used
	// if it is not set.
	Selector steps.Selector
	// Writer receives the follow-up message.
	Writer io.Writer
}

// FillCtx fills create context.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	if len(args) != 1 {
		return util.NewArgError("project name is expected as the only argument")
	}
	if cliOpts == nil {
		cliOpts = configure.GetDefaultCliOpts()
	}
	createCtx.ProjectName = args[0]
	createCtx.CliOpts = cliOpts

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	if createCtx.DestinationDir != "" {
		if !util.IsDir(createCtx.DestinationDir) {
			return fmt.Errorf("destination directory %q does not exist",
				createCtx.DestinationDir)
		}
	}

	executable, err := os.Executable()
	if err != nil {
		log.Debugf("Failed to get launchkit executable path: %s", err)
		executable = ""
	}
	createCtx.TemplateSearchPaths = configure.TemplateSearchPaths(cliOpts, executable,
		workingDir)

	return nil
}

// rollbackOnErr removes the project directory acquired by the failed run.
func rollbackOnErr(templateCtx *steps.TemplateCtx) {
	if templateCtx.AppPath != "" {
		log.Debugf("Removing %s", templateCtx.AppPath)
		if err := os.RemoveAll(templateCtx.AppPath); err != nil {
			log.Warnf("Failed to remove %s: %s", templateCtx.AppPath, err)
		}
	}
	templateCtx.AppPath = ""
}

// Run creates a project from a template.
func Run(createCtx *create_ctx.CreateCtx, opts Options) error {
	if err := checkCtx(createCtx); err != nil {
		return util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}

	selector := opts.Selector
	if selector == nil && !createCtx.SilentMode {
		selector = steps.PromptSelector{}
	}

	stepsChain := []steps.Step{
		steps.ValidateProjectName{},
		steps.ChooseTemplate{Selector: selector},
		steps.SetPredefinedVariables{},
		steps.FillTemplateVarsFromCli{},
		steps.CheckTargetDirectory{},
		steps.CopyAppTemplate{},
		steps.RenderTemplate{},
		steps.PatchManifest{},
		steps.InstallDependencies{},
		steps.InitGitRepository{},
		steps.PrintFollowUpMessage{Writer: opts.Writer},
	}

	_, err := runSteps(createCtx, stepsChain)
	return err
}

// runSteps runs the steps chain. The project directory is removed if any step fails.
func runSteps(createCtx *create_ctx.CreateCtx, stepsChain []steps.Step) (steps.TemplateCtx,
	error,
) {
	templateCtx := steps.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			rollbackOnErr(&templateCtx)
			return templateCtx, err
		}
	}

	return templateCtx, nil
}

// checkCtx checks create context for validity.
func checkCtx(ctx *create_ctx.CreateCtx) error {
	if ctx.WorkDir == "" && ctx.DestinationDir == "" {
		return fmt.Errorf("working directory is not set")
	}

	return nil
}
