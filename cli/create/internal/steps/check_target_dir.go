package steps

import (
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/util"
)

// CheckTargetDirectory represents a step of project directory check.
type CheckTargetDirectory struct{}

// Run checks that the project directory does not exist or is empty. The directory
// is acquired for the project only if the check passes.
func (CheckTargetDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if templateCtx.TargetPath == "" {
		return fmt.Errorf("project directory is not set")
	}

	stat, err := os.Stat(templateCtx.TargetPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to check %s: %s", templateCtx.TargetPath, err)
	case !stat.IsDir():
		return fmt.Errorf("%s already exists and is not a directory",
			util.RelativeToCurrentWorkingDir(templateCtx.TargetPath))
	default:
		isEmpty, err := util.IsEmptyDir(templateCtx.TargetPath)
		if err != nil {
			return fmt.Errorf("failed to check %s: %s", templateCtx.TargetPath, err)
		}
		if !isEmpty {
			return fmt.Errorf("directory %s already exists and is not empty",
				util.RelativeToCurrentWorkingDir(templateCtx.TargetPath))
		}
		log.Debugf("Using existing empty directory %s", templateCtx.TargetPath)
	}

	templateCtx.AppPath = templateCtx.TargetPath
	return nil
}
