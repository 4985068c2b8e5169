package cmd

import (
	"github.com/launchkit/launchkit/cli/cmdcontext"
	"github.com/launchkit/launchkit/cli/util"
	"github.com/spf13/cobra"
)

// handleCmdErr handles an error returned by command implementation.
var handleCmdErr = util.HandleCmdErr

// RunModuleFunc returns a cobra Run function running the internal module.
func RunModuleFunc(internalModule func(*cmdcontext.CmdCtx, []string) error) func(
	*cobra.Command, []string,
) {
	return func(cmd *cobra.Command, args []string) {
		handleCmdErr(cmd, internalModule(&cmdCtx, args))
	}
}
