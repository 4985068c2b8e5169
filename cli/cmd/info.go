package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/launchkit/launchkit/cli/cmdcontext"
	"github.com/launchkit/launchkit/cli/configure"
	"github.com/launchkit/launchkit/cli/info"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates a new info command.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show launchkit environment information",
		Run:   RunModuleFunc(internalInfoModule),
		Args:  cobra.NoArgs,
	}
}

// internalInfoModule is a default info module.
func internalInfoModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	executable, err := os.Executable()
	if err != nil {
		log.Debugf("Failed to get launchkit executable path: %s", err)
		executable = ""
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	searchPaths := configure.TemplateSearchPaths(cliOpts, executable, workingDir)

	var infoCtx info.InfoCtx
	info.FillCtx(&infoCtx, cmdCtx.Cli.ConfigPath, searchPaths)
	return info.Run(os.Stdout, infoCtx)
}
