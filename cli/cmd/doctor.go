package cmd

import (
	"os"

	"github.com/launchkit/launchkit/cli/cmdcontext"
	"github.com/launchkit/launchkit/cli/doctor"
	"github.com/launchkit/launchkit/cli/util"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates a new doctor command.
func NewDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the tools required by generated projects",
		Long: "Check availability of Node.js, package managers and git.\n" +
			"Missing tools are reported, but the command never fails.",
		Run:  RunModuleFunc(internalDoctorModule),
		Args: cobra.NoArgs,
	}
}

// internalDoctorModule is a default doctor module.
func internalDoctorModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	return doctor.Run(os.Stdout, util.ProbeBinary)
}
