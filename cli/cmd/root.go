package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/launchkit/launchkit/cli/cmdcontext"
	"github.com/launchkit/launchkit/cli/config"
	"github.com/launchkit/launchkit/cli/configure"
	"github.com/launchkit/launchkit/cli/runlog"
	"github.com/spf13/cobra"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command

	// closeRunLog stops duplicating log output to the run log file.
	closeRunLog = func() error { return nil }
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "launchkit <PROJECT_NAME> [flags]",
		Short: "Create a Next.js project from a template",
		Long: `Create a Next.js project from a template.

Templates:
` + templatesHelp(),
		Example: `$ launchkit my-site --portfolio
  $ launchkit @acme/shop --template ecom --typescript --tailwind
  $ launchkit admin --dashboard --no-install --no-git --dst ~/projects
  $ launchkit info
  $ launchkit doctor`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: initRoot,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := closeRunLog(); err != nil {
				log.Debugf("Failed to close run log: %s", err)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				cmd.Help()
				return
			}
			handleCmdErr(cmd, internalCreateModule(&cmdCtx, args))
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Show debug messages and output of the spawned commands")
	addCreateFlags(rootCmd)

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewInfoCmd(),
		NewDoctorCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	rootCmd = NewCmdRoot()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

// initRoot configures launchkit once flags are parsed: sets log level, finds and
// loads the configuration file and enables the run log.
func initRoot(cmd *cobra.Command, args []string) error {
	cmdCtx.CommandName = cmd.Name()
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := configure.Cli(&cmdCtx); err != nil {
		return fmt.Errorf("failed to configure launchkit: %s", err)
	}

	var err error
	if cliOpts, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath); err != nil {
		return fmt.Errorf("failed to get launchkit configuration: %s", err)
	}

	if closeRunLog, err = runlog.Setup(cliOpts.LogFile); err != nil {
		return fmt.Errorf("failed to set up run log: %s", err)
	}
	return nil
}
