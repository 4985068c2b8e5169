package cmd

import (
	"fmt"
	"strings"

	"github.com/launchkit/launchkit/cli/cmdcontext"
	"github.com/spf13/cobra"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var shellSupported = []string{shellBash, shellZsh, shellFish}

func listShells() string {
	return strings.Join(shellSupported, " | ")
}

// NewCompletionCmd creates a new completion command.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate autocomplete for a specified shell. " +
			fmt.Sprintf("Supported shell type: %s", listShells()),
		ValidArgs: shellSupported,
		Run:       RunModuleFunc(internalCompletionCmd),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `
# Enable auto-completion in current bash shell.

    $ . <(launchkit completion bash)`,
	}

	return cmd
}

// internalCompletionCmd is a default (internal) completion module function.
func internalCompletionCmd(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	out := rootCmd.OutOrStdout()
	switch shell := args[0]; shell {
	case shellBash:
		return rootCmd.GenBashCompletionV2(out, true)
	case shellZsh:
		return rootCmd.GenZshCompletion(out)
	case shellFish:
		return rootCmd.GenFishCompletion(out, true)
	}

	return fmt.Errorf("specified shell type is not supported. Available: %s", listShells())
}
