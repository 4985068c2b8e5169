package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/launchkit/launchkit/cli/cmdcontext"
	"github.com/launchkit/launchkit/cli/create"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/templates"
	"github.com/launchkit/launchkit/cli/util"
	"github.com/spf13/cobra"
)

var (
	templateName       string
	templateFlags      = map[templates.Name]*bool{}
	typeScript         bool
	tailwind           bool
	noGit              bool
	noInstall          bool
	packageManager     string
	dstPath            string
	nonInteractiveMode bool
	varsFromCli        *[]string
)

// templatesHelp returns the list of templates with descriptions.
func templatesHelp() string {
	var sb strings.Builder
	for _, name := range templates.Names() {
		fmt.Fprintf(&sb, "\t%s: %s\n", name, templates.Descriptions[name])
	}
	return sb.String()
}

// addCreateFlags adds project creation flags to the root command.
func addCreateFlags(rootCmd *cobra.Command) {
	flags := rootCmd.Flags()
	flags.StringVarP(&templateName, "template", "t", "",
		"Template to use: "+strings.Join(templateNames(), ", "))
	for _, name := range templates.Names() {
		templateFlags[name] = flags.Bool(string(name), false,
			fmt.Sprintf("Use %s template", name))
	}
	flags.BoolVar(&typeScript, "typescript", false, "Add TypeScript tooling")
	flags.BoolVar(&tailwind, "tailwind", false, "Add Tailwind CSS tooling")
	flags.BoolVar(&noGit, "no-git", false, "Skip git repository initialization")
	flags.BoolVar(&noInstall, "no-install", false, "Skip dependencies installation")
	flags.StringVar(&packageManager, "package-manager", "",
		"Package manager to install dependencies with: npm, pnpm, yarn, bun")
	flags.StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where a project will be created")
	flags.BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		"Non-interactive mode")
	varsFromCli = flags.StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")

	rootCmd.RegisterFlagCompletionFunc("template", func(*cobra.Command, []string,
		string,
	) ([]string, cobra.ShellCompDirective) {
		return templateNames(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.RegisterFlagCompletionFunc("package-manager", func(*cobra.Command, []string,
		string,
	) ([]string, cobra.ShellCompDirective) {
		return []string{"npm", "pnpm", "yarn", "bun"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func templateNames() []string {
	names := []string{}
	for _, name := range templates.Names() {
		names = append(names, string(name))
	}
	return names
}

// chosenTemplate returns a template name set by --template or one of the template
// flags. Empty name means the template is not chosen.
func chosenTemplate() (string, error) {
	chosen := []string{}
	if templateName != "" {
		chosen = append(chosen, templateName)
	}
	for _, name := range templates.Names() {
		if flag := templateFlags[name]; flag != nil && *flag {
			chosen = append(chosen, string(name))
		}
	}
	switch len(chosen) {
	case 0:
		return "", nil
	case 1:
		return chosen[0], nil
	}
	return "", util.NewArgError(fmt.Sprintf("only one template can be chosen, got: %s",
		strings.Join(chosen, ", ")))
}

// internalCreateModule is a default create module.
func internalCreateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	template, err := chosenTemplate()
	if err != nil {
		return err
	}

	createCtx := create_ctx.CreateCtx{
		TemplateName:   template,
		DestinationDir: dstPath,
		VarsFromCli:    *varsFromCli,
		TypeScript:     typeScript,
		Tailwind:       tailwind,
		PackageManager: packageManager,
		NoInstall:      noInstall,
		NoGit:          noGit,
		Verbose:        cmdCtx.Cli.Verbose,
		SilentMode:     nonInteractiveMode,
	}
	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}

	return create.Run(&createCtx, create.Options{Writer: os.Stdout})
}
