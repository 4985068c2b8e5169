// Package info prints launchkit environment information.
package info

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/launchkit/launchkit/cli/templates"
	"github.com/launchkit/launchkit/cli/util"
	"github.com/launchkit/launchkit/cli/version"
)

const notAvailable = "n/a"

// InfoCtx contains information about launchkit environment to show.
type InfoCtx struct {
	// Build describes the running binary.
	Build version.BuildInfo
	// ConfigPath is a path to the used configuration file. Empty if there is no one.
	ConfigPath string
	// TemplateSearchPaths is an ordered set of paths to search for a template.
	TemplateSearchPaths []string
	// Probe returns a version of the program.
	Probe func(program string) (string, error)
}

// FillCtx fills info context with the default values.
func FillCtx(infoCtx *InfoCtx, configPath string, searchPaths []string) {
	infoCtx.Build = version.GetBuildInfo()
	infoCtx.ConfigPath = configPath
	infoCtx.TemplateSearchPaths = searchPaths
	infoCtx.Probe = util.ProbeBinary
}

// templatesLocation returns the first search path containing the template.
func templatesLocation(name templates.Name, searchPaths []string) string {
	templatePath, err := templates.Resolve(name, searchPaths)
	if err != nil {
		return "built-in starter"
	}
	return templatePath
}

// Run prints environment information.
func Run(writer io.Writer, infoCtx InfoCtx) error {
	nodeVersion := notAvailable
	if infoCtx.Probe != nil {
		if probed, err := infoCtx.Probe("node"); err == nil {
			nodeVersion = probed
		}
	}
	configPath := infoCtx.ConfigPath
	if configPath == "" {
		configPath = notAvailable
	}
	searchPaths := notAvailable
	if len(infoCtx.TemplateSearchPaths) > 0 {
		searchPaths = strings.Join(infoCtx.TemplateSearchPaths, "\n")
	}

	ts := table.NewWriter()
	ts.SetOutputMirror(writer)
	ts.AppendRows([]table.Row{
		{"Version", infoCtx.Build.Version},
		{"Commit", infoCtx.Build.Commit},
		{"Go version", infoCtx.Build.GoVersion},
		{"Platform", infoCtx.Build.Platform},
		{"Node.js", nodeVersion},
		{"Config", configPath},
		{"Template paths", searchPaths},
	})
	for _, name := range templates.Names() {
		ts.AppendRow(table.Row{fmt.Sprintf("Template %s", name),
			templatesLocation(name, infoCtx.TemplateSearchPaths)})
	}
	ts.Style().Options.DrawBorder = false
	ts.Style().Options.SeparateColumns = false
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, Colors: text.Colors{text.Bold}},
		{Number: 2, Align: text.AlignLeft},
	})
	ts.Render()
	return nil
}
