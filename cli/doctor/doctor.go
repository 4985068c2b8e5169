// Package doctor checks availability of the tools used by generated projects.
package doctor

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/launchkit/launchkit/cli/util"
)

// MinGitVersion is the first git version supporting init.defaultBranch.
const MinGitVersion = "2.28"

// Tools is a list of programs checked by doctor.
var Tools = []string{"node", "npm", "pnpm", "yarn", "bun", "git"}

// Prober returns a version string of the program.
type Prober func(program string) (string, error)

// ToolStatus describes a result of the tool check.
type ToolStatus struct {
	// Name is a program name.
	Name string
	// Found is true if the program responded to the version request.
	Found bool
	// Version is the first line of the version output.
	Version string
	// Note is an additional remark: an error or a warning.
	Note string
}

// Check probes all tools.
func Check(probe Prober) []ToolStatus {
	statuses := make([]ToolStatus, 0, len(Tools))
	for _, tool := range Tools {
		status := ToolStatus{Name: tool}
		toolVersion, err := probe(tool)
		if err != nil {
			status.Note = err.Error()
		} else {
			status.Found = true
			status.Version = toolVersion
			if tool == "git" && !util.IsGitVersionAtLeast(toolVersion, MinGitVersion) {
				status.Note = fmt.Sprintf("git %s or newer is recommended", MinGitVersion)
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// Render writes statuses as a table.
func Render(writer io.Writer, statuses []ToolStatus) {
	ts := table.NewWriter()
	ts.SetOutputMirror(writer)
	ts.AppendHeader(table.Row{"TOOL", "STATUS", "VERSION", "NOTE"})
	for _, status := range statuses {
		state := color.GreenString("found")
		if !status.Found {
			state = color.RedString("missing")
		} else if status.Note != "" {
			state = color.YellowString("outdated")
		}
		ts.AppendRow(table.Row{status.Name, state, status.Version, status.Note})
	}
	ts.SetStyle(table.StyleRounded)
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: 60},
	})
	ts.Render()
}

// Run checks the environment and prints the report. Missing tools are not an error.
func Run(writer io.Writer, probe Prober) error {
	statuses := Check(probe)
	Render(writer, statuses)

	missing := 0
	for _, status := range statuses {
		if !status.Found {
			missing++
		}
	}
	if missing == 0 {
		fmt.Fprintln(writer, "\nAll tools are available.")
	} else {
		fmt.Fprintf(writer, "\n%d of %d tools are not available. "+
			"At least one package manager and git are recommended.\n", missing, len(statuses))
	}
	return nil
}
