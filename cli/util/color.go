package util

import "github.com/mgutz/ansi"

var (
	bold    = ansi.ColorFunc("default+b")
	command = ansi.ColorFunc("cyan+b")
)

// Bold makes the input string bold.
func Bold(s string) string {
	return bold(s)
}

// Command highlights a shell command suggested to the user.
func Command(s string) string {
	return command(s)
}
