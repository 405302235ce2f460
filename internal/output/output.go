// Package output provides styled terminal output for the bowerbird CLI.
//
// All commands print through this package for consistent UX. Status and
// progress go to stdout; errors and warnings go to stderr so they survive
// piping the normal output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message in green.
//
// Example:
//
//	output.Success("Created project: myapp")
func Success(msg string) {
	fmt.Fprintln(stdout, successStyle.Render("✔ "+msg))
}

// Error prints an error message in red on stderr.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(stderr, errorStyle.Render("✖ "+msg))
}

// Warn prints a warning message in yellow on stderr.
// Use this for recoverable problems (e.g. git init failed).
func Warn(msg string) {
	fmt.Fprintln(stderr, warnStyle.Render("⚠ "+msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
func Info(msg string) {
	fmt.Fprintln(stdout, infoStyle.Render(msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("cd myapp")
//	output.Step("make install")
func Step(msg string) {
	fmt.Fprintln(stdout, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(stdout, stepStyle.Render("· "+msg))
	}
}
