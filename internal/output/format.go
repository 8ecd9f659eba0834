// Package output provides terminal output formatting utilities for the
// relkit CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintStepHeader prints a colored step header, e.g. "[Step 2/5] Validate...".
func PrintStepHeader(out io.Writer, stepNum, totalSteps int, stepName string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan(fmt.Sprintf("[Step %d/%d]", stepNum, totalSteps)), white(stepName+"..."))
}

// PrintSuccess prints a green checkmark followed by the message.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintWarning prints a yellow warning line. Recoverable failures in the
// pipeline surface here and execution continues.
func PrintWarning(out io.Writer, format string, args ...any) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("warning:"), fmt.Sprintf(format, args...))
}

// PrintInfo prints an informational line.
func PrintInfo(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, format+"\n", args...)
}

// PrintRule prints a dim horizontal rule across the terminal.
func PrintRule(out io.Writer) {
	dim := color.New(color.Faint).SprintFunc()
	width := GetTerminalWidth()
	if width > 100 {
		width = 100
	}
	fmt.Fprintln(out, dim(strings.Repeat("─", width)))
}
