// Package output provides terminal output formatting for the commitcheck CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Reporter receives user-visible notifications from the check engine.
// The engine itself never prints; it hands outcomes to a Reporter.
type Reporter interface {
	Success(message string)
}

// Console is a Reporter writing colored output to a terminal.
// Colors degrade gracefully when the writer is not a TTY (fatih/color
// handles NO_COLOR and pipe detection).
type Console struct {
	Out io.Writer
}

// NewConsole creates a Console reporter. A nil writer defaults to stdout.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{Out: out}
}

// Success prints a green checkmark followed by the message.
func (c *Console) Success(message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(c.Out, "%s %s\n", green("✓"), message)
}

// IsInteractive reports whether the given file descriptor is attached to a
// terminal. Used for the stdin fallback of the check command and for gating
// the revision-range spinner.
func IsInteractive(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
