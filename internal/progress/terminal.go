// Package progress provides terminal capability detection and the spinner
// shown while a revision range is being scanned.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// DetectTerminalCapabilities detects terminal features for stderr, where
// progress output goes. Checks: isatty, NO_COLOR env, COMMITCHECK_ASCII env,
// terminal width. Used to enable/disable the spinner and pick its charset.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("COMMITCHECK_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// spinnerCharSet selects the spinner charset for the terminal.
// Unicode: braille dots (set 14). ASCII fallback: | / - \ (set 9).
func spinnerCharSet(caps TerminalCapabilities) int {
	if caps.SupportsUnicode {
		return 14
	}
	return 9
}

// NewScanSpinner returns a spinner for history scans, or nil when the
// writer is not an interactive terminal (piped output stays clean).
func NewScanSpinner(caps TerminalCapabilities, w io.Writer) *spinner.Spinner {
	if !caps.IsTTY {
		return nil
	}
	sp := spinner.New(
		spinner.CharSets[spinnerCharSet(caps)],
		100*time.Millisecond,
		spinner.WithWriter(w),
	)
	sp.Suffix = " scanning commits..."
	return sp
}
