package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for plain-text results.
var (
	// Labels: bold
	colorLabel = color.New(color.Bold)

	// Main line: bold green, the number people came for
	colorMain = color.New(color.FgGreen, color.Bold)

	// Detail line: dim
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Field errors
	colorError = color.New(color.FgRed)
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}
