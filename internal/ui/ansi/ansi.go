// Package ansi styles the text the tool writes outside the tcell screen:
// cooked-mode prompts, warnings, and errors on stderr.
package ansi

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	reset = "\x1b[0m"

	Bold   = "\x1b[1m"
	Dim    = "\x1b[2m"
	Red    = "\x1b[31m"
	Yellow = "\x1b[33m"
	Cyan   = "\x1b[36m"
)

// Enabled reports whether styled output should be written to f, honoring
// NO_COLOR, CLICOLOR, and CLICOLOR_FORCE.
func Enabled(f *os.File) bool {
	return enabledFor(term.IsTerminal(int(f.Fd())), os.Getenv)
}

func enabledFor(isTTY bool, getenv func(string) string) bool {
	if force := getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	if !isTTY {
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("CLICOLOR") == "0" {
		return false
	}
	return true
}

// Styled writes s wrapped in seq when enabled, plain otherwise.
func Styled(w io.Writer, enabled bool, seq, s string) {
	if enabled {
		fmt.Fprint(w, seq, s, reset)
		return
	}
	fmt.Fprint(w, s)
}

// Header writes a bold cyan heading followed by a newline.
func Header(f *os.File, s string) {
	Styled(f, Enabled(f), Bold+Cyan, s)
	fmt.Fprintln(f)
}

// Warn writes a warning line to f.
func Warn(f *os.File, msg string) {
	Styled(f, Enabled(f), Bold+Yellow, "Warning: ")
	fmt.Fprintln(f, msg)
}

// Error writes an error line to f.
func Error(f *os.File, msg string) {
	Styled(f, Enabled(f), Bold+Red, "Error: ")
	fmt.Fprintln(f, msg)
}
