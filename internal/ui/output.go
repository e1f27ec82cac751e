package ui

import (
	"fmt"
	"io"
	"os"
)

// Writers used by the CLI helpers; tests swap them out.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// OK prints a success line.
func OK(msg string) {
	fmt.Fprintln(Stdout, current.Success.Render(current.SymOK+" "+msg))
}

// Fail prints an error line to stderr.
func Fail(msg string) {
	fmt.Fprintln(Stderr, current.Error.Render(current.SymFail+" "+msg))
}

// Muted prints a dimmed hint to stderr.
func Muted(msg string) {
	fmt.Fprintln(Stderr, current.Muted.Render(msg))
}
