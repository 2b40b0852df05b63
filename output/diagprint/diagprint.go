// Package diagprint renders a diag.Collector's diagnostics to a
// terminal, color-coded by severity. It is a thin collaborator around
// the core; it only formats values diag.Collector already holds.
package diagprint

import (
	"io"

	"github.com/fatih/color"

	"github.com/mdyer/m14asm/asm/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	okColor      = color.New(color.FgGreen)
)

// Report writes one line per diagnostic in items, errors in bold red
// and warnings in yellow (color.NoColor, set by the color package when
// stdout isn't a terminal or NO_COLOR is set, degrades both to plain
// text automatically).
func Report(w io.Writer, items []diag.Diagnostic) {
	for _, d := range items {
		line := d.String()
		switch d.Severity {
		case diag.Error:
			errorColor.Fprintln(w, line)
		default:
			warningColor.Fprintln(w, line)
		}
	}
}

// Summary prints a one-line pass/fail indicator for file.
func Summary(w io.Writer, file string, ok bool) {
	if ok {
		okColor.Fprintf(w, "%s: assembled\n", file)
		return
	}
	errorColor.Fprintf(w, "%s: failed\n", file)
}
