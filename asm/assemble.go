// Package asm drives the three-stage pipeline over one input file's
// raw lines: macro expansion, first pass, and, if first pass reported
// no fatal diagnostics, second pass.
package asm

import (
	"strings"

	"github.com/mdyer/m14asm/asm/macro"
	"github.com/mdyer/m14asm/asm/pass1"
	"github.com/mdyer/m14asm/asm/pass2"
	"github.com/mdyer/m14asm/asm/unit"
)

// AssembleFile runs the pipeline over source, the raw text of one input
// file, and returns the finished Unit. Processing of a single file
// never touches another file's state: there is no cross-file
// carry-over.
func AssembleFile(file, source string) *unit.Unit {
	u := unit.New(file)

	rawLines := strings.Split(source, "\n")
	if len(rawLines) > 0 && rawLines[len(rawLines)-1] == "" {
		rawLines = rawLines[:len(rawLines)-1]
	}

	flat := macro.Expand(file, rawLines, u.Diags)

	pass1.Run(u, flat)
	if u.Diags.HasErrors() {
		return u
	}

	pass2.Run(u)
	return u
}
