// Package unit bundles the per-file state threaded through the
// preprocessor and both passes: the growing symbol table, memory image
// and diagnostic collector, plus the deferred entry-directive list
// pass2 resolves. Nothing here is a process-wide singleton; a fresh
// Unit is built for every input file.
package unit

import (
	"github.com/mdyer/m14asm/asm/diag"
	"github.com/mdyer/m14asm/asm/image"
	"github.com/mdyer/m14asm/asm/symtab"
)

// EntryRequest is a deferred ".entry NAME" directive: the symbol may
// not exist yet when the directive is read, so resolution waits for
// pass2.
type EntryRequest struct {
	Name string
	File string
	Line int
}

// Extern is one resolved reference to an external symbol: the address
// of the operand word that was patched to value 0, ARE=External.
type Extern struct {
	Name    string
	Address int
}

// Unit is the per-file translation state.
type Unit struct {
	File string

	Symbols *symtab.Table
	Image   *image.Image
	Diags   *diag.Collector

	Entries []EntryRequest

	// Externs is populated by pass2 as it resolves placeholders against
	// external symbols, in resolution order.
	Externs []Extern
}

// New returns a freshly initialized Unit for file.
func New(file string) *Unit {
	return &Unit{
		File:    file,
		Symbols: symtab.New(),
		Image:   image.New(),
		Diags:   diag.New(),
	}
}
