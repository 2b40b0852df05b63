// Package objwriter renders a finished unit.Unit into the three output
// listings: the object listing (.ob), the entry listing (.ent), and
// the external-reference listing (.ext). It is a thin collaborator
// around the core; it only formats values the core already computed.
package objwriter

import (
	"fmt"
	"strings"

	"github.com/mdyer/m14asm/asm/image"
	"github.com/mdyer/m14asm/asm/unit"
)

// Object renders the .ob listing: a header line of code-word count and
// data-word count, followed by one "<address>\t<word>" line per word,
// code words first, then relocated data words. The 14-bit word is
// rendered as 5-digit zero-padded octal — 14 bits fit in 5 octal
// digits — matching the 4-digit decimal address field's fixed width.
func Object(u *unit.Unit) string {
	var b strings.Builder
	codeCount := len(u.Image.Code)
	dataCount := len(u.Image.Data)
	fmt.Fprintf(&b, "%d %d\n", codeCount, dataCount)

	for i, w := range u.Image.Code {
		writeWord(&b, 100+i, w)
	}
	dataBase := u.Image.ICFinal()
	for i, w := range u.Image.Data {
		writeWord(&b, dataBase+i, w)
	}
	return b.String()
}

func writeWord(b *strings.Builder, addr int, w image.Word) {
	fmt.Fprintf(b, "%04d\t%05o\n", addr, w.Encode())
}

// Entries renders the .ent listing, one "<name>\t<address>" line per
// symbol marked as an entry, in definition order. Returns "" if there
// are none, so the caller can skip writing the file: .ent is emitted
// only if non-empty.
func Entries(u *unit.Unit) string {
	var b strings.Builder
	for _, sym := range u.Symbols.IterEntries() {
		fmt.Fprintf(&b, "%s\t%04d\n", sym.Name, sym.Value)
	}
	return b.String()
}

// Externs renders the .ext listing, one "<name>\t<address>" line per
// use of an external symbol, in resolution order; duplicates are
// expected.
func Externs(u *unit.Unit) string {
	var b strings.Builder
	for _, e := range u.Externs {
		fmt.Fprintf(&b, "%s\t%04d\n", e.Name, e.Address)
	}
	return b.String()
}
