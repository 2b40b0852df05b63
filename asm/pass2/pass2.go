// Package pass2 implements the second assembly pass: relocate data
// addresses behind the final code image, resolve every placeholder
// word against the symbol table, and resolve the deferred .entry
// requests pass1 recorded.
package pass2

import (
	"github.com/mdyer/m14asm/asm/image"
	"github.com/mdyer/m14asm/asm/symtab"
	"github.com/mdyer/m14asm/asm/unit"
)

// Run finalizes u in place. Callers must not invoke Run if u.Diags
// already holds a fatal error from pass1: a file that failed pass1
// never reaches pass2.
func Run(u *unit.Unit) {
	offset := u.Image.ICFinal()
	u.Symbols.RelocateData(offset)

	for i := range u.Image.Code {
		resolveWord(u, &u.Image.Code[i], 100+i)
	}
	for i := range u.Image.Data {
		resolveWord(u, &u.Image.Data[i], offset+i)
	}

	for _, req := range u.Entries {
		sym, ok := u.Symbols.Lookup(req.Name)
		if !ok {
			u.Diags.Errorf(req.File, req.Line, "semantic", "entry for undefined symbol %q", req.Name)
			continue
		}
		if sym.Kind == symtab.External {
			u.Diags.Errorf(req.File, req.Line, "semantic", "entry for external symbol %q", req.Name)
			continue
		}
		if err := u.Symbols.MarkEntry(req.Name); err != nil {
			u.Diags.Errorf(req.File, req.Line, "semantic", "%v", err)
		}
	}
}

// resolveWord folds a Placeholder word at addr into its final Operand
// form: undefined symbol (an error), external symbol (value 0, tagged
// External), or local symbol (its address, tagged Relocatable).
func resolveWord(u *unit.Unit, w *image.Word, addr int) {
	if w.Kind != image.Placeholder {
		return
	}
	sym, ok := u.Symbols.Lookup(w.Symbol)
	if !ok {
		u.Diags.Errorf(w.File, w.Line, "semantic", "undefined symbol %q", w.Symbol)
		return
	}
	if sym.Kind == symtab.External {
		*w = image.Word{Kind: image.Operand, Value: 0, ARE: image.External}
		u.Symbols.MarkReferenced(sym.Name)
		u.Externs = append(u.Externs, unit.Extern{Name: sym.Name, Address: addr})
		return
	}
	*w = image.Word{Kind: image.Operand, Value: sym.Value, ARE: image.Relocatable}
}
