// Package macro implements the preprocessor: it recognizes mcr/endmcr
// blocks, stores their bodies verbatim, and replaces bare macro-use
// lines with the stored body, producing a flat stream with no macro
// syntax left in it. Written in the same
// scan-a-moving-cursor-collect-errors idiom as asm/token.
package macro

import (
	"github.com/mdyer/m14asm/asm/diag"
	"github.com/mdyer/m14asm/asm/opcodes"
	"github.com/mdyer/m14asm/asm/srcline"
	"github.com/mdyer/m14asm/asm/token"
)

// definition is one stored macro: its name and its body lines, exactly
// as written between mcr and endmcr.
type definition struct {
	name string
	body []srcline.Line
}

// Expand reads raw, 1-indexed source lines for file and returns the
// flattened stream: mcr/endmcr blocks are consumed and registered, and
// each macro-use line is replaced by the stored body, every emitted
// line carrying the use-site's line number. Errors are appended to d.
func Expand(file string, rawLines []string, d *diag.Collector) []srcline.Line {
	macros := make(map[string]*definition)
	var out []srcline.Line

	for i := 0; i < len(rawLines); {
		lineNum := i + 1
		text := rawLines[i]
		stripped := token.StripComment(text)
		fields := token.Fields(stripped)

		if len(fields) == 0 {
			out = append(out, srcline.Line{File: file, Num: lineNum, Text: text})
			i++
			continue
		}

		_, labeled := token.StripLabel(fields[0])

		if !labeled && fields[0] == "mcr" {
			def, next, ok := readMacroDef(file, lineNum, fields, rawLines, i, macros, d)
			if ok {
				macros[def.name] = def
			}
			i = next
			continue
		}

		if !labeled && len(fields) == 1 {
			if def, ok := macros[fields[0]]; ok {
				for _, bl := range def.body {
					out = append(out, srcline.Line{File: file, Num: lineNum, Text: bl.Text})
				}
				i++
				continue
			}
		}

		if !labeled && len(fields) > 0 {
			if _, ok := macros[fields[0]]; ok && len(fields) > 1 {
				d.Errorf(file, lineNum, "macro-use", "macro use %q may not be combined with other tokens", fields[0])
				i++
				continue
			}
		}

		out = append(out, srcline.Line{File: file, Num: lineNum, Text: text})
		i++
	}

	return out
}

// readMacroDef consumes a "mcr NAME" line through its matching "endmcr"
// line, starting at rawLines[start]. It returns the parsed definition
// (valid only if ok), and the index of the first line after the block
// (or len(rawLines) if the block was never terminated).
func readMacroDef(file string, mcrLine int, fields []string, rawLines []string, start int, macros map[string]*definition, d *diag.Collector) (*definition, int, bool) {
	ok := true
	if len(fields) != 2 {
		d.Errorf(file, mcrLine, "macro-def", "mcr line must have exactly one macro name")
		ok = false
	}
	var name string
	if len(fields) >= 2 {
		name = fields[1]
		if !token.ValidIdentifier(name) || opcodes.IsReserved(name) {
			d.Errorf(file, mcrLine, "macro-def", "invalid macro name %q", name)
			ok = false
		} else if _, dup := macros[name]; dup {
			d.Errorf(file, mcrLine, "macro-def", "macro %q redefined", name)
			ok = false
		}
	}

	var body []srcline.Line
	i := start + 1
	for ; i < len(rawLines); i++ {
		lineNum := i + 1
		text := rawLines[i]
		stripped := token.StripComment(text)
		bodyFields := token.Fields(stripped)
		if len(bodyFields) > 0 && bodyFields[0] == "endmcr" {
			if len(bodyFields) > 1 {
				d.Errorf(file, lineNum, "macro-def", "extraneous tokens on endmcr line")
				ok = false
			}
			i++
			if ok {
				return &definition{name: name, body: body}, i, true
			}
			return nil, i, false
		}
		body = append(body, srcline.Line{File: file, Num: lineNum, Text: text})
	}

	d.Errorf(file, mcrLine, "macro-def", "unterminated macro definition %q", name)
	return nil, i, false
}
