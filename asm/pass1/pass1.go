// Package pass1 implements the first assembly pass: it walks the
// macro-flattened line stream, classifies each line, validates labels
// and operand syntax, lays out the code and data images, and records
// symbols. It plays the role an instruction-set emulator's line
// assembler plays for one machine instruction, generalized from a
// single flat opcode table to three operand-count groups, each with its
// own addressing-mode legality rules and additional-word economy.
package pass1

import (
	"fmt"
	"strings"

	"github.com/mdyer/m14asm/asm/image"
	"github.com/mdyer/m14asm/asm/opcodes"
	"github.com/mdyer/m14asm/asm/srcline"
	"github.com/mdyer/m14asm/asm/symtab"
	"github.com/mdyer/m14asm/asm/token"
	"github.com/mdyer/m14asm/asm/unit"
)

// Run processes the flattened line stream into u, in order. It stops
// early only on a memory overflow, which is a fatal error for the
// whole file.
func Run(u *unit.Unit, lines []srcline.Line) {
	for _, ln := range lines {
		processLine(u, ln)
		if u.Image.Overflow() {
			u.Diags.Errorf(ln.File, ln.Num, "resource", "memory image exceeds 256 words")
			return
		}
	}
}

func processLine(u *unit.Unit, ln srcline.Line) {
	stripped := token.StripComment(ln.Text)
	fields := token.Fields(stripped)
	if len(fields) == 0 {
		return
	}

	rest := fields
	label := ""
	hasLabel := false
	if name, isLabel := token.StripLabel(fields[0]); isLabel {
		hasLabel = true
		rest = fields[1:]
		if !token.ValidIdentifier(name) {
			u.Diags.Errorf(ln.File, ln.Num, "lexical", "invalid label %q", name)
		} else if opcodes.IsReserved(name) {
			u.Diags.Errorf(ln.File, ln.Num, "semantic", "label %q collides with a reserved name", name)
		} else {
			label = name
		}
	}

	if len(rest) == 0 {
		if hasLabel {
			u.Diags.Errorf(ln.File, ln.Num, "syntactic", "label with no directive or instruction")
		}
		return
	}

	head := rest[0]
	if strings.HasPrefix(head, ".") {
		processDirective(u, ln, label, hasLabel, head, rest[1:])
		return
	}
	processInstruction(u, ln, label, head, rest[1:])
}

func processDirective(u *unit.Unit, ln srcline.Line, label string, hasLabel bool, directive string, args []string) {
	if !opcodes.Directives[directive] {
		u.Diags.Errorf(ln.File, ln.Num, "syntactic", "unknown directive %q", directive)
		return
	}

	switch directive {
	case ".data":
		if len(args) == 0 {
			u.Diags.Errorf(ln.File, ln.Num, "syntactic", "`.data` requires at least one value")
			return
		}
		if label != "" {
			if err := u.Symbols.InsertUnique(label, u.Image.DC(), symtab.Data); err != nil {
				u.Diags.Errorf(ln.File, ln.Num, "semantic", "%v", err)
			}
		}
		for _, a := range args {
			v, ok := token.ParseInt(a)
			if !ok {
				u.Diags.Errorf(ln.File, ln.Num, "lexical", "invalid integer %q", a)
				continue
			}
			if v < -8192 || v > 8191 {
				u.Diags.Errorf(ln.File, ln.Num, "resource", "value %d out of 14-bit range", v)
				continue
			}
			u.Image.AppendData(image.DataWord(v))
		}

	case ".string":
		if len(args) != 1 {
			u.Diags.Errorf(ln.File, ln.Num, "syntactic", "`.string` requires exactly one quoted string")
			return
		}
		s, ok := token.ParseQuotedString(args[0])
		if !ok {
			u.Diags.Errorf(ln.File, ln.Num, "lexical", "invalid string literal %s", args[0])
			return
		}
		if label != "" {
			if err := u.Symbols.InsertUnique(label, u.Image.DC(), symtab.Data); err != nil {
				u.Diags.Errorf(ln.File, ln.Num, "semantic", "%v", err)
			}
		}
		for i := 0; i < len(s); i++ {
			u.Image.AppendData(image.DataWord(int(s[i])))
		}
		u.Image.AppendData(image.DataWord(0))

	case ".extern":
		if hasLabel {
			u.Diags.Warnf(ln.File, ln.Num, "syntactic", "label before `.extern` is ignored")
		}
		if len(args) != 1 {
			u.Diags.Errorf(ln.File, ln.Num, "syntactic", "`.extern` requires exactly one name")
			return
		}
		name := args[0]
		if !token.ValidIdentifier(name) || opcodes.IsReserved(name) {
			u.Diags.Errorf(ln.File, ln.Num, "semantic", "invalid external name %q", name)
			return
		}
		if err := u.Symbols.InsertUnique(name, 0, symtab.External); err != nil {
			u.Diags.Errorf(ln.File, ln.Num, "semantic", "%v", err)
		}

	case ".entry":
		// A label preceding .entry is silently ignored, unlike
		// .extern, which warns.
		if len(args) != 1 {
			u.Diags.Errorf(ln.File, ln.Num, "syntactic", "`.entry` requires exactly one name")
			return
		}
		name := args[0]
		if !token.ValidIdentifier(name) {
			u.Diags.Errorf(ln.File, ln.Num, "semantic", "invalid entry name %q", name)
			return
		}
		u.Entries = append(u.Entries, unit.EntryRequest{Name: name, File: ln.File, Line: ln.Num})
	}
}

func processInstruction(u *unit.Unit, ln srcline.Line, label, mnemonic string, args []string) {
	info, ok := opcodes.Lookup(mnemonic)
	if !ok {
		u.Diags.Errorf(ln.File, ln.Num, "syntactic", "unknown instruction %q", mnemonic)
		return
	}
	if label != "" {
		if err := u.Symbols.InsertUnique(label, u.Image.IC(), symtab.Code); err != nil {
			u.Diags.Errorf(ln.File, ln.Num, "semantic", "%v", err)
		}
	}
	if len(args) != info.Operands {
		u.Diags.Errorf(ln.File, ln.Num, "syntactic", "%s requires %d operand(s), got %d", mnemonic, info.Operands, len(args))
		return
	}

	switch info.Operands {
	case 0:
		u.Image.AppendCode(image.Word{Kind: image.Instruction, Opcode: info.Code})

	case 1:
		dst, err := parseOperand(args[0], info.DstLegal(opcodes.Jump))
		if err != nil {
			u.Diags.Errorf(ln.File, ln.Num, "syntactic", "%v", err)
			return
		}
		if !info.DstLegal(dst.mode) {
			u.Diags.Errorf(ln.File, ln.Num, "semantic", "%s mode illegal as operand for %s", modeName(dst.mode), mnemonic)
			return
		}
		word := image.Word{Kind: image.Instruction, Opcode: info.Code, DstMode: dst.mode}
		if dst.mode == opcodes.Register {
			word.DstReg = dst.reg
		}
		u.Image.AppendCode(word)
		emitDstOperand(u.Image, dst, ln)

	case 2:
		src, err := parseOperand(args[0], false)
		if err != nil {
			u.Diags.Errorf(ln.File, ln.Num, "syntactic", "%v", err)
			return
		}
		dst, err := parseOperand(args[1], false)
		if err != nil {
			u.Diags.Errorf(ln.File, ln.Num, "syntactic", "%v", err)
			return
		}
		if !info.SrcLegal(src.mode) {
			u.Diags.Errorf(ln.File, ln.Num, "semantic", "%s mode illegal as source for %s", modeName(src.mode), mnemonic)
			return
		}
		if !info.DstLegal(dst.mode) {
			u.Diags.Errorf(ln.File, ln.Num, "semantic", "%s mode illegal as destination for %s", modeName(dst.mode), mnemonic)
			return
		}
		word := image.Word{Kind: image.Instruction, Opcode: info.Code, SrcMode: src.mode, DstMode: dst.mode}
		if src.mode == opcodes.Register {
			word.SrcReg = src.reg
		}
		if dst.mode == opcodes.Register {
			word.DstReg = dst.reg
		}
		u.Image.AppendCode(word)
		emitOperandPair(u.Image, src, dst, ln)
	}
}

// parsedOperand is the result of classifying one operand token: its
// addressing mode and whichever of value/reg/label (and, for Jump, the
// two inner operands) that mode uses.
type parsedOperand struct {
	mode  int
	value int
	reg   int
	label string
	op1   *parsedOperand
	op2   *parsedOperand
}

// parseOperand classifies tok. allowJump permits "label(op1,op2)"
// syntax, legal only in the destination position of jmp/bne/jsr.
func parseOperand(tok string, allowJump bool) (parsedOperand, error) {
	if allowJump {
		if label, op1s, op2s, ok := token.ParseJump(tok); ok {
			if !token.ValidIdentifier(label) {
				return parsedOperand{}, fmt.Errorf("invalid jump target %q", label)
			}
			op1, err := parseOperand(op1s, false)
			if err != nil {
				return parsedOperand{}, err
			}
			op2, err := parseOperand(op2s, false)
			if err != nil {
				return parsedOperand{}, err
			}
			return parsedOperand{mode: opcodes.Jump, label: label, op1: &op1, op2: &op2}, nil
		}
	}

	if v, ok := token.ParseImmediate(tok); ok {
		if v < -2048 || v > 2047 {
			return parsedOperand{}, fmt.Errorf("immediate value %d out of 12-bit range", v)
		}
		return parsedOperand{mode: opcodes.Immediate, value: v}, nil
	}
	if r, ok := token.ParseRegister(tok); ok {
		return parsedOperand{mode: opcodes.Register, reg: r}, nil
	}
	if token.ValidIdentifier(tok) {
		return parsedOperand{mode: opcodes.Direct, label: tok}, nil
	}
	return parsedOperand{}, fmt.Errorf("invalid operand syntax %q", tok)
}

// emitDstOperand appends the additional word(s) a single operand
// contributes. A Jump operand contributes its target placeholder plus
// its inner pair.
func emitDstOperand(img *image.Image, o parsedOperand, ln srcline.Line) {
	if o.mode == opcodes.Jump {
		img.AppendCode(image.PlaceholderWord(o.label, ln.File, ln.Num))
		emitOperandPair(img, *o.op1, *o.op2, ln)
		return
	}
	emitOperandWord(img, o, ln)
}

// emitOperandPair appends the word(s) a two-operand group contributes:
// one shared word when both sides are Register mode, otherwise one
// word per side. The same rule governs a jump's inner operand pair.
func emitOperandPair(img *image.Image, a, b parsedOperand, ln srcline.Line) {
	if a.mode == opcodes.Register && b.mode == opcodes.Register {
		img.AppendCode(image.RegisterPairWord(a.reg, b.reg))
		return
	}
	emitOperandWord(img, a, ln)
	emitOperandWord(img, b, ln)
}

func emitOperandWord(img *image.Image, o parsedOperand, ln srcline.Line) {
	switch o.mode {
	case opcodes.Register:
		img.AppendCode(image.RegisterWord(o.reg))
	case opcodes.Immediate:
		img.AppendCode(image.ImmediateWord(o.value))
	case opcodes.Direct:
		img.AppendCode(image.PlaceholderWord(o.label, ln.File, ln.Num))
	}
}

func modeName(mode int) string {
	switch mode {
	case opcodes.Immediate:
		return "immediate"
	case opcodes.Direct:
		return "direct"
	case opcodes.Jump:
		return "jump-with-parameters"
	case opcodes.Register:
		return "register"
	default:
		return "unknown"
	}
}
