// Package opcodes holds the mnemonic table, the addressing-mode legality
// rules and the reserved-word list for the 14-bit machine: a flat
// table of opcode values plus the per-opcode operand shape rules that
// govern how each mnemonic's operands may be addressed.
package opcodes

// Addressing modes, per spec section 3.
const (
	Immediate = 0
	Direct    = 1
	Jump      = 2
	Register  = 3
)

// Opcode values, fixed by the instruction set (section 6).
const (
	Mov = 0
	Cmp = 1
	Add = 2
	Sub = 3
	Not = 4
	Clr = 5
	Lea = 6
	Inc = 7
	Dec = 8
	Jmp = 9
	Bne = 10
	Red = 11
	Prn = 12
	Jsr = 13
	Rts = 14
	Stop = 15
)

// Info describes one mnemonic: its encoded opcode, how many source-level
// operands it takes, and which addressing modes are legal in each
// operand position.
type Info struct {
	Code      int
	Operands  int   // 0, 1, or 2
	SrcModes  []int // legal only when Operands == 2
	DstModes  []int // legal for the single operand (Operands==1) or the second operand (Operands==2)
}

// Table maps mnemonic to Info. Keys are case-sensitive, matching the
// assembly-language mnemonics exactly as written in the instruction set.
var Table = map[string]Info{
	"mov": {Code: Mov, Operands: 2, SrcModes: []int{Immediate, Direct, Register}, DstModes: []int{Direct, Register}},
	"cmp": {Code: Cmp, Operands: 2, SrcModes: []int{Immediate, Direct, Register}, DstModes: []int{Immediate, Direct, Register}},
	"add": {Code: Add, Operands: 2, SrcModes: []int{Immediate, Direct, Register}, DstModes: []int{Direct, Register}},
	"sub": {Code: Sub, Operands: 2, SrcModes: []int{Immediate, Direct, Register}, DstModes: []int{Direct, Register}},
	"lea": {Code: Lea, Operands: 2, SrcModes: []int{Direct}, DstModes: []int{Direct, Register}},
	"not": {Code: Not, Operands: 1, DstModes: []int{Direct, Register}},
	"clr": {Code: Clr, Operands: 1, DstModes: []int{Direct, Register}},
	"inc": {Code: Inc, Operands: 1, DstModes: []int{Direct, Register}},
	"dec": {Code: Dec, Operands: 1, DstModes: []int{Direct, Register}},
	"red": {Code: Red, Operands: 1, DstModes: []int{Direct, Register}},
	"jmp": {Code: Jmp, Operands: 1, DstModes: []int{Direct, Jump}},
	"bne": {Code: Bne, Operands: 1, DstModes: []int{Direct, Jump}},
	"jsr": {Code: Jsr, Operands: 1, DstModes: []int{Direct, Jump}},
	"prn": {Code: Prn, Operands: 1, DstModes: []int{Immediate, Direct, Register}},
	"rts": {Code: Rts, Operands: 0},
	"stop": {Code: Stop, Operands: 0},
}

// Directive keywords, section 4.2.
var Directives = map[string]bool{
	".data":   true,
	".string": true,
	".entry":  true,
	".extern": true,
}

// reservedBare lists reserved words beyond mnemonics and registers:
// directive keywords without their leading dot (a stray ".data" as a
// label would already be rejected for containing '.', but the bare word
// "data" must also be unusable as an identifier) and the macro
// delimiters.
var reservedBare = map[string]bool{
	"data": true, "string": true, "entry": true, "extern": true,
	"mcr": true, "endmcr": true,
}

// IsReserved reports whether name collides with a mnemonic, a register
// name (r0..r7), a directive keyword, or mcr/endmcr.
func IsReserved(name string) bool {
	if _, ok := Table[name]; ok {
		return true
	}
	if len(name) == 2 && name[0] == 'r' && name[1] >= '0' && name[1] <= '7' {
		return true
	}
	return reservedBare[name]
}

// Lookup returns the Info for a mnemonic and whether it exists.
func Lookup(mnemonic string) (Info, bool) {
	info, ok := Table[mnemonic]
	return info, ok
}

func modeAllowed(mode int, legal []int) bool {
	for _, m := range legal {
		if m == mode {
			return true
		}
	}
	return false
}

// SrcLegal reports whether mode is a legal source addressing mode for
// this opcode (only meaningful when Operands == 2).
func (i Info) SrcLegal(mode int) bool { return modeAllowed(mode, i.SrcModes) }

// DstLegal reports whether mode is a legal destination (or sole-operand)
// addressing mode for this opcode.
func (i Info) DstLegal(mode int) bool { return modeAllowed(mode, i.DstModes) }
