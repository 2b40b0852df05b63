package pass1

import (
	"testing"

	"github.com/mdyer/m14asm/asm/image"
	"github.com/mdyer/m14asm/asm/srcline"
	"github.com/mdyer/m14asm/asm/unit"
)

func lines(texts ...string) []srcline.Line {
	out := make([]srcline.Line, len(texts))
	for i, text := range texts {
		out[i] = srcline.Line{File: "t.as", Num: i + 1, Text: text}
	}
	return out
}

func TestMinimalStop(t *testing.T) {
	u := unit.New("t.as")
	Run(u, lines("MAIN: stop"))
	if u.Diags.HasErrors() {
		t.Fatalf("Run got errors: %v expected: none", u.Diags.Items())
	}
	if len(u.Image.Code) != 1 {
		t.Fatalf("code image got: %d words expected: 1", len(u.Image.Code))
	}
	sym, ok := u.Symbols.Lookup("MAIN")
	if !ok || sym.Value != 100 {
		t.Errorf("symbol MAIN got: %v expected: value 100", sym)
	}
}

func TestImmediatePrint(t *testing.T) {
	u := unit.New("t.as")
	Run(u, lines("prn #-5"))
	if u.Diags.HasErrors() {
		t.Fatalf("Run got errors: %v expected: none", u.Diags.Items())
	}
	if len(u.Image.Code) != 2 {
		t.Fatalf("code image got: %d words expected: 2", len(u.Image.Code))
	}
	operand := u.Image.Code[1]
	if operand.Kind != image.Operand || operand.ARE != image.Absolute || operand.Value != image.TwosComplement(-5, 12) {
		t.Errorf("operand word got: %+v expected: Operand{Value: %d, ARE: Absolute}", operand, image.TwosComplement(-5, 12))
	}
}

func TestDataAndEntry(t *testing.T) {
	u := unit.New("t.as")
	Run(u, lines("LEN: .data 6,-9,15", ".entry LEN"))
	if u.Diags.HasErrors() {
		t.Fatalf("Run got errors: %v expected: none", u.Diags.Items())
	}
	if len(u.Image.Data) != 3 {
		t.Fatalf("data image got: %d words expected: 3", len(u.Image.Data))
	}
	sym, ok := u.Symbols.Lookup("LEN")
	if !ok || sym.Value != 0 {
		t.Errorf("symbol LEN got: %v expected: value 0 (pre-relocation)", sym)
	}
	if len(u.Entries) != 1 || u.Entries[0].Name != "LEN" {
		t.Errorf("entries got: %v expected: [LEN]", u.Entries)
	}
}

func TestExternReference(t *testing.T) {
	u := unit.New("t.as")
	Run(u, lines(".extern EXT", "jmp EXT"))
	if u.Diags.HasErrors() {
		t.Fatalf("Run got errors: %v expected: none", u.Diags.Items())
	}
	sym, ok := u.Symbols.Lookup("EXT")
	if !ok || sym.Value != 0 {
		t.Errorf("symbol EXT got: %v expected: value 0", sym)
	}
	if len(u.Image.Code) != 2 {
		t.Fatalf("code image got: %d words expected: 2", len(u.Image.Code))
	}
	if u.Image.Code[1].Kind != image.Placeholder || u.Image.Code[1].Symbol != "EXT" {
		t.Errorf("operand word got: %+v expected: Placeholder{Symbol: EXT}", u.Image.Code[1])
	}
}

func TestIllegalAddressingMode(t *testing.T) {
	u := unit.New("t.as")
	Run(u, lines("mov r3, #5"))
	if !u.Diags.HasErrors() {
		t.Fatal("Run(mov r3, #5) got: no errors expected: an error")
	}
	want := `t.as:1: error: immediate mode illegal as destination for mov`
	got := u.Diags.Items()[0].String()
	if got != want {
		t.Errorf("diagnostic got: %q expected: %q", got, want)
	}
}

func TestRegisterPairSharesOneWord(t *testing.T) {
	u := unit.New("t.as")
	Run(u, lines("mov r1, r2"))
	if u.Diags.HasErrors() {
		t.Fatalf("Run got errors: %v expected: none", u.Diags.Items())
	}
	if len(u.Image.Code) != 2 {
		t.Fatalf("code image got: %d words expected: 2 (one instruction word, one shared register word)", len(u.Image.Code))
	}
	want := image.RegisterPairWord(1, 2)
	if u.Image.Code[1] != want {
		t.Errorf("register pair word got: %+v expected: %+v", u.Image.Code[1], want)
	}
}

func TestSoloRegisterGetsOwnWord(t *testing.T) {
	u := unit.New("t.as")
	Run(u, lines("add #5, r1"))
	if u.Diags.HasErrors() {
		t.Fatalf("Run got errors: %v expected: none", u.Diags.Items())
	}
	// Instruction word, immediate word, and a dedicated register word
	// for the solo register operand (not paired, since the source is
	// Immediate rather than Register).
	if len(u.Image.Code) != 3 {
		t.Fatalf("code image got: %d words expected: 3", len(u.Image.Code))
	}
	want := image.RegisterWord(1)
	if u.Image.Code[2] != want {
		t.Errorf("solo register word got: %+v expected: %+v", u.Image.Code[2], want)
	}
}

func TestStringDirective(t *testing.T) {
	u := unit.New("t.as")
	Run(u, lines(`MSG: .string "hi"`))
	if u.Diags.HasErrors() {
		t.Fatalf("Run got errors: %v expected: none", u.Diags.Items())
	}
	if len(u.Image.Data) != 3 {
		t.Fatalf("data image got: %d words expected: 3 (one per character plus a terminating 0)", len(u.Image.Data))
	}
	want := []image.Word{image.DataWord('h'), image.DataWord('i'), image.DataWord(0)}
	for i, w := range want {
		if u.Image.Data[i] != w {
			t.Errorf("data word %d got: %+v expected: %+v", i, u.Image.Data[i], w)
		}
	}
	sym, ok := u.Symbols.Lookup("MSG")
	if !ok || sym.Value != 0 {
		t.Errorf("symbol MSG got: %v expected: value 0 (pre-relocation)", sym)
	}
}

func TestMemoryOverflow(t *testing.T) {
	u := unit.New("t.as")
	var src []string
	for i := 0; i < 257; i++ {
		src = append(src, "stop")
	}
	Run(u, lines(src...))
	if !u.Diags.HasErrors() {
		t.Error("Run(257 stops) got: no errors expected: a memory overflow error")
	}
}
