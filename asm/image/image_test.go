package image

import "testing"

func TestTwosComplement(t *testing.T) {
	got := TwosComplement(-9, 14)
	want := 0x3ff7 // 11111111110111
	if got != want {
		t.Errorf("TwosComplement(-9, 14) got: %014b expected: %014b", got, want)
	}

	got = TwosComplement(15, 14)
	if got != 15 {
		t.Errorf("TwosComplement(15, 14) got: %d expected: 15", got)
	}
}

func TestEncodeInstruction(t *testing.T) {
	w := Word{Kind: Instruction, Opcode: 15}
	if w.Encode() != uint16(15)<<8 {
		t.Errorf("Encode(stop) got: %014b expected: %014b", w.Encode(), uint16(15)<<8)
	}
}

func TestEncodeImmediate(t *testing.T) {
	w := ImmediateWord(-5)
	got := w.Encode()
	want := uint16((TwosComplement(-5, 12) << 2) | Absolute)
	if got != want {
		t.Errorf("Encode(immediate -5) got: %014b expected: %014b", got, want)
	}
}

func TestEncodeData(t *testing.T) {
	w := DataWord(-9)
	got := w.Encode()
	want := uint16(TwosComplement(-9, 14))
	if got != want {
		t.Errorf("Encode(data -9) got: %014b expected: %014b", got, want)
	}
}

func TestRegisterPairWord(t *testing.T) {
	w := RegisterPairWord(1, 2)
	got := w.Encode()
	want := uint16((1<<3 | 2) << 2)
	if got != want {
		t.Errorf("Encode(register pair) got: %014b expected: %014b", got, want)
	}
}

func TestImageLayout(t *testing.T) {
	img := New()
	if img.IC() != 100 {
		t.Errorf("IC() on empty image got: %d expected: 100", img.IC())
	}
	addr := img.AppendCode(Word{Kind: Instruction, Opcode: 15})
	if addr != 100 {
		t.Errorf("AppendCode first address got: %d expected: 100", addr)
	}
	if img.IC() != 101 {
		t.Errorf("IC() after one code word got: %d expected: 101", img.IC())
	}
	if img.DC() != 0 {
		t.Errorf("DC() on empty data image got: %d expected: 0", img.DC())
	}
	img.AppendData(DataWord(6))
	if img.DC() != 1 {
		t.Errorf("DC() after one data word got: %d expected: 1", img.DC())
	}
}

func TestOverflow(t *testing.T) {
	img := New()
	for i := 0; i < 256; i++ {
		img.AppendCode(Word{Kind: Instruction})
	}
	if !img.Overflow() {
		t.Error("Overflow() got: false expected: true after 256 code words")
	}
}
