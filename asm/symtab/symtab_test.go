package symtab

import "testing"

func TestInsertUniqueAndLookup(t *testing.T) {
	tab := New()
	if err := tab.InsertUnique("MAIN", 100, Code); err != nil {
		t.Fatalf("InsertUnique got error: %v expected: nil", err)
	}
	sym, ok := tab.Lookup("MAIN")
	if !ok {
		t.Fatal("Lookup(MAIN) got: not found expected: found")
	}
	if sym.Value != 100 || sym.Kind != Code {
		t.Errorf("Lookup(MAIN) got: {Value: %d, Kind: %v} expected: {Value: 100, Kind: code}", sym.Value, sym.Kind)
	}

	if err := tab.InsertUnique("MAIN", 200, Data); err == nil {
		t.Error("InsertUnique duplicate got: nil error expected: an error")
	}
}

func TestMarkEntry(t *testing.T) {
	tab := New()
	tab.InsertUnique("LEN", 0, Data)
	if err := tab.MarkEntry("LEN"); err != nil {
		t.Errorf("MarkEntry got error: %v expected: nil", err)
	}
	if err := tab.MarkEntry("MISSING"); err == nil {
		t.Error("MarkEntry(MISSING) got: nil error expected: an error")
	}

	entries := tab.IterEntries()
	if len(entries) != 1 || entries[0].Name != "LEN" {
		t.Errorf("IterEntries got: %v expected: [LEN]", entries)
	}
}

func TestRelocateData(t *testing.T) {
	tab := New()
	tab.InsertUnique("CODE1", 100, Code)
	tab.InsertUnique("DATA1", 0, Data)
	tab.InsertUnique("DATA2", 3, Data)

	tab.RelocateData(103)

	code, _ := tab.Lookup("CODE1")
	if code.Value != 100 {
		t.Errorf("RelocateData moved a code symbol got: %d expected: 100", code.Value)
	}
	data1, _ := tab.Lookup("DATA1")
	if data1.Value != 103 {
		t.Errorf("RelocateData(DATA1) got: %d expected: 103", data1.Value)
	}
	data2, _ := tab.Lookup("DATA2")
	if data2.Value != 106 {
		t.Errorf("RelocateData(DATA2) got: %d expected: 106", data2.Value)
	}
}

func TestNamesOrder(t *testing.T) {
	tab := New()
	tab.InsertUnique("B", 0, Code)
	tab.InsertUnique("A", 1, Code)
	names := tab.Names()
	if len(names) != 2 || names[0] != "B" || names[1] != "A" {
		t.Errorf("Names got: %v expected: [B A]", names)
	}
}
