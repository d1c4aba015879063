package sema

import (
	"testing"

	"widl/internal/ast"
	"widl/internal/diag"
	"widl/internal/parser"
	"widl/internal/source"
)

func parseTestFile(t *testing.T, src string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.widl", []byte(src))
	file, err := parser.ParseFile(fs.Get(id), diag.NopReporter{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return file
}

func newTestSession(t *testing.T) (*Session, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(16)
	return NewSession(diag.BagReporter{Bag: bag}), bag
}

func consumeSource(t *testing.T, s *Session, src string) error {
	t.Helper()
	return s.ConsumeFile(parseTestFile(t, src))
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestConsume_FlattensAllKinds(t *testing.T) {
	s, _ := newTestSession(t)
	err := consumeSource(t, s, `
const uint32 kLimit = 16;
enum Color { Red; Green; };
interface Painter {
    1: Fill(Color c);
};
struct Point { int32 x; int32 y; };
union Shade { Color named; uint32 raw; };
`)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	if len(s.Consts) != 1 || len(s.Enums) != 1 || len(s.Interfaces) != 1 ||
		len(s.Structs) != 1 || len(s.Unions) != 1 {
		t.Fatalf("counts = %d/%d/%d/%d/%d",
			len(s.Consts), len(s.Enums), len(s.Interfaces), len(s.Structs), len(s.Unions))
	}
	for _, name := range []string{"kLimit", "Color", "Painter", "Point", "Shade"} {
		if !s.Table.Registered(name) {
			t.Fatalf("%q not registered", name)
		}
	}
}

func TestConsume_HoistsNestedDeclarations(t *testing.T) {
	s, _ := newTestSession(t)
	err := consumeSource(t, s, `
interface Device {
    const uint32 kVersion = 2;
    enum State { Idle; Busy; };
    1: Query() -> (State s);
};
struct Config {
    const uint8 kPad = 0;
    enum Layout { Packed; Loose; };
    Layout layout;
};
`)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	if len(s.Consts) != 2 {
		t.Fatalf("hoisted consts = %d", len(s.Consts))
	}
	if len(s.Enums) != 2 {
		t.Fatalf("hoisted enums = %d", len(s.Enums))
	}
	// Nested members register ahead of their container.
	for _, name := range []string{"kVersion", "State", "Device", "kPad", "Layout", "Config"} {
		if !s.Table.Registered(name) {
			t.Fatalf("%q not registered", name)
		}
	}
}

func TestConsume_DefaultEnumSubtype(t *testing.T) {
	s, _ := newTestSession(t)
	if err := consumeSource(t, s, "enum E { A; };"); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if got := s.Enums[0].Type.Subtype; got != ast.PrimitiveUint32 {
		t.Fatalf("default subtype = %v", got)
	}
}

func TestConsume_DuplicateTopLevelName(t *testing.T) {
	s, bag := newTestSession(t)
	err := consumeSource(t, s, `
struct Thing { int32 a; };
enum Thing { A; };
`)
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	if !hasCode(bag, diag.SemaDuplicateName) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestConsume_DuplicateAcrossFiles(t *testing.T) {
	s, bag := newTestSession(t)
	if err := consumeSource(t, s, "const uint8 kA = 1;"); err != nil {
		t.Fatalf("first file: %v", err)
	}
	if err := consumeSource(t, s, "struct kA { int8 x; };"); err == nil {
		t.Fatal("expected duplicate across files")
	}
	if !hasCode(bag, diag.SemaDuplicateName) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestConsume_NestedCollidesWithTopLevel(t *testing.T) {
	s, bag := newTestSession(t)
	err := consumeSource(t, s, `
enum Mode { On; };
interface Ctl {
    enum Mode { Off; };
    1: Set(uint32 v);
};
`)
	if err == nil {
		t.Fatal("expected collision; nested names share the flat namespace")
	}
	if !hasCode(bag, diag.SemaDuplicateName) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestConsume_OrdinalParsing(t *testing.T) {
	s, _ := newTestSession(t)
	err := consumeSource(t, s, `
interface Wire {
    0x10: Hex();
    12: Dec();
};
`)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	methods := s.Interfaces[0].Methods
	if methods[0].Ordinal.Value() != 16 || methods[1].Ordinal.Value() != 12 {
		t.Fatalf("ordinals = %d, %d", methods[0].Ordinal.Value(), methods[1].Ordinal.Value())
	}
}

func TestConsume_OrdinalOverflow(t *testing.T) {
	s, bag := newTestSession(t)
	err := consumeSource(t, s, `
interface Wire {
    4294967296: TooBig();
};
`)
	if err == nil {
		t.Fatal("expected overflow error")
	}
	if !hasCode(bag, diag.SemaMalformedOrdinal) {
		t.Fatalf("diags = %+v", bag.Items())
	}
	if len(s.Interfaces) != 0 {
		t.Fatal("failed interface must not be recorded")
	}
}
