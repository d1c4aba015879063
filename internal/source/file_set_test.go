package source

import (
	"testing"
)

func TestFileSet_AddAndLookup(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.widl", []byte("struct Point {\n};\n"))

	got, ok := fs.Lookup("a.widl")
	if !ok || got != id {
		t.Fatalf("Lookup(a.widl) = %v, %v; want %v, true", got, ok, id)
	}
	if fs.Get(id).Flags&FileVirtual == 0 {
		t.Fatal("expected FileVirtual flag")
	}
	if fs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", fs.Len())
	}
}

func TestFileSet_ResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	content := "module demo;\nstruct P {\n};\n"
	id := fs.AddVirtual("demo.widl", []byte(content))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},   // 'm' in module
		{7, 1, 8},   // 'd' in demo
		{13, 2, 1},  // 's' in struct
		{20, 2, 8},  // 'P'
		{24, 3, 1},  // '}'
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off + 1})
		if start.Line != tc.line || start.Col != tc.col {
			t.Fatalf("Resolve(off=%d) = %d:%d, want %d:%d",
				tc.off, start.Line, start.Col, tc.line, tc.col)
		}
	}
}

func TestFileSet_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.widl", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "one" {
		t.Fatalf("GetLine(1) = %q, want %q", got, "one")
	}
	if got := f.GetLine(2); got != "two" {
		t.Fatalf("GetLine(2) = %q, want %q", got, "two")
	}
	if got := f.GetLine(3); got != "three" {
		t.Fatalf("GetLine(3) = %q, want %q", got, "three")
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("GetLine(4) = %q, want empty", got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	in := []byte("a\r\nb\rc\r\n")
	out, changed := normalizeCRLF(in)
	if !changed {
		t.Fatal("expected changed = true")
	}
	if string(out) != "a\nb\rc\n" {
		t.Fatalf("normalizeCRLF = %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Fatalf("normalizeCRLF(plain) = %q, %v", out, changed)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Fatalf("removeBOM = %q, %v", out, had)
	}
	out, had = removeBOM([]byte("xy"))
	if had || string(out) != "xy" {
		t.Fatalf("removeBOM(short) = %q, %v", out, had)
	}
}
