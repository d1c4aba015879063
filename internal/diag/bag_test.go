package diag

import (
	"testing"

	"widl/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBag_LimitAndErrors(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SemaDuplicateName, span(0, 0, 1), "dup")) {
		t.Fatal("first Add rejected")
	}
	if !b.Add(New(SevWarning, UnknownCode, span(0, 1, 2), "warn")) {
		t.Fatal("second Add rejected")
	}
	if b.Add(NewError(UnknownCode, span(0, 2, 3), "overflow")) {
		t.Fatal("Add beyond limit accepted")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatal("expected both errors and warnings present")
	}
}

func TestBag_SortDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, LexBadNumber, span(1, 5, 6), "b"))
	b.Add(NewError(SemaInvalidBound, span(0, 9, 10), "c"))
	b.Add(NewError(SemaDuplicateName, span(0, 2, 4), "a"))
	b.Sort()

	items := b.Items()
	if items[0].Code != SemaDuplicateName {
		t.Fatalf("items[0].Code = %v", items[0].Code)
	}
	if items[1].Code != SemaInvalidBound {
		t.Fatalf("items[1].Code = %v", items[1].Code)
	}
	if items[2].Primary.File != 1 {
		t.Fatalf("items[2] file = %d, want 1", items[2].Primary.File)
	}
}

func TestBag_Dedup(t *testing.T) {
	b := NewBag(10)
	d := NewError(SemaDuplicateOrdinal, span(0, 0, 3), "twice")
	b.Add(d)
	b.Add(d)
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("Len() after Dedup = %d, want 1", b.Len())
	}
}

func TestCode_ID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:          "LEX1001",
		SynUnexpectedToken:      "SYN2001",
		SemaUnresolvedReference: "SEM3003",
		IOManifest:              "IO4001",
		UnknownCode:             "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Fatalf("Code(%d).ID() = %q, want %q", code, got, want)
		}
	}
}
