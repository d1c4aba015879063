package layout

import (
	"testing"

	"widl/internal/ast"
)

func TestPrimitive_TableFidelity(t *testing.T) {
	cases := []struct {
		sub   ast.PrimitiveSubtype
		size  int
		align int
	}{
		{ast.PrimitiveBool, 1, 1},
		{ast.PrimitiveInt8, 1, 1},
		{ast.PrimitiveInt16, 2, 2},
		{ast.PrimitiveInt32, 4, 4},
		{ast.PrimitiveInt64, 8, 8},
		{ast.PrimitiveUint8, 1, 1},
		{ast.PrimitiveUint16, 2, 2},
		{ast.PrimitiveUint32, 4, 4},
		{ast.PrimitiveUint64, 8, 8},
		{ast.PrimitiveFloat32, 4, 4},
		{ast.PrimitiveFloat64, 8, 8},
	}
	for _, tc := range cases {
		got := Primitive(tc.sub)
		if got.Size != tc.size || got.Align != tc.align {
			t.Fatalf("Primitive(%v) = (%d,%d), want (%d,%d)",
				tc.sub, got.Size, got.Align, tc.size, tc.align)
		}
		if len(got.Allocations) != 0 {
			t.Fatalf("Primitive(%v) has allocations", tc.sub)
		}
	}

	if h := Handle(); h.Size != 4 || h.Align != 4 {
		t.Fatalf("Handle() = (%d,%d), want (4,4)", h.Size, h.Align)
	}
}

func TestArray_InlineContiguous(t *testing.T) {
	got := Array(Primitive(ast.PrimitiveUint32), 4)
	if got.Size != 16 || got.Align != 4 {
		t.Fatalf("Array(uint32, 4) = (%d,%d), want (16,4)", got.Size, got.Align)
	}
	if len(got.Allocations) != 0 {
		t.Fatal("array shape must not carry allocations")
	}
}

func TestUnion_Padding(t *testing.T) {
	got := Union(Primitive(ast.PrimitiveInt8), Primitive(ast.PrimitiveUint64))
	if got.Size != 8 || got.Align != 8 {
		t.Fatalf("Union(int8, uint64) = (%d,%d), want (8,8)", got.Size, got.Align)
	}
}

func TestUnion_OrderIndependent(t *testing.T) {
	shapes := []TypeShape{
		Primitive(ast.PrimitiveInt8),
		Primitive(ast.PrimitiveUint64),
		Array(Primitive(ast.PrimitiveUint16), 3),
		String(Unbounded),
	}
	perms := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}

	var wantSize, wantAlign int
	for pi, perm := range perms {
		acc := Empty()
		for _, i := range perm {
			acc = Union(acc, shapes[i])
		}
		if pi == 0 {
			wantSize, wantAlign = acc.Size, acc.Align
			continue
		}
		if acc.Size != wantSize || acc.Align != wantAlign {
			t.Fatalf("permutation %v: (%d,%d), want (%d,%d)",
				perm, acc.Size, acc.Align, wantSize, wantAlign)
		}
	}
}

func TestVector_DescriptorAndAllocation(t *testing.T) {
	elem := Primitive(ast.PrimitiveInt32)
	got := Vector(elem, 8)
	if got.Size != 16 || got.Align != 8 {
		t.Fatalf("Vector inline = (%d,%d), want (16,8)", got.Size, got.Align)
	}
	if len(got.Allocations) != 1 {
		t.Fatalf("allocations = %d, want 1", len(got.Allocations))
	}
	alloc := got.Allocations[0]
	if alloc.Bound != 8 {
		t.Fatalf("bound = %d, want 8", alloc.Bound)
	}
	if alloc.Shape.Size != 4 || alloc.Shape.Align != 4 {
		t.Fatalf("element shape = (%d,%d), want (4,4)", alloc.Shape.Size, alloc.Shape.Align)
	}
}

func TestVector_OfVectorsNests(t *testing.T) {
	inner := Vector(Primitive(ast.PrimitiveUint8), Unbounded)
	outer := Vector(inner, 4)

	if len(outer.Allocations) != 1 {
		t.Fatalf("outer allocations = %d, want 1", len(outer.Allocations))
	}
	outerAlloc := outer.Allocations[0]
	if outerAlloc.Bound != 4 {
		t.Fatalf("outer bound = %d, want 4", outerAlloc.Bound)
	}
	if len(outerAlloc.Shape.Allocations) != 1 {
		t.Fatalf("inner allocations = %d, want 1", len(outerAlloc.Shape.Allocations))
	}
	if outerAlloc.Shape.Allocations[0].Bound != Unbounded {
		t.Fatal("inner allocation must be unbounded")
	}
}

func TestString_IsByteVector(t *testing.T) {
	got := String(32)
	if got.Size != 16 || got.Align != 8 {
		t.Fatalf("String inline = (%d,%d), want (16,8)", got.Size, got.Align)
	}
	if len(got.Allocations) != 1 || got.Allocations[0].Bound != 32 {
		t.Fatalf("allocations = %+v", got.Allocations)
	}
	if got.Allocations[0].Shape.Size != 1 {
		t.Fatal("string elements must be bytes")
	}
}

func TestStruct_DeclarationOrderOffsets(t *testing.T) {
	// uint8 at 0, uint32 at 4..8, uint8 at 8; align 4 -> size 12.
	got := Struct([]TypeShape{
		Primitive(ast.PrimitiveUint8),
		Primitive(ast.PrimitiveUint32),
		Primitive(ast.PrimitiveUint8),
	})
	if got.Size != 12 || got.Align != 4 {
		t.Fatalf("Struct = (%d,%d), want (12,4)", got.Size, got.Align)
	}

	empty := Struct(nil)
	if empty.Size != 0 || empty.Align != 1 {
		t.Fatalf("empty Struct = (%d,%d), want (0,1)", empty.Size, empty.Align)
	}
}

func TestShapes_AlignmentInvariant(t *testing.T) {
	shapes := []TypeShape{
		Primitive(ast.PrimitiveBool),
		Handle(),
		Array(Primitive(ast.PrimitiveInt64), 3),
		Vector(Primitive(ast.PrimitiveInt16), 5),
		String(Unbounded),
		Union(Primitive(ast.PrimitiveInt8), String(Unbounded)),
		Struct([]TypeShape{Primitive(ast.PrimitiveUint16), Primitive(ast.PrimitiveUint64)}),
	}
	for i, s := range shapes {
		if s.Align == 0 || s.Align&(s.Align-1) != 0 {
			t.Fatalf("shape[%d] alignment %d is not a power of two", i, s.Align)
		}
		if s.Size%s.Align != 0 {
			t.Fatalf("shape[%d] size %d not a multiple of alignment %d", i, s.Size, s.Align)
		}
	}
}

func TestNew_RejectsBadAlignment(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-power-of-two alignment")
		}
	}()
	New(4, 3)
}
