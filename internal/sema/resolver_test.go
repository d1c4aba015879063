package sema

import (
	"testing"

	"widl/internal/diag"
	"widl/internal/layout"
)

func compileSource(t *testing.T, srcs ...string) (*Session, *diag.Bag, error) {
	t.Helper()
	s, bag := newTestSession(t)
	for _, src := range srcs {
		if err := s.ConsumeFile(parseTestFile(t, src)); err != nil {
			return s, bag, err
		}
	}
	return s, bag, s.Resolve()
}

func mustCompile(t *testing.T, srcs ...string) *Session {
	t.Helper()
	s, bag, err := compileSource(t, srcs...)
	if err != nil {
		t.Fatalf("compile: %v (diags: %+v)", err, bag.Items())
	}
	return s
}

func shapeOf(t *testing.T, s *Session, name string) layout.TypeShape {
	t.Helper()
	shape, ok := s.Table.LookupShape(name)
	if !ok {
		t.Fatalf("%q has no resolved shape", name)
	}
	return shape
}

func TestResolve_EnumShapes(t *testing.T) {
	s := mustCompile(t, `
enum Small : int8 { A; };
enum Wide : uint64 { A64; };
enum Plain { B; };
`)
	if got := shapeOf(t, s, "Small"); got.Size != 1 || got.Align != 1 {
		t.Fatalf("Small = %+v", got)
	}
	if got := shapeOf(t, s, "Wide"); got.Size != 8 || got.Align != 8 {
		t.Fatalf("Wide = %+v", got)
	}
	// Defaulted subtype is uint32.
	if got := shapeOf(t, s, "Plain"); got.Size != 4 || got.Align != 4 {
		t.Fatalf("Plain = %+v", got)
	}
}

func TestResolve_UnionShape(t *testing.T) {
	s := mustCompile(t, `
union Pad { uint8 tiny; uint32 word; };
union Wide { int8 a; int64 b; };
`)
	// Max align 4, sizes rounded up to it.
	if got := shapeOf(t, s, "Pad"); got.Size != 4 || got.Align != 4 {
		t.Fatalf("Pad = %+v", got)
	}
	if got := shapeOf(t, s, "Wide"); got.Size != 8 || got.Align != 8 {
		t.Fatalf("Wide = %+v", got)
	}
}

func TestResolve_UnionWithVectorMember(t *testing.T) {
	s := mustCompile(t, "union Payload { vector<uint8>:256 bytes; uint32 code; };")
	got := shapeOf(t, s, "Payload")
	// Vector descriptor dominates: 16 bytes at alignment 8.
	if got.Size != 16 || got.Align != 8 {
		t.Fatalf("Payload = %+v", got)
	}
	if len(got.Allocations) != 1 {
		t.Fatalf("allocations = %+v", got.Allocations)
	}
	if got.Allocations[0].Bound != 256 {
		t.Fatalf("bound = %d", got.Allocations[0].Bound)
	}
}

func TestResolve_ArrayBoundFromNamedConstant(t *testing.T) {
	// Identifier-valued counts evaluate to the fixed placeholder until
	// constant folding lands.
	s := mustCompile(t, `
const uint32 kSize = 64;
union Box { array<uint8>:kSize data; };
`)
	if got := shapeOf(t, s, "Box"); got.Size != 23 || got.Align != 1 {
		t.Fatalf("Box = %+v", got)
	}
}

func TestResolve_ForwardReferenceWithinFile(t *testing.T) {
	s := mustCompile(t, `
struct Holder { Late value; };
union Late { int32 a; int64 b; };
`)
	if got := shapeOf(t, s, "Late"); got.Size != 8 || got.Align != 8 {
		t.Fatalf("Late = %+v", got)
	}
}

func TestResolve_ForwardReferenceAcrossFiles(t *testing.T) {
	mustCompile(t,
		"struct User { Remote r; };",
		"enum Remote : uint16 { A; };",
	)
}

func TestResolve_UnknownTypeFailsAndRegistersNothing(t *testing.T) {
	s, bag, err := compileSource(t, "union Broken { Missing m; int32 ok; };")
	if err == nil {
		t.Fatal("expected unresolved reference")
	}
	if !hasCode(bag, diag.SemaUnresolvedReference) {
		t.Fatalf("diags = %+v", bag.Items())
	}
	if _, ok := s.Table.LookupShape("Broken"); ok {
		t.Fatal("failed union must not register a shape")
	}
}

func TestResolve_FailureStopsPass(t *testing.T) {
	s, _, err := compileSource(t, `
union First { Missing m; };
union Second { int32 a; };
`)
	if err == nil {
		t.Fatal("expected failure")
	}
	if _, ok := s.Table.LookupShape("Second"); ok {
		t.Fatal("resolution past the first failure must not happen")
	}
}

func TestResolve_NonIntegerEnumSubtype(t *testing.T) {
	s, bag, err := compileSource(t, "enum Bad : float32 { A; };")
	if err == nil {
		t.Fatal("expected invalid subtype error")
	}
	if !hasCode(bag, diag.SemaInvalidEnumSubtype) {
		t.Fatalf("diags = %+v", bag.Items())
	}
	if s.Table.ResolvedCount() != 0 {
		t.Fatal("no shape may be registered for a rejected enum")
	}
}

func TestResolve_DuplicateEnumMember(t *testing.T) {
	s, bag, err := compileSource(t, "enum E { A; A; };")
	if err == nil {
		t.Fatal("expected duplicate member error")
	}
	if !hasCode(bag, diag.SemaDuplicateName) {
		t.Fatalf("diags = %+v", bag.Items())
	}
	if _, ok := s.Table.LookupShape("E"); ok {
		t.Fatal("rejected enum must not register a shape")
	}
}

func TestResolve_DuplicateStructMember(t *testing.T) {
	_, bag, err := compileSource(t, "struct S { int32 x; int8 x; };")
	if err == nil {
		t.Fatal("expected duplicate member error")
	}
	if !hasCode(bag, diag.SemaDuplicateName) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestResolve_InterfaceScopes(t *testing.T) {
	// Parameter names are scoped per direction; request and response may
	// reuse a name, and so may different methods.
	mustCompile(t, `
interface Echo {
    1: Send(int32 v) -> (int32 v);
    2: Other(int32 v);
};
`)
}

func TestResolve_DuplicateMethodOrdinal(t *testing.T) {
	_, bag, err := compileSource(t, `
interface I {
    1: A();
    1: B();
};
`)
	if err == nil {
		t.Fatal("expected duplicate ordinal error")
	}
	if !hasCode(bag, diag.SemaDuplicateOrdinal) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestResolve_DuplicateMethodName(t *testing.T) {
	_, bag, err := compileSource(t, `
interface I {
    1: Same();
    2: Same();
};
`)
	if err == nil {
		t.Fatal("expected duplicate method error")
	}
	if !hasCode(bag, diag.SemaDuplicateName) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestResolve_DuplicateParameter(t *testing.T) {
	_, bag, err := compileSource(t, `
interface I {
    1: M(int32 a, int8 a);
};
`)
	if err == nil {
		t.Fatal("expected duplicate parameter error")
	}
	if !hasCode(bag, diag.SemaDuplicateName) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestResolve_RequestTypeNeedsRegisteredName(t *testing.T) {
	mustCompile(t, `
interface Proto { 1: Ping(); };
struct Conn { request<Proto> r; };
`)

	_, bag, err := compileSource(t, "struct Conn { request<Nothing> r; };")
	if err == nil {
		t.Fatal("expected unresolved reference")
	}
	if !hasCode(bag, diag.SemaUnresolvedReference) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestResolve_InvalidBound(t *testing.T) {
	_, bag, err := compileSource(t, "struct S { vector<uint8>:0 v; };")
	if err == nil {
		t.Fatal("expected bound error")
	}
	if !hasCode(bag, diag.SemaInvalidBound) {
		t.Fatalf("diags = %+v", bag.Items())
	}
}

func TestResolve_StructAggregateNotRegistered(t *testing.T) {
	s := mustCompile(t, "struct P { int32 x; int32 y; };")
	if _, ok := s.Table.LookupShape("P"); ok {
		t.Fatal("struct aggregates are computed on demand, not registered")
	}
	if !s.Table.Registered("P") {
		t.Fatal("struct name must still be registered")
	}
}

func TestResolve_InterfaceHasNoShape(t *testing.T) {
	s := mustCompile(t, "interface I { 1: Ping(); };")
	if _, ok := s.Table.LookupShape("I"); ok {
		t.Fatal("interfaces carry no wire shape")
	}
}
