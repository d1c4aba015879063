// Package layout models the wire-format shape of widl types: the size and
// alignment a value occupies inline in a message, plus the out-of-line
// allocations implied by vectors and strings nested within it.
package layout

import (
	"fmt"
)

// Unbounded marks an allocation without an element count cap.
const Unbounded int64 = -1

// TypeShape is the inline shape of a value plus its out-of-line structure.
// Align is always a nonzero power of two; Size is a multiple of Align.
type TypeShape struct {
	Size        int
	Align       int
	Allocations []Allocation
}

// Allocation is one indirect storage region: pointer-sized reference inline,
// contents out of line. Bound caps the element count, or Unbounded.
// Allocations nest through Shape.Allocations (vector of vectors).
type Allocation struct {
	Shape TypeShape
	Bound int64
}

// New builds a TypeShape with no allocations, checking the alignment
// invariant.
func New(size, align int) TypeShape {
	if align == 0 || align&(align-1) != 0 {
		panic(fmt.Errorf("layout: alignment %d is not a power of two", align))
	}
	return TypeShape{Size: size, Align: align}
}

// Empty is the shape of a registered-but-unresolved type: zero size,
// alignment one.
func Empty() TypeShape {
	return TypeShape{Size: 0, Align: 1}
}

// RoundUp rounds x up to the next multiple of align (a power of two).
func RoundUp(x, align int) int {
	return (x + align - 1) &^ (align - 1)
}
