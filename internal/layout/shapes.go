package layout

import (
	"widl/internal/ast"
)

// Wire shapes of the fixed-size leaf types.
var (
	handleShape = New(4, 4)

	int8Shape    = New(1, 1)
	int16Shape   = New(2, 2)
	int32Shape   = New(4, 4)
	int64Shape   = New(8, 8)
	uint8Shape   = New(1, 1)
	uint16Shape  = New(2, 2)
	uint32Shape  = New(4, 4)
	uint64Shape  = New(8, 8)
	boolShape    = New(1, 1)
	float32Shape = New(4, 4)
	float64Shape = New(8, 8)
)

// Vector and string values occupy a fixed inline descriptor (8-byte count
// word plus 8-byte data reference); the element storage is one out-of-line
// allocation.
const (
	descriptorSize  = 16
	descriptorAlign = 8
)

// Handle is the shape of a wire-transferable handle reference. Protocol
// request endpoints share it.
func Handle() TypeShape {
	return handleShape
}

// Primitive returns the fixed shape of a primitive subtype.
func Primitive(sub ast.PrimitiveSubtype) TypeShape {
	switch sub {
	case ast.PrimitiveInt8:
		return int8Shape
	case ast.PrimitiveInt16:
		return int16Shape
	case ast.PrimitiveInt32:
		return int32Shape
	case ast.PrimitiveInt64:
		return int64Shape
	case ast.PrimitiveUint8:
		return uint8Shape
	case ast.PrimitiveUint16:
		return uint16Shape
	case ast.PrimitiveUint32:
		return uint32Shape
	case ast.PrimitiveUint64:
		return uint64Shape
	case ast.PrimitiveBool:
		return boolShape
	case ast.PrimitiveFloat32:
		return float32Shape
	case ast.PrimitiveFloat64:
		return float64Shape
	default:
		return Empty()
	}
}

// Array is the shape of count inline-contiguous elements.
func Array(elem TypeShape, count int) TypeShape {
	return TypeShape{
		Size:        elem.Size * count,
		Align:       elem.Align,
		Allocations: nil,
	}
}

// Vector is the inline descriptor shape carrying one out-of-line allocation
// for the element storage. The element's own allocations nest inside it.
func Vector(elem TypeShape, bound int64) TypeShape {
	return TypeShape{
		Size:  descriptorSize,
		Align: descriptorAlign,
		Allocations: []Allocation{
			{Shape: elem, Bound: bound},
		},
	}
}

// String is a vector of uint8 bytes.
func String(bound int64) TypeShape {
	return Vector(uint8Shape, bound)
}

// Union combines two variant shapes into one padded storage slot sized to
// the larger variant: align = max alignment, size = max size rounded up.
// Allocation lists concatenate in member order.
func Union(a, b TypeShape) TypeShape {
	align := a.Align
	if b.Align > align {
		align = b.Align
	}
	size := a.Size
	if b.Size > size {
		size = b.Size
	}
	var allocs []Allocation
	if n := len(a.Allocations) + len(b.Allocations); n > 0 {
		allocs = make([]Allocation, 0, n)
		allocs = append(allocs, a.Allocations...)
		allocs = append(allocs, b.Allocations...)
	}
	return TypeShape{
		Size:        RoundUp(size, align),
		Align:       align,
		Allocations: allocs,
	}
}

// Struct places members at increasing offsets in declaration order, each at
// the next multiple of its alignment, and rounds the total up to the
// aggregate alignment. Members are not reordered. An empty struct is (0, 1).
func Struct(members []TypeShape) TypeShape {
	size := 0
	align := 1
	var allocs []Allocation
	for _, m := range members {
		size = RoundUp(size, m.Align) + m.Size
		if m.Align > align {
			align = m.Align
		}
		allocs = append(allocs, m.Allocations...)
	}
	return TypeShape{
		Size:        RoundUp(size, align),
		Align:       align,
		Allocations: allocs,
	}
}
