package ast

import (
	"fmt"

	"widl/internal/source"
)

// PrimitiveSubtype enumerates the fixed-size wire primitives.
type PrimitiveSubtype uint8

const (
	PrimitiveInvalid PrimitiveSubtype = iota
	PrimitiveBool
	PrimitiveInt8
	PrimitiveInt16
	PrimitiveInt32
	PrimitiveInt64
	PrimitiveUint8
	PrimitiveUint16
	PrimitiveUint32
	PrimitiveUint64
	PrimitiveFloat32
	PrimitiveFloat64
)

func (p PrimitiveSubtype) String() string {
	switch p {
	case PrimitiveBool:
		return "bool"
	case PrimitiveInt8:
		return "int8"
	case PrimitiveInt16:
		return "int16"
	case PrimitiveInt32:
		return "int32"
	case PrimitiveInt64:
		return "int64"
	case PrimitiveUint8:
		return "uint8"
	case PrimitiveUint16:
		return "uint16"
	case PrimitiveUint32:
		return "uint32"
	case PrimitiveUint64:
		return "uint64"
	case PrimitiveFloat32:
		return "float32"
	case PrimitiveFloat64:
		return "float64"
	default:
		return fmt.Sprintf("PrimitiveSubtype(%d)", uint8(p))
	}
}

// IsInteger reports whether the subtype is one of the eight integer kinds.
func (p PrimitiveSubtype) IsInteger() bool {
	switch p {
	case PrimitiveInt8, PrimitiveInt16, PrimitiveInt32, PrimitiveInt64,
		PrimitiveUint8, PrimitiveUint16, PrimitiveUint32, PrimitiveUint64:
		return true
	default:
		return false
	}
}

// LookupPrimitive maps a type-position identifier to a primitive subtype.
func LookupPrimitive(name string) (PrimitiveSubtype, bool) {
	p, ok := primitiveNames[name]
	return p, ok
}

var primitiveNames = map[string]PrimitiveSubtype{
	"bool":    PrimitiveBool,
	"int8":    PrimitiveInt8,
	"int16":   PrimitiveInt16,
	"int32":   PrimitiveInt32,
	"int64":   PrimitiveInt64,
	"uint8":   PrimitiveUint8,
	"uint16":  PrimitiveUint16,
	"uint32":  PrimitiveUint32,
	"uint64":  PrimitiveUint64,
	"float32": PrimitiveFloat32,
	"float64": PrimitiveFloat64,
}

// Type is the closed family of type nodes.
type Type interface {
	Node
	typeNode()
}

// ArrayType is array<Elem>:Count. Count is mandatory.
type ArrayType struct {
	Elem  Type
	Count Constant
	Sp    source.Span
}

// VectorType is vector<Elem> with an optional element count bound.
type VectorType struct {
	Elem       Type
	MaybeCount Constant // nil if unbounded
	Sp         source.Span
}

// StringType is string with an optional byte count bound.
type StringType struct {
	MaybeCount Constant // nil if unbounded
	Sp         source.Span
}

type HandleType struct {
	Sp source.Span
}

// RequestType is request<Protocol>.
type RequestType struct {
	Subtype *CompoundIdentifier
	Sp      source.Span
}

type PrimitiveType struct {
	Subtype PrimitiveSubtype
	Sp      source.Span
}

// IdentifierType references a declared type by name.
type IdentifierType struct {
	Identifier *CompoundIdentifier
}

func (n *ArrayType) Span() source.Span     { return n.Sp }
func (n *VectorType) Span() source.Span    { return n.Sp }
func (n *StringType) Span() source.Span    { return n.Sp }
func (n *HandleType) Span() source.Span    { return n.Sp }
func (n *RequestType) Span() source.Span   { return n.Sp }
func (n *PrimitiveType) Span() source.Span { return n.Sp }
func (n *IdentifierType) Span() source.Span { return n.Identifier.Span() }

func (*ArrayType) typeNode()      {}
func (*VectorType) typeNode()     {}
func (*StringType) typeNode()     {}
func (*HandleType) typeNode()     {}
func (*RequestType) typeNode()    {}
func (*PrimitiveType) typeNode()  {}
func (*IdentifierType) typeNode() {}
