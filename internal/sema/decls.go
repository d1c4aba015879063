package sema

import (
	"widl/internal/ast"
	"widl/internal/source"
)

// Name is an owned, possibly-empty declaration name. After consumption the
// identifier node belongs to the record holding the Name.
type Name struct {
	ident *ast.Identifier
}

// NewName takes ownership of the identifier node.
func NewName(ident *ast.Identifier) Name {
	return Name{ident: ident}
}

// Data returns the identifier text, or "" for an absent name.
func (n Name) Data() string {
	if n.ident == nil {
		return ""
	}
	return n.ident.Name
}

// Span locates the name in its schema file.
func (n Name) Span() source.Span {
	if n.ident == nil {
		return source.Span{}
	}
	return n.ident.Span()
}

// Ordinal is a method's wire dispatch number together with the literal it
// was parsed from.
type Ordinal struct {
	literal *ast.NumericLiteral
	value   uint32
}

func NewOrdinal(literal *ast.NumericLiteral, value uint32) Ordinal {
	return Ordinal{literal: literal, value: value}
}

func (o Ordinal) Value() uint32 { return o.value }

func (o Ordinal) Span() source.Span {
	if o.literal == nil {
		return source.Span{}
	}
	return o.literal.Span()
}

// The flattened declaration records. Each record owns its AST subtrees and
// is immutable after consumption.

type ConstInfo struct {
	Name  Name
	Type  ast.Type
	Value ast.Constant
}

type EnumMember struct {
	Name  Name
	Value ast.Constant // nil: value assignment deferred
}

type EnumInfo struct {
	Name    Name
	Type    *ast.PrimitiveType
	Members []EnumMember
}

type MethodParameter struct {
	Type ast.Type
	Name Name
}

type Method struct {
	Ordinal     Ordinal
	Name        Name
	Request     []MethodParameter
	HasResponse bool
	Response    []MethodParameter
}

type InterfaceInfo struct {
	Name    Name
	Methods []Method
}

type StructMember struct {
	Type         ast.Type
	Name         Name
	DefaultValue ast.Constant // nil if absent
}

type StructInfo struct {
	Name    Name
	Members []StructMember
}

type UnionMember struct {
	Type ast.Type
	Name Name
}

type UnionInfo struct {
	Name    Name
	Members []UnionMember
}
