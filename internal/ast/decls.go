package ast

import (
	"widl/internal/source"
)

// ConstDeclaration is "const <type> <name> = <constant>;".
type ConstDeclaration struct {
	Type  Type
	Name  *Identifier
	Value Constant
	Sp    source.Span
}

func (n *ConstDeclaration) Span() source.Span { return n.Sp }

// EnumMember is "<name> [= constant];" inside an enum body.
type EnumMember struct {
	Name       *Identifier
	MaybeValue Constant // nil if absent
}

func (n *EnumMember) Span() source.Span { return n.Name.Span() }

// EnumDeclaration is "enum <name> [: primitive] { members };".
type EnumDeclaration struct {
	Name         *Identifier
	MaybeSubtype *PrimitiveType // nil defaults to uint32 during consumption
	Members      []*EnumMember
	Sp           source.Span
}

func (n *EnumDeclaration) Span() source.Span { return n.Sp }

// Parameter is one "<type> <name>" entry of a method signature.
type Parameter struct {
	Type Type
	Name *Identifier
}

func (n *Parameter) Span() source.Span { return n.Name.Span() }

// InterfaceMethod is "<ordinal>: <name>(request) [-> (response)];".
type InterfaceMethod struct {
	Ordinal     *NumericLiteral
	Name        *Identifier
	Request     []*Parameter
	HasResponse bool
	Response    []*Parameter
	Sp          source.Span
}

func (n *InterfaceMethod) Span() source.Span { return n.Sp }

// InterfaceDeclaration holds methods plus nested const/enum members that the
// semantic layer hoists to top level.
type InterfaceDeclaration struct {
	Name         *Identifier
	ConstMembers []*ConstDeclaration
	EnumMembers  []*EnumDeclaration
	Methods      []*InterfaceMethod
	Sp           source.Span
}

func (n *InterfaceDeclaration) Span() source.Span { return n.Sp }

// StructMember is "<type> <name> [= default];".
type StructMember struct {
	Type         Type
	Name         *Identifier
	MaybeDefault Constant // nil if absent
}

func (n *StructMember) Span() source.Span { return n.Name.Span() }

// StructDeclaration holds members plus nested const/enum declarations.
type StructDeclaration struct {
	Name         *Identifier
	ConstMembers []*ConstDeclaration
	EnumMembers  []*EnumDeclaration
	Members      []*StructMember
	Sp           source.Span
}

func (n *StructDeclaration) Span() source.Span { return n.Sp }

// UnionMember is "<type> <name>;".
type UnionMember struct {
	Type Type
	Name *Identifier
}

func (n *UnionMember) Span() source.Span { return n.Name.Span() }

// UnionDeclaration is "union <name> { members };".
type UnionDeclaration struct {
	Name    *Identifier
	Members []*UnionMember
	Sp      source.Span
}

func (n *UnionDeclaration) Span() source.Span { return n.Sp }
