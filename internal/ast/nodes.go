package ast

import (
	"widl/internal/source"
)

// Node is the base interface for all syntax nodes.
type Node interface {
	Span() source.Span
}

// Identifier is a single schema identifier.
type Identifier struct {
	Name string
	Sp   source.Span
}

func (n *Identifier) Span() source.Span { return n.Sp }

// CompoundIdentifier is a dot-separated identifier path used in type
// position, e.g. "Point" or "geometry.Point".
type CompoundIdentifier struct {
	Components []*Identifier
}

func (n *CompoundIdentifier) Span() source.Span {
	if len(n.Components) == 0 {
		return source.Span{}
	}
	sp := n.Components[0].Span()
	return sp.Cover(n.Components[len(n.Components)-1].Span())
}

// File is the root node of one parsed schema file.
type File struct {
	Module *Identifier   // optional
	Using  []*Identifier // imported module names, uninterpreted

	Consts     []*ConstDeclaration
	Enums      []*EnumDeclaration
	Interfaces []*InterfaceDeclaration
	Structs    []*StructDeclaration
	Unions     []*UnionDeclaration

	Sp source.Span
}

func (n *File) Span() source.Span { return n.Sp }
