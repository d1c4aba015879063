package ast

import (
	"widl/internal/source"
)

// Literal is the closed family of literal nodes.
type Literal interface {
	Node
	literalNode()
}

// StringLiteral holds the raw text including quotes.
type StringLiteral struct {
	Value string
	Sp    source.Span
}

// NumericLiteral holds the raw literal text; integer parsing happens in the
// semantic layer where range requirements are known.
type NumericLiteral struct {
	Value string
	Sp    source.Span
}

type TrueLiteral struct {
	Sp source.Span
}

type FalseLiteral struct {
	Sp source.Span
}

// DefaultLiteral is the "default" keyword in constant position.
type DefaultLiteral struct {
	Sp source.Span
}

func (n *StringLiteral) Span() source.Span  { return n.Sp }
func (n *NumericLiteral) Span() source.Span { return n.Sp }
func (n *TrueLiteral) Span() source.Span    { return n.Sp }
func (n *FalseLiteral) Span() source.Span   { return n.Sp }
func (n *DefaultLiteral) Span() source.Span { return n.Sp }

func (*StringLiteral) literalNode()  {}
func (*NumericLiteral) literalNode() {}
func (*TrueLiteral) literalNode()    {}
func (*FalseLiteral) literalNode()   {}
func (*DefaultLiteral) literalNode() {}

// Constant is the closed family of constant expressions: either a reference
// to a named constant or a literal. Values stay unevaluated in the tree.
type Constant interface {
	Node
	constantNode()
}

type IdentifierConstant struct {
	Identifier *CompoundIdentifier
}

type LiteralConstant struct {
	Literal Literal
}

func (n *IdentifierConstant) Span() source.Span { return n.Identifier.Span() }
func (n *LiteralConstant) Span() source.Span    { return n.Literal.Span() }

func (*IdentifierConstant) constantNode() {}
func (*LiteralConstant) constantNode()    {}
