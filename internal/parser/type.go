package parser

import (
	"widl/internal/ast"
	"widl/internal/diag"
	"widl/internal/token"
)

// parseType parses a type reference.
func (p *Parser) parseType() (ast.Type, error) {
	start := p.tok.Span

	switch p.tok.Kind {
	case token.KwArray:
		p.advance()
		if _, err := p.expect(token.LAngle); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RAngle); err != nil {
			return nil, err
		}
		// Arrays always carry an element count.
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		count, err := p.parseConstant()
		if err != nil {
			return nil, err
		}
		return &ast.ArrayType{Elem: elem, Count: count, Sp: start.Cover(count.Span())}, nil

	case token.KwVector:
		p.advance()
		if _, err := p.expect(token.LAngle); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		closing, err := p.expect(token.RAngle)
		if err != nil {
			return nil, err
		}
		sp := start.Cover(closing.Span)
		var count ast.Constant
		if p.accept(token.Colon) {
			count, err = p.parseConstant()
			if err != nil {
				return nil, err
			}
			sp = sp.Cover(count.Span())
		}
		return &ast.VectorType{Elem: elem, MaybeCount: count, Sp: sp}, nil

	case token.KwString:
		p.advance()
		sp := start
		var count ast.Constant
		if p.accept(token.Colon) {
			var err error
			count, err = p.parseConstant()
			if err != nil {
				return nil, err
			}
			sp = sp.Cover(count.Span())
		}
		return &ast.StringType{MaybeCount: count, Sp: sp}, nil

	case token.KwHandle:
		p.advance()
		return &ast.HandleType{Sp: start}, nil

	case token.KwRequest:
		p.advance()
		if _, err := p.expect(token.LAngle); err != nil {
			return nil, err
		}
		subtype, err := p.parseCompoundIdentifier()
		if err != nil {
			return nil, err
		}
		closing, err := p.expect(token.RAngle)
		if err != nil {
			return nil, err
		}
		return &ast.RequestType{Subtype: subtype, Sp: start.Cover(closing.Span)}, nil

	case token.Ident:
		if sub, ok := ast.LookupPrimitive(p.tok.Text); ok {
			sp := p.tok.Span
			p.advance()
			return &ast.PrimitiveType{Subtype: sub, Sp: sp}, nil
		}
		name, err := p.parseCompoundIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.IdentifierType{Identifier: name}, nil

	default:
		return nil, p.failf(diag.SynExpectType, "expected type, found %s", p.describe())
	}
}

// parsePrimitiveType parses a type that must be a wire primitive (enum
// subtypes).
func (p *Parser) parsePrimitiveType() (*ast.PrimitiveType, error) {
	if p.at(token.Ident) {
		if sub, ok := ast.LookupPrimitive(p.tok.Text); ok {
			sp := p.tok.Span
			p.advance()
			return &ast.PrimitiveType{Subtype: sub, Sp: sp}, nil
		}
	}
	return nil, p.failf(diag.SynExpectType, "expected primitive type, found %s", p.describe())
}

// parseConstant parses a constant expression: a named constant reference or
// a literal.
func (p *Parser) parseConstant() (ast.Constant, error) {
	switch p.tok.Kind {
	case token.Ident:
		name, err := p.parseCompoundIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.IdentifierConstant{Identifier: name}, nil

	case token.NumberLit:
		lit := &ast.NumericLiteral{Value: p.tok.Text, Sp: p.tok.Span}
		p.advance()
		return &ast.LiteralConstant{Literal: lit}, nil

	case token.StringLit:
		lit := &ast.StringLiteral{Value: p.tok.Text, Sp: p.tok.Span}
		p.advance()
		return &ast.LiteralConstant{Literal: lit}, nil

	case token.KwTrue:
		lit := &ast.TrueLiteral{Sp: p.tok.Span}
		p.advance()
		return &ast.LiteralConstant{Literal: lit}, nil

	case token.KwFalse:
		lit := &ast.FalseLiteral{Sp: p.tok.Span}
		p.advance()
		return &ast.LiteralConstant{Literal: lit}, nil

	case token.KwDefault:
		lit := &ast.DefaultLiteral{Sp: p.tok.Span}
		p.advance()
		return &ast.LiteralConstant{Literal: lit}, nil

	default:
		return nil, p.failf(diag.SynExpectConstant, "expected constant, found %s", p.describe())
	}
}
