package parser

import (
	"widl/internal/ast"
	"widl/internal/diag"
	"widl/internal/token"
)

// File parses the whole file: optional module header, using list, then
// declarations until EOF.
func (p *Parser) File() (*ast.File, error) {
	start := p.tok.Span
	file := &ast.File{}

	if p.accept(token.KwModule) {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		file.Module = name
	}

	for p.accept(token.KwUsing) {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		file.Using = append(file.Using, name)
	}

	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.KwConst:
			decl, err := p.parseConstDeclaration()
			if err != nil {
				return nil, err
			}
			file.Consts = append(file.Consts, decl)
		case token.KwEnum:
			decl, err := p.parseEnumDeclaration()
			if err != nil {
				return nil, err
			}
			file.Enums = append(file.Enums, decl)
		case token.KwInterface:
			decl, err := p.parseInterfaceDeclaration()
			if err != nil {
				return nil, err
			}
			file.Interfaces = append(file.Interfaces, decl)
		case token.KwStruct:
			decl, err := p.parseStructDeclaration()
			if err != nil {
				return nil, err
			}
			file.Structs = append(file.Structs, decl)
		case token.KwUnion:
			decl, err := p.parseUnionDeclaration()
			if err != nil {
				return nil, err
			}
			file.Unions = append(file.Unions, decl)
		default:
			return nil, p.failf(diag.SynUnexpectedTopLevel,
				"expected declaration, found %s", p.describe())
		}
	}

	file.Sp = start.Cover(p.tok.Span)
	return file, nil
}

func (p *Parser) parseConstDeclaration() (*ast.ConstDeclaration, error) {
	start := p.tok.Span
	p.advance() // const

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}
	value, err := p.parseConstant()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ConstDeclaration{
		Type:  typ,
		Name:  name,
		Value: value,
		Sp:    start.Cover(value.Span()),
	}, nil
}

func (p *Parser) parseEnumDeclaration() (*ast.EnumDeclaration, error) {
	start := p.tok.Span
	p.advance() // enum

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var subtype *ast.PrimitiveType
	if p.accept(token.Colon) {
		subtype, err = p.parsePrimitiveType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var members []*ast.EnumMember
	for !p.at(token.RBrace) {
		memberName, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		var value ast.Constant
		if p.accept(token.Equal) {
			value, err = p.parseConstant()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		members = append(members, &ast.EnumMember{Name: memberName, MaybeValue: value})
	}
	closing, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	return &ast.EnumDeclaration{
		Name:         name,
		MaybeSubtype: subtype,
		Members:      members,
		Sp:           start.Cover(closing.Span),
	}, nil
}

func (p *Parser) parseInterfaceDeclaration() (*ast.InterfaceDeclaration, error) {
	start := p.tok.Span
	p.advance() // interface

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	decl := &ast.InterfaceDeclaration{Name: name}
	for !p.at(token.RBrace) {
		switch p.tok.Kind {
		case token.KwConst:
			member, err := p.parseConstDeclaration()
			if err != nil {
				return nil, err
			}
			decl.ConstMembers = append(decl.ConstMembers, member)
		case token.KwEnum:
			member, err := p.parseEnumDeclaration()
			if err != nil {
				return nil, err
			}
			decl.EnumMembers = append(decl.EnumMembers, member)
		case token.NumberLit:
			method, err := p.parseMethod()
			if err != nil {
				return nil, err
			}
			decl.Methods = append(decl.Methods, method)
		default:
			return nil, p.failf(diag.SynExpectOrdinal,
				"expected method ordinal or nested declaration, found %s", p.describe())
		}
	}
	closing, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	decl.Sp = start.Cover(closing.Span)
	return decl, nil
}

func (p *Parser) parseMethod() (*ast.InterfaceMethod, error) {
	start := p.tok.Span
	ordinal := &ast.NumericLiteral{Value: p.tok.Text, Sp: p.tok.Span}
	p.advance()

	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	request, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	method := &ast.InterfaceMethod{
		Ordinal: ordinal,
		Name:    name,
		Request: request,
	}
	if p.accept(token.Arrow) {
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		response, err := p.parseParameterList()
		if err != nil {
			return nil, err
		}
		end, err = p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		method.HasResponse = true
		method.Response = response
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	method.Sp = start.Cover(end.Span)
	return method, nil
}

func (p *Parser) parseParameterList() ([]*ast.Parameter, error) {
	if p.at(token.RParen) {
		return nil, nil
	}
	var params []*ast.Parameter
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Parameter{Type: typ, Name: name})
		if !p.accept(token.Comma) {
			return params, nil
		}
	}
}

func (p *Parser) parseStructDeclaration() (*ast.StructDeclaration, error) {
	start := p.tok.Span
	p.advance() // struct

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	decl := &ast.StructDeclaration{Name: name}
	for !p.at(token.RBrace) {
		switch p.tok.Kind {
		case token.KwConst:
			member, err := p.parseConstDeclaration()
			if err != nil {
				return nil, err
			}
			decl.ConstMembers = append(decl.ConstMembers, member)
		case token.KwEnum:
			member, err := p.parseEnumDeclaration()
			if err != nil {
				return nil, err
			}
			decl.EnumMembers = append(decl.EnumMembers, member)
		default:
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			memberName, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			var defaultValue ast.Constant
			if p.accept(token.Equal) {
				defaultValue, err = p.parseConstant()
				if err != nil {
					return nil, err
				}
			}
			if err := p.expectSemicolon(); err != nil {
				return nil, err
			}
			decl.Members = append(decl.Members, &ast.StructMember{
				Type:         typ,
				Name:         memberName,
				MaybeDefault: defaultValue,
			})
		}
	}
	closing, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	decl.Sp = start.Cover(closing.Span)
	return decl, nil
}

func (p *Parser) parseUnionDeclaration() (*ast.UnionDeclaration, error) {
	start := p.tok.Span
	p.advance() // union

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	decl := &ast.UnionDeclaration{Name: name}
	for !p.at(token.RBrace) {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		memberName, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, &ast.UnionMember{Type: typ, Name: memberName})
	}
	closing, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	decl.Sp = start.Cover(closing.Span)
	return decl, nil
}
