package sema

import (
	"strconv"

	"fortio.org/safecast"

	"widl/internal/ast"
	"widl/internal/diag"
	"widl/internal/source"
)

// Consumption walks a file's syntax tree and flattens it: nested consts and
// enums are hoisted out of interfaces and structs into the shared top-level
// tables before the enclosing declaration's own record is appended, so the
// resolver's fixed pass order sees them first.

// ConsumeFile takes ownership of the file's declarations. The first
// duplicate name or malformed ordinal aborts consumption.
func (s *Session) ConsumeFile(file *ast.File) error {
	// Module name and using list are recorded by the parser but carry no
	// semantic weight yet.
	for _, decl := range file.Consts {
		if err := s.consumeConst(decl); err != nil {
			return err
		}
	}
	for _, decl := range file.Enums {
		if err := s.consumeEnum(decl); err != nil {
			return err
		}
	}
	for _, decl := range file.Interfaces {
		if err := s.consumeInterface(decl); err != nil {
			return err
		}
	}
	for _, decl := range file.Structs {
		if err := s.consumeStruct(decl); err != nil {
			return err
		}
	}
	for _, decl := range file.Unions {
		if err := s.consumeUnion(decl); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) consumeConst(decl *ast.ConstDeclaration) error {
	name := NewName(decl.Name)
	if err := s.registerTypeName(name); err != nil {
		return err
	}
	s.Consts = append(s.Consts, ConstInfo{
		Name:  name,
		Type:  decl.Type,
		Value: decl.Value,
	})
	return nil
}

func (s *Session) consumeEnum(decl *ast.EnumDeclaration) error {
	members := make([]EnumMember, 0, len(decl.Members))
	for _, member := range decl.Members {
		members = append(members, EnumMember{
			Name:  NewName(member.Name),
			Value: member.MaybeValue,
		})
	}

	subtype := decl.MaybeSubtype
	if subtype == nil {
		subtype = &ast.PrimitiveType{Subtype: ast.PrimitiveUint32, Sp: decl.Span()}
	}

	name := NewName(decl.Name)
	if err := s.registerTypeName(name); err != nil {
		return err
	}
	s.Enums = append(s.Enums, EnumInfo{
		Name:    name,
		Type:    subtype,
		Members: members,
	})
	return nil
}

func (s *Session) consumeInterface(decl *ast.InterfaceDeclaration) error {
	// Hoist nested declarations first so they resolve before the interface.
	for _, constMember := range decl.ConstMembers {
		if err := s.consumeConst(constMember); err != nil {
			return err
		}
	}
	for _, enumMember := range decl.EnumMembers {
		if err := s.consumeEnum(enumMember); err != nil {
			return err
		}
	}

	methods := make([]Method, 0, len(decl.Methods))
	for _, method := range decl.Methods {
		value, err := s.parseOrdinal(method.Ordinal)
		if err != nil {
			return err
		}

		request := make([]MethodParameter, 0, len(method.Request))
		for _, param := range method.Request {
			request = append(request, MethodParameter{
				Type: param.Type,
				Name: NewName(param.Name),
			})
		}

		var response []MethodParameter
		if method.HasResponse {
			response = make([]MethodParameter, 0, len(method.Response))
			for _, param := range method.Response {
				response = append(response, MethodParameter{
					Type: param.Type,
					Name: NewName(param.Name),
				})
			}
		}

		methods = append(methods, Method{
			Ordinal:     NewOrdinal(method.Ordinal, value),
			Name:        NewName(method.Name),
			Request:     request,
			HasResponse: method.HasResponse,
			Response:    response,
		})
	}

	name := NewName(decl.Name)
	if err := s.registerTypeName(name); err != nil {
		return err
	}
	s.Interfaces = append(s.Interfaces, InterfaceInfo{
		Name:    name,
		Methods: methods,
	})
	return nil
}

func (s *Session) consumeStruct(decl *ast.StructDeclaration) error {
	for _, constMember := range decl.ConstMembers {
		if err := s.consumeConst(constMember); err != nil {
			return err
		}
	}
	for _, enumMember := range decl.EnumMembers {
		if err := s.consumeEnum(enumMember); err != nil {
			return err
		}
	}

	members := make([]StructMember, 0, len(decl.Members))
	for _, member := range decl.Members {
		members = append(members, StructMember{
			Type:         member.Type,
			Name:         NewName(member.Name),
			DefaultValue: member.MaybeDefault,
		})
	}

	name := NewName(decl.Name)
	if err := s.registerTypeName(name); err != nil {
		return err
	}
	s.Structs = append(s.Structs, StructInfo{
		Name:    name,
		Members: members,
	})
	return nil
}

func (s *Session) consumeUnion(decl *ast.UnionDeclaration) error {
	members := make([]UnionMember, 0, len(decl.Members))
	for _, member := range decl.Members {
		members = append(members, UnionMember{
			Type: member.Type,
			Name: NewName(member.Name),
		})
	}

	name := NewName(decl.Name)
	if err := s.registerTypeName(name); err != nil {
		return err
	}
	s.Unions = append(s.Unions, UnionInfo{
		Name:    name,
		Members: members,
	})
	return nil
}

// parseOrdinal parses a method ordinal literal as an unsigned 32-bit value.
// Base prefixes (0x, 0o, 0b) are accepted.
func (s *Session) parseOrdinal(literal *ast.NumericLiteral) (uint32, error) {
	if literal == nil {
		return 0, s.errorf(diag.SemaMalformedOrdinal, source.Span{}, "method ordinal is missing")
	}
	wide, err := strconv.ParseUint(literal.Value, 0, 64)
	if err != nil {
		return 0, s.errorf(diag.SemaMalformedOrdinal, literal.Span(),
			"ordinal %q is not an unsigned integer", literal.Value)
	}
	value, err := safecast.Conv[uint32](wide)
	if err != nil {
		return 0, s.errorf(diag.SemaMalformedOrdinal, literal.Span(),
			"ordinal %q exceeds 32 bits", literal.Value)
	}
	return value, nil
}
