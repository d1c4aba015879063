package sema

import (
	"fortio.org/safecast"

	"widl/internal/ast"
	"widl/internal/diag"
	"widl/internal/layout"
	"widl/internal/symbols"
)

// Resolution is the second pass: identifier references are checked against
// the registered-name set and wire shapes are computed. The kind order is
// fixed (consts, enums, interfaces, structs, unions); it is valid because
// type references only require the referenced name to be registered, which
// consumption guaranteed for every file of the unit.

// Resolve runs the full pass. The first failure aborts it; no shapes from a
// failed declaration are registered.
func (s *Session) Resolve() error {
	for i := range s.Consts {
		if err := s.resolveConst(&s.Consts[i]); err != nil {
			return err
		}
	}
	for i := range s.Enums {
		if err := s.resolveEnum(&s.Enums[i]); err != nil {
			return err
		}
	}
	for i := range s.Interfaces {
		if err := s.resolveInterface(&s.Interfaces[i]); err != nil {
			return err
		}
	}
	for i := range s.Structs {
		if err := s.resolveStruct(&s.Structs[i]); err != nil {
			return err
		}
	}
	for i := range s.Unions {
		if err := s.resolveUnion(&s.Unions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) resolveConst(info *ConstInfo) error {
	if _, err := s.resolveType(info.Type); err != nil {
		return err
	}
	// Constant value checking against the declared type is deferred along
	// with constant evaluation.
	return nil
}

func (s *Session) resolveEnum(info *EnumInfo) error {
	if !info.Type.Subtype.IsInteger() {
		return s.errorf(diag.SemaInvalidEnumSubtype, info.Type.Span(),
			"enum %q: subtype %s is not an integer primitive",
			info.Name.Data(), info.Type.Subtype)
	}

	scope := symbols.NewScope[string]()
	for i := range info.Members {
		member := &info.Members[i]
		if !scope.Insert(member.Name.Data()) {
			return s.errorf(diag.SemaDuplicateName, member.Name.Span(),
				"enum %q: duplicate member %q", info.Name.Data(), member.Name.Data())
		}
		// Member values stay unevaluated; see parseIntegerConstant.
	}

	shape := layout.Primitive(info.Type.Subtype)
	if !s.Table.RegisterResolved(info.Name.Data(), shape) {
		return s.errorf(diag.SemaDuplicateName, info.Name.Span(),
			"enum %q: shape already registered", info.Name.Data())
	}
	return nil
}

func (s *Session) resolveInterface(info *InterfaceInfo) error {
	nameScope := symbols.NewScope[string]()
	ordinalScope := symbols.NewScope[uint32]()

	for i := range info.Methods {
		method := &info.Methods[i]
		if !nameScope.Insert(method.Name.Data()) {
			return s.errorf(diag.SemaDuplicateName, method.Name.Span(),
				"interface %q: duplicate method %q", info.Name.Data(), method.Name.Data())
		}
		if !ordinalScope.Insert(method.Ordinal.Value()) {
			return s.errorf(diag.SemaDuplicateOrdinal, method.Ordinal.Span(),
				"interface %q: ordinal %d is already used", info.Name.Data(), method.Ordinal.Value())
		}

		paramScope := symbols.NewScope[string]()
		for j := range method.Request {
			param := &method.Request[j]
			if !paramScope.Insert(param.Name.Data()) {
				return s.errorf(diag.SemaDuplicateName, param.Name.Span(),
					"method %q: duplicate parameter %q", method.Name.Data(), param.Name.Data())
			}
			if _, err := s.resolveType(param.Type); err != nil {
				return err
			}
		}

		if method.HasResponse {
			responseScope := symbols.NewScope[string]()
			for j := range method.Response {
				param := &method.Response[j]
				if !responseScope.Insert(param.Name.Data()) {
					return s.errorf(diag.SemaDuplicateName, param.Name.Span(),
						"method %q: duplicate response parameter %q", method.Name.Data(), param.Name.Data())
				}
				if _, err := s.resolveType(param.Type); err != nil {
					return err
				}
			}
		}
	}
	// Interfaces carry no aggregate wire shape; they are referenced through
	// handles.
	return nil
}

func (s *Session) resolveStruct(info *StructInfo) error {
	scope := symbols.NewScope[string]()
	for i := range info.Members {
		member := &info.Members[i]
		if !scope.Insert(member.Name.Data()) {
			return s.errorf(diag.SemaDuplicateName, member.Name.Span(),
				"struct %q: duplicate member %q", info.Name.Data(), member.Name.Data())
		}
		if _, err := s.resolveType(member.Type); err != nil {
			return err
		}
	}
	// Member-level resolution is sufficient here; the aggregate shape of a
	// struct is not recorded in the resolved table. layout.Struct computes
	// it on demand for consumers that want offsets.
	return nil
}

func (s *Session) resolveUnion(info *UnionInfo) error {
	scope := symbols.NewScope[string]()
	shape := layout.Empty()
	for i := range info.Members {
		member := &info.Members[i]
		if !scope.Insert(member.Name.Data()) {
			return s.errorf(diag.SemaDuplicateName, member.Name.Span(),
				"union %q: duplicate member %q", info.Name.Data(), member.Name.Data())
		}
		memberShape, err := s.resolveType(member.Type)
		if err != nil {
			return err
		}
		shape = layout.Union(shape, memberShape)
	}

	if !s.Table.RegisterResolved(info.Name.Data(), shape) {
		return s.errorf(diag.SemaDuplicateName, info.Name.Span(),
			"union %q: shape already registered", info.Name.Data())
	}
	return nil
}

// resolveType computes the wire shape of a type node, resolving identifier
// references along the way.
func (s *Session) resolveType(t ast.Type) (layout.TypeShape, error) {
	switch tt := t.(type) {
	case *ast.PrimitiveType:
		return layout.Primitive(tt.Subtype), nil

	case *ast.ArrayType:
		elem, err := s.resolveType(tt.Elem)
		if err != nil {
			return layout.Empty(), err
		}
		count, err := s.parseBound(tt.Count, tt.Span())
		if err != nil {
			return layout.Empty(), err
		}
		intCount, err := safecast.Conv[int](count)
		if err != nil {
			return layout.Empty(), s.errorf(diag.SemaInvalidBound, tt.Span(),
				"array element count %d overflows", count)
		}
		return layout.Array(elem, intCount), nil

	case *ast.VectorType:
		elem, err := s.resolveType(tt.Elem)
		if err != nil {
			return layout.Empty(), err
		}
		bound := layout.Unbounded
		if tt.MaybeCount != nil {
			value, err := s.parseBound(tt.MaybeCount, tt.Span())
			if err != nil {
				return layout.Empty(), err
			}
			bound = value
		}
		return layout.Vector(elem, bound), nil

	case *ast.StringType:
		bound := layout.Unbounded
		if tt.MaybeCount != nil {
			value, err := s.parseBound(tt.MaybeCount, tt.Span())
			if err != nil {
				return layout.Empty(), err
			}
			bound = value
		}
		return layout.String(bound), nil

	case *ast.HandleType:
		return layout.Handle(), nil

	case *ast.RequestType:
		if err := s.resolveTypeName(tt.Subtype); err != nil {
			return layout.Empty(), err
		}
		return layout.Handle(), nil

	case *ast.IdentifierType:
		if err := s.resolveTypeName(tt.Identifier); err != nil {
			return layout.Empty(), err
		}
		// Forward references are registered but may not be shape-resolved
		// yet; their inline shape is empty until then.
		if shape, ok := s.Table.LookupShape(identifierKey(tt.Identifier)); ok {
			return shape, nil
		}
		return layout.Empty(), nil

	default:
		return layout.Empty(), s.errorf(diag.UnknownCode, t.Span(), "unsupported type node")
	}
}

// resolveTypeName checks that a referenced type name is registered.
// Only single-component names participate in lookup.
func (s *Session) resolveTypeName(name *ast.CompoundIdentifier) error {
	if len(name.Components) != 1 {
		return s.errorf(diag.SemaUnresolvedReference, name.Span(),
			"qualified type names are not supported")
	}
	key := name.Components[0].Name
	if !s.Table.Registered(key) {
		return s.errorf(diag.SemaUnresolvedReference, name.Span(),
			"unknown type %q", key)
	}
	return nil
}

func identifierKey(name *ast.CompoundIdentifier) string {
	if len(name.Components) == 0 {
		return ""
	}
	return name.Components[0].Name
}
