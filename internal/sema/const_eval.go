package sema

import (
	"strconv"

	"widl/internal/ast"
	"widl/internal/diag"
	"widl/internal/source"
)

// constPlaceholder substitutes for identifier-valued integer constants.
// Real constant folding would chase the referenced declaration; the
// placeholder keeps output parity with existing tooling until evaluation
// lands.
const constPlaceholder int64 = 23

// evalIntegerConstant evaluates a constant expression to an integer.
// Identifier constants yield the placeholder; string/bool/default literals
// are not integers.
func (s *Session) evalIntegerConstant(c ast.Constant, sp source.Span) (int64, error) {
	switch cc := c.(type) {
	case *ast.IdentifierConstant:
		return constPlaceholder, nil

	case *ast.LiteralConstant:
		switch lit := cc.Literal.(type) {
		case *ast.NumericLiteral:
			value, err := strconv.ParseInt(lit.Value, 0, 64)
			if err != nil {
				return 0, s.errorf(diag.SemaInvalidBound, lit.Span(),
					"%q is not an integer", lit.Value)
			}
			return value, nil
		default:
			return 0, s.errorf(diag.SemaInvalidBound, cc.Literal.Span(),
				"expected an integer constant")
		}

	default:
		return 0, s.errorf(diag.SemaInvalidBound, sp, "expected an integer constant")
	}
}

// parseBound evaluates an element-count constant and requires it to be
// positive.
func (s *Session) parseBound(c ast.Constant, sp source.Span) (int64, error) {
	if c == nil {
		return 0, s.errorf(diag.SemaInvalidBound, sp, "element count is required")
	}
	value, err := s.evalIntegerConstant(c, sp)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, s.errorf(diag.SemaInvalidBound, c.Span(),
			"element count must be positive, got %d", value)
	}
	return value, nil
}
