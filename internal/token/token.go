package token

import (
	"widl/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// default literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse, KwDefault:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a schema keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwModule, KwUsing, KwConst, KwEnum, KwInterface, KwStruct, KwUnion,
		KwArray, KwVector, KwString, KwHandle, KwRequest, KwTrue, KwFalse, KwDefault:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
