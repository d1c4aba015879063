package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a string literal (quotes included in Text).
	StringLit

	// Keywords.
	KwModule
	KwUsing
	KwConst
	KwEnum
	KwInterface
	KwStruct
	KwUnion
	KwArray
	KwVector
	KwString
	KwHandle
	KwRequest
	KwTrue
	KwFalse
	KwDefault

	// Punctuation.
	LParen
	RParen
	LBrace
	RBrace
	LAngle
	RAngle
	Colon
	Semicolon
	Comma
	Dot
	Equal
	Arrow
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case NumberLit:
		return "number"
	case StringLit:
		return "string literal"
	case KwModule:
		return "'module'"
	case KwUsing:
		return "'using'"
	case KwConst:
		return "'const'"
	case KwEnum:
		return "'enum'"
	case KwInterface:
		return "'interface'"
	case KwStruct:
		return "'struct'"
	case KwUnion:
		return "'union'"
	case KwArray:
		return "'array'"
	case KwVector:
		return "'vector'"
	case KwString:
		return "'string'"
	case KwHandle:
		return "'handle'"
	case KwRequest:
		return "'request'"
	case KwTrue:
		return "'true'"
	case KwFalse:
		return "'false'"
	case KwDefault:
		return "'default'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LAngle:
		return "'<'"
	case RAngle:
		return "'>'"
	case Colon:
		return "':'"
	case Semicolon:
		return "';'"
	case Comma:
		return "','"
	case Dot:
		return "'.'"
	case Equal:
		return "'='"
	case Arrow:
		return "'->'"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
