package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntax
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectType        Code = 2003
	SynExpectConstant    Code = 2004
	SynExpectSemicolon   Code = 2005
	SynExpectOrdinal     Code = 2006
	SynUnexpectedTopLevel Code = 2007

	// Semantic
	SemaDuplicateName      Code = 3001
	SemaDuplicateOrdinal   Code = 3002
	SemaUnresolvedReference Code = 3003
	SemaInvalidBound       Code = 3004
	SemaInvalidEnumSubtype Code = 3005
	SemaMalformedOrdinal   Code = 3006

	// Driver / IO
	IOManifest Code = 4001
	IOExport   Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed numeric literal",

	SynUnexpectedToken:    "unexpected token",
	SynExpectIdentifier:   "expected identifier",
	SynExpectType:         "expected type",
	SynExpectConstant:     "expected constant",
	SynExpectSemicolon:    "expected ';'",
	SynExpectOrdinal:      "expected method ordinal",
	SynUnexpectedTopLevel: "unexpected top-level declaration",

	SemaDuplicateName:       "duplicate name",
	SemaDuplicateOrdinal:    "duplicate method ordinal",
	SemaUnresolvedReference: "unresolved type reference",
	SemaInvalidBound:        "invalid element count bound",
	SemaInvalidEnumSubtype:  "invalid enum subtype",
	SemaMalformedOrdinal:    "malformed method ordinal",

	IOManifest: "manifest error",
	IOExport:   "export error",
}

// ID renders the stable short identifier, e.g. "SEM3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
