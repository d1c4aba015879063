package token

var keywords = map[string]Kind{
	"module":    KwModule,
	"using":     KwUsing,
	"const":     KwConst,
	"enum":      KwEnum,
	"interface": KwInterface,
	"struct":    KwStruct,
	"union":     KwUnion,
	"array":     KwArray,
	"vector":    KwVector,
	"string":    KwString,
	"handle":    KwHandle,
	"request":   KwRequest,
	"true":      KwTrue,
	"false":     KwFalse,
	"default":   KwDefault,
}

// LookupKeyword returns the keyword kind for the lexeme, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
