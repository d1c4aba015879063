package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"widl/internal/diag"
	"widl/internal/token"
)

const runeSelf = utf8.RuneSelf

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
}

func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	for i := 0; i < sz; i++ {
		lx.cursor.Bump()
	}
}

// scanIdentOrKeyword scans an identifier and classifies keywords.
// Non-ASCII identifiers are normalized to NFC so that visually identical
// names compare equal during registration.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	ascii := true

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8.RuneSelf {
			r, _ := lx.peekRune()
			if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
				ascii = false
				lx.bumpRune()
				continue
			}
		}
		break
	}

	if lx.cursor.Mark() == start {
		// Non-ASCII byte that does not start an identifier.
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		diag.ReportError(lx.reporter, diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if !ascii {
		text = norm.NFC.String(text)
	}
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanNumber scans decimal, 0x/0o/0b integers. widl has no float literals;
// integer range checks happen in the semantic layer.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'x', 'X':
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				return lx.badNumber(start, "expected hex digit after 0x")
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		case 'o', 'O':
			lx.cursor.Bump()
			b := lx.cursor.Peek()
			if b < '0' || b > '7' {
				return lx.badNumber(start, "expected octal digit after 0o")
			}
			for b := lx.cursor.Peek(); b >= '0' && b <= '7'; b = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
		case 'b', 'B':
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b != '0' && b != '1' {
				return lx.badNumber(start, "expected binary digit after 0b")
			}
			for b := lx.cursor.Peek(); b == '0' || b == '1'; b = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
		default:
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	} else {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// A number running straight into an identifier is malformed ("12ab").
	if b := lx.cursor.Peek(); isIdentStartByte(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.badNumber(start, "identifier characters after number")
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.NumberLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	diag.ReportError(lx.reporter, diag.LexBadNumber, sp, msg)
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanString scans a double-quoted string with \" and \\ escapes left raw.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(start)
			diag.ReportError(lx.reporter, diag.LexUnterminatedString, sp, "string literal is not terminated")
			return token.Token{
				Kind: token.Invalid,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			}
		}
		b := lx.cursor.Bump()
		if b == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if b == '"' {
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
