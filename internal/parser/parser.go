// Package parser builds the widl syntax tree from the token stream.
// Parsing is fail-fast: the first syntax error is reported through the
// diag.Reporter and aborts the file.
package parser

import (
	"errors"
	"fmt"

	"widl/internal/ast"
	"widl/internal/diag"
	"widl/internal/lexer"
	"widl/internal/source"
	"widl/internal/token"
)

// ErrSyntax is returned for any reported syntax error.
var ErrSyntax = errors.New("syntax error")

type Parser struct {
	lx       *lexer.Lexer
	tok      token.Token
	reporter diag.Reporter
}

func New(lx *lexer.Lexer, reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	p := &Parser{lx: lx, reporter: reporter}
	p.advance()
	return p
}

// ParseFile parses one schema file to its root node.
func ParseFile(file *source.File, reporter diag.Reporter) (*ast.File, error) {
	lx := lexer.New(file, reporter)
	return New(lx, reporter).File()
}

func (p *Parser) advance() {
	p.tok = p.lx.Next()
}

func (p *Parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

// accept consumes the current token if it has the given kind.
func (p *Parser) accept(kind token.Kind) bool {
	if !p.at(kind) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if !p.at(kind) {
		return token.Token{}, p.failf(diag.SynUnexpectedToken,
			"expected %s, found %s", kind, p.describe())
	}
	tok := p.tok
	p.advance()
	return tok, nil
}

func (p *Parser) expectIdent() (*ast.Identifier, error) {
	if !p.at(token.Ident) {
		return nil, p.failf(diag.SynExpectIdentifier,
			"expected identifier, found %s", p.describe())
	}
	ident := &ast.Identifier{Name: p.tok.Text, Sp: p.tok.Span}
	p.advance()
	return ident, nil
}

func (p *Parser) expectSemicolon() error {
	if !p.accept(token.Semicolon) {
		return p.failf(diag.SynExpectSemicolon, "expected ';', found %s", p.describe())
	}
	return nil
}

// describe renders the current token for error messages.
func (p *Parser) describe() string {
	switch p.tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident, token.NumberLit, token.StringLit, token.Invalid:
		return "'" + p.tok.Text + "'"
	default:
		return p.tok.Kind.String()
	}
}

func (p *Parser) failf(code diag.Code, format string, args ...any) error {
	diag.ReportError(p.reporter, code, p.tok.Span, fmt.Sprintf(format, args...))
	return ErrSyntax
}

// parseCompoundIdentifier parses a dot-separated identifier path.
func (p *Parser) parseCompoundIdentifier() (*ast.CompoundIdentifier, error) {
	first, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	components := []*ast.Identifier{first}
	for p.accept(token.Dot) {
		next, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		components = append(components, next)
	}
	return &ast.CompoundIdentifier{Components: components}, nil
}
