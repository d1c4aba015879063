// Package token defines lexical token kinds for widl schemas.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except for
//     identifiers that required Unicode normalization.
//   - Token.Span matches Text exactly (Start..End).
//   - Primitive type names (int8, uint32, float64, ...) are identifiers.
//     They are recognized by the parser, not the lexer.
package token
