package sema

import (
	"fmt"

	"widl/internal/diag"
	"widl/internal/source"
	"widl/internal/symbols"
)

// Session owns the flattened declaration tables and the symbol/layout table
// of one compilation unit. Consume every file, then resolve; the resolver
// assumes all names across all files are already registered. A session is
// not safe for concurrent use; independent units get independent sessions.
type Session struct {
	Consts     []ConstInfo
	Enums      []EnumInfo
	Interfaces []InterfaceInfo
	Structs    []StructInfo
	Unions     []UnionInfo

	Table *symbols.Table

	reporter diag.Reporter
}

// NewSession creates an empty session reporting diagnostics to reporter.
// A nil reporter discards diagnostics.
func NewSession(reporter diag.Reporter) *Session {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Session{
		Table:    symbols.NewTable(),
		reporter: reporter,
	}
}

// errorf reports a diagnostic and returns the error that aborts the current
// pass.
func (s *Session) errorf(code diag.Code, sp source.Span, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	diag.ReportError(s.reporter, code, sp, msg)
	return fmt.Errorf("%s: %s", code.ID(), msg)
}

// registerTypeName records a declared type name in the flat namespace shared
// by all declaration kinds and all consumed files.
func (s *Session) registerTypeName(name Name) error {
	if !s.Table.RegisterName(name.Data()) {
		return s.errorf(diag.SemaDuplicateName, name.Span(),
			"name %q is already declared", name.Data())
	}
	return nil
}
