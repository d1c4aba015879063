package symbols

import (
	"widl/internal/layout"
)

// Table is the symbol/layout table of one compilation unit. It tracks two
// mappings keyed by declared type name: the registered-name set (filled
// during consumption, before any layout exists) and the resolved-shape map
// (filled during resolution). A name is "registered" as soon as it is
// declared and "resolved" only once its shape is known; forward references
// in type position need only registration.
type Table struct {
	registered map[string]struct{}
	resolved   map[string]layout.TypeShape
}

// NewTable builds an empty table.
func NewTable() *Table {
	return &Table{
		registered: make(map[string]struct{}),
		resolved:   make(map[string]layout.TypeShape),
	}
}

// RegisterName records a declared type name. Returns false if the name is
// already registered.
func (t *Table) RegisterName(name string) bool {
	if _, ok := t.registered[name]; ok {
		return false
	}
	t.registered[name] = struct{}{}
	return true
}

// Registered reports whether a name has been declared.
func (t *Table) Registered(name string) bool {
	_, ok := t.registered[name]
	return ok
}

// RegisterResolved stores the computed shape for a name. Shapes are
// immutable once stored; a second registration for the same name fails.
func (t *Table) RegisterResolved(name string, shape layout.TypeShape) bool {
	if _, ok := t.resolved[name]; ok {
		return false
	}
	t.resolved[name] = shape
	return true
}

// LookupShape returns the resolved shape for a name, if computed.
func (t *Table) LookupShape(name string) (layout.TypeShape, bool) {
	shape, ok := t.resolved[name]
	return shape, ok
}

// ResolvedCount returns the number of names with a stored shape.
func (t *Table) ResolvedCount() int {
	return len(t.resolved)
}

// ResolvedShapes returns a copy of the name -> shape map for downstream
// consumers (dump, export).
func (t *Table) ResolvedShapes() map[string]layout.TypeShape {
	out := make(map[string]layout.TypeShape, len(t.resolved))
	for name, shape := range t.resolved {
		out[name] = shape
	}
	return out
}
