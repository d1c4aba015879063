package symbols

// Scope is a write-once duplicate detector over a comparable key type.
// A fresh Scope is opened per enclosing declaration: method names and
// ordinals per interface, parameter names per method, member names per
// struct/union/enum.
type Scope[T comparable] struct {
	set map[T]struct{}
}

// NewScope creates an empty scope.
func NewScope[T comparable]() *Scope[T] {
	return &Scope[T]{set: make(map[T]struct{})}
}

// Insert adds v and reports whether it was absent before the call.
func (s *Scope[T]) Insert(v T) bool {
	if _, ok := s.set[v]; ok {
		return false
	}
	s.set[v] = struct{}{}
	return true
}

// Len returns the number of distinct values inserted.
func (s *Scope[T]) Len() int {
	return len(s.set)
}
