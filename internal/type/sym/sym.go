// Released under an MIT license. See LICENSE.

// Package sym provides lisp's atom type.
package sym

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "atom"

// T (sym) wraps Go's string type. It names a variable or is symbolic data.
type T string

// New creates an atom cell.
func New(v string) *T {
	s := T(v)
	return &s
}

// The sym type is a cell.

// Equal returns true if c is an atom and wraps the same string.
func (s *T) Equal(c cell.T) bool {
	o, ok := c.(*T)

	return ok && *s == *o
}

// Name returns the type name for the atom s.
func (s *T) Name() string {
	return name
}

// The sym type has a literal representation.

// Literal returns the literal representation of the atom s.
func (s *T) Literal() string {
	return string(*s)
}

// The sym type is a stringer.

// String returns the text of the atom s.
func (s *T) String() string {
	return s.Literal()
}
