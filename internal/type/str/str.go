// Released under an MIT license. See LICENSE.

// Package str provides lisp's string type.
package str

import (
	"strconv"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "string"

// T (string) wraps Go's string type.
type T string

// New creates a new string cell.
func New(v string) *T {
	s := T(v)
	return &s
}

// The string type is a cell.

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *T) Equal(c cell.T) bool {
	o, ok := c.(*T)

	return ok && *s == *o
}

// Name returns the name of the string type.
func (s *T) Name() string {
	return name
}

// The string type may be an integer.

// Int returns the value of s as an integer if s is a base-10 integer.
func (s *T) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(*s), 10, 64)
	return n, err == nil
}

// The string type has a literal representation.

// Literal returns the literal representation of the string s.
func (s *T) Literal() string {
	return `"` + string(*s) + `"`
}

// The string type is a stringer.

// String returns the text of the string s.
func (s *T) String() string {
	return string(*s)
}

// The string type is text.

// Text returns the text of the string s.
func (s *T) Text() string {
	return string(*s)
}
