// Released under an MIT license. See LICENSE.

// Package num provides lisp's fixed-width integer type.
//
// Arithmetic on numbers wraps on overflow.
package num

import (
	"strconv"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "number"

// T (number) wraps Go's int64 type.
type T int64

// New creates a new number cell.
func New(v int64) *T {
	n := T(v)
	return &n
}

// Parse creates a new number from the base-10 string s.
func Parse(s string) (*T, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}

	return New(v), nil
}

// The number type is a cell.

// Equal returns true if c is the same number as the number n.
func (n *T) Equal(c cell.T) bool {
	o, ok := c.(*T)

	return ok && *n == *o
}

// Name returns the type name for the number n.
func (n *T) Name() string {
	return name
}

// The number type is an integer.

// Int returns the value of the number n.
func (n *T) Int() (int64, bool) {
	return int64(*n), true
}

// The number type has a literal representation.

// Literal returns the literal representation of the number n.
func (n *T) Literal() string {
	return strconv.FormatInt(int64(*n), 10)
}

// The number type is a stringer.

// String returns the text of the number n.
func (n *T) String() string {
	return n.Literal()
}

// The number type is text.

// Text returns the decimal text of the number n.
func (n *T) Text() string {
	return n.Literal()
}
