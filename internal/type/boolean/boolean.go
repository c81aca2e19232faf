// Released under an MIT license. See LICENSE.

// Package boolean provides lisp's boolean type.
package boolean

import (
	"strconv"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "boolean"

// Literal forms for true and false.
const (
	TrueLiteral  = "#t"
	FalseLiteral = "#f"
)

// T (boolean) wraps Go's bool type.
type T bool

//nolint:gochecknoglobals
var (
	// True is the only true value.
	True = New(true)

	// False is the only false value.
	False = New(false)
)

// New creates a new boolean cell. Use Bool to get the shared instances.
func New(v bool) *T {
	b := T(v)
	return &b
}

// Bool returns True or False depending on v.
func Bool(v bool) *T {
	if v {
		return True
	}

	return False
}

// The boolean type is a cell.

// Equal returns true if c is a boolean with the same value as b.
func (b *T) Equal(c cell.T) bool {
	o, ok := c.(*T)

	return ok && *b == *o
}

// Name returns the name of the boolean type.
func (b *T) Name() string {
	return name
}

// The boolean type is a truth value.

// Bool returns the Go bool value of b.
func (b *T) Bool() bool {
	return bool(*b)
}

// The boolean type has a literal representation.

// Literal returns #t or #f.
func (b *T) Literal() string {
	if *b {
		return TrueLiteral
	}

	return FalseLiteral
}

// The boolean type is a stringer.

// String returns the literal representation of b.
func (b *T) String() string {
	return b.Literal()
}

// The boolean type is text.

// Text returns "true" or "false".
func (b *T) Text() string {
	return strconv.FormatBool(bool(*b))
}

// Functions specific to boolean.

// IsFalse returns true if c is the boolean false.
// Every other value, boolean or not, counts as true.
func IsFalse(c cell.T) bool {
	b, ok := c.(*T)
	return ok && !bool(*b)
}
