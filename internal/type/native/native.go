// Released under an MIT license. See LICENSE.

// Package native provides lisp's pure primitive operation type.
package native

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "primitive"

// ID identifies one of the fixed set of pure primitive operations.
type ID int

// Primitive operations.
const (
	Add ID = iota
	Sub
	Mul
	Div
	Mod
	Quotient
	Remainder
	NumEq
	NumLt
	NumGt
	NumNe
	NumGe
	NumLe
	And
	Or
	StringEq
	StringLt
	StringGt
	StringLe
	StringGe
	Car
	Cdr
	Cons
	Eq
	Eqv
	Equal

	count
)

//nolint:gochecknoglobals
var names = [count]string{
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Div:       "/",
	Mod:       "mod",
	Quotient:  "quotient",
	Remainder: "remainder",
	NumEq:     "=",
	NumLt:     "<",
	NumGt:     ">",
	NumNe:     "/=",
	NumGe:     ">=",
	NumLe:     "<=",
	And:       "&&",
	Or:        "||",
	StringEq:  "string=?",
	StringLt:  "string<?",
	StringGt:  "string>?",
	StringLe:  "string<=?",
	StringGe:  "string>=?",
	Car:       "car",
	Cdr:       "cdr",
	Cons:      "cons",
	Eq:        "eq?",
	Eqv:       "eqv?",
	Equal:     "equal?",
}

// All returns every primitive operation ID.
func All() []ID {
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = ID(i)
	}

	return ids
}

// String returns the name that a primitive operation is bound to.
func (id ID) String() string {
	if id < 0 || id >= count {
		return "unknown"
	}

	return names[id]
}

// T (native) refers to a primitive operation.
type T struct {
	id ID
}

// New creates a reference to the primitive operation id.
func New(id ID) *T {
	return &T{id: id}
}

// The native type is a cell.

// Equal returns true if c refers to the same primitive operation.
func (n *T) Equal(c cell.T) bool {
	o, ok := c.(*T)

	return ok && n.id == o.id
}

// Name returns the type name for n.
func (n *T) Name() string {
	return name
}

// The native type has a literal representation.

// Literal returns the literal representation of n.
func (n *T) Literal() string {
	return "<primitive>"
}

// ID returns the operation that n refers to.
func (n *T) ID() ID {
	return n.id
}
