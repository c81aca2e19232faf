// Released under an MIT license. See LICENSE.

// Package dotted provides lisp's improper list type.
package dotted

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/type/list"
)

const name = "dotted list"

// T (dotted) is a sequence of cells ending in a tail that is not a list.
type T struct {
	items []cell.T
	tail  cell.T
}

// New creates a dotted list from items and tail.
func New(items []cell.T, tail cell.T) *T {
	return &T{items: items, tail: tail}
}

// The dotted type is a cell.

// Equal returns true if c is a dotted list with the same elements and tail.
func (d *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	if !ok {
		return false
	}

	return list.Equal(d.items, o.items) && d.tail.Equal(o.tail)
}

// Name returns the name for the dotted type.
func (d *T) Name() string {
	return name
}

// The dotted type has a literal representation.

// Literal returns the literal representation of the dotted list d.
func (d *T) Literal() string {
	return "(" + literal.Join(d.items) + " . " + literal.String(d.tail) + ")"
}

// The dotted type is a stringer.

// String returns the literal representation of the dotted list d.
func (d *T) String() string {
	return d.Literal()
}

// Functions specific to dotted.

// Items returns the elements before the tail. The slice must not be modified.
func (d *T) Items() []cell.T {
	return d.items
}

// Tail returns the final cell of d.
func (d *T) Tail() cell.T {
	return d.tail
}

// Flatten returns the elements of d followed by its tail.
func (d *T) Flatten() []cell.T {
	return append(append(make([]cell.T, 0, len(d.items)+1), d.items...), d.tail)
}
