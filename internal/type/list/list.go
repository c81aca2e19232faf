// Released under an MIT license. See LICENSE.

// Package list provides lisp's proper list type.
package list

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
)

const name = "list"

// Null is the empty list.
var Null = New() //nolint:gochecknoglobals

// T (list) is an ordered, possibly empty, sequence of cells.
// A list is never modified after it is created.
type T struct {
	items []cell.T
}

// New creates a list holding the cells in items.
func New(items ...cell.T) *T {
	return &T{items: items}
}

// Copy creates a list holding a copy of the slice items.
func Copy(items []cell.T) *T {
	return New(append([]cell.T(nil), items...)...)
}

// The list type is a cell.

// Equal returns true if c is a list with elements equal to l's.
func (l *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	if !ok {
		return false
	}

	return Equal(l.items, o.items)
}

// Name returns the name for the list type.
func (l *T) Name() string {
	return name
}

// The list type has a literal representation.

// Literal returns the literal representation of the list l.
func (l *T) Literal() string {
	return "(" + literal.Join(l.items) + ")"
}

// The list type is a stringer.

// String returns the literal representation of the list l.
func (l *T) String() string {
	return l.Literal()
}

// Functions specific to list.

// Empty returns true if l has no elements.
func (l *T) Empty() bool {
	return len(l.items) == 0
}

// Items returns the elements of l. The slice must not be modified.
func (l *T) Items() []cell.T {
	return l.items
}

// Equal returns true if a and b have the same length and equal elements.
func Equal(a, b []cell.T) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
