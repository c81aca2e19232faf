// Released under an MIT license. See LICENSE.

// Package truth defines the interface for lisp's boolean values.
package truth

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
)

// Kind is the name reported when a cell cannot be used as a bool.
const Kind = "bool"

// T (truth) is anything that is strictly true or false.
type T interface {
	Bool() bool
}

// Value returns the bool value for a cell, if possible.
func Value(c cell.T) (bool, error) {
	if b, ok := c.(T); ok {
		return b.Bool(), nil
	}

	return false, &fault.TypeMismatch{Expected: Kind, Found: c}
}
