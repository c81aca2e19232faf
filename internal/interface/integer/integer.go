// Released under an MIT license. See LICENSE.

// Package integer defines the interface for values usable as numbers.
package integer

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
)

// Kind is the name reported when a cell cannot be used as a number.
const Kind = "number"

// T (integer) is anything that may be treated as a fixed-width integer.
type T interface {
	Int() (int64, bool)
}

// Value returns the int64 value for a cell, if possible.
func Value(c cell.T) (int64, error) {
	if i, ok := c.(T); ok {
		if n, ok := i.Int(); ok {
			return n, nil
		}
	}

	return 0, &fault.TypeMismatch{Expected: Kind, Found: c}
}
