// Released under an MIT license. See LICENSE.

// Package text defines the interface for values usable as strings.
package text

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
)

// Kind is the name reported when a cell cannot be used as a string.
const Kind = "string"

// T (text) is anything that has a plain string value.
type T interface {
	Text() string
}

// Value returns the string value for a cell, if possible.
func Value(c cell.T) (string, error) {
	if t, ok := c.(T); ok {
		return t.Text(), nil
	}

	return "", &fault.TypeMismatch{Expected: Kind, Found: c}
}
