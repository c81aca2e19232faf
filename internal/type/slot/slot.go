// Released under an MIT license. See LICENSE.

// Package slot provides lisp's variable type.
package slot

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/reference"
)

// T (slot) holds a cell value. Every holder of a slot sees its updates.
type T struct {
	c cell.T
}

// New creates a new slot with the cell c.
func New(c cell.T) *T {
	return &T{c: c}
}

// Get returns the cell in slot s.
func (s *T) Get() cell.T {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *T) Set(c cell.T) {
	s.c = c
}

func implements() { //nolint:deadcode,unused
	// This function is never called. Its purpose is as compiler-checked
	// documentation about the interfaces this type satisfies.
	var s T

	var r reference.T = &s
	_ = r
}
