// Released under an MIT license. See LICENSE.

// Package frame provides lisp's activation record type.
package frame

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/reference"
	"github.com/michaelmacinnis/lisp/internal/type/slot"
)

// T (frame) maps names to slots and points at its enclosing frame.
//
// A frame lives as long as something refers to it: the environment while
// its call is running, or any closure created inside that call.
type T struct {
	previous *T
	slots    map[string]*slot.T
}

// New creates a new frame enclosed by previous. The outermost frame has
// a nil previous.
func New(previous *T) *T {
	return &T{previous: previous, slots: map[string]*slot.T{}}
}

// Define binds the name k to a fresh slot holding v, replacing any
// existing binding for k in frame f.
func (f *T) Define(k string, v cell.T) {
	f.slots[k] = slot.New(v)
}

// Depth returns the number of frames enclosing f.
func (f *T) Depth() int {
	n := 0
	for p := f.previous; p != nil; p = p.previous {
		n++
	}

	return n
}

// Resolve looks for k in f and then in each enclosing frame.
// It returns nil if k is not bound.
func (f *T) Resolve(k string) reference.T {
	for ; f != nil; f = f.previous {
		if s, ok := f.slots[k]; ok {
			return s
		}
	}

	return nil
}
