// Released under an MIT license. See LICENSE.

// Package port provides lisp's file port type.
package port

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "port"

// Direction says whether a port is read from or written to.
type Direction int

// Port directions.
const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Input {
		return "input"
	}

	return "output"
}

// T (port) is a handle into a session's open port table.
type T struct {
	handle    int
	direction Direction
}

// New creates a port for handle.
func New(handle int, direction Direction) *T {
	return &T{handle: handle, direction: direction}
}

// The port type is a cell.

// Equal returns true if c is a port with the same handle.
func (p *T) Equal(c cell.T) bool {
	o, ok := c.(*T)

	return ok && p.handle == o.handle
}

// Name returns the type name for p.
func (p *T) Name() string {
	return name
}

// The port type has a literal representation.

// Literal returns the literal representation of p.
func (p *T) Literal() string {
	return "<IO port>"
}

// Direction returns whether p is an input or output port.
func (p *T) Direction() Direction {
	return p.direction
}

// Handle returns the key for p in the open port table.
func (p *T) Handle() int {
	return p.handle
}
