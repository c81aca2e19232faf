// Released under an MIT license. See LICENSE.

// Package closure provides lisp's user-defined function type.
package closure

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/list"
)

const name = "closure"

// T (closure) is a function body with the environment it was created in.
type T struct {
	params   []string
	vararg   string
	body     []cell.T
	captured env.Snapshot
}

// New creates a closure. An empty vararg means the closure takes exactly
// len(params) arguments.
func New(params []string, vararg string, body []cell.T, captured env.Snapshot) *T {
	return &T{
		params:   params,
		vararg:   vararg,
		body:     body,
		captured: captured,
	}
}

// The closure type is a cell.

// Equal returns true if c is a closure with the same parameters, body
// and captured environment.
func (c *T) Equal(o cell.T) bool {
	t, ok := o.(*T)
	if !ok {
		return false
	}

	if c == t {
		return true
	}

	if c.vararg != t.vararg || c.captured != t.captured {
		return false
	}

	if len(c.params) != len(t.params) {
		return false
	}

	for i := range c.params {
		if c.params[i] != t.params[i] {
			return false
		}
	}

	return list.Equal(c.body, t.body)
}

// Name returns the type name for c.
func (c *T) Name() string {
	return name
}

// The closure type has a literal representation.

// Literal returns the parameter list of c. The body is elided.
func (c *T) Literal() string {
	if len(c.params) == 0 && c.vararg != "" {
		return "(lambda " + c.vararg + " ...)"
	}

	s := "(lambda (" + strings.Join(c.params, " ")
	if c.vararg != "" {
		s += " . " + c.vararg
	}

	return s + ") ...)"
}

// The closure type is a stringer.

// String returns the literal representation of c.
func (c *T) String() string {
	return c.Literal()
}

// Functions specific to closure.

// Body returns the forms evaluated when c is called.
func (c *T) Body() []cell.T {
	return c.body
}

// Captured returns the environment view c was created in.
func (c *T) Captured() env.Snapshot {
	return c.captured
}

// Params returns the names of c's fixed parameters.
func (c *T) Params() []string {
	return c.params
}

// Vararg returns the name bound to any extra arguments, if c has one.
func (c *T) Vararg() (string, bool) {
	return c.vararg, c.vararg != ""
}
