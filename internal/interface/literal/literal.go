// Released under an MIT license. See LICENSE.

// Package literal defines the interface for lisp types that have a textual form.
package literal

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// T (literal) is any type that can be expressed as text.
type T interface {
	Literal() string
}

// String returns the canonical text for a cell.
func String(c cell.T) string {
	if c == nil {
		return "<nil>"
	}

	l, ok := c.(T)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}

// Join returns the canonical text of each cell in cs separated by a space.
func Join(cs []cell.T) string {
	var b strings.Builder

	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(String(c))
	}

	return b.String()
}
