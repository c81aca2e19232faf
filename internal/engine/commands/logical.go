// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/truth"
)

// Both operands are always evaluated; these are procedures, not special forms.

func and(args []cell.T) (cell.T, error) {
	return relate(args, truth.Value, func(a, b bool) bool { return a && b })
}

func or(args []cell.T) (cell.T, error) {
	return relate(args, truth.Value, func(a, b bool) bool { return a || b })
}
