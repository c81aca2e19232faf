// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/text"
)

func stringEq(args []cell.T) (cell.T, error) {
	return relate(args, text.Value, func(a, b string) bool { return a == b })
}

func stringGe(args []cell.T) (cell.T, error) {
	return relate(args, text.Value, func(a, b string) bool { return a >= b })
}

func stringGt(args []cell.T) (cell.T, error) {
	return relate(args, text.Value, func(a, b string) bool { return a > b })
}

func stringLe(args []cell.T) (cell.T, error) {
	return relate(args, text.Value, func(a, b string) bool { return a <= b })
}

func stringLt(args []cell.T) (cell.T, error) {
	return relate(args, text.Value, func(a, b string) bool { return a < b })
}
