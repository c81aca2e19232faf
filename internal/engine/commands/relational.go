// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/integer"
	"github.com/michaelmacinnis/lisp/internal/type/boolean"
)

func numEq(args []cell.T) (cell.T, error) {
	return relate(args, integer.Value, func(a, b int64) bool { return a == b })
}

func numGe(args []cell.T) (cell.T, error) {
	return relate(args, integer.Value, func(a, b int64) bool { return a >= b })
}

func numGt(args []cell.T) (cell.T, error) {
	return relate(args, integer.Value, func(a, b int64) bool { return a > b })
}

func numLe(args []cell.T) (cell.T, error) {
	return relate(args, integer.Value, func(a, b int64) bool { return a <= b })
}

func numLt(args []cell.T) (cell.T, error) {
	return relate(args, integer.Value, func(a, b int64) bool { return a < b })
}

func numNe(args []cell.T) (cell.T, error) {
	return relate(args, integer.Value, func(a, b int64) bool { return a != b })
}

// relate coerces exactly two arguments with value and compares them with f.
func relate[V any](args []cell.T, value func(cell.T) (V, error), f func(a, b V) bool) (cell.T, error) {
	err := validate.Fixed(args, 2)
	if err != nil {
		return nil, err
	}

	a, err := value(args[0])
	if err != nil {
		return nil, err
	}

	b, err := value(args[1])
	if err != nil {
		return nil, err
	}

	return boolean.Bool(f(a, b)), nil
}
