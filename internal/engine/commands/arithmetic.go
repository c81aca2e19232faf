// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/integer"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
	"github.com/michaelmacinnis/lisp/internal/type/num"
)

// Numeric operations wrap on overflow.

func add(args []cell.T) (cell.T, error) {
	return fold(args, false, func(a, b int64) int64 { return a + b })
}

func div(args []cell.T) (cell.T, error) {
	return fold(args, true, func(a, b int64) int64 { return a / b })
}

func mod(args []cell.T) (cell.T, error) {
	return fold(args, true, func(a, b int64) int64 {
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}

		return m
	})
}

func mul(args []cell.T) (cell.T, error) {
	return fold(args, false, func(a, b int64) int64 { return a * b })
}

func quotient(args []cell.T) (cell.T, error) {
	return fold(args, true, func(a, b int64) int64 { return a / b })
}

func remainder(args []cell.T) (cell.T, error) {
	return fold(args, true, func(a, b int64) int64 { return a % b })
}

func sub(args []cell.T) (cell.T, error) {
	return fold(args, false, func(a, b int64) int64 { return a - b })
}

// fold reduces two or more numeric arguments, left to right, with f.
// If divides is true a zero right operand is an error.
func fold(args []cell.T, divides bool, f func(a, b int64) int64) (cell.T, error) {
	err := validate.Minimum(args, 2)
	if err != nil {
		return nil, err
	}

	ns := make([]int64, len(args))
	for i, c := range args {
		ns[i], err = integer.Value(c)
		if err != nil {
			return nil, err
		}
	}

	acc := ns[0]
	for _, n := range ns[1:] {
		if divides && n == 0 {
			return nil, &fault.DivisionByZero{Found: args}
		}

		acc = f(acc, n)
	}

	return num.New(acc), nil
}
