// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to primitives.
package validate

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
)

// Fixed returns an error unless exactly n arguments were passed.
func Fixed(actual []cell.T, n int) error {
	if len(actual) != n {
		return &fault.NumArgs{Expected: n, Found: actual}
	}

	return nil
}

// Minimum returns an error if fewer than min arguments were passed.
func Minimum(actual []cell.T, min int) error {
	if len(actual) < min {
		return &fault.NumArgs{Expected: min, Found: actual}
	}

	return nil
}

// Variadic returns an error unless between min and max arguments,
// inclusive, were passed. The error names the bound that was crossed.
func Variadic(actual []cell.T, min, max int) error {
	if len(actual) > max {
		return &fault.NumArgs{Expected: max, Found: actual}
	}

	return Minimum(actual, min)
}
