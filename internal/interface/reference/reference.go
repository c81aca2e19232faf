// Released under an MIT license. See LICENSE.

// Package reference defines the interface for lisp's variable type.
package reference

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// T (reference) is anything that can hold a value.
type T interface {
	Get() cell.T
	Set(cell.T)
}
