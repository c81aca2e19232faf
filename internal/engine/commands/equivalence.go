// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/integer"
	"github.com/michaelmacinnis/lisp/internal/interface/text"
	"github.com/michaelmacinnis/lisp/internal/interface/truth"
	"github.com/michaelmacinnis/lisp/internal/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/type/dotted"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/str"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

func eqv(args []cell.T) (cell.T, error) {
	err := validate.Fixed(args, 2)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(equivalent(args[0], args[1])), nil
}

// equal compares its arguments as numbers, then as strings, then as bools.
// Arguments that share no coercion are not equal.
func equal(args []cell.T) (cell.T, error) {
	err := validate.Fixed(args, 2)
	if err != nil {
		return nil, err
	}

	a, b := args[0], args[1]

	if x, err := integer.Value(a); err == nil {
		if y, err := integer.Value(b); err == nil {
			return boolean.Bool(x == y), nil
		}
	}

	if x, err := text.Value(a); err == nil {
		if y, err := text.Value(b); err == nil {
			return boolean.Bool(x == y), nil
		}
	}

	if x, err := truth.Value(a); err == nil {
		if y, err := truth.Value(b); err == nil {
			return boolean.Bool(x == y), nil
		}
	}

	return boolean.False, nil
}

// equivalent is structural equality over data. A dotted list is compared
// as if its tail were its final element.
func equivalent(a, b cell.T) bool {
	switch x := a.(type) {
	case *boolean.T, *num.T, *str.T, *sym.T:
		return x.Equal(b)
	case *dotted.T:
		if y, ok := b.(*dotted.T); ok {
			return equivalentAll(x.Flatten(), y.Flatten())
		}
	case *list.T:
		if y, ok := b.(*list.T); ok {
			return equivalentAll(x.Items(), y.Items())
		}
	}

	return false
}

func equivalentAll(a, b []cell.T) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !equivalent(a[i], b[i]) {
			return false
		}
	}

	return true
}
