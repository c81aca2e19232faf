// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/dotted"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
	"github.com/michaelmacinnis/lisp/internal/type/list"
)

const pairKind = "pair"

func car(args []cell.T) (cell.T, error) {
	err := validate.Fixed(args, 1)
	if err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case *list.T:
		if !v.Empty() {
			return v.Items()[0], nil
		}
	case *dotted.T:
		if len(v.Items()) > 0 {
			return v.Items()[0], nil
		}
	}

	return nil, &fault.TypeMismatch{Expected: pairKind, Found: args[0]}
}

func cdr(args []cell.T) (cell.T, error) {
	err := validate.Fixed(args, 1)
	if err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case *list.T:
		if !v.Empty() {
			return list.New(v.Items()[1:]...), nil
		}
	case *dotted.T:
		if items := v.Items(); len(items) > 0 {
			return dotted.New(items[1:], v.Tail()), nil
		}
	}

	return nil, &fault.TypeMismatch{Expected: pairKind, Found: args[0]}
}

func cons(args []cell.T) (cell.T, error) {
	err := validate.Fixed(args, 2)
	if err != nil {
		return nil, err
	}

	head := args[0]

	switch v := args[1].(type) {
	case *list.T:
		return list.New(prepend(head, v.Items())...), nil
	case *dotted.T:
		return dotted.New(prepend(head, v.Items()), v.Tail()), nil
	}

	return dotted.New([]cell.T{head}, args[1]), nil
}

func prepend(head cell.T, items []cell.T) []cell.T {
	return append([]cell.T{head}, items...)
}
