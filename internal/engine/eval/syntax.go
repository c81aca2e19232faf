// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/type/closure"
	"github.com/michaelmacinnis/lisp/internal/type/dotted"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/str"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// special evaluates form when its shape matches the special form name.
// A form that does not match is evaluated as an ordinary application.
func special(e *env.T, form cell.T, name string, args []cell.T) (cell.T, bool, error) {
	switch name {
	case "define":
		return define(e, form, args)
	case "if":
		return conditional(e, args)
	case "lambda":
		return lambda(e, form, args)
	case "load":
		return load(e, args)
	case "quote":
		if len(args) == 1 {
			return args[0], true, nil
		}
	case "set!":
		return set(e, args)
	}

	return nil, false, nil
}

func conditional(e *env.T, args []cell.T) (cell.T, bool, error) {
	if len(args) != 3 {
		return nil, false, nil
	}

	test, err := Evaluate(e, args[0])
	if err != nil {
		return nil, true, err
	}

	if boolean.IsFalse(test) {
		v, err := Evaluate(e, args[2])

		return v, true, err
	}

	v, err := Evaluate(e, args[1])

	return v, true, err
}

func define(e *env.T, form cell.T, args []cell.T) (cell.T, bool, error) {
	if len(args) == 0 {
		return nil, false, nil
	}

	switch header := args[0].(type) {
	case *sym.T:
		if len(args) != 2 {
			return nil, false, nil
		}

		v, err := Evaluate(e, args[1])
		if err != nil {
			return nil, true, err
		}

		return e.Define(header.String(), v), true, nil

	case *list.T:
		items := header.Items()
		if len(items) == 0 {
			return nil, true, malformed("Function name must be an atom", form)
		}

		return function(e, form, items[0], items[1:], nil, args[1:])

	case *dotted.T:
		items := header.Items()

		return function(e, form, items[0], items[1:], header.Tail(), args[1:])
	}

	return nil, false, nil
}

func function(
	e *env.T, form, name cell.T, params []cell.T, rest cell.T, body []cell.T,
) (cell.T, bool, error) {
	s, ok := name.(*sym.T)
	if !ok {
		return nil, true, malformed("Function name must be an atom", form)
	}

	c, err := closed(e, form, params, rest, body)
	if err != nil {
		return nil, true, err
	}

	return e.Define(s.String(), c), true, nil
}

func lambda(e *env.T, form cell.T, args []cell.T) (cell.T, bool, error) {
	if len(args) == 0 {
		return nil, false, nil
	}

	var (
		c   *closure.T
		err error
	)

	switch params := args[0].(type) {
	case *list.T:
		c, err = closed(e, form, params.Items(), nil, args[1:])
	case *dotted.T:
		c, err = closed(e, form, params.Items(), params.Tail(), args[1:])
	case *sym.T:
		c, err = closed(e, form, nil, params, args[1:])
	default:
		return nil, false, nil
	}

	if err != nil {
		return nil, true, err
	}

	return c, true, nil
}

func load(e *env.T, args []cell.T) (cell.T, bool, error) {
	if len(args) != 1 {
		return nil, false, nil
	}

	path, ok := args[0].(*str.T)
	if !ok {
		return nil, false, nil
	}

	v, err := Load(e, path.String())

	return v, true, err
}

func set(e *env.T, args []cell.T) (cell.T, bool, error) {
	if len(args) != 2 {
		return nil, false, nil
	}

	s, ok := args[0].(*sym.T)
	if !ok {
		return nil, false, nil
	}

	v, err := Evaluate(e, args[1])
	if err != nil {
		return nil, true, err
	}

	v, err = e.Assign(s.String(), v)

	return v, true, err
}

// closed makes a closure over the current view of e. Parameter names
// must be distinct atoms.
func closed(e *env.T, form cell.T, params []cell.T, rest cell.T, body []cell.T) (*closure.T, error) {
	seen := make(map[string]bool, len(params)+1)
	names := make([]string, 0, len(params))

	unique := func(c cell.T) (string, error) {
		s, ok := c.(*sym.T)
		if !ok {
			return "", malformed("Parameter must be an atom", form)
		}

		n := s.String()
		if seen[n] {
			return "", malformed("Duplicate parameter", form)
		}

		seen[n] = true

		return n, nil
	}

	for _, p := range params {
		n, err := unique(p)
		if err != nil {
			return nil, err
		}

		names = append(names, n)
	}

	vararg := ""

	if rest != nil {
		n, err := unique(rest)
		if err != nil {
			return nil, err
		}

		vararg = n
	}

	return closure.New(names, vararg, body, e.Snapshot()), nil
}

func malformed(msg string, form cell.T) error {
	return &fault.BadSpecialForm{Message: msg, Form: form}
}
