// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/port"
	"github.com/michaelmacinnis/lisp/internal/type/str"
)

// apply calls its first argument. A single list argument after the
// function is spread into the argument list.
func apply(e *env.T, args []cell.T, call Applier) (cell.T, error) {
	err := validate.Minimum(args, 1)
	if err != nil {
		return nil, err
	}

	f, rest := args[0], args[1:]
	if len(rest) == 1 {
		if l, ok := rest[0].(*list.T); ok {
			rest = l.Items()
		}
	}

	return call(e, f, rest)
}

func closePort(e *env.T, args []cell.T, _ Applier) (cell.T, error) {
	err := validate.Fixed(args, 1)
	if err != nil {
		return nil, err
	}

	p, ok := args[0].(*port.T)
	if !ok {
		return boolean.False, nil
	}

	return boolean.Bool(e.Close(p)), nil
}

func openInputFile(e *env.T, args []cell.T, _ Applier) (cell.T, error) {
	path, err := pathArgument(args)
	if err != nil {
		return nil, err
	}

	p, err := e.OpenRead(path)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func openOutputFile(e *env.T, args []cell.T, _ Applier) (cell.T, error) {
	path, err := pathArgument(args)
	if err != nil {
		return nil, err
	}

	p, err := e.OpenWrite(path)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func read(e *env.T, args []cell.T, _ Applier) (cell.T, error) {
	err := validate.Variadic(args, 0, 1)
	if err != nil {
		return nil, err
	}

	r := e.Stdin()

	if len(args) == 1 {
		p, err := portArgument(args[0])
		if err != nil {
			return nil, err
		}

		r, err = e.Reader(p)
		if err != nil {
			return nil, err
		}
	}

	return reader.ReadLine(r)
}

func readAll(_ *env.T, args []cell.T, _ Applier) (cell.T, error) {
	path, err := pathArgument(args)
	if err != nil {
		return nil, err
	}

	cs, err := reader.Load(path)
	if err != nil {
		return nil, err
	}

	return list.New(cs...), nil
}

func readContents(_ *env.T, args []cell.T, _ Applier) (cell.T, error) {
	path, err := pathArgument(args)
	if err != nil {
		return nil, err
	}

	s, err := reader.Contents(path)
	if err != nil {
		return nil, err
	}

	return str.New(s), nil
}

func write(e *env.T, args []cell.T, _ Applier) (cell.T, error) {
	err := validate.Variadic(args, 1, 2)
	if err != nil {
		return nil, err
	}

	w := e.Stdout()

	if len(args) == 2 {
		p, err := portArgument(args[1])
		if err != nil {
			return nil, err
		}

		w, err = e.Writer(p)
		if err != nil {
			return nil, err
		}
	}

	_, err = fmt.Fprintln(w, literal.String(args[0]))
	if err != nil {
		return nil, &fault.IO{Op: "write", Err: err}
	}

	return boolean.True, nil
}

func pathArgument(args []cell.T) (string, error) {
	err := validate.Fixed(args, 1)
	if err != nil {
		return "", err
	}

	s, ok := args[0].(*str.T)
	if !ok {
		return "", &fault.TypeMismatch{Expected: "string", Found: args[0]}
	}

	return s.String(), nil
}

func portArgument(c cell.T) (*port.T, error) {
	p, ok := c.(*port.T)
	if !ok {
		return nil, &fault.TypeMismatch{Expected: "port", Found: c}
	}

	return p, nil
}
