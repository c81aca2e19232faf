// Released under an MIT license. See LICENSE.

// Package eval evaluates lisp expressions.
package eval

import (
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/lisp/internal/engine/commands"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/type/closure"
	"github.com/michaelmacinnis/lisp/internal/type/effect"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/native"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/str"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// Evaluate evaluates the expression c in e.
func Evaluate(e *env.T, c cell.T) (cell.T, error) {
	switch v := c.(type) {
	case *boolean.T, *num.T, *str.T:
		return c, nil
	case *sym.T:
		return e.Lookup(v.String())
	case *list.T:
		return combination(e, v)
	}

	return nil, unrecognized(c)
}

// Apply calls f with args. A closure leaves its new frame current;
// callers restore their own view once Apply returns.
func Apply(e *env.T, f cell.T, args []cell.T) (cell.T, error) {
	if l := e.Log(); l.IsLevelEnabled(logrus.TraceLevel) {
		l.WithFields(logrus.Fields{
			"args":     literal.Join(args),
			"depth":    e.Snapshot().Depth(),
			"function": literal.String(f),
		}).Trace("apply")
	}

	switch v := f.(type) {
	case *native.T:
		return commands.Call(v.ID(), args)
	case *effect.T:
		return commands.Perform(e, v.ID(), args, Apply)
	case *closure.T:
		return call(e, v, args)
	}

	return nil, &fault.NotFunction{Message: "Unrecognized function", Value: f}
}

// Load evaluates every expression in the file at path and returns the
// value of the last one.
func Load(e *env.T, path string) (cell.T, error) {
	cs, err := reader.Load(path)
	if err != nil {
		return nil, err
	}

	e.Log().WithFields(logrus.Fields{
		"expressions": len(cs),
		"path":        path,
	}).Debug("loading")

	return sequence(e, cs)
}

func application(e *env.T, items []cell.T) (cell.T, error) {
	f, err := Evaluate(e, items[0])
	if err != nil {
		return nil, err
	}

	args := make([]cell.T, 0, len(items)-1)

	for _, item := range items[1:] {
		v, err := Evaluate(e, item)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	s := e.Snapshot()
	v, err := Apply(e, f, args)
	e.Restore(s)

	return v, err
}

func call(e *env.T, c *closure.T, args []cell.T) (cell.T, error) {
	params := c.Params()
	vararg, variadic := c.Vararg()

	if len(args) < len(params) || (!variadic && len(args) > len(params)) {
		return nil, &fault.NumArgs{Expected: len(params), Found: args}
	}

	e.Enter(c.Captured())

	for i, p := range params {
		e.Define(p, args[i])
	}

	if variadic {
		e.Define(vararg, list.Copy(args[len(params):]))
	}

	return sequence(e, c.Body())
}

func combination(e *env.T, l *list.T) (cell.T, error) {
	items := l.Items()
	if len(items) == 0 {
		return nil, unrecognized(l)
	}

	if s, ok := items[0].(*sym.T); ok {
		v, matched, err := special(e, l, s.String(), items[1:])
		if matched {
			return v, err
		}
	}

	return application(e, items)
}

func sequence(e *env.T, body []cell.T) (cell.T, error) {
	if len(body) == 0 {
		return nil, &fault.EmptyBody{}
	}

	var (
		err error
		v   cell.T
	)

	for _, c := range body {
		v, err = Evaluate(e, c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func unrecognized(c cell.T) error {
	return &fault.BadSpecialForm{Message: fault.UnrecognizedForm, Form: c}
}
