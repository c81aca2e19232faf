// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for lisp code.
package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/lisp/internal/engine/boot"
	"github.com/michaelmacinnis/lisp/internal/engine/commands"
	"github.com/michaelmacinnis/lisp/internal/engine/eval"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
)

// T (engine) is a facade in front of the machinery for evaluating lisp code.
type T struct {
	env     *env.T
	log     *logrus.Logger
	options []env.Option
	prelude bool
}

// Option configures a new engine.
type Option func(*T)

// WithInput sets the reader used by read when no port is given.
func WithInput(r io.Reader) Option {
	return func(t *T) {
		t.options = append(t.options, env.WithInput(r))
	}
}

// WithLogger sets the engine's logger.
func WithLogger(l *logrus.Logger) Option {
	return func(t *T) {
		t.log = l
	}
}

// WithOutput sets the writer used by write when no port is given.
func WithOutput(w io.Writer) Option {
	return func(t *T) {
		t.options = append(t.options, env.WithOutput(w))
	}
}

// WithPrelude loads the library procedures written in lisp.
func WithPrelude() Option {
	return func(t *T) {
		t.prelude = true
	}
}

// New creates a new engine with every primitive bound.
func New(options ...Option) (*T, error) {
	t := &T{log: logrus.StandardLogger()}

	for _, o := range options {
		o(t)
	}

	t.env = env.New(append(t.options, env.WithLogger(t.log))...)

	commands.Bind(t.env)

	if t.prelude {
		cs, err := parser.ParseAll(boot.Script())
		if err != nil {
			return nil, &fault.Parse{Err: err}
		}

		for _, c := range cs {
			_, err = t.Evaluate(c)
			if err != nil {
				return nil, err
			}
		}

		t.log.WithField("definitions", len(cs)).Debug("loaded prelude")
	}

	return t, nil
}

// Close closes every port left open.
func (t *T) Close() {
	t.env.CloseAll()
}

// Env returns the engine's environment.
func (t *T) Env() *env.T {
	return t.env
}

// Evaluate evaluates the expression c at the top level.
func (t *T) Evaluate(c cell.T) (cell.T, error) {
	s := t.env.Snapshot()
	defer t.env.Restore(s)

	return eval.Evaluate(t.env, c)
}

// Load evaluates the file at path and returns its last value.
func (t *T) Load(path string) (cell.T, error) {
	s := t.env.Snapshot()
	defer t.env.Restore(s)

	return eval.Load(t.env, path)
}

// Run parses text as a single expression and evaluates it.
// Parse failures are returned as *parser.Error.
func (t *T) Run(text string) (cell.T, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}

	return t.Evaluate(c)
}
