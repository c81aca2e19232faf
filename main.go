/*
Lisp is a small Scheme interpreter.

Given an expression, lisp evaluates it and prints the result:

    lisp '(+ 2 (- 4 1))'

Without one, lisp reads expressions from stdin, one per line, and prints
each result. Definitions persist from line to line. Enter quit to exit.

    Lisp>>> (define (square x) (* x x))
    (lambda (x) ...)
    Lisp>>> (square 12)
    144

Lisp is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/lisp/internal/engine"
	"github.com/michaelmacinnis/lisp/internal/system/options"
	"github.com/michaelmacinnis/lisp/internal/ui"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func logger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)

	if options.Debug() {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

func run(argv []string) int {
	err := options.Parse(argv, version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	l := logger()

	opts := []engine.Option{engine.WithLogger(l)}
	if options.Prelude() {
		opts = append(opts, engine.WithPrelude())
	}

	e, err := engine.New(opts...)
	if err != nil {
		l.WithError(err).Error("cannot start session")

		return 1
	}
	defer e.Close()

	l.WithFields(logrus.Fields{
		"interactive": options.Interactive(),
		"prelude":     options.Prelude(),
		"terminal":    options.Terminal(),
	}).Debug("session started")

	for _, path := range options.Files() {
		_, err = e.Load(path)
		if err != nil {
			ui.Print(os.Stdout, nil, err)

			return 1
		}
	}

	if !options.Interactive() {
		v, err := e.Run(options.Expression())
		ui.Print(os.Stdout, v, err)

		if err != nil {
			l.WithError(err).Debug("evaluation failed")

			return 1
		}

		return 0
	}

	if options.Terminal() {
		ui.Run(e, os.Stdout, l)

		return 0
	}

	err = ui.Plain(e, os.Stdin, os.Stdout)
	if err != nil {
		l.WithError(err).Error("cannot read input")

		return 1
	}

	return 0
}
