// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for lisp.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
	"github.com/michaelmacinnis/lisp/internal/system/history"
)

// Prompt is displayed before each line is read.
const Prompt = "Lisp>>> "

// Evaluator is the interface for things that want to process input lines.
type Evaluator interface {
	Run(text string) (cell.T, error)
}

// Plain reads lines from r, evaluating each, until a quit line or the end
// of input. Prompts and results are written to w.
func Plain(e Evaluator, r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, Prompt)

		if !s.Scan() {
			fmt.Fprintln(w)

			return s.Err()
		}

		if !line(e, w, s.Text()) {
			return nil
		}
	}
}

// Print writes the value v, or the error err, as a single line.
func Print(w io.Writer, v cell.T, err error) {
	if err == nil {
		fmt.Fprintln(w, literal.String(v))

		return
	}

	if _, ok := err.(*parser.Error); ok { //nolint:errorlint
		fmt.Fprintln(w, "Parse error:", err)
	} else {
		fmt.Fprintln(w, "Eval error:", err)
	}
}

// Run reads lines with editing and history, evaluating each, until a
// quit line or the end of input.
func Run(e Evaluator, w io.Writer, l logrus.FieldLogger) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	path, err := history.Path()
	if err != nil {
		l.WithError(err).Debug("no history file")
	} else if err = history.Load(path, cli.ReadHistory); err != nil {
		l.WithError(err).WithField("path", path).Warn("cannot read history")
	}

	for {
		text, err := cli.Prompt(Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if err != nil {
			if !errors.Is(err, io.EOF) {
				l.WithError(err).Debug("prompt failed")
			}

			fmt.Fprintln(w)

			break
		}

		if strings.TrimSpace(text) != "" {
			cli.AppendHistory(text)
		}

		if !line(e, w, text) {
			break
		}
	}

	if path != "" {
		err = history.Save(path, cli.WriteHistory)
		if err != nil {
			l.WithError(err).WithField("path", path).Warn("cannot write history")
		}
	}
}

// line evaluates text and prints the outcome. It returns false on quit.
func line(e Evaluator, w io.Writer, text string) bool {
	text = strings.TrimSpace(text)

	switch text {
	case "":
		return true
	case "quit":
		return false
	}

	v, err := e.Run(text)
	Print(w, v, err)

	return true
}
