// Released under an MIT license. See LICENSE.

// Package options parses lisp's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	debug      bool
	expression string
	files      []string
	prelude    bool
	terminal   bool
	usage      = `lisp

Usage:
  lisp [-dp] [-l FILE]... [EXPRESSION]
  lisp -h
  lisp -v

Arguments:
  EXPRESSION  Expression to evaluate and print. Without one, lisp reads
              expressions from stdin, one per line.

Options:
  -d, --debug      Log debugging information to stderr.
  -l, --load=FILE  Load FILE before evaluating anything else.
  -p, --prelude    Define the library procedures written in lisp.
  -h, --help       Display this help.
  -v, --version    Print lisp version.

If lisp's stdin is a TTY and no expression is given, lines are read with
editing and history. The history is kept in ~/.lisp_history.
`
)

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Expression returns the expression given on the command line, if any.
func Expression() string {
	return expression
}

// Files returns the files to load, in order.
func Files() []string {
	return files
}

// Interactive returns true if expressions are to be read from stdin.
func Interactive() bool {
	return expression == ""
}

// Parse parses argv. It prints help or the version and exits when asked to.
func Parse(argv []string, version string) error {
	return parse(&docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}, argv, version)
}

// Prelude returns true if the prelude should be loaded.
func Prelude() bool {
	return prelude
}

// Terminal returns true if stdin is a terminal.
func Terminal() bool {
	return terminal
}

func parse(p *docopt.Parser, argv []string, version string) error {
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return err
	}

	debug, _ = opts.Bool("--debug")
	expression, _ = opts.String("EXPRESSION")
	files, _ = opts["--load"].([]string)
	prelude, _ = opts.Bool("--prelude")

	fd := os.Stdin.Fd()
	terminal = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	return nil
}
