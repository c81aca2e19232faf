// Released under an MIT license. See LICENSE.

// Package reader turns files and streams into lisp expressions.
package reader

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
)

// Contents returns the text of the file at path.
func Contents(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &fault.IO{Op: "read", Path: path, Err: err}
	}

	return string(b), nil
}

// Load reads the file at path and parses every expression in it.
func Load(path string) ([]cell.T, error) {
	text, err := Contents(path)
	if err != nil {
		return nil, err
	}

	cs, err := parser.ParseAll(text)
	if err != nil {
		return nil, &fault.Parse{Err: err}
	}

	return cs, nil
}

// ReadLine reads lines from r until it finds one that is not blank and
// parses it as a single expression.
func ReadLine(r *bufio.Reader) (cell.T, error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &fault.IO{Op: "read", Err: err}
		}

		if strings.TrimSpace(line) != "" {
			c, perr := parser.Parse(line)
			if perr != nil {
				return nil, &fault.Parse{Err: perr}
			}

			return c, nil
		}

		if err != nil {
			return nil, &fault.IO{Op: "read", Err: err}
		}
	}
}
