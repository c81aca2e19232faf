// Released under an MIT license. See LICENSE.

// Package commands provides lisp's primitive and IO operations.
package commands

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/effect"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/native"
)

// Applier calls f with args. IO operations that call back into the
// evaluator, such as apply, are passed one.
type Applier func(e *env.T, f cell.T, args []cell.T) (cell.T, error)

type (
	function  func(args []cell.T) (cell.T, error)
	procedure func(e *env.T, args []cell.T, call Applier) (cell.T, error)
)

//nolint:gochecknoglobals
var (
	functions = map[native.ID]function{
		native.Add:       add,
		native.Sub:       sub,
		native.Mul:       mul,
		native.Div:       div,
		native.Mod:       mod,
		native.Quotient:  quotient,
		native.Remainder: remainder,
		native.NumEq:     numEq,
		native.NumLt:     numLt,
		native.NumGt:     numGt,
		native.NumNe:     numNe,
		native.NumGe:     numGe,
		native.NumLe:     numLe,
		native.And:       and,
		native.Or:        or,
		native.StringEq:  stringEq,
		native.StringLt:  stringLt,
		native.StringGt:  stringGt,
		native.StringLe:  stringLe,
		native.StringGe:  stringGe,
		native.Car:       car,
		native.Cdr:       cdr,
		native.Cons:      cons,
		native.Eq:        eqv,
		native.Eqv:       eqv,
		native.Equal:     equal,
	}

	procedures = map[effect.ID]procedure{
		effect.Apply:           apply,
		effect.OpenInputFile:   openInputFile,
		effect.OpenOutputFile:  openOutputFile,
		effect.CloseInputPort:  closePort,
		effect.CloseOutputPort: closePort,
		effect.Read:            read,
		effect.Write:           write,
		effect.ReadContents:    readContents,
		effect.ReadAll:         readAll,
	}
)

// Bind defines every primitive and IO operation in e under its name.
func Bind(e *env.T) {
	for _, id := range native.All() {
		e.Define(id.String(), native.New(id))
	}

	for _, id := range effect.All() {
		e.Define(id.String(), effect.New(id))
	}
}

// Call invokes the primitive operation id.
func Call(id native.ID, args []cell.T) (cell.T, error) {
	return functions[id](args)
}

// Perform invokes the IO operation id.
func Perform(e *env.T, id effect.ID, args []cell.T, call Applier) (cell.T, error) {
	return procedures[id](e, args, call)
}
