// Released under an MIT license. See LICENSE.

// Package fault provides lisp's error types.
//
// Every failure raised while reading or evaluating lisp code is one of the
// types below. All of them are recoverable: the front end reports the error
// and carries on with the next form.
package fault

import (
	"fmt"
	"strconv"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
)

// Messages used when reporting unbound variables.
const (
	Getting = "Getting an unbound variable"
	Setting = "Setting an unbound variable"
)

// UnrecognizedForm is the message used for expressions with no evaluation rule.
const UnrecognizedForm = "Unrecognized special form"

// UnboundVariable is returned when a name without a binding is used.
type UnboundVariable struct {
	Message string
	Name    string
}

func (e *UnboundVariable) Error() string {
	return e.Message + ": " + e.Name
}

// TypeMismatch is returned when a value cannot be coerced to the expected kind.
type TypeMismatch struct {
	Expected string
	Found    cell.T
}

func (e *TypeMismatch) Error() string {
	return "Invalid type: expected " + e.Expected + ", found " + literal.String(e.Found)
}

// NumArgs is returned when a procedure is passed the wrong number of arguments.
// Expected is the exact count or, for variadic procedures, the minimum.
type NumArgs struct {
	Expected int
	Found    []cell.T
}

func (e *NumArgs) Error() string {
	return "Expected " + strconv.Itoa(e.Expected) + " args; found values " + literal.Join(e.Found)
}

// BadSpecialForm is returned for expressions that cannot be evaluated.
type BadSpecialForm struct {
	Message string
	Form    cell.T
}

func (e *BadSpecialForm) Error() string {
	return e.Message + ": " + literal.String(e.Form)
}

// NotFunction is returned when a value that is not callable is applied.
type NotFunction struct {
	Message string
	Value   cell.T
}

func (e *NotFunction) Error() string {
	return e.Message + ": " + literal.String(e.Value)
}

// EmptyBody is returned when a function with no body forms is called.
type EmptyBody struct{}

func (e *EmptyBody) Error() string {
	return "Function has empty body"
}

// DivisionByZero is returned when an integer division has a zero divisor.
type DivisionByZero struct {
	Found []cell.T
}

func (e *DivisionByZero) Error() string {
	return "Division by zero: " + literal.Join(e.Found)
}

// Parse wraps an error produced by the parser.
type Parse struct {
	Err error
}

func (e *Parse) Error() string {
	return "Parse error at " + e.Err.Error()
}

func (e *Parse) Unwrap() error {
	return e.Err
}

// IO wraps an operating system error encountered by a file operation.
type IO struct {
	Op   string
	Path string
	Err  error
}

func (e *IO) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("I/O error: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("I/O error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IO) Unwrap() error {
	return e.Err
}

// Port is returned when a port handle cannot be used for the requested operation.
type Port struct {
	Message string
	Handle  int
}

func (e *Port) Error() string {
	return "Port error: " + e.Message + ": " + strconv.Itoa(e.Handle)
}
