// Released under an MIT license. See LICENSE.

// Package effect provides lisp's effectful primitive operation type.
// These operations may touch the file system or the session's port table.
package effect

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "IO primitive"

// ID identifies one of the fixed set of effectful operations.
type ID int

// Effectful operations.
const (
	Apply ID = iota
	OpenInputFile
	OpenOutputFile
	CloseInputPort
	CloseOutputPort
	Read
	Write
	ReadContents
	ReadAll

	count
)

//nolint:gochecknoglobals
var names = [count]string{
	Apply:           "apply",
	OpenInputFile:   "open-input-file",
	OpenOutputFile:  "open-output-file",
	CloseInputPort:  "close-input-port",
	CloseOutputPort: "close-output-port",
	Read:            "read",
	Write:           "write",
	ReadContents:    "read-contents",
	ReadAll:         "read-all",
}

// All returns every effectful operation ID.
func All() []ID {
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = ID(i)
	}

	return ids
}

// String returns the name that an effectful operation is bound to.
func (id ID) String() string {
	if id < 0 || id >= count {
		return "unknown"
	}

	return names[id]
}

// T (effect) refers to an effectful operation.
type T struct {
	id ID
}

// New creates a reference to the effectful operation id.
func New(id ID) *T {
	return &T{id: id}
}

// The effect type is a cell.

// Equal returns true if c refers to the same effectful operation.
func (e *T) Equal(c cell.T) bool {
	o, ok := c.(*T)

	return ok && e.id == o.id
}

// Name returns the type name for e.
func (e *T) Name() string {
	return name
}

// The effect type has a literal representation.

// Literal returns the literal representation of e.
func (e *T) Literal() string {
	return "<IO primitive>"
}

// ID returns the operation that e refers to.
func (e *T) ID() ID {
	return e.id
}
