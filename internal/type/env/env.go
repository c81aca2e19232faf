// Released under an MIT license. See LICENSE.

// Package env provides the lisp evaluation environment.
//
// An environment is a chain of frames with a current frame, the live view
// used for lookups and definitions. Variables live in shared slots, so a
// closure that captured a frame observes every later assignment to the
// variables in it. Each environment also owns a table of open file ports.
package env

import (
	"bufio"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
	"github.com/michaelmacinnis/lisp/internal/type/frame"
	"github.com/michaelmacinnis/lisp/internal/type/port"
)

// T (env) is one evaluation session's mutable state.
type T struct {
	current *frame.T
	global  *frame.T

	handle int
	ports  map[int]*stream

	stdin  *bufio.Reader
	stdout io.Writer

	log *logrus.Logger
}

// Snapshot is a captured view of an environment.
// The zero Snapshot is the empty view.
type Snapshot struct {
	f *frame.T
}

// Depth returns the number of frames enclosing the captured frame.
func (s Snapshot) Depth() int {
	if s.f == nil {
		return -1
	}

	return s.f.Depth()
}

type stream struct {
	direction port.Direction
	file      *os.File
	path      string
	reader    *bufio.Reader
}

// Option configures a new environment.
type Option func(*T)

// WithInput sets the reader used by read when no port is given.
func WithInput(r io.Reader) Option {
	return func(e *T) {
		e.stdin = bufio.NewReader(r)
	}
}

// WithLogger sets the logger used to report port activity and tracing.
func WithLogger(l *logrus.Logger) Option {
	return func(e *T) {
		e.log = l
	}
}

// WithOutput sets the writer used by write when no port is given.
func WithOutput(w io.Writer) Option {
	return func(e *T) {
		e.stdout = w
	}
}

// New creates an empty environment.
func New(options ...Option) *T {
	global := frame.New(nil)

	e := &T{
		current: global,
		global:  global,
		ports:   map[int]*stream{},
		stdin:   bufio.NewReader(os.Stdin),
		stdout:  os.Stdout,
		log:     logrus.StandardLogger(),
	}

	for _, o := range options {
		o(e)
	}

	return e
}

// Assign replaces the value of the existing variable k with v.
func (e *T) Assign(k string, v cell.T) (cell.T, error) {
	r := e.current.Resolve(k)
	if r == nil {
		return nil, &fault.UnboundVariable{Message: fault.Setting, Name: k}
	}

	r.Set(v)

	return v, nil
}

// Define binds k to v in the current frame using a fresh slot.
func (e *T) Define(k string, v cell.T) cell.T {
	e.current.Define(k, v)

	return v
}

// Enter makes a new frame, enclosed by the captured view s, current.
// Definitions made after Enter shadow the names visible through s.
func (e *T) Enter(s Snapshot) {
	enclosing := s.f
	if enclosing == nil {
		enclosing = e.global
	}

	e.current = frame.New(enclosing)
}

// Log returns the environment's logger.
func (e *T) Log() *logrus.Logger {
	return e.log
}

// Lookup retrieves the value of the variable k.
func (e *T) Lookup(k string) (cell.T, error) {
	r := e.current.Resolve(k)
	if r == nil {
		return nil, &fault.UnboundVariable{Message: fault.Getting, Name: k}
	}

	return r.Get(), nil
}

// Restore makes the captured view s current again.
func (e *T) Restore(s Snapshot) {
	if s.f == nil {
		e.current = e.global

		return
	}

	e.current = s.f
}

// Snapshot captures the current view.
func (e *T) Snapshot() Snapshot {
	return Snapshot{f: e.current}
}

// Stdin returns the reader used when read is not given a port.
func (e *T) Stdin() *bufio.Reader {
	return e.stdin
}

// Stdout returns the writer used when write is not given a port.
func (e *T) Stdout() io.Writer {
	return e.stdout
}

// Port table.

// Close closes the port p. Closing an unknown or already closed port
// succeeds.
func (e *T) Close(p *port.T) bool {
	h := p.Handle()

	s, ok := e.ports[h]
	if !ok {
		return true
	}

	delete(e.ports, h)

	err := s.file.Close()
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"handle": h,
			"path":   s.path,
		}).WithError(err).Warn("error closing port")
	}

	e.log.WithFields(logrus.Fields{
		"handle":    h,
		"direction": s.direction,
		"path":      s.path,
	}).Debug("closed port")

	return true
}

// CloseAll closes every open port.
func (e *T) CloseAll() {
	for h, s := range e.ports {
		e.Close(port.New(h, s.direction))
	}
}

// OpenRead opens the file at path for reading and returns its port.
func (e *T) OpenRead(path string) (*port.T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &fault.IO{Op: "open", Path: path, Err: err}
	}

	return e.add(port.Input, f, path), nil
}

// OpenWrite creates or truncates the file at path and returns its port.
func (e *T) OpenWrite(path string) (*port.T, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &fault.IO{Op: "create", Path: path, Err: err}
	}

	return e.add(port.Output, f, path), nil
}

// Reader returns the stream for the input port p.
func (e *T) Reader(p *port.T) (*bufio.Reader, error) {
	s, err := e.stream(p, port.Input)
	if err != nil {
		return nil, err
	}

	return s.reader, nil
}

// Writer returns the stream for the output port p.
func (e *T) Writer(p *port.T) (io.Writer, error) {
	s, err := e.stream(p, port.Output)
	if err != nil {
		return nil, err
	}

	return s.file, nil
}

func (e *T) add(d port.Direction, f *os.File, path string) *port.T {
	e.handle++

	s := &stream{direction: d, file: f, path: path}
	if d == port.Input {
		s.reader = bufio.NewReader(f)
	}

	e.ports[e.handle] = s

	e.log.WithFields(logrus.Fields{
		"handle":    e.handle,
		"direction": d,
		"path":      path,
	}).Debug("opened port")

	return port.New(e.handle, d)
}

func (e *T) stream(p *port.T, d port.Direction) (*stream, error) {
	h := p.Handle()

	s, ok := e.ports[h]
	if !ok {
		return nil, &fault.Port{Message: "port is not open", Handle: h}
	}

	if s.direction != d {
		return nil, &fault.Port{Message: "not an " + d.String() + " port", Handle: h}
	}

	return s, nil
}
