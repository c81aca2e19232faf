// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lisp language.
package parser

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/token"
	"github.com/michaelmacinnis/lisp/internal/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/type/dotted"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/str"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// Quote is the atom that 'x expands to (quote x) with.
const Quote = "quote"

// Kind is the category of a parse error.
type Kind int

// Parse error kinds.
const (
	NoMoreTokens Kind = iota
	UnexpectedToken
	ExpectedToken
	TokensLeft
)

// Error is returned when the token stream is not a well-formed expression.
type Error struct {
	Kind     Kind
	Expected *token.T   // ExpectedToken.
	Found    *token.T   // UnexpectedToken and ExpectedToken.
	Left     []*token.T // TokensLeft.
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoMoreTokens:
		return "No more tokens"
	case UnexpectedToken:
		return "Unexpected token: " + e.Found.String()
	case ExpectedToken:
		return "Expected token " + e.Expected.String() + ", found " + e.Found.String()
	case TokensLeft:
		s := make([]string, len(e.Left))
		for i, t := range e.Left {
			s[i] = t.String()
		}

		return "Tokens left: " + strings.Join(s, " ")
	}

	return "Unknown parse error"
}

// T holds the state of the parser.
type T struct {
	item *token.T
	next func() *token.T
	read bool
}

// New creates a parser that gets its tokens from next.
// The function next returns nil when there are no more tokens.
func New(next func() *token.T) *T {
	return &T{next: next}
}

// Parse parses text which must hold exactly one expression.
func Parse(text string) (cell.T, error) {
	p := New(lexer.New("parse", text).Token)

	c, err := p.Form()
	if err != nil {
		return nil, err
	}

	if !p.Done() {
		var left []*token.T
		for t := p.token(); t != nil; t = p.token() {
			left = append(left, t)
		}

		return nil, &Error{Kind: TokensLeft, Left: left}
	}

	return c, nil
}

// ParseAll parses every expression in text.
func ParseAll(text string) ([]cell.T, error) {
	p := New(lexer.New("parse", text).Token)

	var cs []cell.T

	for !p.Done() {
		c, err := p.Form()
		if err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}

	return cs, nil
}

// Done returns true if there are no more tokens.
func (p *T) Done() bool {
	return p.peek() == nil
}

// Form parses the next expression.
func (p *T) Form() (cell.T, error) {
	t := p.peek()
	if t == nil {
		return nil, &Error{Kind: NoMoreTokens}
	}

	switch t.Class() {
	case token.Atom:
		p.token()

		switch v := t.Value(); v {
		case boolean.TrueLiteral:
			return boolean.True, nil
		case boolean.FalseLiteral:
			return boolean.False, nil
		default:
			return sym.New(v), nil
		}

	case token.Number:
		p.token()

		n, err := num.Parse(t.Value())
		if err != nil {
			return nil, &Error{Kind: UnexpectedToken, Found: t}
		}

		return n, nil

	case token.String:
		p.token()

		return str.New(t.Value()), nil

	case token.Quote:
		p.token()

		c, err := p.Form()
		if err != nil {
			return nil, err
		}

		return list.New(sym.New(Quote), c), nil

	case token.LeftParen:
		return p.list()
	}

	return nil, &Error{Kind: UnexpectedToken, Found: t}
}

func (p *T) expect(c token.Class, v string) error {
	t := p.token()
	if t == nil {
		return &Error{Kind: NoMoreTokens}
	}

	if !t.Is(c) {
		expected := token.New(c, v, *t.Source())

		return &Error{Kind: ExpectedToken, Expected: expected, Found: t}
	}

	return nil
}

func (p *T) list() (cell.T, error) {
	err := p.expect(token.LeftParen, "(")
	if err != nil {
		return nil, err
	}

	var items []cell.T

	for {
		t := p.peek()

		switch {
		case t == nil:
			return nil, &Error{Kind: NoMoreTokens}

		case t.Is(token.RightParen):
			p.token()

			return list.New(items...), nil

		case t.Is(token.Dot):
			if len(items) == 0 {
				return nil, &Error{Kind: UnexpectedToken, Found: t}
			}

			p.token()

			tail, err := p.Form()
			if err != nil {
				return nil, err
			}

			err = p.expect(token.RightParen, ")")
			if err != nil {
				return nil, err
			}

			return improper(items, tail), nil
		}

		c, err := p.Form()
		if err != nil {
			return nil, err
		}

		items = append(items, c)
	}
}

func (p *T) peek() *token.T {
	if !p.read {
		p.item = p.next()
		p.read = true
	}

	return p.item
}

func (p *T) token() *token.T {
	t := p.peek()
	p.read = false

	return t
}

// improper builds (items . tail). A tail that is itself a list is spliced
// in so that (a . (b c)) reads as (a b c).
func improper(items []cell.T, tail cell.T) cell.T {
	switch t := tail.(type) {
	case *list.T:
		return list.New(append(items, t.Items()...)...)
	case *dotted.T:
		return dotted.New(append(items, t.Items()...), t.Tail())
	}

	return dotted.New(items, tail)
}
