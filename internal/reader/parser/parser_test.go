// Released under an MIT license. See LICENSE.

package parser

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/engine/boot"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/type/dotted"
	"github.com/michaelmacinnis/lisp/internal/type/list"
)

// check parses s, prints the result, and reparses what was printed.
func check(t *testing.T, s, expected string) {
	t.Helper()

	c, err := Parse(s)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", s, err)
	}

	p := literal.String(c)
	if p != expected {
		t.Fatalf("%q: expected %s, got %s", s, expected, p)
	}

	r, err := Parse(p)
	if err != nil {
		t.Fatalf("%q: unexpected error reparsing: %v", p, err)
	}

	if !c.Equal(r) {
		t.Fatalf("parsed (%s) and reparsed (%s) do not match", p, literal.String(r))
	}
}

func failure(t *testing.T, s string, kind Kind, message string) {
	t.Helper()

	_, err := Parse(s)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("%q: expected a parse error, got %v", s, err)
	}

	if e.Kind != kind || e.Error() != message {
		t.Fatalf("%q: expected %q, got %q", s, message, e.Error())
	}
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected string
	}{
		{"atom", "atom"},
		{"42", "42"},
		{"-7", "-7"},
		{"+3", "3"},
		{`"a string"`, `"a string"`},
		{"#t", "#t"},
		{"#f", "#f"},
		{"()", "()"},
		{"(a b c)", "(a b c)"},
		{"(a (b (c)) d)", "(a (b (c)) d)"},
		{"(a . b)", "(a . b)"},
		{"(a b . c)", "(a b . c)"},
		{"(a . (b c))", "(a b c)"},
		{"(a . (b . c))", "(a b . c)"},
		{"(a . ())", "(a)"},
		{"'x", "(quote x)"},
		{"'(1 2)", "(quote (1 2))"},
		{"''x", "(quote (quote x))"},
		{"  ( + 1\n 2 ) ; sum", "(+ 1 2)"},
	} {
		check(t, test.input, test.expected)
	}
}

func TestShapes(t *testing.T) {
	c, err := Parse("(a b . c)")
	if err != nil {
		t.Fatal(err)
	}

	d, ok := c.(*dotted.T)
	if !ok || len(d.Items()) != 2 {
		t.Fatalf("expected a dotted list with two items, got %s", literal.String(c))
	}

	c, err = Parse("()")
	if err != nil {
		t.Fatal(err)
	}

	if l, ok := c.(*list.T); !ok || !l.Empty() {
		t.Fatalf("expected the empty list, got %s", literal.String(c))
	}
}

func TestErrors(t *testing.T) {
	failure(t, "", NoMoreTokens, "No more tokens")
	failure(t, "(a b", NoMoreTokens, "No more tokens")
	failure(t, "'", NoMoreTokens, "No more tokens")
	failure(t, ")", UnexpectedToken, "Unexpected token: )")
	failure(t, "( . x)", UnexpectedToken, "Unexpected token: .")
	failure(t, "(a . b c)", ExpectedToken, "Expected token ), found c")
	failure(t, "a b c", TokensLeft, "Tokens left: b c")
	failure(t, "99999999999999999999", UnexpectedToken, "Unexpected token: 99999999999999999999")
}

func TestParseAll(t *testing.T) {
	cs, err := ParseAll("(define x 1)\n; comment\n(+ x 1) x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if literal.Join(cs) != "(define x 1) (+ x 1) x" {
		t.Fatalf("unexpected forms: %s", literal.Join(cs))
	}

	cs, err = ParseAll("")
	if err != nil || len(cs) != 0 {
		t.Fatalf("expected no forms, got %d (%v)", len(cs), err)
	}

	_, err = ParseAll("(a) (b")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestPrelude(t *testing.T) {
	cs, err := ParseAll(boot.Script())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range cs {
		r, err := Parse(literal.String(c))
		if err != nil {
			t.Fatalf("%s: unexpected error reparsing: %v", literal.String(c), err)
		}

		if !c.Equal(r) {
			t.Fatalf("parsed (%s) and reparsed (%s) do not match", literal.String(c), literal.String(r))
		}
	}
}
