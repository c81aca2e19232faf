// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
	"github.com/michaelmacinnis/lisp/internal/type/fault"
)

type result struct {
	input string
	value string
	err   string
}

func check(t *testing.T, e *T, tests []result) {
	t.Helper()

	for _, test := range tests {
		v, err := e.Run(test.input)

		switch {
		case test.err != "":
			if err == nil {
				t.Errorf("%s: expected error %q, got %s", test.input, test.err, literal.String(v))
			} else if err.Error() != test.err {
				t.Errorf("%s: expected error %q, got %q", test.input, test.err, err)
			}
		case err != nil:
			t.Errorf("%s: unexpected error: %v", test.input, err)
		case literal.String(v) != test.value:
			t.Errorf("%s: expected %s, got %s", test.input, test.value, literal.String(v))
		}
	}
}

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})

	return l
}

func session(t *testing.T, options ...Option) *T {
	t.Helper()

	e, err := New(append([]Option{WithLogger(quiet())}, options...)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Cleanup(e.Close)

	return e
}

func TestEvaluate(t *testing.T) {
	check(t, session(t), []result{
		{input: "'atom", value: "atom"},
		{input: "2", value: "2"},
		{input: `"a string"`, value: `"a string"`},
		{input: "(+ 2 2)", value: "4"},
		{input: "(+ 2 (- 4 1))", value: "5"},
		{input: "(- (+ 4 6 3) 3 5 2)", value: "3"},
		{input: "(< 2 3)", value: "#t"},
		{input: "(> 2 3)", value: "#f"},
		{input: "(>= 3 3)", value: "#t"},
		{input: `(string=? "test" "test")`, value: "#t"},
		{input: `(string<? "abc" "bba")`, value: "#t"},
		{input: `(if (> 2 3) "no" "yes")`, value: `"yes"`},
		{input: `(if (= 3 3) (+ 2 3 (- 5 1)) "unequal")`, value: "9"},
		{input: "(cdr '(a simple test))", value: "(simple test)"},
		{input: "(car (cdr '(a simple test)))", value: "simple"},
		{input: "(car '((this is) a test))", value: "(this is)"},
		{input: "(cons '(this is) 'test)", value: "((this is) . test)"},
		{input: "(cons '(this is) '())", value: "((this is))"},
		{input: "(eqv? 1 3)", value: "#f"},
		{input: "(eqv? 3 3)", value: "#t"},
		{input: "(eqv? 'atom 'atom)", value: "#t"},
		{input: "(define x 3)", value: "3"},
		{input: "(+ x 2)", value: "5"},
		{input: "(+ y 2)", err: "Getting an unbound variable: y"},
		{input: "(define y 5)", value: "5"},
		{input: "(+ x (- y 2))", value: "6"},
		{input: `(define str "A string")`, value: `"A string"`},
		{input: `(< str "The string")`, err: `Invalid type: expected number, found "A string"`},
		{input: `(string<? str "The string")`, value: "#t"},
		{input: "(define (f x y) (+ x y))", value: "(lambda (x y) ...)"},
		{input: "(f 1 2)", value: "3"},
		{input: "(f 1 2 3)", err: "Expected 2 args; found values 1 2 3"},
		{input: "(f 1)", err: "Expected 2 args; found values 1"},
		{
			input: "(define (factorial x) (if (= x 1) 1 (* x (factorial (- x 1)))))",
			value: "(lambda (x) ...)",
		},
		{input: "(factorial 10)", value: "3628800"},
		{
			input: "(define (counter inc) (lambda (x) (set! inc (+ x inc)) inc))",
			value: "(lambda (inc) ...)",
		},
		{input: "(define my-count (counter 5))", value: "(lambda (x) ...)"},
		{input: "(my-count 3)", value: "8"},
		{input: "(my-count 6)", value: "14"},
		{input: "(my-count 5)", value: "19"},
	})
}

func TestSpecialForms(t *testing.T) {
	check(t, session(t), []result{
		{input: "(quote (1 . 2))", value: "(1 . 2)"},
		{input: "(if #f 1 2)", value: "2"},
		{input: "(if '() 1 2)", value: "1"},
		{input: "(if 0 1 2)", value: "1"},
		{input: "(set! z 1)", err: "Setting an unbound variable: z"},
		{input: "(define z 1)", value: "1"},
		{input: "(set! z 2)", value: "2"},
		{input: "z", value: "2"},
		{input: "(define (g . rest) rest)", value: "(lambda rest ...)"},
		{input: "(g)", value: "()"},
		{input: "(g 1 2 3)", value: "(1 2 3)"},
		{input: "(define (h a . rest) rest)", value: "(lambda (a . rest) ...)"},
		{input: "(h 1)", value: "()"},
		{input: "(h 1 2 3)", value: "(2 3)"},
		{input: "(h)", err: "Expected 1 args; found values "},
		{input: "((lambda (a b) (* a b)) 6 7)", value: "42"},
		{input: "((lambda args args) 1 2)", value: "(1 2)"},
		{input: "((lambda (a . b) b) 1 2)", value: "(2)"},
		{input: "(define (empty))", value: "(lambda () ...)"},
		{input: "(empty)", err: "Function has empty body"},
		{input: "(define (1 x) x)", err: "Function name must be an atom: (define (1 x) x)"},
		{input: "(lambda (x x) x)", err: "Duplicate parameter: (lambda (x x) x)"},
		{input: "(lambda (x 1) x)", err: "Parameter must be an atom: (lambda (x 1) x)"},
		{input: "()", err: "Unrecognized special form: ()"},
		{input: "(1 2)", err: "Unrecognized function: 1"},
		{input: "(car '())", err: "Invalid type: expected pair, found ()"},
		{input: "(cdr '())", err: "Invalid type: expected pair, found ()"},
		{input: "(cdr '(1 . 2))", value: "( . 2)"},
		{input: "(cdr (cons 1 2))", value: "( . 2)"},
		{input: "(cdr (cdr '(1 . 2)))", err: "Invalid type: expected pair, found ( . 2)"},
		{input: "(/ 1 0)", err: "Division by zero: 1 0"},
	})
}

func TestScope(t *testing.T) {
	e := session(t)

	check(t, e, []result{
		{input: "(define n 1)", value: "1"},
		{input: "(define (shadow n) n)", value: "(lambda (n) ...)"},
		{input: "(shadow 2)", value: "2"},
		{input: "n", value: "1"},
		{input: "(define (bump) (set! n (+ n 1)))", value: "(lambda () ...)"},
		{input: "(bump)", value: "2"},
		{input: "n", value: "2"},
		{input: "(define (local) (define n 10) n)", value: "(lambda () ...)"},
		{input: "(local)", value: "10"},
		{input: "n", value: "2"},
		{input: "(define (make) (define hidden 1) hidden)", value: "(lambda () ...)"},
		{input: "(make)", value: "1"},
		{input: "hidden", err: "Getting an unbound variable: hidden"},
		{input: "(define (broken n) (car n))", value: "(lambda (n) ...)"},
		{input: "(broken '())", err: "Invalid type: expected pair, found ()"},
		{input: "n", value: "2"},
	})

	if d := e.Env().Snapshot().Depth(); d != 0 {
		t.Fatalf("expected the global frame to be current, depth %d", d)
	}
}

func TestPrelude(t *testing.T) {
	check(t, session(t, WithPrelude()), []result{
		{input: "(map (curry + 2) '(1 2 3 4))", value: "(3 4 5 6)"},
		{input: "(filter even? '(1 2 3 4))", value: "(2 4)"},
		{input: "(not #f)", value: "#t"},
		{input: "(null? '())", value: "#t"},
		{input: "(null? '(1))", value: "#f"},
		{input: "(list 1 2 3)", value: "(1 2 3)"},
		{input: "(length '(1 2 3))", value: "3"},
		{input: "(reverse '(1 2 3))", value: "(3 2 1)"},
		{input: "(sum 1 2 3 4)", value: "10"},
		{input: "(product 1 2 3 4)", value: "24"},
		{input: "(max 3 9 2)", value: "9"},
		{input: "(min 3 9 2)", value: "2"},
		{input: "(and #t #t #f)", value: "#f"},
		{input: "(or #f #f #t)", value: "#t"},
		{input: "(zero? 0)", value: "#t"},
		{input: "(positive? 3)", value: "#t"},
		{input: "(negative? 3)", value: "#f"},
		{input: "(odd? -3)", value: "#t"},
		{input: "(foldr cons '() '(1 2))", value: "(1 2)"},
		{input: "(unfold (curry + 1) 1 (curry <= 3))", value: "(1 2 3)"},
		{input: "((compose (curry * 2) id) 5)", value: "10"},
		{input: "(memv 2 '(1 2 3))", value: "2"},
		{input: "(memq 4 '(1 2 3))", value: "#f"},
		{input: "(assv 2 '((1 one) (2 two)))", value: "(2 two)"},
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "twice.scm")

	err := os.WriteFile(path, []byte("; doubling\n(define (twice x)\n  (* 2 x))\n(twice 4)\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	empty := filepath.Join(dir, "empty.scm")

	err = os.WriteFile(empty, nil, 0o600)
	if err != nil {
		t.Fatal(err)
	}

	e := session(t)

	v, err := e.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if literal.String(v) != "8" {
		t.Fatalf("expected 8, got %s", literal.String(v))
	}

	check(t, e, []result{
		{input: "(twice 5)", value: "10"},
		{input: `(load "` + path + `")`, value: "8"},
		{input: `(load "` + empty + `")`, err: "Function has empty body"},
	})

	_, err = e.Load(filepath.Join(dir, "missing.scm"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a missing file error, got %v", err)
	}
}

func TestPorts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	var out bytes.Buffer

	e := session(t, WithInput(strings.NewReader("\n(a b c)\n")), WithOutput(&out))

	check(t, e, []result{
		{input: `(define p (open-output-file "` + path + `"))`, value: "<IO port>"},
		{input: "(write '(1 \"two\" #t) p)", value: "#t"},
		{input: "(close-output-port p)", value: "#t"},
		{input: "(close-output-port p)", value: "#t"},
		{input: "(close-input-port 1)", value: "#f"},
		{input: `(read-contents "` + path + `")`, value: `"(1 "two" #t)` + "\n" + `"`},
		{input: `(read-all "` + path + `")`, value: `((1 "two" #t))`},
		{input: `(define q (open-input-file "` + path + `"))`, value: "<IO port>"},
		{input: "(read q)", value: `(1 "two" #t)`},
		{input: "(write 1 q)", err: "Port error: not an output port: 2"},
		{input: "(close-input-port q)", value: "#t"},
		{input: "(read q)", err: "Port error: port is not open: 2"},
		{input: "(read)", value: "(a b c)"},
		{input: "(write 'hello)", value: "#t"},
		{input: "(apply + '(1 2 3))", value: "6"},
		{input: "(apply + 1 2)", value: "3"},
	})

	if out.String() != "hello\n" {
		t.Fatalf("expected hello on stdout, got %q", out.String())
	}
}

func TestRunParseError(t *testing.T) {
	e := session(t)

	_, err := e.Run("(+ 1")

	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected a parse error, got %v", err)
	}

	var wrapped *fault.Parse
	if errors.As(err, &wrapped) {
		t.Fatal("top-level parse errors should not be wrapped")
	}
}
