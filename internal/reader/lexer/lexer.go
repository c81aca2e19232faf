// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the lisp language.
//
// The lisp lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk "Lexical
// Scanning in Go". See https://talks.golang.org/2011/lex.slide for more
// information.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/lisp/internal/reader/loc"
	"github.com/michaelmacinnis/lisp/internal/reader/token"
)

// Characters, other than letters and digits, that may appear in an atom.
const symbols = "!#$%&|*+-/:<=>?@^_~"

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	runes int    // Runes scanned on the current line.
	state action // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new lexer for text. Label can be a file name or other
// identifier.
func New(label, text string) *T {
	return &T{
		bytes: text,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state:  skipWhitespace,
		tokens: make(chan *token.T, 2),
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.source)
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

func delimiter(r rune) bool {
	switch r {
	case eof, '\t', '\n', '\f', '\r', ' ', '"', '\'', '(', ')', ';':
		return true
	}

	return false
}

func isAtom(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || strings.ContainsRune(symbols, r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return s != ""
}

func isNumber(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// T states.

func scanAtom(l *T) action {
	for {
		r, w := l.peek()
		if delimiter(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()

	switch {
	case s == ".":
		l.emit(token.Dot, s)
	case isNumber(s):
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			l.emit(token.Error, s)
		} else {
			l.emit(token.Number, s)
		}
	case isAtom(s):
		l.emit(token.Atom, s)
	default:
		l.emit(token.Error, s)
	}

	return skipWhitespace
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Error, l.Text())
			return nil
		case '\\':
			if l.next() == eof {
				l.emit(token.Error, l.Text())
				return nil
			}
		case '"':
			s := l.Text()

			v, err := adapted.ActualBytes(s[1 : len(s)-1])
			if err != nil {
				l.emit(token.Error, s)
			} else {
				l.emit(token.String, v)
			}

			return skipWhitespace
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || r == '\n' {
			l.skip()
			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\f', '\r', ' ':
			l.accept(r, w)
			l.skip()

			continue
		case ';':
			return skipComment
		case '(', ')', '\'':
			l.accept(r, w)
			l.emit(token.Class(r), l.Text())

			return skipWhitespace
		case '"':
			l.accept(r, w)
			return scanString
		}

		return scanAtom
	}
}
