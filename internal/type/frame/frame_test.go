// Released under an MIT license. See LICENSE.

package frame

import (
	"testing"

	"github.com/michaelmacinnis/lisp/internal/type/num"
)

func TestResolve(t *testing.T) {
	global := New(nil)
	global.Define("x", num.New(1))

	inner := New(global)
	inner.Define("y", num.New(2))

	if inner.Depth() != 1 || global.Depth() != 0 {
		t.Fatalf("unexpected depths %d and %d", global.Depth(), inner.Depth())
	}

	r := inner.Resolve("x")
	if r == nil || !r.Get().Equal(num.New(1)) {
		t.Fatal("x should resolve through the enclosing frame")
	}

	r.Set(num.New(3))

	if !global.Resolve("x").Get().Equal(num.New(3)) {
		t.Fatal("assignment through an inner frame should be shared")
	}

	if global.Resolve("y") != nil {
		t.Fatal("y should not be visible from the global frame")
	}

	inner.Define("x", num.New(4))

	if !global.Resolve("x").Get().Equal(num.New(3)) {
		t.Fatal("a definition should shadow, not replace, the outer binding")
	}
}

func TestRedefine(t *testing.T) {
	f := New(nil)
	f.Define("x", num.New(1))

	old := f.Resolve("x")

	f.Define("x", num.New(2))

	if !old.Get().Equal(num.New(1)) {
		t.Fatal("redefinition should use a fresh slot")
	}

	if !f.Resolve("x").Get().Equal(num.New(2)) {
		t.Fatal("redefinition should be visible")
	}
}
