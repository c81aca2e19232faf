// Released under an MIT license. See LICENSE.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	lib := filepath.Join(t.TempDir(), "lib.scm")

	err := os.WriteFile(lib, []byte("(define (square x) (* x x))\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		argv   []string
		status int
	}{
		{[]string{"(+ 2 (- 4 1))"}, 0},
		{[]string{"(car '())"}, 1},
		{[]string{"(+ 1"}, 1},
		{[]string{"-p", "(map (curry + 2) '(1 2 3 4))"}, 0},
		{[]string{"-l", lib, "(square 12)"}, 0},
		{[]string{"-l", filepath.Join(t.TempDir(), "missing.scm"), "1"}, 1},
	}

	for _, test := range tests {
		if status := run(test.argv); status != test.status {
			t.Errorf("%q: expected status %d, got %d", test.argv, test.status, status)
		}
	}
}
