// Released under an MIT license. See LICENSE.

// Package boot provides the lisp prelude.
package boot

import _ "embed" // Blank import required by embed.

//go:embed prelude.scm
var script string //nolint:gochecknoglobals

// Script returns the prelude, the library procedures written in lisp.
func Script() string {
	return script
}
