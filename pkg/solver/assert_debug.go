//go:build gatesat_debug

package solver

import "fmt"

// In a gatesat_debug build, programming-error contract violations abort
// the operation immediately, mirroring the original's debug-build
// Assert(cond, message) macro. Release builds (the default) elide these
// checks entirely; see assert_release.go.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

const assertionsEnabled = true
