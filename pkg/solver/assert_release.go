//go:build !gatesat_debug

package solver

// Release builds elide contract-violation checks for performance; the
// effect of violating a precondition is undefined, but the package
// remains memory-safe regardless (every lookup goes through Go maps and
// slices, never raw pointer arithmetic).
func assertf(cond bool, format string, args ...interface{}) {}

const assertionsEnabled = false
