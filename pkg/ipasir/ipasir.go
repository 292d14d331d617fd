// Package ipasir defines the incremental clause interface the solver
// façade consumes from a backing CNF engine, and a concrete adapter for
// github.com/go-air/gini, the same incremental SAT library the teacher
// uses for its own constraint solving.
package ipasir

// Outcome codes returned by Backend.Solve, following the IPASIR
// convention the spec is built around.
const (
	StateSat   = 10
	StateUnsat = 20
	StateInput = 30
)

// Backend is the incremental-SAT clause interface the façade is built
// against. A literal value of 0 terminates the current clause. All
// other error reporting from the backend happens through Solve's return
// code; there is no secondary error channel.
type Backend interface {
	// Add appends a literal to the current clause; 0 commits it.
	Add(l int32)
	// Assume registers a single-shot assumption consumed by the next Solve.
	Assume(l int32)
	// Solve runs the search and returns StateSat, StateUnsat or StateInput.
	Solve() int
	// Val reports the model value of variable v after a SAT result:
	// positive if true, negative if false.
	Val(v int32) int32
	// Close releases any resources the backend owns. It is safe to call
	// more than once.
	Close() error
}
