package solver

import "github.com/vedadux/gatesat/pkg/lit"

// current is the package-level Solver that And, Or, Xor and Mux forward
// to. It exists purely for the convenience of callers translating
// expression-heavy scenarios (spec.md §6.1, §9) where threading an
// explicit *Solver through every gate call would read worse than the
// algebraic notation it mirrors; it is never read or written by the
// Solver methods themselves.
var current *Solver

// SetCurrent installs s as the target of the package-level And/Or/Xor/
// Mux helpers. It is not safe to call concurrently with those helpers.
func SetCurrent(s *Solver) {
	current = s
}

// ClearCurrent unsets the package-level target, so stray use of And,
// Or, Xor or Mux after a scenario completes panics loudly instead of
// silently mutating whichever Solver happened to run last.
func ClearCurrent() {
	current = nil
}

// And forwards to current.MakeAnd. It panics if no Solver has been
// installed with SetCurrent.
func And(a, b lit.Literal) lit.Literal {
	return current.MakeAnd(a, b)
}

// Or forwards to current.MakeOr.
func Or(a, b lit.Literal) lit.Literal {
	return current.MakeOr(a, b)
}

// Xor forwards to current.MakeXor.
func Xor(a, b lit.Literal) lit.Literal {
	return current.MakeXor(a, b)
}

// Mux forwards to current.MakeMux.
func Mux(sel, t, e lit.Literal) lit.Literal {
	return current.MakeMux(sel, t, e)
}
