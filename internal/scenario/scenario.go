// Package scenario hosts the named test scenarios the command-line
// harness (cmd/gatesat) drives against a real solver.Solver. Each
// scenario is a self-contained function so it can be invoked by name or
// run as a batch; scenarios report failure by panicking with a
// violation value, which the harness recovers and turns into the
// release-build "assertion failure" exit code.
package scenario

import (
	"fmt"

	"github.com/vedadux/gatesat/pkg/solver"
)

// Violation is the panic value a failed check carries. It is distinct
// from a Go runtime panic so the harness can tell a scenario's own
// invariant check apart from an unexpected crash, even though both are
// reported the same way to the caller.
type Violation struct {
	Scenario string
	Detail   string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Scenario, v.Detail)
}

// Scenario is one named, runnable check.
type Scenario struct {
	Name string
	Run  func(s *solver.Solver) error
}

// check panics with a Violation when cond is false. Scenarios use it the
// way the core's own debug assertions work, except a check here always
// fires, release build or not: these are outcomes the harness must be
// able to observe regardless of how the library under test was built.
func check(name string, cond bool, format string, args ...interface{}) {
	if !cond {
		panic(Violation{Scenario: name, Detail: fmt.Sprintf(format, args...)})
	}
}

// All lists every named scenario, in spec-declaration order.
var All = []Scenario{
	{Name: "and-basic", Run: andBasic},
	{Name: "and-self-conflict", Run: andSelfConflict},
	{Name: "xor-commutative", Run: xorCommutative},
	{Name: "mux-identities", Run: muxIdentities},
	{Name: "at-most-one", Run: atMostOne},
	{Name: "empty-clause-unsat", Run: emptyClauseUnsat},
}

// Find returns the scenario named name, or false if there is none.
func Find(name string) (Scenario, bool) {
	for _, sc := range All {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

// Execute runs sc.Run against a fresh solver, converting any panic
// raised by check into an error so callers never need a recover of
// their own.
func (sc Scenario) Execute() (err error) {
	s, newErr := solver.New()
	if newErr != nil {
		return newErr
	}
	defer func() { _ = s.Close() }()

	defer func() {
		if r := recover(); r != nil {
			if v, ok := r.(Violation); ok {
				err = v
				return
			}
			panic(r)
		}
	}()

	return sc.Run(s)
}

// and-basic: a, b fresh. c = AND(a,b). Assume a=T, b=F. check() = SAT,
// value(c) = F.
func andBasic(s *solver.Solver) error {
	a, b := s.NewVar(), s.NewVar()
	c := s.MakeAnd(a, b)

	s.Assume(a)
	s.Assume(-b)
	check("and-basic", s.Check() == solver.StateSat, "expected SAT")
	check("and-basic", !s.Value(c), "expected AND(T,F) = F")
	return nil
}

// and-self-conflict: AND(a, -a) = ZERO without allocating a new
// variable, i.e. pure simplification.
func andSelfConflict(s *solver.Solver) error {
	a := s.NewVar()
	before := s.NumVars()
	r := s.MakeAnd(a, -a)
	check("and-self-conflict", r == solver.Zero, "expected AND(a,-a) = ZERO, got %s", r)
	check("and-self-conflict", s.NumVars() == before, "simplification must not allocate a variable")
	return nil
}

// xor-commutative: a, b fresh. x1 = XOR(a,b); x2 = XOR(b,a);
// x3 = XOR(-a,-b) — all three equal the same literal.
func xorCommutative(s *solver.Solver) error {
	a, b := s.NewVar(), s.NewVar()
	x1 := s.MakeXor(a, b)
	x2 := s.MakeXor(b, a)
	x3 := s.MakeXor(-a, -b)

	check("xor-commutative", x1 == x2, "XOR(a,b) != XOR(b,a)")
	check("xor-commutative", x1 == x3, "XOR(a,b) != XOR(-a,-b)")
	return nil
}

// mux-identities: mux(s, ONE, e) = OR(s, e); mux(s, t, ZERO) = AND(s, t);
// mux(s, t, -t) = -XOR(s, t).
func muxIdentities(s *solver.Solver) error {
	sel, t, e := s.NewVar(), s.NewVar(), s.NewVar()

	check("mux-identities", s.MakeMux(sel, solver.One, e) == s.MakeOr(sel, e), "mux(s,ONE,e) != OR(s,e)")
	check("mux-identities", s.MakeMux(sel, t, solver.Zero) == s.MakeAnd(sel, t), "mux(s,t,ZERO) != AND(s,t)")
	check("mux-identities", s.MakeMux(sel, t, -t) == -s.MakeXor(sel, t), "mux(s,t,-t) != -XOR(s,t)")
	return nil
}

// at-most-one: three inputs a,b,c; r = at_most([a,b,c], 1). Under every
// assignment, value(r) must equal popcount(a,b,c) <= 1.
func atMostOne(s *solver.Solver) error {
	ins := []solver.Literal{s.NewVar(), s.NewVar(), s.NewVar()}
	r := s.MakeAtMost(ins, 1)

	for bits := 0; bits < 8; bits++ {
		popcount := 0
		for i, v := range ins {
			if bits&(1<<uint(i)) != 0 {
				s.Assume(v)
				popcount++
			} else {
				s.Assume(-v)
			}
		}
		check("at-most-one", s.Check() == solver.StateSat, "bits=%03b: expected SAT", bits)
		want := popcount <= 1
		check("at-most-one", s.Value(r) == want, "bits=%03b: want value(r)=%v, got %v", bits, want, s.Value(r))
	}
	return nil
}

// empty-clause-unsat: adding the empty clause forces check() = UNSAT.
func emptyClauseUnsat(s *solver.Solver) error {
	s.AddClause()
	check("empty-clause-unsat", s.Check() == solver.StateUnsat, "expected UNSAT after the empty clause")
	return nil
}
