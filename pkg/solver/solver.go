// Package solver is the solver façade: it owns the backend clause
// interface, Tseitin-encodes gates the gate.Manager can't simplify away,
// emits cardinality constraints, and mediates the INPUT/SAT/UNSAT
// lifecycle described in spec.md §4.3-4.4.
package solver

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vedadux/gatesat/pkg/gate"
	"github.com/vedadux/gatesat/pkg/ipasir"
	"github.com/vedadux/gatesat/pkg/lit"
)

// Literal is re-exported for client convenience so callers need not
// import pkg/lit directly for the common case.
type Literal = lit.Literal

// Constant literals, re-exported from pkg/lit.
const (
	Illegal = lit.Illegal
	Zero    = lit.Zero
	One     = lit.One
)

// Solver is the client-facing façade: it owns a gate.Manager and a
// backend ipasir.Backend, and is the single place Tseitin clauses are
// emitted from.
type Solver struct {
	mgr     *gate.Manager
	backend ipasir.Backend
	log     logrus.FieldLogger

	state      State
	numClauses int

	xorFanIn    int
	cardEncoder CardinalityEncoder
}

// New constructs a Solver. By default it is backed by a fresh
// github.com/go-air/gini instance and logs through
// logrus.StandardLogger(); both can be overridden with Option values.
func New(options ...Option) (*Solver, error) {
	s := &Solver{state: StateInput}
	s.mgr = gate.NewManager(s)

	for _, opt := range append(append([]Option{}, options...), defaultOptions...) {
		if err := opt(s); err != nil {
			return nil, errors.Wrap(err, "gatesat: applying solver option")
		}
	}
	return s, nil
}

// Close releases the backend handle the Solver owns. It is safe to call
// more than once.
func (s *Solver) Close() error {
	return s.backend.Close()
}

// NewVar allocates a single fresh variable and returns its
// positive-polarity literal.
func (s *Solver) NewVar() lit.Literal {
	return s.mgr.NewVar()
}

// NewVars allocates n consecutive fresh variables, returning the
// positive literal of the first; callers derive the rest by offset.
func (s *Solver) NewVars(n int32) lit.Literal {
	return s.mgr.NewVars(n)
}

// NumVars returns the number of variables allocated so far.
func (s *Solver) NumVars() int32 {
	return s.mgr.NumVars()
}

// NumClauses returns the number of clauses committed to the backend.
func (s *Solver) NumClauses() int {
	return s.numClauses
}

// State returns the solver's current lifecycle state.
func (s *Solver) State() State {
	return s.state
}

func (s *Solver) checkLiteral(op string, l lit.Literal) {
	assertf(l.IsLegal(), "%s: illegal literal", op)
	assertf(l.IsKnown(s.mgr.NumVars()), "%s: unknown literal %s", op, l)
}

// AddClause commits a clause to the backend. A clause containing the
// literal One is a tautology and is dropped without incrementing
// NumClauses or changing State; Zero literals are simply omitted.
func (s *Solver) AddClause(ls ...lit.Literal) {
	for _, l := range ls {
		s.checkLiteral("AddClause", l)
		if l == lit.One {
			return
		}
	}
	for _, l := range ls {
		if l != lit.Zero {
			s.backend.Add(int32(l))
		}
	}
	s.backend.Add(0)
	s.numClauses++
	s.state = StateInput
}

// Assume registers a single-shot assumption for the next Check. Assuming
// One is a no-op; assuming Zero forces the next Check to UNSAT without
// adding a permanent clause, by assuming a fresh variable both positively
// and negatively.
func (s *Solver) Assume(l lit.Literal) {
	s.checkLiteral("Assume", l)
	if l == lit.One {
		return
	}
	if l == lit.Zero {
		v := s.mgr.NewVar()
		s.backend.Assume(int32(v))
		s.backend.Assume(int32(-v))
		return
	}
	s.backend.Assume(int32(l))
}

// Check runs the backend's search and records the resulting state.
func (s *Solver) Check() State {
	switch s.backend.Solve() {
	case ipasir.StateSat:
		s.state = StateSat
	case ipasir.StateUnsat:
		s.state = StateUnsat
	default:
		s.state = StateInput
	}
	s.log.WithField("state", s.state).Info("gatesat: check")
	return s.state
}

// Value returns the model value of l. It is only defined when State() is
// StateSat. The backend is always queried on l's variable magnitude,
// and l's own polarity is applied here to the result.
func (s *Solver) Value(l lit.Literal) bool {
	assertf(s.state == StateSat, "Value: solver is not in SAT state")
	switch l {
	case lit.Zero:
		return false
	case lit.One:
		return true
	default:
		v := s.backend.Val(int32(l.Abs())) > 0
		if l.IsNegated() {
			return !v
		}
		return v
	}
}
