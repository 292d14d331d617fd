package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/vedadux/gatesat/pkg/lit"
)

// MakeAnd returns the literal for a AND b, synthesizing and caching a
// fresh Tseitin encoding only when the gate.Manager can't simplify the
// request away.
func (s *Solver) MakeAnd(a, b lit.Literal) lit.Literal {
	s.checkLiteral("MakeAnd", a)
	s.checkLiteral("MakeAnd", b)

	if c := s.mgr.SimplifyAnd(a, b); c != lit.Illegal {
		return c
	}

	c := s.mgr.NewVar()
	s.AddClause(a, -c)
	s.AddClause(b, -c)
	s.AddClause(-a, -b, c)
	s.mgr.RegisterAnd(a, b, c)

	s.log.WithFields(logrus.Fields{"op": "and", "a": a, "b": b, "result": c}).Debug("gatesat: fresh gate")
	return c
}

// MakeOr returns the literal for a OR b. OR is always realized as
// ¬AND(¬a, ¬b); it never emits clauses of its own.
func (s *Solver) MakeOr(a, b lit.Literal) lit.Literal {
	return -s.MakeAnd(-a, -b)
}

// MakeXor returns the literal for a XOR b.
func (s *Solver) MakeXor(a, b lit.Literal) lit.Literal {
	s.checkLiteral("MakeXor", a)
	s.checkLiteral("MakeXor", b)

	if c := s.mgr.SimplifyXor(a, b); c != lit.Illegal {
		return c
	}

	c := s.mgr.NewVar()
	s.AddClause(-a, -b, -c)
	s.AddClause(a, b, -c)
	s.AddClause(-a, b, c)
	s.AddClause(a, -b, c)
	s.mgr.RegisterXor(a, b, c)

	s.log.WithFields(logrus.Fields{"op": "xor", "a": a, "b": b, "result": c}).Debug("gatesat: fresh gate")
	return c
}

// MakeMux returns the literal for "if sel then t else e".
func (s *Solver) MakeMux(sel, t, e lit.Literal) lit.Literal {
	s.checkLiteral("MakeMux", sel)
	s.checkLiteral("MakeMux", t)
	s.checkLiteral("MakeMux", e)

	if r := s.mgr.SimplifyMux(sel, t, e); r != lit.Illegal {
		return r
	}

	r := s.mgr.NewVar()
	s.AddClause(-sel, -t, r)
	s.AddClause(-sel, t, -r)
	s.AddClause(sel, -e, r)
	s.AddClause(sel, e, -r)
	s.AddClause(-t, -e, r)
	s.AddClause(t, e, -r)
	s.mgr.RegisterMux(sel, t, e, r)

	s.log.WithFields(logrus.Fields{"op": "mux", "sel": sel, "t": t, "e": e, "result": r}).Debug("gatesat: fresh gate")
	return r
}

// MakeAndSlice returns the conjunction of ins. The empty conjunction is
// One; a single input is returned unchanged; two inputs delegate to
// MakeAnd. Longer inputs fold any Zero immediately, else allocate one
// fresh variable constrained by the big-AND clause pattern.
func (s *Solver) MakeAndSlice(ins []lit.Literal) lit.Literal {
	switch len(ins) {
	case 0:
		return lit.One
	case 1:
		s.checkLiteral("MakeAndSlice", ins[0])
		return ins[0]
	case 2:
		return s.MakeAnd(ins[0], ins[1])
	}

	for _, in := range ins {
		s.checkLiteral("MakeAndSlice", in)
		if in == lit.Zero {
			return lit.Zero
		}
	}

	r := s.mgr.NewVar()
	negated := make([]lit.Literal, 0, len(ins)+1)
	for _, in := range ins {
		s.AddClause(in, -r)
		negated = append(negated, -in)
	}
	negated = append(negated, r)
	s.AddClause(negated...)
	return r
}

// MakeOrSlice returns the disjunction of ins via De Morgan over
// MakeAndSlice.
func (s *Solver) MakeOrSlice(ins []lit.Literal) lit.Literal {
	negated := make([]lit.Literal, len(ins))
	for i, in := range ins {
		negated[i] = -in
	}
	return -s.MakeAndSlice(negated)
}

