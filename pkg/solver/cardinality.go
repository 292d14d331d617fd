package solver

import "github.com/vedadux/gatesat/pkg/lit"

// CardinalityEncoder is the strategy MakeAtMost delegates to for turning
// "at most k of ins hold" into a reified literal. It is a capability
// interface in the same spirit as gate.GateBuilder: the encoder only
// ever sees a *Solver to allocate fresh variables and commit clauses
// through, never the backend directly.
type CardinalityEncoder interface {
	// AtMost returns a literal r such that, for any assignment,
	// Value(r) == (popcount(ins) <= k). k is guaranteed to satisfy
	// 0 <= k < len(ins).
	AtMost(s *Solver, ins []lit.Literal, k int) lit.Literal
}

// SequentialCounter is the default CardinalityEncoder. It builds an
// explicit unary counter: row i tracks, after considering ins[0..i],
// how many of the first k counts have been reached. It uses O(n*k)
// auxiliary variables and clauses, matching the construction in the
// original VarManager's make_at_most.
type SequentialCounter struct{}

// AtMost implements CardinalityEncoder. For each i it forms
// v_i = ins[i] AND s[i-1][k-1] — "adding ins[i] would push the count
// past k" — and returns ¬OR(v_i), the literal spec.md's sequential
// counter names directly.
func (SequentialCounter) AtMost(s *Solver, ins []lit.Literal, k int) lit.Literal {
	n := len(ins)

	if k == 0 {
		return -s.MakeOrSlice(ins)
	}

	// s[i][j] means "at least j+1 of ins[0..i] are true", for j in [0,k).
	row := make([]lit.Literal, k)
	for j := range row {
		row[j] = lit.Zero
	}

	overflow := make([]lit.Literal, n)

	for i := 0; i < n; i++ {
		// ins[i] firing when row already reports k counts reached would
		// push the running sum past k.
		overflow[i] = s.MakeAnd(ins[i], row[k-1])

		next := make([]lit.Literal, k)
		// next[0] becomes true once ins[i] or any earlier count does.
		next[0] = s.MakeOr(row[0], ins[i])
		for j := 1; j < k; j++ {
			// next[j] becomes true once either j+1 were already seen, or
			// j were seen before ins[i] and ins[i] itself holds.
			next[j] = s.MakeOr(row[j], s.MakeAnd(row[j-1], ins[i]))
		}
		row = next
	}

	return -s.MakeOrSlice(overflow)
}

// MakeAtMost returns a literal r such that Value(r) == (popcount(ins) <= k)
// under any assignment. It is a pure query: the caller decides whether
// to enforce it (e.g. via AddClause(r)). k < 0 is a programming error;
// k >= len(ins) is vacuously true and returns One without consulting the
// encoder.
func (s *Solver) MakeAtMost(ins []lit.Literal, k int) lit.Literal {
	assertf(k >= 0, "MakeAtMost: k must be non-negative, got %d", k)
	for _, in := range ins {
		s.checkLiteral("MakeAtMost", in)
	}
	if k >= len(ins) {
		return lit.One
	}
	return s.cardEncoder.AtMost(s, ins, k)
}

// MakeAtLeast returns a literal r such that Value(r) == (popcount(ins) >= k),
// via the identity at_least(I,k) = ¬at_most(I,k-1); at_least(I,0) is
// always One.
func (s *Solver) MakeAtLeast(ins []lit.Literal, k int) lit.Literal {
	assertf(k >= 0, "MakeAtLeast: k must be non-negative, got %d", k)
	for _, in := range ins {
		s.checkLiteral("MakeAtLeast", in)
	}
	if k == 0 {
		return lit.One
	}
	return -s.MakeAtMost(ins, k-1)
}
