package solver

import "github.com/vedadux/gatesat/pkg/lit"

// MakeXorSlice returns the XOR of ins. Constants are folded first: ONE
// inputs flip a running parity, ZERO inputs are dropped, and negated
// non-constant inputs are absorbed into the parity and collected in
// absolute form (valid because XOR(-a, b) == -XOR(a, b)). The remaining
// literals are then reduced in rounds of up to s.xorFanIn at a time,
// each round's group Tseitin-encoded with one fresh variable and
// 2^|group| enumerated clauses (a direct generalization of the binary
// 4-clause table); a singleton group passes through unchanged. The
// accumulated parity is applied to whatever literal survives the
// reduction, including the empty-input case.
func (s *Solver) MakeXorSlice(ins []lit.Literal) lit.Literal {
	parity := false
	reduced := make([]lit.Literal, 0, len(ins))

	for _, in := range ins {
		s.checkLiteral("MakeXorSlice", in)
		switch in {
		case lit.Zero:
			continue
		case lit.One:
			parity = !parity
		default:
			if in.IsNegated() {
				parity = !parity
				in = -in
			}
			reduced = append(reduced, in)
		}
	}

	for len(reduced) > 1 {
		next := make([]lit.Literal, 0, (len(reduced)+s.xorFanIn-1)/s.xorFanIn)
		for i := 0; i < len(reduced); i += s.xorFanIn {
			end := i + s.xorFanIn
			if end > len(reduced) {
				end = len(reduced)
			}
			next = append(next, s.encodeXorGroup(reduced[i:end]))
		}
		reduced = next
	}

	result := lit.Zero
	if len(reduced) == 1 {
		result = reduced[0]
	}
	if parity {
		return -result
	}
	return result
}

// encodeXorGroup Tseitin-encodes the XOR of group into a single fresh
// variable by enumerating all 2^|group| input-sign combinations and,
// for each, emitting the one clause it forbids: the combination itself
// paired with the output value that combination's parity rules out.
func (s *Solver) encodeXorGroup(group []lit.Literal) lit.Literal {
	if len(group) == 1 {
		return group[0]
	}

	r := s.mgr.NewVar()
	clause := make([]lit.Literal, len(group)+1)
	combos := 1 << uint(len(group))

	for bits := 0; bits < combos; bits++ {
		parity := 0
		for i, x := range group {
			if bits&(1<<uint(i)) != 0 {
				clause[i] = -x
				parity++
			} else {
				clause[i] = x
			}
		}
		if parity%2 == 0 {
			clause[len(group)] = -r
		} else {
			clause[len(group)] = r
		}
		s.AddClause(clause...)
	}

	return r
}
