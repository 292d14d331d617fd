package solver

import "github.com/vedadux/gatesat/pkg/lit"

// BinaryMerge is an alternative CardinalityEncoder: it sorts ins into
// descending order with a comparator network built from the façade's
// own MakeAnd/MakeOr gates (each comparator is a min/max pair: the
// high output is OR of its two inputs, the low output is their AND),
// then reifies "at most k" as the negation of the (k+1)-th-largest
// output. It costs O(n^2) comparators against SequentialCounter's
// O(n*k) clauses, trading a worse constant for a construction with no
// counter bookkeeping at all — every comparator is just a
// MakeAnd/MakeOr call, reusing whatever structural-hash cache hits
// those already provide.
type BinaryMerge struct{}

// AtMost implements CardinalityEncoder. sorted[k] (0-indexed) is true
// iff popcount(ins) > k, so its negation is exactly "at most k".
func (BinaryMerge) AtMost(s *Solver, ins []lit.Literal, k int) lit.Literal {
	sorted := sortDescending(s, ins)
	return -sorted[k]
}

// sortDescending returns xs sorted so that the literal most likely to be
// true comes first, using a bubble-sort comparator network: each
// comparator replaces a pair (a, b) with (OR(a,b), AND(a,b)), which is
// exactly a 2-input sorting element. Pass i runs the comparator over the
// adjacent pairs of the first len(xs)-i wires, settling one more wire at
// the end; len(xs) passes sort the whole list, the same way a bubble
// sort does over wires instead of values.
func sortDescending(s *Solver, xs []lit.Literal) []lit.Literal {
	ys := make([]lit.Literal, len(xs))
	copy(ys, xs)

	for i := range ys {
		for j := 0; j < len(ys)-i-1; j++ {
			hi := s.MakeOr(ys[j], ys[j+1])
			lo := s.MakeAnd(ys[j], ys[j+1])
			ys[j], ys[j+1] = hi, lo
		}
	}
	return ys
}
