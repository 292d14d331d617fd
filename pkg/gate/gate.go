// Package gate implements the structural-hashing gate-simplification layer:
// fresh-variable allocation and the AND/XOR/MUX simplification rules and
// caches that let a solver façade deduplicate Tseitin encodings.
package gate

import "github.com/vedadux/gatesat/pkg/lit"

// GateBuilder is the capability the Manager needs to synthesize helper
// gates (OR, and the sub-gates a MUX simplification may fall back to) in
// terms of the solver façade that owns clause emission. The original
// implementation used virtual dispatch from the variable manager back
// into the solver subclass for this single case; here it is a plain
// interface handed to the Manager at construction time.
type GateBuilder interface {
	MakeAnd(a, b lit.Literal) lit.Literal
	MakeOr(a, b lit.Literal) lit.Literal
	MakeXor(a, b lit.Literal) lit.Literal
}

type andKey struct{ lo, hi lit.Literal }

func newAndKey(a, b lit.Literal) andKey {
	if a < b {
		return andKey{a, b}
	}
	return andKey{b, a}
}

type xorKey struct{ lo, hi lit.Literal }

func newXorKey(a, b lit.Literal) xorKey {
	if a < b {
		return xorKey{a, b}
	}
	return xorKey{b, a}
}

type muxKey struct{ s, t, e lit.Literal }

// Manager owns fresh-variable allocation and the structural-hash caches
// for AND, XOR and MUX gates. It never emits clauses itself; that is the
// solver façade's job.
type Manager struct {
	numVars int32
	builder GateBuilder

	andCache map[andKey]lit.Literal
	xorCache map[xorKey]lit.Literal
	muxCache map[muxKey]lit.Literal
}

// NewManager returns a Manager that calls back into builder to
// synthesize OR and MUX fallback sub-gates.
func NewManager(builder GateBuilder) *Manager {
	return &Manager{
		builder:  builder,
		andCache: make(map[andKey]lit.Literal),
		xorCache: make(map[xorKey]lit.Literal),
		muxCache: make(map[muxKey]lit.Literal),
	}
}

// NewVar allocates a single fresh variable.
func (m *Manager) NewVar() lit.Literal {
	return m.NewVars(1)
}

// NewVars allocates n consecutive fresh variables and returns the
// positive literal of the first; callers derive the rest by offset.
func (m *Manager) NewVars(n int32) lit.Literal {
	first := m.numVars + 1
	m.numVars += n
	return lit.Literal(first)
}

// NumVars returns the number of variables allocated so far.
func (m *Manager) NumVars() int32 {
	return m.numVars
}

// SimplifyAnd applies the AND simplification rules in order, returning
// lit.Illegal when a fresh encoding is required.
func (m *Manager) SimplifyAnd(a, b lit.Literal) lit.Literal {
	if a == lit.Zero || b == lit.Zero {
		return lit.Zero
	}
	if a == lit.One {
		return b
	}
	if b == lit.One {
		return a
	}
	if a == b {
		return a
	}
	if a == -b {
		return lit.Zero
	}
	return m.LookupAnd(a, b)
}

// LookupAnd returns the cached AND(a, b), or lit.Illegal on a cache miss.
func (m *Manager) LookupAnd(a, b lit.Literal) lit.Literal {
	if c, ok := m.andCache[newAndKey(a, b)]; ok {
		return c
	}
	return lit.Illegal
}

// RegisterAnd records that c is the freshly synthesized AND(a, b).
func (m *Manager) RegisterAnd(a, b, c lit.Literal) {
	m.andCache[newAndKey(a, b)] = c
}

// SimplifyOr, LookupOr and RegisterOr delegate to the AND cache through
// sign inversion (OR(a, b) == ¬AND(¬a, ¬b)), so OR never needs its own
// cache.

func (m *Manager) SimplifyOr(a, b lit.Literal) lit.Literal {
	return -m.SimplifyAnd(-a, -b)
}

func (m *Manager) LookupOr(a, b lit.Literal) lit.Literal {
	return -m.LookupAnd(-a, -b)
}

func (m *Manager) RegisterOr(a, b, c lit.Literal) {
	m.RegisterAnd(-a, -b, -c)
}

// SimplifyXor applies the XOR simplification rules in order.
func (m *Manager) SimplifyXor(a, b lit.Literal) lit.Literal {
	if a == lit.Zero {
		return b
	}
	if b == lit.Zero {
		return a
	}
	if a == lit.One {
		return -b
	}
	if b == lit.One {
		return -a
	}
	if a == b {
		return lit.Zero
	}
	if a == -b {
		return lit.One
	}
	return m.LookupXor(a, b)
}

// LookupXor looks up XOR(a, b) in the sign-factored cache: the key uses
// the absolute operands, and the stored literal is flipped back per the
// combined polarity of a and b.
func (m *Manager) LookupXor(a, b lit.Literal) lit.Literal {
	neg := a.IsNegated() != b.IsNegated()
	c, ok := m.xorCache[newXorKey(a.Abs(), b.Abs())]
	if !ok {
		return lit.Illegal
	}
	if neg {
		return -c
	}
	return c
}

// RegisterXor records c as the freshly synthesized XOR(a, b), along with
// the two rotated identities a^c=b and b^c=a that XOR's self-inverse
// group structure gives for free.
func (m *Manager) RegisterXor(a, b, c lit.Literal) {
	neg := a.IsNegated() != b.IsNegated()
	neg = neg != c.IsNegated()
	aAbs, bAbs, cAbs := a.Abs(), b.Abs(), c.Abs()

	store := func(x, y, res lit.Literal) {
		if neg {
			res = -res
		}
		m.xorCache[newXorKey(x, y)] = res
	}
	store(aAbs, bAbs, cAbs)
	store(aAbs, cAbs, bAbs)
	store(cAbs, bAbs, aAbs)
}

// canonicalizeMux normalizes (s, t, e) to eliminate the two degrees of
// freedom MUX has beyond AND/XOR's single sign flip: the selector is
// made non-negated (swapping the branches and negating s if needed),
// then the "then" branch is made non-negated (negating both branches
// and recording the resulting output polarity).
func canonicalizeMux(s, t, e lit.Literal) (cs, ct, ce lit.Literal, neg bool) {
	if s.IsNegated() {
		s = -s
		t, e = e, t
	}
	neg = t.IsNegated()
	if neg {
		t, e = -t, -e
	}
	return s, t, e, neg
}

// SimplifyMux applies the MUX simplification rules in order, calling
// back into the builder for the sub-gates rules 3-9 reduce to.
func (m *Manager) SimplifyMux(s, t, e lit.Literal) lit.Literal {
	if s == lit.One {
		return t
	}
	if s == lit.Zero {
		return e
	}
	if t == e {
		return t
	}
	if t == lit.One {
		return m.builder.MakeOr(s, e)
	}
	if t == lit.Zero {
		return m.builder.MakeAnd(-s, e)
	}
	if e == lit.One {
		return m.builder.MakeOr(-s, t)
	}
	if e == lit.Zero {
		return m.builder.MakeAnd(s, t)
	}
	if t == -e {
		return m.builder.MakeXor(s, e)
	}
	if t == s {
		return m.builder.MakeOr(s, e)
	}
	if t == -s {
		return m.builder.MakeAnd(-s, e)
	}
	if e == s {
		return m.builder.MakeAnd(s, t)
	}
	if e == -s {
		return m.builder.MakeOr(-s, t)
	}
	return m.LookupMux(s, t, e)
}

// LookupMux looks up MUX(s, t, e) in the canonicalized cache.
func (m *Manager) LookupMux(s, t, e lit.Literal) lit.Literal {
	cs, ct, ce, neg := canonicalizeMux(s, t, e)
	r, ok := m.muxCache[muxKey{cs, ct, ce}]
	if !ok {
		return lit.Illegal
	}
	if neg {
		return -r
	}
	return r
}

// RegisterMux records r as the freshly synthesized MUX(s, t, e).
func (m *Manager) RegisterMux(s, t, e, r lit.Literal) {
	cs, ct, ce, neg := canonicalizeMux(s, t, e)
	if neg {
		r = -r
	}
	m.muxCache[muxKey{cs, ct, ce}] = r
}
