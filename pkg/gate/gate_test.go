package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vedadux/gatesat/pkg/lit"
)

// stubBuilder records calls and returns a fresh positive literal for
// every request, which is all the MUX-simplification callback tests
// need: they only check which sub-gate was requested, not its encoding.
type stubBuilder struct {
	mgr    *Manager
	ands   [][2]lit.Literal
	ors    [][2]lit.Literal
	xors   [][2]lit.Literal
}

func (b *stubBuilder) MakeAnd(a, c lit.Literal) lit.Literal {
	b.ands = append(b.ands, [2]lit.Literal{a, c})
	return b.mgr.NewVar()
}

func (b *stubBuilder) MakeOr(a, c lit.Literal) lit.Literal {
	b.ors = append(b.ors, [2]lit.Literal{a, c})
	return b.mgr.NewVar()
}

func (b *stubBuilder) MakeXor(a, c lit.Literal) lit.Literal {
	b.xors = append(b.xors, [2]lit.Literal{a, c})
	return b.mgr.NewVar()
}

func newTestManager() (*Manager, *stubBuilder) {
	b := &stubBuilder{}
	m := NewManager(b)
	b.mgr = m
	return m, b
}

func TestAndSimplification(t *testing.T) {
	m, _ := newTestManager()
	a := m.NewVar()
	b := m.NewVar()

	assert.Equal(t, lit.Zero, m.SimplifyAnd(lit.Zero, a))
	assert.Equal(t, lit.Zero, m.SimplifyAnd(a, lit.Zero))
	assert.Equal(t, a, m.SimplifyAnd(lit.One, a))
	assert.Equal(t, a, m.SimplifyAnd(a, lit.One))
	assert.Equal(t, a, m.SimplifyAnd(a, a))
	assert.Equal(t, lit.Zero, m.SimplifyAnd(a, -a))
	assert.Equal(t, lit.Illegal, m.SimplifyAnd(a, b))
}

func TestAndCacheCommutative(t *testing.T) {
	m, _ := newTestManager()
	a := m.NewVar()
	b := m.NewVar()
	c := m.NewVar()

	m.RegisterAnd(a, b, c)
	assert.Equal(t, c, m.LookupAnd(a, b))
	assert.Equal(t, c, m.LookupAnd(b, a))
	assert.Equal(t, lit.Illegal, m.LookupAnd(a, -b))
}

func TestOrDelegatesThroughAndCache(t *testing.T) {
	m, _ := newTestManager()
	a := m.NewVar()
	b := m.NewVar()
	c := m.NewVar()

	// AND(-a,-b) = c  =>  OR(a,b) should resolve to -c
	m.RegisterAnd(-a, -b, c)
	assert.Equal(t, -c, m.LookupOr(a, b))
	assert.Equal(t, -c, m.LookupOr(b, a))

	assert.Equal(t, lit.One, m.SimplifyOr(lit.One, m.NewVar()))
	assert.Equal(t, a, m.SimplifyOr(lit.Zero, a))
}

func TestXorSimplification(t *testing.T) {
	m, _ := newTestManager()
	a := m.NewVar()
	b := m.NewVar()

	assert.Equal(t, a, m.SimplifyXor(lit.Zero, a))
	assert.Equal(t, a, m.SimplifyXor(a, lit.Zero))
	assert.Equal(t, -a, m.SimplifyXor(lit.One, a))
	assert.Equal(t, -a, m.SimplifyXor(a, lit.One))
	assert.Equal(t, lit.Zero, m.SimplifyXor(a, a))
	assert.Equal(t, lit.One, m.SimplifyXor(a, -a))
	assert.Equal(t, lit.Illegal, m.SimplifyXor(a, b))
}

func TestXorCacheSignFactoring(t *testing.T) {
	m, _ := newTestManager()
	a := m.NewVar()
	b := m.NewVar()
	c := m.NewVar()

	m.RegisterXor(a, b, c)

	assert.Equal(t, c, m.LookupXor(a, b))
	assert.Equal(t, c, m.LookupXor(b, a))
	assert.Equal(t, c, m.LookupXor(-a, -b))
	assert.Equal(t, -c, m.LookupXor(-a, b))
	assert.Equal(t, -c, m.LookupXor(a, -b))
}

func TestXorRotatedRegistration(t *testing.T) {
	m, _ := newTestManager()
	a := m.NewVar()
	b := m.NewVar()
	c := m.NewVar()

	m.RegisterXor(a, b, c)

	// a ^ c == b, b ^ c == a, all derived without a fresh variable.
	assert.Equal(t, b, m.LookupXor(a, c))
	assert.Equal(t, a, m.LookupXor(b, c))
}

func TestMuxSimplification(t *testing.T) {
	m, b := newTestManager()
	s := m.NewVar()
	tt := m.NewVar()
	e := m.NewVar()

	assert.Equal(t, tt, m.SimplifyMux(lit.One, tt, e))
	assert.Equal(t, e, m.SimplifyMux(lit.Zero, tt, e))
	assert.Equal(t, tt, m.SimplifyMux(s, tt, tt))

	_ = m.SimplifyMux(s, lit.One, e)
	assert.Len(t, b.ors, 1)
	assert.Equal(t, [2]lit.Literal{s, e}, b.ors[0])

	_ = m.SimplifyMux(s, lit.Zero, e)
	assert.Len(t, b.ands, 1)
	assert.Equal(t, [2]lit.Literal{-s, e}, b.ands[0])

	_ = m.SimplifyMux(s, tt, -tt)
	assert.Len(t, b.xors, 1)
	assert.Equal(t, [2]lit.Literal{s, -tt}, b.xors[0])

	assert.Equal(t, lit.Illegal, m.SimplifyMux(s, tt, e))
}

func TestMuxCacheCanonicalization(t *testing.T) {
	m, _ := newTestManager()
	s := m.NewVar()
	tt := m.NewVar()
	e := m.NewVar()
	r := m.NewVar()

	m.RegisterMux(s, tt, e, r)

	assert.Equal(t, r, m.LookupMux(s, tt, e))
	// mux(-s, t, e) = mux(s, e, t)
	assert.Equal(t, r, m.LookupMux(-s, e, tt))
	// mux(s, -t, -e) = -mux(s, t, e)
	assert.Equal(t, -r, m.LookupMux(s, -tt, -e))
}

func TestFreshVariablesAreMonotone(t *testing.T) {
	m, _ := newTestManager()
	a := m.NewVar()
	b := m.NewVars(3)
	assert.Equal(t, lit.Literal(1), a)
	assert.Equal(t, lit.Literal(2), b)
	assert.Equal(t, int32(4), m.NumVars())
}
