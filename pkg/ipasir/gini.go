package ipasir

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniBackend adapts *gini.Gini's incremental API to the Backend
// contract: Add(z.Lit), Assume(...z.Lit), Solve() (1/-1/0), Value(z.Lit)
// bool, translated through z.Dimacs2Lit/z.Lit.Dimacs.
type giniBackend struct {
	g *gini.Gini
}

// NewGini returns a Backend backed by a fresh github.com/go-air/gini
// solver instance.
func NewGini() Backend {
	return &giniBackend{g: gini.New()}
}

func (b *giniBackend) Add(l int32) {
	b.g.Add(z.Dimacs2Lit(int(l)))
}

func (b *giniBackend) Assume(l int32) {
	b.g.Assume(z.Dimacs2Lit(int(l)))
}

func (b *giniBackend) Solve() int {
	switch b.g.Solve() {
	case 1:
		return StateSat
	case -1:
		return StateUnsat
	default:
		return StateInput
	}
}

// Val reports the model value of the variable |v|, ignoring any sign v
// itself carries: it always queries gini for the positive-polarity
// literal of that variable, so the result reflects the variable's
// truth value rather than the truth of whatever literal happened to be
// passed in.
func (b *giniBackend) Val(v int32) int32 {
	if v < 0 {
		v = -v
	}
	if b.g.Value(z.Dimacs2Lit(int(v))) {
		return v
	}
	return -v
}

// Close is a no-op: gini holds no resources beyond what the Go garbage
// collector already reclaims. It exists so Backend implementations that
// do wrap foreign handles have somewhere to release them exactly once,
// matching the façade's single-release ownership of its backend.
func (b *giniBackend) Close() error {
	return nil
}
