package ipasir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGiniBackendSolvesUnitClause(t *testing.T) {
	b := NewGini()
	defer b.Close()

	// A single variable, forced true: (1)
	b.Add(1)
	b.Add(0)

	assert.Equal(t, StateSat, b.Solve())
	assert.Equal(t, int32(1), b.Val(1))
}

func TestGiniBackendDetectsUnsat(t *testing.T) {
	b := NewGini()
	defer b.Close()

	// (1) and (-1) together are unsatisfiable.
	b.Add(1)
	b.Add(0)
	b.Add(-1)
	b.Add(0)

	assert.Equal(t, StateUnsat, b.Solve())
}

func TestGiniBackendAssumption(t *testing.T) {
	b := NewGini()
	defer b.Close()

	// (1 or 2)
	b.Add(1)
	b.Add(2)
	b.Add(0)

	b.Assume(-1)
	assert.Equal(t, StateSat, b.Solve())
	assert.Equal(t, int32(2), b.Val(2))
}
