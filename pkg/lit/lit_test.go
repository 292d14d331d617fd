package lit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantNegation(t *testing.T) {
	assert.Equal(t, One, -Zero)
	assert.Equal(t, Zero, -One)
	assert.Equal(t, Illegal, -Illegal)
}

func TestPredicates(t *testing.T) {
	type tc struct {
		Name      string
		L         Literal
		NumVars   int32
		Legal     bool
		Const     bool
		Negated   bool
		Known     bool
	}

	for _, tt := range []tc{
		{Name: "illegal", L: Illegal, NumVars: 5, Legal: false, Const: false, Negated: false, Known: true},
		{Name: "zero", L: Zero, NumVars: 0, Legal: true, Const: true, Negated: true, Known: true},
		{Name: "one", L: One, NumVars: 0, Legal: true, Const: true, Negated: false, Known: true},
		{Name: "fresh positive", L: Literal(3), NumVars: 3, Legal: true, Const: false, Negated: false, Known: true},
		{Name: "fresh negative", L: Literal(-3), NumVars: 3, Legal: true, Const: false, Negated: true, Known: true},
		{Name: "unknown", L: Literal(7), NumVars: 3, Legal: true, Const: false, Negated: false, Known: false},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Legal, tt.L.IsLegal())
			assert.Equal(t, tt.Const, tt.L.IsConst())
			assert.Equal(t, tt.Negated, tt.L.IsNegated())
			assert.Equal(t, tt.Known, tt.L.IsKnown(tt.NumVars))
		})
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, Literal(5), Literal(5).Abs())
	assert.Equal(t, Literal(5), Literal(-5).Abs())
}
