package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalsteadDegenerateIsZero(t *testing.T) {
	lib := DefaultLibrary()

	tests := []struct {
		name string
		text string
	}{
		{"empty text", ""},
		{"operands without operators", "alpha beta gamma"},
		{"whitespace only", "   \n\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := EstimateHalstead(lib, tt.text)
			assert.Zero(t, m.Volume)
			assert.Zero(t, m.Difficulty)
			assert.Zero(t, m.Effort)
		})
	}
}

func TestHalsteadCounts(t *testing.T) {
	lib := DefaultLibrary()

	// One assignment: operator runs {"="}, keyword operators {}, operands
	// {"x", "1"}.
	m := EstimateHalstead(lib, "x = 1")
	assert.Equal(t, 1, m.DistinctOperators)
	assert.Equal(t, 1, m.TotalOperators)
	assert.Equal(t, 2, m.DistinctOperands)
	assert.Equal(t, 2, m.TotalOperands)

	// V = (N1+N2) * log2(n1+n2) = 3 * log2(3)
	assert.InDelta(t, 3*math.Log2(3), m.Volume, 1e-9)
	// D = (n1*N2) / (2*n2) = (1*2) / (2*2)
	assert.InDelta(t, 0.5, m.Difficulty, 1e-9)
	assert.InDelta(t, 0.5*m.Volume, m.Effort, 1e-9)
}

func TestHalsteadKeywordsAndStrings(t *testing.T) {
	lib := DefaultLibrary()

	m := EstimateHalstead(lib, `if (x) return "done"`)
	// Keyword operators: if, return. No symbol runs besides none... the
	// parentheses are not operator characters.
	assert.GreaterOrEqual(t, m.TotalOperators, 2)
	// The quoted string counts as a single operand.
	assert.GreaterOrEqual(t, m.TotalOperands, 2)
	assert.Positive(t, m.Volume)
	assert.Positive(t, m.Effort)
}

func TestHalsteadRepeatedTokens(t *testing.T) {
	lib := DefaultLibrary()

	// Repetition grows totals but not distincts.
	small := EstimateHalstead(lib, "x = 1")
	big := EstimateHalstead(lib, "x = 1\nx = 1\nx = 1")
	assert.Equal(t, small.DistinctOperators, big.DistinctOperators)
	assert.Equal(t, small.DistinctOperands, big.DistinctOperands)
	assert.Equal(t, 3*small.TotalOperators, big.TotalOperators)
	assert.Greater(t, big.Volume, small.Volume)
}
