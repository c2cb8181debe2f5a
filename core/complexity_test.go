package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCyclomaticComplexity(t *testing.T) {
	lib := DefaultLibrary()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty text keeps base score", "", 1},
		{"no decision points", "x = 1\ny = 2\n", 1},
		{"single if", "if (x) { y() }", 2},
		{"if with logical and counts twice", "if (a && b) { y() }", 3},
		{"else if counts both tokens", "if (a) {} else if (b) {}", 4},
		{"loop and switch arms", "for (i = 0; i < n; i++) { switch x { case 1: case 2: } }", 4},
		{"identifier prefixes do not match", "iffy = gift\nformat(whiled)\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateComplexity(lib, tt.text)
			assert.Equal(t, tt.want, got.Cyclomatic)
		})
	}
}

func TestCyclomaticNeverBelowOne(t *testing.T) {
	lib := DefaultLibrary()
	for _, text := range []string{"", " ", "\n\n\n", "plain words only"} {
		got := EstimateComplexity(lib, text)
		assert.GreaterOrEqual(t, got.Cyclomatic, 1)
		assert.Equal(t, 0, got.Cognitive)
	}
}

func TestComplexityTotal(t *testing.T) {
	lib := DefaultLibrary()

	got := EstimateComplexity(lib, "if (a && b) {} else if (c) {}")
	assert.Equal(t, got.Cyclomatic+got.Cognitive, got.Total)

	// Ternaries score cognitively but not cyclomatically; the total still
	// reflects them.
	got = EstimateComplexity(lib, "a ? b : c")
	assert.Equal(t, 1, got.Cyclomatic)
	assert.Equal(t, 1, got.Cognitive)
	assert.Equal(t, 2, got.Total)
}

func TestCognitiveComplexity(t *testing.T) {
	lib := DefaultLibrary()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain if", "if (x) {}", 1},
		{"else if weighs two, not three", "else if (x) {}", 2},
		{"elif weighs two", "elif x:", 2},
		{"ternary", "a ? b : c", 1},
		{"logicals", "a && b || c", 2},
		{"loop plus catch", "while (x) {} catch (e) {}", 2},
		{"mixed", "if (a && b) {} else if (c) {} for (;;) {}", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateComplexity(lib, tt.text)
			assert.Equal(t, tt.want, got.Cognitive)
		})
	}
}
