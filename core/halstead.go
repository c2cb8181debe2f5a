package core

import (
	"math"

	"github.com/smellscan/smellscan/schema"
)

// EstimateHalstead derives token-based size metrics from raw text.
// Operators are maximal runs of symbol characters plus a fixed keyword set,
// operands are identifiers, integer literals and quoted strings. When either
// distinct count is zero, volume, difficulty and effort are all defined as
// exactly zero.
func EstimateHalstead(lib *Library, text string) schema.HalsteadMetrics {
	operators := append(
		lib.operatorRuns.FindAllString(text, -1),
		lib.keywordOps.FindAllString(text, -1)...)
	operands := lib.operands.FindAllString(text, -1)

	m := schema.HalsteadMetrics{
		DistinctOperators: distinctCount(operators),
		DistinctOperands:  distinctCount(operands),
		TotalOperators:    len(operators),
		TotalOperands:     len(operands),
	}

	if m.DistinctOperators == 0 || m.DistinctOperands == 0 {
		return m
	}

	n := float64(m.DistinctOperators + m.DistinctOperands)
	bigN := float64(m.TotalOperators + m.TotalOperands)
	m.Volume = bigN * math.Log2(n)
	m.Difficulty = float64(m.DistinctOperators) * float64(m.TotalOperands) / (2 * float64(m.DistinctOperands))
	m.Effort = m.Difficulty * m.Volume
	return m
}

// distinctCount counts unique strings in a slice.
func distinctCount(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it] = struct{}{}
	}
	return len(seen)
}
