package core

import (
	"testing"

	"github.com/smellscan/smellscan/schema"
	"github.com/stretchr/testify/assert"
)

func rankedPaths(files []schema.FileReport) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

func TestRankFilesOrdering(t *testing.T) {
	files := []schema.FileReport{
		{Path: "calm.go", Complexity: schema.ComplexityScore{Cyclomatic: 3, Total: 3}, Maintainability: 90},
		{Path: "busy.go", Complexity: schema.ComplexityScore{Cyclomatic: 12, Total: 12}, Maintainability: 60},
		{Path: "worse.go", Complexity: schema.ComplexityScore{Cyclomatic: 12, Total: 12}, Maintainability: 40},
		{Path: "tied.go", Complexity: schema.ComplexityScore{Cyclomatic: 3, Total: 3}, Maintainability: 90},
	}

	got := RankFiles(files, 0)
	assert.Equal(t, []string{"worse.go", "busy.go", "calm.go", "tied.go"}, rankedPaths(got))
}

func TestRankFilesUsesTotal(t *testing.T) {
	// A cognitively heavy file overtakes one with more raw branches.
	files := []schema.FileReport{
		{Path: "branchy.go", Complexity: schema.ComplexityScore{Cyclomatic: 8, Cognitive: 0, Total: 8}},
		{Path: "ternary.go", Complexity: schema.ComplexityScore{Cyclomatic: 2, Cognitive: 9, Total: 11}},
	}

	got := RankFiles(files, 0)
	assert.Equal(t, []string{"ternary.go", "branchy.go"}, rankedPaths(got))
}

func TestRankFilesLimit(t *testing.T) {
	files := []schema.FileReport{
		{Path: "a.go", Complexity: schema.ComplexityScore{Cyclomatic: 1, Total: 1}},
		{Path: "b.go", Complexity: schema.ComplexityScore{Cyclomatic: 5, Total: 5}},
		{Path: "c.go", Complexity: schema.ComplexityScore{Cyclomatic: 3, Total: 3}},
	}

	got := RankFiles(files, 2)
	assert.Equal(t, []string{"b.go", "c.go"}, rankedPaths(got))

	got = RankFiles(files, 10)
	assert.Len(t, got, 3)
}

func TestRankFilesEmpty(t *testing.T) {
	assert.Empty(t, RankFiles(nil, 5))
}
