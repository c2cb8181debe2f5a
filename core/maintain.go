package core

import (
	"math"
	"strings"

	"github.com/smellscan/smellscan/schema"
)

// neutralMaintainability is reported when the index formula degenerates.
const neutralMaintainability = 50.0

// MaintainabilityIndex synthesizes complexity, volume, length and comment
// density into a single 0-100 score. Any non-finite intermediate collapses
// to the neutral score of 50 rather than an error.
func MaintainabilityIndex(volume float64, cyclomatic int, lineCount int, commentRatio float64) float64 {
	index := 171 -
		5.2*math.Log(volume+1) -
		0.23*float64(cyclomatic) -
		16.2*math.Log(float64(lineCount)+1) +
		50*math.Sin(math.Sqrt(2.4*commentRatio))

	if math.IsNaN(index) || math.IsInf(index, 0) {
		return neutralMaintainability
	}
	return math.Max(0, math.Min(100, index))
}

// CommentRatio returns the fraction of lines carrying a comment marker.
// It recognizes //, #, and /* block comments; lines inside an open block
// count regardless of prefix, so a code line that happens to start with *
// outside a block does not. An empty file has ratio zero.
func CommentRatio(text string, lineCount int) float64 {
	if lineCount == 0 {
		return 0
	}
	comments := 0
	inBlock := false
	for line := range strings.Lines(text) {
		trimmed := strings.TrimSpace(line)
		switch {
		case inBlock:
			comments++
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
		case strings.HasPrefix(trimmed, "//"), strings.HasPrefix(trimmed, "#"):
			comments++
		case strings.HasPrefix(trimmed, "/*"):
			comments++
			if !strings.Contains(trimmed[2:], "*/") {
				inBlock = true
			}
		}
	}
	return float64(comments) / float64(lineCount)
}

// Rate maps a maintainability index to its band label.
func Rate(index float64) schema.MaintainabilityRating {
	return schema.RatingForIndex(index)
}
