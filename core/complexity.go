package core

import "github.com/smellscan/smellscan/schema"

// EstimateComplexity scores one file's control flow from raw text. It never
// fails: empty or pattern-free text yields the base score of 1.
func EstimateComplexity(lib *Library, text string) schema.ComplexityScore {
	cyclomatic := cyclomaticComplexity(lib, text)
	cognitive := cognitiveComplexity(lib, text)
	return schema.ComplexityScore{
		Cyclomatic: cyclomatic,
		Cognitive:  cognitive,
		Total:      cyclomatic + cognitive,
	}
}

// cyclomaticComplexity counts decision points on top of the base score of 1.
// Each pattern is counted independently, so a line holding both an 'if' and
// an '&&' contributes twice.
func cyclomaticComplexity(lib *Library, text string) int {
	score := 1
	for _, re := range lib.decision {
		score += len(re.FindAllStringIndex(text, -1))
	}
	return score
}

// cognitiveComplexity sums weighted pattern counts. Matched spans are blanked
// before the next pattern runs, so an 'else if' contributes its weight of 2
// exactly once instead of also counting as a plain 'if'.
func cognitiveComplexity(lib *Library, text string) int {
	score := 0
	remaining := text
	for _, wp := range lib.cognitive {
		matches := wp.re.FindAllStringIndex(remaining, -1)
		if len(matches) == 0 {
			continue
		}
		score += len(matches) * wp.weight
		remaining = wp.re.ReplaceAllStringFunc(remaining, func(m string) string {
			blank := make([]byte, len(m))
			for i := range blank {
				blank[i] = ' '
			}
			return string(blank)
		})
	}
	return score
}
