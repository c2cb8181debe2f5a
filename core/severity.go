package core

import "github.com/smellscan/smellscan/schema"

// ClassifyBlockCount grades an exact duplicate block by how often it repeats.
// More than five copies is high, more than two is medium, a single repeat
// stays low.
func ClassifyBlockCount(count int) schema.Severity {
	switch {
	case count > 5:
		return schema.HighSeverity
	case count > 2:
		return schema.MediumSeverity
	default:
		return schema.LowSeverity
	}
}

// ClassifyParamCount grades a parameter list width. More than seven is high,
// more than five is medium.
func ClassifyParamCount(n int) schema.Severity {
	switch {
	case n > 7:
		return schema.HighSeverity
	case n > 5:
		return schema.MediumSeverity
	default:
		return schema.LowSeverity
	}
}

// ClassifyFunctionMatch grades a fuzzy duplicate pair. Near-identical bodies
// are high, context-confirmed matches medium.
func ClassifyFunctionMatch(kind schema.MatchKind) schema.Severity {
	if kind == schema.ImplementationMatch {
		return schema.HighSeverity
	}
	return schema.MediumSeverity
}
