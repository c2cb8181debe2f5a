package schema

// RatingForIndex maps a maintainability index to its band label.
// Index values at 76 or above are highly maintainable, 51-75 moderately
// maintainable, anything below 51 difficult to maintain.
func RatingForIndex(index float64) MaintainabilityRating {
	switch {
	case index >= 76:
		return HighlyMaintainable
	case index >= 51:
		return ModeratelyMaintainable
	default:
		return DifficultToMaintain
	}
}

// severityRank orders severities for comparison, weakest first.
var severityRank = map[Severity]int{
	LowSeverity:    0,
	MediumSeverity: 1,
	HighSeverity:   2,
}

// MaxSeverity returns the stronger of two severities.
func MaxSeverity(a, b Severity) Severity {
	if severityRank[a] >= severityRank[b] {
		return a
	}
	return b
}

// LanguageForExtension maps a lowercase file extension (with leading dot)
// to its language. Unknown extensions map to GenericLang.
func LanguageForExtension(ext string) Language {
	switch ext {
	case ".py", ".pyw":
		return PythonLang
	case ".js", ".jsx", ".mjs", ".cjs":
		return JavaScriptLang
	case ".ts", ".tsx", ".mts":
		return TypeScriptLang
	case ".go":
		return GoLang
	case ".java", ".kt":
		return JavaLang
	case ".rb", ".rake":
		return RubyLang
	case ".c", ".h", ".cc", ".cpp", ".hpp", ".cxx":
		return CLang
	case ".cs":
		return CSharpLang
	case ".php":
		return PHPLang
	default:
		return GenericLang
	}
}
