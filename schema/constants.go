package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// Severity represents how urgent a finding is.
	Severity string

	// Language represents a supported source language.
	Language string

	// PatternFamily represents the signature family that extracted a function.
	PatternFamily string

	// MatchKind represents how a fuzzy duplicate pair qualified.
	MatchKind string

	// SimilarityKind represents the strength of a whole-file overlap.
	SimilarityKind string

	// MaintainabilityRating represents the band of a maintainability index.
	MaintainabilityRating string

	// SuggestionCategory represents the grouping of a suggestion.
	SuggestionCategory string

	// RunStatus represents the lifecycle state of a recorded analysis run.
	RunStatus string
)

// All output modes supported.
const (
	TextOut     OutputMode = "text" // default
	CSVOut      OutputMode = "csv"
	JSONOut     OutputMode = "json"
	MarkdownOut OutputMode = "markdown"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All severities supported, weakest first.
const (
	LowSeverity    Severity = "low"
	MediumSeverity Severity = "medium"
	HighSeverity   Severity = "high"
)

// All languages with signature patterns. GenericLang files still get the
// line-based metrics, only function extraction is skipped for them.
const (
	PythonLang     Language = "python"
	JavaScriptLang Language = "javascript"
	TypeScriptLang Language = "typescript"
	GoLang         Language = "go"
	JavaLang       Language = "java"
	RubyLang       Language = "ruby"
	CLang          Language = "c"
	CSharpLang     Language = "csharp"
	PHPLang        Language = "php"
	GenericLang    Language = "generic"
)

// All signature families.
const (
	FunctionFamily PatternFamily = "function" // keyword-introduced declarations
	MethodFamily   PatternFamily = "method"   // bodies attached to a receiver or class
	ArrowFamily    PatternFamily = "arrow"    // assigned function expressions
)

// All fuzzy match kinds.
const (
	ImplementationMatch MatchKind = "implementation" // bodies nearly identical
	ContextMatch        MatchKind = "context"        // similar bodies with shared usage context
)

// All whole-file similarity kinds.
const (
	NearDuplicateFiles SimilarityKind = "near-duplicate"
	RelatedFiles       SimilarityKind = "related"
)

// All maintainability bands.
const (
	HighlyMaintainable     MaintainabilityRating = "highly maintainable"
	ModeratelyMaintainable MaintainabilityRating = "moderately maintainable"
	DifficultToMaintain    MaintainabilityRating = "difficult to maintain"
)

// All suggestion categories.
const (
	OrganizationCategory  SuggestionCategory = "Code Organization"
	ComplexityCategory    SuggestionCategory = "Complexity"
	DocumentationCategory SuggestionCategory = "Documentation"
	BestPracticesCategory SuggestionCategory = "Best Practices"
)

// All run statuses supported.
const (
	RunningStatus  RunStatus = "running"
	CompleteStatus RunStatus = "complete"
	FailedStatus   RunStatus = "failed"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:     {},
	CSVOut:      {},
	JSONOut:     {},
	MarkdownOut: {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
