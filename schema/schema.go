// Package schema has models, constants and shared helpers for all parts of smellscan.
package schema

// SourceUnit is a single source file loaded for analysis. The text is read
// once during discovery and treated as immutable for the rest of the run.
type SourceUnit struct {
	Path      string   // Relative path from the scan root
	Language  Language // Detected from the file extension
	Text      string   // Full file content
	LineCount int      // Number of physical lines in Text
}

// FunctionUnit is one extracted function or method body, tagged with the
// signature family that produced it.
type FunctionUnit struct {
	Name       string        // Captured name from the signature pattern
	Path       string        // File the function was extracted from
	StartLine  int           // 1-based line of the signature
	Body       string        // Raw body text, signature included
	Normalized string        // Body after comment/string/assignment normalization
	Family     PatternFamily // Signature family that matched
	ParamCount int           // Number of declared parameters
}

// ComplexityScore holds the two control-flow complexity estimates for a file.
type ComplexityScore struct {
	Cyclomatic int `json:"cyclomatic"` // Base 1 plus one per decision point
	Cognitive  int `json:"cognitive"`  // Weighted sum, nesting-free approximation
	Total      int `json:"total"`      // Cyclomatic plus cognitive, the ranking and bucketing key
}

// HalsteadMetrics holds the token-derived size estimates for a file.
// Volume, Difficulty and Effort are all exactly zero when either distinct
// count is zero.
type HalsteadMetrics struct {
	DistinctOperators int     `json:"distinct_operators"` // n1
	DistinctOperands  int     `json:"distinct_operands"`  // n2
	TotalOperators    int     `json:"total_operators"`    // N1
	TotalOperands     int     `json:"total_operands"`     // N2
	Volume            float64 `json:"volume"`             // (N1+N2) * log2(n1+n2)
	Difficulty        float64 `json:"difficulty"`         // (n1*N2) / (2*n2)
	Effort            float64 `json:"effort"`             // Difficulty * Volume
}

// FileReport is the per-file result of the analysis pipeline.
type FileReport struct {
	Path            string                  `json:"path"`                       // Relative path from the scan root
	Language        Language                `json:"language"`                   // Detected language
	LineCount       int                     `json:"lines"`                      // Physical lines
	CommentRatio    float64                 `json:"comment_ratio"`              // Comment lines / total lines, 0-1
	Complexity      ComplexityScore         `json:"complexity"`                 // Control-flow estimates
	Halstead        HalsteadMetrics         `json:"halstead"`                   // Token-derived estimates
	Maintainability float64                 `json:"maintainability"`            // Maintainability index, clamped to 0-100
	Rating          MaintainabilityRating   `json:"rating"`                     // Band label for the index
	DuplicateBlocks []DuplicateBlockFinding `json:"duplicate_blocks,omitempty"` // Repeated windows within this file
	LongFunctions   []LongFunctionFinding   `json:"long_functions,omitempty"`   // Functions over the length threshold
	MaxParams       int                     `json:"max_params"`                 // Largest parameter count seen in the file
	LongLines       int                     `json:"long_lines"`                 // Lines over the column threshold
	EmptyCatches    int                     `json:"empty_catches"`              // Catch blocks with empty bodies
}

// DuplicateBlockFinding is one distinct block of lines that repeats within a
// single file. Exactly one finding is emitted per distinct block content.
type DuplicateBlockFinding struct {
	StartLine int      `json:"start_line"` // First line where the block appears
	LineCount int      `json:"line_count"` // Window size the block was detected with
	Count     int      `json:"count"`      // Total occurrences within the file
	Snippet   string   `json:"snippet"`    // First non-blank line of the block, for display
	Severity  Severity `json:"severity"`   // Classified from Count
}

// DuplicateFunctionFinding is a pair of same-named functions in different
// files whose normalized bodies are similar.
type DuplicateFunctionFinding struct {
	Name       string    `json:"name"`       // Shared function name
	PathA      string    `json:"path_a"`     // File of the first function
	PathB      string    `json:"path_b"`     // File of the second function
	LineA      int       `json:"line_a"`     // Signature line in PathA
	LineB      int       `json:"line_b"`     // Signature line in PathB
	Similarity float64   `json:"similarity"` // LCS ratio over the normalized bodies, 0-1
	Match      MatchKind `json:"match"`      // How the pair qualified
	Severity   Severity  `json:"severity"`   // Classified from Match
}

// FileSimilarityFinding is a pair of files whose cleaned contents overlap.
type FileSimilarityFinding struct {
	PathA string         `json:"path_a"` // First file
	PathB string         `json:"path_b"` // Second file
	Ratio float64        `json:"ratio"`  // LCS ratio over cleaned contents, 0-1
	Kind  SimilarityKind `json:"kind"`   // Near-duplicate above 0.7, related above 0.3
}

// LongFunctionFinding flags a function body over the configured length
// threshold, or one with a wide parameter list.
type LongFunctionFinding struct {
	Name       string `json:"name"`        // Function name
	StartLine  int    `json:"start_line"`  // Signature line
	LineCount  int    `json:"line_count"`  // Body length in lines
	ParamCount int    `json:"param_count"` // Declared parameter count
}

// Suggestion is one categorized improvement hint derived from the aggregate
// metrics. Only triggered categories produce suggestions.
type Suggestion struct {
	Category SuggestionCategory `json:"category"` // Grouping for the report
	Text     string             `json:"text"`     // Human-readable hint
}

// Warning records a non-fatal problem encountered during a run. Warnings
// never abort a batch.
type Warning struct {
	Path   string `json:"path,omitempty"` // File the problem relates to, empty for run-level issues
	Detail string `json:"detail"`         // What went wrong
}

// ComplexityDistribution buckets files by cyclomatic complexity.
type ComplexityDistribution struct {
	Low      int `json:"low"`       // Cyclomatic <= 10
	Medium   int `json:"medium"`    // Cyclomatic 11-20
	High     int `json:"high"`      // Cyclomatic 21-30
	VeryHigh int `json:"very_high"` // Cyclomatic > 30
}

// Add places one cyclomatic score into its bucket.
func (d *ComplexityDistribution) Add(cyclomatic int) {
	switch {
	case cyclomatic <= 10:
		d.Low++
	case cyclomatic <= 20:
		d.Medium++
	case cyclomatic <= 30:
		d.High++
	default:
		d.VeryHigh++
	}
}

// ProjectReport is the aggregate result handed to renderers and the
// history store.
type ProjectReport struct {
	Root                   string                     `json:"root"`                    // Scan root
	Files                  []FileReport               `json:"files"`                   // Ranked by descending cyclomatic complexity
	TotalLines             int                        `json:"total_lines"`             // Sum of file line counts
	AverageMaintainability float64                    `json:"avg_maintainability"`     // Mean maintainability index across files
	AverageCommentRatio    float64                    `json:"avg_comment_ratio"`       // Mean comment ratio across files
	Distribution           ComplexityDistribution     `json:"distribution"`            // File buckets by cyclomatic complexity
	FunctionDups           []DuplicateFunctionFinding `json:"function_dups,omitempty"` // Cross-file fuzzy matches
	FileSims               []FileSimilarityFinding    `json:"file_sims,omitempty"`     // Whole-file overlaps
	Suggestions            []Suggestion               `json:"suggestions,omitempty"`   // Triggered hints only
	Warnings               []Warning                  `json:"warnings,omitempty"`      // Skipped files and pattern failures
}
