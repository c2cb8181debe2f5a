package schema

import "time"

// AnalysisRunRecord represents a row from the smellscan_runs table.
type AnalysisRunRecord struct {
	RunID              int64
	Root               string
	StartTime          time.Time
	EndTime            *time.Time
	RunDurationMs      *int32
	TotalFilesAnalyzed int32
	TotalLines         int32
	AvgMaintainability float64
	DuplicateBlocks    int32
	DuplicateFunctions int32
	Status             RunStatus
}

// FileMetricsRecord represents a row from the smellscan_file_metrics table,
// one row per analyzed file per run.
type FileMetricsRecord struct {
	RunID           int64
	Path            string
	Language        Language
	Lines           int
	Cyclomatic      int
	Cognitive       int
	Volume          float64
	Difficulty      float64
	Effort          float64
	Maintainability float64
	CommentRatio    float64
	DuplicateBlocks int
}
