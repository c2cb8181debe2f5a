// Package parquet provides data structures and functions for exporting
// smellscan run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/smellscan/smellscan/schema"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the smellscan_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Root is the scanned directory
	Root string `parquet:"root,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalFilesAnalyzed is the number of files analyzed in this run
	TotalFilesAnalyzed int32 `parquet:"total_files_analyzed,snappy"`

	// TotalLines is the total line count across analyzed files
	TotalLines int32 `parquet:"total_lines,snappy"`

	// AvgMaintainability is the mean maintainability index for the run
	AvgMaintainability float64 `parquet:"avg_maintainability,snappy"`

	// DuplicateBlocks is the number of duplicate block findings
	DuplicateBlocks int32 `parquet:"duplicate_blocks,snappy"`

	// DuplicateFunctions is the number of duplicate function findings
	DuplicateFunctions int32 `parquet:"duplicate_functions,snappy"`

	// Status records whether the run finished
	Status string `parquet:"status,snappy"`
}

// FileMetrics represents the metrics for a single file in one run.
// This struct maps to the smellscan_file_metrics database table.
type FileMetrics struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// FilePath is the relative path to the file under the scan root
	FilePath string `parquet:"file_path,snappy"`

	// Language is the detected source language
	Language string `parquet:"language,snappy"`

	// Lines is the physical line count
	Lines int32 `parquet:"file_lines,snappy"`

	// Cyclomatic is the cyclomatic complexity estimate
	Cyclomatic int32 `parquet:"cyclomatic,snappy"`

	// Cognitive is the cognitive complexity estimate
	Cognitive int32 `parquet:"cognitive,snappy"`

	// Volume is the Halstead volume
	Volume float64 `parquet:"volume,snappy"`

	// Difficulty is the Halstead difficulty
	Difficulty float64 `parquet:"difficulty,snappy"`

	// Effort is the Halstead effort
	Effort float64 `parquet:"effort,snappy"`

	// Maintainability is the maintainability index, clamped to 0-100
	Maintainability float64 `parquet:"maintainability,snappy"`

	// CommentRatio is the comment-line fraction, 0-1
	CommentRatio float64 `parquet:"comment_ratio,snappy"`

	// DuplicateBlocks is the duplicate block finding count for the file
	DuplicateBlocks int32 `parquet:"duplicate_blocks,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteFileMetricsParquet writes a slice of FileMetrics structs to a Parquet file.
func WriteFileMetricsParquet(data []FileMetrics, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the FileMetrics struct tags
	writer := parquet.NewGenericWriter[FileMetrics](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAnalysisRunRecords converts schema.AnalysisRunRecord to AnalysisRun for Parquet export.
func ConvertAnalysisRunRecords(records []schema.AnalysisRunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			RunID:              record.RunID,
			Root:               record.Root,
			StartTime:          record.StartTime,
			EndTime:            record.EndTime,
			RunDurationMs:      record.RunDurationMs,
			TotalFilesAnalyzed: record.TotalFilesAnalyzed,
			TotalLines:         record.TotalLines,
			AvgMaintainability: record.AvgMaintainability,
			DuplicateBlocks:    record.DuplicateBlocks,
			DuplicateFunctions: record.DuplicateFunctions,
			Status:             string(record.Status),
		}
	}
	return result
}

// ConvertFileMetricsRecords converts schema.FileMetricsRecord to FileMetrics for Parquet export.
func ConvertFileMetricsRecords(records []schema.FileMetricsRecord) []FileMetrics {
	result := make([]FileMetrics, len(records))
	for i, record := range records {
		result[i] = FileMetrics{
			RunID:           record.RunID,
			FilePath:        record.Path,
			Language:        string(record.Language),
			Lines:           int32(record.Lines),
			Cyclomatic:      int32(record.Cyclomatic),
			Cognitive:       int32(record.Cognitive),
			Volume:          record.Volume,
			Difficulty:      record.Difficulty,
			Effort:          record.Effort,
			Maintainability: record.Maintainability,
			CommentRatio:    record.CommentRatio,
			DuplicateBlocks: int32(record.DuplicateBlocks),
		}
	}
	return result
}
