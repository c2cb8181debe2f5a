// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/smellscan/smellscan/schema"
)

// SourceLoader defines the discovery operations the engine needs.
// This allows the core analysis logic to be tested without touching a real
// filesystem.
type SourceLoader interface {
	// Load walks the configured root and returns the source units to
	// analyze, plus warnings for anything skipped.
	Load(ctx context.Context, cfg *Config) ([]schema.SourceUnit, []schema.Warning, error)
}

// HistoryStore defines the interface for tracking analysis runs and storing
// per-file metrics.
type HistoryStore interface {
	// BeginRun creates a new run row and returns its unique ID
	BeginRun(startTime time.Time, root string) (int64, error)

	// EndRun updates the run row with completion data
	EndRun(runID int64, endTime time.Time, report *schema.ProjectReport) error

	// RecordFileMetrics stores one file's metrics for a run
	RecordFileMetrics(runID int64, file schema.FileReport) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every recorded run, newest first
	GetAllRuns() ([]schema.AnalysisRunRecord, error)

	// GetFileMetrics returns the per-file rows for one run
	GetFileMetrics(runID int64) ([]schema.FileMetricsRecord, error)

	// Close closes the underlying connection
	Close() error
}
