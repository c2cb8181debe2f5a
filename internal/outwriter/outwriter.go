// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScan prints ranked per-file metrics using the configured output format.
func (ow *OutWriter) WriteScan(report *schema.ProjectReport, cfg *contract.Config, duration time.Duration) error {
	return PrintScanResults(report, cfg, duration)
}

// WriteSmells prints duplication and smell findings using the configured output format.
func (ow *OutWriter) WriteSmells(report *schema.ProjectReport, cfg *contract.Config, duration time.Duration) error {
	return PrintSmellResults(report, cfg, duration)
}

// WriteReport renders the full project report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.ProjectReport, cfg *contract.Config, duration time.Duration) error {
	return PrintProjectReport(report, cfg, duration)
}
