// Package core has core logic for analysis, duplication detection and ranking.
package core

import (
	"context"
	"time"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/internal/outwriter"
	"github.com/smellscan/smellscan/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader, store contract.HistoryStore) error

// ExecuteScan runs the per-file metrics analysis and prints ranked results.
// It serves as the main entry point for the 'scan' command.
func ExecuteScan(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader, store contract.HistoryStore) error {
	start := time.Now()
	report, err := runAnalysisCore(ctx, cfg, loader, store)
	if err != nil {
		return err
	}
	report.Files = RankFiles(report.Files, cfg.ResultLimit)
	return outwriter.PrintScanResults(report, cfg, time.Since(start))
}

// ExecuteSmells runs the analysis and prints duplication and smell findings.
// It serves as the main entry point for the 'smells' command.
func ExecuteSmells(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader, store contract.HistoryStore) error {
	start := time.Now()
	report, err := runAnalysisCore(ctx, cfg, loader, store)
	if err != nil {
		return err
	}
	return outwriter.PrintSmellResults(report, cfg, time.Since(start))
}

// ExecuteReport runs the analysis and renders the full project report,
// including the distribution table, top offenders and suggestions.
func ExecuteReport(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader, store contract.HistoryStore) error {
	start := time.Now()
	report, err := runAnalysisCore(ctx, cfg, loader, store)
	if err != nil {
		return err
	}
	return outwriter.PrintProjectReport(report, cfg, time.Since(start))
}

// runAnalysisCore performs the common Load, Analyze and Record steps.
func runAnalysisCore(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader, store contract.HistoryStore) (*schema.ProjectReport, error) {
	// --- 0. Begin Run Tracking (if configured) ---
	var runID int64
	if store != nil {
		var err error
		runID, err = store.BeginRun(time.Now(), cfg.RootPath)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 1. Discovery Phase ---
	units, loadWarnings, err := loader.Load(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// --- 2. Core Analysis ---
	report, err := AnalyzeProject(ctx, cfg, units)
	if err != nil {
		return nil, err
	}
	report.Warnings = append(loadWarnings, report.Warnings...)

	// --- 3. End Run Tracking ---
	if store != nil && runID > 0 {
		for _, f := range report.Files {
			if err := store.RecordFileMetrics(runID, f); err != nil {
				contract.LogWarn("Run tracking failed for "+f.Path, err)
				break
			}
		}
		if err := store.EndRun(runID, time.Now(), report); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return report, nil
}
