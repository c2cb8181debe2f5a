package core

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
)

// fileOutcome carries everything the per-file pass learns about one unit.
// The report part survives into the project report, the rest feeds the
// cross-file pass.
type fileOutcome struct {
	report    schema.FileReport
	functions []schema.FunctionUnit
	cleaned   string
	warnings  []schema.Warning
}

// AnalyzeProject runs the full pipeline over loaded source units: a
// parallel per-file pass, then the cross-file duplication pass, then
// aggregation. Per-file problems surface as warnings on the report, never
// as errors.
func AnalyzeProject(ctx context.Context, cfg *contract.Config, units []schema.SourceUnit) (*schema.ProjectReport, error) {
	if len(units) == 0 {
		return nil, errors.New("no files found")
	}
	lib := DefaultLibrary()
	th := cfg.Thresholds

	// --- 1. Per-File Phase (worker pool) ---
	outcomes := analyzeAllUnits(ctx, cfg, lib, units)

	// --- 2. Cross-File Phase ---
	var allFunctions []schema.FunctionUnit
	cleaned := make(map[string]string, len(outcomes))
	for _, o := range outcomes {
		allFunctions = append(allFunctions, o.functions...)
		cleaned[o.report.Path] = o.cleaned
	}

	var functionDups []schema.DuplicateFunctionFinding
	var fileSims []schema.FileSimilarityFinding
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		functionDups = CompareFunctions(gctx, lib, th, allFunctions, cfg.Workers)
		return nil
	})
	g.Go(func() error {
		fileSims = CompareFiles(gctx, th, units, cleaned, cfg.Workers)
		return nil
	})
	_ = g.Wait()

	// --- 3. Aggregation ---
	report := &schema.ProjectReport{
		Root:         cfg.RootPath,
		FunctionDups: functionDups,
		FileSims:     fileSims,
	}
	var miSum, ratioSum float64
	for _, o := range outcomes {
		report.Files = append(report.Files, o.report)
		report.Warnings = append(report.Warnings, o.warnings...)
		report.TotalLines += o.report.LineCount
		report.Distribution.Add(o.report.Complexity.Total)
		miSum += o.report.Maintainability
		ratioSum += o.report.CommentRatio
	}
	report.AverageMaintainability = miSum / float64(len(outcomes))
	report.AverageCommentRatio = ratioSum / float64(len(outcomes))

	report.Files = RankFiles(report.Files, 0)
	report.Suggestions = BuildSuggestions(th, report)
	return report, nil
}

// analyzeAllUnits processes all source units in parallel using a worker
// pool. It spawns cfg.Workers goroutines and aggregates their outcomes
// into a single slice.
func analyzeAllUnits(ctx context.Context, cfg *contract.Config, lib *Library, units []schema.SourceUnit) []fileOutcome {
	unitCh := make(chan schema.SourceUnit, len(units))
	outcomeCh := make(chan fileOutcome, len(units))
	var wg sync.WaitGroup

	// Start worker pool
	for range max(cfg.Workers, 1) {
		wg.Go(func() {
			for unit := range unitCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				outcomeCh <- analyzeSourceUnit(lib, cfg.Thresholds, unit)
			}
		})
	}

	// Send units to worker channel
	for _, u := range units {
		unitCh <- u
	}
	close(unitCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(outcomeCh)

	outcomes := make([]fileOutcome, 0, len(units))
	for o := range outcomeCh {
		outcomes = append(outcomes, o)
	}
	return outcomes
}

// analyzeSourceUnit computes every per-file metric for a single unit.
func analyzeSourceUnit(lib *Library, th contract.Thresholds, unit schema.SourceUnit) fileOutcome {
	complexity := EstimateComplexity(lib, unit.Text)
	halstead := EstimateHalstead(lib, unit.Text)
	ratio := CommentRatio(unit.Text, unit.LineCount)
	index := MaintainabilityIndex(halstead.Volume, complexity.Cyclomatic, unit.LineCount, ratio)

	functions, warnings := ExtractFunctions(lib, unit)

	var longFuncs []schema.LongFunctionFinding
	maxParams := 0
	for _, fn := range functions {
		bodyLines := strings.Count(fn.Body, "\n") + 1
		if fn.ParamCount > maxParams {
			maxParams = fn.ParamCount
		}
		if bodyLines > th.FunctionLength || fn.ParamCount > th.MaxParams {
			longFuncs = append(longFuncs, schema.LongFunctionFinding{
				Name:       fn.Name,
				StartLine:  fn.StartLine,
				LineCount:  bodyLines,
				ParamCount: fn.ParamCount,
			})
		}
	}

	return fileOutcome{
		report: schema.FileReport{
			Path:            unit.Path,
			Language:        unit.Language,
			LineCount:       unit.LineCount,
			CommentRatio:    ratio,
			Complexity:      complexity,
			Halstead:        halstead,
			Maintainability: index,
			Rating:          Rate(index),
			DuplicateBlocks: FindDuplicateBlocks(unit.Text, th.WindowSize),
			LongFunctions:   longFuncs,
			MaxParams:       maxParams,
			LongLines:       CountLongLines(unit.Text, th.MaxLineLength),
			EmptyCatches:    CountEmptyCatches(unit.Text),
		},
		functions: functions,
		cleaned:   lib.NormalizeBody(unit.Text),
		warnings:  warnings,
	}
}
