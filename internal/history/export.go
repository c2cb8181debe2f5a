package history

import (
	"errors"
	"fmt"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/internal/parquet"
)

// ExecuteHistoryExport exports run history to Parquet files next to outputFile.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total file records: %d\n", status.TableSizes[fileMetricsTable])

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all file metrics
	fileMetrics, err := store.GetFileMetrics(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve file metrics: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertAnalysisRunRecords(runs)
	parquetFileMetrics := parquet.ConvertFileMetricsRecords(fileMetrics)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write file metrics to Parquet
	fileMetricsFile := outputFile + ".file_metrics.parquet"
	if err := parquet.WriteFileMetricsParquet(parquetFileMetrics, fileMetricsFile); err != nil {
		return fmt.Errorf("failed to write file metrics: %w", err)
	}
	fmt.Printf("Exported %d file metric records to: %s\n", len(parquetFileMetrics), fileMetricsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
