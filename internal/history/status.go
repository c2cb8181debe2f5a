package history

import (
	"fmt"

	"github.com/smellscan/smellscan/schema"
)

// PrintHistoryStatus renders run tracking statistics for the status command.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run ID: %d\n", status.LastRunID)
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Files Analyzed: %d\n", status.TotalFilesAnalyzed)
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}

// PrintHistoryRuns renders one line per stored run for the runs command.
func PrintHistoryRuns(runs []schema.AnalysisRunRecord) {
	if len(runs) == 0 {
		fmt.Println("No analysis runs recorded.")
		return
	}
	fmt.Printf("%-6s  %-19s  %-10s  %7s  %9s  %8s  %s\n",
		"Run", "Started", "Status", "Files", "Lines", "Avg MI", "Root")
	for _, r := range runs {
		fmt.Printf("%-6d  %-19s  %-10s  %7d  %9d  %8.1f  %s\n",
			r.RunID,
			r.StartTime.Format("2006-01-02 15:04:05"),
			r.Status,
			r.TotalFilesAnalyzed,
			r.TotalLines,
			r.AvgMaintainability,
			r.Root)
	}
}
