package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintScanResults outputs ranked per-file metrics, dispatching based on the
// output format configured.
func PrintScanResults(report *schema.ProjectReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanJSON(w, report.Files)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanCSV(w, report.Files, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.MarkdownOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanMarkdown(w, report.Files, fmtFloat)
		}, "Wrote Markdown")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanTable(w, report, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeScanTable generates and writes the human-readable table.
func writeScanTable(w io.Writer, report *schema.ProjectReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Rank", "Path", "Lang", "Lines", "Cyclo", "MI", "Rating"}
	if cfg.Detail {
		headers = append(headers, "Cogn", "Volume", "Difficulty", "Comment%")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, f := range report.Files {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(f.Path, getMaxTablePathWidth(cfg)),
			string(f.Language),
			strconv.Itoa(f.LineCount),
			strconv.Itoa(f.Complexity.Cyclomatic),
			fmtFloat(f.Maintainability),
			contract.GetRatingLabel(f.Rating, cfg.UseColors),
		}
		if cfg.Detail {
			row = append(
				row,
				strconv.Itoa(f.Complexity.Cognitive),
				fmtFloat(f.Halstead.Volume),
				fmtFloat(f.Halstead.Difficulty),
				fmt.Sprintf("%.0f%%", f.CommentRatio*100),
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	if _, err := fmt.Fprintf(w, "Showing top %d files (total lines: %d, average MI: %s)\n",
		len(report.Files), report.TotalLines, fmtFloat(report.AverageMaintainability)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeScanCSV writes the per-file metrics in CSV format.
func writeScanCSV(w io.Writer, files []schema.FileReport, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"path",
		"language",
		"lines",
		"cyclomatic",
		"cognitive",
		"volume",
		"difficulty",
		"effort",
		"maintainability",
		"rating",
		"comment_ratio",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, f := range files {
			rec := []string{
				strconv.Itoa(i + 1),
				f.Path,
				string(f.Language),
				fmt.Sprintf(intFmt, f.LineCount),
				fmt.Sprintf(intFmt, f.Complexity.Cyclomatic),
				fmt.Sprintf(intFmt, f.Complexity.Cognitive),
				fmtFloat(f.Halstead.Volume),
				fmtFloat(f.Halstead.Difficulty),
				fmtFloat(f.Halstead.Effort),
				fmtFloat(f.Maintainability),
				string(f.Rating),
				fmtFloat(f.CommentRatio),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeScanJSON writes the per-file metrics in JSON format.
func writeScanJSON(w io.Writer, files []schema.FileReport) error {
	// Prepare the data structure for JSON with rank added
	type JSONFileReport struct {
		Rank int `json:"rank"`
		schema.FileReport
	}

	output := make([]JSONFileReport, len(files))
	for i, f := range files {
		output[i] = JSONFileReport{
			Rank:       i + 1,
			FileReport: f,
		}
	}

	return writeJSON(w, output)
}

// writeScanMarkdown writes the per-file metrics as a Markdown table.
func writeScanMarkdown(w io.Writer, files []schema.FileReport, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "| Rank | Path | Lang | Lines | Cyclo | MI | Rating |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "|---|---|---|---|---|---|---|\n"); err != nil {
		return err
	}
	for i, f := range files {
		if _, err := fmt.Fprintf(w, "| %d | %s | %s | %d | %d | %s | %s |\n",
			i+1, f.Path, f.Language, f.LineCount, f.Complexity.Cyclomatic,
			fmtFloat(f.Maintainability), f.Rating); err != nil {
			return err
		}
	}
	return nil
}
