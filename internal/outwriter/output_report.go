package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"

	"github.com/olekukonko/tablewriter"
)

// topOffenderCount limits the per-section file listings in the rendered report.
const topOffenderCount = 10

// PrintProjectReport renders the full project report, dispatching based on
// the output format configured.
func PrintProjectReport(report *schema.ProjectReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanCSV(w, report.Files, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.MarkdownOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportMarkdown(w, report, cfg, fmtFloat, duration)
		}, "Wrote Markdown")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, report, cfg, fmtFloat, duration)
		}, "Wrote text")
	}
}

// topFiles returns the first n ranked files.
func topFiles(report *schema.ProjectReport, n int) []schema.FileReport {
	if len(report.Files) > n {
		return report.Files[:n]
	}
	return report.Files
}

// writeReportText writes the full report in human-readable form.
func writeReportText(w io.Writer, report *schema.ProjectReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	header := func(emoji, title string) error {
		prefix := ""
		if cfg.UseEmojis {
			prefix = emoji + " "
		}
		_, err := fmt.Fprintf(w, "\n%s%s\n", prefix, title)
		return err
	}

	if _, err := fmt.Fprintf(w, "Project Quality Report: %s\n", report.Root); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Files: %d  Lines: %d  Avg MI: %s (%s)  Avg comments: %.0f%%\n",
		len(report.Files), report.TotalLines, fmtFloat(report.AverageMaintainability),
		contract.GetRatingLabel(schema.RatingForIndex(report.AverageMaintainability), cfg.UseColors),
		report.AverageCommentRatio*100); err != nil {
		return err
	}

	// Distribution table
	if err := header("📊", "Complexity Distribution"); err != nil {
		return err
	}
	dist := tablewriter.NewWriter(w)
	dist.Header([]string{"Bucket", "Files"})
	if err := dist.Bulk([][]string{
		{"Low (<=10)", strconv.Itoa(report.Distribution.Low)},
		{"Medium (11-20)", strconv.Itoa(report.Distribution.Medium)},
		{"High (21-30)", strconv.Itoa(report.Distribution.High)},
		{"Very High (>30)", strconv.Itoa(report.Distribution.VeryHigh)},
	}); err != nil {
		return err
	}
	if err := dist.Render(); err != nil {
		return err
	}

	// Top offenders table
	if err := header("🔥", "Most Complex Files"); err != nil {
		return err
	}
	top := tablewriter.NewWriter(w)
	top.Header([]string{"Path", "Cyclo", "MI", "Rating"})
	var rows [][]string
	for _, f := range topFiles(report, topOffenderCount) {
		rows = append(rows, []string{
			contract.TruncatePath(f.Path, getMaxTablePathWidth(cfg)),
			strconv.Itoa(f.Complexity.Cyclomatic),
			fmtFloat(f.Maintainability),
			contract.GetRatingLabel(f.Rating, cfg.UseColors),
		})
	}
	if err := top.Bulk(rows); err != nil {
		return err
	}
	if err := top.Render(); err != nil {
		return err
	}

	// Smell summaries reuse the listing renderer
	if err := header("👃", "Smells"); err != nil {
		return err
	}
	if err := writeSmellText(w, report, cfg, duration); err != nil {
		return err
	}

	// Suggestions grouped by category
	if len(report.Suggestions) > 0 {
		if err := header("💡", "Suggestions"); err != nil {
			return err
		}
		for _, s := range report.Suggestions {
			if _, err := fmt.Fprintf(w, "  [%s] %s\n", s.Category, s.Text); err != nil {
				return err
			}
		}
	}

	if len(report.Warnings) > 0 {
		if err := header("⚠️", "Warnings"); err != nil {
			return err
		}
		for _, warn := range report.Warnings {
			if warn.Path != "" {
				if _, err := fmt.Fprintf(w, "  %s: %s\n", warn.Path, warn.Detail); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "  %s\n", warn.Detail); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\nReport generated in %v with %d workers\n", duration, cfg.Workers)
	return err
}

// writeReportMarkdown writes the full report as a Markdown document.
func writeReportMarkdown(w io.Writer, report *schema.ProjectReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "# Project Quality Report\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Root: `%s`\n\n", report.Root); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "- Files analyzed: %d\n- Total lines: %d\n- Average maintainability: %s (%s)\n- Average comment ratio: %.0f%%\n\n",
		len(report.Files), report.TotalLines, fmtFloat(report.AverageMaintainability),
		schema.RatingForIndex(report.AverageMaintainability), report.AverageCommentRatio*100); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "## Complexity Distribution\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "| Bucket | Files |\n|---|---|\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "| Low (<=10) | %d |\n| Medium (11-20) | %d |\n| High (21-30) | %d |\n| Very High (>30) | %d |\n\n",
		report.Distribution.Low, report.Distribution.Medium,
		report.Distribution.High, report.Distribution.VeryHigh); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "## Most Complex Files\n\n"); err != nil {
		return err
	}
	if err := writeScanMarkdown(w, topFiles(report, topOffenderCount), fmtFloat); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n## Smells\n\n"); err != nil {
		return err
	}
	if err := writeSmellMarkdown(w, report); err != nil {
		return err
	}

	if len(report.Suggestions) > 0 {
		if _, err := fmt.Fprintf(w, "\n## Suggestions\n\n"); err != nil {
			return err
		}
		for _, s := range report.Suggestions {
			if _, err := fmt.Fprintf(w, "- **%s**: %s\n", s.Category, s.Text); err != nil {
				return err
			}
		}
	}

	if len(report.Warnings) > 0 {
		if _, err := fmt.Fprintf(w, "\n## Warnings\n\n"); err != nil {
			return err
		}
		for _, warn := range report.Warnings {
			if _, err := fmt.Fprintf(w, "- `%s`: %s\n", warn.Path, warn.Detail); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n_Generated in %v_\n", duration)
	return err
}
