package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
)

// smellRow is the flattened form of one finding, shared by the CSV and
// JSON renderers.
type smellRow struct {
	Kind     string          `json:"kind"`
	Severity schema.Severity `json:"severity"`
	Path     string          `json:"path"`
	Line     int             `json:"line,omitempty"`
	Name     string          `json:"name,omitempty"`
	Detail   string          `json:"detail"`
}

// PrintSmellResults outputs duplication and smell findings, dispatching
// based on the output format configured.
func PrintSmellResults(report *schema.ProjectReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, flattenSmells(report))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSmellCSV(w, flattenSmells(report))
		}, "Wrote CSV")
	case schema.MarkdownOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSmellMarkdown(w, report)
		}, "Wrote Markdown")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSmellText(w, report, cfg, duration)
		}, "Wrote text")
	}
}

// flattenSmells collects every finding into a single row list, ordered by
// finding class.
func flattenSmells(report *schema.ProjectReport) []smellRow {
	var rows []smellRow
	for _, f := range report.Files {
		for _, b := range f.DuplicateBlocks {
			rows = append(rows, smellRow{
				Kind:     "duplicate-block",
				Severity: b.Severity,
				Path:     f.Path,
				Line:     b.StartLine,
				Detail:   fmt.Sprintf("block of %d lines repeats %d times: %s", b.LineCount, b.Count, b.Snippet),
			})
		}
	}
	for _, d := range report.FunctionDups {
		rows = append(rows, smellRow{
			Kind:     "duplicate-function",
			Severity: d.Severity,
			Path:     d.PathA,
			Line:     d.LineA,
			Name:     d.Name,
			Detail:   fmt.Sprintf("%.0f%% %s match with %s:%d", d.Similarity*100, d.Match, d.PathB, d.LineB),
		})
	}
	for _, s := range report.FileSims {
		rows = append(rows, smellRow{
			Kind:     "similar-file",
			Severity: schema.MediumSeverity,
			Path:     s.PathA,
			Detail:   fmt.Sprintf("%s overlap with %s (%.0f%%)", s.Kind, s.PathB, s.Ratio*100),
		})
	}
	for _, f := range report.Files {
		for _, lf := range f.LongFunctions {
			rows = append(rows, smellRow{
				Kind:     "long-function",
				Severity: schema.LowSeverity,
				Path:     f.Path,
				Line:     lf.StartLine,
				Name:     lf.Name,
				Detail:   fmt.Sprintf("spans %d lines with %d params", lf.LineCount, lf.ParamCount),
			})
		}
	}
	return rows
}

// writeSmellText writes the human-readable smell listing.
func writeSmellText(w io.Writer, report *schema.ProjectReport, cfg *contract.Config, duration time.Duration) error {
	total := 0

	header := func(emoji, title string) error {
		prefix := ""
		if cfg.UseEmojis {
			prefix = emoji + " "
		}
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, title)
		return err
	}

	blockCount := 0
	for _, f := range report.Files {
		blockCount += len(f.DuplicateBlocks)
	}
	if blockCount > 0 {
		if err := header("🔍", "Duplicate Blocks"); err != nil {
			return err
		}
		for _, f := range report.Files {
			for _, b := range f.DuplicateBlocks {
				if _, err := fmt.Fprintf(w, "  [%s] %s:%d block of %d lines repeats %d times: %s\n",
					severityLabel(b.Severity, cfg.UseColors), f.Path, b.StartLine, b.LineCount, b.Count, b.Snippet); err != nil {
					return err
				}
				total++
			}
		}
	}

	if len(report.FunctionDups) > 0 {
		if err := header("🔁", "Duplicate Functions"); err != nil {
			return err
		}
		for _, d := range report.FunctionDups {
			if _, err := fmt.Fprintf(w, "  [%s] %s (%s:%d <-> %s:%d) %.0f%% %s match\n",
				severityLabel(d.Severity, cfg.UseColors), d.Name, d.PathA, d.LineA, d.PathB, d.LineB,
				d.Similarity*100, d.Match); err != nil {
				return err
			}
			total++
		}
	}

	if len(report.FileSims) > 0 {
		if err := header("📄", "Similar Files"); err != nil {
			return err
		}
		for _, s := range report.FileSims {
			if _, err := fmt.Fprintf(w, "  %s: %s <-> %s (%.0f%%)\n", s.Kind, s.PathA, s.PathB, s.Ratio*100); err != nil {
				return err
			}
			total++
		}
	}

	longCount := 0
	for _, f := range report.Files {
		longCount += len(f.LongFunctions)
	}
	if longCount > 0 {
		if err := header("📏", "Long Functions"); err != nil {
			return err
		}
		for _, f := range report.Files {
			for _, lf := range f.LongFunctions {
				if _, err := fmt.Fprintf(w, "  %s:%d %s spans %d lines (%d params)\n",
					f.Path, lf.StartLine, lf.Name, lf.LineCount, lf.ParamCount); err != nil {
					return err
				}
				total++
			}
		}
	}

	if total == 0 {
		if _, err := fmt.Fprintf(w, "No smells found\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Found %d findings across %d files in %v\n", total, len(report.Files), duration); err != nil {
		return err
	}
	return nil
}

// writeSmellCSV writes the findings in CSV format.
func writeSmellCSV(w io.Writer, rows []smellRow) error {
	header := []string{"kind", "severity", "path", "line", "name", "detail"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range rows {
			rec := []string{
				r.Kind,
				string(r.Severity),
				r.Path,
				strconv.Itoa(r.Line),
				r.Name,
				r.Detail,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSmellMarkdown writes the findings as a Markdown table.
func writeSmellMarkdown(w io.Writer, report *schema.ProjectReport) error {
	rows := flattenSmells(report)
	if _, err := fmt.Fprintf(w, "| Kind | Severity | Path | Line | Detail |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "|---|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %d | %s |\n", r.Kind, r.Severity, r.Path, r.Line, r.Detail); err != nil {
			return err
		}
	}
	return nil
}
