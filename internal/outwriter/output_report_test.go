package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/smellscan/smellscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportWithExtras() *schema.ProjectReport {
	report := smellyReport()
	report.TotalLines = 300
	report.AverageMaintainability = 58.4
	report.AverageCommentRatio = 0.08
	report.Distribution = schema.ComplexityDistribution{Low: 1, High: 1}
	report.Suggestions = []schema.Suggestion{
		{Category: schema.DocumentationCategory, Text: "Raise comment coverage"},
	}
	report.Warnings = []schema.Warning{
		{Path: "skip.bin", Detail: "skipped: binary"},
	}
	return report
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	err := writeReportText(&buf, reportWithExtras(), textConfig(), func(v float64) string {
		return "x"
	}, 15*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Project Quality Report: /repo")
	assert.Contains(t, out, "Complexity Distribution")
	assert.Contains(t, out, "Most Complex Files")
	assert.Contains(t, out, "Smells")
	assert.Contains(t, out, "Suggestions")
	assert.Contains(t, out, "[Documentation] Raise comment coverage")
	assert.Contains(t, out, "skip.bin: skipped: binary")
	assert.Contains(t, out, "Report generated in")
}

func TestWriteReportTextEmojis(t *testing.T) {
	cfg := textConfig()
	cfg.UseEmojis = true

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	err := writeReportText(&buf, reportWithExtras(), cfg, fmtFloat, time.Millisecond)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "📊 Complexity Distribution")
}

func TestWriteReportMarkdown(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	err := writeReportMarkdown(&buf, reportWithExtras(), textConfig(), fmtFloat, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# Project Quality Report")
	assert.Contains(t, out, "## Complexity Distribution")
	assert.Contains(t, out, "| Low (<=10) | 1 |")
	assert.Contains(t, out, "## Most Complex Files")
	assert.Contains(t, out, "## Smells")
	assert.Contains(t, out, "- **Documentation**: Raise comment coverage")
	assert.Contains(t, out, "## Warnings")
}

func TestTopFiles(t *testing.T) {
	report := &schema.ProjectReport{}
	for range 15 {
		report.Files = append(report.Files, schema.FileReport{})
	}
	assert.Len(t, topFiles(report, 10), 10)
	assert.Len(t, topFiles(report, 20), 15)
}
