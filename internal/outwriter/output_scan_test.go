package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFile(path string, cyclo int, mi float64) schema.FileReport {
	return schema.FileReport{
		Path:            path,
		Language:        schema.PythonLang,
		LineCount:       120,
		CommentRatio:    0.15,
		Complexity:      schema.ComplexityScore{Cyclomatic: cyclo, Cognitive: cyclo + 2},
		Halstead:        schema.HalsteadMetrics{Volume: 540.2, Difficulty: 12.5, Effort: 6752.5},
		Maintainability: mi,
		Rating:          schema.RatingForIndex(mi),
	}
}

func sampleReport() *schema.ProjectReport {
	return &schema.ProjectReport{
		Root:                   "/repo",
		Files:                  []schema.FileReport{sampleFile("a.py", 14, 62.3), sampleFile("b.py", 4, 88.1)},
		TotalLines:             240,
		AverageMaintainability: 75.2,
		AverageCommentRatio:    0.15,
		Distribution:           schema.ComplexityDistribution{Low: 1, Medium: 1},
	}
}

func textConfig() *contract.Config {
	return &contract.Config{
		Workers:    2,
		Precision:  1,
		Output:     schema.TextOut,
		Width:      120,
		Thresholds: contract.DefaultThresholds(),
	}
}

func TestWriteScanJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeScanJSON(&buf, sampleReport().Files)
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "a.py", result[0]["path"])
	assert.Equal(t, 62.3, result[0]["maintainability"])
	assert.Equal(t, "moderately maintainable", result[0]["rating"])
}

func TestWriteScanCSV(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	err := writeScanCSV(&buf, sampleReport().Files, fmtFloat, intFmt)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "cyclomatic")
	assert.Contains(t, lines[0], "maintainability")
	assert.Contains(t, lines[1], "a.py")
	assert.Contains(t, lines[1], "62.30")
}

func TestWriteScanTable(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	err := writeScanTable(&buf, sampleReport(), textConfig(), fmtFloat, 42*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "a.py")
	assert.Contains(t, out, "b.py")
	assert.Contains(t, out, "Showing top 2 files")
	assert.Contains(t, out, "2 workers")
}

func TestWriteScanTableDetail(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	cfg := textConfig()
	cfg.Detail = true
	cfg.Width = 200

	var buf bytes.Buffer
	err := writeScanTable(&buf, sampleReport(), cfg, fmtFloat, time.Millisecond)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "540.2")
	assert.Contains(t, buf.String(), "15%")
}

func TestWriteScanMarkdown(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	err := writeScanMarkdown(&buf, sampleReport().Files, fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + separator + 2 rows
	assert.Contains(t, lines[0], "| Rank |")
	assert.Contains(t, lines[2], "| 1 | a.py |")
}
