package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/smellscan/smellscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smellyReport() *schema.ProjectReport {
	return &schema.ProjectReport{
		Root: "/repo",
		Files: []schema.FileReport{
			{
				Path: "a.py",
				DuplicateBlocks: []schema.DuplicateBlockFinding{
					{StartLine: 10, LineCount: 6, Count: 3, Snippet: "for item in items:", Severity: schema.MediumSeverity},
				},
				LongFunctions: []schema.LongFunctionFinding{
					{Name: "handler", StartLine: 40, LineCount: 52, ParamCount: 6},
				},
			},
			{Path: "b.py"},
		},
		FunctionDups: []schema.DuplicateFunctionFinding{
			{
				Name: "process", PathA: "a.py", PathB: "b.py", LineA: 5, LineB: 9,
				Similarity: 0.92, Match: schema.ImplementationMatch, Severity: schema.HighSeverity,
			},
		},
		FileSims: []schema.FileSimilarityFinding{
			{PathA: "a.py", PathB: "b.py", Ratio: 0.81, Kind: schema.NearDuplicateFiles},
		},
	}
}

func TestFlattenSmells(t *testing.T) {
	rows := flattenSmells(smellyReport())
	require.Len(t, rows, 4)

	kinds := make([]string, len(rows))
	for i, r := range rows {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []string{"duplicate-block", "duplicate-function", "similar-file", "long-function"}, kinds)

	assert.Equal(t, schema.MediumSeverity, rows[0].Severity)
	assert.Equal(t, 10, rows[0].Line)
	assert.Contains(t, rows[0].Detail, "repeats 3 times")

	assert.Equal(t, "process", rows[1].Name)
	assert.Contains(t, rows[1].Detail, "92% implementation match")
}

func TestWriteSmellText(t *testing.T) {
	var buf bytes.Buffer
	err := writeSmellText(&buf, smellyReport(), textConfig(), 10*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Duplicate Blocks")
	assert.Contains(t, out, "Duplicate Functions")
	assert.Contains(t, out, "Similar Files")
	assert.Contains(t, out, "Long Functions")
	assert.Contains(t, out, "[Medium] a.py:10")
	assert.Contains(t, out, "Found 4 findings across 2 files")
	assert.NotContains(t, out, "🔍") // emojis are off by default
}

func TestWriteSmellTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	report := &schema.ProjectReport{Files: []schema.FileReport{{Path: "clean.py"}}}

	err := writeSmellText(&buf, report, textConfig(), time.Millisecond)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No smells found")
}

func TestWriteSmellCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeSmellCSV(&buf, flattenSmells(smellyReport()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5) // header + 4 rows
	assert.Equal(t, "kind,severity,path,line,name,detail", lines[0])
	assert.Contains(t, lines[1], "duplicate-block")
}

func TestWriteSmellMarkdown(t *testing.T) {
	var buf bytes.Buffer
	err := writeSmellMarkdown(&buf, smellyReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6) // header + separator + 4 rows
	assert.Contains(t, lines[2], "duplicate-block")
}
