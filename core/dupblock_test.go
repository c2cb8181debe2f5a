package core

import (
	"strings"
	"testing"

	"github.com/smellscan/smellscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sixLineBlock is a window-sized chunk with internally distinct lines.
var sixLineBlock = strings.Join([]string{
	"result = fetch(url)",
	"check(result.status)",
	"payload = decode(result)",
	"store(payload)",
	"notify(listeners)",
	"audit(payload.id)",
}, "\n")

func TestFindDuplicateBlocksThreeCopies(t *testing.T) {
	// Three copies separated by distinct lines yield exactly one finding
	// carrying occurrence count 3 and the first start line.
	text := sixLineBlock + "\n" +
		"separator one\n" +
		sixLineBlock + "\n" +
		"separator two\n" +
		sixLineBlock + "\n" +
		"trailing line\n"

	findings := FindDuplicateBlocks(text, 6)
	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Count)
	assert.Equal(t, 1, findings[0].StartLine)
	assert.Equal(t, 6, findings[0].LineCount)
	assert.Equal(t, "result = fetch(url)", findings[0].Snippet)
	assert.Equal(t, schema.MediumSeverity, findings[0].Severity)
}

func TestFindDuplicateBlocksContiguousRepeats(t *testing.T) {
	// Back-to-back copies make every shifted window repeat too. Those views
	// are only partial echoes of the strongest block, so a single finding
	// with the full occurrence count comes back.
	text := sixLineBlock + "\n" + sixLineBlock + "\n" + sixLineBlock + "\n"

	findings := FindDuplicateBlocks(text, 6)
	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Count)
	assert.Equal(t, 1, findings[0].StartLine)
	assert.Equal(t, 6, findings[0].LineCount)
}

func TestFindDuplicateBlocksContiguousPlusDistinct(t *testing.T) {
	// A distinct repeated block outside the contiguous run still surfaces.
	other := strings.Join([]string{
		"handle = open(path)",
		"lock(handle)",
		"buf = read(handle)",
		"unlock(handle)",
		"close(handle)",
		"log(path)",
	}, "\n")
	text := sixLineBlock + "\n" + sixLineBlock + "\n" +
		"separator one\n" +
		other + "\n" +
		"separator two\n" +
		other + "\n"

	findings := FindDuplicateBlocks(text, 6)
	require.Len(t, findings, 2)
	assert.Equal(t, 2, findings[0].Count)
	assert.Equal(t, 1, findings[0].StartLine)
	assert.Equal(t, 2, findings[1].Count)
	assert.Equal(t, 14, findings[1].StartLine)
}

func TestFindDuplicateBlocksNoRepeats(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString("\n")
	}
	assert.Empty(t, FindDuplicateBlocks(b.String(), 6))
}

func TestFindDuplicateBlocksBlankWindowsSkipped(t *testing.T) {
	text := strings.Repeat("\n", 40)
	assert.Empty(t, FindDuplicateBlocks(text, 6))
}

func TestFindDuplicateBlocksShortFile(t *testing.T) {
	assert.Empty(t, FindDuplicateBlocks("a\nb\nc\n", 6))
	assert.Empty(t, FindDuplicateBlocks(sixLineBlock, 1))
}

func TestFindDuplicateBlocksHighSeverity(t *testing.T) {
	parts := make([]string, 0, 12)
	for i := 0; i < 6; i++ {
		parts = append(parts, sixLineBlock, "divider "+strings.Repeat("y", i+1))
	}
	findings := FindDuplicateBlocks(strings.Join(parts, "\n"), 6)
	require.NotEmpty(t, findings)
	assert.Equal(t, 6, findings[0].Count)
	assert.Equal(t, schema.HighSeverity, findings[0].Severity)
}
