package core

import (
	"sort"
	"strings"

	"github.com/smellscan/smellscan/schema"
)

// blockSeen tracks one distinct window content while scanning a file.
type blockSeen struct {
	starts  []int // 0-based window start indexes, in scan order
	snippet string
}

// FindDuplicateBlocks slides a fixed window over a file's lines and reports
// every distinct block that occurs more than once. Windows are keyed by their
// trimmed content, so differences in surrounding blank lines do not split a
// block. Each repeated block yields exactly one finding carrying its total
// occurrence count and first start line.
//
// A block repeated back to back makes its shifted windows repeat too. Those
// shifted views all fall inside the lines the strongest block claims, so they
// are suppressed instead of reported as separate findings.
func FindDuplicateBlocks(text string, windowSize int) []schema.DuplicateBlockFinding {
	lines := strings.Split(text, "\n")
	if windowSize < 2 || len(lines) < windowSize {
		return nil
	}

	seen := make(map[string]*blockSeen)
	order := make([]string, 0)

	for i := 0; i+windowSize <= len(lines); i++ {
		window := lines[i : i+windowSize]
		key := blockKey(window)
		if key == "" {
			continue // all-blank window
		}
		b, ok := seen[key]
		if !ok {
			b = &blockSeen{snippet: firstNonBlank(window)}
			seen[key] = b
			order = append(order, key)
		}
		b.starts = append(b.starts, i)
	}

	repeated := make([]string, 0, len(order))
	for _, key := range order {
		if len(seen[key].starts) >= 2 {
			repeated = append(repeated, key)
		}
	}
	// Strongest blocks claim their lines first, ties by position.
	sort.SliceStable(repeated, func(i, j int) bool {
		a, b := seen[repeated[i]], seen[repeated[j]]
		if len(a.starts) != len(b.starts) {
			return len(a.starts) > len(b.starts)
		}
		return a.starts[0] < b.starts[0]
	})

	claimed := make([]bool, len(lines))
	var findings []schema.DuplicateBlockFinding
	for _, key := range repeated {
		b := seen[key]
		if allClaimed(claimed, b.starts, windowSize) {
			continue
		}
		for _, start := range b.starts {
			for l := start; l < start+windowSize; l++ {
				claimed[l] = true
			}
		}
		findings = append(findings, schema.DuplicateBlockFinding{
			StartLine: b.starts[0] + 1,
			LineCount: windowSize,
			Count:     len(b.starts),
			Snippet:   b.snippet,
			Severity:  ClassifyBlockCount(len(b.starts)),
		})
	}
	return findings
}

// allClaimed reports whether every occurrence window lies entirely on lines
// already claimed by a stronger finding.
func allClaimed(claimed []bool, starts []int, windowSize int) bool {
	for _, start := range starts {
		for l := start; l < start+windowSize; l++ {
			if !claimed[l] {
				return false
			}
		}
	}
	return true
}

// blockKey joins a window into its dedup key, trimming leading and trailing
// blank lines. An empty key marks an all-blank window.
func blockKey(window []string) string {
	start, end := 0, len(window)
	for start < end && strings.TrimSpace(window[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(window[end-1]) == "" {
		end--
	}
	if start == end {
		return ""
	}
	return strings.Join(window[start:end], "\n")
}

// firstNonBlank returns the first non-blank line of a window, trimmed.
func firstNonBlank(window []string) string {
	for _, line := range window {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
