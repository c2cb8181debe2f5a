package core

import "strings"

// maxLCSCells caps the DP table size for exact LCS. Pairs beyond the cap
// fall back to the frequency-based estimate, which is an upper bound of the
// exact ratio and cheap to compute.
const maxLCSCells = 4_000_000

// SimilarityRatio scores two normalized texts in [0, 1] using a line-level
// longest common subsequence: 2*LCS / (lenA + lenB). The function is
// symmetric in its arguments and returns 1 for two equal texts. Two empty
// texts count as fully similar.
func SimilarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	linesA := strings.Split(a, "\n")
	linesB := strings.Split(b, "\n")
	total := len(linesA) + len(linesB)
	if total == 0 {
		return 1
	}

	if len(linesA)*len(linesB) > maxLCSCells {
		return QuickRatio(a, b)
	}
	common := lcsLength(linesA, linesB)
	return 2 * float64(common) / float64(total)
}

// QuickRatio is the frequency-based upper bound on SimilarityRatio: it
// counts matching lines regardless of order. Useful as a pre-filter, since
// a quick ratio below a threshold guarantees the exact ratio is below it too.
func QuickRatio(a, b string) float64 {
	linesA := strings.Split(a, "\n")
	linesB := strings.Split(b, "\n")
	total := len(linesA) + len(linesB)
	if total == 0 {
		return 1
	}

	counts := make(map[string]int, len(linesA))
	for _, line := range linesA {
		counts[line]++
	}
	matches := 0
	for _, line := range linesB {
		if counts[line] > 0 {
			counts[line]--
			matches++
		}
	}
	return 2 * float64(matches) / float64(total)
}

// lcsLength computes the longest common subsequence length over lines with
// a two-row DP table.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
