package core

import (
	"sort"

	"github.com/smellscan/smellscan/schema"
)

// RankFiles sorts files by descending total complexity, breaking ties
// with the lower maintainability index first, and returns the top 'limit'
// files. If limit is zero or greater than the number of files, all files
// are returned in sorted order.
func RankFiles(files []schema.FileReport, limit int) []schema.FileReport {
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Complexity.Total != files[j].Complexity.Total {
			return files[i].Complexity.Total > files[j].Complexity.Total
		}
		if files[i].Maintainability != files[j].Maintainability {
			return files[i].Maintainability < files[j].Maintainability
		}
		return files[i].Path < files[j].Path
	})
	if limit > 0 && len(files) > limit {
		return files[:limit]
	}
	return files
}
