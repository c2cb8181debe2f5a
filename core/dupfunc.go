package core

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
)

// CompareFunctions finds cross-file fuzzy duplicates. Functions are bucketed
// by name and only same-named pairs in different files are ever compared,
// which keeps the pass near-linear on real trees. Buckets run concurrently.
//
// A pair qualifies outright when its similarity reaches the near-identical
// threshold. Pairs in the band below are reported only when their usage
// context (shared calls and assignment targets) confirms the match.
func CompareFunctions(ctx context.Context, lib *Library, th contract.Thresholds, funcs []schema.FunctionUnit, workers int) []schema.DuplicateFunctionFinding {
	buckets := make(map[string][]schema.FunctionUnit)
	for _, fn := range funcs {
		buckets[fn.Name] = append(buckets[fn.Name], fn)
	}

	var mu sync.Mutex
	var findings []schema.DuplicateFunctionFinding

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for _, bucket := range buckets {
		if len(bucket) < 2 {
			continue
		}
		g.Go(func() error {
			local := compareBucket(lib, th, bucket)
			if len(local) > 0 {
				mu.Lock()
				findings = append(findings, local...)
				mu.Unlock()
			}
			return nil
		})
	}
	// Workers never return errors, findings are collected under the mutex.
	_ = g.Wait()

	sortFunctionFindings(findings)
	return findings
}

// compareBucket compares every cross-file pair within one name bucket.
func compareBucket(lib *Library, th contract.Thresholds, bucket []schema.FunctionUnit) []schema.DuplicateFunctionFinding {
	var local []schema.DuplicateFunctionFinding
	for i := 0; i < len(bucket); i++ {
		for j := i + 1; j < len(bucket); j++ {
			a, b := bucket[i], bucket[j]
			if a.Path == b.Path {
				continue
			}

			ratio := SimilarityRatio(a.Normalized, b.Normalized)
			var kind schema.MatchKind
			switch {
			case ratio >= th.NearIdentical:
				kind = schema.ImplementationMatch
			case ratio >= th.SimilarFloor:
				if lib.ContextSimilarity(a.Body, b.Body) < th.ContextConfirm {
					continue
				}
				kind = schema.ContextMatch
			default:
				continue
			}

			local = append(local, schema.DuplicateFunctionFinding{
				Name:       a.Name,
				PathA:      a.Path,
				PathB:      b.Path,
				LineA:      a.StartLine,
				LineB:      b.StartLine,
				Similarity: ratio,
				Match:      kind,
				Severity:   ClassifyFunctionMatch(kind),
			})
		}
	}
	return local
}

// sortFunctionFindings orders findings for stable output: strongest
// similarity first, then by name and paths.
func sortFunctionFindings(findings []schema.DuplicateFunctionFinding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Similarity != findings[j].Similarity {
			return findings[i].Similarity > findings[j].Similarity
		}
		if findings[i].Name != findings[j].Name {
			return findings[i].Name < findings[j].Name
		}
		if findings[i].PathA != findings[j].PathA {
			return findings[i].PathA < findings[j].PathA
		}
		return findings[i].PathB < findings[j].PathB
	})
}

// CompareFiles scores every pair of files on their cleaned contents.
// The cheap frequency ratio prunes pairs that cannot reach the related
// threshold before the exact LCS runs.
func CompareFiles(ctx context.Context, th contract.Thresholds, units []schema.SourceUnit, cleaned map[string]string, workers int) []schema.FileSimilarityFinding {
	var mu sync.Mutex
	var findings []schema.FileSimilarityFinding

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i := range units {
		g.Go(func() error {
			var local []schema.FileSimilarityFinding
			for j := i + 1; j < len(units); j++ {
				a, b := units[i], units[j]
				ca, cb := cleaned[a.Path], cleaned[b.Path]
				if ca == "" || cb == "" {
					continue
				}
				if QuickRatio(ca, cb) <= th.FileRelated {
					continue
				}
				ratio := SimilarityRatio(ca, cb)
				if ratio <= th.FileRelated {
					continue
				}
				kind := schema.RelatedFiles
				if ratio > th.FileNearDuplicate {
					kind = schema.NearDuplicateFiles
				}
				local = append(local, schema.FileSimilarityFinding{
					PathA: a.Path,
					PathB: b.Path,
					Ratio: ratio,
					Kind:  kind,
				})
			}
			if len(local) > 0 {
				mu.Lock()
				findings = append(findings, local...)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Ratio != findings[j].Ratio {
			return findings[i].Ratio > findings[j].Ratio
		}
		if findings[i].PathA != findings[j].PathA {
			return findings[i].PathA < findings[j].PathA
		}
		return findings[i].PathB < findings[j].PathB
	})
	return findings
}
