package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
)

// emptyCatch matches catch clauses whose body holds nothing but whitespace.
var emptyCatch = regexp.MustCompile(`\bcatch\s*(?:\([^)]*\))?\s*\{\s*\}`)

// CountLongLines counts lines wider than the column threshold.
func CountLongLines(text string, maxLen int) int {
	count := 0
	for line := range strings.Lines(text) {
		if len(strings.TrimRight(line, "\r\n")) > maxLen {
			count++
		}
	}
	return count
}

// CountEmptyCatches counts swallowed-exception catch blocks.
func CountEmptyCatches(text string) int {
	return len(emptyCatch.FindAllString(text, -1))
}

// BuildSuggestions derives categorized improvement hints from the aggregate
// report. A category only appears when something actually triggered it.
func BuildSuggestions(th contract.Thresholds, report *schema.ProjectReport) []schema.Suggestion {
	var out []schema.Suggestion
	out = append(out, organizationSuggestions(th, report)...)
	out = append(out, complexitySuggestions(report)...)
	out = append(out, documentationSuggestions(th, report)...)
	out = append(out, bestPracticeSuggestions(th, report)...)
	return out
}

func organizationSuggestions(th contract.Thresholds, report *schema.ProjectReport) []schema.Suggestion {
	var out []schema.Suggestion

	dupFiles := 0
	longFiles := 0
	for _, f := range report.Files {
		if len(f.DuplicateBlocks) > 0 {
			dupFiles++
		}
		if f.LineCount > th.FileLength {
			longFiles++
		}
	}

	if dupFiles > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.OrganizationCategory,
			Text:     fmt.Sprintf("Extract repeated code blocks into shared helpers (%d files contain duplicate blocks)", dupFiles),
		})
	}
	if longFiles > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.OrganizationCategory,
			Text:     fmt.Sprintf("Split files over %d lines into smaller focused modules (%d files affected)", th.FileLength, longFiles),
		})
	}
	if len(report.FunctionDups) > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.OrganizationCategory,
			Text:     fmt.Sprintf("Consolidate %d pairs of near-duplicate functions into shared implementations", len(report.FunctionDups)),
		})
	}
	return out
}

func complexitySuggestions(report *schema.ProjectReport) []schema.Suggestion {
	var out []schema.Suggestion
	hard := report.Distribution.High + report.Distribution.VeryHigh
	if hard > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.ComplexityCategory,
			Text:     fmt.Sprintf("Break down deeply branched code paths (%d files score above cyclomatic 20)", hard),
		})
	}
	if report.Distribution.VeryHigh > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.ComplexityCategory,
			Text:     fmt.Sprintf("Prioritize the %d files above cyclomatic 30, they dominate review and debugging cost", report.Distribution.VeryHigh),
		})
	}
	return out
}

func documentationSuggestions(th contract.Thresholds, report *schema.ProjectReport) []schema.Suggestion {
	if len(report.Files) == 0 || report.AverageCommentRatio >= th.MinCommentRatio {
		return nil
	}
	return []schema.Suggestion{{
		Category: schema.DocumentationCategory,
		Text: fmt.Sprintf("Raise comment coverage: average ratio %.2f is below the %.2f floor",
			report.AverageCommentRatio, th.MinCommentRatio),
	}}
}

func bestPracticeSuggestions(th contract.Thresholds, report *schema.ProjectReport) []schema.Suggestion {
	var out []schema.Suggestion

	wideParams := 0
	longLines := 0
	emptyCatches := 0
	longFuncs := 0
	for _, f := range report.Files {
		if f.MaxParams > th.MaxParams {
			wideParams++
		}
		longLines += f.LongLines
		emptyCatches += f.EmptyCatches
		longFuncs += len(f.LongFunctions)
	}

	if wideParams > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.BestPracticesCategory,
			Text:     fmt.Sprintf("Group related parameters into option structs (%d files declare more than %d parameters)", wideParams, th.MaxParams),
		})
	}
	if longFuncs > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.BestPracticesCategory,
			Text:     fmt.Sprintf("Shorten the %d functions that run past %d lines", longFuncs, th.FunctionLength),
		})
	}
	if longLines > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.BestPracticesCategory,
			Text:     fmt.Sprintf("Wrap the %d lines wider than %d columns", longLines, th.MaxLineLength),
		})
	}
	if emptyCatches > 0 {
		out = append(out, schema.Suggestion{
			Category: schema.BestPracticesCategory,
			Text:     fmt.Sprintf("Handle or log the %d swallowed exceptions in empty catch blocks", emptyCatches),
		})
	}
	return out
}
