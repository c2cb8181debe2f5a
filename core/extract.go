package core

import (
	"fmt"
	"strings"

	"github.com/smellscan/smellscan/schema"
)

// controlKeywords are signature-shaped matches that are really control flow.
// The looser method patterns can capture these, so they are filtered out.
var controlKeywords = map[string]struct{}{
	"if": {}, "else": {}, "for": {}, "while": {}, "switch": {}, "catch": {},
	"return": {}, "function": {}, "do": {}, "try": {}, "new": {},
}

// ExtractFunctions pulls every function body out of a source unit using the
// language's signature patterns. Patterns are applied in order and each
// signature position is claimed by the first family that matches it, so a
// unit is tagged with exactly one family. Bodies that cannot be delimited
// produce a warning instead of failing the file.
func ExtractFunctions(lib *Library, unit schema.SourceUnit) ([]schema.FunctionUnit, []schema.Warning) {
	patterns := lib.SignaturesFor(unit.Language)
	if len(patterns) == 0 {
		return nil, nil
	}

	var units []schema.FunctionUnit
	var warnings []schema.Warning
	claimed := make(map[int]struct{})

	for _, pat := range patterns {
		for _, loc := range pat.Re.FindAllStringSubmatchIndex(unit.Text, -1) {
			sigStart := lineStart(unit.Text, loc[0])
			if _, taken := claimed[sigStart]; taken {
				continue
			}

			name := unit.Text[loc[2]:loc[3]]
			if _, ctrl := controlKeywords[name]; ctrl {
				continue
			}
			if lib.ShouldSkipName(name) {
				claimed[sigStart] = struct{}{}
				continue
			}

			body, ok := captureBody(unit.Text, sigStart, loc[1], pat.Body)
			if !ok {
				warnings = append(warnings, schema.Warning{
					Path:   unit.Path,
					Detail: fmt.Sprintf("could not delimit body of %q (%s family)", name, pat.Family),
				})
				continue
			}
			claimed[sigStart] = struct{}{}

			units = append(units, schema.FunctionUnit{
				Name:       name,
				Path:       unit.Path,
				StartLine:  1 + strings.Count(unit.Text[:sigStart], "\n"),
				Body:       body,
				Normalized: lib.NormalizeBody(body),
				Family:     pat.Family,
				ParamCount: countParams(unit.Text, loc[3], sigStart+len(body)),
			})
		}
	}
	return units, warnings
}

// lineStart rewinds an offset to the beginning of its line.
func lineStart(text string, offset int) int {
	if idx := strings.LastIndexByte(text[:offset], '\n'); idx >= 0 {
		return idx + 1
	}
	return 0
}

// captureBody extracts the body text starting at the signature line.
// matchEnd is where the signature pattern stopped matching.
func captureBody(text string, sigStart, matchEnd int, style BodyStyle) (string, bool) {
	switch style {
	case BraceBody:
		return captureBraceBody(text, sigStart, matchEnd)
	default:
		return captureIndentBody(text, sigStart)
	}
}

// captureBraceBody walks forward from the signature counting braces until
// the body balances. Unbalanced braces mean the pattern misfired, so the
// capture is rejected.
func captureBraceBody(text string, sigStart, matchEnd int) (string, bool) {
	open := strings.IndexByte(text[matchEnd-1:], '{')
	if open < 0 {
		return "", false
	}
	pos := matchEnd - 1 + open

	depth := 0
	for i := pos; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[sigStart : i+1], true
			}
		}
	}
	return "", false
}

// captureIndentBody collects lines indented past the signature line. The
// body ends at the first non-blank line whose indentation is at or below
// the signature's.
func captureIndentBody(text string, sigStart int) (string, bool) {
	rest := text[sigStart:]
	lines := strings.Split(rest, "\n")
	if len(lines) == 0 {
		return "", false
	}
	sigIndent := indentWidth(lines[0])

	end := 1
	for ; end < len(lines); end++ {
		line := lines[end]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if indentWidth(line) <= sigIndent {
			break
		}
	}
	// Trim trailing blank lines kept by the loop.
	for end > 1 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end == 1 {
		return "", false // signature with no indented body
	}
	return strings.Join(lines[:end], "\n"), true
}

// indentWidth counts leading spaces and tabs, tabs as width 4.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

// countParams counts top-level commas in the parameter list that follows
// the captured name. The opening parenthesis must sit on the name's own
// line, so bare Ruby defs (and the calls inside their bodies) count as
// zero parameters.
func countParams(text string, nameEnd, bodyEnd int) int {
	if bodyEnd > len(text) {
		bodyEnd = len(text)
	}
	if nameEnd >= bodyEnd {
		return 0
	}
	search := text[nameEnd:bodyEnd]
	open := strings.IndexByte(search, '(')
	if open < 0 {
		return 0
	}
	if nl := strings.IndexByte(search[:open], '\n'); nl >= 0 {
		return 0
	}

	depth := 0
	count := 0
	sawToken := false
	for i := open; i < len(search); i++ {
		switch search[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				if sawToken {
					return count + 1
				}
				return 0
			}
		case ',':
			if depth == 1 {
				count++
			}
		default:
			if depth == 1 && !isSpace(search[i]) {
				sawToken = true
			}
		}
	}
	return 0
}

// isSpace reports whether a byte is ASCII whitespace.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
