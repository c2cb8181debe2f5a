package core

import "strings"

// NormalizeBody strips the noise that hides structural similarity: comments
// go away, string literals collapse to empty literals, assignment targets
// lose their names and blank lines disappear. The transformation is
// idempotent, so normalizing twice yields the same text.
func (l *Library) NormalizeBody(body string) string {
	s := l.blockComment.ReplaceAllString(body, "")
	s = l.lineComment.ReplaceAllString(s, "")
	s = l.hashComment.ReplaceAllString(s, "")
	s = l.doubleQuoted.ReplaceAllString(s, `""`)
	s = l.singleQuoted.ReplaceAllString(s, `''`)
	s = l.declAssign.ReplaceAllString(s, "=")
	s = l.plainAssign.ReplaceAllString(s, "=$1")

	var out []string
	for line := range strings.Lines(s) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}

// CallNames collects the set of function names invoked in a body.
func (l *Library) CallNames(body string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, m := range l.callSites.FindAllStringSubmatch(body, -1) {
		names[m[1]] = struct{}{}
	}
	return names
}

// AssignTargets collects the set of names assigned to in a body, including
// compound assignments.
func (l *Library) AssignTargets(body string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, m := range l.assignTargets.FindAllStringSubmatch(body+"\n", -1) {
		names[m[1]] = struct{}{}
	}
	return names
}

// ContextSimilarity averages the overlap of call names and assignment
// targets between two bodies. Two functions that call the same helpers and
// write the same variables are used in the same context even when their
// bodies drifted apart.
func (l *Library) ContextSimilarity(bodyA, bodyB string) float64 {
	calls := setOverlap(l.CallNames(bodyA), l.CallNames(bodyB))
	assigns := setOverlap(l.AssignTargets(bodyA), l.AssignTargets(bodyB))
	return (calls + assigns) / 2
}

// setOverlap is |A intersect B| / max(|A|, |B|, 1).
func setOverlap(a, b map[string]struct{}) float64 {
	shared := 0
	for k := range a {
		if _, ok := b[k]; ok {
			shared++
		}
	}
	denom := max(len(a), len(b), 1)
	return float64(shared) / float64(denom)
}
