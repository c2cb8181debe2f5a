package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBodyStripsNoise(t *testing.T) {
	lib := DefaultLibrary()

	body := "func load() {\n" +
		"\t// read the config\n" +
		"\tpath = \"/etc/app.yaml\"\n" +
		"\t/* legacy\n\t   fallback */\n" +
		"\tmode = 'strict'\n" +
		"\n" +
		"\t# tail note\n" +
		"}\n"

	got := lib.NormalizeBody(body)
	assert.NotContains(t, got, "read the config")
	assert.NotContains(t, got, "legacy")
	assert.NotContains(t, got, "tail note")
	assert.NotContains(t, got, "/etc/app.yaml")
	assert.Contains(t, got, `""`)
	assert.Contains(t, got, "''")
	assert.NotContains(t, got, "\n\n")
}

func TestNormalizeBodyAssignmentTargets(t *testing.T) {
	lib := DefaultLibrary()

	// Differently named locals normalize to the same text.
	a := lib.NormalizeBody("total = compute(x)\nconst cache = build()\n")
	b := lib.NormalizeBody("sum = compute(x)\nconst store = build()\n")
	assert.Equal(t, a, b)

	// Comparisons keep both equals signs.
	cmp := lib.NormalizeBody("if a == b { run() }\n")
	assert.Contains(t, cmp, "==")
}

func TestNormalizeBodyIdempotent(t *testing.T) {
	lib := DefaultLibrary()

	bodies := []string{
		"",
		"x = 1\n",
		"// only a comment\n",
		"a = \"text\" // trailing\nb = 'c'\nconst d = e\n",
		"if x == y {\n\tz += 1\n}\n",
	}
	for _, body := range bodies {
		once := lib.NormalizeBody(body)
		twice := lib.NormalizeBody(once)
		assert.Equal(t, once, twice, "body %q", body)
	}
}

func TestCallNamesAndAssignTargets(t *testing.T) {
	lib := DefaultLibrary()

	body := "res = fetch(url)\nparse(res)\ncount += 1\n"
	calls := lib.CallNames(body)
	assert.Contains(t, calls, "fetch")
	assert.Contains(t, calls, "parse")
	assert.NotContains(t, calls, "res")

	targets := lib.AssignTargets(body)
	assert.Contains(t, targets, "res")
	assert.Contains(t, targets, "count")
	assert.NotContains(t, targets, "fetch")
}

func TestContextSimilarity(t *testing.T) {
	lib := DefaultLibrary()

	same := lib.ContextSimilarity(
		"a = fetch(x)\nsave(a)\n",
		"b = fetch(y)\nsave(b)\n")
	// Calls overlap fully, assignment targets not at all.
	assert.InDelta(t, 0.5, same, 1e-9)

	disjoint := lib.ContextSimilarity("a = one()\n", "b = two()\n")
	assert.InDelta(t, 0.0, disjoint, 1e-9)

	identical := lib.ContextSimilarity("n = grow(n)\n", "n = grow(n)\n")
	assert.InDelta(t, 1.0, identical, 1e-9)
}
