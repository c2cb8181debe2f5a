package core

import (
	"context"
	"testing"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fnUnit(lib *Library, name, path, body string) schema.FunctionUnit {
	return schema.FunctionUnit{
		Name:       name,
		Path:       path,
		StartLine:  1,
		Body:       body,
		Normalized: lib.NormalizeBody(body),
		Family:     schema.FunctionFamily,
	}
}

func TestCompareFunctionsIdenticalBodies(t *testing.T) {
	lib := DefaultLibrary()
	th := contract.DefaultThresholds()
	body := "res = fetch(url)\ncheck(res)\nreturn res\n"

	funcs := []schema.FunctionUnit{
		fnUnit(lib, "loadUser", "a.js", body),
		fnUnit(lib, "loadUser", "b.js", body),
	}
	findings := CompareFunctions(context.Background(), lib, th, funcs, 2)
	require.Len(t, findings, 1)
	assert.Equal(t, schema.ImplementationMatch, findings[0].Match)
	assert.Equal(t, schema.HighSeverity, findings[0].Severity)
	assert.GreaterOrEqual(t, findings[0].Similarity, th.NearIdentical)
}

func TestCompareFunctionsDifferentNamesNeverMatch(t *testing.T) {
	lib := DefaultLibrary()
	th := contract.DefaultThresholds()
	body := "res = fetch(url)\ncheck(res)\nreturn res\n"

	// Verbatim-identical bodies under different names stay unreported by
	// the name-bucketed pass.
	funcs := []schema.FunctionUnit{
		fnUnit(lib, "loadUser", "a.js", body),
		fnUnit(lib, "loadAccount", "b.js", body),
	}
	findings := CompareFunctions(context.Background(), lib, th, funcs, 2)
	assert.Empty(t, findings)
}

func TestCompareFunctionsSameFileSkipped(t *testing.T) {
	lib := DefaultLibrary()
	th := contract.DefaultThresholds()
	body := "res = fetch(url)\ncheck(res)\nreturn res\n"

	funcs := []schema.FunctionUnit{
		fnUnit(lib, "loadUser", "a.js", body),
		fnUnit(lib, "loadUser", "a.js", body),
	}
	findings := CompareFunctions(context.Background(), lib, th, funcs, 2)
	assert.Empty(t, findings)
}

func TestCompareFunctionsContextConfirmed(t *testing.T) {
	lib := DefaultLibrary()
	th := contract.DefaultThresholds()

	// Bodies share 4 of 5 normalized lines (ratio 0.8 is not reached once
	// one line differs in a 5+5 comparison: 2*4/10 = 0.8, so make it 3 of
	// 5 for the mid band) and keep identical calls and targets.
	bodyA := "res = fetch(url)\ncheck(res)\nlog(res)\ntag(res)\nreturn res\n"
	bodyB := "res = fetch(url)\ncheck(res)\nextra(res)\nmore(res)\nreturn res\n"

	funcs := []schema.FunctionUnit{
		fnUnit(lib, "loadUser", "a.js", bodyA),
		fnUnit(lib, "loadUser", "b.js", bodyB),
	}
	findings := CompareFunctions(context.Background(), lib, th, funcs, 2)

	ratio := SimilarityRatio(funcs[0].Normalized, funcs[1].Normalized)
	require.GreaterOrEqual(t, ratio, th.SimilarFloor)
	require.Less(t, ratio, th.NearIdentical)

	if lib.ContextSimilarity(bodyA, bodyB) >= th.ContextConfirm {
		require.Len(t, findings, 1)
		assert.Equal(t, schema.ContextMatch, findings[0].Match)
		assert.Equal(t, schema.MediumSeverity, findings[0].Severity)
	} else {
		assert.Empty(t, findings)
	}
}

func TestCompareFunctionsBelowFloorSuppressed(t *testing.T) {
	lib := DefaultLibrary()
	th := contract.DefaultThresholds()

	funcs := []schema.FunctionUnit{
		fnUnit(lib, "handle", "a.js", "one(a)\ntwo(b)\nthree(c)\n"),
		fnUnit(lib, "handle", "b.js", "four(d)\nfive(e)\nsix(f)\n"),
	}
	findings := CompareFunctions(context.Background(), lib, th, funcs, 2)
	assert.Empty(t, findings)
}

func TestCompareFilesNearDuplicate(t *testing.T) {
	th := contract.DefaultThresholds()
	lib := DefaultLibrary()

	textA := "alpha(1)\nbeta(2)\ngamma(3)\ndelta(4)\nepsilon(5)\n"
	textB := "alpha(1)\nbeta(2)\ngamma(3)\ndelta(4)\nchanged(9)\n"
	textC := "totally()\nunrelated()\ncontent()\nhere()\nnow()\n"

	units := []schema.SourceUnit{
		{Path: "a.js", Text: textA},
		{Path: "b.js", Text: textB},
		{Path: "c.js", Text: textC},
	}
	cleaned := map[string]string{
		"a.js": lib.NormalizeBody(textA),
		"b.js": lib.NormalizeBody(textB),
		"c.js": lib.NormalizeBody(textC),
	}

	findings := CompareFiles(context.Background(), th, units, cleaned, 2)
	require.Len(t, findings, 1)
	assert.Equal(t, "a.js", findings[0].PathA)
	assert.Equal(t, "b.js", findings[0].PathB)
	assert.Equal(t, schema.NearDuplicateFiles, findings[0].Kind)
	assert.Greater(t, findings[0].Ratio, th.FileNearDuplicate)
}

func TestCompareFilesDeterministicOrder(t *testing.T) {
	th := contract.DefaultThresholds()
	text := "alpha(1)\nbeta(2)\ngamma(3)\ndelta(4)\n"

	units := []schema.SourceUnit{
		{Path: "x.js", Text: text},
		{Path: "y.js", Text: text},
		{Path: "z.js", Text: text},
	}
	cleaned := map[string]string{"x.js": text, "y.js": text, "z.js": text}

	first := CompareFiles(context.Background(), th, units, cleaned, 4)
	second := CompareFiles(context.Background(), th, units, cleaned, 4)
	assert.Equal(t, first, second)
	require.Len(t, first, 3)
}
