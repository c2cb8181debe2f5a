package core

import (
	"regexp"

	"github.com/smellscan/smellscan/schema"
)

// BodyStyle describes how a function body is delimited after its signature.
type BodyStyle int

// All body styles supported.
const (
	BraceBody  BodyStyle = iota // body runs until the opening brace balances
	IndentBody                  // body runs while lines are indented past the signature
)

// SignaturePattern describes one way a language introduces a function.
// Capture group 1 is always the function name.
type SignaturePattern struct {
	Family schema.PatternFamily
	Re     *regexp.Regexp
	Body   BodyStyle
}

// weightedPattern pairs a cognitive pattern with its weight. Order matters:
// earlier patterns must be checked first so that 'else if' is not double
// counted as a plain 'if' by the weighted scorer.
type weightedPattern struct {
	re     *regexp.Regexp
	weight int
}

// Library is the immutable pattern collection every estimator reads from.
// It is built once at package load and never mutated afterwards.
type Library struct {
	decision  []*regexp.Regexp
	cognitive []weightedPattern

	operatorRuns *regexp.Regexp
	keywordOps   *regexp.Regexp
	operands     *regexp.Regexp

	signatures map[schema.Language][]SignaturePattern
	skipNames  map[string]struct{}

	lineComment  *regexp.Regexp
	hashComment  *regexp.Regexp
	blockComment *regexp.Regexp
	doubleQuoted *regexp.Regexp
	singleQuoted *regexp.Regexp
	declAssign   *regexp.Regexp
	plainAssign  *regexp.Regexp

	callSites     *regexp.Regexp
	assignTargets *regexp.Regexp
}

// defaultLibrary is the single shared instance. Callers get read-only access
// through DefaultLibrary.
var defaultLibrary = buildLibrary()

// DefaultLibrary returns the shared immutable pattern library.
func DefaultLibrary() *Library {
	return defaultLibrary
}

// buildLibrary compiles every pattern in the library. All patterns are
// literals known at build time, so compilation cannot fail at runtime.
func buildLibrary() *Library {
	lib := &Library{
		decision: []*regexp.Regexp{
			regexp.MustCompile(`\bif\b`),
			regexp.MustCompile(`\belse\b`),
			regexp.MustCompile(`\bfor\b`),
			regexp.MustCompile(`\bwhile\b`),
			regexp.MustCompile(`\bcase\b`),
			regexp.MustCompile(`\bcatch\b`),
			regexp.MustCompile(`&&`),
			regexp.MustCompile(`\|\|`),
		},
		cognitive: []weightedPattern{
			{regexp.MustCompile(`\belse\s+if\b|\belseif\b|\belif\b`), 2},
			{regexp.MustCompile(`\bif\b`), 1},
			{regexp.MustCompile(`\bfor\b`), 1},
			{regexp.MustCompile(`\bwhile\b`), 1},
			{regexp.MustCompile(`\bcatch\b`), 1},
			{regexp.MustCompile(`\?`), 1},
			{regexp.MustCompile(`&&|\|\|`), 1},
		},

		operatorRuns: regexp.MustCompile(`[+\-*/=<>!&|^~%]+`),
		keywordOps: regexp.MustCompile(
			`\b(?:if|else|for|while|do|switch|case|break|continue|return|try|catch|throw)\b`),
		operands: regexp.MustCompile(`[a-zA-Z_]\w*|\d+|"[^"]*"|'[^']*'`),

		lineComment:  regexp.MustCompile(`(?m)//.*$`),
		hashComment:  regexp.MustCompile(`(?m)#.*$`),
		blockComment: regexp.MustCompile(`(?s)/\*.*?\*/`),
		doubleQuoted: regexp.MustCompile(`"[^"]*"`),
		singleQuoted: regexp.MustCompile(`'[^']*'`),
		declAssign:   regexp.MustCompile(`\b(?:const|let|var)\s+\w+\s*=`),
		plainAssign:  regexp.MustCompile(`\b\w+\s*=([^=])`),

		callSites:     regexp.MustCompile(`\b(\w+)\s*\(`),
		assignTargets: regexp.MustCompile(`\b(\w+)\s*[+\-]?=[^=]`),
	}

	lib.signatures = buildSignatures()
	lib.skipNames = buildSkipNames()
	return lib
}

// buildSignatures maps each language to its signature families.
func buildSignatures() map[schema.Language][]SignaturePattern {
	python := []SignaturePattern{
		{
			Family: schema.FunctionFamily,
			Re:     regexp.MustCompile(`(?m)^[ \t]*(?:async\s+)?def\s+(\w+)\s*\(`),
			Body:   IndentBody,
		},
	}
	javascript := []SignaturePattern{
		{
			Family: schema.FunctionFamily,
			Re:     regexp.MustCompile(`(?m)\bfunction\s+(\w+)\s*\(`),
			Body:   BraceBody,
		},
		{
			Family: schema.ArrowFamily,
			Re:     regexp.MustCompile(`(?m)\b(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s*)?\([^)]*\)\s*=>`),
			Body:   BraceBody,
		},
		{
			Family: schema.MethodFamily,
			Re:     regexp.MustCompile(`(?m)^[ \t]+(?:async\s+)?(\w+)\s*\([^)]*\)\s*\{`),
			Body:   BraceBody,
		},
	}
	golang := []SignaturePattern{
		{
			Family: schema.FunctionFamily,
			Re:     regexp.MustCompile(`(?m)^func\s+(\w+)\s*\(`),
			Body:   BraceBody,
		},
		{
			Family: schema.MethodFamily,
			Re:     regexp.MustCompile(`(?m)^func\s+\([^)]+\)\s+(\w+)\s*\(`),
			Body:   BraceBody,
		},
	}
	java := []SignaturePattern{
		{
			Family: schema.MethodFamily,
			Re: regexp.MustCompile(
				`(?m)^[ \t]*(?:(?:public|private|protected|static|final|synchronized|abstract|override)\s+)*[\w<>\[\],\s]+?\s+(\w+)\s*\([^)]*\)\s*\{`),
			Body: BraceBody,
		},
	}
	ruby := []SignaturePattern{
		{
			Family: schema.FunctionFamily,
			Re:     regexp.MustCompile(`(?m)^[ \t]*def\s+(\w+)`),
			Body:   IndentBody,
		},
	}
	c := []SignaturePattern{
		{
			Family: schema.FunctionFamily,
			Re:     regexp.MustCompile(`(?m)^[\w\*][\w\s\*]*?\b(\w+)\s*\([^;]*?\)\s*\{`),
			Body:   BraceBody,
		},
	}
	php := []SignaturePattern{
		{
			Family: schema.FunctionFamily,
			Re:     regexp.MustCompile(`(?mi)\bfunction\s+(\w+)\s*\(`),
			Body:   BraceBody,
		},
	}

	return map[schema.Language][]SignaturePattern{
		schema.PythonLang:     python,
		schema.JavaScriptLang: javascript,
		schema.TypeScriptLang: javascript,
		schema.GoLang:         golang,
		schema.JavaLang:       java,
		schema.CSharpLang:     java,
		schema.RubyLang:       ruby,
		schema.CLang:          c,
		schema.PHPLang:        php,
	}
}

// buildSkipNames lists framework lifecycle and boilerplate names whose
// duplication is expected rather than suspicious.
func buildSkipNames() map[string]struct{} {
	names := []string{
		"getLayout", "getInitialProps", "getStaticProps", "getServerSideProps",
		"useEffect", "useState", "useMemo", "useCallback",
		"init", "setup", "configure", "getConfig", "getData",
		"__init__", "__str__", "__repr__", "__len__",
		"toString", "setUp", "tearDown", "beforeEach", "afterEach",
		"layout", "loading", "error", "notFound",
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// SignaturesFor returns the signature patterns for a language. Generic files
// have none, which disables extraction but not the line-based metrics.
func (l *Library) SignaturesFor(lang schema.Language) []SignaturePattern {
	return l.signatures[lang]
}

// ShouldSkipName reports whether a function name is on the boilerplate
// allow-list.
func (l *Library) ShouldSkipName(name string) bool {
	_, ok := l.skipNames[name]
	return ok
}
