package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingForIndex(t *testing.T) {
	tests := []struct {
		index float64
		want  MaintainabilityRating
	}{
		{100, HighlyMaintainable},
		{76, HighlyMaintainable}, // band boundary
		{75.9, ModeratelyMaintainable},
		{51, ModeratelyMaintainable}, // band boundary
		{50.9, DifficultToMaintain},
		{0, DifficultToMaintain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RatingForIndex(tt.index), "index %v", tt.index)
	}
}

func TestMaxSeverity(t *testing.T) {
	tests := []struct {
		a, b, want Severity
	}{
		{LowSeverity, LowSeverity, LowSeverity},
		{LowSeverity, MediumSeverity, MediumSeverity},
		{HighSeverity, MediumSeverity, HighSeverity},
		{MediumSeverity, HighSeverity, HighSeverity},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxSeverity(tt.a, tt.b))
	}
}

func TestLanguageForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Language
	}{
		{".py", PythonLang},
		{".tsx", TypeScriptLang},
		{".jsx", JavaScriptLang},
		{".go", GoLang},
		{".rb", RubyLang},
		{".hpp", CLang},
		{".xyz", GenericLang},
		{"", GenericLang},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LanguageForExtension(tt.ext), "ext %q", tt.ext)
	}
}
