package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-ai/inkwell/pkg/config"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		ok       bool
	}{
		{
			name:     "bare object",
			text:     `{"title": "Invoice"}`,
			expected: `{"title": "Invoice"}`,
			ok:       true,
		},
		{
			name:     "object wrapped in prose",
			text:     "Here is my answer:\n{\"title\": \"Invoice\"}\nHope that helps.",
			expected: `{"title": "Invoice"}`,
			ok:       true,
		},
		{
			name:     "code fence",
			text:     "```json\n{\"title\": \"Invoice\"}\n```",
			expected: `{"title": "Invoice"}`,
			ok:       true,
		},
		{
			name:     "nested objects",
			text:     `{"a": {"b": {"c": 1}}}`,
			expected: `{"a": {"b": {"c": 1}}}`,
			ok:       true,
		},
		{
			name:     "braces inside string literals",
			text:     `{"title": "Contract {draft}", "note": "b\"race}"}`,
			expected: `{"title": "Contract {draft}", "note": "b\"race}"}`,
			ok:       true,
		},
		{
			name: "unbalanced object",
			text: `{"title": "Invoice"`,
			ok:   false,
		},
		{
			name: "no object at all",
			text: "plain prose answer",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseAnalysis_StructuredJSON(t *testing.T) {
	a := ParseAnalysis(`{"suggestion": "Electricity Invoice March", "reasoning": "header says so", "confidence": 0.92, "alternatives": ["Power Bill"]}`)
	assert.Equal(t, "Electricity Invoice March", a.Suggestion)
	assert.Equal(t, "header says so", a.Reasoning)
	assert.InDelta(t, 0.92, a.Confidence, 1e-9)
	assert.Equal(t, []string{"Power Bill"}, a.Alternatives)
}

func TestParseAnalysis_AlternateFieldNames(t *testing.T) {
	// Models answer with "title", "value" or "name" depending on the
	// question; all map onto the suggestion.
	assert.Equal(t, "ACME Corp", ParseAnalysis(`{"name": "ACME Corp"}`).Suggestion)
	assert.Equal(t, "Invoice", ParseAnalysis(`{"title": "Invoice"}`).Suggestion)
	assert.Equal(t, "2024-03-01", ParseAnalysis(`{"value": "2024-03-01"}`).Suggestion)
}

func TestParseAnalysis_ConfidenceClamped(t *testing.T) {
	assert.Equal(t, 1.0, ParseAnalysis(`{"suggestion": "x", "confidence": 7}`).Confidence)
	assert.Equal(t, 0.0, ParseAnalysis(`{"suggestion": "x", "confidence": -1}`).Confidence)
	// Missing confidence defaults to 0.5.
	assert.Equal(t, 0.5, ParseAnalysis(`{"suggestion": "x"}`).Confidence)
}

func TestParseAnalysis_TextFallback(t *testing.T) {
	a := ParseAnalysis("```\n\"Electricity Invoice March\"\n```")
	assert.Equal(t, "Electricity Invoice March", a.Suggestion)
	assert.Equal(t, 0.3, a.Confidence)

	a = ParseAnalysis("   \n\n")
	assert.Empty(t, a.Suggestion)
	assert.Equal(t, 0.0, a.Confidence)
}

func TestParseAnalysis_JSONWithoutSuggestionFallsBack(t *testing.T) {
	a := ParseAnalysis(`{"verdict": "unclear"}`)
	assert.Equal(t, `{"verdict": "unclear"}`, a.Suggestion)
	assert.Equal(t, 0.3, a.Confidence)
}

func TestParseVerdict(t *testing.T) {
	keywords := config.DefaultApprovalKeywords

	tests := []struct {
		name      string
		raw       string
		confirmed bool
		feedback  string
	}{
		{
			name:      "plain yes",
			raw:       "Yes.",
			confirmed: true,
		},
		{
			name:      "keyword inside sentence",
			raw:       "The suggestion looks CORRECT to me",
			confirmed: true,
		},
		{
			name:     "rejection becomes feedback",
			raw:      "No, the sender is the bank, not the insurer.",
			feedback: "No, the sender is the bank, not the insurer.",
		},
		{
			name:     "empty response is a rejection",
			raw:      "   ",
			feedback: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseVerdict(tt.raw, keywords)
			assert.Equal(t, tt.confirmed, v.Confirmed)
			if !tt.confirmed {
				assert.Equal(t, tt.feedback, v.Feedback)
			}
		})
	}
}

func TestParseVerdict_CustomKeywords(t *testing.T) {
	v := ParseVerdict("ja, passt", []string{"ja", "passt"})
	assert.True(t, v.Confirmed)

	v = ParseVerdict("yes", []string{"ja"})
	assert.False(t, v.Confirmed)
	assert.Equal(t, "yes", v.Feedback)
}
