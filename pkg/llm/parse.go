package llm

import (
	"encoding/json"
	"strings"

	"github.com/inkwell-ai/inkwell/pkg/models"
)

// ExtractJSON returns the outermost brace-balanced JSON object in text,
// skipping braces inside string literals. Returns false when no complete
// object is present. Models often wrap JSON in prose or code fences;
// this digs it out.
func ExtractJSON(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// rawAnalysis tolerates the field spellings models actually produce.
type rawAnalysis struct {
	Suggestion   string   `json:"suggestion"`
	Title        string   `json:"title"`
	Value        string   `json:"value"`
	Name         string   `json:"name"`
	Reasoning    string   `json:"reasoning"`
	Confidence   *float64 `json:"confidence"`
	Alternatives []string `json:"alternatives"`
}

// ParseAnalysis converts raw model output into an Analysis. It never
// fails: structured JSON parses exactly; anything else falls back to
// deterministic text extraction with low confidence. A parse that had to
// guess never reports confidence above 0.5.
func ParseAnalysis(raw string) models.Analysis {
	raw = strings.TrimSpace(raw)

	if obj, ok := ExtractJSON(raw); ok {
		var ra rawAnalysis
		if err := json.Unmarshal([]byte(obj), &ra); err == nil {
			suggestion := firstNonEmpty(ra.Suggestion, ra.Title, ra.Value, ra.Name)
			if suggestion != "" {
				confidence := 0.5
				if ra.Confidence != nil {
					confidence = clamp01(*ra.Confidence)
				}
				return models.Analysis{
					Suggestion:   strings.TrimSpace(suggestion),
					Reasoning:    strings.TrimSpace(ra.Reasoning),
					Confidence:   confidence,
					Alternatives: ra.Alternatives,
				}
			}
		}
	}

	// Fallback: first non-empty line, stripped of code fences and quotes.
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "```json")
		line = strings.Trim(line, "`\"' ")
		if line == "" {
			continue
		}
		return models.Analysis{Suggestion: line, Confidence: 0.3}
	}
	return models.Analysis{Confidence: 0}
}

// ParseVerdict interprets the reviewer's response. The verdict is
// confirmed iff the response contains one of the approval keywords,
// case-insensitively; the remainder becomes feedback for the next
// attempt.
func ParseVerdict(raw string, approvalKeywords []string) models.Verdict {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	for _, keyword := range approvalKeywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, strings.ToLower(keyword)) {
			return models.Verdict{Confirmed: true}
		}
	}

	return models.Verdict{Confirmed: false, Feedback: strings.TrimSpace(raw)}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
