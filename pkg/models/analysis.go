// Package models defines the shared data transfer types exchanged between
// the pipeline, the review queue, and the HTTP API.
package models

// Analysis is the analyst model's proposal for one metadata value.
type Analysis struct {
	// Suggestion is the proposed value (title text, entity name, tag name,
	// custom field value as string).
	Suggestion string `json:"suggestion"`

	// Reasoning is the model's stated justification, carried into the
	// review queue when the loop does not converge.
	Reasoning string `json:"reasoning,omitempty"`

	// Confidence in [0,1]. Best-effort parses of malformed output are
	// capped at 0.5.
	Confidence float64 `json:"confidence"`

	// Alternatives are secondary candidates, shown to human reviewers.
	Alternatives []string `json:"alternatives,omitempty"`

	// AttemptsUsed counts confirmation-loop iterations consumed to produce
	// this analysis.
	AttemptsUsed int `json:"attempts_used,omitempty"`
}

// Verdict is the reviewer model's ruling on a proposed value.
type Verdict struct {
	// Confirmed is true iff the response contained an approval keyword.
	Confirmed bool `json:"confirmed"`

	// Feedback is the remainder of the response, fed back to the analyst
	// on the next attempt.
	Feedback string `json:"feedback,omitempty"`
}

// SchemaSuggestion is one net-new entity proposed by the schema-analysis
// stage. It is persisted as a pending review of kind schema_suggestion with
// the entity kind in metadata.
type SchemaSuggestion struct {
	EntityKind        string  `json:"entity_kind"` // correspondent|document_type|tag
	SuggestedName     string  `json:"suggested_name"`
	Confidence        float64 `json:"confidence"`
	SimilarToExisting string  `json:"similar_to_existing,omitempty"`
}
