package models

import "github.com/inkwell-ai/inkwell/ent"

// Review item kinds. These mirror the ent enum on PendingReview.
const (
	ReviewKindTitle            = "title"
	ReviewKindCorrespondent    = "correspondent"
	ReviewKindDocumentType     = "document_type"
	ReviewKindTag              = "tag"
	ReviewKindCustomField      = "custom_field"
	ReviewKindDocumentLink     = "document_link"
	ReviewKindSchemaSuggestion = "schema_suggestion"
)

// AddReviewRequest contains fields for enqueueing a pending review item.
type AddReviewRequest struct {
	DocID        int            `json:"doc_id"`
	DocTitle     string         `json:"doc_title"`
	Kind         string         `json:"kind"`
	Suggestion   string         `json:"suggestion"`
	Reasoning    string         `json:"reasoning,omitempty"`
	Alternatives []string       `json:"alternatives,omitempty"`
	Attempts     int            `json:"attempts"`
	LastFeedback *string        `json:"last_feedback,omitempty"`
	NextTag      *string        `json:"next_tag,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// UpdateReviewRequest edits a queued item before approval.
type UpdateReviewRequest struct {
	Suggestion *string `json:"suggestion,omitempty"`
	Reasoning  *string `json:"reasoning,omitempty"`
}

// ApproveReviewRequest optionally overrides the suggested value at
// approval time.
type ApproveReviewRequest struct {
	Value *string `json:"value,omitempty"`
}

// BulkReviewRequest applies one action to many queued items.
type BulkReviewRequest struct {
	IDs      []string `json:"ids"`
	Action   string   `json:"action"` // "approve" or "reject"
	Feedback string   `json:"feedback,omitempty"`
}

// BulkReviewResult reports per-item outcomes of a bulk action.
type BulkReviewResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"` // id → error
}

// ReviewResponse wraps a PendingReview
type ReviewResponse struct {
	*ent.PendingReview
}

// ReviewListResponse contains a filtered listing of the review queue.
type ReviewListResponse struct {
	Items []*ent.PendingReview `json:"items"`
	Total int                  `json:"total"`
}

// SimilarGroup clusters queued items sharing a normalized suggestion.
type SimilarGroup struct {
	Suggestion string               `json:"suggestion"`
	Items      []*ent.PendingReview `json:"items"`
}

// AddBlocklistRequest adds one normalized suggestion to the blocklist.
type AddBlocklistRequest struct {
	Kind       string `json:"kind"` // review kind or "global"
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason,omitempty"`
}
