package models

// Stage identifies one pipeline stage.
type Stage string

// Pipeline stages in execution order. Pending and Processed are terminal
// markers rather than runnable stages.
const (
	StagePending        Stage = "pending"
	StageOCR            Stage = "ocr"
	StageSummary        Stage = "summary"
	StageSchemaAnalysis Stage = "schema_analysis"
	StageTitle          Stage = "title"
	StageCorrespondent  Stage = "correspondent"
	StageDocumentType   Stage = "document_type"
	StageTags           Stage = "tags"
	StageCustomFields   Stage = "custom_fields"
	StageDocumentLinks  Stage = "document_links"
	StageProcessed      Stage = "processed"
)

// PipelineResult is the batch-mode outcome of one document run.
type PipelineResult struct {
	DocID              int      `json:"doc_id"`
	Steps              []string `json:"steps"`
	Success            bool     `json:"success"`
	NeedsReview        bool     `json:"needs_review"`
	SchemaReviewNeeded bool     `json:"schema_review_needed"`
	Error              string   `json:"error,omitempty"`
}

// StageRunRequest invokes one named stage ad hoc.
type StageRunRequest struct {
	Stage string `json:"stage"`
}

// BulkIngestRequest starts a rate-limited run over many documents.
type BulkIngestRequest struct {
	DocIDs []int `json:"doc_ids,omitempty"` // empty = whole pending corpus

	// RatePerSecond overrides maintenance.bulk_ingest_rate when > 0.
	RatePerSecond float64 `json:"rate_per_second,omitempty"`
}
