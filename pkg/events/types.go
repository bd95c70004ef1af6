// Package events provides real-time pipeline event delivery via NDJSON
// streaming over HTTP, with PostgreSQL NOTIFY/LISTEN for cross-process
// distribution and DB-persisted events for reconnect catchup.
package events

import "strconv"

// Pipeline event types, in the order a run emits them.
const (
	EventTypePipelineStart      = "pipeline_start"
	EventTypeStepStart          = "step_start"
	EventTypeStepComplete       = "step_complete"
	EventTypeStepError          = "step_error"
	EventTypeNeedsReview        = "needs_review"
	EventTypeSchemaReviewNeeded = "schema_review_needed"
	EventTypePipelinePaused     = "pipeline_paused"
	EventTypePipelineComplete   = "pipeline_complete"
	EventTypeError              = "error"
)

// GlobalDocsChannel carries every document's events; dashboards subscribe
// here for archive-wide progress.
const GlobalDocsChannel = "docs"

// DocChannel returns the channel name for one document's events.
// Format: "doc:{doc_id}"
func DocChannel(docID int) string {
	return "doc:" + strconv.Itoa(docID)
}
