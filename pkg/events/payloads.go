package events

import "time"

// PipelineEvent is the wire shape of one pipeline event. Stream mode
// guarantees the ordering grammar: pipeline_start, then per-step
// step_start followed by step_complete or step_error, interleaved with
// needs_review / schema_review_needed as they occur, closed by exactly
// one of pipeline_complete, pipeline_paused, or error.
type PipelineEvent struct {
	Type      string         `json:"type"`
	DocID     int            `json:"doc_id"`
	Step      string         `json:"step,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Message   string         `json:"message,omitempty"`
	Timestamp time.Time      `json:"timestamp"`

	// DBEventID is the persisted event row id, injected on NOTIFY and
	// catchup delivery so clients can track their stream position.
	DBEventID int64 `json:"db_event_id,omitempty"`
}

// NewPipelineEvent stamps an event with the current time.
func NewPipelineEvent(eventType string, docID int) PipelineEvent {
	return PipelineEvent{Type: eventType, DocID: docID, Timestamp: time.Now().UTC()}
}

// WithStep sets the step name.
func (e PipelineEvent) WithStep(step string) PipelineEvent {
	e.Step = step
	return e
}

// WithData sets the data map.
func (e PipelineEvent) WithData(data map[string]any) PipelineEvent {
	e.Data = data
	return e
}

// WithMessage sets the human-readable message.
func (e PipelineEvent) WithMessage(message string) PipelineEvent {
	e.Message = message
	return e
}
