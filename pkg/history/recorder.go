// Package history records the append-only processing log.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/ent/processinglog"
)

// Recorder appends and queries processing log entries.
type Recorder struct {
	client  *ent.Client
	enabled bool
	logger  *slog.Logger
}

// NewRecorder creates a recorder. When enabled is false, Record becomes a
// no-op (debug.save_processing_history).
func NewRecorder(client *ent.Client, enabled bool, logger *slog.Logger) *Recorder {
	return &Recorder{client: client, enabled: enabled, logger: logger.With("component", "history")}
}

// Record appends one entry. Failures are logged, never propagated: the
// audit trail must not break the pipeline.
func (r *Recorder) Record(ctx context.Context, docID int, step, eventType string, data map[string]any) {
	if !r.enabled {
		return
	}
	_, err := r.client.ProcessingLog.Create().
		SetDocID(docID).
		SetStep(step).
		SetEventType(eventType).
		SetData(data).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Warn("Failed to record processing log entry",
			"doc_id", docID, "step", step, "event_type", eventType, "error", err)
	}
}

// ByDoc returns a document's log entries, oldest first.
func (r *Recorder) ByDoc(ctx context.Context, docID int) ([]*ent.ProcessingLog, error) {
	rows, err := r.client.ProcessingLog.Query().
		Where(processinglog.DocIDEQ(docID)).
		Order(ent.Asc(processinglog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query processing log: %w", err)
	}
	return rows, nil
}

// DeleteOlderThan removes entries past the retention window.
func (r *Recorder) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := r.client.ProcessingLog.Delete().
		Where(processinglog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old processing log entries: %w", err)
	}
	return count, nil
}
