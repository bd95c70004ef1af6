package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher publishes pipeline events for NDJSON delivery. Every event is
// stored in the events table then broadcast via NOTIFY in a single
// transaction (pg_notify is transactional and fires on COMMIT), so a
// delivered notification always has a persisted row behind it for
// catchup.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish persists the event and notifies both the document channel and
// the global docs channel.
func (p *Publisher) Publish(ctx context.Context, event PipelineEvent) error {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline event: %w", err)
	}
	return p.persistAndNotify(ctx, event.DocID, DocChannel(event.DocID), payloadJSON)
}

// persistAndNotify writes the event row and fires pg_notify on the
// document channel and the global channel within one transaction.
func (p *Publisher) persistAndNotify(ctx context.Context, docID int, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (doc_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		docID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	for _, ch := range []string{channel, GlobalDocsChannel} {
		if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", ch, notifyPayload); err != nil {
			return fmt.Errorf("pg_notify failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the payload for NOTIFY
// delivery and truncates when the result exceeds PostgreSQL's 8000-byte
// NOTIFY limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	if len(enriched) <= 7900 {
		return string(enriched), nil
	}
	return buildTruncatedPayload(m, dbEventID)
}

// buildTruncatedPayload keeps only routing fields so the client can fetch
// the full event from the catchup endpoint.
func buildTruncatedPayload(m map[string]any, dbEventID int64) (string, error) {
	truncated := map[string]any{
		"type":        m["type"],
		"doc_id":      m["doc_id"],
		"db_event_id": dbEventID,
		"truncated":   true,
	}
	data, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(data), nil
}
