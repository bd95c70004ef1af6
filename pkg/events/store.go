package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Store answers catchup queries from the events table. Implements
// CatchupQuerier.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over the shared database pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CatchupEvents returns up to limit events on a channel with id > sinceID,
// oldest first. Rows are persisted under their document channel; the
// global channel replays every document's events.
func (s *Store) CatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payload FROM events WHERE ($1 = '`+GlobalDocsChannel+`' OR channel = $1) AND id > $2 ORDER BY id ASC LIMIT $3`,
		channel, sinceID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}
	defer rows.Close()

	var out []CatchupEvent
	for rows.Next() {
		var (
			id      int64
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan catchup event: %w", err)
		}
		var m map[string]any
		if err := json.Unmarshal(payload, &m); err != nil {
			continue
		}
		out = append(out, CatchupEvent{ID: id, Payload: m})
	}
	return out, rows.Err()
}

// DeleteOlderThan removes persisted events older than the retention
// window. Called by the retention maintenance job.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return res.RowsAffected()
}
