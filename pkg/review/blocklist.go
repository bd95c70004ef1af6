package review

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/ent/blocklistentry"
)

// GlobalKind blocks a suggestion across every review kind.
const GlobalKind = "global"

// Blocklist manages suggestions that must never be proposed again.
// Stage engines consult IsBlocked before proposing a value; matches are
// silently dropped.
type Blocklist struct {
	client *ent.Client
}

// NewBlocklist creates a blocklist service.
func NewBlocklist(client *ent.Client) *Blocklist {
	return &Blocklist{client: client}
}

// Add blocks a suggestion for one kind (or GlobalKind). Adding an
// already-blocked suggestion is a no-op.
func (b *Blocklist) Add(ctx context.Context, kind, suggestion, reason string) error {
	if suggestion == "" {
		return NewValidationError("suggestion", "must not be empty")
	}
	err := b.client.BlocklistEntry.Create().
		SetKind(kind).
		SetSuggestionNorm(Normalize(suggestion)).
		SetReason(reason).
		SetCreatedAt(time.Now()).
		OnConflictColumns(blocklistentry.FieldKind, blocklistentry.FieldSuggestionNorm).
		DoNothing().
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to add blocklist entry: %w", err)
	}
	return nil
}

// Remove unblocks a suggestion for one kind.
func (b *Blocklist) Remove(ctx context.Context, kind, suggestion string) error {
	_, err := b.client.BlocklistEntry.Delete().
		Where(
			blocklistentry.KindEQ(kind),
			blocklistentry.SuggestionNormEQ(Normalize(suggestion)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove blocklist entry: %w", err)
	}
	return nil
}

// IsBlocked reports whether a suggestion is blocked for the given kind,
// either per-kind or globally.
func (b *Blocklist) IsBlocked(ctx context.Context, kind, suggestion string) (bool, error) {
	norm := Normalize(suggestion)
	if norm == "" {
		return false, nil
	}
	exists, err := b.client.BlocklistEntry.Query().
		Where(
			blocklistentry.SuggestionNormEQ(norm),
			blocklistentry.KindIn(kind, GlobalKind),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check blocklist: %w", err)
	}
	return exists, nil
}

// List returns all blocklist entries, newest first.
func (b *Blocklist) List(ctx context.Context) ([]*ent.BlocklistEntry, error) {
	rows, err := b.client.BlocklistEntry.Query().
		Order(ent.Desc(blocklistentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocklist entries: %w", err)
	}
	return rows, nil
}
