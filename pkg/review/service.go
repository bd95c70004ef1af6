// Package review implements the durable human review queue. Values the
// confirmation loop could not ratify, and net-new entity names when
// policy forbids auto-creation, wait here until a human approves,
// edits, or rejects them.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/ent/pendingreview"
	"github.com/inkwell-ai/inkwell/pkg/history"
	"github.com/inkwell-ai/inkwell/pkg/models"
)

// Service manages the review queue.
type Service struct {
	client   *ent.Client
	applier  Applier
	recorder *history.Recorder
	logger   *slog.Logger
}

// Applier applies an approved value to the document and resumes the
// pipeline. Implemented by the pipeline's approval resolver; decoupled
// here so the queue has no dependency on stage code.
type Applier interface {
	// Apply writes the approved value to the DMS for the given item and
	// adds nextTag when non-empty.
	Apply(ctx context.Context, item *ent.PendingReview, value string) error

	// MarkManualReview tags the document for manual handling after a
	// rejection.
	MarkManualReview(ctx context.Context, docID int) error
}

// NewService creates a review service.
func NewService(client *ent.Client, applier Applier, recorder *history.Recorder, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		applier:  applier,
		recorder: recorder,
		logger:   logger.With("component", "review"),
	}
}

// Add enqueues a review item. Idempotent per the uniqueness rule: a
// second Add with the same (doc, kind, normalized suggestion) returns
// the existing item's id without error.
func (s *Service) Add(ctx context.Context, req models.AddReviewRequest) (string, error) {
	if req.Suggestion == "" {
		return "", NewValidationError("suggestion", "must not be empty")
	}
	norm := Normalize(req.Suggestion)

	create := s.client.PendingReview.Create().
		SetID(uuid.New().String()).
		SetDocID(req.DocID).
		SetDocTitle(req.DocTitle).
		SetKind(pendingreview.Kind(req.Kind)).
		SetSuggestion(req.Suggestion).
		SetSuggestionNorm(norm).
		SetReasoning(req.Reasoning).
		SetAttempts(req.Attempts).
		SetCreatedAt(time.Now())
	if len(req.Alternatives) > 0 {
		create.SetAlternatives(req.Alternatives)
	}
	if req.LastFeedback != nil {
		create.SetLastFeedback(*req.LastFeedback)
	}
	if req.NextTag != nil {
		create.SetNextTag(*req.NextTag)
	}
	if len(req.Metadata) > 0 {
		create.SetMetadata(req.Metadata)
	}

	item, err := create.Save(ctx)
	if err == nil {
		s.recorder.Record(ctx, req.DocID, "review", "enqueued", map[string]any{
			"review_id":  item.ID,
			"kind":       req.Kind,
			"suggestion": req.Suggestion,
		})
		return item.ID, nil
	}
	if !ent.IsConstraintError(err) {
		return "", fmt.Errorf("failed to enqueue review item: %w", err)
	}

	existing, lookupErr := s.client.PendingReview.Query().
		Where(
			pendingreview.DocIDEQ(req.DocID),
			pendingreview.KindEQ(pendingreview.Kind(req.Kind)),
			pendingreview.SuggestionNormEQ(norm),
		).
		Only(ctx)
	if lookupErr != nil {
		return "", fmt.Errorf("failed to look up existing review item: %w", lookupErr)
	}
	return existing.ID, nil
}

// Get returns one review item.
func (s *Service) Get(ctx context.Context, id string) (*ent.PendingReview, error) {
	item, err := s.client.PendingReview.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get review item: %w", err)
	}
	return item, nil
}

// List returns queue items, newest first, optionally filtered by kind
// and document.
func (s *Service) List(ctx context.Context, kind string, docID int) ([]*ent.PendingReview, error) {
	q := s.client.PendingReview.Query()
	if kind != "" {
		q = q.Where(pendingreview.KindEQ(pendingreview.Kind(kind)))
	}
	if docID > 0 {
		q = q.Where(pendingreview.DocIDEQ(docID))
	}
	items, err := q.Order(ent.Desc(pendingreview.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list review items: %w", err)
	}
	return items, nil
}

// CountsByKind returns the open item count per kind.
func (s *Service) CountsByKind(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
	}
	err := s.client.PendingReview.Query().
		GroupBy(pendingreview.FieldKind).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count review items: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}

// Update edits a queued item's suggestion or reasoning before approval.
// Editing the suggestion re-normalizes it.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateReviewRequest) (*ent.PendingReview, error) {
	update := s.client.PendingReview.UpdateOneID(id)
	if req.Suggestion != nil {
		if *req.Suggestion == "" {
			return nil, NewValidationError("suggestion", "must not be empty")
		}
		update.SetSuggestion(*req.Suggestion).SetSuggestionNorm(Normalize(*req.Suggestion))
	}
	if req.Reasoning != nil {
		update.SetReasoning(*req.Reasoning)
	}
	item, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to update review item: %w", err)
	}
	return item, nil
}

// Remove deletes a queued item without any document side effects.
func (s *Service) Remove(ctx context.Context, id string) error {
	err := s.client.PendingReview.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return fmt.Errorf("failed to remove review item: %w", err)
	}
	return nil
}

// SimilarGroups clusters queued items by normalized suggestion so a
// human can resolve near-duplicate suggestions across documents in one
// action. Groups with a single item are omitted.
func (s *Service) SimilarGroups(ctx context.Context) ([]models.SimilarGroup, error) {
	items, err := s.client.PendingReview.Query().
		Order(ent.Asc(pendingreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list review items: %w", err)
	}

	byNorm := make(map[string][]*ent.PendingReview)
	for _, item := range items {
		byNorm[item.SuggestionNorm] = append(byNorm[item.SuggestionNorm], item)
	}

	var groups []models.SimilarGroup
	for norm, grouped := range byNorm {
		if len(grouped) < 2 {
			continue
		}
		groups = append(groups, models.SimilarGroup{Suggestion: norm, Items: grouped})
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Items) != len(groups[j].Items) {
			return len(groups[i].Items) > len(groups[j].Items)
		}
		return groups[i].Suggestion < groups[j].Suggestion
	})
	return groups, nil
}

// Approve applies a queued item to its document and removes it. A
// non-nil valueOverride replaces the suggested value.
func (s *Service) Approve(ctx context.Context, id string, valueOverride *string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	value := item.Suggestion
	if valueOverride != nil && *valueOverride != "" {
		value = *valueOverride
	}

	if err := s.applier.Apply(ctx, item, value); err != nil {
		return fmt.Errorf("failed to apply approved value: %w", err)
	}

	s.recorder.Record(ctx, item.DocID, "review", "approved", map[string]any{
		"review_id": item.ID,
		"kind":      string(item.Kind),
		"value":     value,
	})

	if err := s.client.PendingReview.DeleteOneID(id).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to remove approved review item: %w", err)
	}
	return nil
}

// Reject tags the document for manual review, records the feedback, and
// removes the item.
func (s *Service) Reject(ctx context.Context, id, feedback string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.applier.MarkManualReview(ctx, item.DocID); err != nil {
		return fmt.Errorf("failed to tag document for manual review: %w", err)
	}

	s.recorder.Record(ctx, item.DocID, "review", "rejected", map[string]any{
		"review_id":  item.ID,
		"kind":       string(item.Kind),
		"suggestion": item.Suggestion,
		"feedback":   feedback,
	})

	if err := s.client.PendingReview.DeleteOneID(id).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to remove rejected review item: %w", err)
	}
	return nil
}

// Bulk applies one action to many items. Items are processed
// independently; one failure does not stop the rest.
func (s *Service) Bulk(ctx context.Context, req models.BulkReviewRequest) models.BulkReviewResult {
	result := models.BulkReviewResult{Failed: make(map[string]string)}
	for _, id := range req.IDs {
		var err error
		switch req.Action {
		case "approve":
			err = s.Approve(ctx, id, nil)
		case "reject":
			err = s.Reject(ctx, id, req.Feedback)
		default:
			err = NewValidationError("action", "must be 'approve' or 'reject'")
		}
		if err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	if len(result.Failed) == 0 {
		result.Failed = nil
	}
	return result
}

// HasOpenReview reports whether the document has any queued item, which
// bars it from scheduler admission.
func (s *Service) HasOpenReview(ctx context.Context, docID int) (bool, error) {
	exists, err := s.client.PendingReview.Query().
		Where(pendingreview.DocIDEQ(docID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check open reviews: %w", err)
	}
	return exists, nil
}
