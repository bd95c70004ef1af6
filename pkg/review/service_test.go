package review

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/pkg/history"
	"github.com/inkwell-ai/inkwell/pkg/models"
	testdb "github.com/inkwell-ai/inkwell/test/database"
)

// stubApplier records Apply and MarkManualReview calls.
type stubApplier struct {
	applied      []string // "kind:value" per Apply call
	manualMarked []int
	applyErr     error
}

func (a *stubApplier) Apply(_ context.Context, item *ent.PendingReview, value string) error {
	if a.applyErr != nil {
		return a.applyErr
	}
	a.applied = append(a.applied, string(item.Kind)+":"+value)
	return nil
}

func (a *stubApplier) MarkManualReview(_ context.Context, docID int) error {
	a.manualMarked = append(a.manualMarked, docID)
	return nil
}

func newTestService(t *testing.T) (*Service, *stubApplier) {
	t.Helper()
	client := testdb.NewTestClient(t)
	applier := &stubApplier{}
	recorder := history.NewRecorder(client.Client, true, slog.Default())
	return NewService(client.Client, applier, recorder, slog.Default()), applier
}

func titleRequest(docID int, suggestion string) models.AddReviewRequest {
	return models.AddReviewRequest{
		DocID:      docID,
		DocTitle:   "Scan 0042",
		Kind:       models.ReviewKindTitle,
		Suggestion: suggestion,
		Reasoning:  "best match",
		Attempts:   3,
	}
}

func TestService_AddIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id1, err := svc.Add(ctx, titleRequest(1, "Electricity Invoice"))
	require.NoError(t, err)

	// Same suggestion modulo case and whitespace hits the uniqueness rule
	// and returns the existing item.
	id2, err := svc.Add(ctx, titleRequest(1, "  electricity   INVOICE "))
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	// A different document is a different item.
	id3, err := svc.Add(ctx, titleRequest(2, "Electricity Invoice"))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)

	// A different kind on the same document is a different item.
	req := titleRequest(1, "Electricity Invoice")
	req.Kind = models.ReviewKindTag
	id4, err := svc.Add(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id4)

	items, err := svc.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestService_AddRejectsEmptySuggestion(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), titleRequest(1, ""))
	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestService_ListFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, titleRequest(1, "Title A"))
	require.NoError(t, err)
	req := titleRequest(1, "invoice")
	req.Kind = models.ReviewKindTag
	_, err = svc.Add(ctx, req)
	require.NoError(t, err)
	_, err = svc.Add(ctx, titleRequest(2, "Title B"))
	require.NoError(t, err)

	items, err := svc.List(ctx, models.ReviewKindTitle, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.List(ctx, models.ReviewKindTag, 2)
	require.NoError(t, err)
	assert.Empty(t, items)

	counts, err := svc.CountsByKind(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[models.ReviewKindTitle])
	assert.Equal(t, 1, counts[models.ReviewKindTag])
}

func TestService_Approve(t *testing.T) {
	svc, applier := newTestService(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, titleRequest(1, "Electricity Invoice"))
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, id, nil))
	assert.Equal(t, []string{"title:Electricity Invoice"}, applier.applied)

	// The item is gone after approval.
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	open, err := svc.HasOpenReview(ctx, 1)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestService_ApproveWithOverride(t *testing.T) {
	svc, applier := newTestService(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, titleRequest(1, "Electricity Invoice"))
	require.NoError(t, err)

	edited := "Power Bill March 2024"
	require.NoError(t, svc.Approve(ctx, id, &edited))
	assert.Equal(t, []string{"title:Power Bill March 2024"}, applier.applied)
}

func TestService_ApproveKeepsItemOnApplyFailure(t *testing.T) {
	svc, applier := newTestService(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, titleRequest(1, "Electricity Invoice"))
	require.NoError(t, err)

	applier.applyErr = assert.AnError
	require.Error(t, svc.Approve(ctx, id, nil))

	// Apply failed, so the item stays queued for another attempt.
	_, err = svc.Get(ctx, id)
	assert.NoError(t, err)
}

func TestService_Reject(t *testing.T) {
	svc, applier := newTestService(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, titleRequest(7, "Wrong Title"))
	require.NoError(t, err)

	require.NoError(t, svc.Reject(ctx, id, "completely off"))
	assert.Equal(t, []int{7}, applier.manualMarked)
	assert.Empty(t, applier.applied)

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, titleRequest(1, "Electricity Invoice"))
	require.NoError(t, err)

	edited := "Power Bill"
	item, err := svc.Update(ctx, id, models.UpdateReviewRequest{Suggestion: &edited})
	require.NoError(t, err)
	assert.Equal(t, "Power Bill", item.Suggestion)
	assert.Equal(t, "power bill", item.SuggestionNorm)

	empty := ""
	_, err = svc.Update(ctx, id, models.UpdateReviewRequest{Suggestion: &empty})
	assert.Error(t, err)

	_, err = svc.Update(ctx, "no-such-id", models.UpdateReviewRequest{Suggestion: &edited})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Remove(t *testing.T) {
	svc, applier := newTestService(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, titleRequest(1, "Electricity Invoice"))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, id))
	// Remove has no document side effects.
	assert.Empty(t, applier.applied)
	assert.Empty(t, applier.manualMarked)

	assert.ErrorIs(t, svc.Remove(ctx, id), ErrNotFound)
}

func TestService_SimilarGroups(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Same normalized suggestion across three documents, plus a loner.
	for docID := 1; docID <= 3; docID++ {
		req := titleRequest(docID, "ACME Corp")
		req.Kind = models.ReviewKindCorrespondent
		_, err := svc.Add(ctx, req)
		require.NoError(t, err)
	}
	_, err := svc.Add(ctx, titleRequest(9, "Unique Title"))
	require.NoError(t, err)

	groups, err := svc.SimilarGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "acme corp", groups[0].Suggestion)
	assert.Len(t, groups[0].Items, 3)
}

func TestService_Bulk(t *testing.T) {
	svc, applier := newTestService(t)
	ctx := context.Background()

	id1, err := svc.Add(ctx, titleRequest(1, "Title A"))
	require.NoError(t, err)
	id2, err := svc.Add(ctx, titleRequest(2, "Title B"))
	require.NoError(t, err)

	result := svc.Bulk(ctx, models.BulkReviewRequest{
		IDs:    []string{id1, id2, "missing-id"},
		Action: "approve",
	})
	assert.ElementsMatch(t, []string{id1, id2}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Contains(t, result.Failed, "missing-id")
	assert.Len(t, applier.applied, 2)

	result = svc.Bulk(ctx, models.BulkReviewRequest{IDs: []string{id1}, Action: "defenestrate"})
	assert.Empty(t, result.Succeeded)
	assert.Len(t, result.Failed, 1)
}
