package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/inkwell-ai/inkwell/test/database"
)

func TestPublishAndCatchup(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := NewPublisher(client.DB())
	store := NewStore(client.DB())
	ctx := context.Background()

	require.NoError(t, publisher.Publish(ctx, NewPipelineEvent(EventTypePipelineStart, 7)))
	require.NoError(t, publisher.Publish(ctx, NewPipelineEvent(EventTypeStepStart, 7).WithStep("ocr")))
	require.NoError(t, publisher.Publish(ctx, NewPipelineEvent(EventTypePipelineStart, 8)))

	// Per-document catchup sees only that document's events.
	evts, err := store.CatchupEvents(ctx, DocChannel(7), 0, 100)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, "pipeline_start", evts[0].Payload["type"])
	assert.Equal(t, "step_start", evts[1].Payload["type"])
	assert.Less(t, evts[0].ID, evts[1].ID)

	// The global channel replays every document's events.
	evts, err = store.CatchupEvents(ctx, GlobalDocsChannel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, evts, 3)

	// sinceID resumes after the given row.
	evts, err = store.CatchupEvents(ctx, GlobalDocsChannel, evts[1].ID, 100)
	require.NoError(t, err)
	assert.Len(t, evts, 1)
}

func TestStore_DeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := NewPublisher(client.DB())
	store := NewStore(client.DB())
	ctx := context.Background()

	require.NoError(t, publisher.Publish(ctx, NewPipelineEvent(EventTypePipelineStart, 1)))

	deleted, err := store.DeleteOlderThan(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = store.DeleteOlderThan(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	evts, err := store.CatchupEvents(ctx, GlobalDocsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, evts)
}
