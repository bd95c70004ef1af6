package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/inkwell-ai/inkwell/test/database"
)

func TestJobStore(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewJobStore(client.Client)
	ctx := context.Background()

	state, err := store.Ensure(ctx, AutoProcessingJob)
	require.NoError(t, err)
	assert.Equal(t, AutoProcessingJob, state.ID)
	assert.False(t, state.Paused)
	assert.Zero(t, state.ProcessedSinceStart)

	// Ensure is idempotent.
	again, err := store.Ensure(ctx, AutoProcessingJob)
	require.NoError(t, err)
	assert.Equal(t, state.ID, again.ID)

	require.NoError(t, store.Heartbeat(ctx, AutoProcessingJob))
	state, err = store.Get(ctx, AutoProcessingJob)
	require.NoError(t, err)
	require.NotNil(t, state.LastCheckAt)
}

func TestJobStore_ProcessingLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewJobStore(client.Client)
	ctx := context.Background()

	_, err := store.Ensure(ctx, AutoProcessingJob)
	require.NoError(t, err)

	docID := 42
	require.NoError(t, store.SetProcessing(ctx, AutoProcessingJob, &docID))
	state, err := store.Get(ctx, AutoProcessingJob)
	require.NoError(t, err)
	require.NotNil(t, state.CurrentlyProcessingDocID)
	assert.Equal(t, 42, *state.CurrentlyProcessingDocID)

	require.NoError(t, store.RecordOutcome(ctx, AutoProcessingJob, true))
	state, err = store.Get(ctx, AutoProcessingJob)
	require.NoError(t, err)
	assert.Nil(t, state.CurrentlyProcessingDocID)
	assert.Equal(t, 1, state.ProcessedSinceStart)
	assert.Zero(t, state.ErrorsSinceStart)

	require.NoError(t, store.RecordOutcome(ctx, AutoProcessingJob, false))
	state, err = store.Get(ctx, AutoProcessingJob)
	require.NoError(t, err)
	assert.Equal(t, 1, state.ProcessedSinceStart)
	assert.Equal(t, 1, state.ErrorsSinceStart)

	// Clearing the in-flight marker explicitly.
	require.NoError(t, store.SetProcessing(ctx, AutoProcessingJob, &docID))
	require.NoError(t, store.SetProcessing(ctx, AutoProcessingJob, nil))
	state, err = store.Get(ctx, AutoProcessingJob)
	require.NoError(t, err)
	assert.Nil(t, state.CurrentlyProcessingDocID)
}

func TestJobStore_PauseResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewJobStore(client.Client)
	ctx := context.Background()

	_, err := store.Ensure(ctx, AutoProcessingJob)
	require.NoError(t, err)

	paused, err := store.IsPaused(ctx, AutoProcessingJob)
	require.NoError(t, err)
	assert.False(t, paused)

	require.NoError(t, store.Pause(ctx, AutoProcessingJob, "maintenance window"))
	state, err := store.Get(ctx, AutoProcessingJob)
	require.NoError(t, err)
	assert.True(t, state.Paused)
	require.NotNil(t, state.PausedReason)
	assert.Equal(t, "maintenance window", *state.PausedReason)

	require.NoError(t, store.Resume(ctx, AutoProcessingJob))
	state, err = store.Get(ctx, AutoProcessingJob)
	require.NoError(t, err)
	assert.False(t, state.Paused)
	assert.Nil(t, state.PausedReason)
}
