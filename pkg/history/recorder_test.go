package history

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/inkwell-ai/inkwell/test/database"
)

func TestRecorder(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := NewRecorder(client.Client, true, slog.Default())
	ctx := context.Background()

	recorder.Record(ctx, 1, "title", "completed", map[string]any{"value": "Invoice"})
	recorder.Record(ctx, 1, "tags", "completed", nil)
	recorder.Record(ctx, 2, "title", "failed", nil)

	rows, err := recorder.ByDoc(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Oldest first.
	assert.Equal(t, "title", rows[0].Step)
	assert.Equal(t, "tags", rows[1].Step)
	assert.Equal(t, "Invoice", rows[0].Data["value"])

	rows, err = recorder.ByDoc(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecorder_Disabled(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := NewRecorder(client.Client, false, slog.Default())
	ctx := context.Background()

	recorder.Record(ctx, 1, "title", "completed", nil)

	rows, err := recorder.ByDoc(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecorder_DeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := NewRecorder(client.Client, true, slog.Default())
	ctx := context.Background()

	recorder.Record(ctx, 1, "title", "completed", nil)
	recorder.Record(ctx, 2, "title", "completed", nil)

	// Nothing is old enough yet.
	deleted, err := recorder.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = recorder.DeleteOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	rows, err := recorder.ByDoc(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
