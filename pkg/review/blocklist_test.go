package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/pkg/models"
	testdb "github.com/inkwell-ai/inkwell/test/database"
)

func TestBlocklist(t *testing.T) {
	client := testdb.NewTestClient(t)
	bl := NewBlocklist(client.Client)
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, models.ReviewKindTag, "Misc", "never useful"))

	// Normalized, case-insensitive matching.
	blocked, err := bl.IsBlocked(ctx, models.ReviewKindTag, "  misc ")
	require.NoError(t, err)
	assert.True(t, blocked)

	// Per-kind entries don't leak into other kinds.
	blocked, err = bl.IsBlocked(ctx, models.ReviewKindTitle, "Misc")
	require.NoError(t, err)
	assert.False(t, blocked)

	// Duplicate add is a no-op.
	require.NoError(t, bl.Add(ctx, models.ReviewKindTag, "misc", ""))
	entries, err := bl.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, bl.Remove(ctx, models.ReviewKindTag, "Misc"))
	blocked, err = bl.IsBlocked(ctx, models.ReviewKindTag, "Misc")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestBlocklist_GlobalKind(t *testing.T) {
	client := testdb.NewTestClient(t)
	bl := NewBlocklist(client.Client)
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, GlobalKind, "lorem ipsum", "placeholder text"))

	// A global entry blocks the suggestion for every kind.
	for _, kind := range []string{models.ReviewKindTitle, models.ReviewKindTag, models.ReviewKindCorrespondent} {
		blocked, err := bl.IsBlocked(ctx, kind, "Lorem Ipsum")
		require.NoError(t, err)
		assert.True(t, blocked, "kind %s", kind)
	}
}

func TestBlocklist_EmptySuggestion(t *testing.T) {
	client := testdb.NewTestClient(t)
	bl := NewBlocklist(client.Client)
	ctx := context.Background()

	assert.Error(t, bl.Add(ctx, GlobalKind, "", "x"))

	blocked, err := bl.IsBlocked(ctx, models.ReviewKindTag, "   ")
	require.NoError(t, err)
	assert.False(t, blocked)
}
