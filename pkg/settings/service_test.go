package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/inkwell-ai/inkwell/test/database"
)

func TestService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	_, ok, err := svc.Get(ctx, "auto_processing.enabled")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.Set(ctx, "auto_processing.enabled", "false"))
	value, ok, err := svc.Get(ctx, "auto_processing.enabled")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", value)

	// Set on an existing key overwrites.
	require.NoError(t, svc.Set(ctx, "auto_processing.enabled", "true"))
	value, _, err = svc.Get(ctx, "auto_processing.enabled")
	require.NoError(t, err)
	assert.Equal(t, "true", value)

	require.NoError(t, svc.Set(ctx, "other.key", "x"))
	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "true", all["auto_processing.enabled"])

	require.NoError(t, svc.Delete(ctx, "other.key"))
	require.NoError(t, svc.Delete(ctx, "never.existed"))
	_, ok, err = svc.Get(ctx, "other.key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_GetBool(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	// Missing key returns the fallback.
	v, err := svc.GetBool(ctx, "flag", true)
	require.NoError(t, err)
	assert.True(t, v)

	require.NoError(t, svc.Set(ctx, "flag", "false"))
	v, err = svc.GetBool(ctx, "flag", true)
	require.NoError(t, err)
	assert.False(t, v)

	// Unparseable values fall back too.
	require.NoError(t, svc.Set(ctx, "flag", "banana"))
	v, err = svc.GetBool(ctx, "flag", true)
	require.NoError(t, err)
	assert.True(t, v)
}
