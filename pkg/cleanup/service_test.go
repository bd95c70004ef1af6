package cleanup

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/database"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/history"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/review"
	testdb "github.com/inkwell-ai/inkwell/test/database"
)

type stubApplier struct {
	applied      []string
	manualMarked []int
}

func (a *stubApplier) Apply(_ context.Context, item *ent.PendingReview, value string) error {
	a.applied = append(a.applied, string(item.Kind)+":"+value)
	return nil
}

func (a *stubApplier) MarkManualReview(_ context.Context, docID int) error {
	a.manualMarked = append(a.manualMarked, docID)
	return nil
}

func backdate(t *testing.T, client *database.Client, table string, to time.Time) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(), "UPDATE "+table+" SET created_at = $1", to)
	require.NoError(t, err)
}

func TestRunRetention(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := history.NewRecorder(client.Client, true, slog.Default())
	publisher := events.NewPublisher(client.DB())
	eventStore := events.NewStore(client.DB())
	ctx := context.Background()

	recorder.Record(ctx, 1, "title", "completed", nil)
	recorder.Record(ctx, 2, "title", "completed", nil)
	require.NoError(t, publisher.Publish(ctx, events.NewPipelineEvent(events.EventTypePipelineStart, 1)))

	cfg := &config.MaintenanceConfig{
		ProcessingLogTTL: time.Hour,
		EventTTL:         time.Hour,
	}
	svc := NewService(cfg, client.Client, nil, nil, recorder, eventStore, nil, nil, slog.Default())

	// Everything is fresh; nothing is swept.
	require.NoError(t, svc.RunRetention(ctx))
	rows, err := recorder.ByDoc(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	backdate(t, client, "processing_logs", time.Now().Add(-2*time.Hour))
	backdate(t, client, "events", time.Now().Add(-2*time.Hour))

	require.NoError(t, svc.RunRetention(ctx))

	rows, err = recorder.ByDoc(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)

	evts, err := eventStore.CatchupEvents(ctx, events.GlobalDocsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, evts)
}

func TestRunRetention_ZeroTTLDisablesSweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := history.NewRecorder(client.Client, true, slog.Default())
	eventStore := events.NewStore(client.DB())
	ctx := context.Background()

	recorder.Record(ctx, 1, "title", "completed", nil)
	backdate(t, client, "processing_logs", time.Now().Add(-time.Hour*24*365))

	cfg := &config.MaintenanceConfig{}
	svc := NewService(cfg, client.Client, nil, nil, recorder, eventStore, nil, nil, slog.Default())
	require.NoError(t, svc.RunRetention(ctx))

	rows, err := recorder.ByDoc(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func listOf(results ...map[string]any) map[string]any {
	if results == nil {
		results = []map[string]any{}
	}
	return map[string]any{"count": len(results), "next": nil, "results": results}
}

func TestRunSchemaCleanup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, listOf(map[string]any{"id": 5, "name": "Utilities"}))
	})
	mux.HandleFunc("/api/correspondents/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, listOf())
	})
	mux.HandleFunc("/api/document_types/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, listOf())
	})
	mux.HandleFunc("/api/documents/1/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"id": 1, "title": "Scan"})
	})
	mux.HandleFunc("/api/documents/2/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	t.Setenv("DMS_TOKEN", "test-token")
	dmsClient, err := dms.NewClient(&config.DMSConfig{
		BaseURL:    server.URL,
		MaxRetries: 1,
		PageSize:   100,
	}, slog.Default())
	require.NoError(t, err)

	client := testdb.NewTestClient(t)
	recorder := history.NewRecorder(client.Client, true, slog.Default())
	applier := &stubApplier{}
	reviews := review.NewService(client.Client, applier, recorder, slog.Default())
	ctx := context.Background()

	add := func(docID int, suggestion, entityKind string) string {
		id, err := reviews.Add(ctx, models.AddReviewRequest{
			DocID:      docID,
			Kind:       models.ReviewKindSchemaSuggestion,
			Suggestion: suggestion,
			Metadata:   map[string]any{"entity_kind": entityKind},
		})
		require.NoError(t, err)
		return id
	}

	// Exists in the DMS meanwhile; the run approves it.
	add(1, "Utilities", "tag")
	// No matching correspondent yet; the run leaves it queued.
	keepID := add(1, "Acme GmbH", "correspondent")
	// Document was deleted from the DMS; the run drops the item.
	add(2, "Obsolete Tag", "tag")

	svc := NewService(&config.MaintenanceConfig{}, client.Client, dmsClient, reviews, recorder, nil, nil, nil, slog.Default())
	require.NoError(t, svc.RunSchemaCleanup(ctx))

	remaining, err := reviews.List(ctx, models.ReviewKindSchemaSuggestion, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keepID, remaining[0].ID)

	assert.Equal(t, []string{"schema_suggestion:Utilities"}, applier.applied)
	assert.Empty(t, applier.manualMarked)
}
