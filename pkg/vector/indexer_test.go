package vector

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/pkg/dms"
)

// stubEmbedder maps known texts to fixed vectors.
type stubEmbedder struct {
	vectors map[string][]float32
	fallback []float32
}

func (e *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	for key, vec := range e.vectors {
		if strings.Contains(text, key) {
			return vec, nil
		}
	}
	return e.fallback, nil
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Upsert(ctx, Point{ID: 1, Vector: []float32{1, 0}}))
	require.NoError(t, store.Upsert(ctx, Point{ID: 2, Vector: []float32{0, 1}}))
	require.NoError(t, store.Upsert(ctx, Point{ID: 3, Vector: []float32{0.9, 0.1}}))
	assert.Equal(t, 3, store.Len())

	matches, err := store.Query(ctx, []float32{1, 0}, 10, 0.5)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	// Best first.
	assert.Equal(t, 1, matches[0].ID)
	assert.Equal(t, 3, matches[1].ID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)

	// topK truncation.
	matches, err = store.Query(ctx, []float32{1, 0}, 1, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].ID)

	// Upsert replaces.
	require.NoError(t, store.Upsert(ctx, Point{ID: 1, Vector: []float32{0, 1}}))
	assert.Equal(t, 3, store.Len())

	require.NoError(t, store.Delete(ctx, 1))
	assert.Equal(t, 2, store.Len())
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Degenerate inputs score zero instead of dividing by zero.
	assert.Zero(t, cosine(nil, nil))
	assert.Zero(t, cosine([]float32{1}, []float32{1, 2}))
	assert.Zero(t, cosine([]float32{0, 0}, []float32{1, 2}))
}

func TestProjection(t *testing.T) {
	ix := NewIndexer(NewMemoryStore(), &stubEmbedder{}, []string{"llm-processed", "llm-pending"}, testLogger())

	doc := &dms.Document{ID: 7, Title: "Electricity Invoice", Content: "Amount due: 123.45 EUR"}
	text, payload := ix.Projection(doc, []string{"invoice", "llm-processed"}, "Stadtwerke", "Invoice")

	assert.Contains(t, text, "Electricity Invoice")
	assert.Contains(t, text, "Stadtwerke")
	assert.Contains(t, text, "invoice")
	// Workflow tags never leak into the projection.
	assert.NotContains(t, text, "llm-processed")

	assert.Equal(t, 7, payload["doc_id"])
	assert.Equal(t, "Electricity Invoice", payload["title"])
	assert.Equal(t, "Stadtwerke", payload["correspondent"])
	assert.Equal(t, []string{"invoice"}, payload["tags"])
}

func TestProjection_TruncatesContent(t *testing.T) {
	ix := NewIndexer(NewMemoryStore(), &stubEmbedder{}, nil, testLogger())

	doc := &dms.Document{ID: 1, Title: "Big", Content: strings.Repeat("x", maxProjectionContent+500)}
	text, _ := ix.Projection(doc, nil, "", "")
	assert.LessOrEqual(t, len(text), maxProjectionContent+len("Big")+2)
}

func TestSimilar_ExcludesSelf(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Upsert(ctx, Point{ID: 1, Vector: []float32{1, 0}}))
	require.NoError(t, store.Upsert(ctx, Point{ID: 2, Vector: []float32{0.95, 0.05}}))
	require.NoError(t, store.Upsert(ctx, Point{ID: 3, Vector: []float32{0, 1}}))

	embedder := &stubEmbedder{fallback: []float32{1, 0}}
	ix := NewIndexer(store, embedder, nil, testLogger())

	matches, err := ix.Similar(ctx, 1, "query text", 2, 0.5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].ID)
}

func TestIndex(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	embedder := &stubEmbedder{fallback: []float32{0.5, 0.5}}
	ix := NewIndexer(store, embedder, nil, testLogger())

	doc := &dms.Document{ID: 42, Title: "Contract", Content: "terms"}
	require.NoError(t, ix.Index(ctx, doc, nil, "ACME", "Contract"))
	assert.Equal(t, 1, store.Len())

	matches, err := store.Query(ctx, []float32{0.5, 0.5}, 1, 0.9)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 42, matches[0].ID)
	assert.Equal(t, "Contract", matches[0].Payload["title"])
}
