package dms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/pkg/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("DMS_TOKEN", "test-token")
	client, err := NewClient(&config.DMSConfig{
		BaseURL:    server.URL,
		MaxRetries: 2,
		PageSize:   2,
	}, slog.Default())
	require.NoError(t, err)
	return client, server
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClient_RequiresToken(t *testing.T) {
	t.Setenv("DMS_TOKEN", "")
	_, err := NewClient(&config.DMSConfig{BaseURL: "http://dms"}, slog.Default())
	assert.Error(t, err)
}

func TestDocuments_Pagination(t *testing.T) {
	var server *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/api/documents/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token test-token", r.Header.Get("Authorization"))
		switch r.URL.Query().Get("page") {
		case "", "1":
			next := server.URL + "/api/documents/?page=2&page_size=2"
			writeJSON(w, listResponse[Document]{
				Count:   3,
				Next:    &next,
				Results: []Document{{ID: 1}, {ID: 2}},
			})
		case "2":
			writeJSON(w, listResponse[Document]{
				Count:   3,
				Results: []Document{{ID: 3}},
			})
		}
	})
	client, srv := newTestClient(t, mux)
	server = srv

	docs, err := client.Documents(context.Background(), DocumentFilter{})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, 1, docs[0].ID)
	assert.Equal(t, 3, docs[2].ID)
}

func TestDocuments_Limit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/documents/", func(w http.ResponseWriter, r *http.Request) {
		next := "http://ignored/api/documents/?page=2"
		writeJSON(w, listResponse[Document]{
			Count:   10,
			Next:    &next,
			Results: []Document{{ID: 1}, {ID: 2}},
		})
	})
	client, _ := newTestClient(t, mux)

	docs, err := client.Documents(context.Background(), DocumentFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 1, docs[0].ID)
}

func TestDocument_NotFound(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/documents/99/", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	})
	client, _ := newTestClient(t, mux)

	_, err := client.Document(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	// Not-found is permanent; no retries.
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientFailures(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/documents/7/", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(w, Document{ID: 7, Title: "ok"})
	})
	client, _ := newTestClient(t, mux)

	doc, err := client.Document(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "ok", doc.Title)
	assert.Equal(t, 2, calls)
}

func TestDo_Unauthorized(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/documents/7/", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	})
	client, _ := newTestClient(t, mux)

	_, err := client.Document(context.Background(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, calls)
}

// fakeDMS is a minimal stateful tag/document store.
type fakeDMS struct {
	mu     sync.Mutex
	tags   map[int]string
	nextID int
	doc    Document
}

func newFakeDMS(doc Document, tagNames ...string) *fakeDMS {
	f := &fakeDMS{tags: make(map[int]string), nextID: 1, doc: doc}
	for _, name := range tagNames {
		f.tags[f.nextID] = name
		f.nextID++
	}
	return f
}

func (f *fakeDMS) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			var results []Tag
			for id, name := range f.tags {
				results = append(results, Tag{ID: id, Name: name})
			}
			writeJSON(w, listResponse[Tag]{Count: len(results), Results: results})
		case http.MethodPost:
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			name := body["name"]
			for _, existing := range f.tags {
				if strings.EqualFold(existing, name) {
					w.WriteHeader(http.StatusBadRequest)
					fmt.Fprint(w, `{"name":["tag with this name already exists."]}`)
					return
				}
			}
			id := f.nextID
			f.nextID++
			f.tags[id] = name
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, Tag{ID: id, Name: name})
		}
	})
	mux.HandleFunc("/api/documents/1/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, f.doc)
		case http.MethodPatch:
			var body struct {
				Tags *[]int `json:"tags"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Tags != nil {
				f.doc.TagIDs = *body.Tags
			}
			writeJSON(w, f.doc)
		}
	})
	return mux
}

func (f *fakeDMS) tagNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, id := range f.doc.TagIDs {
		names = append(names, f.tags[id])
	}
	return names
}

func TestEnsureTag(t *testing.T) {
	fake := newFakeDMS(Document{ID: 1}, "invoice")
	client, _ := newTestClient(t, fake.handler())
	ctx := context.Background()
	require.NoError(t, client.RefreshTagCache(ctx))

	// Cache hit, case-insensitive.
	tag, err := client.EnsureTag(ctx, "Invoice")
	require.NoError(t, err)
	assert.Equal(t, "invoice", tag.Name)

	// Creation of a new tag.
	tag, err = client.EnsureTag(ctx, "urgent")
	require.NoError(t, err)
	assert.Equal(t, "urgent", tag.Name)
	assert.NotZero(t, tag.ID)

	// The created tag is cached.
	cached, ok := client.TagByName("URGENT")
	assert.True(t, ok)
	assert.Equal(t, tag.ID, cached.ID)
}

func TestEnsureTag_CreationRace(t *testing.T) {
	// The tag exists in the DMS but not in the client's cache; the POST
	// 400s and the client must converge on the existing tag.
	fake := newFakeDMS(Document{ID: 1}, "invoice")
	client, _ := newTestClient(t, fake.handler())

	tag, err := client.EnsureTag(context.Background(), "invoice")
	require.NoError(t, err)
	assert.Equal(t, "invoice", tag.Name)
}

func TestModifyTags_Idempotent(t *testing.T) {
	fake := newFakeDMS(Document{ID: 1, TagIDs: []int{1}}, "invoice", "draft")
	client, _ := newTestClient(t, fake.handler())
	ctx := context.Background()

	require.NoError(t, client.ModifyTags(ctx, 1, []int{2}, nil))
	assert.ElementsMatch(t, []string{"invoice", "draft"}, fake.tagNames())

	// Repeating the same modification is a no-op.
	require.NoError(t, client.ModifyTags(ctx, 1, []int{2}, nil))
	assert.ElementsMatch(t, []string{"invoice", "draft"}, fake.tagNames())

	require.NoError(t, client.ModifyTags(ctx, 1, nil, []int{1}))
	assert.ElementsMatch(t, []string{"draft"}, fake.tagNames())
}

func TestTransitionTag(t *testing.T) {
	fake := newFakeDMS(Document{ID: 1}, "llm-pending", "llm-ocr-done")
	client, _ := newTestClient(t, fake.handler())
	ctx := context.Background()
	require.NoError(t, client.RefreshTagCache(ctx))

	pending, _ := client.TagByName("llm-pending")
	fake.mu.Lock()
	fake.doc.TagIDs = []int{pending.ID}
	fake.mu.Unlock()

	require.NoError(t, client.TransitionTag(ctx, 1, "llm-pending", "llm-ocr-done"))
	assert.ElementsMatch(t, []string{"llm-ocr-done"}, fake.tagNames())

	// An empty from tag is add-only.
	require.NoError(t, client.TransitionTag(ctx, 1, "", "llm-pending"))
	assert.ElementsMatch(t, []string{"llm-ocr-done", "llm-pending"}, fake.tagNames())

	// Transitioning a tag onto itself leaves it in place.
	require.NoError(t, client.TransitionTag(ctx, 1, "llm-ocr-done", "llm-ocr-done"))
	assert.Contains(t, fake.tagNames(), "llm-ocr-done")
}

func TestTransitionTag_CreatesTargetTag(t *testing.T) {
	fake := newFakeDMS(Document{ID: 1})
	client, _ := newTestClient(t, fake.handler())
	ctx := context.Background()
	require.NoError(t, client.RefreshTagCache(ctx))

	require.NoError(t, client.TransitionTag(ctx, 1, "", "llm-processed"))
	assert.ElementsMatch(t, []string{"llm-processed"}, fake.tagNames())
}
