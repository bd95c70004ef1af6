package scheduler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	testdb "github.com/inkwell-ai/inkwell/test/database"
)

// fakeDMS serves tags and documents. It honors the include filter but
// deliberately ignores the exclude filter, so the scheduler's own
// post-filtering is what the tests exercise.
type fakeDMS struct {
	tags map[string]int // name -> id
	docs []fakeDoc
}

type fakeDoc struct {
	id   int
	tags []string
}

func (f *fakeDMS) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags/", func(w http.ResponseWriter, r *http.Request) {
		var results []map[string]any
		for name, id := range f.tags {
			results = append(results, map[string]any{"id": id, "name": name})
		}
		writeList(w, results)
	})
	mux.HandleFunc("/api/documents/", func(w http.ResponseWriter, r *http.Request) {
		include := map[int]bool{}
		for _, raw := range strings.Split(r.URL.Query().Get("tags__id__in"), ",") {
			if id, err := strconv.Atoi(raw); err == nil {
				include[id] = true
			}
		}
		var results []map[string]any
		for _, doc := range f.docs {
			var tagIDs []int
			matched := false
			for _, name := range doc.tags {
				id := f.tags[name]
				tagIDs = append(tagIDs, id)
				if include[id] {
					matched = true
				}
			}
			if matched {
				results = append(results, map[string]any{"id": doc.id, "tags": tagIDs})
			}
		}
		writeList(w, results)
	})
	return mux
}

func writeList(w http.ResponseWriter, results []map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":   len(results),
		"next":    nil,
		"results": results,
	})
}

func newTestScheduler(t *testing.T, fake *fakeDMS) *Scheduler {
	t.Helper()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	t.Setenv("DMS_TOKEN", "test-token")
	client, err := dms.NewClient(&config.DMSConfig{BaseURL: server.URL, PageSize: 100}, slog.Default())
	require.NoError(t, err)

	cfg := &config.Config{
		Tags:           config.DefaultTagConfig(),
		AutoProcessing: config.DefaultAutoProcessingConfig(),
	}
	return New(cfg, client, nil, nil, nil, NewActivityTracker(), slog.Default())
}

func TestCandidates(t *testing.T) {
	tags := config.DefaultTagConfig()
	fake := &fakeDMS{
		tags: map[string]int{
			tags.Pending: 1, tags.OCRDone: 2, tags.Processed: 3,
			tags.ManualReview: 4, tags.Failed: 5, "invoice": 6,
		},
		docs: []fakeDoc{
			{id: 10, tags: []string{tags.Pending}},
			{id: 11, tags: []string{tags.OCRDone, "invoice"}},
			{id: 12, tags: []string{"invoice"}},                   // not enrolled
			{id: 13, tags: []string{tags.OCRDone, tags.Failed}},   // excluded hold
			{id: 14, tags: []string{tags.Pending, tags.Processed}}, // stale pending tag
		},
	}
	sched := newTestScheduler(t, fake)

	docs, err := sched.Candidates(context.Background())
	require.NoError(t, err)

	var ids []int
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []int{10, 11}, ids)
}

func TestRun_SleepsBeforeFirstPoll(t *testing.T) {
	// The loop must wait one full interval before touching the DMS, so a
	// freshly booted server stays quiet.
	var requests atomic.Int32
	fake := &fakeDMS{tags: map[string]int{}}
	inner := fake.handler()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		inner.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	t.Setenv("DMS_TOKEN", "test-token")
	client, err := dms.NewClient(&config.DMSConfig{BaseURL: server.URL, PageSize: 100}, slog.Default())
	require.NoError(t, err)

	db := testdb.NewTestClient(t)
	cfg := &config.Config{
		Tags:           config.DefaultTagConfig(),
		AutoProcessing: config.DefaultAutoProcessingConfig(),
	}
	sched := New(cfg, client, nil, nil, NewJobStore(db.Client), NewActivityTracker(), slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, sched.Run(ctx))
	assert.Zero(t, requests.Load())
}

func TestCandidates_NoWorkflowTagsYet(t *testing.T) {
	// A fresh DMS with none of the workflow tags created has no enrolled
	// documents and must not issue an unfiltered document listing.
	fake := &fakeDMS{
		tags: map[string]int{"invoice": 1},
		docs: []fakeDoc{{id: 10, tags: []string{"invoice"}}},
	}
	sched := newTestScheduler(t, fake)

	docs, err := sched.Candidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
