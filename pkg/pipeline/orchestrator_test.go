package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/history"
	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/ocr"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
	"github.com/inkwell-ai/inkwell/pkg/review"
	testdb "github.com/inkwell-ai/inkwell/test/database"
)

// failingLLM simulates a provider outage: every call fails the way the
// HTTP client reports an exhausted retry budget.
type failingLLM struct{ err error }

func (c *failingLLM) Generate(context.Context, llm.Request) (<-chan llm.Chunk, error) {
	return nil, c.err
}

func (c *failingLLM) Model() string { return "unreachable" }

// fakeArchive is a stateful in-memory DMS. Tag transitions, entity
// creation, and metadata writes all land here, so a full pipeline run
// can be asserted end to end.
type fakeArchive struct {
	mu             sync.Mutex
	nextID         int
	tags           map[int]string
	correspondents map[int]string
	documentTypes  map[int]string
	docs           map[int]*archiveDoc
}

type archiveDoc struct {
	title         string
	content       string
	correspondent *int
	documentType  *int
	tags          []int
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{
		nextID:         1,
		tags:           map[int]string{},
		correspondents: map[int]string{},
		documentTypes:  map[int]string{},
		docs:           map[int]*archiveDoc{},
	}
}

func (f *fakeArchive) addDoc(id int, title, content string, tagNames ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := &archiveDoc{title: title, content: content}
	for _, name := range tagNames {
		doc.tags = append(doc.tags, f.tagIDLocked(name))
	}
	f.docs[id] = doc
}

func (f *fakeArchive) tagIDLocked(name string) int {
	for id, n := range f.tags {
		if n == name {
			return id
		}
	}
	id := f.nextID
	f.nextID++
	f.tags[id] = name
	return id
}

func (f *fakeArchive) docTagNames(id int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, tagID := range f.docs[id].tags {
		names = append(names, f.tags[tagID])
	}
	return names
}

func (f *fakeArchive) docTitle(id int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[id].title
}

func (f *fakeArchive) docContent(id int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[id].content
}

func (f *fakeArchive) docDocumentType(id int) *int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[id].documentType
}

func (f *fakeArchive) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags/", f.entityHandler(func() map[int]string { return f.tags }))
	mux.HandleFunc("/api/correspondents/", f.entityHandler(func() map[int]string { return f.correspondents }))
	mux.HandleFunc("/api/document_types/", f.entityHandler(func() map[int]string { return f.documentTypes }))
	mux.HandleFunc("/api/custom_fields/", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, nil)
	})
	mux.HandleFunc("/api/documents/", f.documentHandler)
	return mux
}

func (f *fakeArchive) entityHandler(set func() map[int]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		entities := set()
		if r.Method == http.MethodPost {
			var body struct {
				Name string `json:"name"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			id := f.nextID
			f.nextID++
			entities[id] = body.Name
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "name": body.Name})
			return
		}
		var results []map[string]any
		for id, name := range entities {
			results = append(results, map[string]any{"id": id, "name": name})
		}
		writeEnvelope(w, results)
	}
}

func (f *fakeArchive) documentHandler(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/documents/"), "/"), "/")
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if len(parts) > 1 && parts[1] == "download" {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
		return
	}

	if r.Method == http.MethodPatch {
		var patch map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if raw, ok := patch["title"]; ok {
			_ = json.Unmarshal(raw, &doc.title)
		}
		if raw, ok := patch["content"]; ok {
			_ = json.Unmarshal(raw, &doc.content)
		}
		if raw, ok := patch["tags"]; ok {
			doc.tags = nil
			_ = json.Unmarshal(raw, &doc.tags)
		}
		if raw, ok := patch["correspondent"]; ok {
			_ = json.Unmarshal(raw, &doc.correspondent)
		}
		if raw, ok := patch["document_type"]; ok {
			_ = json.Unmarshal(raw, &doc.documentType)
		}
	}

	tagIDs := doc.tags
	if tagIDs == nil {
		tagIDs = []int{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":            id,
		"title":         doc.title,
		"content":       doc.content,
		"correspondent": doc.correspondent,
		"document_type": doc.documentType,
		"tags":          tagIDs,
		"custom_fields": []any{},
		"created":       "2026-01-01",
		"added":         "2026-01-02",
	})
}

func writeEnvelope(w http.ResponseWriter, results []map[string]any) {
	if results == nil {
		results = []map[string]any{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":   len(results),
		"next":    nil,
		"results": results,
	})
}

type pipelineHarness struct {
	orch    *Orchestrator
	archive *fakeArchive
	reviews *review.Service
	dms     *dms.Client
	cfg     *config.Config
}

func newPipelineHarness(t *testing.T, cfg *config.Config, analyst, reviewer llm.Client, ocrProvider ocr.Provider) *pipelineHarness {
	t.Helper()
	archive := newFakeArchive()
	server := httptest.NewServer(archive.handler())
	t.Cleanup(server.Close)

	t.Setenv("DMS_TOKEN", "test-token")
	client, err := dms.NewClient(&config.DMSConfig{BaseURL: server.URL, PageSize: 100}, slog.Default())
	require.NoError(t, err)

	db := testdb.NewTestClient(t)
	recorder := history.NewRecorder(db.Client, true, slog.Default())
	applier := NewApplier(cfg, client, slog.Default())
	reviews := review.NewService(db.Client, applier, recorder, slog.Default())

	prompts, err := prompt.NewBuilder("en")
	require.NoError(t, err)

	orch := NewOrchestrator(Deps{
		Config:    cfg,
		DMS:       client,
		Analyst:   analyst,
		Reviewer:  reviewer,
		Prompts:   prompts,
		OCR:       ocrProvider,
		Reviews:   reviews,
		Blocklist: review.NewBlocklist(db.Client),
		Recorder:  recorder,
		Ent:       db.Client,
		Logger:    slog.Default(),
	})
	return &pipelineHarness{orch: orch, archive: archive, reviews: reviews, dms: client, cfg: cfg}
}

func (h *pipelineHarness) refresh(t *testing.T) {
	t.Helper()
	require.NoError(t, h.dms.RefreshTagCache(context.Background()))
}

func pipelineConfig(stages config.PipelineConfig) *config.Config {
	return &config.Config{
		Tags:     config.DefaultTagConfig(),
		Pipeline: &stages,
		Confirmation: &config.ConfirmationConfig{
			MaxRetries:       3,
			ApprovalKeywords: config.DefaultApprovalKeywords,
		},
	}
}

func collectEvents(ch <-chan events.PipelineEvent) []events.PipelineEvent {
	var out []events.PipelineEvent
	for e := range ch {
		out = append(out, e)
	}
	return out
}

func eventTypes(evts []events.PipelineEvent) []string {
	types := make([]string, len(evts))
	for i, e := range evts {
		types[i] = e.Type
	}
	return types
}

var terminalEventTypes = []string{
	events.EventTypePipelineComplete,
	events.EventTypePipelinePaused,
	events.EventTypeError,
}

// assertStreamShape checks the event ordering contract: the stream
// opens with pipeline_start and closes with exactly one terminal event.
func assertStreamShape(t *testing.T, evts []events.PipelineEvent) {
	t.Helper()
	require.NotEmpty(t, evts)
	assert.Equal(t, events.EventTypePipelineStart, evts[0].Type)
	assert.Contains(t, terminalEventTypes, evts[len(evts)-1].Type)
	for _, e := range evts[1 : len(evts)-1] {
		assert.NotContains(t, terminalEventTypes, e.Type)
		assert.NotEqual(t, events.EventTypePipelineStart, e.Type)
	}
}

func TestRunStream_HappyPath(t *testing.T) {
	cfg := pipelineConfig(config.PipelineConfig{OCR: true, Title: true})
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "Electricity Invoice March", "confidence": 0.9}`,
	}}
	reviewer := &scriptedLLM{responses: []string{"yes"}}
	h := newPipelineHarness(t, cfg, analyst, reviewer,
		&ocr.MockProvider{Texts: map[int]string{1: "Electricity bill for March, 142 EUR."}})
	h.archive.addDoc(1, "Scan 0042", "", cfg.Tags.Pending)
	h.refresh(t)

	evts := collectEvents(h.orch.RunStream(context.Background(), 1))

	assertStreamShape(t, evts)
	assert.Equal(t, []string{
		events.EventTypePipelineStart,
		events.EventTypeStepStart, events.EventTypeStepComplete,
		events.EventTypeStepStart, events.EventTypeStepComplete,
		events.EventTypePipelineComplete,
	}, eventTypes(evts))
	assert.Equal(t, string(models.StageOCR), evts[1].Step)
	assert.Equal(t, string(models.StageTitle), evts[3].Step)

	assert.Equal(t, "Electricity Invoice March", h.archive.docTitle(1))
	assert.Contains(t, h.archive.docContent(1), "Electricity bill")
	assert.ElementsMatch(t, []string{cfg.Tags.Processed}, h.archive.docTagNames(1))
}

func TestRunStream_ConvergenceFailureEscalates(t *testing.T) {
	cfg := pipelineConfig(config.PipelineConfig{Title: true})
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "Document", "confidence": 0.4}`,
		`{"suggestion": "Document Scan", "confidence": 0.4}`,
		`{"suggestion": "Scanned Document", "confidence": 0.4}`,
	}}
	reviewer := &scriptedLLM{responses: []string{
		"no, too generic",
		"no, too generic",
		"no, too generic",
	}}
	h := newPipelineHarness(t, cfg, analyst, reviewer, &ocr.MockProvider{})
	h.archive.addDoc(7, "Scan 0099", "Electricity bill for March, 142 EUR.", cfg.Tags.Pending)
	h.refresh(t)
	ctx := context.Background()

	evts := collectEvents(h.orch.RunStream(ctx, 7))

	assertStreamShape(t, evts)
	assert.Equal(t, []string{
		events.EventTypePipelineStart,
		events.EventTypeStepStart,
		events.EventTypeNeedsReview,
		events.EventTypePipelinePaused,
	}, eventTypes(evts))

	// No write happened and the document is on hold.
	assert.Equal(t, "Scan 0099", h.archive.docTitle(7))
	assert.ElementsMatch(t, []string{cfg.Tags.Pending, cfg.Tags.ManualReview}, h.archive.docTagNames(7))

	items, err := h.reviews.List(ctx, "", 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, models.ReviewKindTitle, string(item.Kind))
	assert.Equal(t, 3, item.Attempts)
	require.NotNil(t, item.LastFeedback)
	assert.Contains(t, *item.LastFeedback, "too generic")
	require.NotNil(t, item.NextTag)
	assert.Equal(t, cfg.Tags.TitleDone, *item.NextTag)

	// Approval applies the value, advances the stage tag, and lifts the
	// manual-review hold.
	require.NoError(t, h.reviews.Approve(ctx, item.ID, nil))
	assert.Equal(t, "Scanned Document", h.archive.docTitle(7))
	assert.ElementsMatch(t, []string{cfg.Tags.TitleDone}, h.archive.docTagNames(7))
}

func TestRunStream_SchemaAnalysisPauses(t *testing.T) {
	cfg := pipelineConfig(config.PipelineConfig{SchemaAnalysis: true})
	analyst := &scriptedLLM{responses: []string{
		`{"suggestions": [{"entity_kind": "correspondent", "suggested_name": "Acme GmbH", "confidence": 0.8}]}`,
	}}
	h := newPipelineHarness(t, cfg, analyst, &scriptedLLM{}, &ocr.MockProvider{})
	h.archive.addDoc(3, "Acme contract", "Signed by Acme GmbH.", cfg.Tags.OCRDone)
	h.refresh(t)
	ctx := context.Background()

	evts := collectEvents(h.orch.RunStream(ctx, 3))

	assertStreamShape(t, evts)
	assert.Equal(t, []string{
		events.EventTypePipelineStart,
		events.EventTypeStepStart,
		events.EventTypeSchemaReviewNeeded,
		events.EventTypePipelinePaused,
	}, eventTypes(evts))

	// Without a distinct schema-review tag the document stays parked on
	// ocr_done.
	assert.ElementsMatch(t, []string{cfg.Tags.OCRDone}, h.archive.docTagNames(3))

	items, err := h.reviews.List(ctx, models.ReviewKindSchemaSuggestion, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme GmbH", items[0].Suggestion)
}

func TestRunStream_ResumesFromCurrentStage(t *testing.T) {
	cfg := pipelineConfig(config.PipelineConfig{Title: true, Correspondent: true, DocumentType: true})
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "Invoice", "confidence": 0.9}`,
	}}
	reviewer := &scriptedLLM{responses: []string{"yes"}}
	h := newPipelineHarness(t, cfg, analyst, reviewer, &ocr.MockProvider{})
	h.archive.addDoc(5, "March invoice", "Electricity bill for March.", cfg.Tags.CorrespondentDone)
	h.refresh(t)

	evts := collectEvents(h.orch.RunStream(context.Background(), 5))

	// The run picks up past the completed stages: the first step is
	// document_type, and the earlier stages cost no model calls.
	assertStreamShape(t, evts)
	require.GreaterOrEqual(t, len(evts), 2)
	assert.Equal(t, events.EventTypeStepStart, evts[1].Type)
	assert.Equal(t, string(models.StageDocumentType), evts[1].Step)
	assert.Equal(t, events.EventTypePipelineComplete, evts[len(evts)-1].Type)
	assert.Len(t, analyst.prompts, 1)

	require.NotNil(t, h.archive.docDocumentType(5))
	assert.ElementsMatch(t, []string{cfg.Tags.Processed}, h.archive.docTagNames(5))
}

func TestRunStream_OCRFailureEndsWithError(t *testing.T) {
	cfg := pipelineConfig(config.PipelineConfig{OCR: true, Title: true})
	h := newPipelineHarness(t, cfg, &scriptedLLM{}, &scriptedLLM{},
		&ocr.MockProvider{Err: errors.New("engine crashed")})
	h.archive.addDoc(2, "Scan 0007", "", cfg.Tags.Pending)
	h.refresh(t)

	evts := collectEvents(h.orch.RunStream(context.Background(), 2))

	assertStreamShape(t, evts)
	assert.Equal(t, []string{
		events.EventTypePipelineStart,
		events.EventTypeStepStart,
		events.EventTypeStepError,
		events.EventTypeError,
	}, eventTypes(evts))
	assert.Contains(t, evts[3].Message, "ocr failed")
	assert.ElementsMatch(t, []string{cfg.Tags.Failed}, h.archive.docTagNames(2))
}

func TestRunStream_ReviewerOutageEscalatesToReview(t *testing.T) {
	cfg := pipelineConfig(config.PipelineConfig{Title: true})
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "Electricity Invoice March", "confidence": 0.9}`,
	}}
	reviewer := &failingLLM{err: &llm.CallError{Model: "reviewer", Err: errors.New("connection refused")}}
	h := newPipelineHarness(t, cfg, analyst, reviewer, &ocr.MockProvider{})
	h.archive.addDoc(9, "Scan 0123", "Electricity bill for March.", cfg.Tags.Pending)
	h.refresh(t)
	ctx := context.Background()

	evts := collectEvents(h.orch.RunStream(ctx, 9))

	// The analyst's proposal survives the reviewer outage as a queued
	// review instead of aborting the run.
	assertStreamShape(t, evts)
	assert.Equal(t, events.EventTypePipelinePaused, evts[len(evts)-1].Type)
	assert.Contains(t, h.archive.docTagNames(9), cfg.Tags.ManualReview)

	items, err := h.reviews.List(ctx, models.ReviewKindTitle, 9)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Electricity Invoice March", items[0].Suggestion)
	require.NotNil(t, items[0].LastFeedback)
	assert.Contains(t, *items[0].LastFeedback, "call failed")
}

func TestRunStream_AnalystOutageMarksFailed(t *testing.T) {
	cfg := pipelineConfig(config.PipelineConfig{Title: true})
	analyst := &failingLLM{err: &llm.CallError{Model: "analyst", Err: errors.New("connection refused")}}
	h := newPipelineHarness(t, cfg, analyst, &scriptedLLM{}, &ocr.MockProvider{})
	h.archive.addDoc(4, "Scan 0321", "Some content.", cfg.Tags.Pending)
	h.refresh(t)

	evts := collectEvents(h.orch.RunStream(context.Background(), 4))

	// No proposal exists to review, so the document is parked failed.
	assertStreamShape(t, evts)
	assert.Equal(t, events.EventTypeError, evts[len(evts)-1].Type)
	assert.ElementsMatch(t, []string{cfg.Tags.Failed}, h.archive.docTagNames(4))
}
