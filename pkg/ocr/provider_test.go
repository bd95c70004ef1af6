package ocr

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *httpProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &httpProvider{
		baseURL:       server.URL,
		httpClient:    server.Client(),
		maxRetries:    3,
		retryInterval: time.Millisecond,
		logger:        slog.Default(),
	}
}

func TestExtractText_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "Invoice No. 42", "pages": 3}`))
	})

	res, err := p.ExtractText(context.Background(), 1, []byte("binary"))
	require.NoError(t, err)
	assert.Equal(t, "Invoice No. 42", res.Text)
	assert.Equal(t, 3, res.Pages)
	assert.EqualValues(t, 3, calls.Load())
}

func TestExtractText_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
	})

	_, err := p.ExtractText(context.Background(), 1, []byte("binary"))
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestExtractText_ServiceReportedError(t *testing.T) {
	var calls atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "unreadable scan"}`))
	})

	_, err := p.ExtractText(context.Background(), 7, nil)
	assert.ErrorContains(t, err, "unreadable scan")
	assert.EqualValues(t, 1, calls.Load())
}

func TestExtractText_RetryBudgetExhausted(t *testing.T) {
	var calls atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := p.ExtractText(context.Background(), 1, []byte("binary"))
	require.Error(t, err)
	assert.EqualValues(t, 4, calls.Load())
}

func TestMockProvider(t *testing.T) {
	p := &MockProvider{Texts: map[int]string{5: "scripted text"}}

	res, err := p.ExtractText(context.Background(), 5, nil)
	require.NoError(t, err)
	assert.Equal(t, "scripted text", res.Text)
	assert.Equal(t, 1, res.Pages)

	res, err = p.ExtractText(context.Background(), 6, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "document 6")
}
