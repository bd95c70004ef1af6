package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/inkwell-ai/inkwell/pkg/config"
)

// HTTPStore talks to a Qdrant-style vector store over REST.
type HTTPStore struct {
	baseURL    string
	collection string
	httpClient *http.Client
}

// NewHTTPStore creates a store client from configuration.
func NewHTTPStore(cfg *config.VectorStoreConfig) (*HTTPStore, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("vector: base_url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	collection := cfg.Collection
	if collection == "" {
		collection = "documents"
	}
	return &HTTPStore{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		collection: collection,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Upsert writes one point, retrying transient failures.
func (s *HTTPStore) Upsert(ctx context.Context, point Point) error {
	body := map[string]any{
		"points": []map[string]any{{
			"id":      point.ID,
			"vector":  point.Vector,
			"payload": point.Payload,
		}},
	}
	path := fmt.Sprintf("/collections/%s/points", s.collection)
	return s.do(ctx, http.MethodPut, path, body, nil)
}

// Query returns the nearest points above minScore.
func (s *HTTPStore) Query(ctx context.Context, vector []float32, topK int, minScore float64) ([]Match, error) {
	body := map[string]any{
		"vector":          vector,
		"limit":           topK,
		"score_threshold": minScore,
		"with_payload":    true,
	}
	var out struct {
		Result []struct {
			ID      int            `json:"id"`
			Score   float64        `json:"score"`
			Payload map[string]any `json:"payload"`
		} `json:"result"`
	}
	path := fmt.Sprintf("/collections/%s/points/search", s.collection)
	if err := s.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}

	matches := make([]Match, len(out.Result))
	for i, r := range out.Result {
		matches[i] = Match{ID: r.ID, Score: r.Score, Payload: r.Payload}
	}
	return matches, nil
}

// Delete removes one point.
func (s *HTTPStore) Delete(ctx context.Context, id int) error {
	body := map[string]any{"points": []int{id}}
	path := fmt.Sprintf("/collections/%s/points/delete", s.collection)
	return s.do(ctx, http.MethodPost, path, body, nil)
}

func (s *HTTPStore) do(ctx context.Context, method, path string, body, out any) error {
	op := func() error {
		data, err := json.Marshal(body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to marshal request: %w", err))
		}
		req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return fmt.Errorf("vector: %s %s: %w", method, path, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			err := fmt.Errorf("vector: %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
			if resp.StatusCode >= 500 || resp.StatusCode == 429 {
				return err
			}
			return backoff.Permanent(err)
		}
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
			}
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 10 * time.Second
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, 3), ctx))
}
