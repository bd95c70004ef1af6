package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/inkwell-ai/inkwell/pkg/config"
)

// maxCallRetries bounds transparent retries of one model call. Retries
// only cover transient transport failures; generations are expensive,
// so the budget is small.
const maxCallRetries = 2

// HTTPClient talks to an Ollama-compatible generation endpoint.
// Streaming responses arrive as NDJSON, one JSON object per line.
type HTTPClient struct {
	provider   *config.LLMProviderConfig
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a client for one provider configuration.
func NewHTTPClient(provider *config.LLMProviderConfig, logger *slog.Logger) *HTTPClient {
	timeout := provider.Timeout
	if timeout <= 0 {
		timeout = config.DefaultLLMTimeout
	}
	var apiKey string
	if provider.APIKeyEnv != "" {
		apiKey = os.Getenv(provider.APIKeyEnv)
	}
	return &HTTPClient{
		provider:   provider,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "llm", "model", provider.Model),
	}
}

// Model returns the configured model name.
func (c *HTTPClient) Model() string {
	return c.provider.Model
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Think   any             `json:"think,omitempty"` // bool or "low"|"medium"|"high"
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	Error           string `json:"error,omitempty"`
	PromptEvalCount int    `json:"prompt_eval_count,omitempty"`
	EvalCount       int    `json:"eval_count,omitempty"`
}

// Generate streams a generation as chunks.
func (c *HTTPClient) Generate(ctx context.Context, req Request) (<-chan Chunk, error) {
	body := generateRequest{
		Model:   c.provider.Model,
		Prompt:  req.Prompt,
		System:  req.System,
		Stream:  true,
		Options: generateOptions{Temperature: c.provider.Temperature},
	}
	if c.provider.ThinkingEnabled {
		if c.provider.ThinkingLevel != "" {
			body.Think = c.provider.ThinkingLevel
		} else {
			body.Think = true
		}
	}

	resp, err := c.post(ctx, "/api/generate", body)
	if err != nil {
		return nil, err
	}

	chunks := make(chan Chunk, 16)
	go func() {
		defer close(chunks)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var gr generateResponse
			if err := json.Unmarshal(line, &gr); err != nil {
				c.sendChunk(ctx, chunks, Chunk{Type: ChunkTypeError, Err: fmt.Sprintf("malformed stream line: %v", err)})
				return
			}
			if gr.Error != "" {
				c.sendChunk(ctx, chunks, Chunk{Type: ChunkTypeError, Err: gr.Error})
				return
			}
			if gr.Response != "" {
				if !c.sendChunk(ctx, chunks, Chunk{Type: ChunkTypeText, Text: gr.Response}) {
					return
				}
			}
			if gr.Done {
				c.sendChunk(ctx, chunks, Chunk{Type: ChunkTypeUsage, Usage: &Usage{
					PromptTokens:     gr.PromptEvalCount,
					CompletionTokens: gr.EvalCount,
				}})
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.sendChunk(ctx, chunks, Chunk{Type: ChunkTypeError, Err: err.Error()})
		}
	}()

	return chunks, nil
}

func (c *HTTPClient) sendChunk(ctx context.Context, chunks chan<- Chunk, chunk Chunk) bool {
	select {
	case chunks <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

type embeddingsRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embeddingsResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Embed produces an embedding vector for the given text.
func (c *HTTPClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.post(ctx, "/api/embeddings", embeddingsRequest{Model: c.provider.Model, Prompt: text})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var er embeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("failed to decode embeddings response: %w", err)
	}
	if len(er.Embedding) == 0 {
		return nil, fmt.Errorf("llm: model %s returned empty embedding", c.provider.Model)
	}
	return er.Embedding, nil
}

// ListModels queries the endpoint's available models, used by readiness
// checks to verify the configured model exists.
func (c *HTTPClient) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.provider.BaseURL, "/")+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llm: list models: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm: list models: status %d", resp.StatusCode)
	}

	var body struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode model list: %w", err)
	}
	names := make([]string, len(body.Models))
	for i, m := range body.Models {
		names[i] = m.Name
	}
	return names, nil
}

// post issues one API call, retrying transient failures (network
// errors, 5xx, 429) with exponential backoff. A call that still fails
// after the budget surfaces as a CallError.
func (c *HTTPClient) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	endpoint := strings.TrimRight(c.provider.BaseURL, "/") + path

	var resp *http.Response
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		c.setHeaders(req)
		req.Header.Set("Content-Type", "application/json")

		r, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return fmt.Errorf("POST %s: %w", path, err)
		}
		if r.StatusCode < 200 || r.StatusCode >= 300 {
			defer r.Body.Close()
			msg, _ := io.ReadAll(io.LimitReader(r.Body, 2048))
			err := fmt.Errorf("POST %s: status %d: %s", path, r.StatusCode, strings.TrimSpace(string(msg)))
			if r.StatusCode >= 500 || r.StatusCode == http.StatusTooManyRequests {
				return err
			}
			return backoff.Permanent(err)
		}
		resp = r
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 15 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, maxCallRetries), ctx)); err != nil {
		return nil, &CallError{Model: c.provider.Model, Err: err}
	}
	return resp, nil
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
