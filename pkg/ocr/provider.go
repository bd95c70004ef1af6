// Package ocr extracts text from document binaries via an external OCR
// service, with a mock mode for tests and offline development.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/inkwell-ai/inkwell/pkg/config"
)

// Result is one OCR extraction.
type Result struct {
	Text  string
	Pages int
}

// Provider extracts text from a document binary.
type Provider interface {
	ExtractText(ctx context.Context, docID int, data []byte) (Result, error)
}

// NewProvider builds the provider selected by configuration.
func NewProvider(cfg *config.OCRConfig, logger *slog.Logger) (Provider, error) {
	switch cfg.Mode {
	case config.OCRModeHTTP, "":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("ocr: base_url is required for http mode")
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = config.DefaultOCRTimeout
		}
		maxRetries := cfg.MaxRetries
		if maxRetries <= 0 {
			maxRetries = 3
		}
		return &httpProvider{
			baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
			httpClient:    &http.Client{Timeout: timeout},
			maxRetries:    maxRetries,
			retryInterval: 500 * time.Millisecond,
			logger:        logger.With("component", "ocr"),
		}, nil
	case config.OCRModeMock:
		return &MockProvider{}, nil
	default:
		return nil, fmt.Errorf("ocr: unknown mode %q", cfg.Mode)
	}
}

// httpProvider posts the binary to an OCR service and reads back the
// extracted text. Transient failures (network errors, 5xx, 429) retry
// with exponential backoff; anything else fails outright.
type httpProvider struct {
	baseURL       string
	httpClient    *http.Client
	maxRetries    int
	retryInterval time.Duration
	logger        *slog.Logger
}

type ocrResponse struct {
	Text  string `json:"text"`
	Pages int    `json:"pages"`
	Error string `json:"error,omitempty"`
}

func (p *httpProvider) ExtractText(ctx context.Context, docID int, data []byte) (Result, error) {
	p.logger.Debug("Submitting document for OCR", "doc_id", docID, "bytes", len(data))

	var out Result
	op := func() error {
		r, err := p.once(ctx, data)
		if err != nil {
			return err
		}
		out = r
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.retryInterval
	bo.MaxInterval = 15 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(p.maxRetries)), ctx)); err != nil {
		return Result{}, err
	}
	return out, nil
}

// once performs a single extraction request without retry.
func (p *httpProvider) once(ctx context.Context, data []byte) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/ocr", bytes.NewReader(data))
	if err != nil {
		return Result{}, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, backoff.Permanent(err)
		}
		return Result{}, fmt.Errorf("ocr: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		err := fmt.Errorf("ocr: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return Result{}, err
		}
		return Result{}, backoff.Permanent(err)
	}

	var or ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return Result{}, backoff.Permanent(fmt.Errorf("failed to decode ocr response: %w", err))
	}
	if or.Error != "" {
		return Result{}, backoff.Permanent(fmt.Errorf("ocr: %s", or.Error))
	}
	return Result{Text: or.Text, Pages: or.Pages}, nil
}

// MockProvider returns deterministic synthetic text keyed by document id.
type MockProvider struct {
	// Texts overrides the synthetic text per document id.
	Texts map[int]string

	// Err, when set, is returned from every call.
	Err error
}

func (p *MockProvider) ExtractText(_ context.Context, docID int, _ []byte) (Result, error) {
	if p.Err != nil {
		return Result{}, p.Err
	}
	if text, ok := p.Texts[docID]; ok {
		return Result{Text: text, Pages: 1}, nil
	}
	return Result{Text: fmt.Sprintf("Mock OCR text for document %d.", docID), Pages: 1}, nil
}
