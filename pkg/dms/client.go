// Package dms is the adapter for the external document-management service.
//
// All pipeline reads and writes of document metadata go through this
// client. Calls retry with exponential backoff on transient failures
// (5xx, 429, network errors); a circuit breaker trips on repeated
// failures and on auth errors so a misconfigured token fails fast
// instead of hammering the service.
package dms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/inkwell-ai/inkwell/pkg/config"
)

// Client talks to the DMS REST API.
type Client struct {
	baseURL    string
	token      string
	pageSize   int
	maxRetries int
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger

	mu         sync.RWMutex
	tagsByName map[string]Tag // key: lowercased name
	tagsByID   map[int]Tag
}

// NewClient creates a DMS client from configuration. The API token is
// read from the environment variable named by cfg.TokenEnv.
func NewClient(cfg *config.DMSConfig, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("dms: base_url is required")
	}
	tokenEnv := cfg.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "DMS_TOKEN"
	}
	token := os.Getenv(tokenEnv)
	if token == "" {
		return nil, fmt.Errorf("dms: environment variable %s is not set", tokenEnv)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultDMSTimeout
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      token,
		pageSize:   pageSize,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "dms"),
		tagsByName: make(map[string]Tag),
		tagsByID:   make(map[int]Tag),
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "dms",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Auth failures and server errors count against the breaker.
			// Not-found and other client errors are the caller's problem.
			if errors.Is(err, ErrUnauthorized) {
				return false
			}
			if errors.Is(err, ErrNotFound) {
				return true
			}
			var se *StatusError
			if errors.As(err, &se) {
				return !se.Transient()
			}
			// Network-level failures.
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Circuit breaker state change", "from", from.String(), "to", to.String())
		},
	})

	return c, nil
}

// RefreshTagCache reloads the tag id↔name cache from the DMS. Called at
// startup and after tag creation.
func (c *Client) RefreshTagCache(ctx context.Context) error {
	tags, err := c.Tags(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh tag cache: %w", err)
	}
	byName := make(map[string]Tag, len(tags))
	byID := make(map[int]Tag, len(tags))
	for _, t := range tags {
		byName[strings.ToLower(t.Name)] = t
		byID[t.ID] = t
	}
	c.mu.Lock()
	c.tagsByName = byName
	c.tagsByID = byID
	c.mu.Unlock()
	c.logger.Debug("Tag cache refreshed", "tags", len(tags))
	return nil
}

// TagByName looks a tag up in the cache, case-insensitively.
func (c *Client) TagByName(name string) (Tag, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tagsByName[strings.ToLower(name)]
	return t, ok
}

// TagName resolves a tag id to its name via the cache.
func (c *Client) TagName(id int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tagsByID[id]
	return t.Name, ok
}

func (c *Client) cacheTag(t Tag) {
	c.mu.Lock()
	c.tagsByName[strings.ToLower(t.Name)] = t
	c.tagsByID[t.ID] = t
	c.mu.Unlock()
}

// do performs one API call with retry and circuit breaking. out, when
// non-nil, receives the decoded JSON response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := func() error {
		_, err := c.breaker.Execute(func() (any, error) {
			return nil, c.once(ctx, method, path, body, out)
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(fmt.Errorf("%w: %v", ErrUnavailable, err))
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnauthorized) {
			return backoff.Permanent(err)
		}
		var se *StatusError
		if errors.As(err, &se) && !se.Transient() {
			return backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 15 * time.Second
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxRetries)), ctx))
}

// once performs a single HTTP request without retry.
func (c *Client) once(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("dms: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s %s: status %d", ErrUnauthorized, method, path, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{Method: method, Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return nil
}

// listAll follows the paginated envelope until exhausted or limit reached.
func listAll[T any](ctx context.Context, c *Client, basePath string, params url.Values, limit int) ([]T, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("page_size", fmt.Sprintf("%d", c.pageSize))

	var results []T
	path := basePath + "?" + params.Encode()
	for {
		var page listResponse[T]
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		results = append(results, page.Results...)
		if limit > 0 && len(results) >= limit {
			return results[:limit], nil
		}
		if page.Next == nil || *page.Next == "" {
			return results, nil
		}
		next, err := url.Parse(*page.Next)
		if err != nil {
			return nil, fmt.Errorf("dms: bad next page url %q: %w", *page.Next, err)
		}
		path = next.RequestURI()
	}
}
