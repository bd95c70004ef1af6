package dms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Document fetches one document by id.
func (c *Client) Document(ctx context.Context, id int) (*Document, error) {
	var doc Document
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/documents/%d/", id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Documents lists documents matching the filter, oldest first by created
// date then id, so the backlog drains deterministically.
func (c *Client) Documents(ctx context.Context, filter DocumentFilter) ([]Document, error) {
	params := url.Values{}
	params.Set("ordering", "created,id")
	if len(filter.TagIDs) > 0 {
		params.Set("tags__id__in", joinInts(filter.TagIDs))
	}
	if len(filter.ExcludeTagIDs) > 0 {
		params.Set("tags__id__none", joinInts(filter.ExcludeTagIDs))
	}
	return listAll[Document](ctx, c, "/api/documents/", params, filter.Limit)
}

// UpdateDocument patches the document's mutable metadata. Nil fields in
// the update are left untouched. The write carries absolute values, so
// retries are idempotent.
func (c *Client) UpdateDocument(ctx context.Context, id int, update DocumentUpdate) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/documents/%d/", id), update, nil)
}

// UpdateContent replaces the document's OCR text content.
func (c *Client) UpdateContent(ctx context.Context, id int, content string) error {
	body := map[string]string{"content": content}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/documents/%d/", id), body, nil)
}

// ModifyTags adds and removes tags on a document in one write. The new
// tag set is computed from the current document state, so repeating the
// call is a no-op.
func (c *Client) ModifyTags(ctx context.Context, docID int, add, remove []int) error {
	doc, err := c.Document(ctx, docID)
	if err != nil {
		return err
	}

	current := make(map[int]bool, len(doc.TagIDs))
	for _, id := range doc.TagIDs {
		current[id] = true
	}
	for _, id := range add {
		current[id] = true
	}
	for _, id := range remove {
		delete(current, id)
	}

	tags := make([]int, 0, len(current))
	for id := range current {
		tags = append(tags, id)
	}
	body := map[string][]int{"tags": tags}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/documents/%d/", docID), body, nil)
}

// TransitionTag moves a document from one workflow tag to the next. The
// new tag is added before the old one is removed, in two separate
// writes, so an interrupted transition leaves the document with both
// tags rather than neither. Stage derivation resolves the overlap by
// taking the most advanced tag present.
func (c *Client) TransitionTag(ctx context.Context, docID int, from, to string) error {
	toTag, err := c.EnsureTag(ctx, to)
	if err != nil {
		return fmt.Errorf("failed to resolve target tag %q: %w", to, err)
	}
	if err := c.ModifyTags(ctx, docID, []int{toTag.ID}, nil); err != nil {
		return fmt.Errorf("failed to add tag %q: %w", to, err)
	}

	if from == "" || from == to {
		return nil
	}
	fromTag, ok := c.TagByName(from)
	if !ok {
		// Source tag unknown to the DMS means there is nothing to remove.
		return nil
	}
	if err := c.ModifyTags(ctx, docID, nil, []int{fromTag.ID}); err != nil {
		return fmt.Errorf("failed to remove tag %q: %w", from, err)
	}
	return nil
}

// Download fetches the original document binary for OCR.
func (c *Client) Download(ctx context.Context, docID int) ([]byte, error) {
	path := fmt.Sprintf("/api/documents/%d/download/", docID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dms: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: GET %s", ErrNotFound, path)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUnauthorized, path, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{Method: http.MethodGet, Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	return io.ReadAll(resp.Body)
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
