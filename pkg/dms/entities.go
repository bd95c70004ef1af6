package dms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Tags lists all tags.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	return listAll[Tag](ctx, c, "/api/tags/", nil, 0)
}

// Correspondents lists all correspondents.
func (c *Client) Correspondents(ctx context.Context) ([]Correspondent, error) {
	return listAll[Correspondent](ctx, c, "/api/correspondents/", nil, 0)
}

// DocumentTypes lists all document types.
func (c *Client) DocumentTypes(ctx context.Context) ([]DocumentType, error) {
	return listAll[DocumentType](ctx, c, "/api/document_types/", nil, 0)
}

// CustomFields lists all custom field definitions.
func (c *Client) CustomFields(ctx context.Context) ([]CustomField, error) {
	return listAll[CustomField](ctx, c, "/api/custom_fields/", nil, 0)
}

// EnsureTag returns the tag with the given name, creating it if absent.
// Lookup is case-insensitive via the tag cache. Creation races resolve
// by refreshing the cache and retrying the lookup, so concurrent callers
// converge on one tag.
func (c *Client) EnsureTag(ctx context.Context, name string) (Tag, error) {
	if t, ok := c.TagByName(name); ok {
		return t, nil
	}

	var created Tag
	err := c.do(ctx, http.MethodPost, "/api/tags/", map[string]string{"name": name}, &created)
	if err == nil {
		c.cacheTag(created)
		return created, nil
	}

	// A 400 from a unique-name violation means someone else created it.
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusBadRequest {
		if refreshErr := c.RefreshTagCache(ctx); refreshErr != nil {
			return Tag{}, refreshErr
		}
		if t, ok := c.TagByName(name); ok {
			return t, nil
		}
	}
	return Tag{}, fmt.Errorf("failed to create tag %q: %w", name, err)
}

// EnsureCorrespondent returns the correspondent with the given name,
// creating it if absent. Matching is case-insensitive.
func (c *Client) EnsureCorrespondent(ctx context.Context, name string) (Correspondent, error) {
	existing, err := c.Correspondents(ctx)
	if err != nil {
		return Correspondent{}, err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}

	var created Correspondent
	if err := c.do(ctx, http.MethodPost, "/api/correspondents/", map[string]string{"name": name}, &created); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusBadRequest {
			// Lost a creation race; the entity exists now.
			existing, lookupErr := c.Correspondents(ctx)
			if lookupErr == nil {
				for _, e := range existing {
					if strings.EqualFold(e.Name, name) {
						return e, nil
					}
				}
			}
		}
		return Correspondent{}, fmt.Errorf("failed to create correspondent %q: %w", name, err)
	}
	return created, nil
}

// EnsureDocumentType returns the document type with the given name,
// creating it if absent. Matching is case-insensitive.
func (c *Client) EnsureDocumentType(ctx context.Context, name string) (DocumentType, error) {
	existing, err := c.DocumentTypes(ctx)
	if err != nil {
		return DocumentType{}, err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}

	var created DocumentType
	if err := c.do(ctx, http.MethodPost, "/api/document_types/", map[string]string{"name": name}, &created); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusBadRequest {
			existing, lookupErr := c.DocumentTypes(ctx)
			if lookupErr == nil {
				for _, e := range existing {
					if strings.EqualFold(e.Name, name) {
						return e, nil
					}
				}
			}
		}
		return DocumentType{}, fmt.Errorf("failed to create document type %q: %w", name, err)
	}
	return created, nil
}
