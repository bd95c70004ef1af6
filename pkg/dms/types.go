package dms

import "encoding/json"

// Document is a DMS document with its metadata.
type Document struct {
	ID              int                `json:"id"`
	Title           string             `json:"title"`
	Content         string             `json:"content"`
	CorrespondentID *int               `json:"correspondent"`
	DocumentTypeID  *int               `json:"document_type"`
	TagIDs          []int              `json:"tags"`
	CustomFields    []CustomFieldValue `json:"custom_fields"`
	Created         string             `json:"created"`
	Added           string             `json:"added"`
}

// Tag is a DMS tag.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Correspondent is a DMS correspondent.
type Correspondent struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DocumentType is a DMS document type.
type DocumentType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CustomField is a DMS custom field definition.
type CustomField struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	DataType string `json:"data_type"` // string|url|date|boolean|integer|float|monetary|documentlink|select
	ExtraData struct {
		SelectOptions []SelectOption `json:"select_options,omitempty"`
	} `json:"extra_data,omitempty"`
}

// SelectOption is one allowed value of a select custom field.
type SelectOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CustomFieldValue is one field value attached to a document.
type CustomFieldValue struct {
	FieldID int `json:"field"`
	// Value is type-dependent: string, number, bool, or []int for
	// documentlink fields.
	Value json.RawMessage `json:"value"`
}

// DocumentUpdate carries the mutable document metadata for UpdateDocument.
// Nil fields are left untouched.
type DocumentUpdate struct {
	Title           *string            `json:"title,omitempty"`
	CorrespondentID *int               `json:"correspondent,omitempty"`
	DocumentTypeID  *int               `json:"document_type,omitempty"`
	CustomFields    []CustomFieldValue `json:"custom_fields,omitempty"`
}

// DocumentFilter selects documents for listing. Results are ordered
// oldest-first by created date, then id, so the backlog drains in a
// stable order.
type DocumentFilter struct {
	// TagIDs restricts to documents carrying any of these tags.
	TagIDs []int

	// ExcludeTagIDs drops documents carrying any of these tags.
	ExcludeTagIDs []int

	// Limit caps the number of returned documents; 0 means one page.
	Limit int
}

// listResponse is the DMS paginated envelope.
type listResponse[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}
