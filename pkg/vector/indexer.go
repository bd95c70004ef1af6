package vector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/llm"
)

// maxProjectionContent bounds the content portion of a projection.
const maxProjectionContent = 10000

// Indexer embeds document projections and maintains them in the store.
type Indexer struct {
	store        Store
	embedder     llm.Embedder
	workflowTags map[string]bool
	logger       *slog.Logger
}

// NewIndexer creates an indexer. workflowTags are excluded from
// projections so pipeline state never leaks into similarity.
func NewIndexer(store Store, embedder llm.Embedder, workflowTags []string, logger *slog.Logger) *Indexer {
	excluded := make(map[string]bool, len(workflowTags))
	for _, t := range workflowTags {
		excluded[strings.ToLower(t)] = true
	}
	return &Indexer{
		store:        store,
		embedder:     embedder,
		workflowTags: excluded,
		logger:       logger.With("component", "vector"),
	}
}

// Projection builds the indexable text for a document: title, truncated
// content, non-workflow tag names, correspondent and document type names.
func (ix *Indexer) Projection(doc *dms.Document, tagNames []string, correspondent, docType string) (string, map[string]any) {
	content := doc.Content
	if len(content) > maxProjectionContent {
		content = content[:maxProjectionContent]
	}

	var tags []string
	for _, name := range tagNames {
		if !ix.workflowTags[strings.ToLower(name)] {
			tags = append(tags, name)
		}
	}

	var sb strings.Builder
	sb.WriteString(doc.Title)
	sb.WriteString("\n")
	if correspondent != "" {
		sb.WriteString(correspondent)
		sb.WriteString("\n")
	}
	if docType != "" {
		sb.WriteString(docType)
		sb.WriteString("\n")
	}
	if len(tags) > 0 {
		sb.WriteString(strings.Join(tags, " "))
		sb.WriteString("\n")
	}
	sb.WriteString(content)

	payload := map[string]any{
		"doc_id": doc.ID,
		"title":  doc.Title,
	}
	if correspondent != "" {
		payload["correspondent"] = correspondent
	}
	if docType != "" {
		payload["document_type"] = docType
	}
	if len(tags) > 0 {
		payload["tags"] = tags
	}
	return sb.String(), payload
}

// Index embeds and upserts one document projection.
func (ix *Indexer) Index(ctx context.Context, doc *dms.Document, tagNames []string, correspondent, docType string) error {
	text, payload := ix.Projection(doc, tagNames, correspondent, docType)

	vec, err := ix.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to embed document %d: %w", doc.ID, err)
	}
	if err := ix.store.Upsert(ctx, Point{ID: doc.ID, Vector: vec, Payload: payload}); err != nil {
		return fmt.Errorf("failed to upsert document %d: %w", doc.ID, err)
	}
	ix.logger.Debug("Document indexed", "doc_id", doc.ID)
	return nil
}

// Similar returns documents similar to the given text, excluding docID
// itself.
func (ix *Indexer) Similar(ctx context.Context, docID int, text string, topK int, minScore float64) ([]Match, error) {
	vec, err := ix.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	// One extra so dropping the document itself still fills topK.
	matches, err := ix.store.Query(ctx, vec, topK+1, minScore)
	if err != nil {
		return nil, err
	}
	out := matches[:0]
	for _, m := range matches {
		if m.ID != docID {
			out = append(out, m)
		}
	}
	if topK > 0 && len(out) > topK {
		out = out[:topK]
	}
	return out, nil
}
