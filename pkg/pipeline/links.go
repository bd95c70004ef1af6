package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
)

// runDocumentLinks finds related documents through vector similarity and
// links confirmed matches via a documentlink custom field. The stage is
// virtual and gated on vector search: without an indexer or candidates
// above the score floor it is a no-op.
func (o *Orchestrator) runDocumentLinks(ctx context.Context, doc *dms.Document, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	if o.indexer == nil || !o.cfg.VectorSearch.Enabled {
		return statusContinue
	}

	linkField, ok := o.documentLinkField(ctx, result)
	if result.Error != "" {
		return statusError
	}
	if !ok {
		o.logger.Debug("No documentlink custom field defined, skipping links", "doc_id", doc.ID)
		return statusContinue
	}

	text, _ := o.indexer.Projection(doc, o.tagNames(doc), "", "")
	matches, err := o.indexer.Similar(ctx, doc.ID, text, o.cfg.VectorSearch.TopK, o.cfg.VectorSearch.MinScore)
	if err != nil {
		// Similarity search is best effort; a store outage must not block
		// completion.
		o.logger.Warn("Similarity search failed", "doc_id", doc.ID, "error", err)
		return statusContinue
	}
	if len(matches) == 0 {
		return statusContinue
	}

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeStepStart, doc.ID).
		WithStep(string(models.StageDocumentLinks)))

	candidates := make(map[int]bool, len(matches))
	titles := make([]string, 0, len(matches))
	for _, m := range matches {
		candidates[m.ID] = true
		title, _ := m.Payload["title"].(string)
		titles = append(titles, fmt.Sprintf("%d: %s", m.ID, title))
	}

	spec := StageSpec{
		Name:       string(models.StageDocumentLinks),
		Kind:       models.ReviewKindDocumentLink,
		PromptName: "document_link",
		Vars: func(feedback string) prompt.Vars {
			return prompt.Vars{
				DocumentContent: doc.Content,
				DocumentTitle:   doc.Title,
				CandidateTitles: titles,
				Feedback:        feedback,
			}
		},
		Validate: func(suggestion string) error {
			if isNoneAnswer(suggestion) {
				return nil
			}
			id, err := parseLinkTarget(suggestion)
			if err != nil {
				return err
			}
			if !candidates[id] {
				return fmt.Errorf("document %d is not among the candidates; pick one of the listed ids or answer none", id)
			}
			return nil
		},
	}

	outcome, err := o.confirmValue(ctx, doc.ID, spec)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}
	if !outcome.Converged {
		if strings.TrimSpace(outcome.Analysis.Suggestion) == "" || isNoneAnswer(outcome.Analysis.Suggestion) {
			// The analyst found no real relation; that is a valid outcome.
			return statusContinue
		}
		req := models.AddReviewRequest{
			DocID:      doc.ID,
			DocTitle:   doc.Title,
			Kind:       models.ReviewKindDocumentLink,
			Suggestion: outcome.Analysis.Suggestion,
			Reasoning:  outcome.Analysis.Reasoning,
			Attempts:   outcome.Analysis.AttemptsUsed,
			Metadata:   map[string]any{"field_id": linkField.ID},
		}
		if outcome.LastFeedback != "" {
			req.LastFeedback = &outcome.LastFeedback
		}
		id, err := o.reviews.Add(ctx, req)
		if err != nil {
			result.Error = err.Error()
			return statusError
		}
		o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeNeedsReview, doc.ID).
			WithStep(string(models.StageDocumentLinks)).
			WithData(map[string]any{"review_id": id, "kind": models.ReviewKindDocumentLink}))
		return statusNeedsReview
	}

	if isNoneAnswer(outcome.Analysis.Suggestion) {
		return statusContinue
	}
	target, err := parseLinkTarget(outcome.Analysis.Suggestion)
	if err != nil {
		o.logger.Warn("Dropping unparseable link target", "doc_id", doc.ID, "value", outcome.Analysis.Suggestion)
		return statusContinue
	}

	if err := writeDocumentLink(ctx, o.dms, doc, linkField, target); err != nil {
		result.Error = err.Error()
		return statusError
	}

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeStepComplete, doc.ID).
		WithStep(string(models.StageDocumentLinks)).
		WithData(map[string]any{"target": target}))
	o.recorder.Record(ctx, doc.ID, string(models.StageDocumentLinks), "completed",
		map[string]any{"target": target})
	return statusContinue
}

// documentLinkField returns the first documentlink custom field defined
// in the DMS.
func (o *Orchestrator) documentLinkField(ctx context.Context, result *models.PipelineResult) (dms.CustomField, bool) {
	defs, err := o.dms.CustomFields(ctx)
	if err != nil {
		result.Error = fmt.Sprintf("failed to list custom fields: %v", err)
		return dms.CustomField{}, false
	}
	for _, def := range defs {
		if def.DataType == "documentlink" {
			return def, true
		}
	}
	return dms.CustomField{}, false
}

// writeDocumentLink merges target into the document's link field value.
func writeDocumentLink(ctx context.Context, client *dms.Client, doc *dms.Document, field dms.CustomField, target int) error {
	values := append([]dms.CustomFieldValue(nil), doc.CustomFields...)

	var links []int
	found := false
	for i, v := range values {
		if v.FieldID != field.ID {
			continue
		}
		found = true
		if len(v.Value) > 0 {
			// A malformed stored value is replaced rather than failed on.
			_ = json.Unmarshal(v.Value, &links)
		}
		for _, id := range links {
			if id == target {
				return nil
			}
		}
		links = append(links, target)
		encoded, err := json.Marshal(links)
		if err != nil {
			return fmt.Errorf("failed to encode document links: %w", err)
		}
		values[i].Value = encoded
		break
	}
	if !found {
		encoded, err := json.Marshal([]int{target})
		if err != nil {
			return fmt.Errorf("failed to encode document links: %w", err)
		}
		values = append(values, dms.CustomFieldValue{FieldID: field.ID, Value: encoded})
	}

	if err := client.UpdateDocument(ctx, doc.ID, dms.DocumentUpdate{CustomFields: values}); err != nil {
		return fmt.Errorf("failed to write document link: %w", err)
	}
	doc.CustomFields = values
	return nil
}

// indexDocument embeds the document's projection and upserts it into the
// vector store, resolving entity ids to names first.
func (o *Orchestrator) indexDocument(ctx context.Context, doc *dms.Document) error {
	var correspondent string
	if doc.CorrespondentID != nil {
		name, err := o.correspondentName(ctx, *doc.CorrespondentID)
		if err != nil {
			return err
		}
		correspondent = name
	}
	var docType string
	if doc.DocumentTypeID != nil {
		name, err := o.documentTypeName(ctx, *doc.DocumentTypeID)
		if err != nil {
			return err
		}
		docType = name
	}
	return o.indexer.Index(ctx, doc, o.tagNames(doc), correspondent, docType)
}

func (o *Orchestrator) correspondentName(ctx context.Context, id int) (string, error) {
	all, err := o.dms.Correspondents(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range all {
		if c.ID == id {
			return c.Name, nil
		}
	}
	return "", nil
}

func (o *Orchestrator) documentTypeName(ctx context.Context, id int) (string, error) {
	all, err := o.dms.DocumentTypes(ctx)
	if err != nil {
		return "", err
	}
	for _, dt := range all {
		if dt.ID == id {
			return dt.Name, nil
		}
	}
	return "", nil
}

// parseLinkTarget extracts a document id from the analyst's answer,
// tolerating "id: title" echoes of the candidate list.
func parseLinkTarget(s string) (int, error) {
	s = strings.TrimSpace(s)
	if before, _, ok := strings.Cut(s, ":"); ok {
		s = strings.TrimSpace(before)
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("the value %q is not a candidate document id", s)
	}
	return id, nil
}

// isNoneAnswer reports whether the analyst declined to link.
func isNoneAnswer(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "no", "no link", "null":
		return true
	}
	return false
}
