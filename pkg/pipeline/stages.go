package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/inkwell-ai/inkwell/ent/documentsummary"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
)

// runOCR extracts text and writes it back as document content. OCR is
// the only stage whose provider failure marks the document failed
// outright: without text, nothing downstream can run.
func (o *Orchestrator) runOCR(ctx context.Context, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	if strings.TrimSpace(doc.Content) == "" {
		data, err := o.dms.Download(ctx, doc.ID)
		if err != nil {
			result.Error = fmt.Sprintf("failed to download document: %v", err)
			return statusError
		}

		extracted, err := o.ocr.ExtractText(ctx, doc.ID, data)
		if err != nil {
			return o.failDocument(ctx, doc, fromStage, fmt.Sprintf("ocr failed: %v", err), result)
		}
		o.recorder.Record(ctx, doc.ID, string(models.StageOCR), "extracted", map[string]any{
			"pages":      extracted.Pages,
			"characters": len(extracted.Text),
		})

		if err := o.dms.UpdateContent(ctx, doc.ID, extracted.Text); err != nil {
			result.Error = fmt.Sprintf("failed to store content: %v", err)
			return statusError
		}
		doc.Content = extracted.Text
	}

	if err := o.transition(ctx, doc.ID, fromStage, models.StageOCR); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// runSummary generates a short summary into the local store. The summary
// is advisory: generation or store failures log and the stage still
// completes.
func (o *Orchestrator) runSummary(ctx context.Context, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	raw, err := o.completeTemplate(ctx, o.analyst, "system_analyst", "summary", prompt.Vars{
		DocumentContent: doc.Content,
		DocumentTitle:   doc.Title,
	})
	if err != nil {
		o.logger.Warn("Summary generation failed", "doc_id", doc.ID, "error", err)
		o.recorder.Record(ctx, doc.ID, string(models.StageSummary), "skipped", map[string]any{"error": err.Error()})
	} else if summary := strings.TrimSpace(raw); summary != "" {
		err := o.entc.DocumentSummary.Create().
			SetDocID(doc.ID).
			SetSummary(summary).
			SetModel(o.analyst.Model()).
			SetCreatedAt(time.Now()).
			OnConflictColumns(documentsummary.FieldDocID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			o.logger.Warn("Failed to store summary", "doc_id", doc.ID, "error", err)
		}
	}

	if err := o.transition(ctx, doc.ID, fromStage, models.StageSummary); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// schemaSuggestions is the wire shape of the schema-analysis response.
type schemaSuggestions struct {
	Suggestions []models.SchemaSuggestion `json:"suggestions"`
}

// runSchemaAnalysis asks the analyst whether the archive is missing
// entities this document needs. Any accepted suggestion pauses the
// pipeline until a human rules on it.
func (o *Orchestrator) runSchemaAnalysis(ctx context.Context, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	existing, err := o.existingEntityNames(ctx)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}

	raw, err := o.completeTemplate(ctx, o.analyst, "system_analyst", "schema_analysis", prompt.Vars{
		DocumentContent:  doc.Content,
		ExistingEntities: existing,
	})
	if err != nil {
		if llm.IsModelFailure(err) {
			return o.failDocument(ctx, doc, fromStage, fmt.Sprintf("schema analysis failed: %v", err), result)
		}
		result.Error = fmt.Sprintf("schema analysis failed: %v", err)
		return statusError
	}

	var parsed schemaSuggestions
	if obj, ok := llm.ExtractJSON(raw); ok {
		// Malformed JSON means no usable suggestions, not a failure.
		_ = json.Unmarshal([]byte(obj), &parsed)
	}

	// Entries are "kind: name"; dedup on the bare name across kinds.
	existingSet := make(map[string]bool, len(existing))
	for _, entry := range existing {
		if _, after, ok := strings.Cut(entry, ": "); ok {
			existingSet[strings.ToLower(after)] = true
		}
	}

	nextTag := o.cfg.Tags.SchemaDoneTag()
	enqueued := 0
	for _, s := range parsed.Suggestions {
		name := strings.TrimSpace(s.SuggestedName)
		if name == "" || s.SimilarToExisting != "" || existingSet[strings.ToLower(name)] {
			continue
		}
		blocked, err := o.blocklist.IsBlocked(ctx, models.ReviewKindSchemaSuggestion, name)
		if err != nil {
			result.Error = err.Error()
			return statusError
		}
		if blocked {
			continue
		}

		_, err = o.reviews.Add(ctx, models.AddReviewRequest{
			DocID:      doc.ID,
			DocTitle:   doc.Title,
			Kind:       models.ReviewKindSchemaSuggestion,
			Suggestion: name,
			Reasoning:  fmt.Sprintf("Schema analysis proposed a new %s", s.EntityKind),
			NextTag:    &nextTag,
			Metadata: map[string]any{
				"entity_kind": s.EntityKind,
				"confidence":  s.Confidence,
			},
		})
		if err != nil {
			result.Error = err.Error()
			return statusError
		}
		enqueued++
	}

	if enqueued > 0 {
		o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeSchemaReviewNeeded, doc.ID).
			WithStep(string(models.StageSchemaAnalysis)).
			WithData(map[string]any{"suggestions": enqueued}))
		if err := o.dms.TransitionTag(ctx, doc.ID, currentTag(fromStage, o.cfg.Tags), o.cfg.Tags.SchemaReviewTag()); err != nil {
			result.Error = err.Error()
			return statusError
		}
		o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypePipelinePaused, doc.ID).
			WithMessage("schema review required"))
		return statusSchemaReview
	}

	if err := o.transition(ctx, doc.ID, fromStage, models.StageSchemaAnalysis); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// existingEntityNames lists every known entity name for schema-analysis
// prompts: non-workflow tags, correspondents, document types.
func (o *Orchestrator) existingEntityNames(ctx context.Context) ([]string, error) {
	workflow := make(map[string]bool)
	for _, t := range o.cfg.Tags.All() {
		workflow[strings.ToLower(t)] = true
	}

	tags, err := o.dms.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	correspondents, err := o.dms.Correspondents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list correspondents: %w", err)
	}
	types, err := o.dms.DocumentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list document types: %w", err)
	}

	var names []string
	for _, t := range tags {
		if !workflow[strings.ToLower(t.Name)] {
			names = append(names, "tag: "+t.Name)
		}
	}
	for _, c := range correspondents {
		names = append(names, "correspondent: "+c.Name)
	}
	for _, dt := range types {
		names = append(names, "document_type: "+dt.Name)
	}
	return names, nil
}

// completeTemplate renders a template pair and runs one non-streaming
// generation.
func (o *Orchestrator) completeTemplate(ctx context.Context, client llm.Client, systemName, name string, vars prompt.Vars) (string, error) {
	system, err := o.prompts.Render(systemName, prompt.Vars{})
	if err != nil {
		return "", err
	}
	userPrompt, err := o.prompts.Render(name, vars)
	if err != nil {
		return "", err
	}

	o.logPrompt(name, "analysis", userPrompt)
	raw, err := llm.Complete(ctx, client, llm.Request{System: system, Prompt: userPrompt})
	if err != nil {
		return "", err
	}
	o.logResponse(name, "analysis", raw)
	return raw, nil
}
