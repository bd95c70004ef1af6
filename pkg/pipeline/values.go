package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
)

// runTitle proposes and applies a document title.
func (o *Orchestrator) runTitle(ctx context.Context, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	spec := StageSpec{
		Name:       string(models.StageTitle),
		Kind:       models.ReviewKindTitle,
		PromptName: "title",
		Vars: func(feedback string) prompt.Vars {
			return prompt.Vars{
				DocumentContent: doc.Content,
				DocumentTitle:   doc.Title,
				Feedback:        feedback,
			}
		},
	}

	outcome, err := o.confirmValue(ctx, doc.ID, spec)
	if err != nil {
		if llm.IsModelFailure(err) {
			return o.escalateModelFailure(ctx, doc, spec, outcome, models.StageTitle, fromStage, err, ch, result)
		}
		result.Error = err.Error()
		return statusError
	}
	if !outcome.Converged {
		return o.enqueueOutcome(ctx, doc, spec, outcome, models.StageTitle, ch, result)
	}

	title := outcome.Analysis.Suggestion
	if err := o.dms.UpdateDocument(ctx, doc.ID, dms.DocumentUpdate{Title: &title}); err != nil {
		result.Error = fmt.Sprintf("failed to write title: %v", err)
		return statusError
	}
	doc.Title = title

	if err := o.transition(ctx, doc.ID, fromStage, models.StageTitle); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// runCorrespondent proposes and applies the correspondent.
func (o *Orchestrator) runCorrespondent(ctx context.Context, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	existing, err := o.dms.Correspondents(ctx)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}
	names := make([]string, len(existing))
	for i, c := range existing {
		names[i] = c.Name
	}

	spec := StageSpec{
		Name:       string(models.StageCorrespondent),
		Kind:       models.ReviewKindCorrespondent,
		PromptName: "correspondent",
		Vars: func(feedback string) prompt.Vars {
			return prompt.Vars{
				DocumentContent:  doc.Content,
				ExistingEntities: names,
				Feedback:         feedback,
			}
		},
	}

	outcome, err := o.confirmValue(ctx, doc.ID, spec)
	if err != nil {
		if llm.IsModelFailure(err) {
			return o.escalateModelFailure(ctx, doc, spec, outcome, models.StageCorrespondent, fromStage, err, ch, result)
		}
		result.Error = err.Error()
		return statusError
	}
	if !outcome.Converged {
		return o.enqueueOutcome(ctx, doc, spec, outcome, models.StageCorrespondent, ch, result)
	}

	name := outcome.Analysis.Suggestion
	known := entityExists(names, name)
	if !known && o.cfg.Confirmation.RequireUserForNewEntities {
		return o.enqueueNewEntity(ctx, doc, "correspondent", name, outcome, models.StageCorrespondent, ch, result)
	}

	correspondent, err := o.dms.EnsureCorrespondent(ctx, name)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}
	if err := o.dms.UpdateDocument(ctx, doc.ID, dms.DocumentUpdate{CorrespondentID: &correspondent.ID}); err != nil {
		result.Error = fmt.Sprintf("failed to write correspondent: %v", err)
		return statusError
	}

	if err := o.transition(ctx, doc.ID, fromStage, models.StageCorrespondent); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// runDocumentType proposes and applies the document type.
func (o *Orchestrator) runDocumentType(ctx context.Context, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	existing, err := o.dms.DocumentTypes(ctx)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}
	names := make([]string, len(existing))
	for i, dt := range existing {
		names[i] = dt.Name
	}

	spec := StageSpec{
		Name:       string(models.StageDocumentType),
		Kind:       models.ReviewKindDocumentType,
		PromptName: "document_type",
		Vars: func(feedback string) prompt.Vars {
			return prompt.Vars{
				DocumentContent:  doc.Content,
				ExistingEntities: names,
				Feedback:         feedback,
			}
		},
	}

	outcome, err := o.confirmValue(ctx, doc.ID, spec)
	if err != nil {
		if llm.IsModelFailure(err) {
			return o.escalateModelFailure(ctx, doc, spec, outcome, models.StageDocumentType, fromStage, err, ch, result)
		}
		result.Error = err.Error()
		return statusError
	}
	if !outcome.Converged {
		return o.enqueueOutcome(ctx, doc, spec, outcome, models.StageDocumentType, ch, result)
	}

	name := outcome.Analysis.Suggestion
	if !entityExists(names, name) && o.cfg.Confirmation.RequireUserForNewEntities {
		return o.enqueueNewEntity(ctx, doc, "document_type", name, outcome, models.StageDocumentType, ch, result)
	}

	docType, err := o.dms.EnsureDocumentType(ctx, name)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}
	if err := o.dms.UpdateDocument(ctx, doc.ID, dms.DocumentUpdate{DocumentTypeID: &docType.ID}); err != nil {
		result.Error = fmt.Sprintf("failed to write document type: %v", err)
		return statusError
	}

	if err := o.transition(ctx, doc.ID, fromStage, models.StageDocumentType); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// enqueueOutcome queues a non-converged value for human review and
// emits needs_review. The document keeps its current stage tag and
// gains the manual-review tag; approval applies the value, sets the
// next_tag, and lifts the hold.
func (o *Orchestrator) enqueueOutcome(ctx context.Context, doc *dms.Document, spec StageSpec, outcome Outcome, stage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	nextTag := doneTag(stage, o.cfg.Tags)
	req := models.AddReviewRequest{
		DocID:        doc.ID,
		DocTitle:     doc.Title,
		Kind:         spec.Kind,
		Suggestion:   outcome.Analysis.Suggestion,
		Reasoning:    outcome.Analysis.Reasoning,
		Alternatives: outcome.Analysis.Alternatives,
		Attempts:     outcome.Analysis.AttemptsUsed,
	}
	if outcome.LastFeedback != "" {
		req.LastFeedback = &outcome.LastFeedback
	}
	if nextTag != "" {
		req.NextTag = &nextTag
	}

	id, err := o.reviews.Add(ctx, req)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}
	if err := o.dms.TransitionTag(ctx, doc.ID, "", o.cfg.Tags.ManualReview); err != nil {
		result.Error = err.Error()
		return statusError
	}

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeNeedsReview, doc.ID).
		WithStep(spec.Name).
		WithData(map[string]any{
			"review_id":  id,
			"kind":       spec.Kind,
			"suggestion": outcome.Analysis.Suggestion,
		}))
	return statusNeedsReview
}

// escalateModelFailure handles an LLM call that kept failing after
// retries. With a usable partial proposal the stage escalates to human
// review like a non-converged loop; without one the document is parked
// failed. Either way it never ends up silently stuck at its stage.
func (o *Orchestrator) escalateModelFailure(ctx context.Context, doc *dms.Document, spec StageSpec, outcome Outcome, stage, fromStage models.Stage, callErr error, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	o.logger.Warn("Model call failed, escalating",
		"doc_id", doc.ID, "stage", spec.Name, "error", callErr)

	if strings.TrimSpace(outcome.Analysis.Suggestion) == "" {
		return o.failDocument(ctx, doc, fromStage, fmt.Sprintf("%s stage failed: %v", spec.Name, callErr), result)
	}
	if outcome.LastFeedback == "" {
		outcome.LastFeedback = fmt.Sprintf("model call failed: %v", callErr)
	}
	return o.enqueueOutcome(ctx, doc, spec, outcome, stage, ch, result)
}

// failDocument parks the document under the failed tag, consuming its
// stage tag, and records the reason on the result.
func (o *Orchestrator) failDocument(ctx context.Context, doc *dms.Document, fromStage models.Stage, reason string, result *models.PipelineResult) stageStatus {
	result.Error = reason
	if err := o.dms.TransitionTag(ctx, doc.ID, currentTag(fromStage, o.cfg.Tags), o.cfg.Tags.Failed); err != nil {
		o.logger.Error("Failed to tag document as failed", "doc_id", doc.ID, "error", err)
	}
	return statusFailed
}

// enqueueNewEntity queues a net-new entity name when policy forbids
// auto-creation. Stored as a schema suggestion so approval creates the
// entity, applies it, and resumes via next_tag.
func (o *Orchestrator) enqueueNewEntity(ctx context.Context, doc *dms.Document, entityKind, name string, outcome Outcome, stage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	nextTag := doneTag(stage, o.cfg.Tags)
	req := models.AddReviewRequest{
		DocID:      doc.ID,
		DocTitle:   doc.Title,
		Kind:       models.ReviewKindSchemaSuggestion,
		Suggestion: name,
		Reasoning:  outcome.Analysis.Reasoning,
		Attempts:   outcome.Analysis.AttemptsUsed,
		NextTag:    &nextTag,
		Metadata: map[string]any{
			"entity_kind": entityKind,
			"apply_to":    "document",
		},
	}

	id, err := o.reviews.Add(ctx, req)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeNeedsReview, doc.ID).
		WithStep(string(stage)).
		WithData(map[string]any{
			"review_id":   id,
			"kind":        models.ReviewKindSchemaSuggestion,
			"entity_kind": entityKind,
			"suggestion":  name,
		}))
	return statusNeedsReview
}

func entityExists(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
