package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
)

// tagDelta is the wire shape of the tag-stage response. Unlike the
// single-value stages, tags are proposed as a delta against the
// document's current tag set.
type tagDelta struct {
	ToAdd     []string `json:"to_add"`
	ToRemove  []string `json:"to_remove"`
	Reasoning string   `json:"reasoning"`
}

func (d tagDelta) String() string {
	var parts []string
	if len(d.ToAdd) > 0 {
		parts = append(parts, "add: "+strings.Join(d.ToAdd, ", "))
	}
	if len(d.ToRemove) > 0 {
		parts = append(parts, "remove: "+strings.Join(d.ToRemove, ", "))
	}
	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, "; ")
}

func (d tagDelta) empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// runTags proposes a tag delta and applies it through the same
// analyst/reviewer loop as the value stages. Workflow tags are invisible
// here: they are stripped from the document's visible set and any
// proposal touching one is dropped.
func (o *Orchestrator) runTags(ctx context.Context, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	workflow := make(map[string]bool)
	for _, t := range o.cfg.Tags.All() {
		workflow[strings.ToLower(t)] = true
	}

	allTags, err := o.dms.Tags(ctx)
	if err != nil {
		result.Error = err.Error()
		return statusError
	}
	var available []string
	for _, t := range allTags {
		if !workflow[strings.ToLower(t.Name)] {
			available = append(available, t.Name)
		}
	}

	onDoc := make(map[string]bool)
	var current []string
	for _, name := range o.tagNames(doc) {
		if !workflow[strings.ToLower(name)] {
			current = append(current, name)
			onDoc[strings.ToLower(name)] = true
		}
	}

	delta, outcome, err := o.confirmTagDelta(ctx, doc, available, current, workflow, onDoc)
	if err != nil {
		if llm.IsModelFailure(err) {
			// A tag delta is not reviewable without a model proposal.
			return o.failDocument(ctx, doc, fromStage, fmt.Sprintf("tags stage failed: %v", err), result)
		}
		result.Error = err.Error()
		return statusError
	}
	if outcome != nil {
		// Loop exhausted: queue each proposed addition for review.
		return o.enqueueTagReviews(ctx, doc, delta, *outcome, ch, result)
	}

	if delta.empty() {
		if err := o.transition(ctx, doc.ID, fromStage, models.StageTags); err != nil {
			result.Error = err.Error()
			return statusError
		}
		return statusContinue
	}

	existing := make(map[string]bool, len(available))
	for _, name := range available {
		existing[strings.ToLower(name)] = true
	}

	var addIDs []int
	var pendingNew []string
	for _, name := range delta.ToAdd {
		if !existing[strings.ToLower(name)] && o.cfg.Confirmation.RequireUserForNewEntities {
			pendingNew = append(pendingNew, name)
			continue
		}
		tag, err := o.dms.EnsureTag(ctx, name)
		if err != nil {
			result.Error = err.Error()
			return statusError
		}
		addIDs = append(addIDs, tag.ID)
	}

	var removeIDs []int
	for _, name := range delta.ToRemove {
		if tag, ok := o.dms.TagByName(name); ok && onDoc[strings.ToLower(name)] {
			removeIDs = append(removeIDs, tag.ID)
		}
	}

	if len(addIDs) > 0 || len(removeIDs) > 0 {
		if err := o.dms.ModifyTags(ctx, doc.ID, addIDs, removeIDs); err != nil {
			result.Error = fmt.Sprintf("failed to modify tags: %v", err)
			return statusError
		}
	}

	if len(pendingNew) > 0 {
		return o.enqueueNewTagNames(ctx, doc, pendingNew, delta.Reasoning, ch, result)
	}

	if err := o.transition(ctx, doc.ID, fromStage, models.StageTags); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// confirmTagDelta runs the confirmation loop over a tag delta. A nil
// feedback pointer in the return means the delta converged; a non-nil
// one carries the reviewer's final objection.
func (o *Orchestrator) confirmTagDelta(ctx context.Context, doc *dms.Document, available, current []string, workflow, onDoc map[string]bool) (tagDelta, *string, error) {
	maxRetries := o.cfg.Confirmation.MaxRetries
	log := o.logger.With("doc_id", doc.ID, "stage", models.StageTags)

	var feedback string
	var last tagDelta
	for attempt := 1; attempt <= maxRetries; attempt++ {
		raw, err := o.completeTemplate(ctx, o.analyst, "system_analyst", "tags", prompt.Vars{
			DocumentContent:  doc.Content,
			DocumentTitle:    doc.Title,
			ExistingEntities: available,
			AllowedValues:    current,
			Feedback:         feedback,
		})
		if err != nil {
			return tagDelta{}, nil, fmt.Errorf("tag analysis failed: %w", err)
		}

		var delta tagDelta
		if obj, ok := llm.ExtractJSON(raw); ok {
			if err := json.Unmarshal([]byte(obj), &delta); err != nil {
				feedback = "The previous response was not valid JSON with to_add and to_remove arrays."
				log.Debug("Unparseable tag delta", "attempt", attempt)
				continue
			}
		} else {
			feedback = "The previous response contained no JSON object. Respond with to_add and to_remove arrays."
			log.Debug("No JSON in tag response", "attempt", attempt)
			continue
		}

		delta, rejected, err := o.sanitizeTagDelta(ctx, delta, workflow, onDoc)
		if err != nil {
			return tagDelta{}, nil, err
		}
		last = delta
		if rejected != "" {
			feedback = rejected
			log.Debug("Tag delta rejected before review", "attempt", attempt, "reason", rejected)
			continue
		}
		if delta.empty() {
			// Nothing to change needs no reviewer sign-off.
			return delta, nil, nil
		}

		verdict, err := o.reviewTagDelta(ctx, doc, delta)
		if err != nil {
			return tagDelta{}, nil, err
		}
		if verdict.Confirmed {
			log.Debug("Tag delta confirmed", "attempt", attempt, "delta", delta.String())
			return delta, nil, nil
		}
		feedback = verdict.Feedback
		log.Debug("Tag delta rejected by reviewer", "attempt", attempt, "feedback", feedback)
	}

	return last, &feedback, nil
}

// sanitizeTagDelta strips workflow tags and no-op entries from a delta
// and drops blocklisted additions. A non-empty rejection string sends
// the loop around with that feedback.
func (o *Orchestrator) sanitizeTagDelta(ctx context.Context, delta tagDelta, workflow, onDoc map[string]bool) (tagDelta, string, error) {
	clean := tagDelta{Reasoning: delta.Reasoning}
	var blockedNames []string

	for _, name := range delta.ToAdd {
		name = strings.TrimSpace(name)
		lower := strings.ToLower(name)
		if name == "" || workflow[lower] || onDoc[lower] {
			continue
		}
		blocked, err := o.blocklist.IsBlocked(ctx, models.ReviewKindTag, name)
		if err != nil {
			return tagDelta{}, "", err
		}
		if blocked {
			blockedNames = append(blockedNames, name)
			continue
		}
		clean.ToAdd = append(clean.ToAdd, name)
	}
	for _, name := range delta.ToRemove {
		name = strings.TrimSpace(name)
		lower := strings.ToLower(name)
		if name == "" || workflow[lower] || !onDoc[lower] {
			continue
		}
		clean.ToRemove = append(clean.ToRemove, name)
	}

	if len(blockedNames) > 0 && clean.empty() {
		return clean, fmt.Sprintf("The tags %s were rejected before and must not be suggested again. Propose different tags or none.",
			strings.Join(blockedNames, ", ")), nil
	}
	return clean, "", nil
}

// reviewTagDelta asks the reviewer to ratify a tag delta.
func (o *Orchestrator) reviewTagDelta(ctx context.Context, doc *dms.Document, delta tagDelta) (models.Verdict, error) {
	raw, err := o.completeTemplate(ctx, o.reviewer, "system_reviewer", "tags_confirmation", prompt.Vars{
		DocumentContent: doc.Content,
		DocumentTitle:   doc.Title,
		SuggestedValue:  delta.String(),
		Reasoning:       delta.Reasoning,
	})
	if err != nil {
		return models.Verdict{}, fmt.Errorf("tag review failed: %w", err)
	}
	return llm.ParseVerdict(raw, o.cfg.Confirmation.ApprovalKeywords), nil
}

// enqueueTagReviews queues each proposed addition of a non-converged
// delta as its own review item. Removals are dropped: without reviewer
// sign-off the safe default is to leave existing tags alone.
func (o *Orchestrator) enqueueTagReviews(ctx context.Context, doc *dms.Document, delta tagDelta, feedback string, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	if len(delta.ToAdd) == 0 {
		// Nothing reviewable survived the loop; move on without changes.
		stage := StageFromTags(o.tagNames(doc), o.cfg.Tags)
		if err := o.transition(ctx, doc.ID, stage, models.StageTags); err != nil {
			result.Error = err.Error()
			return statusError
		}
		return statusContinue
	}

	nextTag := o.cfg.Tags.TagsDone
	enqueued := 0
	for _, name := range delta.ToAdd {
		req := models.AddReviewRequest{
			DocID:      doc.ID,
			DocTitle:   doc.Title,
			Kind:       models.ReviewKindTag,
			Suggestion: name,
			Reasoning:  delta.Reasoning,
			Attempts:   o.cfg.Confirmation.MaxRetries,
			NextTag:    &nextTag,
		}
		if feedback != "" {
			req.LastFeedback = &feedback
		}
		if _, err := o.reviews.Add(ctx, req); err != nil {
			result.Error = err.Error()
			return statusError
		}
		enqueued++
	}
	if err := o.dms.TransitionTag(ctx, doc.ID, "", o.cfg.Tags.ManualReview); err != nil {
		result.Error = err.Error()
		return statusError
	}

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeNeedsReview, doc.ID).
		WithStep(string(models.StageTags)).
		WithData(map[string]any{"kind": models.ReviewKindTag, "count": enqueued}))
	return statusNeedsReview
}

// enqueueNewTagNames queues net-new tag names as schema suggestions when
// policy forbids auto-creating tags.
func (o *Orchestrator) enqueueNewTagNames(ctx context.Context, doc *dms.Document, names []string, reasoning string, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	nextTag := o.cfg.Tags.TagsDone
	for _, name := range names {
		if _, err := o.reviews.Add(ctx, models.AddReviewRequest{
			DocID:      doc.ID,
			DocTitle:   doc.Title,
			Kind:       models.ReviewKindSchemaSuggestion,
			Suggestion: name,
			Reasoning:  reasoning,
			NextTag:    &nextTag,
			Metadata: map[string]any{
				"entity_kind": "tag",
				"apply_to":    "document",
			},
		}); err != nil {
			result.Error = err.Error()
			return statusError
		}
	}

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeNeedsReview, doc.ID).
		WithStep(string(models.StageTags)).
		WithData(map[string]any{"kind": models.ReviewKindSchemaSuggestion, "count": len(names)}))
	return statusNeedsReview
}
