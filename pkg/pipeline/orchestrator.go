package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/history"
	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/ocr"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
	"github.com/inkwell-ai/inkwell/pkg/review"
	"github.com/inkwell-ai/inkwell/pkg/vector"
)

// Publisher publishes pipeline events for streaming clients. Satisfied
// by *events.Publisher; nil-able in tests.
type Publisher interface {
	Publish(ctx context.Context, event events.PipelineEvent) error
}

// Orchestrator drives documents through the stage state machine.
type Orchestrator struct {
	cfg       *config.Config
	dms       *dms.Client
	analyst   llm.Client
	reviewer  llm.Client
	prompts   *prompt.Builder
	ocr       ocr.Provider
	indexer   *vector.Indexer
	reviews   *review.Service
	blocklist *review.Blocklist
	recorder  *history.Recorder
	publisher Publisher
	entc      *ent.Client
	logger    *slog.Logger
}

// Deps carries the orchestrator's collaborators.
type Deps struct {
	Config    *config.Config
	DMS       *dms.Client
	Analyst   llm.Client
	Reviewer  llm.Client
	Prompts   *prompt.Builder
	OCR       ocr.Provider
	Indexer   *vector.Indexer // nil disables indexing and document links
	Reviews   *review.Service
	Blocklist *review.Blocklist
	Recorder  *history.Recorder
	Publisher Publisher // nil disables event publishing
	Ent       *ent.Client
	Logger    *slog.Logger
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(d Deps) *Orchestrator {
	return &Orchestrator{
		cfg:       d.Config,
		dms:       d.DMS,
		analyst:   d.Analyst,
		reviewer:  d.Reviewer,
		prompts:   d.Prompts,
		ocr:       d.OCR,
		indexer:   d.Indexer,
		reviews:   d.Reviews,
		blocklist: d.Blocklist,
		recorder:  d.Recorder,
		publisher: d.Publisher,
		entc:      d.Ent,
		logger:    d.Logger.With("component", "pipeline"),
	}
}

// stageStatus tells the run loop what to do after a stage.
type stageStatus int

const (
	statusContinue stageStatus = iota
	statusNeedsReview
	statusSchemaReview
	statusFailed
	statusError
)

// Run processes one document to completion in batch mode.
func (o *Orchestrator) Run(ctx context.Context, docID int) models.PipelineResult {
	return o.run(ctx, docID, nil)
}

// RunStream processes one document, emitting ordered events on the
// returned channel. The channel closes when the run ends.
func (o *Orchestrator) RunStream(ctx context.Context, docID int) <-chan events.PipelineEvent {
	ch := make(chan events.PipelineEvent, 16)
	go func() {
		defer close(ch)
		o.run(ctx, docID, ch)
	}()
	return ch
}

// run is the state machine loop. Stage position is re-derived from tags
// on every iteration, so an approval landing mid-run is picked up and an
// interrupted run resumes exactly where it stopped.
func (o *Orchestrator) run(ctx context.Context, docID int, ch chan<- events.PipelineEvent) models.PipelineResult {
	result := models.PipelineResult{DocID: docID}
	log := o.logger.With("doc_id", docID)
	completed := make(map[models.Stage]bool)

	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypePipelineStart, docID))

	for {
		if err := ctx.Err(); err != nil {
			result.Error = err.Error()
			o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeError, docID).WithMessage(result.Error))
			return result
		}

		doc, err := o.dms.Document(ctx, docID)
		if err != nil {
			if errors.Is(err, dms.ErrNotFound) {
				// Document deleted in the DMS; abandon without failure.
				result.Error = "document no longer exists"
				log.Info("Document vanished, abandoning run")
			} else {
				result.Error = err.Error()
				log.Error("Failed to fetch document", "error", err)
			}
			o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeError, docID).WithMessage(result.Error))
			return result
		}

		tagNames := o.tagNames(doc)
		if o.hasTag(tagNames, o.cfg.Tags.ManualReview) || o.hasTag(tagNames, o.cfg.Tags.Failed) {
			result.Error = "document is marked for manual handling"
			o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypePipelinePaused, docID).WithMessage(result.Error))
			return result
		}

		stage := StageFromTags(tagNames, o.cfg.Tags)
		if stage == models.StageProcessed {
			result.Success = true
			o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypePipelineComplete, docID))
			return result
		}

		next, ok := nextRunnable(stage, o.cfg.Pipeline, completed)
		if !ok || next == models.StageCustomFields || next == models.StageDocumentLinks {
			status := o.runTail(ctx, doc, stage, ch, &result)
			switch status {
			case statusContinue:
				continue
			case statusNeedsReview:
				result.NeedsReview = true
				o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypePipelinePaused, docID).
					WithMessage("waiting for review"))
				return result
			default:
				o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeError, docID).WithMessage(result.Error))
				return result
			}
		}

		status := o.runStage(ctx, next, doc, stage, ch, &result)
		switch status {
		case statusContinue:
			completed[next] = true
			result.Steps = append(result.Steps, string(next))
		case statusNeedsReview:
			result.Steps = append(result.Steps, string(next))
			result.NeedsReview = true
			o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypePipelinePaused, docID).
				WithMessage("waiting for review"))
			return result
		case statusSchemaReview:
			// runSchemaAnalysis emits the pause itself, after the tag hold.
			result.Steps = append(result.Steps, string(next))
			result.SchemaReviewNeeded = true
			return result
		case statusFailed, statusError:
			o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeError, docID).WithMessage(result.Error))
			return result
		}
	}
}

// RunStage executes one named stage ad hoc, with the same event contract
// as a full run.
func (o *Orchestrator) RunStage(ctx context.Context, docID int, stageName string) models.PipelineResult {
	result := models.PipelineResult{DocID: docID}
	stage := models.Stage(stageName)

	valid := false
	for _, s := range runOrder {
		if s == stage {
			valid = true
			break
		}
	}
	if !valid {
		result.Error = fmt.Sprintf("unknown stage %q", stageName)
		return result
	}

	doc, err := o.dms.Document(ctx, docID)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	current := StageFromTags(o.tagNames(doc), o.cfg.Tags)
	var status stageStatus
	switch stage {
	case models.StageCustomFields:
		status = o.runCustomFields(ctx, doc, nil, &result)
	case models.StageDocumentLinks:
		status = o.runDocumentLinks(ctx, doc, nil, &result)
	default:
		status = o.runStage(ctx, stage, doc, current, nil, &result)
	}

	result.Steps = append(result.Steps, stageName)
	switch status {
	case statusContinue:
		result.Success = true
	case statusNeedsReview:
		result.NeedsReview = true
	case statusSchemaReview:
		result.SchemaReviewNeeded = true
	}
	return result
}

// runStage dispatches one tagged stage. fromStage names the document's
// current position; its tag is consumed by the stage's transition.
func (o *Orchestrator) runStage(ctx context.Context, stage models.Stage, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeStepStart, doc.ID).WithStep(string(stage)))
	o.recorder.Record(ctx, doc.ID, string(stage), "started", nil)

	var status stageStatus
	switch stage {
	case models.StageOCR:
		status = o.runOCR(ctx, doc, fromStage, ch, result)
	case models.StageSummary:
		status = o.runSummary(ctx, doc, fromStage, ch, result)
	case models.StageSchemaAnalysis:
		status = o.runSchemaAnalysis(ctx, doc, fromStage, ch, result)
	case models.StageTitle:
		status = o.runTitle(ctx, doc, fromStage, ch, result)
	case models.StageCorrespondent:
		status = o.runCorrespondent(ctx, doc, fromStage, ch, result)
	case models.StageDocumentType:
		status = o.runDocumentType(ctx, doc, fromStage, ch, result)
	case models.StageTags:
		status = o.runTags(ctx, doc, fromStage, ch, result)
	default:
		result.Error = fmt.Sprintf("unhandled stage %q", stage)
		return statusError
	}

	switch status {
	case statusContinue:
		o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeStepComplete, doc.ID).WithStep(string(stage)))
		o.recorder.Record(ctx, doc.ID, string(stage), "completed", nil)
	case statusError, statusFailed:
		o.emit(ctx, ch, events.NewPipelineEvent(events.EventTypeStepError, doc.ID).
			WithStep(string(stage)).WithMessage(result.Error))
		o.recorder.Record(ctx, doc.ID, string(stage), "error", map[string]any{"error": result.Error})
	}
	return status
}

// runTail runs the virtual stages, indexes the document, and performs
// the final transition to processed, consuming the current stage tag.
func (o *Orchestrator) runTail(ctx context.Context, doc *dms.Document, fromStage models.Stage, ch chan<- events.PipelineEvent, result *models.PipelineResult) stageStatus {
	if stageEnabled(models.StageCustomFields, o.cfg.Pipeline) {
		if status := o.runCustomFields(ctx, doc, ch, result); status != statusContinue {
			return status
		}
		result.Steps = append(result.Steps, string(models.StageCustomFields))
	}
	if stageEnabled(models.StageDocumentLinks, o.cfg.Pipeline) {
		if status := o.runDocumentLinks(ctx, doc, ch, result); status != statusContinue {
			return status
		}
		result.Steps = append(result.Steps, string(models.StageDocumentLinks))
	}

	// Indexing failures never block completion; the maintenance path can
	// re-index later.
	if o.indexer != nil {
		if err := o.indexDocument(ctx, doc); err != nil {
			o.logger.Warn("Vector indexing failed", "doc_id", doc.ID, "error", err)
			o.recorder.Record(ctx, doc.ID, "indexing", "error", map[string]any{"error": err.Error()})
		}
	}

	if err := o.transition(ctx, doc.ID, fromStage, models.StageProcessed); err != nil {
		result.Error = err.Error()
		return statusError
	}
	return statusContinue
}

// transition moves the document's workflow tag from one stage to the
// next.
func (o *Orchestrator) transition(ctx context.Context, docID int, from, to models.Stage) error {
	fromTag := currentTag(from, o.cfg.Tags)
	toTag := doneTag(to, o.cfg.Tags)
	if toTag == "" {
		return fmt.Errorf("stage %q has no workflow tag", to)
	}
	if err := o.dms.TransitionTag(ctx, docID, fromTag, toTag); err != nil {
		return fmt.Errorf("failed to transition %s -> %s: %w", fromTag, toTag, err)
	}
	return nil
}

// emit sends an event to the per-invocation stream and publishes it for
// NDJSON subscribers. Publish failures are logged, never fatal.
func (o *Orchestrator) emit(ctx context.Context, ch chan<- events.PipelineEvent, event events.PipelineEvent) {
	if ch != nil {
		select {
		case ch <- event:
		case <-ctx.Done():
		}
	}
	if o.publisher != nil {
		if err := o.publisher.Publish(ctx, event); err != nil {
			o.logger.Warn("Failed to publish pipeline event",
				"doc_id", event.DocID, "type", event.Type, "error", err)
		}
	}
}

func (o *Orchestrator) tagNames(doc *dms.Document) []string {
	names := make([]string, 0, len(doc.TagIDs))
	for _, id := range doc.TagIDs {
		if name, ok := o.dms.TagName(id); ok {
			names = append(names, name)
		}
	}
	return names
}

func (o *Orchestrator) hasTag(tagNames []string, name string) bool {
	for _, t := range tagNames {
		if t == name {
			return true
		}
	}
	return false
}
