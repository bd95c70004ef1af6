// Package scheduler drives background document processing. A poll loop
// admits pending and mid-pipeline documents one at a time, deferring to
// user activity and to the persisted pause flag, and records liveness
// in the job-state table.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/pipeline"
	"github.com/inkwell-ai/inkwell/pkg/review"
)

// Scheduler runs the auto-processing loop.
type Scheduler struct {
	cfg          *config.Config
	dms          *dms.Client
	orchestrator *pipeline.Orchestrator
	reviews      *review.Service
	jobs         *JobStore
	activity     *ActivityTracker
	logger       *slog.Logger
}

// New creates a scheduler.
func New(cfg *config.Config, client *dms.Client, orch *pipeline.Orchestrator, reviews *review.Service, jobs *JobStore, activity *ActivityTracker, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cfg:          cfg,
		dms:          client,
		orchestrator: orch,
		reviews:      reviews,
		jobs:         jobs,
		activity:     activity,
		logger:       logger.With("component", "scheduler"),
	}
}

// Run blocks until ctx is cancelled, polling for work every configured
// interval. The first poll happens one interval after startup, giving
// the DMS and the user a quiet window after boot. The in-flight
// document gets the graceful-shutdown grace period before its context
// is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := s.jobs.Ensure(ctx, AutoProcessingJob); err != nil {
		return err
	}

	interval := time.Duration(s.cfg.AutoProcessing.IntervalMinutes) * time.Minute
	s.logger.Info("Auto-processing scheduler started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Auto-processing scheduler stopped")
			return nil
		case <-ticker.C:
		}
		s.tick(ctx)
	}
}

// tick processes the current backlog, one document at a time.
func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.jobs.Heartbeat(ctx, AutoProcessingJob); err != nil {
		s.logger.Warn("Failed to heartbeat job state", "error", err)
	}

	paused, err := s.jobs.IsPaused(ctx, AutoProcessingJob)
	if err != nil {
		s.logger.Error("Failed to read job state", "error", err)
		return
	}
	if paused {
		s.logger.Debug("Scheduler paused, skipping tick")
		return
	}
	if s.deferToUser() {
		s.logger.Debug("User recently active, skipping tick")
		return
	}

	docs, err := s.Candidates(ctx)
	if err != nil {
		s.logger.Error("Failed to list candidate documents", "error", err)
		return
	}
	if len(docs) == 0 {
		return
	}
	s.logger.Info("Processing backlog", "candidates", len(docs))

	for _, doc := range docs {
		if ctx.Err() != nil {
			return
		}
		if s.deferToUser() {
			s.logger.Debug("User became active, stopping tick early")
			return
		}

		open, err := s.reviews.HasOpenReview(ctx, doc.ID)
		if err != nil {
			s.logger.Error("Failed to check open reviews", "doc_id", doc.ID, "error", err)
			continue
		}
		if open {
			continue
		}

		s.processOne(ctx, doc.ID)
	}
}

// processOne runs the pipeline for one document with heartbeats and a
// per-document timeout.
func (s *Scheduler) processOne(ctx context.Context, docID int) {
	if err := s.jobs.SetProcessing(ctx, AutoProcessingJob, &docID); err != nil {
		s.logger.Warn("Failed to record in-flight document", "doc_id", docID, "error", err)
	}

	runCtx, cancel := s.runContext(ctx)
	defer cancel()

	heartbeatDone := make(chan struct{})
	go s.heartbeatLoop(runCtx, heartbeatDone)

	result := s.orchestrator.Run(runCtx, docID)
	cancel()
	<-heartbeatDone

	// Review escalations are normal outcomes, not errors.
	succeeded := result.Error == ""
	if err := s.jobs.RecordOutcome(context.WithoutCancel(ctx), AutoProcessingJob, succeeded); err != nil {
		s.logger.Warn("Failed to record run outcome", "doc_id", docID, "error", err)
	}

	switch {
	case result.Error != "":
		s.logger.Warn("Document run failed", "doc_id", docID, "error", result.Error)
	case result.NeedsReview || result.SchemaReviewNeeded:
		s.logger.Info("Document escalated to review", "doc_id", docID, "steps", result.Steps)
	default:
		s.logger.Info("Document processed", "doc_id", docID, "steps", result.Steps)
	}
}

// runContext bounds one document run by the configured timeout and, on
// shutdown, grants the graceful grace period instead of cancelling
// immediately.
func (s *Scheduler) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.cfg.AutoProcessing.DocumentTimeout
	grace := s.cfg.AutoProcessing.GracefulShutdownTimeout

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	stop := context.AfterFunc(ctx, func() {
		timer := time.AfterFunc(grace, cancel)
		context.AfterFunc(runCtx, func() { timer.Stop() })
	})
	return runCtx, func() {
		stop()
		cancel()
	}
}

func (s *Scheduler) heartbeatLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	interval := s.cfg.AutoProcessing.HeartbeatInterval
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.jobs.Heartbeat(context.WithoutCancel(ctx), AutoProcessingJob); err != nil {
				s.logger.Warn("Failed to heartbeat job state", "error", err)
			}
		}
	}
}

func (s *Scheduler) deferToUser() bool {
	return s.cfg.AutoProcessing.PauseOnUserActivity &&
		s.activity.ActiveWithin(s.cfg.AutoProcessing.UserActivityWindow)
}

// Candidates lists documents admissible for background processing:
// anything carrying the pending tag or a mid-pipeline tag, excluding
// processed, failed, manual-review, and schema-review holds. Open
// review items are filtered by the caller per document.
func (s *Scheduler) Candidates(ctx context.Context) ([]dms.Document, error) {
	if err := s.dms.RefreshTagCache(ctx); err != nil {
		return nil, err
	}

	tags := s.cfg.Tags
	include := []string{
		tags.Pending, tags.OCRDone, tags.SummaryDone, tags.TitleDone,
		tags.CorrespondentDone, tags.DocumentTypeDone, tags.TagsDone,
	}
	if tags.SchemaDone != "" {
		include = append(include, tags.SchemaDone)
	}
	exclude := []string{tags.Processed, tags.ManualReview, tags.Failed}
	if tags.SchemaReview != "" {
		exclude = append(exclude, tags.SchemaReview)
	}

	filter := dms.DocumentFilter{
		TagIDs:        s.tagIDs(include),
		ExcludeTagIDs: s.tagIDs(exclude),
	}
	if len(filter.TagIDs) == 0 {
		// None of the workflow tags exist yet, so nothing is enrolled.
		return nil, nil
	}

	docs, err := s.dms.Documents(ctx, filter)
	if err != nil {
		return nil, err
	}

	// The include filter matches any listed tag, so a document carrying
	// both processed and a stale stage tag could slip through on DMS
	// backends that ignore the exclusion filter. Re-derive and drop.
	admitted := docs[:0]
	for _, doc := range docs {
		names := s.docTagNames(doc)
		if hasAny(names, exclude) {
			continue
		}
		if stage := pipeline.StageFromTags(names, tags); stage == models.StageProcessed {
			continue
		}
		admitted = append(admitted, doc)
	}
	return admitted, nil
}

func (s *Scheduler) tagIDs(names []string) []int {
	var ids []int
	for _, name := range names {
		if tag, ok := s.dms.TagByName(name); ok {
			ids = append(ids, tag.ID)
		}
	}
	return ids
}

func (s *Scheduler) docTagNames(doc dms.Document) []string {
	names := make([]string, 0, len(doc.TagIDs))
	for _, id := range doc.TagIDs {
		if name, ok := s.dms.TagName(id); ok {
			names = append(names, name)
		}
	}
	return names
}

func hasAny(names, wanted []string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, w := range wanted {
		if set[w] {
			return true
		}
	}
	return false
}
