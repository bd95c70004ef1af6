package scheduler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/pipeline"
)

// IngestReport summarizes a bulk ingest run.
type IngestReport struct {
	Enrolled    int            `json:"enrolled"`
	Processed   int            `json:"processed"`
	NeedsReview int            `json:"needs_review"`
	Failed      map[int]string `json:"failed,omitempty"`
}

// BulkIngest enrolls documents into the pipeline and processes them at
// a bounded rate. With no explicit ids the whole un-enrolled corpus is
// taken: every document carrying none of the workflow tags.
//
// Admission to the worker pool is paced by the documents-per-second
// budget so a bootstrap over a large archive cannot saturate the DMS
// or the LLM backend.
func (s *Scheduler) BulkIngest(ctx context.Context, req models.BulkIngestRequest) (*IngestReport, error) {
	if err := s.dms.RefreshTagCache(ctx); err != nil {
		return nil, err
	}

	docIDs := req.DocIDs
	if len(docIDs) == 0 {
		var err error
		docIDs, err = s.unenrolledDocs(ctx)
		if err != nil {
			return nil, err
		}
	}
	if len(docIDs) == 0 {
		return &IngestReport{}, nil
	}

	rate := req.RatePerSecond
	if rate <= 0 {
		rate = s.cfg.Maintenance.BulkIngestRate
	}
	if rate <= 0 {
		rate = 1
	}
	gate := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer gate.Stop()

	concurrency := s.cfg.AutoProcessing.MaxConcurrentDocuments
	if concurrency < 1 {
		concurrency = 1
	}

	report := &IngestReport{Failed: make(map[int]string)}
	results := make(chan models.PipelineResult, len(docIDs))

	g, runCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	s.logger.Info("Bulk ingest started",
		"documents", len(docIDs), "rate_per_second", rate, "concurrency", concurrency)

	for _, docID := range docIDs {
		select {
		case <-runCtx.Done():
		case <-gate.C:
		}
		if runCtx.Err() != nil {
			break
		}

		docID := docID
		report.Enrolled++
		g.Go(func() error {
			if err := s.enroll(runCtx, docID); err != nil {
				results <- models.PipelineResult{DocID: docID, Error: err.Error()}
				return nil
			}
			results <- s.orchestrator.Run(runCtx, docID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	for result := range results {
		switch {
		case result.Error != "":
			report.Failed[result.DocID] = result.Error
		case result.NeedsReview || result.SchemaReviewNeeded:
			report.NeedsReview++
		default:
			report.Processed++
		}
	}
	if len(report.Failed) == 0 {
		report.Failed = nil
	}

	s.logger.Info("Bulk ingest finished",
		"enrolled", report.Enrolled, "processed", report.Processed,
		"needs_review", report.NeedsReview, "failed", len(report.Failed))
	return report, ctx.Err()
}

// enroll adds the pending tag if the document carries no workflow tag.
func (s *Scheduler) enroll(ctx context.Context, docID int) error {
	doc, err := s.dms.Document(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to fetch document %d: %w", docID, err)
	}
	stage := pipeline.StageFromTags(s.docTagNames(*doc), s.cfg.Tags)
	if stage != models.StagePending {
		return nil
	}
	if err := s.dms.TransitionTag(ctx, docID, "", s.cfg.Tags.Pending); err != nil {
		return fmt.Errorf("failed to enroll document %d: %w", docID, err)
	}
	return nil
}

// unenrolledDocs lists documents carrying none of the workflow tags.
func (s *Scheduler) unenrolledDocs(ctx context.Context) ([]int, error) {
	exclude := s.tagIDs(s.cfg.Tags.All())
	docs, err := s.dms.Documents(ctx, dms.DocumentFilter{ExcludeTagIDs: exclude})
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}
