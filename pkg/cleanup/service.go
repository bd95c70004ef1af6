// Package cleanup provides data retention and scheduled maintenance
// jobs: the retention sweep over local audit data, the schema-suggestion
// queue cleanup, and entity metadata enhancement.
package cleanup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/ent/entitymetadata"
	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/history"
	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
	"github.com/inkwell-ai/inkwell/pkg/review"
)

// Service schedules and runs the maintenance jobs. All jobs are
// idempotent; a run that overlaps a restart repeats harmlessly.
type Service struct {
	cfg        *config.MaintenanceConfig
	entc       *ent.Client
	dms        *dms.Client
	reviews    *review.Service
	recorder   *history.Recorder
	eventStore *events.Store
	describer  llm.Client // nil disables metadata enhancement
	prompts    *prompt.Builder
	logger     *slog.Logger

	cron *cron.Cron
}

// NewService creates the maintenance service.
func NewService(cfg *config.MaintenanceConfig, entc *ent.Client, client *dms.Client, reviews *review.Service, recorder *history.Recorder, eventStore *events.Store, describer llm.Client, prompts *prompt.Builder, logger *slog.Logger) *Service {
	return &Service{
		cfg:        cfg,
		entc:       entc,
		dms:        client,
		reviews:    reviews,
		recorder:   recorder,
		eventStore: eventStore,
		describer:  describer,
		prompts:    prompts,
		logger:     logger.With("component", "maintenance"),
	}
}

// Start registers the enabled jobs with their cron schedules and starts
// the scheduler.
func (s *Service) Start(ctx context.Context) error {
	if s.cron != nil {
		return nil
	}
	s.cron = cron.New()

	jobs := []struct {
		name string
		cfg  *config.MaintenanceJobConfig
		run  func(context.Context) error
	}{
		{"retention", s.cfg.Retention, s.RunRetention},
		{"schema_cleanup", s.cfg.SchemaCleanup, s.RunSchemaCleanup},
		{"metadata_enhancement", s.cfg.MetadataEnhancement, s.RunMetadataEnhancement},
	}

	for _, job := range jobs {
		if job.cfg == nil || !job.cfg.Enabled {
			continue
		}
		spec, err := config.ParseSchedule(job.cfg.Schedule)
		if err != nil {
			return fmt.Errorf("invalid schedule for %s: %w", job.name, err)
		}
		name, run := job.name, job.run
		_, err = s.cron.AddFunc(spec, func() {
			if err := run(ctx); err != nil {
				s.logger.Error("Maintenance job failed", "job", name, "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule %s: %w", job.name, err)
		}
		s.logger.Info("Maintenance job scheduled", "job", name, "schedule", spec)
	}

	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("Maintenance service stopped")
}

// RunRetention deletes processing-log entries and persisted events past
// their TTLs.
func (s *Service) RunRetention(ctx context.Context) error {
	now := time.Now()

	if ttl := s.cfg.ProcessingLogTTL; ttl > 0 {
		count, err := s.recorder.DeleteOlderThan(ctx, now.Add(-ttl))
		if err != nil {
			return err
		}
		if count > 0 {
			s.logger.Info("Retention: deleted old processing log entries", "count", count)
		}
	}
	if ttl := s.cfg.EventTTL; ttl > 0 {
		count, err := s.eventStore.DeleteOlderThan(ctx, now.Add(-ttl))
		if err != nil {
			return err
		}
		if count > 0 {
			s.logger.Info("Retention: deleted old events", "count", count)
		}
	}
	return nil
}

// RunSchemaCleanup resolves stale schema-suggestion queue items:
// suggestions whose entity meanwhile exists in the DMS are approved
// (creation is a no-op and the document resumes), and items whose
// document was deleted are dropped.
func (s *Service) RunSchemaCleanup(ctx context.Context) error {
	items, err := s.reviews.List(ctx, models.ReviewKindSchemaSuggestion, 0)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	existing, err := s.existingNamesByKind(ctx)
	if err != nil {
		return err
	}

	approved, dropped := 0, 0
	for _, item := range items {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := s.dms.Document(ctx, item.DocID); err != nil {
			if errors.Is(err, dms.ErrNotFound) {
				if err := s.reviews.Remove(ctx, item.ID); err != nil {
					s.logger.Warn("Failed to drop orphaned suggestion", "review_id", item.ID, "error", err)
					continue
				}
				dropped++
			}
			continue
		}

		kind, _ := item.Metadata["entity_kind"].(string)
		if !existing[kind][strings.ToLower(item.Suggestion)] {
			continue
		}
		if err := s.reviews.Approve(ctx, item.ID, nil); err != nil {
			s.logger.Warn("Failed to auto-resolve suggestion", "review_id", item.ID, "error", err)
			continue
		}
		approved++
	}

	if approved > 0 || dropped > 0 {
		s.logger.Info("Schema cleanup finished", "auto_resolved", approved, "dropped", dropped)
	}
	return nil
}

// RunMetadataEnhancement fills in missing descriptions for DMS entities
// in the local metadata table. Descriptions feed prompt context and the
// UI; generation failures skip the entity until the next run.
func (s *Service) RunMetadataEnhancement(ctx context.Context) error {
	if s.describer == nil {
		return nil
	}

	type entity struct {
		kind entitymetadata.EntityKind
		id   int
		name string
	}
	var entities []entity

	correspondents, err := s.dms.Correspondents(ctx)
	if err != nil {
		return err
	}
	for _, c := range correspondents {
		entities = append(entities, entity{entitymetadata.EntityKindCorrespondent, c.ID, c.Name})
	}
	types, err := s.dms.DocumentTypes(ctx)
	if err != nil {
		return err
	}
	for _, dt := range types {
		entities = append(entities, entity{entitymetadata.EntityKindDocumentType, dt.ID, dt.Name})
	}

	enhanced := 0
	for _, e := range entities {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		known, err := s.entc.EntityMetadata.Query().
			Where(
				entitymetadata.EntityKindEQ(e.kind),
				entitymetadata.EntityIDEQ(e.id),
				entitymetadata.DescriptionNEQ(""),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to query entity metadata: %w", err)
		}
		if known {
			continue
		}

		description, err := s.describe(ctx, string(e.kind), e.name)
		if err != nil {
			s.logger.Warn("Failed to describe entity",
				"kind", e.kind, "name", e.name, "error", err)
			continue
		}

		err = s.entc.EntityMetadata.Create().
			SetEntityKind(e.kind).
			SetEntityID(e.id).
			SetName(e.name).
			SetDescription(description).
			OnConflictColumns(entitymetadata.FieldEntityKind, entitymetadata.FieldEntityID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to store entity metadata: %w", err)
		}
		enhanced++
	}

	if enhanced > 0 {
		s.logger.Info("Metadata enhancement finished", "described", enhanced)
	}
	return nil
}

func (s *Service) describe(ctx context.Context, kind, name string) (string, error) {
	text, err := s.prompts.Render("entity_description", prompt.Vars{
		EntityKind: kind,
		EntityName: name,
	})
	if err != nil {
		return "", err
	}
	raw, err := llm.Complete(ctx, s.describer, llm.Request{Prompt: text})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (s *Service) existingNamesByKind(ctx context.Context) (map[string]map[string]bool, error) {
	out := map[string]map[string]bool{
		"tag":           {},
		"correspondent": {},
		"document_type": {},
	}

	tags, err := s.dms.Tags(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tags {
		out["tag"][strings.ToLower(t.Name)] = true
	}
	correspondents, err := s.dms.Correspondents(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range correspondents {
		out["correspondent"][strings.ToLower(c.Name)] = true
	}
	types, err := s.dms.DocumentTypes(ctx)
	if err != nil {
		return nil, err
	}
	for _, dt := range types {
		out["document_type"][strings.ToLower(dt.Name)] = true
	}
	return out, nil
}
