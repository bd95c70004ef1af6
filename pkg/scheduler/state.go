package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/ent/jobstate"
)

// AutoProcessingJob is the job-state row name of the background
// scheduler.
const AutoProcessingJob = "auto_processing"

// JobStore persists background-job state so pause/resume survives
// restarts and the UI can show liveness.
type JobStore struct {
	client *ent.Client
}

// NewJobStore creates a job store.
func NewJobStore(client *ent.Client) *JobStore {
	return &JobStore{client: client}
}

// Ensure creates the job row if absent and returns it.
func (s *JobStore) Ensure(ctx context.Context, name string) (*ent.JobState, error) {
	err := s.client.JobState.Create().
		SetID(name).
		OnConflictColumns(jobstate.FieldID).
		DoNothing().
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) && !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to ensure job state %q: %w", name, err)
	}
	return s.Get(ctx, name)
}

// Get returns one job's state.
func (s *JobStore) Get(ctx context.Context, name string) (*ent.JobState, error) {
	state, err := s.client.JobState.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get job state %q: %w", name, err)
	}
	return state, nil
}

// Heartbeat stamps the job's last-check time.
func (s *JobStore) Heartbeat(ctx context.Context, name string) error {
	return s.client.JobState.UpdateOneID(name).
		SetLastCheckAt(time.Now()).
		Exec(ctx)
}

// SetProcessing records which document the job is working on; nil
// clears it.
func (s *JobStore) SetProcessing(ctx context.Context, name string, docID *int) error {
	update := s.client.JobState.UpdateOneID(name).SetLastCheckAt(time.Now())
	if docID != nil {
		update.SetCurrentlyProcessingDocID(*docID)
	} else {
		update.ClearCurrentlyProcessingDocID()
	}
	return update.Exec(ctx)
}

// RecordOutcome bumps the processed or error counter after a document
// run and clears the in-flight marker.
func (s *JobStore) RecordOutcome(ctx context.Context, name string, succeeded bool) error {
	update := s.client.JobState.UpdateOneID(name).
		ClearCurrentlyProcessingDocID().
		SetLastCheckAt(time.Now())
	if succeeded {
		update.AddProcessedSinceStart(1)
	} else {
		update.AddErrorsSinceStart(1)
	}
	return update.Exec(ctx)
}

// Pause stops the job from picking up new documents; the in-flight
// document finishes.
func (s *JobStore) Pause(ctx context.Context, name, reason string) error {
	return s.client.JobState.UpdateOneID(name).
		SetPaused(true).
		SetPausedReason(reason).
		Exec(ctx)
}

// Resume re-enables a paused job.
func (s *JobStore) Resume(ctx context.Context, name string) error {
	return s.client.JobState.UpdateOneID(name).
		SetPaused(false).
		ClearPausedReason().
		Exec(ctx)
}

// IsPaused reports the persisted pause flag.
func (s *JobStore) IsPaused(ctx context.Context, name string) (bool, error) {
	state, err := s.Get(ctx, name)
	if err != nil {
		return false, err
	}
	return state.Paused, nil
}
