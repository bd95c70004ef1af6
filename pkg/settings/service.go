// Package settings is the runtime key/value store. Values override file
// configuration for the keys the scheduler and pipeline re-read at
// runtime (pause state, intervals).
package settings

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/inkwell-ai/inkwell/ent"
	"github.com/inkwell-ai/inkwell/ent/setting"
)

// Service reads and writes settings.
type Service struct {
	client *ent.Client
}

// NewService creates a settings service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Get returns the value for key, or ("", false) when unset.
func (s *Service) Get(ctx context.Context, key string) (string, bool, error) {
	row, err := s.client.Setting.Get(ctx, key)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return row.Value, true, nil
}

// GetBool returns the boolean value for key; missing or unparseable
// values return the fallback.
func (s *Service) GetBool(ctx context.Context, key string, fallback bool) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, nil
	}
	return v, nil
}

// Set upserts one setting.
func (s *Service) Set(ctx context.Context, key, value string) error {
	err := s.client.Setting.Create().
		SetID(key).
		SetValue(value).
		SetUpdatedAt(time.Now()).
		OnConflictColumns(setting.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

// All returns every setting as a map.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.client.Setting.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Value
	}
	return out, nil
}

// Delete removes one setting; deleting a missing key is a no-op.
func (s *Service) Delete(ctx context.Context, key string) error {
	_, err := s.client.Setting.Delete().Where(setting.IDEQ(key)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	return nil
}
