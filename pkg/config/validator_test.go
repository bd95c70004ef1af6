package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valid    bool
	}{
		{"daily", "0 3 * * *", true},
		{"DAILY", "0 3 * * *", true},
		{"weekly", "0 3 * * 0", true},
		{"monthly", "0 3 1 * *", true},
		{"*/15 * * * *", "*/15 * * * *", true},
		{"", "", false},
		{"every other tuesday", "", false},
		{"61 * * * *", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseSchedule(tt.input)
			if !tt.valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec)
		})
	}
}

func validTestConfig() *Config {
	registry := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"analyst":  {Model: "large", BaseURL: "http://llm"},
		"reviewer": {Model: "small", BaseURL: "http://llm"},
	}, RoleMap{RoleLarge: "analyst", RoleSmall: "reviewer"})

	vs := DefaultVectorSearchConfig()
	vs.Enabled = false

	return &Config{
		DMS:                 &DMSConfig{BaseURL: "http://dms"},
		OCR:                 DefaultOCRConfig(),
		VectorStore:         DefaultVectorStoreConfig(),
		VectorSearch:        vs,
		Pipeline:            DefaultPipelineConfig(),
		Confirmation:        DefaultConfirmationConfig(),
		AutoProcessing:      DefaultAutoProcessingConfig(),
		Tags:                DefaultTagConfig(),
		Maintenance:         DefaultMaintenanceConfig(),
		Debug:               DefaultDebugConfig(),
		LLMProviderRegistry: registry,
	}
}

func TestValidateAll_Valid(t *testing.T) {
	assert.NoError(t, NewValidator(validTestConfig()).ValidateAll())
}

func TestValidateAll_DuplicateTags(t *testing.T) {
	cfg := validTestConfig()
	cfg.Tags.Failed = cfg.Tags.Processed

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateAll_MissingTag(t *testing.T) {
	cfg := validTestConfig()
	cfg.Tags.Pending = ""

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestValidateAll_BadThinkingLevel(t *testing.T) {
	cfg := validTestConfig()
	provider, err := cfg.LLMProviderRegistry.Get("analyst")
	require.NoError(t, err)
	provider.ThinkingLevel = "extreme"

	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateAll_BadMaintenanceSchedule(t *testing.T) {
	cfg := validTestConfig()
	cfg.Maintenance.Retention = &MaintenanceJobConfig{Enabled: true, Schedule: "whenever"}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
}

func TestValidateAll_ZeroMaxRetries(t *testing.T) {
	cfg := validTestConfig()
	cfg.Confirmation.MaxRetries = 0

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
}
