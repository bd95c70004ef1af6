package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProvidersYAML = `
llm_providers:
  analyst:
    model: test-large
    base_url: http://llm.local/v1
  reviewer:
    model: test-small
    base_url: http://llm.local/v1
  embedder:
    model: test-embed
    base_url: http://llm.local/v1
roles:
  large: analyst
  small: reviewer
  embedding: embedder
`

func writeConfigDir(t *testing.T, inkwellYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inkwell.yaml"), []byte(inkwellYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

func TestInitialize(t *testing.T) {
	dir := writeConfigDir(t, `
dms:
  base_url: http://dms.local:8000
vector_store:
  base_url: http://qdrant.local:6333
`, testProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "http://dms.local:8000", cfg.DMS.BaseURL)
	// Unset fields keep their defaults.
	assert.Equal(t, "DMS_TOKEN", cfg.DMS.TokenEnv)
	assert.Equal(t, 100, cfg.DMS.PageSize)
	assert.Equal(t, 3, cfg.Confirmation.MaxRetries)
	assert.Equal(t, DefaultApprovalKeywords, cfg.Confirmation.ApprovalKeywords)
	assert.Equal(t, "en", cfg.PromptLanguage)
	assert.True(t, cfg.Pipeline.Title)

	stats := cfg.Stats()
	assert.Equal(t, 3, stats.LLMProviders)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_INIT_DMS_URL", "http://expanded.local")
	dir := writeConfigDir(t, `
dms:
  base_url: "{{.TEST_INIT_DMS_URL}}"
vector_search:
  enabled: false
`, testProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://expanded.local", cfg.DMS.BaseURL)
}

func TestInitialize_PipelineTogglesReplaceWholesale(t *testing.T) {
	// An explicit pipeline section must win in both directions: enabling
	// a default-off stage and disabling a default-on one.
	dir := writeConfigDir(t, `
dms:
  base_url: http://dms.local
vector_search:
  enabled: false
pipeline:
  ocr: true
  summary: true
  title: false
  correspondent: true
  document_type: true
  tags: true
`, testProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, cfg.Pipeline.Summary)
	assert.False(t, cfg.Pipeline.Title)
	assert.False(t, cfg.Pipeline.CustomFields)
}

func TestInitialize_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inkwell.yaml"),
		[]byte("dms:\n  base_url: http://x\n"), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	// Missing dms.base_url must fail validation.
	dir := writeConfigDir(t, `
vector_search:
  enabled: false
`, testProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitialize_VectorSearchRequiresEmbeddingRole(t *testing.T) {
	dir := writeConfigDir(t, `
dms:
  base_url: http://dms.local
vector_store:
  base_url: http://qdrant.local
`, `
llm_providers:
  analyst:
    model: test-large
    base_url: http://llm.local/v1
  reviewer:
    model: test-small
    base_url: http://llm.local/v1
roles:
  large: analyst
  small: reviewer
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
