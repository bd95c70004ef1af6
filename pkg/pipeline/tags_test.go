package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/models"
)

func TestStageFromTags(t *testing.T) {
	tags := config.DefaultTagConfig()

	tests := []struct {
		name     string
		tagNames []string
		expected models.Stage
	}{
		{
			name:     "no workflow tags means pending",
			tagNames: []string{"invoice", "2024"},
			expected: models.StagePending,
		},
		{
			name:     "explicit pending tag",
			tagNames: []string{tags.Pending},
			expected: models.StagePending,
		},
		{
			name:     "ocr done",
			tagNames: []string{tags.OCRDone},
			expected: models.StageOCR,
		},
		{
			name:     "tags done",
			tagNames: []string{tags.TagsDone, "invoice"},
			expected: models.StageTags,
		},
		{
			name:     "processed",
			tagNames: []string{tags.Processed},
			expected: models.StageProcessed,
		},
		{
			// An interrupted transition leaves both the old and the new
			// stage tag on the document. The more advanced one wins so
			// the stage is never re-run.
			name:     "interrupted transition resolves to later stage",
			tagNames: []string{tags.TitleDone, tags.CorrespondentDone},
			expected: models.StageCorrespondent,
		},
		{
			name:     "pending tag alongside ocr done resolves to ocr",
			tagNames: []string{tags.Pending, tags.OCRDone},
			expected: models.StageOCR,
		},
		{
			name:     "empty tag list",
			tagNames: nil,
			expected: models.StagePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StageFromTags(tt.tagNames, tags))
		})
	}
}

func TestStageFromTags_SchemaDoneAlias(t *testing.T) {
	// Without a distinct schema_done tag the stage cannot be told apart
	// from ocr_done; with one configured it must win over ocr_done.
	tags := config.DefaultTagConfig()
	assert.Equal(t, models.StageOCR, StageFromTags([]string{tags.OCRDone}, tags))

	tags.SchemaDone = "llm-schema-done"
	assert.Equal(t, models.StageSchemaAnalysis,
		StageFromTags([]string{tags.OCRDone, tags.SchemaDone}, tags))
}

func TestDoneTagAndCurrentTag(t *testing.T) {
	tags := config.DefaultTagConfig()

	assert.Equal(t, tags.OCRDone, doneTag(models.StageOCR, tags))
	assert.Equal(t, tags.TagsDone, doneTag(models.StageTags, tags))
	assert.Equal(t, tags.Processed, doneTag(models.StageProcessed, tags))

	// Virtual stages have no tag of their own.
	assert.Empty(t, doneTag(models.StageCustomFields, tags))
	assert.Empty(t, doneTag(models.StageDocumentLinks, tags))

	// Schema analysis falls back to the ocr_done tag unless configured.
	assert.Equal(t, tags.OCRDone, doneTag(models.StageSchemaAnalysis, tags))
	tags.SchemaDone = "llm-schema-done"
	assert.Equal(t, "llm-schema-done", doneTag(models.StageSchemaAnalysis, tags))

	// Pending documents carry the pending tag (or none); completed stages
	// carry their done tag.
	assert.Equal(t, tags.Pending, currentTag(models.StagePending, tags))
	assert.Equal(t, tags.TitleDone, currentTag(models.StageTitle, tags))
}

func TestNextRunnable(t *testing.T) {
	cfg := config.DefaultPipelineConfig()

	tests := []struct {
		name      string
		current   models.Stage
		completed map[models.Stage]bool
		expected  models.Stage
		ok        bool
	}{
		{
			name:     "pending starts at ocr",
			current:  models.StagePending,
			expected: models.StageOCR,
			ok:       true,
		},
		{
			// Summary and schema analysis are disabled by default, so
			// the document jumps from ocr straight to title.
			name:     "disabled stages are skipped",
			current:  models.StageOCR,
			expected: models.StageTitle,
			ok:       true,
		},
		{
			name:     "tags done continues with custom fields",
			current:  models.StageTags,
			expected: models.StageCustomFields,
			ok:       true,
		},
		{
			name:    "document links is the last runnable stage",
			current: models.StageDocumentLinks,
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, ok := nextRunnable(tt.current, cfg, tt.completed)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, stage)
			}
		})
	}
}

func TestNextRunnable_CompletedMap(t *testing.T) {
	// When schema analysis shares the ocr_done tag, the derived stage
	// after schema analysis ran is still ocr. The completed map keeps
	// the run from executing schema analysis twice.
	cfg := config.DefaultPipelineConfig()
	cfg.SchemaAnalysis = true

	stage, ok := nextRunnable(models.StageOCR, cfg, nil)
	assert.True(t, ok)
	assert.Equal(t, models.StageSchemaAnalysis, stage)

	stage, ok = nextRunnable(models.StageOCR, cfg, map[models.Stage]bool{
		models.StageSchemaAnalysis: true,
	})
	assert.True(t, ok)
	assert.Equal(t, models.StageTitle, stage)
}

func TestNextRunnable_AllDisabled(t *testing.T) {
	cfg := &config.PipelineConfig{}
	_, ok := nextRunnable(models.StagePending, cfg, nil)
	assert.False(t, ok)
}
