// Package pipeline runs the enrichment stages over DMS documents. The
// workflow tag set on a document is the sole source of truth for its
// stage; every run derives its position from tags and is resumable after
// a crash with no local state.
package pipeline

import (
	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/models"
)

// StageFromTags derives the current pipeline stage from a document's tag
// names. Tags are checked in reverse pipeline order so a document left
// with two stage tags by an interrupted transition resolves to the more
// advanced one. A document with no workflow tag is pending.
func StageFromTags(tagNames []string, tags *config.TagConfig) models.Stage {
	present := make(map[string]bool, len(tagNames))
	for _, name := range tagNames {
		present[name] = true
	}

	switch {
	case present[tags.Processed]:
		return models.StageProcessed
	case present[tags.TagsDone]:
		return models.StageTags
	case present[tags.DocumentTypeDone]:
		return models.StageDocumentType
	case present[tags.CorrespondentDone]:
		return models.StageCorrespondent
	case present[tags.TitleDone]:
		return models.StageTitle
	case tags.SchemaDone != "" && present[tags.SchemaDone]:
		return models.StageSchemaAnalysis
	case present[tags.SummaryDone]:
		return models.StageSummary
	case present[tags.OCRDone]:
		return models.StageOCR
	default:
		return models.StagePending
	}
}

// doneTag returns the workflow tag marking a stage as completed. Virtual
// stages (custom fields, document links) share the tags_done tag; the
// final transition consumes it.
func doneTag(stage models.Stage, tags *config.TagConfig) string {
	switch stage {
	case models.StageOCR:
		return tags.OCRDone
	case models.StageSummary:
		return tags.SummaryDone
	case models.StageSchemaAnalysis:
		return tags.SchemaDoneTag()
	case models.StageTitle:
		return tags.TitleDone
	case models.StageCorrespondent:
		return tags.CorrespondentDone
	case models.StageDocumentType:
		return tags.DocumentTypeDone
	case models.StageTags:
		return tags.TagsDone
	case models.StageProcessed:
		return tags.Processed
	default:
		return ""
	}
}

// currentTag returns the workflow tag a document at the given stage
// carries, removed when transitioning onward. Pending documents may
// carry the pending tag or none.
func currentTag(stage models.Stage, tags *config.TagConfig) string {
	if stage == models.StagePending {
		return tags.Pending
	}
	return doneTag(stage, tags)
}

// runOrder is the execution order of runnable stages.
var runOrder = []models.Stage{
	models.StageOCR,
	models.StageSummary,
	models.StageSchemaAnalysis,
	models.StageTitle,
	models.StageCorrespondent,
	models.StageDocumentType,
	models.StageTags,
	models.StageCustomFields,
	models.StageDocumentLinks,
}

// stageEnabled reports whether configuration enables a stage.
func stageEnabled(stage models.Stage, cfg *config.PipelineConfig) bool {
	switch stage {
	case models.StageOCR:
		return cfg.OCR
	case models.StageSummary:
		return cfg.Summary
	case models.StageSchemaAnalysis:
		return cfg.SchemaAnalysis
	case models.StageTitle:
		return cfg.Title
	case models.StageCorrespondent:
		return cfg.Correspondent
	case models.StageDocumentType:
		return cfg.DocumentType
	case models.StageTags:
		return cfg.Tags
	case models.StageCustomFields:
		return cfg.CustomFields
	case models.StageDocumentLinks:
		return cfg.DocumentLinks
	default:
		return false
	}
}

// nextRunnable returns the next enabled stage after the document's
// current position, or ("", false) when only the final transition to
// processed remains. Disabled stages are skipped without I/O; their tag
// transition folds into the next enabled stage. completed holds stages
// already run in this invocation: the schema-analysis tag may alias
// ocr_done, so tag state alone cannot prove schema analysis ran.
func nextRunnable(current models.Stage, cfg *config.PipelineConfig, completed map[models.Stage]bool) (models.Stage, bool) {
	start := 0
	if current != models.StagePending {
		for i, s := range runOrder {
			if s == current {
				start = i + 1
				break
			}
		}
	}
	for _, s := range runOrder[start:] {
		if stageEnabled(s, cfg) && !completed[s] {
			return s, true
		}
	}
	return "", false
}
