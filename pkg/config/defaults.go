package config

import "time"

// Timeout defaults for external calls.
const (
	DefaultDMSTimeout = 30 * time.Second
	DefaultLLMTimeout = 5 * time.Minute
	DefaultOCRTimeout = 10 * time.Minute
)

// DefaultApprovalKeywords confirm a suggestion when the reviewer's
// response contains any of them, case-insensitively.
var DefaultApprovalKeywords = []string{"yes", "confirmed", "accept", "approved", "ok", "correct"}

// DefaultDMSConfig returns the built-in DMS adapter defaults.
func DefaultDMSConfig() *DMSConfig {
	return &DMSConfig{
		TokenEnv:   "DMS_TOKEN",
		Timeout:    DefaultDMSTimeout,
		MaxRetries: 3,
		PageSize:   100,
	}
}

// DefaultOCRConfig returns the built-in OCR defaults.
func DefaultOCRConfig() *OCRConfig {
	return &OCRConfig{
		Mode:       OCRModeHTTP,
		Timeout:    DefaultOCRTimeout,
		MaxRetries: 3,
	}
}

// DefaultVectorStoreConfig returns the built-in vector store defaults.
func DefaultVectorStoreConfig() *VectorStoreConfig {
	return &VectorStoreConfig{
		Collection: "documents",
		Timeout:    30 * time.Second,
	}
}

// DefaultVectorSearchConfig returns the built-in vector search defaults.
func DefaultVectorSearchConfig() *VectorSearchConfig {
	return &VectorSearchConfig{
		Enabled:  true,
		TopK:     5,
		MinScore: 0.65,
	}
}

// DefaultPipelineConfig enables every stage except the optional ones.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		OCR:            true,
		Summary:        false,
		SchemaAnalysis: false,
		Title:          true,
		Correspondent:  true,
		DocumentType:   true,
		Tags:           true,
		CustomFields:   true,
		DocumentLinks:  true,
	}
}

// DefaultConfirmationConfig returns the built-in confirmation loop defaults.
func DefaultConfirmationConfig() *ConfirmationConfig {
	return &ConfirmationConfig{
		MaxRetries:                3,
		RequireUserForNewEntities: false,
		ApprovalKeywords:          DefaultApprovalKeywords,
	}
}

// DefaultAutoProcessingConfig returns the built-in scheduler defaults.
func DefaultAutoProcessingConfig() *AutoProcessingConfig {
	return &AutoProcessingConfig{
		Enabled:                 true,
		IntervalMinutes:         10,
		PauseOnUserActivity:     true,
		UserActivityWindow:      30 * time.Second,
		DocumentTimeout:         30 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 30 * time.Minute,
		MaxConcurrentDocuments:  3,
	}
}

// DefaultTagConfig returns the built-in workflow tag vocabulary.
// schema_review and schema_done are left empty: they reuse ocr_done
// unless distinctly configured.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Pending:           "llm-pending",
		OCRDone:           "llm-ocr-done",
		SummaryDone:       "llm-summary-done",
		TitleDone:         "llm-title-done",
		CorrespondentDone: "llm-correspondent-done",
		DocumentTypeDone:  "llm-doctype-done",
		TagsDone:          "llm-tags-done",
		Processed:         "llm-processed",
		ManualReview:      "llm-manual-review",
		Failed:            "llm-failed",
	}
}

// DefaultMaintenanceConfig returns the built-in maintenance job defaults.
func DefaultMaintenanceConfig() *MaintenanceConfig {
	return &MaintenanceConfig{
		SchemaCleanup:       &MaintenanceJobConfig{Enabled: true, Schedule: "daily"},
		MetadataEnhancement: &MaintenanceJobConfig{Enabled: false, Schedule: "weekly"},
		Retention:           &MaintenanceJobConfig{Enabled: true, Schedule: "daily"},
		ProcessingLogTTL:    90 * 24 * time.Hour,
		EventTTL:            24 * time.Hour,
		BulkIngestRate:      0.5,
	}
}

// DefaultDebugConfig returns the built-in debug defaults.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		LogLevel:              "info",
		SaveProcessingHistory: true,
	}
}
