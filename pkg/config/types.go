// Package config loads, merges, and validates inkwell configuration.
//
// Configuration comes from two YAML files in the config directory:
//
//	inkwell.yaml       - DMS connection, pipeline toggles, confirmation
//	                     policy, scheduler, workflow tag names, maintenance
//	llm-providers.yaml - named LLM providers and the role-to-provider map
//
// Environment variables are expanded with {{.VAR}} template syntax before
// parsing. Built-in defaults are merged underneath user values.
package config

import "time"

// DMSConfig holds the connection settings for the document-management service.
type DMSConfig struct {
	BaseURL     string        `yaml:"base_url"`
	TokenEnv    string        `yaml:"token_env,omitempty"` // Defaults to "DMS_TOKEN"
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
	PageSize    int           `yaml:"page_size"`
}

// OCRMode selects the OCR provider implementation.
type OCRMode string

// OCR provider modes.
const (
	OCRModeHTTP OCRMode = "http"
	OCRModeMock OCRMode = "mock" // Synthetic text, for testing
)

// OCRConfig holds OCR provider settings.
type OCRConfig struct {
	Mode       OCRMode       `yaml:"mode"`
	BaseURL    string        `yaml:"base_url,omitempty"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// VectorStoreConfig holds the external vector store connection settings.
type VectorStoreConfig struct {
	BaseURL    string        `yaml:"base_url,omitempty"`
	Collection string        `yaml:"collection"`
	Timeout    time.Duration `yaml:"timeout"`
}

// VectorSearchConfig controls semantic search and the document-link
// similarity gate.
type VectorSearchConfig struct {
	Enabled  bool    `yaml:"enabled"`
	TopK     int     `yaml:"top_k"`
	MinScore float64 `yaml:"min_score"`
}

// PipelineConfig enables or disables individual stages. A disabled stage
// is skipped but the state machine still advances past it.
type PipelineConfig struct {
	OCR            bool `yaml:"ocr"`
	Summary        bool `yaml:"summary"`
	SchemaAnalysis bool `yaml:"schema_analysis"`
	Title          bool `yaml:"title"`
	Correspondent  bool `yaml:"correspondent"`
	DocumentType   bool `yaml:"document_type"`
	Tags           bool `yaml:"tags"`
	CustomFields   bool `yaml:"custom_fields"`
	DocumentLinks  bool `yaml:"document_links"`

	// CustomFieldSelection restricts which custom fields the custom-fields
	// stage may propose values for (by field name). Empty = none.
	CustomFieldSelection []string `yaml:"custom_field_selection,omitempty"`
}

// ConfirmationConfig controls the analyst/reviewer confirmation loop.
type ConfirmationConfig struct {
	// MaxRetries is the per-stage retry budget before escalating to review.
	MaxRetries int `yaml:"max_retries"`

	// RequireUserForNewEntities forbids auto-creating correspondents,
	// document types, and tags the DMS has never seen; unseen names become
	// schema-suggestion reviews instead.
	RequireUserForNewEntities bool `yaml:"require_user_for_new_entities"`

	// ApprovalKeywords: the reviewer's response confirms a suggestion iff
	// it contains one of these, case-insensitively.
	ApprovalKeywords []string `yaml:"approval_keywords,omitempty"`
}

// AutoProcessingConfig controls the background scheduler.
type AutoProcessingConfig struct {
	Enabled             bool          `yaml:"enabled"`
	IntervalMinutes     int           `yaml:"interval_minutes"`
	PauseOnUserActivity bool          `yaml:"pause_on_user_activity"`
	UserActivityWindow  time.Duration `yaml:"user_activity_window"`

	// DocumentTimeout bounds one document's full pipeline run.
	DocumentTimeout time.Duration `yaml:"document_timeout"`

	// HeartbeatInterval for job-state liveness updates while processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for the in-flight
	// document during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// MaxConcurrentDocuments bounds UI-driven runs; the scheduler itself
	// processes one document at a time.
	MaxConcurrentDocuments int `yaml:"max_concurrent_documents"`
}

// TagConfig maps pipeline stages to workflow tag names in the DMS.
// The tag set on a document is the sole source of truth for its stage.
type TagConfig struct {
	Pending           string `yaml:"pending"`
	OCRDone           string `yaml:"ocr_done"`
	SummaryDone       string `yaml:"summary_done"`
	SchemaReview      string `yaml:"schema_review,omitempty"`
	SchemaDone        string `yaml:"schema_done,omitempty"`
	TitleDone         string `yaml:"title_done"`
	CorrespondentDone string `yaml:"correspondent_done"`
	DocumentTypeDone  string `yaml:"document_type_done"`
	TagsDone          string `yaml:"tags_done"`
	Processed         string `yaml:"processed"`
	ManualReview      string `yaml:"manual_review"`
	Failed            string `yaml:"failed"`
}

// SchemaReviewTag returns the tag marking a paused schema review,
// falling back to the ocr_done tag when not distinctly configured.
func (t *TagConfig) SchemaReviewTag() string {
	if t.SchemaReview != "" {
		return t.SchemaReview
	}
	return t.OCRDone
}

// SchemaDoneTag returns the tag marking completed schema analysis,
// falling back to the ocr_done tag when not distinctly configured.
func (t *TagConfig) SchemaDoneTag() string {
	if t.SchemaDone != "" {
		return t.SchemaDone
	}
	return t.OCRDone
}

// All returns every configured workflow tag name (deduplicated).
// Used to exclude workflow tags from vector projections and to detect
// whether a document carries any pipeline state at all.
func (t *TagConfig) All() []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range []string{
		t.Pending, t.OCRDone, t.SummaryDone, t.SchemaReviewTag(), t.SchemaDoneTag(),
		t.TitleDone, t.CorrespondentDone, t.DocumentTypeDone, t.TagsDone,
		t.Processed, t.ManualReview, t.Failed,
	} {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// MaintenanceJobConfig holds one scheduled maintenance job's settings.
// Schedule accepts "daily", "weekly", "monthly" or a cron expression.
type MaintenanceJobConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule"`
}

// MaintenanceConfig groups the scheduled maintenance jobs.
type MaintenanceConfig struct {
	SchemaCleanup       *MaintenanceJobConfig `yaml:"schema_cleanup,omitempty"`
	MetadataEnhancement *MaintenanceJobConfig `yaml:"metadata_enhancement,omitempty"`
	Retention           *MaintenanceJobConfig `yaml:"retention,omitempty"`

	// ProcessingLogTTL and EventTTL bound the retention sweep.
	ProcessingLogTTL time.Duration `yaml:"processing_log_ttl"`
	EventTTL         time.Duration `yaml:"event_ttl"`

	// BulkIngestRate is the documents-per-second budget for bulk
	// ingest/bootstrap runs.
	BulkIngestRate float64 `yaml:"bulk_ingest_rate"`
}

// DebugConfig groups observability toggles.
type DebugConfig struct {
	LogLevel              string `yaml:"log_level"`
	LogPrompts            bool   `yaml:"log_prompts"`
	LogResponses          bool   `yaml:"log_responses"`
	SaveProcessingHistory bool   `yaml:"save_processing_history"`
}
