package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validator performs cross-field validation on a loaded Config.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation check and returns the combined errors.
func (v *Validator) ValidateAll() error {
	var errs []error

	errs = append(errs, v.validateDMS()...)
	errs = append(errs, v.validateProviders()...)
	errs = append(errs, v.validateConfirmation()...)
	errs = append(errs, v.validateTags()...)
	errs = append(errs, v.validateVectorSearch()...)
	errs = append(errs, v.validateAutoProcessing()...)
	errs = append(errs, v.validateMaintenance()...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

func (v *Validator) validateDMS() []error {
	var errs []error
	if v.cfg.DMS == nil || v.cfg.DMS.BaseURL == "" {
		errs = append(errs, NewValidationError("dms", "dms", "base_url", ErrMissingRequiredField))
	}
	return errs
}

func (v *Validator) validateProviders() []error {
	var errs []error
	registry := v.cfg.LLMProviderRegistry
	if registry == nil || registry.Len() == 0 {
		return []error{NewValidationError("llm_provider", "registry", "", fmt.Errorf("%w: no providers configured", ErrMissingRequiredField))}
	}

	for _, name := range registry.Names() {
		provider, _ := registry.Get(name)
		if provider.Model == "" {
			errs = append(errs, NewValidationError("llm_provider", name, "model", ErrMissingRequiredField))
		}
		if provider.BaseURL == "" {
			errs = append(errs, NewValidationError("llm_provider", name, "base_url", ErrMissingRequiredField))
		}
		if provider.ThinkingLevel != "" {
			switch provider.ThinkingLevel {
			case "low", "medium", "high":
			default:
				errs = append(errs, NewValidationError("llm_provider", name, "thinking_level",
					fmt.Errorf("%w: %q (want low|medium|high)", ErrInvalidValue, provider.ThinkingLevel)))
			}
		}
	}

	// Roles used by the pipeline must resolve. embedding is only required
	// when vector search is on; translation only for metadata enhancement.
	required := []ModelRole{RoleLarge, RoleSmall}
	if v.cfg.VectorSearch != nil && v.cfg.VectorSearch.Enabled {
		required = append(required, RoleEmbedding)
	}
	for _, role := range required {
		if _, err := registry.ForRole(role); err != nil {
			errs = append(errs, NewValidationError("llm_provider", "roles", string(role), err))
		}
	}

	return errs
}

func (v *Validator) validateConfirmation() []error {
	var errs []error
	c := v.cfg.Confirmation
	if c.MaxRetries < 1 {
		errs = append(errs, NewValidationError("confirmation", "confirmation", "max_retries",
			fmt.Errorf("%w: %d (want >= 1)", ErrInvalidValue, c.MaxRetries)))
	}
	for _, kw := range c.ApprovalKeywords {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, NewValidationError("confirmation", "confirmation", "approval_keywords",
				fmt.Errorf("%w: empty keyword", ErrInvalidValue)))
		}
	}
	return errs
}

func (v *Validator) validateTags() []error {
	var errs []error
	t := v.cfg.Tags
	named := map[string]string{
		"pending":            t.Pending,
		"ocr_done":           t.OCRDone,
		"summary_done":       t.SummaryDone,
		"title_done":         t.TitleDone,
		"correspondent_done": t.CorrespondentDone,
		"document_type_done": t.DocumentTypeDone,
		"tags_done":          t.TagsDone,
		"processed":          t.Processed,
		"manual_review":      t.ManualReview,
		"failed":             t.Failed,
	}
	seen := make(map[string]string)
	for field, name := range named {
		if name == "" {
			errs = append(errs, NewValidationError("tags", "tags", field, ErrMissingRequiredField))
			continue
		}
		if prev, dup := seen[name]; dup {
			errs = append(errs, NewValidationError("tags", "tags", field,
				fmt.Errorf("%w: tag %q already used by %s", ErrInvalidValue, name, prev)))
		}
		seen[name] = field
	}
	return errs
}

func (v *Validator) validateVectorSearch() []error {
	var errs []error
	vs := v.cfg.VectorSearch
	if !vs.Enabled {
		return nil
	}
	if vs.TopK < 1 {
		errs = append(errs, NewValidationError("vector_search", "vector_search", "top_k",
			fmt.Errorf("%w: %d (want >= 1)", ErrInvalidValue, vs.TopK)))
	}
	if vs.MinScore < 0 || vs.MinScore > 1 {
		errs = append(errs, NewValidationError("vector_search", "vector_search", "min_score",
			fmt.Errorf("%w: %v (want 0..1)", ErrInvalidValue, vs.MinScore)))
	}
	if v.cfg.VectorStore == nil || v.cfg.VectorStore.BaseURL == "" {
		errs = append(errs, NewValidationError("vector_store", "vector_store", "base_url",
			fmt.Errorf("%w: required when vector_search.enabled", ErrMissingRequiredField)))
	}
	return errs
}

func (v *Validator) validateAutoProcessing() []error {
	var errs []error
	ap := v.cfg.AutoProcessing
	if ap.IntervalMinutes < 1 {
		errs = append(errs, NewValidationError("auto_processing", "auto_processing", "interval_minutes",
			fmt.Errorf("%w: %d (want >= 1)", ErrInvalidValue, ap.IntervalMinutes)))
	}
	if ap.MaxConcurrentDocuments < 1 {
		errs = append(errs, NewValidationError("auto_processing", "auto_processing", "max_concurrent_documents",
			fmt.Errorf("%w: %d (want >= 1)", ErrInvalidValue, ap.MaxConcurrentDocuments)))
	}
	return errs
}

func (v *Validator) validateMaintenance() []error {
	var errs []error
	m := v.cfg.Maintenance
	jobs := map[string]*MaintenanceJobConfig{
		"schema_cleanup":       m.SchemaCleanup,
		"metadata_enhancement": m.MetadataEnhancement,
		"retention":            m.Retention,
	}
	for name, job := range jobs {
		if job == nil || !job.Enabled {
			continue
		}
		if _, err := ParseSchedule(job.Schedule); err != nil {
			errs = append(errs, NewValidationError("maintenance", name, "schedule", err))
		}
	}
	return errs
}

// ParseSchedule converts a schedule shorthand ("daily", "weekly",
// "monthly") or raw cron expression into a cron spec string, verifying
// it parses.
func ParseSchedule(schedule string) (string, error) {
	var spec string
	switch strings.ToLower(strings.TrimSpace(schedule)) {
	case "":
		return "", fmt.Errorf("%w: empty schedule", ErrMissingRequiredField)
	case "daily":
		spec = "0 3 * * *"
	case "weekly":
		spec = "0 3 * * 0"
	case "monthly":
		spec = "0 3 1 * *"
	default:
		spec = schedule
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidValue, schedule, err)
	}
	return spec, nil
}
