package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// InkwellYAMLConfig represents the complete inkwell.yaml file structure
type InkwellYAMLConfig struct {
	DMS            *DMSConfig            `yaml:"dms"`
	OCR            *OCRConfig            `yaml:"ocr"`
	VectorStore    *VectorStoreConfig    `yaml:"vector_store"`
	VectorSearch   *VectorSearchConfig   `yaml:"vector_search"`
	Pipeline       *PipelineConfig       `yaml:"pipeline"`
	Confirmation   *ConfirmationConfig   `yaml:"confirmation"`
	AutoProcessing *AutoProcessingConfig `yaml:"auto_processing"`
	Tags           *TagConfig            `yaml:"tags"`
	Maintenance    *MaintenanceConfig    `yaml:"maintenance"`
	Debug          *DebugConfig          `yaml:"debug"`
	PromptLanguage string                `yaml:"prompt_language"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]*LLMProviderConfig `yaml:"llm_providers"`
	Roles        map[string]string             `yaml:"roles"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in defaults underneath user values
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"enabled_stages", stats.EnabledStages,
		"prompt_language", cfg.PromptLanguage)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	// 1. Load inkwell.yaml
	var inkwellCfg InkwellYAMLConfig
	if err := loader.loadYAML("inkwell.yaml", &inkwellCfg); err != nil {
		return nil, NewLoadError("inkwell.yaml", err)
	}

	// 2. Load llm-providers.yaml
	var providersCfg LLMProvidersYAMLConfig
	if err := loader.loadYAML("llm-providers.yaml", &providersCfg); err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Merge user sections over built-in defaults.
	// Start with defaults, then merge user config on top to preserve
	// unset defaults (non-zero values override).
	dms := DefaultDMSConfig()
	ocr := DefaultOCRConfig()
	vectorStore := DefaultVectorStoreConfig()
	vectorSearch := DefaultVectorSearchConfig()
	pipeline := DefaultPipelineConfig()
	confirmation := DefaultConfirmationConfig()
	autoProcessing := DefaultAutoProcessingConfig()
	tags := DefaultTagConfig()
	maintenance := DefaultMaintenanceConfig()
	debug := DefaultDebugConfig()

	for _, m := range []struct {
		dst, src any
	}{
		{dms, inkwellCfg.DMS},
		{ocr, inkwellCfg.OCR},
		{vectorStore, inkwellCfg.VectorStore},
		{vectorSearch, inkwellCfg.VectorSearch},
		{pipeline, inkwellCfg.Pipeline},
		{confirmation, inkwellCfg.Confirmation},
		{autoProcessing, inkwellCfg.AutoProcessing},
		{tags, inkwellCfg.Tags},
		{maintenance, inkwellCfg.Maintenance},
		{debug, inkwellCfg.Debug},
	} {
		if isNilPtr(m.src) {
			continue
		}
		if err := mergo.Merge(m.dst, m.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration section: %w", err)
		}
	}

	// Boolean stage toggles can't ride mergo's zero-value semantics: an
	// explicit `summary: true` must win even though the default is false,
	// and `title: false` must win even though the default is true. When
	// the user provides a pipeline section it replaces the toggles wholesale.
	if inkwellCfg.Pipeline != nil {
		selection := pipeline.CustomFieldSelection
		*pipeline = *inkwellCfg.Pipeline
		if pipeline.CustomFieldSelection == nil {
			pipeline.CustomFieldSelection = selection
		}
	}
	if inkwellCfg.AutoProcessing != nil {
		autoProcessing.Enabled = inkwellCfg.AutoProcessing.Enabled
		autoProcessing.PauseOnUserActivity = inkwellCfg.AutoProcessing.PauseOnUserActivity
	}
	if inkwellCfg.VectorSearch != nil {
		vectorSearch.Enabled = inkwellCfg.VectorSearch.Enabled
	}
	if inkwellCfg.Confirmation != nil {
		confirmation.RequireUserForNewEntities = inkwellCfg.Confirmation.RequireUserForNewEntities
	}
	if len(confirmation.ApprovalKeywords) == 0 {
		confirmation.ApprovalKeywords = DefaultApprovalKeywords
	}

	// 4. Build LLM provider registry with role map
	roles := make(RoleMap, len(providersCfg.Roles))
	for role, provider := range providersCfg.Roles {
		roles[ModelRole(role)] = provider
	}
	registry := NewLLMProviderRegistry(providersCfg.LLMProviders, roles)

	promptLanguage := inkwellCfg.PromptLanguage
	if promptLanguage == "" {
		promptLanguage = "en"
	}

	return &Config{
		configDir:           configDir,
		DMS:                 dms,
		OCR:                 ocr,
		VectorStore:         vectorStore,
		VectorSearch:        vectorSearch,
		Pipeline:            pipeline,
		Confirmation:        confirmation,
		AutoProcessing:      autoProcessing,
		Tags:                tags,
		Maintenance:         maintenance,
		Debug:               debug,
		PromptLanguage:      promptLanguage,
		LLMProviderRegistry: registry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing the YAML parser to handle the content (or fail with a clearer
	// error message).
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// isNilPtr reports whether a typed-pointer-in-interface is nil.
func isNilPtr(v any) bool {
	switch p := v.(type) {
	case *DMSConfig:
		return p == nil
	case *OCRConfig:
		return p == nil
	case *VectorStoreConfig:
		return p == nil
	case *VectorSearchConfig:
		return p == nil
	case *PipelineConfig:
		return p == nil
	case *ConfirmationConfig:
		return p == nil
	case *AutoProcessingConfig:
		return p == nil
	case *TagConfig:
		return p == nil
	case *MaintenanceConfig:
		return p == nil
	case *DebugConfig:
		return p == nil
	default:
		return v == nil
	}
}
