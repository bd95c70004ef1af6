package config

// Config is the umbrella configuration object that encapsulates
// all sections, registries, and configuration state.
// This is the primary object returned by Initialize() and used throughout
// the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	DMS            *DMSConfig
	OCR            *OCRConfig
	VectorStore    *VectorStoreConfig
	VectorSearch   *VectorSearchConfig
	Pipeline       *PipelineConfig
	Confirmation   *ConfirmationConfig
	AutoProcessing *AutoProcessingConfig
	Tags           *TagConfig
	Maintenance    *MaintenanceConfig
	Debug          *DebugConfig

	// PromptLanguage selects the prompt template set; missing templates
	// fall back to English.
	PromptLanguage string

	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders  int
	EnabledStages int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.Pipeline != nil {
		for _, enabled := range []bool{
			c.Pipeline.OCR, c.Pipeline.Summary, c.Pipeline.SchemaAnalysis,
			c.Pipeline.Title, c.Pipeline.Correspondent, c.Pipeline.DocumentType,
			c.Pipeline.Tags, c.Pipeline.CustomFields, c.Pipeline.DocumentLinks,
		} {
			if enabled {
				s.EnabledStages++
			}
		}
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ProviderForRole resolves a model role to its provider configuration.
// This is a convenience method that wraps LLMProviderRegistry.ForRole().
func (c *Config) ProviderForRole(role ModelRole) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.ForRole(role)
}
