package config

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ModelRole identifies which configured model a component asks for.
type ModelRole string

// Model roles. The analyst is "large", the reviewer is "small".
const (
	RoleLarge       ModelRole = "large"
	RoleSmall       ModelRole = "small"
	RoleEmbedding   ModelRole = "embedding"
	RoleTranslation ModelRole = "translation"
)

// LLMProviderConfig defines one named LLM provider.
type LLMProviderConfig struct {
	// Model name as the generation endpoint knows it (required)
	Model string `yaml:"model"`

	// Base URL of the generation endpoint (required)
	BaseURL string `yaml:"base_url"`

	// Environment variable name holding the API key, if the endpoint
	// requires one (local endpoints typically don't)
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Sampling temperature
	Temperature float64 `yaml:"temperature"`

	// Extended-thinking options, passed through to the endpoint
	ThinkingEnabled bool   `yaml:"thinking_enabled,omitempty"`
	ThinkingLevel   string `yaml:"thinking_level,omitempty"` // low|medium|high

	// Per-call timeout; zero means the adapter default (5 min)
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// RoleMap maps model roles to provider names.
type RoleMap map[ModelRole]string

// LLMProviderRegistry stores LLM provider configurations in memory with
// thread-safe access, plus the role → provider resolution.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	roles     RoleMap
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig, roles RoleMap) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	copiedRoles := make(RoleMap, len(roles))
	for k, v := range roles {
		copiedRoles[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
		roles:     copiedRoles,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// ForRole resolves a model role to its provider configuration.
func (r *LLMProviderRegistry) ForRole(role ModelRole) (*LLMProviderConfig, error) {
	r.mu.RLock()
	name, exists := r.roles[role]
	r.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: no provider mapped for role %q", ErrLLMProviderNotFound, role)
	}
	return r.Get(name)
}

// Names returns a sorted list of provider names.
func (r *LLMProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered providers.
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
