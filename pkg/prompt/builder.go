// Package prompt provides the centralized prompt builder for all pipeline
// stages. Templates are named text/template definitions grouped into
// per-language sets; a name missing from the configured language falls
// back to the English set.
package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// Vars is the variable set available to every template. Stages fill only
// the fields their template references.
type Vars struct {
	DocumentContent  string
	DocumentTitle    string
	DocumentSummary  string
	SuggestedValue   string
	Reasoning        string
	Feedback         string
	ExistingEntities []string
	FieldName        string
	FieldType        string
	AllowedValues    []string
	CandidateTitles  []string
	EntityKind       string
	EntityName       string
	Language         string
}

// Builder renders named templates for a configured prompt language.
// Stateless after construction and safe for concurrent use.
type Builder struct {
	language string
	active   *template.Template
	english  *template.Template
}

// NewBuilder parses the template sets and returns a builder for the given
// language. Unknown languages fall back to English entirely.
func NewBuilder(language string) (*Builder, error) {
	english, err := parseSet("en", englishTemplates)
	if err != nil {
		return nil, err
	}

	b := &Builder{language: language, active: english, english: english}
	if language != "" && language != "en" {
		set, ok := languageSets[language]
		if ok {
			active, err := parseSet(language, set)
			if err != nil {
				return nil, err
			}
			b.active = active
		}
	}
	return b, nil
}

// Language returns the configured prompt language.
func (b *Builder) Language() string {
	return b.language
}

// Render executes the named template with the given variables. Names
// absent from the active language render from the English set.
func (b *Builder) Render(name string, vars Vars) (string, error) {
	vars.Language = b.language

	tmpl := b.active.Lookup(name)
	if tmpl == nil {
		tmpl = b.english.Lookup(name)
	}
	if tmpl == nil {
		return "", fmt.Errorf("prompt: unknown template %q", name)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, vars); err != nil {
		return "", fmt.Errorf("prompt: failed to render %q: %w", name, err)
	}
	return sb.String(), nil
}

// ConfirmationName returns the reviewer-side counterpart of an analysis
// template name.
func ConfirmationName(name string) string {
	return name + "_confirmation"
}

func parseSet(language string, set map[string]string) (*template.Template, error) {
	root := template.New(language)
	for name, text := range set {
		if _, err := root.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("prompt: failed to parse template %q (%s): %w", name, language, err)
		}
	}
	return root, nil
}
