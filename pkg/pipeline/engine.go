package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/models"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
)

// StageSpec parameterizes one confirmation loop run. Every LLM-derived
// value goes through the same procedure; stages differ only in their
// prompt, review kind, and validation.
type StageSpec struct {
	// Stage name, used in events and the processing log.
	Name string

	// Review kind for blocklist checks and queue items.
	Kind string

	// PromptName is the analysis template; its _confirmation counterpart
	// is rendered for the reviewer.
	PromptName string

	// Vars builds template variables for an attempt. feedback is empty
	// on the first attempt.
	Vars func(feedback string) prompt.Vars

	// Validate, when non-nil, rejects a proposed value before it reaches
	// the reviewer. The returned error text becomes loop feedback.
	Validate func(suggestion string) error
}

// Outcome is the result of a confirmation loop.
type Outcome struct {
	Analysis  models.Analysis
	Converged bool

	// LastFeedback is the final objection when the loop did not
	// converge.
	LastFeedback string
}

// confirmValue runs the analyst/reviewer confirmation loop for one
// value. It returns a non-converged outcome when the retry budget is
// exhausted; errors are transport or template failures only. On error
// the outcome still carries the last analysis, so callers escalating a
// model failure have the partial proposal to put in front of a human.
func (o *Orchestrator) confirmValue(ctx context.Context, docID int, spec StageSpec) (Outcome, error) {
	maxRetries := o.cfg.Confirmation.MaxRetries
	log := o.logger.With("doc_id", docID, "stage", spec.Name)

	var feedback string
	var last models.Analysis
	for attempt := 1; attempt <= maxRetries; attempt++ {
		analysis, err := o.analyze(ctx, spec, feedback)
		if err != nil {
			return Outcome{Analysis: last}, err
		}
		analysis.AttemptsUsed = attempt
		last = analysis

		// Short-circuit checks feed the loop without consuming a
		// reviewer call.
		if strings.TrimSpace(analysis.Suggestion) == "" {
			feedback = "The previous attempt produced an empty suggestion. Provide a concrete value."
			log.Debug("Empty suggestion", "attempt", attempt)
			continue
		}
		blocked, err := o.blocklist.IsBlocked(ctx, spec.Kind, analysis.Suggestion)
		if err != nil {
			return Outcome{Analysis: last}, err
		}
		if blocked {
			feedback = fmt.Sprintf("The value %q was rejected before and must not be suggested again. Propose a different value.", analysis.Suggestion)
			log.Debug("Blocklisted suggestion dropped", "attempt", attempt, "suggestion", analysis.Suggestion)
			continue
		}
		if spec.Validate != nil {
			if err := spec.Validate(analysis.Suggestion); err != nil {
				feedback = err.Error()
				log.Debug("Suggestion failed validation", "attempt", attempt, "error", err)
				continue
			}
		}

		verdict, err := o.reviewValue(ctx, spec, analysis)
		if err != nil {
			return Outcome{Analysis: last}, err
		}
		if verdict.Confirmed {
			log.Debug("Value confirmed", "attempt", attempt, "suggestion", analysis.Suggestion)
			return Outcome{Analysis: analysis, Converged: true}, nil
		}
		feedback = verdict.Feedback
		log.Debug("Value rejected by reviewer", "attempt", attempt, "feedback", feedback)
	}

	return Outcome{Analysis: last, Converged: false, LastFeedback: feedback}, nil
}

// analyze renders the analysis prompt and parses the analyst's response.
func (o *Orchestrator) analyze(ctx context.Context, spec StageSpec, feedback string) (models.Analysis, error) {
	vars := spec.Vars(feedback)
	userPrompt, err := o.prompts.Render(spec.PromptName, vars)
	if err != nil {
		return models.Analysis{}, err
	}
	system, err := o.prompts.Render("system_analyst", prompt.Vars{})
	if err != nil {
		return models.Analysis{}, err
	}

	o.logPrompt(spec.Name, "analysis", userPrompt)
	raw, err := llm.Complete(ctx, o.analyst, llm.Request{System: system, Prompt: userPrompt})
	if err != nil {
		return models.Analysis{}, fmt.Errorf("analyst call failed: %w", err)
	}
	o.logResponse(spec.Name, "analysis", raw)

	return llm.ParseAnalysis(raw), nil
}

// reviewValue renders the confirmation prompt and parses the reviewer's
// verdict.
func (o *Orchestrator) reviewValue(ctx context.Context, spec StageSpec, analysis models.Analysis) (models.Verdict, error) {
	vars := spec.Vars("")
	vars.SuggestedValue = analysis.Suggestion
	vars.Reasoning = analysis.Reasoning

	confirmPrompt, err := o.prompts.Render(prompt.ConfirmationName(spec.PromptName), vars)
	if err != nil {
		return models.Verdict{}, err
	}
	system, err := o.prompts.Render("system_reviewer", prompt.Vars{})
	if err != nil {
		return models.Verdict{}, err
	}

	o.logPrompt(spec.Name, "confirmation", confirmPrompt)
	raw, err := llm.Complete(ctx, o.reviewer, llm.Request{System: system, Prompt: confirmPrompt})
	if err != nil {
		return models.Verdict{}, fmt.Errorf("reviewer call failed: %w", err)
	}
	o.logResponse(spec.Name, "confirmation", raw)

	return llm.ParseVerdict(raw, o.cfg.Confirmation.ApprovalKeywords), nil
}

func (o *Orchestrator) logPrompt(stage, phase, text string) {
	if o.cfg.Debug != nil && o.cfg.Debug.LogPrompts {
		o.logger.Debug("LLM prompt", "stage", stage, "phase", phase, "prompt", text)
	}
}

func (o *Orchestrator) logResponse(stage, phase, text string) {
	if o.cfg.Debug != nil && o.cfg.Debug.LogResponses {
		o.logger.Debug("LLM response", "stage", stage, "phase", phase, "response", text)
	}
}
