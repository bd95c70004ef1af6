package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/llm"
	"github.com/inkwell-ai/inkwell/pkg/prompt"
	"github.com/inkwell-ai/inkwell/pkg/review"
	testdb "github.com/inkwell-ai/inkwell/test/database"
)

// scriptedLLM returns canned responses in order and records the prompts
// it was asked.
type scriptedLLM struct {
	responses []string
	prompts   []string
}

func (c *scriptedLLM) Generate(_ context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	c.prompts = append(c.prompts, req.Prompt)
	if len(c.responses) == 0 {
		return nil, errors.New("script exhausted")
	}
	text := c.responses[0]
	c.responses = c.responses[1:]

	ch := make(chan llm.Chunk, 1)
	ch <- llm.Chunk{Type: llm.ChunkTypeText, Text: text}
	close(ch)
	return ch, nil
}

func (c *scriptedLLM) Model() string { return "scripted" }

func newConfirmOrchestrator(t *testing.T, analyst, reviewer *scriptedLLM) (*Orchestrator, *review.Blocklist) {
	t.Helper()
	client := testdb.NewTestClient(t)
	blocklist := review.NewBlocklist(client.Client)

	prompts, err := prompt.NewBuilder("en")
	require.NoError(t, err)

	cfg := &config.Config{
		Confirmation: &config.ConfirmationConfig{
			MaxRetries:       3,
			ApprovalKeywords: config.DefaultApprovalKeywords,
		},
	}
	o := NewOrchestrator(Deps{
		Config:    cfg,
		Analyst:   analyst,
		Reviewer:  reviewer,
		Prompts:   prompts,
		Blocklist: blocklist,
		Logger:    slog.Default(),
	})
	return o, blocklist
}

func titleSpec() StageSpec {
	return StageSpec{
		Name:       "title",
		Kind:       "title",
		PromptName: "title",
		Vars: func(feedback string) prompt.Vars {
			return prompt.Vars{
				DocumentContent: "Electricity bill for March, 142 EUR.",
				DocumentTitle:   "Scan 0042",
				Feedback:        feedback,
			}
		},
	}
}

func TestConfirmValue_FirstAttemptConverges(t *testing.T) {
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "Electricity Invoice March", "confidence": 0.9, "reasoning": "header match"}`,
	}}
	reviewer := &scriptedLLM{responses: []string{"Yes, that fits."}}
	o, _ := newConfirmOrchestrator(t, analyst, reviewer)

	outcome, err := o.confirmValue(context.Background(), 1, titleSpec())
	require.NoError(t, err)
	assert.True(t, outcome.Converged)
	assert.Equal(t, "Electricity Invoice March", outcome.Analysis.Suggestion)
	assert.Equal(t, 1, outcome.Analysis.AttemptsUsed)
	assert.Len(t, reviewer.prompts, 1)
	// The reviewer sees the proposed value.
	assert.Contains(t, reviewer.prompts[0], "Electricity Invoice March")
}

func TestConfirmValue_ReviewerFeedbackDrivesRetry(t *testing.T) {
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "Document", "confidence": 0.4}`,
		`{"suggestion": "Electricity Invoice March", "confidence": 0.9}`,
	}}
	reviewer := &scriptedLLM{responses: []string{
		"No. Too generic, name the vendor and month.",
		"Approved.",
	}}
	o, _ := newConfirmOrchestrator(t, analyst, reviewer)

	outcome, err := o.confirmValue(context.Background(), 1, titleSpec())
	require.NoError(t, err)
	assert.True(t, outcome.Converged)
	assert.Equal(t, 2, outcome.Analysis.AttemptsUsed)
	// The second analysis prompt carries the reviewer's objection.
	require.Len(t, analyst.prompts, 2)
	assert.Contains(t, analyst.prompts[1], "Too generic")
}

func TestConfirmValue_EmptySuggestionSkipsReviewer(t *testing.T) {
	analyst := &scriptedLLM{responses: []string{
		"",
		`{"suggestion": "Electricity Invoice March", "confidence": 0.9}`,
	}}
	reviewer := &scriptedLLM{responses: []string{"yes"}}
	o, _ := newConfirmOrchestrator(t, analyst, reviewer)

	outcome, err := o.confirmValue(context.Background(), 1, titleSpec())
	require.NoError(t, err)
	assert.True(t, outcome.Converged)
	// The empty first attempt never reached the reviewer.
	assert.Len(t, reviewer.prompts, 1)
	require.Len(t, analyst.prompts, 2)
	assert.Contains(t, analyst.prompts[1], "empty suggestion")
}

func TestConfirmValue_BlocklistedSuggestionSkipsReviewer(t *testing.T) {
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "Scan", "confidence": 0.8}`,
		`{"suggestion": "Electricity Invoice March", "confidence": 0.9}`,
	}}
	reviewer := &scriptedLLM{responses: []string{"yes"}}
	o, blocklist := newConfirmOrchestrator(t, analyst, reviewer)
	ctx := context.Background()
	require.NoError(t, blocklist.Add(ctx, "title", "Scan", "useless title"))

	outcome, err := o.confirmValue(ctx, 1, titleSpec())
	require.NoError(t, err)
	assert.True(t, outcome.Converged)
	assert.Equal(t, "Electricity Invoice March", outcome.Analysis.Suggestion)
	assert.Len(t, reviewer.prompts, 1)
	assert.Contains(t, analyst.prompts[1], "rejected before")
}

func TestConfirmValue_ValidationFeedback(t *testing.T) {
	spec := titleSpec()
	spec.Validate = func(s string) error {
		if len(s) > 20 {
			return errors.New("the title must be at most 20 characters")
		}
		return nil
	}
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "An Exceedingly Verbose Title For A Simple Bill", "confidence": 0.9}`,
		`{"suggestion": "Electricity March", "confidence": 0.9}`,
	}}
	reviewer := &scriptedLLM{responses: []string{"yes"}}
	o, _ := newConfirmOrchestrator(t, analyst, reviewer)

	outcome, err := o.confirmValue(context.Background(), 1, spec)
	require.NoError(t, err)
	assert.True(t, outcome.Converged)
	assert.Len(t, reviewer.prompts, 1)
	assert.Contains(t, analyst.prompts[1], "at most 20 characters")
}

func TestConfirmValue_RetryBudgetExhausted(t *testing.T) {
	analyst := &scriptedLLM{responses: []string{
		`{"suggestion": "Title A", "confidence": 0.5}`,
		`{"suggestion": "Title B", "confidence": 0.5}`,
		`{"suggestion": "Title C", "confidence": 0.5}`,
	}}
	reviewer := &scriptedLLM{responses: []string{
		"No. Wrong vendor.",
		"No. Still wrong.",
		"No. Not even close.",
	}}
	o, _ := newConfirmOrchestrator(t, analyst, reviewer)

	outcome, err := o.confirmValue(context.Background(), 1, titleSpec())
	require.NoError(t, err)
	assert.False(t, outcome.Converged)
	assert.Equal(t, "Title C", outcome.Analysis.Suggestion)
	assert.Equal(t, 3, outcome.Analysis.AttemptsUsed)
	assert.Contains(t, outcome.LastFeedback, "Not even close")
}

func TestConfirmValue_AnalystErrorPropagates(t *testing.T) {
	analyst := &scriptedLLM{}
	reviewer := &scriptedLLM{}
	o, _ := newConfirmOrchestrator(t, analyst, reviewer)

	_, err := o.confirmValue(context.Background(), 1, titleSpec())
	assert.Error(t, err)
}
