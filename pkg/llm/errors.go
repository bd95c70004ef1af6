package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates the model produced no text at all.
var ErrEmptyResponse = errors.New("llm: empty response")

// GenerationError carries a provider-reported generation failure.
type GenerationError struct {
	Model   string
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("llm: generation failed (model %s): %s", e.Model, e.Message)
}

// CallError marks a model call that produced no usable response after
// retries: network failure, non-2xx status, or a malformed stream.
type CallError struct {
	Model string
	Err   error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("llm: call failed (model %s): %v", e.Model, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// IsModelFailure reports whether err originated in the model call
// itself rather than in local processing. Stage code escalates these to
// human review instead of aborting the run.
func IsModelFailure(err error) bool {
	var ce *CallError
	var ge *GenerationError
	return errors.As(err, &ce) || errors.As(err, &ge)
}
