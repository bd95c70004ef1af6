package dms

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested resource does not exist in the
	// DMS. Callers abandon a document run when its document 404s.
	ErrNotFound = errors.New("dms: not found")

	// ErrUnauthorized indicates an auth failure (401/403). Not retryable;
	// trips the circuit breaker.
	ErrUnauthorized = errors.New("dms: unauthorized")

	// ErrUnavailable indicates the circuit breaker is open.
	ErrUnavailable = errors.New("dms: service unavailable")
)

// StatusError carries an unexpected HTTP status from the DMS.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dms: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Transient reports whether the status warrants a retry.
func (e *StatusError) Transient() bool {
	return e.Status == 429 || e.Status >= 500
}
