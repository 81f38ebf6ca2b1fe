package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks every rejected calculation or planner input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCatalog is returned when reference data breaks a catalog
	// invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrAdvisorRateLimited is returned when the completion gateway rejects a
	// request with HTTP 429.
	ErrAdvisorRateLimited = errors.New("advisor rate limit exceeded")

	// ErrAdvisorPaymentRequired is returned when the completion gateway
	// account has no balance left (HTTP 402).
	ErrAdvisorPaymentRequired = errors.New("advisor payment required")

	// ErrAdvisorNotConfigured is returned by the advisor when no API key is set.
	ErrAdvisorNotConfigured = errors.New("advisor is not configured")
)

// InputError describes a rejected input field. It matches ErrInvalidInput
// with errors.Is.
type InputError struct {
	Field  string
	Reason string
}

// NewInputError returns an *InputError for field.
func NewInputError(field, format string, args ...any) *InputError {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
