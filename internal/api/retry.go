package api

import (
	"context"
	"errors"
	"time"

	jperrors "github.com/JohnPlummer/jp-go-errors"
	"github.com/sethvargo/go-retry"
)

// ErrorClassifier determines whether a failed attempt should be retried.
type ErrorClassifier interface {
	// IsRetryable returns true if the error represents a transient
	// failure that should be retried.
	IsRetryable(err error) bool
}

// StatusClassifier classifies attempt outcomes by HTTP status code.
//
// Client errors in [400,500) are never retried: the Waitly API treats
// them as non-transient, including 429. Server errors (>=500) and any
// other non-2xx status are retried, as are transport failures. Context
// cancellation and timeouts are terminal.
type StatusClassifier struct{}

// IsRetryable implements ErrorClassifier.
func (StatusClassifier) IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Cancellation and timeouts are terminal: retrying with the same
	// context would fail immediately.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	if jperrors.IsTimeout(err) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode < 400 || apiErr.StatusCode >= 500
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	// Unknown errors might be transient (network issues, etc.)
	return true
}

// newBackoff builds the retry schedule: strict doubling from base with
// no jitter, for a total of attempts tries. go-retry counts the initial
// attempt itself, so attempts-1 is passed as the retry budget.
func newBackoff(attempts int, base time.Duration) retry.Backoff {
	maxRetries := attempts - 1
	if maxRetries < 0 {
		maxRetries = 0
	}
	return retry.WithMaxRetries(uint64(maxRetries), retry.NewExponential(base))
}
