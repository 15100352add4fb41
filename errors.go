package waitly

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gowaitly/waitly-go/internal/api"
)

// ErrorCode identifies the category of a normalized error.
type ErrorCode string

const (
	// CodeValidationError is returned for HTTP 400 responses.
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	// CodeUnauthorized is returned for HTTP 401 responses.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// CodeNotFound is returned for HTTP 404 responses.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeDuplicateEntry is returned for HTTP 409 responses.
	CodeDuplicateEntry ErrorCode = "DUPLICATE_ENTRY"
	// CodeRateLimit is returned for HTTP 429 responses.
	CodeRateLimit ErrorCode = "RATE_LIMIT"
	// CodeTimeout is returned when a request times out or is aborted.
	CodeTimeout ErrorCode = "TIMEOUT"
	// CodeUnknown is the fallback for everything else.
	CodeUnknown ErrorCode = "UNKNOWN_ERROR"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingWaitlistID is returned at construction when no waitlist ID is provided.
	ErrMissingWaitlistID = errors.New("waitlistId is required")

	// ErrMissingAPIKey is returned at construction when no API key is provided.
	ErrMissingAPIKey = errors.New("apiKey is required")

	// ErrMissingEmail is returned when an entry submission has no email.
	ErrMissingEmail = errors.New("email is required")

	// ErrInvalidEmail is returned when an email fails the local format check.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrWaitlistNotFound is returned when the waitlist does not exist.
	ErrWaitlistNotFound = errors.New("waitlist not found")

	// ErrDuplicateEntry is returned when the email is already on the waitlist.
	ErrDuplicateEntry = errors.New("email already exists in this waitlist")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimeout is returned when a request times out or is cancelled.
	ErrTimeout = errors.New("request timed out")
)

// Error is the normalized error shape surfaced for every network-stage
// failure. Local validation and construction failures are plain
// sentinel errors instead and never reach the network.
type Error struct {
	Code       ErrorCode
	Message    string
	Details    any
	StatusCode int
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("waitly: %s (%d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("waitly: %s: %s", e.Code, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch e.Code {
	case CodeUnauthorized:
		return target == ErrUnauthorized
	case CodeNotFound:
		return target == ErrWaitlistNotFound
	case CodeDuplicateEntry:
		return target == ErrDuplicateEntry
	case CodeRateLimit:
		return target == ErrRateLimited
	case CodeTimeout:
		return target == ErrTimeout
	}
	return false
}

// normalizeError maps any network-stage failure into an *Error. The
// status table is exhaustive: statuses outside it fall into
// CodeUnknown with the status attached.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}

	var werr *Error
	if errors.As(err, &werr) {
		return werr
	}

	// Aborted requests (per-request timeout or CancelAll) surface as
	// context errors from the transport.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Code: CodeTimeout, Message: "Request timeout"}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		code, fallback := codeForStatus(apiErr.StatusCode)
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		return &Error{
			Code:       code,
			Message:    message,
			Details:    apiErr.Details,
			StatusCode: apiErr.StatusCode,
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return &Error{Code: CodeTimeout, Message: "Request timeout"}
	}

	return &Error{Code: CodeUnknown, Message: err.Error()}
}

func codeForStatus(status int) (ErrorCode, string) {
	switch status {
	case 400:
		return CodeValidationError, "Validation error"
	case 401:
		return CodeUnauthorized, "Invalid API key"
	case 404:
		return CodeNotFound, "Waitlist not found"
	case 409:
		return CodeDuplicateEntry, "Email already exists in this waitlist"
	case 429:
		return CodeRateLimit, "Rate limit exceeded"
	}
	return CodeUnknown, "An unexpected error occurred"
}
