package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBodyBytes bounds how much of an error response body is read.
const maxErrorBodyBytes = 64 << 10

// APIError represents a non-2xx response from the Waitly API.
type APIError struct {
	StatusCode int
	Message    string
	Details    any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("waitly: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("waitly: API error %d", e.StatusCode)
}

// NetworkError represents a transport-level failure (DNS, connect,
// broken connection) before an HTTP status was received.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("waitly: network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// parseErrorResponse builds an APIError from an error response body.
// The API returns JSON with optional "message" and "details" fields;
// anything else is carried verbatim as the message.
func parseErrorResponse(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
		if len(payload.Details) > 0 && string(payload.Details) != "null" {
			var details any
			if err := json.Unmarshal(payload.Details, &details); err == nil {
				apiErr.Details = details
			}
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
