package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	jperrors "github.com/JohnPlummer/jp-go-errors"
	"github.com/sony/gobreaker/v2"
)

// newBreaker builds the optional circuit breaker around the transport
// call. It trips after 3 requests with a 60% failure rate and rejects
// requests for 30 seconds before probing again. Cancellation and
// timeout outcomes do not count as failures.
func newBreaker(logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	settings := gobreaker.Settings{
		Name:        "waitly-api",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
		},
	}
	return gobreaker.NewCircuitBreaker[*http.Response](settings)
}

// wrapBreakerError converts gobreaker rejections into circuit breaker
// errors with the current counts attached. Returns nil for any other
// error so the caller falls through to normal transport handling.
func (c *Client) wrapBreakerError(err error) error {
	if c.breaker == nil {
		return nil
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		counts := c.breaker.Counts()
		c.logger.Warn("circuit breaker is open, request rejected",
			"error", err,
			"state", c.breaker.State(),
			"counts", counts)
		return jperrors.NewCircuitBreakerError(
			"request rejected",
			"execute",
			"open",
			jperrors.WithCause(err),
			jperrors.WithCounts(breakerCounts(counts)),
		)
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		c.logger.Debug("circuit breaker in half-open state, too many requests",
			"error", err)
		return jperrors.NewCircuitBreakerError(
			"too many requests in half-open state",
			"execute",
			"half-open",
			jperrors.WithCause(err),
			jperrors.WithCounts(breakerCounts(c.breaker.Counts())),
		)
	}
	return nil
}

func breakerCounts(counts gobreaker.Counts) jperrors.CircuitCounts {
	return jperrors.CircuitCounts{
		Requests:             counts.Requests,
		TotalSuccesses:       counts.TotalSuccesses,
		TotalFailures:        counts.TotalFailures,
		ConsecutiveSuccesses: counts.ConsecutiveSuccesses,
		ConsecutiveFailures:  counts.ConsecutiveFailures,
	}
}
