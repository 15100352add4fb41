package waitly

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultAPIURL        = "https://www.gowaitly.com"
	defaultTimeout       = 10 * time.Second
	defaultRetryAttempts = 3
)

// clientConfig holds resolved configuration for the client.
type clientConfig struct {
	apiURL         string
	timeout        time.Duration
	retryAttempts  int
	headers        map[string]string
	httpClient     *http.Client
	logger         *slog.Logger
	circuitBreaker bool
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIURL sets the API base URL.
// Default: https://www.gowaitly.com
func WithAPIURL(url string) Option {
	return func(c *clientConfig) {
		c.apiURL = url
	}
}

// WithTimeout sets the per-request timeout. Each operation is aborted
// when its timeout expires, independently of other in-flight requests.
// Default: 10 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetryAttempts sets the total attempt budget per request,
// including the initial attempt. Non-positive values leave the default
// in place.
// Default: 3
func WithRetryAttempts(attempts int) Option {
	return func(c *clientConfig) {
		if attempts > 0 {
			c.retryAttempts = attempts
		}
	}
}

// WithHeaders sets extra headers sent on every request. The mandatory
// Waitly headers (Content-Type, X-API-Key, X-SDK-Version,
// X-Waitlist-ID) cannot be overridden.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		c.headers = headers
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger for retry and circuit breaker events.
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithCircuitBreaker enables a circuit breaker around the transport:
// after repeated transport failures, requests are rejected for a
// cool-down period instead of hitting a failing network.
// Default: disabled
func WithCircuitBreaker() Option {
	return func(c *clientConfig) {
		c.circuitBreaker = true
	}
}
