package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker/v2"
)

// Mandatory request headers. Configured extra headers cannot shadow
// these: they are applied last on every request.
const (
	headerAPIKey     = "X-API-Key"
	headerSDKVersion = "X-SDK-Version"
	headerWaitlistID = "X-Waitlist-ID"
)

const sdkVersion = "waitly-go/" + Version

// Client executes requests against the Waitly API. All public
// operations funnel through Do.
type Client struct {
	baseURL     string
	apiKey      string
	waitlistID  string
	headers     map[string]string
	timeout     time.Duration
	attempts    int
	backoffBase time.Duration
	httpClient  *http.Client
	logger      *slog.Logger
	classifier  ErrorClassifier
	registry    *registry
	breaker     *gobreaker.CircuitBreaker[*http.Response]
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryAttempts sets the total attempt budget (including the
// initial attempt). Non-positive values are ignored.
func WithRetryAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
	}
}

// WithHeaders sets extra headers sent on every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger for retry and circuit breaker events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBackoffBase overrides the base backoff delay. The schedule stays
// a strict doubling of this base.
func WithBackoffBase(base time.Duration) Option {
	return func(c *Client) {
		if base > 0 {
			c.backoffBase = base
		}
	}
}

// WithCircuitBreaker enables the circuit breaker around transport calls.
func WithCircuitBreaker() Option {
	return func(c *Client) {
		c.breaker = newBreaker(c.logger)
	}
}

// New creates a new API client. The caller is responsible for
// validating the API key and waitlist ID.
func New(apiKey, waitlistID string, opts ...Option) *Client {
	c := &Client{
		baseURL:     "https://www.gowaitly.com",
		apiKey:      apiKey,
		waitlistID:  waitlistID,
		timeout:     10 * time.Second,
		attempts:    3,
		backoffBase: time.Second,
		logger:      slog.Default(),
		classifier:  StatusClassifier{},
		registry:    newRegistry(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	return c
}

// CancelAll aborts every in-flight request and clears the registry.
func (c *Client) CancelAll() {
	c.registry.CancelAll()
}

// InFlight reports the number of requests currently registered.
func (c *Client) InFlight() int {
	return c.registry.Len()
}

// Do executes an HTTP call with retries and decodes the 2xx response
// body into result (when non-nil).
//
// Terminal outcomes: success, a client error in [400,500), a timeout or
// cancellation, or retry exhaustion. Everything else waits out the
// doubling backoff schedule and reattempts. The cancellation handle is
// removed from the registry on every terminal outcome.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil && method != http.MethodGet {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	id := c.registry.Add(method, path, cancel)
	defer func() {
		c.registry.Remove(id)
		cancel()
	}()

	url := c.baseURL + path
	attempt := 0

	err := retry.Do(reqCtx, newBackoff(c.attempts, c.backoffBase), func(ctx context.Context) error {
		attempt++

		req, err := c.newRequest(ctx, method, url, payload)
		if err != nil {
			return err
		}

		resp, err := c.send(req)
		if err != nil {
			// The transport reports the timeout or cancellation of this
			// request as a context error: terminal, no further retries.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if rejErr := c.wrapBreakerError(err); rejErr != nil {
				return rejErr
			}
			nerr := &NetworkError{URL: url, Err: err}
			if c.classifier.IsRetryable(nerr) {
				c.logger.Debug("retrying request after network error",
					"method", method,
					"path", path,
					"attempt", attempt,
					"error", err)
				return retry.RetryableError(nerr)
			}
			return nerr
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if attempt > 1 {
				c.logger.Info("request succeeded after retry",
					"method", method,
					"path", path,
					"attempts", attempt)
			}
			if result == nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil
		}

		apiErr := parseErrorResponse(resp)
		if c.classifier.IsRetryable(apiErr) {
			c.logger.Debug("retrying request after server error",
				"method", method,
				"path", path,
				"attempt", attempt,
				"status", resp.StatusCode)
			return retry.RetryableError(apiErr)
		}
		return apiErr
	})
	if err != nil {
		c.logger.Warn("request failed",
			"method", method,
			"path", path,
			"attempts", attempt,
			"error", err)
		return err
	}

	return nil
}

// newRequest builds the HTTP request for one attempt. Extra headers are
// applied first so the mandatory headers always win.
func (c *Client) newRequest(ctx context.Context, method, url string, payload []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerSDKVersion, sdkVersion)
	req.Header.Set(headerWaitlistID, c.waitlistID)

	return req, nil
}

// send issues one attempt, through the circuit breaker when enabled.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		return c.httpClient.Do(req)
	}
	return c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
}
