package waitly

import (
	"context"
	"strings"

	"github.com/gowaitly/waitly-go/internal/api"
)

// Version is the SDK version.
const Version = api.Version

// Client is the Waitly API client. It is safe for concurrent use;
// operations race independently and complete in network-arrival order.
type Client struct {
	api *api.Client
}

// New creates a client for a single waitlist. Both the waitlist ID and
// the API key are required; construction fails fast without any
// network activity.
func New(waitlistID, apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(waitlistID) == "" {
		return nil, ErrMissingWaitlistID
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		apiURL:        defaultAPIURL,
		timeout:       defaultTimeout,
		retryAttempts: defaultRetryAttempts,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.apiURL),
		api.WithTimeout(cfg.timeout),
		api.WithRetryAttempts(cfg.retryAttempts),
	}
	if len(cfg.headers) > 0 {
		apiOpts = append(apiOpts, api.WithHeaders(cfg.headers))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}
	// The breaker logs through the configured logger, so it must be
	// applied after WithLogger.
	if cfg.circuitBreaker {
		apiOpts = append(apiOpts, api.WithCircuitBreaker())
	}

	return &Client{api: api.New(apiKey, waitlistID, apiOpts...)}, nil
}

// CreateEntry submits a registrant to the waitlist. The email is
// lower-cased and trimmed before transmission and must pass the local
// format check; no request is made otherwise.
func (c *Client) CreateEntry(ctx context.Context, submission EntrySubmission) (*Entry, error) {
	email := normalizeEmail(submission.Email)
	if email == "" {
		return nil, ErrMissingEmail
	}
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}

	resp, err := c.api.CreateEntry(ctx, api.CreateEntryRequest{
		Email:          email,
		ReferredByCode: submission.ReferredByCode,
		UTM:            submission.UTM,
		Metadata:       submission.Metadata,
	})
	if err != nil {
		return nil, normalizeError(err)
	}

	return &Entry{ID: resp.ID, Email: resp.Email}, nil
}

// EntryCount returns the waitlist's total number of entries.
func (c *Client) EntryCount(ctx context.Context) (int, error) {
	count, err := c.api.EntryCount(ctx)
	if err != nil {
		return 0, normalizeError(err)
	}
	return count, nil
}

// CheckEmailExists reports whether an email is already on the waitlist.
func (c *Client) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if !validEmail(email) {
		return false, ErrInvalidEmail
	}

	exists, err := c.api.CheckEmail(ctx, email)
	if err != nil {
		return false, normalizeError(err)
	}
	return exists, nil
}

// CancelAll aborts every in-flight request. Aborted operations fail
// with a TIMEOUT error. Idempotent; safe with no requests in flight.
func (c *Client) CancelAll() {
	c.api.CancelAll()
}
