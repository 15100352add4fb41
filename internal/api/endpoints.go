package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateEntryRequest is the body for entry creation.
type CreateEntryRequest struct {
	Email          string            `json:"email"`
	ReferredByCode string            `json:"referredByCode,omitempty"`
	UTM            map[string]string `json:"utm,omitempty"`
	Metadata       map[string]any    `json:"metadata,omitempty"`
}

// CreateEntryResponse is the payload returned for a created entry. The
// client does not deep-validate it.
type CreateEntryResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateEntry submits a new entry to the waitlist.
func (c *Client) CreateEntry(ctx context.Context, req CreateEntryRequest) (*CreateEntryResponse, error) {
	path := fmt.Sprintf("/api/waitlists/%s/entries", url.PathEscape(c.waitlistID))
	var result CreateEntryResponse
	if err := c.Do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EntryCount returns the waitlist's total entry count. The API serves
// two shapes, {totalEntries} and {count}; both carry the same number
// and totalEntries wins when present.
func (c *Client) EntryCount(ctx context.Context) (int, error) {
	path := fmt.Sprintf("/api/waitlists/%s/count", url.PathEscape(c.waitlistID))
	var result struct {
		TotalEntries *int `json:"totalEntries"`
		Count        *int `json:"count"`
	}
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return 0, err
	}
	if result.TotalEntries != nil {
		return *result.TotalEntries, nil
	}
	if result.Count != nil {
		return *result.Count, nil
	}
	return 0, nil
}

// CheckEmail reports whether an email is already on the waitlist.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	path := fmt.Sprintf("/api/waitlists/%s/check", url.PathEscape(c.waitlistID))
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	var result struct {
		Exists bool `json:"exists"`
	}
	if err := c.Do(ctx, http.MethodPost, path, body, &result); err != nil {
		return false, err
	}
	return result.Exists, nil
}
