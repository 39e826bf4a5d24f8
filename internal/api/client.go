// Package api implements the client for the remote FakeStore catalog
// service: products, categories, users, carts, and the demo login endpoint.
// Calls carry a fixed per-call timeout and are never retried; failures are
// classified into the Kind taxonomy in errors.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"shophub/internal/logging"
)

// Client issues read/write calls against the remote catalog service.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the service at baseURL. timeout is the fixed
// per-call ceiling; zero falls back to 10s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string { return c.baseURL }

// ListOptions are the common query parameters for collection endpoints.
type ListOptions struct {
	Limit int    // 0 = server default
	Sort  string // "asc" or "desc", empty = server default
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	return v
}

// CartListOptions extends ListOptions with the date-range filters the carts
// endpoint accepts.
type CartListOptions struct {
	ListOptions
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

func (o CartListOptions) values() url.Values {
	v := o.ListOptions.values()
	if o.StartDate != "" {
		v.Set("startdate", o.StartDate)
	}
	if o.EndDate != "" {
		v.Set("enddate", o.EndDate)
	}
	return v
}

// do issues a single request and decodes the JSON response into out.
// out may be nil for calls whose body the caller discards.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqID := uuid.NewString()[:8]
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logging.APIDebug("[req:%s] %s %s", reqID, method, u)
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		logging.APIError("[req:%s] %s %s failed: %v", reqID, method, u, err)
		return transportError(err)
	}
	defer resp.Body.Close()

	logging.APIDebug("[req:%s] %s %s -> %d in %v", reqID, method, u, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return statusError(resp.StatusCode, fmt.Errorf("%s %s: %s", method, path, string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindUnknown, StatusCode: resp.StatusCode,
			cause: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
