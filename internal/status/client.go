package status

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"memo/internal/logs"
)

// DefaultURL is the remote status page shown alongside the memo list.
const DefaultURL = "http://13.125.250.187/index.html"

// Fetcher retrieves the remote status page.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
	URL() string
}

// Client fetches a single fixed URL with an unauthenticated GET.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a Client for url. A zero timeout means the request waits
// as long as the remote end keeps the connection open.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL returns the address the client fetches.
func (c *Client) URL() string {
	return c.url
}

// Fetch returns the full response body. Any response that arrives counts as
// success regardless of its status code; only transport failures are errors.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logs.Logger.Warnw("remote status fetch failed", "url", c.url, "error", err)
		return "", fmt.Errorf("failed to fetch %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logs.Logger.Warnw("remote status read failed", "url", c.url, "error", err)
		return "", fmt.Errorf("failed to read %s: %w", c.url, err)
	}

	logs.Logger.Debugw("remote status fetched", "url", c.url, "status", resp.StatusCode, "bytes", len(body))
	return string(body), nil
}
