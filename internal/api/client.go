package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client wraps HTTP calls to the Hub quicksearch API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given Hub origin. The client sets no
// overall timeout; callers cancel requests through the context when a newer
// query supersedes them.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// BaseURL returns the Hub origin this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// QuickSearch executes one lookup. typ narrows the search to a single
// category when non-empty; limit is the per-category page size.
func (c *Client) QuickSearch(ctx context.Context, query string, limit int, typ string) (*QuickSearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	if typ != "" {
		params.Set("type", typ)
	}

	body, err := c.get(ctx, "/api/quicksearch?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp QuickSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

// get performs a GET request and returns the raw response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Surface cancellation as the context error so callers can tell a
		// superseded request from a failed one.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, excerpt(body))
	}
	return body, nil
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	return s
}
