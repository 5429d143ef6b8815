package dividend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"resty.dev/v3"

	"dividendfinder/internal/fetcher"
	"dividendfinder/internal/ratelimit"
)

const (
	listPath  = "/api/t2/body.html"
	countPath = "/api/t2/total_count/"
)

// countResponse is the body returned by the total count endpoint
type countResponse struct {
	Total *int `json:"total"`
}

// Client talks to the provider's table endpoints.
type Client struct {
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// NewClient creates a client for the provider at baseURL.
// limiter may be nil.
func NewClient(baseURL string, limiter *ratelimit.Limiter) *Client {
	return &Client{
		client:  fetcher.NewHTTPClient(baseURL),
		limiter: limiter,
	}
}

// ListFragment returns the HTML fragment rendering one page of results.
func (c *Client) ListFragment(ctx context.Context, payload ListPayload) (string, error) {
	body, err := c.post(ctx, listPath, payload)
	if err != nil {
		return "", fmt.Errorf("failed to fetch list fragment for page %d: %w", payload.Page, err)
	}
	return body, nil
}

// TotalCount returns the number of instruments matching the payload's filters.
func (c *Client) TotalCount(ctx context.Context, payload CountPayload) (int, error) {
	body, err := c.post(ctx, countPath, payload)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch total count for %s: %w", payload.Collection, err)
	}

	var result countResponse
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return 0, fetcher.NewValidationError("failed to decode total count", err)
	}
	if result.Total == nil {
		return 0, fetcher.NewValidationError("total not found in response", nil)
	}
	if *result.Total < 0 {
		return 0, fetcher.NewValidationError(fmt.Sprintf("negative total %d", *result.Total), nil)
	}
	return *result.Total, nil
}

// FetchListFragment is ListFragment with the error logged and absorbed.
func (c *Client) FetchListFragment(ctx context.Context, payload ListPayload) fetcher.Result[string] {
	fragment, err := c.ListFragment(ctx, payload)
	if err != nil {
		slog.Warn("list fragment request failed", "page", payload.Page, "collection", payload.Collection, "error", err)
		return fetcher.None[string]()
	}
	return fetcher.Some(fragment)
}

// FetchTotalCount is TotalCount with the error logged and absorbed.
func (c *Client) FetchTotalCount(ctx context.Context, payload CountPayload) fetcher.Result[int] {
	count, err := c.TotalCount(ctx, payload)
	if err != nil {
		slog.Warn("total count request failed", "collection", payload.Collection, "error", err)
		return fetcher.None[int]()
	}
	return fetcher.Some(count)
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fetcher.NewNetworkError(err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(path)
	if err != nil {
		return "", fetcher.NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return "", fetcher.ClassifyHTTPError(resp.StatusCode())
	}

	body := resp.String()
	if strings.TrimSpace(body) == "" {
		return "", fetcher.NewValidationError("empty response body", nil)
	}
	return body, nil
}
