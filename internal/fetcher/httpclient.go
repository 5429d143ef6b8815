package fetcher

import (
	"log/slog"

	"resty.dev/v3"
)

// NewHTTPClient creates the HTTP client used for upstream calls.
//
// Retries are disabled: upstream failures are expected to be transient and
// retried by whoever asked for the page. The transport's own timeout applies.
func NewHTTPClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json, text/plain, */*").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0).
		AddResponseMiddleware(logResponse)
}

// logResponse traces every upstream response for observability
func logResponse(_ *resty.Client, r *resty.Response) error {
	if r == nil || r.Request == nil {
		return nil
	}
	slog.Debug("upstream response",
		"url", r.Request.URL,
		"status_code", r.StatusCode())
	return nil
}
