package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"dividendfinder/internal/dividend"
	"dividendfinder/internal/metrics"
)

// Pager fetches one page of search results, nil on failure.
type Pager interface {
	FetchPage(ctx context.Context, filter dividend.Filter) *dividend.ResultPage
}

// Handler exposes the search pipeline over HTTP.
type Handler struct {
	pager Pager
	opts  metrics.Options
}

// New creates a Handler serving pages from pager
func New(pager Pager, opts metrics.Options) *Handler {
	return &Handler{pager: pager, opts: opts}
}

// Routes registers the handler's endpoints on a new mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", h.GetData)
	return mux
}

type dataResponse struct {
	Data    *dividend.ResultPage `json:"data"`
	Metrics []metrics.Row        `json:"metrics,omitempty"`
}

// GetData handles GET /api/data.
//
// Query parameters feature, period, sortBy, orderBy and page select the
// page; anything missing or invalid takes its default. When income (and
// optionally incomePeriod, Monthly or Yearly) is given, per record metrics
// are added. A failed upstream fetch is reported as {"data": null}.
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("panic while serving data", "panic", rec, "query", r.URL.RawQuery)
			writeJSON(w, http.StatusInternalServerError, dataResponse{})
		}
	}()

	q := r.URL.Query()
	filter := dividend.ParseFilter(dividend.Params{
		Feature: q.Get("feature"),
		Period:  q.Get("period"),
		SortBy:  q.Get("sortBy"),
		OrderBy: q.Get("orderBy"),
		Page:    q.Get("page"),
	})

	resp := dataResponse{Data: h.pager.FetchPage(r.Context(), filter)}
	if resp.Data != nil {
		if target, ok := parseTarget(q.Get("income"), q.Get("incomePeriod")); ok {
			resp.Metrics = metrics.Evaluate(resp.Data.Records, target, h.opts)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseTarget reads an income target; the period defaults to yearly.
func parseTarget(amount, period string) (metrics.IncomeTarget, bool) {
	if strings.TrimSpace(amount) == "" {
		return metrics.IncomeTarget{}, false
	}
	a, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !a.IsPositive() {
		return metrics.IncomeTarget{}, false
	}
	freq, ok := metrics.ParseFrequency(period)
	if !ok {
		freq = metrics.Yearly
	}
	return metrics.IncomeTarget{Amount: a, Frequency: freq}, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
