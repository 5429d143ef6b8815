package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dividendfinder/internal/dividend"
	"dividendfinder/internal/metrics"
)

type pagerFunc func(ctx context.Context, f dividend.Filter) *dividend.ResultPage

func (p pagerFunc) FetchPage(ctx context.Context, f dividend.Filter) *dividend.ResultPage {
	return p(ctx, f)
}

func get(t *testing.T, h *Handler, target string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v: %s", err, rec.Body.String())
	}
	return rec, body
}

func TestGetData_Defaults(t *testing.T) {
	var got dividend.Filter
	h := New(pagerFunc(func(ctx context.Context, f dividend.Filter) *dividend.ResultPage {
		got = f
		return &dividend.ResultPage{Records: []dividend.Record{}, Page: f.Page, TotalCount: 0}
	}), metrics.Options{})

	rec, _ := get(t, h, "/api/data?feature=bond&page=zero")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got != dividend.DefaultFilter() {
		t.Errorf("filter = %+v, want defaults", got)
	}
}

func TestGetData_Params(t *testing.T) {
	var got dividend.Filter
	h := New(pagerFunc(func(ctx context.Context, f dividend.Filter) *dividend.ResultPage {
		got = f
		return &dividend.ResultPage{Records: []dividend.Record{}, Page: f.Page}
	}), metrics.Options{})

	get(t, h, "/api/data?feature=Stock&period=Monthly&sortBy=MarketCap&orderBy=asc&page=3")
	want := dividend.Filter{Class: dividend.Stock, Frequency: dividend.Monthly, SortField: dividend.SortMarketCap, SortDirection: dividend.Asc, Page: 3}
	if got != want {
		t.Errorf("filter = %+v, want %+v", got, want)
	}
}

func TestGetData_Page(t *testing.T) {
	h := New(pagerFunc(func(ctx context.Context, f dividend.Filter) *dividend.ResultPage {
		return &dividend.ResultPage{
			Records:    []dividend.Record{{Symbol: "SCHD", Price: "$27.81", DividendYield: "3.79%"}},
			Page:       2,
			TotalCount: 57,
		}
	}), metrics.Options{})

	_, body := get(t, h, "/api/data?page=2")

	var data struct {
		List  []dividend.Record `json:"list"`
		Page  int               `json:"page"`
		Count int               `json:"count"`
	}
	if err := json.Unmarshal(body["data"], &data); err != nil {
		t.Fatalf("data is not a page: %v", err)
	}
	if len(data.List) != 1 || data.List[0].Symbol != "SCHD" || data.Page != 2 || data.Count != 57 {
		t.Errorf("data = %+v", data)
	}
	if _, ok := body["metrics"]; ok {
		t.Error("metrics present without an income target")
	}
}

func TestGetData_Failure(t *testing.T) {
	h := New(pagerFunc(func(ctx context.Context, f dividend.Filter) *dividend.ResultPage {
		return nil
	}), metrics.Options{})

	rec, body := get(t, h, "/api/data")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if string(body["data"]) != "null" {
		t.Errorf("data = %s, want null", body["data"])
	}
}

func TestGetData_Panic(t *testing.T) {
	h := New(pagerFunc(func(ctx context.Context, f dividend.Filter) *dividend.ResultPage {
		panic("boom")
	}), metrics.Options{})

	rec, body := get(t, h, "/api/data")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if string(body["data"]) != "null" {
		t.Errorf("data = %s, want null", body["data"])
	}
}

func TestGetData_Metrics(t *testing.T) {
	h := New(pagerFunc(func(ctx context.Context, f dividend.Filter) *dividend.ResultPage {
		return &dividend.ResultPage{
			Records: []dividend.Record{
				{Symbol: "A", Price: "$100.00", DividendYield: "4.00%"},
				{Symbol: "Z", Price: "$50.00", DividendYield: "0.00%"},
			},
			Page:       1,
			TotalCount: 2,
		}
	}), metrics.Options{})

	_, body := get(t, h, "/api/data?income=100&incomePeriod=Monthly")

	var rows []struct {
		Symbol  string `json:"symbol"`
		Metrics *struct {
			RequiredShareCount string `json:"requiredShareCount"`
			Deposit            string `json:"deposit"`
		} `json:"metrics"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body["metrics"], &rows); err != nil {
		t.Fatalf("metrics are not rows: %v: %s", err, body["metrics"])
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Metrics == nil || rows[0].Metrics.RequiredShareCount != "300" || rows[0].Metrics.Deposit != "$30,000" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Metrics != nil || rows[1].Reason == "" {
		t.Errorf("rows[1] should be not computable: %+v", rows[1])
	}
}

func TestGetData_MethodNotAllowed(t *testing.T) {
	h := New(pagerFunc(func(ctx context.Context, f dividend.Filter) *dividend.ResultPage { return nil }), metrics.Options{})

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/data", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		amount, period string
		wantOk         bool
		wantFreq       metrics.Frequency
	}{
		{"1000", "", true, metrics.Yearly},
		{"250", "monthly", true, metrics.Monthly},
		{"0", "", false, ""},
		{"-5", "", false, ""},
		{"lots", "", false, ""},
		{"", "monthly", false, ""},
	}
	for _, tt := range tests {
		got, ok := parseTarget(tt.amount, tt.period)
		if ok != tt.wantOk || (ok && got.Frequency != tt.wantFreq) {
			t.Errorf("parseTarget(%q, %q) = %+v, %v", tt.amount, tt.period, got, ok)
		}
	}
}
