package testutil

import (
	"context"

	"dividendfinder/internal/dividend"
	"dividendfinder/internal/fetcher"
)

// MockSource is a mock implementation of the upstream for testing
type MockSource struct {
	ListFunc  func(ctx context.Context, payload dividend.ListPayload) fetcher.Result[string]
	CountFunc func(ctx context.Context, payload dividend.CountPayload) fetcher.Result[int]
}

// FetchListFragment implements fetcher.Upstream
func (m *MockSource) FetchListFragment(ctx context.Context, payload dividend.ListPayload) fetcher.Result[string] {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, payload)
	}
	return fetcher.None[string]()
}

// FetchTotalCount implements fetcher.Upstream
func (m *MockSource) FetchTotalCount(ctx context.Context, payload dividend.CountPayload) fetcher.Result[int] {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, payload)
	}
	return fetcher.None[int]()
}

// NewMockSource creates a mock returning fixed legs. A nil fragment or count
// makes that leg fail.
func NewMockSource(fragment *string, count *int) *MockSource {
	return &MockSource{
		ListFunc: func(ctx context.Context, payload dividend.ListPayload) fetcher.Result[string] {
			if fragment == nil {
				return fetcher.None[string]()
			}
			return fetcher.Some(*fragment)
		},
		CountFunc: func(ctx context.Context, payload dividend.CountPayload) fetcher.Result[int] {
			if count == nil {
				return fetcher.None[int]()
			}
			return fetcher.Some(*count)
		},
	}
}

// Row renders one provider table row. An empty symbol renders a row without
// a name cell, like the provider's ad rows.
func Row(symbol, price, marketCap, yield, exDate string) string {
	name := ""
	if symbol != "" {
		name = `<div class="m-table-body-subtext"><span>` + symbol + `</span><span>` + symbol + ` Fund</span></div>`
	}
	return `<div class="mp-table-body-row-container">` + name +
		`<div class="m-table-body-text">` + price + `</div>` +
		`<div class="m-table-body-text">` + marketCap + `</div>` +
		`<div class="m-table-body-text">` + yield + `</div>` +
		`<div class="m-table-body-text">` + exDate + `</div>` +
		`</div>`
}

// Fragment wraps rows in the table body the provider returns
func Fragment(rows ...string) string {
	out := `<div class="mp-table-body">`
	for _, r := range rows {
		out += r
	}
	return out + `</div>`
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
