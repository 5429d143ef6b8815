package fetcher

import "context"

// Upstream is a data provider that renders one page of a result set as a
// markup fragment and reports the size of the full result set separately.
//
// Both calls fail soft: errors are logged by the implementation and reported
// as a Result that is not Ok. Callers issue them concurrently and join on
// both before using either.
type Upstream[L, C any] interface {
	// FetchListFragment returns the markup fragment for the page described by payload.
	FetchListFragment(ctx context.Context, payload L) Result[string]

	// FetchTotalCount returns the total number of matches for the filter in payload.
	FetchTotalCount(ctx context.Context, payload C) Result[int]
}
