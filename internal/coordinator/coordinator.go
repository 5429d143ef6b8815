package coordinator

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"

	"dividendfinder/internal/dividend"
	"dividendfinder/internal/fetcher"
)

// Source is the provider a Coordinator pulls pages from
type Source = fetcher.Upstream[dividend.ListPayload, dividend.CountPayload]

// ErrStale is returned by Session.Search when a newer search started before
// this one finished.
var ErrStale = errors.New("search superseded by a newer one")

// Coordinator runs both legs of a page fetch and assembles the result
type Coordinator struct {
	source Source
}

// New creates a new Coordinator pulling from source
func New(source Source) *Coordinator {
	return &Coordinator{
		source: source,
	}
}

// FetchPage fetches one page of results for filter.
//
// The fragment and count requests run concurrently and FetchPage waits for
// both before assembling. It returns nil if either request failed.
// FetchPage holds no state, so concurrent calls are safe.
func (c *Coordinator) FetchPage(ctx context.Context, filter dividend.Filter) *dividend.ResultPage {
	listPayload, countPayload := dividend.Translate(filter)

	var (
		fragment fetcher.Result[string]
		count    fetcher.Result[int]
		wg       conc.WaitGroup
	)
	wg.Go(func() {
		fragment = c.source.FetchListFragment(ctx, listPayload)
	})
	wg.Go(func() {
		count = c.source.FetchTotalCount(ctx, countPayload)
	})
	wg.Wait()

	page := dividend.Assemble(fragment.Ptr(), count.Ptr(), filter.Page)
	if page == nil {
		slog.Info("page fetch failed",
			"page", filter.Page,
			"fragment_ok", fragment.Ok,
			"count_ok", count.Ok)
		return nil
	}

	slog.Debug("page fetched",
		"page", page.Page,
		"records", len(page.Records),
		"total", page.TotalCount)
	return page
}

// Session serialises the searches of one caller, such as an interactive
// prompt: starting a search cancels the one in flight and the older result
// is never returned.
type Session struct {
	coord *Coordinator

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewSession creates a Session over coord
func NewSession(coord *Coordinator) *Session {
	return &Session{coord: coord}
}

// Search fetches a page like Coordinator.FetchPage. If another Search starts
// before this one returns, this one is canceled and yields ErrStale.
func (s *Session) Search(ctx context.Context, filter dividend.Filter) (*dividend.ResultPage, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	token := s.generation
	s.cancel = cancel
	s.mu.Unlock()

	page := s.coord.FetchPage(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.generation {
		return nil, ErrStale
	}
	s.cancel = nil
	return page, nil
}

// Generation returns the token of the most recent search
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
