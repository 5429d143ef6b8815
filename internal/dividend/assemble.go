package dividend

import "log/slog"

// ResultPage is one page of search results together with the size of the
// full result set.
type ResultPage struct {
	Records    []Record `json:"list"`
	Page       int      `json:"page"`
	TotalCount int      `json:"count"`
}

// Assemble combines both legs of a page fetch. It returns nil unless both
// legs succeeded; there are no partial pages.
func Assemble(fragment *string, count *int, page int) *ResultPage {
	if fragment == nil || *fragment == "" || count == nil {
		return nil
	}

	records, err := Extract(*fragment)
	if err != nil {
		slog.Warn("discarding page with unparsable fragment", "page", page, "error", err)
		return nil
	}

	return &ResultPage{
		Records:    records,
		Page:       page,
		TotalCount: *count,
	}
}
