package dividend

import "fmt"

// Values the provider's table endpoints expect verbatim.
const (
	tableUUID = "Merged-SEOTable"
	tableTab  = "TblTabDivMergedOverviewSEO"
	theme     = "FIN::L2(High Yield Dividend)"

	payoutFrequencyKey = "FilterPayoutFrequency"
)

var collections = map[InstrumentClass]string{
	ETF:   "CollectionMergedETFs",
	Stock: "CollectionMergedStocks",
}

var frequencyCodes = map[PayoutFrequency]string{
	Monthly:      "12",
	BiMonthly:    "6",
	Quarterly:    "4",
	SemiAnnually: "2",
	Yearly:       "1",
}

// Predicate is one entry of the provider's filters map.
type Predicate struct {
	FilterKey string   `json:"filterKey"`
	Selected  bool     `json:"selected"`
	Value     []string `json:"value"`
	Type      string   `json:"type"`
}

// ListPayload is the body of the fragment request.
type ListPayload struct {
	UUID                    string               `json:"uuid"`
	DefaultFilters          []string             `json:"default_filters"`
	Filters                 map[string]Predicate `json:"filters"`
	Tab                     string               `json:"tab"`
	Page                    int                  `json:"page"`
	Collection              string               `json:"collection"`
	SortBy                  map[string]string    `json:"sort_by"`
	Theme                   string               `json:"theme"`
	ModalKey                *string              `json:"modal_key"`
	ModalKeyword            *string              `json:"modal_keyword"`
	SpecialTheme            string               `json:"special_theme"`
	NoContentTrayAdsInTable bool                 `json:"no_content_tray_ads_in_table"`
}

// CountPayload is the body of the total count request. It must describe the
// same result set as the matching ListPayload.
type CountPayload struct {
	UUID           string               `json:"uuid"`
	Collection     string               `json:"collection"`
	DefaultFilters []string             `json:"default_filters"`
	Filters        map[string]Predicate `json:"filters"`
	SortBy         map[string]string    `json:"sort_by"`
	Theme          string               `json:"theme"`
}

// Translate maps a Filter onto the provider's request vocabulary.
//
// It panics on enum values it does not know: a Filter is expected to come
// from ParseFilter or the package constants.
func Translate(f Filter) (ListPayload, CountPayload) {
	collection, ok := collections[f.Class]
	if !ok {
		panic(fmt.Sprintf("dividend: unknown instrument class %q", f.Class))
	}
	switch f.SortField {
	case SortMarketCap, SortDividendYield:
	default:
		panic(fmt.Sprintf("dividend: unknown sort field %q", f.SortField))
	}
	switch f.SortDirection {
	case Asc, Desc:
	default:
		panic(fmt.Sprintf("dividend: unknown sort direction %q", f.SortDirection))
	}

	list := ListPayload{
		UUID:           tableUUID,
		DefaultFilters: []string{},
		Filters:        filters(f.Frequency),
		Tab:            tableTab,
		Page:           f.Page,
		Collection:     collection,
		SortBy:         map[string]string{string(f.SortField): string(f.SortDirection)},
		Theme:          theme,
	}
	count := CountPayload{
		UUID:           tableUUID,
		Collection:     collection,
		DefaultFilters: []string{},
		Filters:        filters(f.Frequency),
		SortBy:         map[string]string{string(f.SortField): string(f.SortDirection)},
		Theme:          theme,
	}
	return list, count
}

// filters returns a fresh filters map. The provider reads a missing
// frequency key as "no constraint", so All adds nothing.
func filters(freq PayoutFrequency) map[string]Predicate {
	m := map[string]Predicate{}
	if freq == All {
		return m
	}
	code, ok := frequencyCodes[freq]
	if !ok {
		panic(fmt.Sprintf("dividend: unknown payout frequency %q", freq))
	}
	m[payoutFrequencyKey] = Predicate{
		FilterKey: payoutFrequencyKey,
		Selected:  true,
		Value:     []string{code},
		Type:      "",
	}
	return m
}
