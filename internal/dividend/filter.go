package dividend

import (
	"strconv"
	"strings"
)

// InstrumentClass selects which provider collection is searched.
type InstrumentClass string

const (
	ETF   InstrumentClass = "Etf"
	Stock InstrumentClass = "Stock"
)

// PayoutFrequency is how often an instrument distributes dividends.
type PayoutFrequency string

const (
	All          PayoutFrequency = "All"
	Monthly      PayoutFrequency = "Monthly"
	BiMonthly    PayoutFrequency = "Bi-Monthly"
	Quarterly    PayoutFrequency = "Quarterly"
	SemiAnnually PayoutFrequency = "Semi Annually"
	Yearly       PayoutFrequency = "Annually"
)

// SortField is the column the provider orders results by.
type SortField string

const (
	SortMarketCap     SortField = "MarketCap"
	SortDividendYield SortField = "DividendYieldCurrent"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Filter describes one page of a search. It is built per request and never stored.
type Filter struct {
	Class         InstrumentClass
	Frequency     PayoutFrequency
	SortField     SortField
	SortDirection SortDirection
	Page          int
}

// DefaultFilter is the first page of ETFs, highest current yield first.
func DefaultFilter() Filter {
	return Filter{
		Class:         ETF,
		Frequency:     All,
		SortField:     SortDividendYield,
		SortDirection: Desc,
		Page:          1,
	}
}

// Params carries raw, user supplied filter values, typically from a query string.
type Params struct {
	Feature string
	Period  string
	SortBy  string
	OrderBy string
	Page    string
}

// ParseFilter builds a Filter from raw values. It never fails: anything
// missing or unrecognised falls back to DefaultFilter's value.
func ParseFilter(p Params) Filter {
	f := DefaultFilter()
	if c, ok := ParseInstrumentClass(p.Feature); ok {
		f.Class = c
	}
	if fr, ok := ParsePayoutFrequency(p.Period); ok {
		f.Frequency = fr
	}
	if s, ok := ParseSortField(p.SortBy); ok {
		f.SortField = s
	}
	if d, ok := ParseSortDirection(p.OrderBy); ok {
		f.SortDirection = d
	}
	if n, err := strconv.Atoi(strings.TrimSpace(p.Page)); err == nil && n >= 1 {
		f.Page = n
	}
	return f
}

// normalize lowercases s and drops separators so "Semi Annually",
// "semi-annually" and "semiannually" compare equal.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

func ParseInstrumentClass(s string) (InstrumentClass, bool) {
	switch normalize(s) {
	case "etf", "etfs":
		return ETF, true
	case "stock", "stocks":
		return Stock, true
	}
	return "", false
}

func ParsePayoutFrequency(s string) (PayoutFrequency, bool) {
	switch normalize(s) {
	case "all":
		return All, true
	case "monthly":
		return Monthly, true
	case "bimonthly":
		return BiMonthly, true
	// "quartely" is how the provider's own menu spells it.
	case "quarterly", "quartely":
		return Quarterly, true
	case "semiannually", "semiannual":
		return SemiAnnually, true
	case "annually", "yearly", "annual":
		return Yearly, true
	}
	return "", false
}

func ParseSortField(s string) (SortField, bool) {
	switch normalize(s) {
	case "marketcap":
		return SortMarketCap, true
	case "dividendyieldcurrent", "dividendyield", "yield":
		return SortDividendYield, true
	}
	return "", false
}

func ParseSortDirection(s string) (SortDirection, bool) {
	switch normalize(s) {
	case "asc":
		return Asc, true
	case "desc":
		return Desc, true
	}
	return "", false
}
