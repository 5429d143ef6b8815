package dividend

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Record is one instrument row as the provider renders it. Values are kept
// in their display form; see the metrics package for parsing.
type Record struct {
	Symbol         string `json:"symbol"`
	Price          string `json:"price"`
	MarketCap      string `json:"marketCap,omitempty"`
	DividendYield  string `json:"dividendYield"`
	ExDividendDate string `json:"exDividendDate,omitempty"`
}

// Markup selectors of the provider's table. Everything that depends on the
// fragment's layout lives in this file.
const (
	rowSelector    = ".mp-table-body-row-container"
	symbolSelector = ".m-table-body-subtext span"
	cellSelector   = ".m-table-body-text"
)

// Positions of the text cells inside a row.
const (
	cellPrice = iota
	cellMarketCap
	cellDividendYield
	cellExDividendDate
)

// Extract parses a list fragment into records, in document order.
//
// Rows without a symbol are dropped: that is how the provider's ad and
// placeholder rows are filtered out. No other row is rejected, so the
// result may be shorter than the page size.
func Extract(fragment string) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment: %w", err)
	}

	records := []Record{}
	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		symbol := text(row.Find(symbolSelector).First())
		if symbol == "" {
			return
		}
		cells := row.Find(cellSelector)
		records = append(records, Record{
			Symbol:         symbol,
			Price:          text(cells.Eq(cellPrice)),
			MarketCap:      text(cells.Eq(cellMarketCap)),
			DividendYield:  text(cells.Eq(cellDividendYield)),
			ExDividendDate: text(cells.Eq(cellExDividendDate)),
		})
	})
	return records, nil
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
