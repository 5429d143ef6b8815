package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"dividendfinder/internal/dividend"
	"dividendfinder/internal/metrics"
)

// Options control the table layout.
type Options struct {
	// Style is a go-pretty style; the zero value renders plain ASCII.
	Style *table.Style
}

// Table writes a page of results with their metrics to w.
// rows must be the output of metrics.Evaluate for page.Records.
func Table(w io.Writer, page *dividend.ResultPage, rows []metrics.Row, opts Options) {
	if page == nil {
		fmt.Fprintln(w, "no results: the provider request failed")
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if opts.Style != nil {
		tw.SetStyle(*opts.Style)
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateRows = false
		tw.Style().Options.SeparateColumns = false
	}

	tw.AppendHeader(table.Row{"SYMBOL", "PRICE", "YIELD", "MARKET CAP", "SHARES", "DEPOSIT"})
	right := []int{2, 3, 4, 5, 6}
	cfgs := make([]table.ColumnConfig, 0, len(right))
	for _, n := range right {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignRight})
	}
	tw.SetColumnConfigs(cfgs)

	for _, r := range rows {
		shares, deposit := "n/a", "n/a"
		if r.Metric != nil {
			shares = r.Metric.RequiredShareCount.StringFixed(2)
			deposit = r.Metric.Deposit
		}
		tw.AppendRow(table.Row{r.Symbol, r.Price, r.DividendYield, r.MarketCap, shares, deposit})
	}

	tw.AppendFooter(table.Row{"", "", "", "", "PAGE", fmt.Sprintf("%d (%d total)", page.Page, page.TotalCount)})
	tw.Render()
}
