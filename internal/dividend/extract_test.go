package dividend_test

import (
	"testing"

	"dividendfinder/internal/dividend"
	"dividendfinder/internal/testutil"
)

func TestExtract(t *testing.T) {
	fragment := testutil.Fragment(
		testutil.Row("SCHD", "$27.81", "$71.2B", "3.79%", "Sep 24, 2025"),
		testutil.Row("", "$1.00", "", "", ""),
		testutil.Row("JEPI", "$57.10", "$40.9B", "8.21%", "Oct 01, 2025"),
		testutil.Row("   ", "$2.00", "", "1.00%", ""),
		testutil.Row("O", "$57.21", "$51.7B", "5.38%", ""),
	)

	records, err := dividend.Extract(fragment)
	if err != nil {
		t.Fatalf("Extract() returned unexpected error: %v", err)
	}

	want := []dividend.Record{
		{Symbol: "SCHD", Price: "$27.81", MarketCap: "$71.2B", DividendYield: "3.79%", ExDividendDate: "Sep 24, 2025"},
		{Symbol: "JEPI", Price: "$57.10", MarketCap: "$40.9B", DividendYield: "8.21%", ExDividendDate: "Oct 01, 2025"},
		{Symbol: "O", Price: "$57.21", MarketCap: "$51.7B", DividendYield: "5.38%"},
	}
	if len(records) != len(want) {
		t.Fatalf("Extract() returned %d records, want %d: %+v", len(records), len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestExtract_NeverEmitsBlankSymbol(t *testing.T) {
	var rows []string
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			rows = append(rows, testutil.Row("", "$1.00", "", "1%", ""))
		} else {
			rows = append(rows, testutil.Row("SYM", "$1.00", "", "1%", ""))
		}
	}

	records, err := dividend.Extract(testutil.Fragment(rows...))
	if err != nil {
		t.Fatalf("Extract() returned unexpected error: %v", err)
	}
	if len(records) != 13 {
		t.Errorf("Extract() returned %d records, want 13", len(records))
	}
	for i, r := range records {
		if r.Symbol == "" {
			t.Errorf("records[%d] has an empty symbol", i)
		}
	}
}

func TestExtract_MissingCells(t *testing.T) {
	fragment := `<div class="mp-table-body-row-container">
		<div class="m-table-body-subtext"><span> VYM </span></div>
		<div class="m-table-body-text">$120.00</div>
	</div>`

	records, err := dividend.Extract(fragment)
	if err != nil {
		t.Fatalf("Extract() returned unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}
	want := dividend.Record{Symbol: "VYM", Price: "$120.00"}
	if records[0] != want {
		t.Errorf("records[0] = %+v, want %+v", records[0], want)
	}
}

func TestExtract_NoRows(t *testing.T) {
	for _, fragment := range []string{"", "<p>No results</p>", "not html at all"} {
		records, err := dividend.Extract(fragment)
		if err != nil {
			t.Errorf("Extract(%q) returned unexpected error: %v", fragment, err)
		}
		if len(records) != 0 {
			t.Errorf("Extract(%q) returned %d records, want 0", fragment, len(records))
		}
	}
}
