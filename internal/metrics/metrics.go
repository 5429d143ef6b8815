package metrics

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"dividendfinder/internal/dividend"
)

// Frequency is the period an income target is expressed in.
type Frequency string

const (
	Monthly Frequency = "Monthly"
	Yearly  Frequency = "Yearly"
)

// ParseFrequency accepts monthly, yearly or annually in any case.
func ParseFrequency(s string) (Frequency, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month":
		return Monthly, true
	case "yearly", "annually", "annual", "year":
		return Yearly, true
	}
	return "", false
}

// IncomeTarget is the dividend income a user wants to receive.
type IncomeTarget struct {
	Amount    decimal.Decimal
	Frequency Frequency
}

// Options control presentation only.
type Options struct {
	// DepositPrecision is the number of decimals shown for the deposit, 0 or 2.
	DepositPrecision int32
}

// Rounding applied to intermediate results.
const (
	dividendPlaces = 4
	sharePlaces    = 2
)

// Metric is what it takes to reach an IncomeTarget with one instrument.
type Metric struct {
	Price                  decimal.Decimal `json:"price"`
	YieldPercent           decimal.Decimal `json:"yieldPercent"`
	AnnualIncomeGoal       decimal.Decimal `json:"annualIncomeGoal"`
	PerShareAnnualDividend decimal.Decimal `json:"perShareAnnualDividend"`
	RequiredShareCount     decimal.Decimal `json:"requiredShareCount"`
	// RequiredDeposit is price × share count, not rounded.
	RequiredDeposit decimal.Decimal `json:"requiredDeposit"`
	// Deposit is RequiredDeposit rounded and formatted for display.
	Deposit string `json:"deposit"`
}

// AnnualGoal converts the target into a yearly amount.
func (t IncomeTarget) AnnualGoal() decimal.Decimal {
	if t.Frequency == Monthly {
		return t.Amount.Mul(decimal.NewFromInt(12))
	}
	return t.Amount
}

// Compute derives the share count and deposit needed for record to yield target.
//
// It returns an error wrapping ErrNotComputable when the price or yield
// cannot be parsed or the per-share dividend rounds to zero.
func Compute(record dividend.Record, target IncomeTarget, opts Options) (Metric, error) {
	price, err := ParsePrice(record.Price)
	if err != nil {
		return Metric{}, err
	}
	yield, err := ParseYield(record.DividendYield)
	if err != nil {
		return Metric{}, err
	}

	perShare := price.Mul(yield).Div(decimal.NewFromInt(100)).Round(dividendPlaces)
	if !perShare.IsPositive() {
		return Metric{}, fmt.Errorf("%w: per-share dividend is %s for %s", ErrNotComputable, perShare.StringFixed(dividendPlaces), record.Symbol)
	}

	goal := target.AnnualGoal()
	shares := goal.Div(perShare).Round(sharePlaces)
	deposit := price.Mul(shares)

	return Metric{
		Price:                  price,
		YieldPercent:           yield,
		AnnualIncomeGoal:       goal,
		PerShareAnnualDividend: perShare,
		RequiredShareCount:     shares,
		RequiredDeposit:        deposit,
		Deposit:                FormatUSD(deposit, opts.DepositPrecision),
	}, nil
}

// FormatUSD rounds amount to places decimals and formats it with a dollar
// sign and thousands separators, e.g. "$30,000".
func FormatUSD(amount decimal.Decimal, places int32) string {
	cur := money.GetCurrency(money.USD)
	f := money.NewFormatter(int(places), cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(amount.Round(places).Shift(places).IntPart())
}

// Row pairs a record with its metrics. Metric is nil when they could not be
// computed and Reason says why.
type Row struct {
	dividend.Record
	Metric *Metric `json:"metrics"`
	Reason string  `json:"reason,omitempty"`
}

// Evaluate computes metrics for every record. A record that cannot be
// evaluated gets a nil Metric; it never stops the others.
func Evaluate(records []dividend.Record, target IncomeTarget, opts Options) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		row := Row{Record: r}
		m, err := Compute(r, target, opts)
		if err != nil {
			row.Reason = err.Error()
		} else {
			row.Metric = &m
		}
		rows = append(rows, row)
	}
	return rows
}
