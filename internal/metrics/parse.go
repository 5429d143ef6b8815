package metrics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotComputable marks a record whose metrics cannot be derived.
	ErrNotComputable = errors.New("metrics not computable")
	// ErrUnparsable is returned for price or yield strings of unexpected shape.
	ErrUnparsable = fmt.Errorf("%w: unparsable value", ErrNotComputable)
)

// ParsePrice parses a currency formatted price such as "$12.34" or "$1,234.50".
func ParsePrice(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")
	d, err := parse(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q", ErrUnparsable, s)
	}
	return d, nil
}

// ParseYield parses a percentage such as "4.56%" into 4.56.
func ParseYield(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSpace(strings.TrimSuffix(v, "%"))
	d, err := parse(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: yield %q", ErrUnparsable, s)
	}
	return d, nil
}

func parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("empty")
	}
	// decimal accepts exponents; display strings never carry one.
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, errors.New("exponent")
	}
	return decimal.NewFromString(s)
}
