package entities

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// minorUnitThreshold: integral amounts above this value are taken to be in
// minor units (cents). Gateways send 4790 for R$ 47,90 but checkout clients
// send 19.9.
var minorUnitThreshold = decimal.NewFromInt(100)

// NormalizeAmount converts a gateway amount into major units. It accepts JSON
// numbers (float64 or json.Number) and numeric strings. The boolean is false
// when v is missing or not numeric.
func NormalizeAmount(v any) (float64, bool) {
	d, ok := toDecimal(v)
	if !ok {
		return 0, false
	}
	if d.IsInteger() && d.GreaterThan(minorUnitThreshold) {
		d = d.Shift(-2)
	}
	return d.InexactFloat64(), true
}

// ToMinorUnits converts a major-unit amount to integer cents, rounding half
// away from zero.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

// FormatAmount renders a major-unit amount with exactly two decimals.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Decimal{}, false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}
