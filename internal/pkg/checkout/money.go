package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies Stripe charges without a fractional unit.
var zeroDecimal = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {},
	"krw": {}, "mga": {}, "pyg": {}, "rwf": {}, "ugx": {}, "vnd": {},
	"vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

var threeDecimal = map[string]struct{}{
	"bhd": {}, "jod": {}, "kwd": {}, "omr": {}, "tnd": {},
}

// MinorUnitExponent is the number of decimal places between the major and
// minor unit of currency.
func MinorUnitExponent(currency string) int32 {
	c := strings.ToLower(currency)
	if _, ok := zeroDecimal[c]; ok {
		return 0
	}
	if _, ok := threeDecimal[c]; ok {
		return 3
	}
	return 2
}

// ToMinorUnits converts a major-unit amount, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal, currency string) int64 {
	return amount.Shift(MinorUnitExponent(currency)).Round(0).IntPart()
}

func FromMinorUnits(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -MinorUnitExponent(currency))
}

// FormatAmount renders amount with the currency's fixed number of places.
func FormatAmount(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(MinorUnitExponent(currency))
}
