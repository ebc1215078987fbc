package payment

import "github.com/shopspring/decimal"

// Currency is the ISO code every intent is created in.
const Currency = "usd"

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit price to cents, rounding half away
// from zero: 19.995 becomes 2000 and 10 becomes 1000.
func ToMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(hundred).Round(0).IntPart()
}
