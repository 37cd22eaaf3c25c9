package domain

import "github.com/shopspring/decimal"

// Scales of the stored NUMERIC columns.
const (
	MoneyScale = 8
	SpeedScale = 12
)

// ValidMoney reports whether d is a positive amount the ledger can store
// without losing digits.
func ValidMoney(d decimal.Decimal) bool {
	return d.IsPositive() && FitsScale(d, MoneyScale)
}

// FitsScale reports whether d has no significant digits past places decimals.
// Trailing zeros do not count, so 1.50000000000 fits a scale of 8.
func FitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
