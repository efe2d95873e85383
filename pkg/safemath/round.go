package safemath

import "github.com/shopspring/decimal"

// RoundToPrecision rounds d half away from zero to digits decimal places.
func RoundToPrecision(d decimal.Decimal, digits int) decimal.Decimal {
	return d.Round(int32(digits))
}

// Round2 rounds to currency precision.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Settle rounds a running balance to InternalScale places.
func Settle(d decimal.Decimal) decimal.Decimal {
	return d.Round(InternalScale)
}
