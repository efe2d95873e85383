package safemath

import (
	"math"

	"github.com/shopspring/decimal"
)

// maxExactExponent is the largest integer exponent SafePow evaluates by
// repeated squaring; larger exponents go through float64.
const maxExactExponent = 100000

// SafeAdd returns a+b clamped to ±MaxSafeValue.
func SafeAdd(a, b decimal.Decimal) decimal.Decimal {
	return bound(a.Add(b))
}

// SafeSub returns a-b clamped to ±MaxSafeValue.
func SafeSub(a, b decimal.Decimal) decimal.Decimal {
	return bound(a.Sub(b))
}

// SafeMul returns a*b clamped to ±MaxSafeValue.
func SafeMul(a, b decimal.Decimal) decimal.Decimal {
	return bound(a.Mul(b))
}

// SafeDiv returns a/b, or zero when b is zero.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return bound(a.Div(b))
}

// SafePow returns base raised to exp.
//
// Integer exponents are evaluated exactly by repeated squaring, keeping
// InternalScale places at every step. Fractional exponents are evaluated in
// float64. Undefined results (a negative base with a fractional exponent,
// zero to a negative power, NaN) are zero; infinities clamp to the bound.
func SafePow(base, exp decimal.Decimal) decimal.Decimal {
	if exp.IsZero() {
		return one
	}
	if base.IsZero() {
		return decimal.Zero
	}
	if exp.Equal(exp.Truncate(0)) && exp.Abs().LessThanOrEqual(decimal.NewFromInt(maxExactExponent)) {
		return bound(powInt(base, exp.IntPart()))
	}
	if base.IsNegative() && !exp.Equal(exp.Truncate(0)) {
		return decimal.Zero
	}
	f := math.Pow(base.InexactFloat64(), exp.InexactFloat64())
	switch {
	case math.IsNaN(f):
		return decimal.Zero
	case math.IsInf(f, 1):
		return MaxSafeValue
	case math.IsInf(f, -1):
		return MaxSafeValue.Neg()
	}
	return bound(decimal.NewFromFloat(f))
}

func powInt(base decimal.Decimal, n int64) decimal.Decimal {
	negative := n < 0
	if negative {
		n = -n
	}
	result := one
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = bound(result.Mul(b)).Round(InternalScale)
		}
		n >>= 1
		if n > 0 {
			b = bound(b.Mul(b)).Round(InternalScale)
		}
	}
	if negative {
		return SafeDiv(one, result)
	}
	return result
}

// Clamp limits d to the closed interval [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

func bound(d decimal.Decimal) decimal.Decimal {
	return Clamp(d, MaxSafeValue.Neg(), MaxSafeValue)
}

// Percent returns pct percent of amount.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return SafeDiv(SafeMul(amount, pct), hundred)
}

// Ratio returns part as a percentage of whole, or zero when whole is not
// positive.
func Ratio(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return SafeDiv(SafeMul(part, hundred), whole)
}

// Monthly converts an annual amount to a monthly one.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return SafeDiv(annual, twelve)
}

// Annual converts a monthly amount to an annual one.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return SafeMul(monthly, twelve)
}

// NonNegative floors d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// MinOf returns the smallest of the given values.
func MinOf(first decimal.Decimal, rest ...decimal.Decimal) decimal.Decimal {
	return decimal.Min(first, rest...)
}

// MaxOf returns the largest of the given values.
func MaxOf(first decimal.Decimal, rest ...decimal.Decimal) decimal.Decimal {
	return decimal.Max(first, rest...)
}
