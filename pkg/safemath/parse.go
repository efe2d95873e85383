// Package safemath normalises loosely typed numeric input and performs
// arithmetic that never yields NaN, Infinity or a panic.
package safemath

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxSafeValue bounds the magnitude of every parsed or computed value.
var MaxSafeValue = decimal.New(1, 15)

// InternalScale is the number of decimal places running balances keep
// between compounding periods.
const InternalScale = 12

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// ParseRobust converts v into a finite decimal, returning zero when v cannot
// be interpreted as a number.
func ParseRobust(v any) decimal.Decimal {
	return ParseRobustOr(v, decimal.Zero)
}

// ParseRobustOr converts v into a finite decimal, returning fallback when v
// cannot be interpreted as a number.
//
// Strings are stripped of every character other than digits, '-' and '.'
// before parsing, so "₹1,00,000", "12.5%" and "10 years" all parse.
func ParseRobustOr(v any, fallback decimal.Decimal) decimal.Decimal {
	d, ok := parse(v)
	if !ok {
		return fallback
	}
	return Clamp(d, MaxSafeValue.Neg(), MaxSafeValue)
}

// ParseNonNegative is ParseRobust floored at zero.
func ParseNonNegative(v any) decimal.Decimal {
	d := ParseRobust(v)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// IsSafeNumber reports whether v parses to a finite number without falling
// back.
func IsSafeNumber(v any) bool {
	_, ok := parse(v)
	return ok
}

func parse(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, false
	case Input:
		return parse(x.raw)
	case *Input:
		if x == nil {
			return decimal.Zero, false
		}
		return parse(x.raw)
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, false
		}
		return *x, true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int8:
		return decimal.NewFromInt(int64(x)), true
	case int16:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case uint:
		return fromUint(uint64(x)), true
	case uint8:
		return fromUint(uint64(x)), true
	case uint16:
		return fromUint(uint64(x)), true
	case uint32:
		return fromUint(uint64(x)), true
	case uint64:
		return fromUint(x), true
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case bool:
		if x {
			return one, true
		}
		return decimal.Zero, true
	case json.Number:
		return parseString(string(x))
	case string:
		return parseString(x)
	case []byte:
		return parseString(string(x))
	default:
		return decimal.Zero, false
	}
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func parseString(s string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" || strings.Trim(cleaned, "-.") == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
