package safemath

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseRobust(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain int", 5000, "5000"},
		{"plain float", 12.5, "12.5"},
		{"numeric string", "7.1", "7.1"},
		{"rupee with lakh separators", "₹1,00,000", "100000"},
		{"dollar with separators", "$1,234.56", "1234.56"},
		{"percent sign", "12%", "12"},
		{"trailing unit word", "10 years", "10"},
		{"negative string", "-250", "-250"},
		{"nil", nil, "0"},
		{"empty string", "", "0"},
		{"only symbols", "₹,", "0"},
		{"lone minus", "-", "0"},
		{"two decimal points", "1.2.3", "0"},
		{"minus in the middle", "5-3", "0"},
		{"bool true", true, "1"},
		{"bool false", false, "0"},
		{"NaN", math.NaN(), "0"},
		{"positive infinity", math.Inf(1), "0"},
		{"negative infinity", math.Inf(-1), "0"},
		{"object", map[string]any{"a": 1}, "0"},
		{"slice", []int{1, 2}, "0"},
		{"json number", json.Number("42.5"), "42.5"},
		{"bytes", []byte("1,500"), "1500"},
		{"uint64", uint64(42), "42"},
		{"decimal value", decimal.NewFromFloat(3.25), "3.25"},
		{"huge value clamps", 1e20, "1000000000000000"},
		{"huge negative clamps", "-99999999999999999999", "-1000000000000000"},
		{"wrapped input", In("₹2,500"), "2500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRobust(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "ParseRobust(%v) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestParseRobustOrFallback(t *testing.T) {
	fallback := decimal.NewFromInt(30)
	assert.True(t, ParseRobustOr(nil, fallback).Equal(fallback))
	assert.True(t, ParseRobustOr("abc", fallback).Equal(fallback))
	assert.True(t, ParseRobustOr(math.NaN(), fallback).Equal(fallback))
	assert.True(t, ParseRobustOr("45", fallback).Equal(decimal.NewFromInt(45)))
}

func TestParseNonNegative(t *testing.T) {
	assert.True(t, ParseNonNegative(-100).IsZero())
	assert.True(t, ParseNonNegative("-₹5,000").IsZero())
	assert.True(t, ParseNonNegative("5,000").Equal(decimal.NewFromInt(5000)))
}

func TestIsSafeNumber(t *testing.T) {
	assert.True(t, IsSafeNumber(10))
	assert.True(t, IsSafeNumber("₹10"))
	assert.True(t, IsSafeNumber(0.0))
	assert.False(t, IsSafeNumber(nil))
	assert.False(t, IsSafeNumber(math.NaN()))
	assert.False(t, IsSafeNumber(math.Inf(1)))
	assert.False(t, IsSafeNumber("abc"))
	assert.False(t, IsSafeNumber(struct{}{}))
}
