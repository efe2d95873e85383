package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

func in(v any) safemath.Input { return safemath.In(v) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertNear checks that got is within tol of want
func assertNear(t *testing.T, want string, got decimal.Decimal, tol string, msgAndArgs ...any) {
	t.Helper()
	diff := got.Sub(dec(want)).Abs()
	assert.True(t, diff.LessThanOrEqual(dec(tol)), append([]any{"got %s, want %s ± %s", got, want, tol}, msgAndArgs...)...)
}

// assertDecEqual compares decimals by value
func assertDecEqual(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), append([]any{"got %s, want %s", got, want}, msgAndArgs...)...)
}
