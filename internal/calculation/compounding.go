package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// MaxYears caps every period-driven loop (1200 months).
const MaxYears = 100

const errPeriodTooLong = "Investment period too long"

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	maxTerm = decimal.NewFromInt(MaxYears)
)

// r2 rounds to currency precision
func r2(d decimal.Decimal) decimal.Decimal { return safemath.Round2(d) }

// tooLong reports whether years exceeds MaxYears
func tooLong(years decimal.Decimal) bool { return years.GreaterThan(maxTerm) }

// monthsIn converts a (possibly fractional) year count to whole months,
// rounding to the nearest month.
func monthsIn(years decimal.Decimal) int {
	if !years.IsPositive() {
		return 0
	}
	return int(years.Mul(twelve).Round(0).IntPart())
}

// wholeYears truncates a year count to complete years.
func wholeYears(years decimal.Decimal) int {
	if !years.IsPositive() {
		return 0
	}
	return int(years.Floor().IntPart())
}

// growthFactor returns 1 + pct/100/periods
func growthFactor(pct decimal.Decimal, periods int64) decimal.Decimal {
	return one.Add(safemath.SafeDiv(pct, hundred.Mul(decimal.NewFromInt(periods))))
}

// rollUpYears folds a monthly schedule into calendar years of twelve
// months, with a final partial year when the month count is not a multiple
// of twelve.
func rollUpYears(months []domain.MonthlyEntry) []domain.YearlyEntry {
	years := make([]domain.YearlyEntry, 0, (len(months)+11)/12)
	var current domain.YearlyEntry
	for i, m := range months {
		if i%12 == 0 {
			current = domain.YearlyEntry{Year: i/12 + 1}
		}
		current.Contribution = current.Contribution.Add(m.Contribution)
		current.Interest = current.Interest.Add(m.Interest)
		current.Balance = m.Balance
		current.TotalContributed = m.TotalContributed
		if i%12 == 11 || i == len(months)-1 {
			years = append(years, current)
		}
	}
	return years
}
