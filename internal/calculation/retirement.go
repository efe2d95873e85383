package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

const defaultLifeExpectancy = 85

var defaultInflation = decimal.NewFromInt(6)

// futureValue returns the value after months of current savings and of a
// monthly contribution at monthly rate r.
func futureValue(savings, contribution, r decimal.Decimal, months int) (fromSavings, fromContributions decimal.Decimal) {
	n := decimal.NewFromInt(int64(months))
	growth := safemath.SafePow(one.Add(r), n)
	fromSavings = safemath.SafeMul(savings, growth)
	if r.IsZero() {
		return fromSavings, safemath.SafeMul(contribution, n)
	}
	return fromSavings, safemath.SafeDiv(safemath.SafeMul(contribution, growth.Sub(one)), r)
}

// CalculateRetirement projects the corpus at retirement and compares it with
// the corpus needed to fund inflated monthly expenses until life
// expectancy. Retirement age is at least one year after current age.
func (e *Engine) CalculateRetirement(in domain.RetirementInput) domain.RetirementResult {
	return guard(e, "retirement", func() domain.RetirementResult { return e.calculateRetirement(in) })
}

func (e *Engine) calculateRetirement(in domain.RetirementInput) domain.RetirementResult {
	currentAge := in.CurrentAge.NonNegativeInt()
	retirementAge := in.RetirementAge.NonNegativeInt()
	if retirementAge < currentAge+1 {
		retirementAge = currentAge + 1
	}
	result := domain.RetirementResult{
		CurrentAge:      currentAge,
		RetirementAge:   retirementAge,
		YearlyBreakdown: []domain.RetirementYearEntry{},
	}
	if retirementAge-currentAge > MaxYears {
		result.Error = errPeriodTooLong
		return result
	}
	lifeExpectancy := in.LifeExpectancy.DecimalOr(decimal.NewFromInt(defaultLifeExpectancy)).IntPart()
	if lifeExpectancy < int64(retirementAge) {
		lifeExpectancy = int64(retirementAge)
	}
	if lifeExpectancy-int64(retirementAge) > MaxYears {
		lifeExpectancy = int64(retirementAge + MaxYears)
	}

	savings := in.CurrentSavings.NonNegative()
	contribution := in.MonthlyContribution.NonNegative()
	expectedReturn := in.ExpectedReturn.NonNegative()
	postReturn := safemath.NonNegative(in.PostRetirementReturn.DecimalOr(expectedReturn))
	inflation := safemath.NonNegative(in.InflationRate.DecimalOr(defaultInflation))
	expenses := in.MonthlyExpenses.NonNegative()

	years := retirementAge - currentAge
	months := years * 12
	r := safemath.SafeDiv(expectedReturn, decimal.NewFromInt(1200))

	for y := 1; y <= years; y++ {
		s, c := futureValue(savings, contribution, r, y*12)
		result.YearlyBreakdown = append(result.YearlyBreakdown, domain.RetirementYearEntry{
			Year:             y,
			Age:              currentAge + y,
			TotalContributed: r2(safemath.SafeAdd(savings, safemath.SafeMul(contribution, decimal.NewFromInt(int64(y*12))))),
			Balance:          r2(safemath.SafeAdd(s, c)),
		})
	}

	fromSavings, fromContributions := futureValue(savings, contribution, r, months)
	result.MonthsToRetirement = months
	result.FutureValueOfSavings = r2(fromSavings)
	result.FutureValueOfContributions = r2(fromContributions)
	result.RetirementCorpus = result.YearlyBreakdown[years-1].Balance
	result.TotalContributions = result.YearlyBreakdown[years-1].TotalContributed
	result.TotalGains = result.RetirementCorpus.Sub(result.TotalContributions)

	inflated := safemath.SafeMul(expenses, safemath.SafePow(growthFactor(inflation, 1), decimal.NewFromInt(int64(years))))
	result.MonthlyExpensesAtRetirement = r2(inflated)

	payoutMonths := decimal.NewFromInt((lifeExpectancy - int64(retirementAge)) * 12)
	realRate := safemath.SafeDiv(postReturn.Sub(inflation), decimal.NewFromInt(1200))
	var required decimal.Decimal
	if !realRate.IsPositive() {
		required = safemath.SafeMul(inflated, payoutMonths)
	} else {
		discount := safemath.SafePow(one.Add(realRate), payoutMonths.Neg())
		required = safemath.SafeDiv(safemath.SafeMul(inflated, one.Sub(discount)), realRate)
	}
	result.RequiredCorpus = r2(required)
	result.Shortfall = safemath.NonNegative(result.RequiredCorpus.Sub(result.RetirementCorpus))

	if result.Shortfall.IsPositive() {
		_, perRupee := futureValue(decimal.Zero, one, r, months)
		result.AdditionalMonthlySaving = r2(safemath.SafeDiv(result.Shortfall, perRupee))
	}
	return result
}
