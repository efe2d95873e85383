package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// closedFormTolerance is the largest gap between an iterated balance and
// its closed form that is not worth a warning.
var closedFormTolerance = decimal.NewFromFloat(0.01)

// CalculateSIP projects a monthly investment compounded monthly. Each month
// the instalment is added before interest accrues. With a step-up the
// instalment grows by StepUpPercent at the start of every year after the
// first.
func (e *Engine) CalculateSIP(in domain.SIPInput) domain.SIPResult {
	return guard(e, "sip", func() domain.SIPResult { return e.calculateSIP(in) })
}

func (e *Engine) calculateSIP(in domain.SIPInput) domain.SIPResult {
	instalment := in.MonthlyInvestment.NonNegative()
	annualReturn := in.AnnualReturn.NonNegative()
	years := in.Years.NonNegative()
	stepUp := in.StepUpPercent.NonNegative()

	result := domain.SIPResult{
		MonthlyBreakdown: []domain.MonthlyEntry{},
		YearlyBreakdown:  []domain.YearlyEntry{},
	}
	if tooLong(years) {
		e.Logger.Warnf("sip: %s years exceeds the %d year cap", years, MaxYears)
		result.Error = errPeriodTooLong
		return result
	}
	months := monthsIn(years)
	if instalment.IsZero() || months == 0 {
		return result
	}

	monthlyRate := safemath.SafeDiv(annualReturn, decimal.NewFromInt(1200))
	factor := one.Add(monthlyRate)
	stepFactor := growthFactor(stepUp, 1)

	balance := decimal.Zero
	invested := decimal.Zero
	contribution := instalment
	for m := 1; m <= months; m++ {
		if m > 1 && (m-1)%12 == 0 && stepUp.IsPositive() {
			contribution = r2(safemath.SafeMul(contribution, stepFactor))
		}
		opening := balance
		balance = safemath.Settle(safemath.SafeMul(safemath.SafeAdd(balance, contribution), factor))
		invested = safemath.SafeAdd(invested, contribution)

		result.MonthlyBreakdown = append(result.MonthlyBreakdown, domain.MonthlyEntry{
			Month:            m,
			Contribution:     r2(contribution),
			Interest:         r2(balance.Sub(opening).Sub(contribution)),
			Balance:          r2(balance),
			TotalContributed: r2(invested),
		})
	}
	result.YearlyBreakdown = rollUpYears(result.MonthlyBreakdown)

	last := result.MonthlyBreakdown[len(result.MonthlyBreakdown)-1]
	result.TotalInvestment = last.TotalContributed
	result.MaturityAmount = last.Balance
	result.TotalGains = result.MaturityAmount.Sub(result.TotalInvestment)
	e.Logger.Debugf("sip: %d months, invested %s, maturity %s", months, result.TotalInvestment, result.MaturityAmount)
	return result
}

// CalculateLumpsum compounds a single investment annually over whole years
// and cross-checks the result against principal*(1+r)^years.
func (e *Engine) CalculateLumpsum(in domain.LumpsumInput) domain.LumpsumResult {
	return guard(e, "lumpsum", func() domain.LumpsumResult { return e.calculateLumpsum(in) })
}

func (e *Engine) calculateLumpsum(in domain.LumpsumInput) domain.LumpsumResult {
	principal := in.Principal.NonNegative()
	annualReturn := in.AnnualReturn.NonNegative()
	years := in.Years.NonNegative()

	result := domain.LumpsumResult{YearlyBreakdown: []domain.YearlyEntry{}}
	if tooLong(years) {
		result.Error = errPeriodTooLong
		return result
	}
	if principal.IsZero() {
		return result
	}

	result.TotalInvestment = r2(principal)
	n := wholeYears(years)
	if n == 0 {
		result.MaturityAmount = result.TotalInvestment
		return result
	}

	factor := growthFactor(annualReturn, 1)
	amount := principal
	for y := 1; y <= n; y++ {
		opening := amount
		amount = safemath.Settle(safemath.SafeMul(amount, factor))
		contribution := decimal.Zero
		if y == 1 {
			contribution = principal
		}
		result.YearlyBreakdown = append(result.YearlyBreakdown, domain.YearlyEntry{
			Year:             y,
			Contribution:     r2(contribution),
			Interest:         r2(amount.Sub(opening)),
			Balance:          r2(amount),
			TotalContributed: result.TotalInvestment,
		})
	}

	closedForm := safemath.SafeMul(principal, safemath.SafePow(factor, decimal.NewFromInt(int64(n))))
	if closedForm.Sub(amount).Abs().GreaterThan(closedFormTolerance) {
		e.Logger.Warnf("lumpsum: iterated maturity %s differs from closed form %s", amount, closedForm)
	}

	result.MaturityAmount = result.YearlyBreakdown[n-1].Balance
	result.TotalGains = result.MaturityAmount.Sub(result.TotalInvestment)
	result.CAGR = r2(annualReturn)
	result.AbsoluteReturn = r2(safemath.Ratio(result.TotalGains, result.TotalInvestment))
	return result
}
