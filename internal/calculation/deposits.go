package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// compoundingPeriods maps an FD compounding name to periods per year
var compoundingPeriods = map[string]int{
	"monthly":     12,
	"quarterly":   4,
	"half-yearly": 2,
	"half_yearly": 2,
	"semiannual":  2,
	"yearly":      1,
	"annually":    1,
	"annual":      1,
}

// CompoundingFrequency returns periods per year for name, defaulting to
// quarterly for empty or unknown names.
func CompoundingFrequency(name string) int {
	if n, ok := compoundingPeriods[strings.ToLower(strings.TrimSpace(name))]; ok {
		return n
	}
	return 4
}

// CalculatePPF accumulates yearly deposits at the PPF rate. Interest for a
// year is earned on the opening balance plus that year's deposit.
func (e *Engine) CalculatePPF(in domain.PPFInput) domain.PPFResult {
	return guard(e, "ppf", func() domain.PPFResult { return e.calculatePPF(in) })
}

func (e *Engine) calculatePPF(in domain.PPFInput) domain.PPFResult {
	deposit := in.YearlyInvestment.NonNegative()
	years := in.Years.NonNegative()

	result := domain.PPFResult{
		InterestRate:    e.Rates.PPFRate,
		YearlyBreakdown: []domain.YearlyEntry{},
	}
	if tooLong(years) {
		result.Error = errPeriodTooLong
		return result
	}
	if deposit.GreaterThan(e.Rates.PPFMaxDeposit) {
		e.Logger.Debugf("ppf: deposit %s capped at %s", deposit, e.Rates.PPFMaxDeposit)
		deposit = e.Rates.PPFMaxDeposit
	}
	n := wholeYears(years)
	if deposit.IsZero() || n == 0 {
		return result
	}

	rate := safemath.SafeDiv(e.Rates.PPFRate, hundred)
	balance := decimal.Zero
	invested := decimal.Zero
	for y := 1; y <= n; y++ {
		interest := safemath.Settle(safemath.SafeMul(safemath.SafeAdd(balance, deposit), rate))
		balance = safemath.Settle(safemath.SafeAdd(safemath.SafeAdd(balance, deposit), interest))
		invested = safemath.SafeAdd(invested, deposit)
		result.YearlyBreakdown = append(result.YearlyBreakdown, domain.YearlyEntry{
			Year:             y,
			Contribution:     r2(deposit),
			Interest:         r2(interest),
			Balance:          r2(balance),
			TotalContributed: r2(invested),
		})
	}

	last := result.YearlyBreakdown[n-1]
	result.TotalInvestment = last.TotalContributed
	result.MaturityAmount = last.Balance
	result.TotalInterest = result.MaturityAmount.Sub(result.TotalInvestment)
	return result
}

// CalculateFD evaluates a fixed deposit in closed form:
// maturity = P*(1+r/n)^(n*years). Fractional years are honoured.
func (e *Engine) CalculateFD(in domain.FDInput) domain.FDResult {
	return guard(e, "fd", func() domain.FDResult { return e.calculateFD(in) })
}

func (e *Engine) calculateFD(in domain.FDInput) domain.FDResult {
	principal := in.Principal.NonNegative()
	annualRate := in.AnnualRate.NonNegative()
	years := in.Years.NonNegative()
	periods := CompoundingFrequency(in.Compounding.String())

	result := domain.FDResult{
		CompoundingFrequency: periods,
		YearlyBreakdown:      []domain.YearlyEntry{},
	}
	if tooLong(years) {
		result.Error = errPeriodTooLong
		return result
	}
	if principal.IsZero() {
		return result
	}

	n := decimal.NewFromInt(int64(periods))
	factor := growthFactor(annualRate, int64(periods))
	result.Principal = r2(principal)
	result.EffectiveAnnualRate = r2(safemath.SafeMul(safemath.SafePow(factor, n).Sub(one), hundred))
	if years.IsZero() {
		result.MaturityAmount = result.Principal
		return result
	}

	maturity := safemath.SafeMul(principal, safemath.SafePow(factor, safemath.SafeMul(n, years)))
	result.MaturityAmount = r2(maturity)
	result.TotalInterest = result.MaturityAmount.Sub(result.Principal)
	result.EffectiveYield = r2(safemath.Ratio(result.TotalInterest, result.Principal))

	previous := principal
	for y := 1; y <= wholeYears(years); y++ {
		balance := safemath.SafeMul(principal, safemath.SafePow(factor, decimal.NewFromInt(int64(y*periods))))
		contribution := decimal.Zero
		if y == 1 {
			contribution = principal
		}
		result.YearlyBreakdown = append(result.YearlyBreakdown, domain.YearlyEntry{
			Year:             y,
			Contribution:     r2(contribution),
			Interest:         r2(balance.Sub(previous)),
			Balance:          r2(balance),
			TotalContributed: result.Principal,
		})
		previous = balance
	}
	return result
}

// CalculateRD accumulates monthly deposits. Interest for a month is earned
// on the balance before that month's deposit, so the first month earns
// nothing.
func (e *Engine) CalculateRD(in domain.RDInput) domain.RDResult {
	return guard(e, "rd", func() domain.RDResult { return e.calculateRD(in) })
}

func (e *Engine) calculateRD(in domain.RDInput) domain.RDResult {
	deposit := in.MonthlyDeposit.NonNegative()
	annualRate := in.AnnualRate.NonNegative()
	years := in.Years.NonNegative()

	result := domain.RDResult{MonthlyBreakdown: []domain.MonthlyEntry{}}
	if tooLong(years) {
		result.Error = errPeriodTooLong
		return result
	}
	months := monthsIn(years)
	if deposit.IsZero() || months == 0 {
		return result
	}

	monthlyRate := safemath.SafeDiv(annualRate, decimal.NewFromInt(1200))
	balance := decimal.Zero
	invested := decimal.Zero
	for m := 1; m <= months; m++ {
		interest := safemath.Settle(safemath.SafeMul(balance, monthlyRate))
		balance = safemath.Settle(safemath.SafeAdd(safemath.SafeAdd(balance, deposit), interest))
		invested = safemath.SafeAdd(invested, deposit)
		result.MonthlyBreakdown = append(result.MonthlyBreakdown, domain.MonthlyEntry{
			Month:            m,
			Contribution:     r2(deposit),
			Interest:         r2(interest),
			Balance:          r2(balance),
			TotalContributed: r2(invested),
		})
	}

	last := result.MonthlyBreakdown[months-1]
	result.TotalInvestment = last.TotalContributed
	result.MaturityAmount = last.Balance
	result.TotalInterest = result.MaturityAmount.Sub(result.TotalInvestment)
	return result
}

// CalculateEPF projects an EPF account year by year. Employee and employer
// shares are a percentage of basic salary; interest is earned on the
// opening balance plus the year's contributions. Salary grows after each
// year by AnnualSalaryIncrease.
func (e *Engine) CalculateEPF(in domain.EPFInput) domain.EPFResult {
	return guard(e, "epf", func() domain.EPFResult { return e.calculateEPF(in) })
}

func (e *Engine) calculateEPF(in domain.EPFInput) domain.EPFResult {
	salary := in.MonthlyBasicSalary.NonNegative()
	opening := in.CurrentBalance.NonNegative()
	years := in.Years.NonNegative()
	increase := in.AnnualSalaryIncrease.NonNegative()
	employeeShare := safemath.NonNegative(in.EmployeeContributionRate.DecimalOr(e.Rates.EPFEmployeeShare))
	employerShare := safemath.NonNegative(in.EmployerContributionRate.DecimalOr(e.Rates.EPFEmployerShare))

	result := domain.EPFResult{
		InterestRate:    e.Rates.EPFRate,
		YearlyBreakdown: []domain.EPFYearEntry{},
	}
	if tooLong(years) {
		result.Error = errPeriodTooLong
		return result
	}
	n := wholeYears(years)
	if salary.IsZero() && opening.IsZero() {
		return result
	}
	result.OpeningBalance = r2(opening)
	result.MaturityAmount = result.OpeningBalance
	if n == 0 {
		return result
	}

	rate := safemath.SafeDiv(e.Rates.EPFRate, hundred)
	salaryGrowth := growthFactor(increase, 1)
	balance := opening
	totalEmployee := decimal.Zero
	totalEmployer := decimal.Zero
	for y := 1; y <= n; y++ {
		annualSalary := safemath.Annual(salary)
		employee := safemath.Settle(safemath.Percent(annualSalary, employeeShare))
		employer := safemath.Settle(safemath.Percent(annualSalary, employerShare))
		contributions := safemath.SafeAdd(employee, employer)
		interest := safemath.Settle(safemath.SafeMul(safemath.SafeAdd(balance, contributions), rate))
		balance = safemath.Settle(safemath.SafeAdd(safemath.SafeAdd(balance, contributions), interest))
		totalEmployee = safemath.SafeAdd(totalEmployee, employee)
		totalEmployer = safemath.SafeAdd(totalEmployer, employer)

		result.YearlyBreakdown = append(result.YearlyBreakdown, domain.EPFYearEntry{
			Year:                 y,
			MonthlySalary:        r2(salary),
			EmployeeContribution: r2(employee),
			EmployerContribution: r2(employer),
			Interest:             r2(interest),
			Balance:              r2(balance),
			TotalContributed:     r2(totalEmployee.Add(totalEmployer)),
		})
		salary = safemath.Settle(safemath.SafeMul(salary, salaryGrowth))
	}

	result.TotalEmployeeContribution = r2(totalEmployee)
	result.TotalEmployerContribution = r2(totalEmployer)
	result.TotalContribution = result.TotalEmployeeContribution.Add(result.TotalEmployerContribution)
	result.MaturityAmount = result.YearlyBreakdown[n-1].Balance
	result.TotalInterest = result.MaturityAmount.Sub(result.OpeningBalance).Sub(result.TotalContribution)
	return result
}
