package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

const errTermTooLong = "Loan term too long"

// EMI returns the equated monthly instalment for principal at annualRate
// percent over months payments: P*r/(1-(1+r)^-n), or P/n when the rate is
// zero. The discount factor stays below one, so no intermediate term
// outgrows MaxSafeValue on long high-rate terms.
func EMI(principal, annualRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(months))
	r := safemath.SafeDiv(annualRate, decimal.NewFromInt(1200))
	if !r.IsPositive() {
		return safemath.SafeDiv(principal, n)
	}
	discount := safemath.SafePow(one.Add(r), n.Neg())
	return safemath.SafeDiv(safemath.SafeMul(principal, r), safemath.SafeSub(one, discount))
}

// CalculateLoan amortizes a loan month by month. Interest is charged on the
// outstanding balance first and the rest of the EMI, plus any extra
// payment, reduces principal.
func (e *Engine) CalculateLoan(in domain.LoanInput) domain.LoanResult {
	return guard(e, "loan", func() domain.LoanResult {
		return e.amortize(in.Principal.NonNegative(), in.AnnualRate.NonNegative(), in.Years.NonNegative(), in.ExtraPayment.NonNegative())
	})
}

func (e *Engine) amortize(principal, annualRate, years, extra decimal.Decimal) domain.LoanResult {
	result := domain.LoanResult{Schedule: []domain.AmortizationEntry{}}
	if tooLong(years) {
		result.Error = errTermTooLong
		return result
	}
	months := monthsIn(years)
	result.Principal = r2(principal)
	if !principal.IsPositive() || months == 0 {
		return result
	}

	r := safemath.SafeDiv(annualRate, decimal.NewFromInt(1200))
	emi := safemath.Settle(EMI(principal, annualRate, months))
	result.EMI = r2(emi)
	result.ScheduledMonths = months

	balance := principal
	totalPayment := decimal.Zero
	for m := 1; m <= months && balance.IsPositive(); m++ {
		interest := safemath.Settle(safemath.SafeMul(balance, r))
		principalPortion := safemath.SafeAdd(safemath.SafeSub(emi, interest), extra)
		if principalPortion.GreaterThan(balance) || m == months {
			principalPortion = balance
		}
		payment := safemath.SafeAdd(principalPortion, interest)
		balance = safemath.Settle(safemath.SafeSub(balance, principalPortion))
		totalPayment = safemath.SafeAdd(totalPayment, payment)

		result.Schedule = append(result.Schedule, domain.AmortizationEntry{
			Month:     m,
			Payment:   r2(payment),
			Principal: r2(principalPortion),
			Interest:  r2(interest),
			Balance:   r2(balance),
		})
	}

	result.PayoffMonths = len(result.Schedule)
	result.TimeSavedMonths = months - result.PayoffMonths
	result.TotalPayment = r2(totalPayment)
	result.TotalInterest = safemath.SafeSub(result.TotalPayment, result.Principal)
	if extra.IsZero() {
		result.InterestWithoutExtra = result.TotalInterest
		return result
	}
	withoutExtra := safemath.SafeSub(safemath.SafeMul(emi, decimal.NewFromInt(int64(months))), principal)
	result.InterestWithoutExtra = r2(safemath.NonNegative(withoutExtra))
	result.InterestSaved = safemath.NonNegative(result.InterestWithoutExtra.Sub(result.TotalInterest))
	e.Logger.Debugf("loan: extra %s pays off in %d of %d months, saving %s", extra, result.PayoffMonths, months, result.InterestSaved)
	return result
}

// CalculateHomeLoan finances a property purchase net of the down payment.
func (e *Engine) CalculateHomeLoan(in domain.HomeLoanInput) domain.HomeLoanResult {
	return guard(e, "home_loan", func() domain.HomeLoanResult {
		property := in.PropertyValue.NonNegative()
		down := safemath.MinOf(in.DownPayment.NonNegative(), property)
		loan := property.Sub(down)
		return domain.HomeLoanResult{
			LoanResult:    e.amortize(loan, in.AnnualRate.NonNegative(), in.Years.NonNegative(), in.ExtraPayment.NonNegative()),
			PropertyValue: r2(property),
			DownPayment:   r2(down),
			LoanToValue:   r2(safemath.Ratio(loan, property)),
		}
	})
}

// CalculateCarLoan finances a vehicle net of the down payment and trade-in.
func (e *Engine) CalculateCarLoan(in domain.CarLoanInput) domain.CarLoanResult {
	return guard(e, "car_loan", func() domain.CarLoanResult {
		price := in.CarPrice.NonNegative()
		down := in.DownPayment.NonNegative()
		tradeIn := in.TradeInValue.NonNegative()
		loan := safemath.NonNegative(price.Sub(down).Sub(tradeIn))
		res := domain.CarLoanResult{
			LoanResult:   e.amortize(loan, in.AnnualRate.NonNegative(), in.Years.NonNegative(), decimal.Zero),
			CarPrice:     r2(price),
			DownPayment:  r2(down),
			TradeInValue: r2(tradeIn),
		}
		res.TotalCost = safemath.SafeAdd(safemath.SafeAdd(res.DownPayment, res.TradeInValue), res.TotalPayment)
		return res
	})
}

// CalculatePersonalLoan adds an upfront processing fee to a plain loan.
func (e *Engine) CalculatePersonalLoan(in domain.PersonalLoanInput) domain.PersonalLoanResult {
	return guard(e, "personal_loan", func() domain.PersonalLoanResult {
		principal := in.Principal.NonNegative()
		res := domain.PersonalLoanResult{
			LoanResult:    e.amortize(principal, in.AnnualRate.NonNegative(), in.Years.NonNegative(), decimal.Zero),
			ProcessingFee: r2(safemath.Percent(principal, in.ProcessingFeePercent.NonNegative())),
		}
		res.TotalCost = safemath.SafeAdd(res.TotalPayment, res.ProcessingFee)
		return res
	})
}

// CalculateMortgage adds monthly property tax, insurance, PMI and HOA dues
// to the principal and interest payment.
func (e *Engine) CalculateMortgage(in domain.MortgageInput) domain.MortgageResult {
	return guard(e, "mortgage", func() domain.MortgageResult { return e.calculateMortgage(in) })
}

func (e *Engine) calculateMortgage(in domain.MortgageInput) domain.MortgageResult {
	price := in.HomePrice.NonNegative()
	down := safemath.MinOf(in.DownPayment.NonNegative(), price)
	loan := price.Sub(down)

	res := domain.MortgageResult{
		LoanResult:         e.amortize(loan, in.AnnualRate.NonNegative(), in.Years.NonNegative(), decimal.Zero),
		HomePrice:          r2(price),
		DownPayment:        r2(down),
		LoanToValue:        r2(safemath.Ratio(loan, price)),
		MonthlyPropertyTax: r2(safemath.Monthly(in.PropertyTax.NonNegative())),
		MonthlyInsurance:   r2(safemath.Monthly(in.HomeInsurance.NonNegative())),
		MonthlyPMI:         r2(safemath.Monthly(in.PMI.NonNegative())),
		MonthlyHOA:         r2(in.HOA.NonNegative()),
	}
	res.MonthlyPrincipalInterest = res.EMI
	res.TotalMonthlyPayment = res.MonthlyPrincipalInterest
	for _, charge := range []decimal.Decimal{res.MonthlyPropertyTax, res.MonthlyInsurance, res.MonthlyPMI, res.MonthlyHOA} {
		res.TotalMonthlyPayment = safemath.SafeAdd(res.TotalMonthlyPayment, charge)
	}
	return res
}
