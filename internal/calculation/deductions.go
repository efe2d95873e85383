package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

var (
	two            = decimal.NewFromInt(2)
	metroHRARate   = decimal.NewFromInt(50)
	nonMetroHRA    = decimal.NewFromInt(40)
	rentFloorShare = decimal.NewFromInt(10)
)

// CalculateGST splits an amount into net and GST components. In exclusive
// mode GST is added on top; in inclusive mode it is backed out of the
// amount. CGST and SGST are half of GST each, IGST the whole.
func (e *Engine) CalculateGST(in domain.GSTInput) domain.GSTResult {
	return guard(e, "gst", func() domain.GSTResult {
		amount := in.Amount.NonNegative()
		rate := in.Rate.NonNegative()
		res := domain.GSTResult{Mode: domain.GSTExclusive, Rate: rate}

		if strings.EqualFold(strings.TrimSpace(in.Mode.String()), domain.GSTInclusive) {
			res.Mode = domain.GSTInclusive
			res.GrossAmount = r2(amount)
			res.NetAmount = r2(safemath.SafeDiv(amount, growthFactor(rate, 1)))
			res.GSTAmount = res.GrossAmount.Sub(res.NetAmount)
		} else {
			res.NetAmount = r2(amount)
			res.GSTAmount = r2(safemath.Percent(amount, rate))
			res.GrossAmount = res.NetAmount.Add(res.GSTAmount)
		}
		res.CGST = r2(res.GSTAmount.Div(two))
		res.SGST = res.CGST
		res.IGST = res.GSTAmount
		return res
	})
}

// CalculateHRA computes the HRA exemption as the least of the HRA received,
// 50% (metro) or 40% of salary, and rent paid in excess of 10% of salary.
// Salary is basic plus dearness allowance.
func (e *Engine) CalculateHRA(in domain.HRAInput) domain.HRAResult {
	return guard(e, "hra", func() domain.HRAResult {
		salary := r2(safemath.SafeAdd(in.BasicSalary.NonNegative(), in.DearnessAllowance.NonNegative()))
		cityRate := nonMetroHRA
		if in.IsMetro.Bool() {
			cityRate = metroHRARate
		}
		res := domain.HRAResult{
			Salary:     salary,
			ActualHRA:  r2(in.HRAReceived.NonNegative()),
			CityLimit:  r2(safemath.Percent(salary, cityRate)),
			RentExcess: r2(safemath.NonNegative(in.RentPaid.NonNegative().Sub(safemath.Percent(salary, rentFloorShare)))),
		}
		res.Exemption = safemath.MinOf(res.ActualHRA, res.CityLimit, res.RentExcess)
		res.TaxableHRA = res.ActualHRA.Sub(res.Exemption)
		return res
	})
}

// CalculateSalary breaks a CTC into components and take-home pay. Employer
// PF is part of CTC, so gross salary is CTC less PF; the employee's PF,
// professional tax and new regime income tax (with cess) are then deducted.
func (e *Engine) CalculateSalary(in domain.SalaryInput) domain.SalaryResult {
	return guard(e, "salary", func() domain.SalaryResult { return e.calculateSalary(in) })
}

func (e *Engine) calculateSalary(in domain.SalaryInput) domain.SalaryResult {
	ctc := in.CTC.NonNegative()
	if ctc.IsZero() {
		return domain.SalaryResult{}
	}
	basicPct := safemath.NonNegative(in.BasicPercent.DecimalOr(decimal.NewFromInt(40)))
	hraPct := safemath.NonNegative(in.HRAPercent.DecimalOr(decimal.NewFromInt(50)))
	pfPct := safemath.NonNegative(in.PFPercent.DecimalOr(decimal.NewFromInt(12)))
	professionalTax := safemath.NonNegative(in.ProfessionalTax.DecimalOr(e.Rates.ProfessionalTax))

	res := domain.SalaryResult{CTC: r2(ctc)}
	res.Basic = r2(safemath.Percent(ctc, basicPct))
	res.HRA = r2(safemath.Percent(res.Basic, hraPct))
	res.ProvidentFund = r2(safemath.Percent(res.Basic, pfPct))
	res.SpecialAllowance = safemath.NonNegative(res.CTC.Sub(res.Basic).Sub(res.HRA).Sub(res.ProvidentFund))
	res.GrossSalary = res.CTC.Sub(res.ProvidentFund)
	res.StandardDeduction = r2(e.Rates.SalaryStandardDeduction)
	res.TaxableIncome = safemath.NonNegative(res.GrossSalary.Sub(res.StandardDeduction).Sub(res.ProvidentFund))

	tax, _, _ := ApplyBrackets(res.TaxableIncome, NewRegimeBrackets())
	res.IncomeTax = tax.Add(r2(safemath.Percent(tax, e.Rates.CessRate)))
	res.ProfessionalTax = r2(professionalTax)
	res.TotalDeductions = res.ProvidentFund.Add(res.ProfessionalTax).Add(res.IncomeTax)
	res.NetSalary = res.GrossSalary.Sub(res.TotalDeductions)
	res.MonthlyGross = r2(safemath.Monthly(res.GrossSalary))
	res.MonthlyDeductions = r2(safemath.Monthly(res.TotalDeductions))
	res.MonthlyNet = r2(safemath.Monthly(res.NetSalary))
	return res
}
