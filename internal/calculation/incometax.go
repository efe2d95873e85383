package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// INCOME TAX ASSUMPTIONS:
//
// 1. New regime (FY 2024-25): 0-3L nil, 3-7L 5%, 7-10L 10%, 10-12L 15%,
//    12-15L 20%, above 15L 30%. Standard deduction 75,000.
//
// 2. Old regime: basic exemption of 2.5L below 60, 3L from 60 and 5L from 80,
//    then 5% to 5L, 20% to 10L and 30% above. Standard deduction 50,000.
//
// 3. Health and education cess is levied on the computed tax. No rebate
//    under section 87A and no surcharge is applied.

// topOfScale closes the highest slab
var topOfScale = decimal.New(1, 15)

const defaultAge = 30

var (
	minAge = decimal.NewFromInt(18)
	maxAge = decimal.NewFromInt(120)
)

func lakh(n float64) decimal.Decimal { return decimal.NewFromFloat(n * 100000) }

func pct(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// NewRegimeBrackets returns the new regime slabs
func NewRegimeBrackets() []domain.TaxBracket {
	return []domain.TaxBracket{
		{Min: decimal.Zero, Max: lakh(3), Rate: pct(0)},
		{Min: lakh(3), Max: lakh(7), Rate: pct(5)},
		{Min: lakh(7), Max: lakh(10), Rate: pct(10)},
		{Min: lakh(10), Max: lakh(12), Rate: pct(15)},
		{Min: lakh(12), Max: lakh(15), Rate: pct(20)},
		{Min: lakh(15), Max: topOfScale, Rate: pct(30)},
	}
}

// OldRegimeBrackets returns the old regime slabs for a taxpayer of the given age
func OldRegimeBrackets(age int) []domain.TaxBracket {
	exemption := lakh(2.5)
	switch {
	case age >= 80:
		exemption = lakh(5)
	case age >= 60:
		exemption = lakh(3)
	}
	return []domain.TaxBracket{
		{Min: decimal.Zero, Max: exemption, Rate: pct(0)},
		{Min: exemption, Max: lakh(5), Rate: pct(5)},
		{Min: lakh(5), Max: lakh(10), Rate: pct(20)},
		{Min: lakh(10), Max: topOfScale, Rate: pct(30)},
	}
}

// ApplyBrackets walks the slabs below taxable income. The tax of each slab is
// rounded to currency precision and the total is the sum of those rounded
// amounts. Zero-width slabs are skipped.
func ApplyBrackets(taxable decimal.Decimal, brackets []domain.TaxBracket) (total, marginal decimal.Decimal, entries []domain.TaxBracketEntry) {
	entries = []domain.TaxBracketEntry{}
	for _, b := range brackets {
		if b.Max.LessThanOrEqual(b.Min) {
			continue
		}
		if taxable.LessThanOrEqual(b.Min) {
			break
		}
		amount := safemath.MinOf(taxable.Sub(b.Min), b.Max.Sub(b.Min))
		tax := r2(safemath.Percent(amount, b.Rate))
		total = total.Add(tax)
		marginal = b.Rate
		entries = append(entries, domain.TaxBracketEntry{
			Range:         bracketLabel(b),
			Rate:          b.Rate,
			TaxableAmount: r2(amount),
			Tax:           tax,
		})
	}
	return total, marginal, entries
}

func bracketLabel(b domain.TaxBracket) string {
	if b.Max.GreaterThanOrEqual(topOfScale) {
		return fmt.Sprintf("Above %s", b.Min.StringFixed(0))
	}
	return fmt.Sprintf("%s - %s", b.Min.StringFixed(0), b.Max.StringFixed(0))
}

// CalculateIncomeTax computes income tax under the requested regime
// (default new). Negative income, an age outside 18-120 or negative
// deductions produce a result carrying only Error.
func (e *Engine) CalculateIncomeTax(in domain.IncomeTaxInput) domain.IncomeTaxResult {
	return guard(e, "income_tax", func() domain.IncomeTaxResult { return e.calculateIncomeTax(in) })
}

func (e *Engine) calculateIncomeTax(in domain.IncomeTaxInput) domain.IncomeTaxResult {
	income := in.AnnualIncome.Decimal()
	if income.IsNegative() {
		return domain.IncomeTaxResult{Error: "Annual income cannot be negative"}
	}
	age := in.Age.DecimalOr(decimal.NewFromInt(defaultAge))
	if age.LessThan(minAge) || age.GreaterThan(maxAge) {
		return domain.IncomeTaxResult{Error: "Age must be between 18 and 120"}
	}
	deductions := in.Deductions.Decimal()
	if deductions.IsNegative() {
		return domain.IncomeTaxResult{Error: "Deductions cannot be negative"}
	}

	regime := normalizeRegime(in.Regime.String())
	brackets := NewRegimeBrackets()
	standard := e.Rates.StandardDeductionNew
	if regime == domain.RegimeOld {
		brackets = OldRegimeBrackets(int(age.IntPart()))
		standard = e.Rates.StandardDeductionOld
	}

	res := domain.IncomeTaxResult{
		Regime:            regime,
		GrossIncome:       r2(income),
		StandardDeduction: r2(standard),
		Deductions:        r2(deductions),
	}
	res.TaxableIncome = safemath.NonNegative(res.GrossIncome.Sub(res.Deductions).Sub(res.StandardDeduction))
	res.IncomeTax, res.MarginalRate, res.Brackets = ApplyBrackets(res.TaxableIncome, brackets)
	res.Cess = r2(safemath.Percent(res.IncomeTax, e.Rates.CessRate))
	res.TotalTax = res.IncomeTax.Add(res.Cess)
	res.EffectiveRate = r2(safemath.Ratio(res.TotalTax, res.GrossIncome))
	res.NetIncome = res.GrossIncome.Sub(res.TotalTax)
	res.MonthlyTakeHome = r2(safemath.Monthly(res.NetIncome))
	return res
}

func normalizeRegime(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), domain.RegimeOld) {
		return domain.RegimeOld
	}
	return domain.RegimeNew
}

// CompareTaxRegimes computes tax under both regimes and recommends the one
// with the lower total tax; a tie favours the new regime.
func (e *Engine) CompareTaxRegimes(in domain.IncomeTaxInput) domain.RegimeComparisonResult {
	return guard(e, "tax_regime_comparison", func() domain.RegimeComparisonResult {
		in.Regime = safemath.In(domain.RegimeNew)
		newRes := e.calculateIncomeTax(in)
		in.Regime = safemath.In(domain.RegimeOld)
		oldRes := e.calculateIncomeTax(in)

		res := domain.RegimeComparisonResult{NewRegime: newRes, OldRegime: oldRes}
		if newRes.Error != "" {
			res.Error = newRes.Error
			return res
		}
		res.Recommended = domain.RegimeNew
		if oldRes.TotalTax.LessThan(newRes.TotalTax) {
			res.Recommended = domain.RegimeOld
		}
		res.Savings = newRes.TotalTax.Sub(oldRes.TotalTax).Abs()
		return res
	})
}
