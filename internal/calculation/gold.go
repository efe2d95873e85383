package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// CalculateGold values a gold purchase as the price appreciates
// compound-annually. Gains are reported as they are, negative when the
// price falls.
func (e *Engine) CalculateGold(in domain.GoldInput) domain.GoldResult {
	return guard(e, "gold", func() domain.GoldResult { return e.calculateGold(in) })
}

func (e *Engine) calculateGold(in domain.GoldInput) domain.GoldResult {
	investment := in.InvestmentAmount.NonNegative()
	price := in.PricePerUnit.NonNegative()
	appreciation := safemath.MaxOf(in.AnnualAppreciation.Decimal(), hundred.Neg())
	years := in.Years.NonNegative()

	result := domain.GoldResult{YearlyBreakdown: []domain.GoldYearEntry{}}
	if tooLong(years) {
		result.Error = errPeriodTooLong
		return result
	}
	quantity := decimal.Zero
	if price.IsPositive() {
		quantity = safemath.SafeDiv(investment, price)
	}
	if quantity.IsZero() {
		return result
	}

	result.TotalInvestment = r2(investment)
	result.Quantity = quantity.Round(6)
	result.FinalPricePerUnit = r2(price)
	result.MaturityAmount = result.TotalInvestment
	n := wholeYears(years)
	if n == 0 {
		return result
	}

	factor := growthFactor(appreciation, 1)
	for y := 1; y <= n; y++ {
		price = safemath.Settle(safemath.SafeMul(price, factor))
		value := r2(safemath.SafeMul(quantity, price))
		result.YearlyBreakdown = append(result.YearlyBreakdown, domain.GoldYearEntry{
			Year:         y,
			PricePerUnit: r2(price),
			Value:        value,
			Gains:        value.Sub(result.TotalInvestment),
		})
	}

	last := result.YearlyBreakdown[n-1]
	result.FinalPricePerUnit = last.PricePerUnit
	result.MaturityAmount = last.Value
	result.TotalGains = result.MaturityAmount.Sub(result.TotalInvestment)
	result.AbsoluteReturn = r2(safemath.Ratio(result.TotalGains, result.TotalInvestment))
	return result
}
