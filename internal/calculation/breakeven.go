package calculation

import (
	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

const errNoMargin = "Selling price must exceed variable cost"

// CalculateBreakEven finds the units and revenue at which contribution
// margin covers fixed costs, and the volume needed for a target profit.
func (e *Engine) CalculateBreakEven(in domain.BreakEvenInput) domain.BreakEvenResult {
	return guard(e, "break_even", func() domain.BreakEvenResult {
		fixed := in.FixedCosts.NonNegative()
		variable := in.VariableCostPerUnit.NonNegative()
		price := in.SellingPricePerUnit.NonNegative()
		target := in.TargetProfit.NonNegative()

		margin := price.Sub(variable)
		if !margin.IsPositive() {
			return domain.BreakEvenResult{Error: errNoMargin}
		}

		units := safemath.SafeDiv(fixed, margin)
		targetUnits := safemath.SafeDiv(safemath.SafeAdd(fixed, target), margin)
		return domain.BreakEvenResult{
			ContributionMargin:      r2(margin),
			ContributionMarginRatio: r2(safemath.Ratio(margin, price)),
			BreakEvenUnits:          r2(units),
			BreakEvenUnitsRounded:   units.Ceil().IntPart(),
			BreakEvenRevenue:        r2(safemath.SafeMul(units, price)),
			UnitsForTargetProfit:    r2(targetUnits),
			RevenueForTargetProfit:  r2(safemath.SafeMul(targetUnits, price)),
		}
	})
}
