package calculation

import (
	"strings"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/dateutil"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// longTermMonths is the holding period, per asset type, from which a gain
// is long-term.
var longTermMonths = map[string]int{
	domain.AssetEquity:   12,
	domain.AssetDebt:     36,
	domain.AssetProperty: 24,
	domain.AssetGold:     36,
}

// CalculateCapitalGains classifies a sale as short or long term and applies
// the matching rate. Equity LTCG is exempt up to EquityLTCGExemption. A loss
// carries no tax.
func (e *Engine) CalculateCapitalGains(in domain.CapitalGainsInput) domain.CapitalGainsResult {
	return guard(e, "capital_gains", func() domain.CapitalGainsResult { return e.calculateCapitalGains(in) })
}

func (e *Engine) calculateCapitalGains(in domain.CapitalGainsInput) domain.CapitalGainsResult {
	purchase := in.PurchasePrice.NonNegative()
	sale := in.SalePrice.NonNegative()
	expenses := in.Expenses.NonNegative()
	asset := normalizeAsset(in.AssetType.String())

	months := in.HoldingPeriodMonths.NonNegativeInt()
	bought, errBought := dateutil.ParseDate(in.PurchaseDate.String())
	sold, errSold := dateutil.ParseDate(in.SaleDate.String())
	if errBought == nil && errSold == nil {
		months = dateutil.MonthsBetween(bought, sold)
	}

	res := domain.CapitalGainsResult{
		AssetType:           asset,
		HoldingPeriodMonths: months,
		IsLongTerm:          months >= longTermMonths[asset],
		CapitalGain:         r2(sale.Sub(purchase).Sub(expenses)),
	}

	switch {
	case asset == domain.AssetEquity && res.IsLongTerm:
		res.TaxRate = e.Rates.EquityLTCGRate
	case asset == domain.AssetEquity:
		res.TaxRate = e.Rates.EquitySTCGRate
	case res.IsLongTerm:
		res.TaxRate = e.Rates.OtherLTCGRate
	default:
		res.TaxRate = e.Rates.SlabProxyRate
	}

	if res.CapitalGain.IsPositive() {
		if asset == domain.AssetEquity && res.IsLongTerm {
			res.Exemption = safemath.MinOf(res.CapitalGain, r2(e.Rates.EquityLTCGExemption))
		}
		res.TaxableGain = res.CapitalGain.Sub(res.Exemption)
		res.Tax = r2(safemath.Percent(res.TaxableGain, res.TaxRate))
	}
	res.NetProfit = res.CapitalGain.Sub(res.Tax)
	return res
}

func normalizeAsset(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "stock", "stocks", "shares", "equity_mf", "equity":
		return domain.AssetEquity
	case "debt", "debt_mf", "bonds":
		return domain.AssetDebt
	case "property", "real_estate", "land":
		return domain.AssetProperty
	case "gold":
		return domain.AssetGold
	}
	return domain.AssetEquity
}
