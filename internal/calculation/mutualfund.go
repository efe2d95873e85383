package calculation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/dateutil"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

const dateLayout = "2006-01-02"

// CalculateMutualFund values a lumpsum or SIP investment in a fund. Entry
// load reduces the amount invested, exit load the redemption value. For a
// SIP the NAV of each instalment moves geometrically from PurchaseNAV to
// CurrentNAV. CAGR is (value/investment)^(1/years) - 1 over the calendar
// period; it is zero when the period is not positive.
func (e *Engine) CalculateMutualFund(in domain.MutualFundInput) domain.MutualFundResult {
	return guard(e, "mutual_fund", func() domain.MutualFundResult { return e.calculateMutualFund(in) })
}

func (e *Engine) calculateMutualFund(in domain.MutualFundInput) domain.MutualFundResult {
	mode := domain.ModeLumpsum
	if strings.EqualFold(strings.TrimSpace(in.Mode.String()), domain.ModeSIP) {
		mode = domain.ModeSIP
	}
	purchaseNAV := in.PurchaseNAV.NonNegative()
	currentNAV := in.CurrentNAV.NonNegative()
	entryKeep := one.Sub(safemath.Percent(one, safemath.MinOf(in.EntryLoad.NonNegative(), hundred)))
	exitKeep := one.Sub(safemath.Percent(one, safemath.MinOf(in.ExitLoad.NonNegative(), hundred)))

	end, err := dateutil.ParseDate(in.EndDate.String())
	if err != nil {
		end = dateutil.DateOnly(nowFunc())
	}
	start, err := dateutil.ParseDate(in.StartDate.String())
	haveStart := err == nil

	result := domain.MutualFundResult{Mode: mode, Schedule: []domain.MutualFundEntry{}}

	var invested, units decimal.Decimal
	if mode == domain.ModeLumpsum {
		amount := in.InvestmentAmount.NonNegative()
		if amount.IsZero() || !purchaseNAV.IsPositive() {
			return result
		}
		invested = amount
		units = safemath.SafeDiv(safemath.SafeMul(amount, entryKeep), purchaseNAV)
		result.Instalments = 1
		result.Schedule = append(result.Schedule, domain.MutualFundEntry{
			Instalment: 1,
			Date:       formatDate(start, haveStart),
			NAV:        purchaseNAV,
			Amount:     r2(amount),
			Units:      units.Round(4),
			TotalUnits: units.Round(4),
			Value:      r2(safemath.SafeMul(units, purchaseNAV)),
		})
	} else {
		instalment := in.MonthlySIP.NonNegative()
		count := 0
		if haveStart {
			count = dateutil.SIPInstalments(start, end)
		} else if in.Months.IsSet() {
			count = in.Months.NonNegativeInt()
			if count > 0 {
				start = dateutil.AddMonths(end, -(count - 1))
				haveStart = true
			}
		}
		if count > MaxYears*12 {
			result.Error = errPeriodTooLong
			return result
		}
		if instalment.IsZero() || count == 0 || !purchaseNAV.IsPositive() {
			return result
		}

		navRatio := safemath.SafeDiv(currentNAV, purchaseNAV)
		for k := 1; k <= count; k++ {
			nav := purchaseNAV
			if count > 1 {
				step := safemath.SafeDiv(decimal.NewFromInt(int64(k-1)), decimal.NewFromInt(int64(count-1)))
				nav = safemath.Settle(safemath.SafeMul(purchaseNAV, safemath.SafePow(navRatio, step)))
			}
			bought := safemath.SafeDiv(safemath.SafeMul(instalment, entryKeep), nav)
			units = safemath.SafeAdd(units, bought)
			invested = safemath.SafeAdd(invested, instalment)
			result.Schedule = append(result.Schedule, domain.MutualFundEntry{
				Instalment: k,
				Date:       formatDate(dateutil.AddMonths(start, k-1), true),
				NAV:        nav.Round(4),
				Amount:     r2(instalment),
				Units:      bought.Round(4),
				TotalUnits: units.Round(4),
				Value:      r2(safemath.SafeMul(units, nav)),
			})
		}
		result.Instalments = count
	}

	years := decimal.Zero
	if haveStart {
		years = decimal.NewFromFloat(dateutil.YearsBetween(start, end))
	}

	result.TotalInvestment = r2(invested)
	result.TotalUnits = units.Round(4)
	result.CurrentValue = r2(safemath.SafeMul(safemath.SafeMul(units, currentNAV), exitKeep))
	result.TotalGains = result.CurrentValue.Sub(result.TotalInvestment)
	result.AbsoluteReturn = r2(safemath.Ratio(result.TotalGains, result.TotalInvestment))
	result.Years = r2(years)
	if years.IsPositive() && result.CurrentValue.IsPositive() {
		growth := safemath.SafePow(safemath.SafeDiv(result.CurrentValue, result.TotalInvestment), safemath.SafeDiv(one, years))
		result.CAGR = r2(safemath.SafeMul(growth.Sub(one), hundred))
	}
	result.TaxOnGains = r2(safemath.Percent(safemath.NonNegative(result.TotalGains), in.TaxRate.NonNegative()))
	result.PostTaxValue = result.CurrentValue.Sub(result.TaxOnGains)
	return result
}

func formatDate(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return t.Format(dateLayout)
}
