package output

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code amounts are displayed in
const Currency = money.INR

// FormatCurrency formats a decimal as rupees with 2 decimals and thousands
// separators, e.g. ₹1,234.57.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.New(amount.Shift(2).Round(0).IntPart(), Currency).Display()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
