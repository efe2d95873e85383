package domain

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// RetirementInput describes a saver's position and expectations
type RetirementInput struct {
	CurrentAge           safemath.Input `yaml:"current_age,omitempty" json:"current_age"`
	RetirementAge        safemath.Input `yaml:"retirement_age,omitempty" json:"retirement_age"`
	LifeExpectancy       safemath.Input `yaml:"life_expectancy,omitempty" json:"life_expectancy"` // Default: 85
	CurrentSavings       safemath.Input `yaml:"current_savings,omitempty" json:"current_savings"`
	MonthlyContribution  safemath.Input `yaml:"monthly_contribution,omitempty" json:"monthly_contribution"`
	ExpectedReturn       safemath.Input `yaml:"expected_return,omitempty" json:"expected_return"`
	PostRetirementReturn safemath.Input `yaml:"post_retirement_return,omitempty" json:"post_retirement_return"` // Default: expected_return
	InflationRate        safemath.Input `yaml:"inflation_rate,omitempty" json:"inflation_rate"`                 // Default: 6
	MonthlyExpenses      safemath.Input `yaml:"monthly_expenses,omitempty" json:"monthly_expenses"`             // In today's money
}

// RetirementYearEntry is the corpus at the end of one year of saving
type RetirementYearEntry struct {
	Year             int             `json:"year"`
	Age              int             `json:"age"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
	Balance          decimal.Decimal `json:"balance"`
}

// RetirementResult is the outcome of a retirement projection
type RetirementResult struct {
	CurrentAge                  int                   `json:"current_age"`
	RetirementAge               int                   `json:"retirement_age"`
	MonthsToRetirement          int                   `json:"months_to_retirement"`
	TotalContributions          decimal.Decimal       `json:"total_contributions"`
	FutureValueOfSavings        decimal.Decimal       `json:"future_value_of_savings"`
	FutureValueOfContributions  decimal.Decimal       `json:"future_value_of_contributions"`
	RetirementCorpus            decimal.Decimal       `json:"retirement_corpus"`
	TotalGains                  decimal.Decimal       `json:"total_gains"`
	MonthlyExpensesAtRetirement decimal.Decimal       `json:"monthly_expenses_at_retirement"`
	RequiredCorpus              decimal.Decimal       `json:"required_corpus"`
	Shortfall                   decimal.Decimal       `json:"shortfall"`
	AdditionalMonthlySaving     decimal.Decimal       `json:"additional_monthly_saving"`
	YearlyBreakdown             []RetirementYearEntry `json:"yearly_breakdown"`
	Error                       string                `json:"error,omitempty"`
}

// Mutual fund investment modes
const (
	ModeLumpsum = "lumpsum"
	ModeSIP     = "sip"
)

// MutualFundInput describes a mutual fund holding. Loads and TaxRate are
// percentages.
type MutualFundInput struct {
	Mode             safemath.Input `yaml:"mode,omitempty" json:"mode"` // lumpsum|sip
	InvestmentAmount safemath.Input `yaml:"investment_amount,omitempty" json:"investment_amount"`
	MonthlySIP       safemath.Input `yaml:"monthly_sip,omitempty" json:"monthly_sip"`
	PurchaseNAV      safemath.Input `yaml:"purchase_nav,omitempty" json:"purchase_nav"`
	CurrentNAV       safemath.Input `yaml:"current_nav,omitempty" json:"current_nav"`
	EntryLoad        safemath.Input `yaml:"entry_load,omitempty" json:"entry_load"`
	ExitLoad         safemath.Input `yaml:"exit_load,omitempty" json:"exit_load"`
	StartDate        safemath.Input `yaml:"start_date,omitempty" json:"start_date"`
	EndDate          safemath.Input `yaml:"end_date,omitempty" json:"end_date"` // Default: today
	Months           safemath.Input `yaml:"months,omitempty" json:"months"`     // Instalment count when start_date is absent
	TaxRate          safemath.Input `yaml:"tax_rate,omitempty" json:"tax_rate"`
}

// MutualFundEntry is one SIP instalment
type MutualFundEntry struct {
	Instalment int             `json:"instalment"`
	Date       string          `json:"date"`
	NAV        decimal.Decimal `json:"nav"`
	Amount     decimal.Decimal `json:"amount"`
	Units      decimal.Decimal `json:"units"`
	TotalUnits decimal.Decimal `json:"total_units"`
	Value      decimal.Decimal `json:"value"`
}

// MutualFundResult is the outcome of a mutual fund calculation
type MutualFundResult struct {
	Mode            string            `json:"mode"`
	Instalments     int               `json:"instalments"`
	TotalInvestment decimal.Decimal   `json:"total_investment"`
	TotalUnits      decimal.Decimal   `json:"total_units"`
	CurrentValue    decimal.Decimal   `json:"current_value"`
	TotalGains      decimal.Decimal   `json:"total_gains"`
	AbsoluteReturn  decimal.Decimal   `json:"absolute_return"`
	Years           decimal.Decimal   `json:"years"`
	CAGR            decimal.Decimal   `json:"cagr"`
	TaxOnGains      decimal.Decimal   `json:"tax_on_gains"`
	PostTaxValue    decimal.Decimal   `json:"post_tax_value"`
	Schedule        []MutualFundEntry `json:"schedule"`
	Error           string            `json:"error,omitempty"`
}
