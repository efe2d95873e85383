package domain

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// MonthlyEntry is one month of a growth schedule
type MonthlyEntry struct {
	Month            int             `json:"month"`
	Contribution     decimal.Decimal `json:"contribution"`
	Interest         decimal.Decimal `json:"interest"`
	Balance          decimal.Decimal `json:"balance"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
}

// YearlyEntry is one year of a growth schedule
type YearlyEntry struct {
	Year             int             `json:"year"`
	Contribution     decimal.Decimal `json:"contribution"`
	Interest         decimal.Decimal `json:"interest"`
	Balance          decimal.Decimal `json:"balance"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
}

// SIPInput describes a systematic investment plan
type SIPInput struct {
	MonthlyInvestment safemath.Input `yaml:"monthly_investment,omitempty" json:"monthly_investment"`
	AnnualReturn      safemath.Input `yaml:"annual_return,omitempty" json:"annual_return"`
	Years             safemath.Input `yaml:"years,omitempty" json:"years"`
	StepUpPercent     safemath.Input `yaml:"step_up_percent,omitempty" json:"step_up_percent"` // Optional annual increase of the instalment
}

// SIPResult is the outcome of a SIP calculation
type SIPResult struct {
	TotalInvestment  decimal.Decimal `json:"total_investment"`
	MaturityAmount   decimal.Decimal `json:"maturity_amount"`
	TotalGains       decimal.Decimal `json:"total_gains"`
	MonthlyBreakdown []MonthlyEntry  `json:"monthly_breakdown"`
	YearlyBreakdown  []YearlyEntry   `json:"yearly_breakdown"`
	Error            string          `json:"error,omitempty"`
}

// LumpsumInput describes a one-time investment
type LumpsumInput struct {
	Principal    safemath.Input `yaml:"principal,omitempty" json:"principal"`
	AnnualReturn safemath.Input `yaml:"annual_return,omitempty" json:"annual_return"`
	Years        safemath.Input `yaml:"years,omitempty" json:"years"`
}

// LumpsumResult is the outcome of a lumpsum calculation
type LumpsumResult struct {
	TotalInvestment decimal.Decimal `json:"total_investment"`
	MaturityAmount  decimal.Decimal `json:"maturity_amount"`
	TotalGains      decimal.Decimal `json:"total_gains"`
	CAGR            decimal.Decimal `json:"cagr"`
	AbsoluteReturn  decimal.Decimal `json:"absolute_return"`
	YearlyBreakdown []YearlyEntry   `json:"yearly_breakdown"`
	Error           string          `json:"error,omitempty"`
}

// PPFInput describes Public Provident Fund deposits
type PPFInput struct {
	YearlyInvestment safemath.Input `yaml:"yearly_investment,omitempty" json:"yearly_investment"`
	Years            safemath.Input `yaml:"years,omitempty" json:"years"`
}

// PPFResult is the outcome of a PPF calculation
type PPFResult struct {
	TotalInvestment decimal.Decimal `json:"total_investment"`
	MaturityAmount  decimal.Decimal `json:"maturity_amount"`
	TotalInterest   decimal.Decimal `json:"total_interest"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	YearlyBreakdown []YearlyEntry   `json:"yearly_breakdown"`
	Error           string          `json:"error,omitempty"`
}

// FDInput describes a fixed deposit
type FDInput struct {
	Principal   safemath.Input `yaml:"principal,omitempty" json:"principal"`
	AnnualRate  safemath.Input `yaml:"annual_rate,omitempty" json:"annual_rate"`
	Years       safemath.Input `yaml:"years,omitempty" json:"years"`
	Compounding safemath.Input `yaml:"compounding,omitempty" json:"compounding"` // monthly|quarterly|yearly
}

// FDResult is the outcome of a fixed deposit calculation
type FDResult struct {
	Principal            decimal.Decimal `json:"principal"`
	MaturityAmount       decimal.Decimal `json:"maturity_amount"`
	TotalInterest        decimal.Decimal `json:"total_interest"`
	EffectiveYield       decimal.Decimal `json:"effective_yield"`
	EffectiveAnnualRate  decimal.Decimal `json:"effective_annual_rate"`
	CompoundingFrequency int             `json:"compounding_frequency"`
	YearlyBreakdown      []YearlyEntry   `json:"yearly_breakdown"`
	Error                string          `json:"error,omitempty"`
}

// RDInput describes a recurring deposit
type RDInput struct {
	MonthlyDeposit safemath.Input `yaml:"monthly_deposit,omitempty" json:"monthly_deposit"`
	AnnualRate     safemath.Input `yaml:"annual_rate,omitempty" json:"annual_rate"`
	Years          safemath.Input `yaml:"years,omitempty" json:"years"`
}

// RDResult is the outcome of a recurring deposit calculation
type RDResult struct {
	TotalInvestment  decimal.Decimal `json:"total_investment"`
	MaturityAmount   decimal.Decimal `json:"maturity_amount"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	MonthlyBreakdown []MonthlyEntry  `json:"monthly_breakdown"`
	Error            string          `json:"error,omitempty"`
}

// EPFInput describes Employee Provident Fund membership
type EPFInput struct {
	MonthlyBasicSalary       safemath.Input `yaml:"monthly_basic_salary,omitempty" json:"monthly_basic_salary"`
	CurrentBalance           safemath.Input `yaml:"current_balance,omitempty" json:"current_balance"`
	Years                    safemath.Input `yaml:"years,omitempty" json:"years"`
	AnnualSalaryIncrease     safemath.Input `yaml:"annual_salary_increase,omitempty" json:"annual_salary_increase"`
	EmployeeContributionRate safemath.Input `yaml:"employee_contribution_rate,omitempty" json:"employee_contribution_rate"`
	EmployerContributionRate safemath.Input `yaml:"employer_contribution_rate,omitempty" json:"employer_contribution_rate"`
}

// EPFYearEntry is one year of EPF accumulation
type EPFYearEntry struct {
	Year                 int             `json:"year"`
	MonthlySalary        decimal.Decimal `json:"monthly_salary"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	Interest             decimal.Decimal `json:"interest"`
	Balance              decimal.Decimal `json:"balance"`
	TotalContributed     decimal.Decimal `json:"total_contributed"`
}

// EPFResult is the outcome of an EPF calculation
type EPFResult struct {
	OpeningBalance            decimal.Decimal `json:"opening_balance"`
	TotalEmployeeContribution decimal.Decimal `json:"total_employee_contribution"`
	TotalEmployerContribution decimal.Decimal `json:"total_employer_contribution"`
	TotalContribution         decimal.Decimal `json:"total_contribution"`
	TotalInterest             decimal.Decimal `json:"total_interest"`
	MaturityAmount            decimal.Decimal `json:"maturity_amount"`
	InterestRate              decimal.Decimal `json:"interest_rate"`
	YearlyBreakdown           []EPFYearEntry  `json:"yearly_breakdown"`
	Error                     string          `json:"error,omitempty"`
}

// GoldInput describes a gold purchase held over time
type GoldInput struct {
	InvestmentAmount   safemath.Input `yaml:"investment_amount,omitempty" json:"investment_amount"`
	PricePerUnit       safemath.Input `yaml:"price_per_unit,omitempty" json:"price_per_unit"`
	AnnualAppreciation safemath.Input `yaml:"annual_appreciation,omitempty" json:"annual_appreciation"`
	Years              safemath.Input `yaml:"years,omitempty" json:"years"`
}

// GoldYearEntry is the value of the holding at the end of one year
type GoldYearEntry struct {
	Year         int             `json:"year"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Value        decimal.Decimal `json:"value"`
	Gains        decimal.Decimal `json:"gains"`
}

// GoldResult is the outcome of a gold calculation. Gains are negative under
// depreciation.
type GoldResult struct {
	TotalInvestment   decimal.Decimal `json:"total_investment"`
	Quantity          decimal.Decimal `json:"quantity"`
	FinalPricePerUnit decimal.Decimal `json:"final_price_per_unit"`
	MaturityAmount    decimal.Decimal `json:"maturity_amount"`
	TotalGains        decimal.Decimal `json:"total_gains"`
	AbsoluteReturn    decimal.Decimal `json:"absolute_return"`
	YearlyBreakdown   []GoldYearEntry `json:"yearly_breakdown"`
	Error             string          `json:"error,omitempty"`
}
