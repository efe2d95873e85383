package domain

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// LoanInput describes an amortizing loan
type LoanInput struct {
	Principal    safemath.Input `yaml:"principal,omitempty" json:"principal"`
	AnnualRate   safemath.Input `yaml:"annual_rate,omitempty" json:"annual_rate"`
	Years        safemath.Input `yaml:"years,omitempty" json:"years"`
	ExtraPayment safemath.Input `yaml:"extra_payment,omitempty" json:"extra_payment"` // Added to every monthly payment
}

// AmortizationEntry is one month of a repayment schedule
type AmortizationEntry struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// LoanResult is the outcome of a loan calculation
type LoanResult struct {
	Principal            decimal.Decimal     `json:"principal"`
	EMI                  decimal.Decimal     `json:"emi"`
	TotalPayment         decimal.Decimal     `json:"total_payment"`
	TotalInterest        decimal.Decimal     `json:"total_interest"`
	ScheduledMonths      int                 `json:"scheduled_months"`
	PayoffMonths         int                 `json:"payoff_months"`
	TimeSavedMonths      int                 `json:"time_saved_months"`
	InterestWithoutExtra decimal.Decimal     `json:"interest_without_extra"`
	InterestSaved        decimal.Decimal     `json:"interest_saved"`
	Schedule             []AmortizationEntry `json:"schedule"`
	Error                string              `json:"error,omitempty"`
}

// HomeLoanInput describes a loan against a property purchase
type HomeLoanInput struct {
	PropertyValue safemath.Input `yaml:"property_value,omitempty" json:"property_value"`
	DownPayment   safemath.Input `yaml:"down_payment,omitempty" json:"down_payment"`
	AnnualRate    safemath.Input `yaml:"annual_rate,omitempty" json:"annual_rate"`
	Years         safemath.Input `yaml:"years,omitempty" json:"years"`
	ExtraPayment  safemath.Input `yaml:"extra_payment,omitempty" json:"extra_payment"`
}

// HomeLoanResult extends LoanResult with property figures
type HomeLoanResult struct {
	LoanResult
	PropertyValue decimal.Decimal `json:"property_value"`
	DownPayment   decimal.Decimal `json:"down_payment"`
	LoanToValue   decimal.Decimal `json:"loan_to_value"`
}

// CarLoanInput describes a vehicle loan
type CarLoanInput struct {
	CarPrice     safemath.Input `yaml:"car_price,omitempty" json:"car_price"`
	DownPayment  safemath.Input `yaml:"down_payment,omitempty" json:"down_payment"`
	TradeInValue safemath.Input `yaml:"trade_in_value,omitempty" json:"trade_in_value"`
	AnnualRate   safemath.Input `yaml:"annual_rate,omitempty" json:"annual_rate"`
	Years        safemath.Input `yaml:"years,omitempty" json:"years"`
}

// CarLoanResult extends LoanResult with the purchase figures
type CarLoanResult struct {
	LoanResult
	CarPrice     decimal.Decimal `json:"car_price"`
	DownPayment  decimal.Decimal `json:"down_payment"`
	TradeInValue decimal.Decimal `json:"trade_in_value"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// PersonalLoanInput describes an unsecured loan with an upfront fee
type PersonalLoanInput struct {
	Principal            safemath.Input `yaml:"principal,omitempty" json:"principal"`
	AnnualRate           safemath.Input `yaml:"annual_rate,omitempty" json:"annual_rate"`
	Years                safemath.Input `yaml:"years,omitempty" json:"years"`
	ProcessingFeePercent safemath.Input `yaml:"processing_fee_percent,omitempty" json:"processing_fee_percent"`
}

// PersonalLoanResult extends LoanResult with the processing fee
type PersonalLoanResult struct {
	LoanResult
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// MortgageInput describes a home purchase with recurring ownership costs.
// PropertyTax, HomeInsurance and PMI are annual; HOA is monthly.
type MortgageInput struct {
	HomePrice     safemath.Input `yaml:"home_price,omitempty" json:"home_price"`
	DownPayment   safemath.Input `yaml:"down_payment,omitempty" json:"down_payment"`
	AnnualRate    safemath.Input `yaml:"annual_rate,omitempty" json:"annual_rate"`
	Years         safemath.Input `yaml:"years,omitempty" json:"years"`
	PropertyTax   safemath.Input `yaml:"property_tax,omitempty" json:"property_tax"`
	HomeInsurance safemath.Input `yaml:"home_insurance,omitempty" json:"home_insurance"`
	PMI           safemath.Input `yaml:"pmi,omitempty" json:"pmi"`
	HOA           safemath.Input `yaml:"hoa,omitempty" json:"hoa"`
}

// MortgageResult extends LoanResult with the full monthly housing cost
type MortgageResult struct {
	LoanResult
	HomePrice                decimal.Decimal `json:"home_price"`
	DownPayment              decimal.Decimal `json:"down_payment"`
	LoanToValue              decimal.Decimal `json:"loan_to_value"`
	MonthlyPrincipalInterest decimal.Decimal `json:"monthly_principal_interest"`
	MonthlyPropertyTax       decimal.Decimal `json:"monthly_property_tax"`
	MonthlyInsurance         decimal.Decimal `json:"monthly_insurance"`
	MonthlyPMI               decimal.Decimal `json:"monthly_pmi"`
	MonthlyHOA               decimal.Decimal `json:"monthly_hoa"`
	TotalMonthlyPayment      decimal.Decimal `json:"total_monthly_payment"`
}
