package domain

import (
	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

// Tax regimes
const (
	RegimeNew = "new"
	RegimeOld = "old"
)

// IncomeTaxInput describes an individual's annual income
type IncomeTaxInput struct {
	AnnualIncome safemath.Input `yaml:"annual_income,omitempty" json:"annual_income"`
	Age          safemath.Input `yaml:"age,omitempty" json:"age"`
	Deductions   safemath.Input `yaml:"deductions,omitempty" json:"deductions"` // Chapter VI-A and similar, excluding the standard deduction
	Regime       safemath.Input `yaml:"regime,omitempty" json:"regime"`         // new|old
}

// TaxBracketEntry is the tax levied within one slab
type TaxBracketEntry struct {
	Range         string          `json:"range"`
	Rate          decimal.Decimal `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	Tax           decimal.Decimal `json:"tax"`
}

// IncomeTaxResult is the outcome of an income tax calculation. When Error is
// set no other field is populated.
type IncomeTaxResult struct {
	Regime            string            `json:"regime,omitempty"`
	GrossIncome       decimal.Decimal   `json:"gross_income"`
	StandardDeduction decimal.Decimal   `json:"standard_deduction"`
	Deductions        decimal.Decimal   `json:"deductions"`
	TaxableIncome     decimal.Decimal   `json:"taxable_income"`
	IncomeTax         decimal.Decimal   `json:"income_tax"`
	Cess              decimal.Decimal   `json:"cess"`
	TotalTax          decimal.Decimal   `json:"total_tax"`
	EffectiveRate     decimal.Decimal   `json:"effective_rate"`
	MarginalRate      decimal.Decimal   `json:"marginal_rate"`
	NetIncome         decimal.Decimal   `json:"net_income"`
	MonthlyTakeHome   decimal.Decimal   `json:"monthly_take_home"`
	Brackets          []TaxBracketEntry `json:"brackets"`
	Error             string            `json:"error,omitempty"`
}

// RegimeComparisonResult compares both regimes for the same income
type RegimeComparisonResult struct {
	NewRegime   IncomeTaxResult `json:"new_regime"`
	OldRegime   IncomeTaxResult `json:"old_regime"`
	Recommended string          `json:"recommended"`
	Savings     decimal.Decimal `json:"savings"`
	Error       string          `json:"error,omitempty"`
}

// Asset types for capital gains
const (
	AssetEquity   = "equity"
	AssetDebt     = "debt"
	AssetProperty = "property"
	AssetGold     = "gold"
)

// CapitalGainsInput describes the sale of an asset. When both dates parse
// they take precedence over HoldingPeriodMonths.
type CapitalGainsInput struct {
	PurchasePrice       safemath.Input `yaml:"purchase_price,omitempty" json:"purchase_price"`
	SalePrice           safemath.Input `yaml:"sale_price,omitempty" json:"sale_price"`
	Expenses            safemath.Input `yaml:"expenses,omitempty" json:"expenses"`
	HoldingPeriodMonths safemath.Input `yaml:"holding_period_months,omitempty" json:"holding_period_months"`
	PurchaseDate        safemath.Input `yaml:"purchase_date,omitempty" json:"purchase_date"`
	SaleDate            safemath.Input `yaml:"sale_date,omitempty" json:"sale_date"`
	AssetType           safemath.Input `yaml:"asset_type,omitempty" json:"asset_type"` // equity|debt|property|gold
}

// CapitalGainsResult is the outcome of a capital gains calculation
type CapitalGainsResult struct {
	AssetType           string          `json:"asset_type"`
	HoldingPeriodMonths int             `json:"holding_period_months"`
	IsLongTerm          bool            `json:"is_long_term"`
	CapitalGain         decimal.Decimal `json:"capital_gain"`
	Exemption           decimal.Decimal `json:"exemption"`
	TaxableGain         decimal.Decimal `json:"taxable_gain"`
	TaxRate             decimal.Decimal `json:"tax_rate"`
	Tax                 decimal.Decimal `json:"tax"`
	NetProfit           decimal.Decimal `json:"net_profit"`
	Error               string          `json:"error,omitempty"`
}

// GST modes
const (
	GSTExclusive = "exclusive"
	GSTInclusive = "inclusive"
)

// GSTInput describes an amount subject to GST
type GSTInput struct {
	Amount safemath.Input `yaml:"amount,omitempty" json:"amount"`
	Rate   safemath.Input `yaml:"rate,omitempty" json:"rate"`
	Mode   safemath.Input `yaml:"mode,omitempty" json:"mode"` // exclusive|inclusive
}

// GSTResult splits an amount into its pre-tax and tax components
type GSTResult struct {
	Mode        string          `json:"mode"`
	Rate        decimal.Decimal `json:"rate"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IGST        decimal.Decimal `json:"igst"`
	Error       string          `json:"error,omitempty"`
}

// HRAInput describes annual salary and rent figures
type HRAInput struct {
	BasicSalary       safemath.Input `yaml:"basic_salary,omitempty" json:"basic_salary"`
	DearnessAllowance safemath.Input `yaml:"dearness_allowance,omitempty" json:"dearness_allowance"`
	HRAReceived       safemath.Input `yaml:"hra_received,omitempty" json:"hra_received"`
	RentPaid          safemath.Input `yaml:"rent_paid,omitempty" json:"rent_paid"`
	IsMetro           safemath.Input `yaml:"is_metro,omitempty" json:"is_metro"`
}

// HRAResult is the outcome of an HRA exemption calculation
type HRAResult struct {
	Salary     decimal.Decimal `json:"salary"`
	ActualHRA  decimal.Decimal `json:"actual_hra"`
	CityLimit  decimal.Decimal `json:"city_limit"`
	RentExcess decimal.Decimal `json:"rent_excess"`
	Exemption  decimal.Decimal `json:"exemption"`
	TaxableHRA decimal.Decimal `json:"taxable_hra"`
	Error      string          `json:"error,omitempty"`
}

// SalaryInput describes a cost-to-company package
type SalaryInput struct {
	CTC             safemath.Input `yaml:"ctc,omitempty" json:"ctc"`
	BasicPercent    safemath.Input `yaml:"basic_percent,omitempty" json:"basic_percent"`       // Default: 40 of CTC
	HRAPercent      safemath.Input `yaml:"hra_percent,omitempty" json:"hra_percent"`           // Default: 50 of basic
	PFPercent       safemath.Input `yaml:"pf_percent,omitempty" json:"pf_percent"`             // Default: 12 of basic
	ProfessionalTax safemath.Input `yaml:"professional_tax,omitempty" json:"professional_tax"` // Default: 2400 per year
}

// SalaryResult is the annual and monthly breakdown of a CTC
type SalaryResult struct {
	CTC               decimal.Decimal `json:"ctc"`
	Basic             decimal.Decimal `json:"basic"`
	HRA               decimal.Decimal `json:"hra"`
	SpecialAllowance  decimal.Decimal `json:"special_allowance"`
	ProvidentFund     decimal.Decimal `json:"provident_fund"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	StandardDeduction decimal.Decimal `json:"standard_deduction"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	IncomeTax         decimal.Decimal `json:"income_tax"`
	ProfessionalTax   decimal.Decimal `json:"professional_tax"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	MonthlyGross      decimal.Decimal `json:"monthly_gross"`
	MonthlyDeductions decimal.Decimal `json:"monthly_deductions"`
	MonthlyNet        decimal.Decimal `json:"monthly_net"`
	Error             string          `json:"error,omitempty"`
}

// BreakEvenInput describes a product's cost structure
type BreakEvenInput struct {
	FixedCosts          safemath.Input `yaml:"fixed_costs,omitempty" json:"fixed_costs"`
	VariableCostPerUnit safemath.Input `yaml:"variable_cost_per_unit,omitempty" json:"variable_cost_per_unit"`
	SellingPricePerUnit safemath.Input `yaml:"selling_price_per_unit,omitempty" json:"selling_price_per_unit"`
	TargetProfit        safemath.Input `yaml:"target_profit,omitempty" json:"target_profit"`
}

// BreakEvenResult is the outcome of a break-even analysis
type BreakEvenResult struct {
	ContributionMargin      decimal.Decimal `json:"contribution_margin"`
	ContributionMarginRatio decimal.Decimal `json:"contribution_margin_ratio"`
	BreakEvenUnits          decimal.Decimal `json:"break_even_units"`
	BreakEvenUnitsRounded   int64           `json:"break_even_units_rounded"`
	BreakEvenRevenue        decimal.Decimal `json:"break_even_revenue"`
	UnitsForTargetProfit    decimal.Decimal `json:"units_for_target_profit"`
	RevenueForTargetProfit  decimal.Decimal `json:"revenue_for_target_profit"`
	Error                   string          `json:"error,omitempty"`
}
