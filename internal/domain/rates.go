package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rates holds the statutory and market constants the calculators depend on.
// All rates are percentages (7.1 means 7.1%).
type Rates struct {
	PPFRate       decimal.Decimal `yaml:"ppf_rate" json:"ppf_rate" mapstructure:"ppf_rate"`                      // Default: 7.1
	PPFMaxDeposit decimal.Decimal `yaml:"ppf_max_deposit" json:"ppf_max_deposit" mapstructure:"ppf_max_deposit"` // Default: 150000 per year
	EPFRate       decimal.Decimal `yaml:"epf_rate" json:"epf_rate" mapstructure:"epf_rate"`                      // Default: 8.5

	EPFEmployeeShare decimal.Decimal `yaml:"epf_employee_share" json:"epf_employee_share" mapstructure:"epf_employee_share"` // Default: 12
	EPFEmployerShare decimal.Decimal `yaml:"epf_employer_share" json:"epf_employer_share" mapstructure:"epf_employer_share"` // Default: 3.67

	// Income tax
	CessRate                decimal.Decimal `yaml:"cess_rate" json:"cess_rate" mapstructure:"cess_rate"`                                                 // Default: 4
	StandardDeductionNew    decimal.Decimal `yaml:"standard_deduction_new" json:"standard_deduction_new" mapstructure:"standard_deduction_new"`          // Default: 75000
	StandardDeductionOld    decimal.Decimal `yaml:"standard_deduction_old" json:"standard_deduction_old" mapstructure:"standard_deduction_old"`          // Default: 50000
	SalaryStandardDeduction decimal.Decimal `yaml:"salary_standard_deduction" json:"salary_standard_deduction" mapstructure:"salary_standard_deduction"` // Default: 50000
	ProfessionalTax         decimal.Decimal `yaml:"professional_tax" json:"professional_tax" mapstructure:"professional_tax"`                            // Default: 2400 per year

	// Capital gains
	EquityLTCGExemption decimal.Decimal `yaml:"equity_ltcg_exemption" json:"equity_ltcg_exemption" mapstructure:"equity_ltcg_exemption"` // Default: 100000
	EquityLTCGRate      decimal.Decimal `yaml:"equity_ltcg_rate" json:"equity_ltcg_rate" mapstructure:"equity_ltcg_rate"`                // Default: 10
	EquitySTCGRate      decimal.Decimal `yaml:"equity_stcg_rate" json:"equity_stcg_rate" mapstructure:"equity_stcg_rate"`                // Default: 15
	OtherLTCGRate       decimal.Decimal `yaml:"other_ltcg_rate" json:"other_ltcg_rate" mapstructure:"other_ltcg_rate"`                   // Default: 20
	SlabProxyRate       decimal.Decimal `yaml:"slab_proxy_rate" json:"slab_proxy_rate" mapstructure:"slab_proxy_rate"`                   // Default: 30
}

// DefaultRates returns the rates in force for FY 2024-25.
func DefaultRates() Rates {
	return Rates{
		PPFRate:                 decimal.NewFromFloat(7.1),
		PPFMaxDeposit:           decimal.NewFromInt(150000),
		EPFRate:                 decimal.NewFromFloat(8.5),
		EPFEmployeeShare:        decimal.NewFromInt(12),
		EPFEmployerShare:        decimal.NewFromFloat(3.67),
		CessRate:                decimal.NewFromInt(4),
		StandardDeductionNew:    decimal.NewFromInt(75000),
		StandardDeductionOld:    decimal.NewFromInt(50000),
		SalaryStandardDeduction: decimal.NewFromInt(50000),
		ProfessionalTax:         decimal.NewFromInt(2400),
		EquityLTCGExemption:     decimal.NewFromInt(100000),
		EquityLTCGRate:          decimal.NewFromInt(10),
		EquitySTCGRate:          decimal.NewFromInt(15),
		OtherLTCGRate:           decimal.NewFromInt(20),
		SlabProxyRate:           decimal.NewFromInt(30),
	}
}

// GenerateAssumptions lists the rates in effect in human-readable form.
func (r Rates) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("PPF interest: %s%% p.a., deposits capped at %s per year", r.PPFRate, r.PPFMaxDeposit),
		fmt.Sprintf("EPF interest: %s%% p.a. (employee %s%%, employer %s%% of basic)", r.EPFRate, r.EPFEmployeeShare, r.EPFEmployerShare),
		fmt.Sprintf("Health & education cess: %s%% of income tax", r.CessRate),
		fmt.Sprintf("Standard deduction: %s new regime, %s old regime", r.StandardDeductionNew, r.StandardDeductionOld),
		fmt.Sprintf("Equity LTCG: %s%% above %s; equity STCG: %s%%", r.EquityLTCGRate, r.EquityLTCGExemption, r.EquitySTCGRate),
		fmt.Sprintf("Other assets: LTCG %s%%, STCG at %s%% slab proxy", r.OtherLTCGRate, r.SlabProxyRate),
	}
}

// TaxBracket represents an income tax slab
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`   // Lower bound of the slab
	Max  decimal.Decimal `yaml:"max" json:"max"`   // Upper bound (use 999999999999 for the top slab)
	Rate decimal.Decimal `yaml:"rate" json:"rate"` // Percentage rate for this slab
}
