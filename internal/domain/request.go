package domain

import (
	"sort"
	"time"
)

// Kind names a calculator
type Kind string

// Calculator kinds
const (
	KindSIP                 Kind = "sip"
	KindLumpsum             Kind = "lumpsum"
	KindPPF                 Kind = "ppf"
	KindFD                  Kind = "fd"
	KindRD                  Kind = "rd"
	KindEPF                 Kind = "epf"
	KindGold                Kind = "gold"
	KindLoan                Kind = "loan"
	KindHomeLoan            Kind = "home_loan"
	KindCarLoan             Kind = "car_loan"
	KindPersonalLoan        Kind = "personal_loan"
	KindMortgage            Kind = "mortgage"
	KindIncomeTax           Kind = "income_tax"
	KindTaxRegimeComparison Kind = "tax_regime_comparison"
	KindCapitalGains        Kind = "capital_gains"
	KindGST                 Kind = "gst"
	KindHRA                 Kind = "hra"
	KindSalary              Kind = "salary"
	KindBreakEven           Kind = "break_even"
	KindRetirement          Kind = "retirement"
	KindMutualFund          Kind = "mutual_fund"
)

var kindDescriptions = map[Kind]string{
	KindSIP:                 "Systematic investment plan with optional annual step-up",
	KindLumpsum:             "One-time investment compounded annually",
	KindPPF:                 "Public Provident Fund at the statutory rate",
	KindFD:                  "Fixed deposit with monthly, quarterly or yearly compounding",
	KindRD:                  "Recurring deposit with monthly deposits",
	KindEPF:                 "Employee Provident Fund with employee and employer shares",
	KindGold:                "Gold holding under compound annual appreciation",
	KindLoan:                "Amortizing loan with EMI and optional extra payment",
	KindHomeLoan:            "Home loan from property value and down payment",
	KindCarLoan:             "Car loan net of down payment and trade-in",
	KindPersonalLoan:        "Personal loan with processing fee",
	KindMortgage:            "Mortgage with tax, insurance, PMI and HOA pass-throughs",
	KindIncomeTax:           "Income tax under the new or old regime",
	KindTaxRegimeComparison: "Income tax under both regimes with a recommendation",
	KindCapitalGains:        "Capital gains tax by asset type and holding period",
	KindGST:                 "GST on an exclusive or inclusive amount",
	KindHRA:                 "House rent allowance exemption",
	KindSalary:              "CTC breakdown into take-home salary",
	KindBreakEven:           "Break-even units and revenue",
	KindRetirement:          "Retirement corpus projection and shortfall",
	KindMutualFund:          "Mutual fund returns for lumpsum or SIP investments",
}

// Kinds returns every calculator kind in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindDescriptions))
	for k := range kindDescriptions {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Valid reports whether k names a known calculator
func (k Kind) Valid() bool {
	_, ok := kindDescriptions[k]
	return ok
}

// Description returns a one-line summary of the calculator
func (k Kind) Description() string {
	return kindDescriptions[k]
}

// Calculation is one named calculator invocation. Input holds a pointer to
// the calculator's input struct (for example *SIPInput).
type Calculation struct {
	Name  string `yaml:"name" json:"name"`
	Kind  Kind   `yaml:"type" json:"type"`
	Input any    `yaml:"input" json:"input"`
}

// Request is a batch of calculations
type Request struct {
	Calculations []Calculation `yaml:"calculations" json:"calculations"`
}

// Outcome pairs a calculation with its result
type Outcome struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"type"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report collects the outcomes of a request
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Assumptions []string  `json:"assumptions,omitempty"`
	Outcomes    []Outcome `json:"outcomes"`
}
