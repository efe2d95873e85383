package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/pkg/safemath"
)

var (
	// ErrUnknownCalculator is returned for a missing or unrecognised calculation type
	ErrUnknownCalculator = errors.New("unknown calculator")
	// ErrEmptyRequest is returned when a request holds no calculations
	ErrEmptyRequest = errors.New("no calculations provided")
)

// inputFactories builds an empty input for each calculator kind
var inputFactories = map[domain.Kind]func() any{
	domain.KindSIP:                 func() any { return &domain.SIPInput{} },
	domain.KindLumpsum:             func() any { return &domain.LumpsumInput{} },
	domain.KindPPF:                 func() any { return &domain.PPFInput{} },
	domain.KindFD:                  func() any { return &domain.FDInput{} },
	domain.KindRD:                  func() any { return &domain.RDInput{} },
	domain.KindEPF:                 func() any { return &domain.EPFInput{} },
	domain.KindGold:                func() any { return &domain.GoldInput{} },
	domain.KindLoan:                func() any { return &domain.LoanInput{} },
	domain.KindHomeLoan:            func() any { return &domain.HomeLoanInput{} },
	domain.KindCarLoan:             func() any { return &domain.CarLoanInput{} },
	domain.KindPersonalLoan:        func() any { return &domain.PersonalLoanInput{} },
	domain.KindMortgage:            func() any { return &domain.MortgageInput{} },
	domain.KindIncomeTax:           func() any { return &domain.IncomeTaxInput{} },
	domain.KindTaxRegimeComparison: func() any { return &domain.IncomeTaxInput{} },
	domain.KindCapitalGains:        func() any { return &domain.CapitalGainsInput{} },
	domain.KindGST:                 func() any { return &domain.GSTInput{} },
	domain.KindHRA:                 func() any { return &domain.HRAInput{} },
	domain.KindSalary:              func() any { return &domain.SalaryInput{} },
	domain.KindBreakEven:           func() any { return &domain.BreakEvenInput{} },
	domain.KindRetirement:          func() any { return &domain.RetirementInput{} },
	domain.KindMutualFund:          func() any { return &domain.MutualFundInput{} },
}

// NewInput returns a pointer to an empty input struct for kind
func NewInput(kind domain.Kind) (any, error) {
	factory, ok := inputFactories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalculator, kind)
	}
	return factory(), nil
}

// rawCalculation defers decoding of the input until the type is known
type rawCalculation struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Input yaml.Node `yaml:"input"`
}

type rawRequest struct {
	Calculations []rawCalculation `yaml:"calculations"`
}

// InputParser handles parsing of calculation request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a request from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Request, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a request document. JSON is accepted as a subset of YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Request, error) {
	var raw rawRequest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(raw.Calculations) == 0 {
		return nil, ErrEmptyRequest
	}

	req := &domain.Request{Calculations: make([]domain.Calculation, 0, len(raw.Calculations))}
	for i, rc := range raw.Calculations {
		kind := domain.Kind(strings.ToLower(strings.TrimSpace(rc.Type)))
		if kind == "" {
			return nil, fmt.Errorf("calculation %d: type is required: %w", i+1, ErrUnknownCalculator)
		}
		input, err := NewInput(kind)
		if err != nil {
			return nil, fmt.Errorf("calculation %d: %w", i+1, err)
		}
		if rc.Input.Kind != 0 {
			if err := decodeStrict(&rc.Input, input); err != nil {
				return nil, fmt.Errorf("calculation %d (%s): invalid input: %w", i+1, kind, err)
			}
		}
		name := strings.TrimSpace(rc.Name)
		if name == "" {
			name = fmt.Sprintf("%s-%d", kind, i+1)
		}
		req.Calculations = append(req.Calculations, domain.Calculation{Name: name, Kind: kind, Input: input})
	}
	return req, nil
}

// InputFromPairs builds the input for kind from key=value arguments, as
// given on a command line. Keys are the input's YAML field names.
func (ip *InputParser) InputFromPairs(kind domain.Kind, pairs []string) (any, error) {
	input, err := NewInput(kind)
	if err != nil {
		return nil, err
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", pair)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strings.TrimSpace(value)},
		)
	}
	if err := decodeStrict(node, input); err != nil {
		return nil, fmt.Errorf("invalid %s input: %w", kind, err)
	}
	return input, nil
}

// decodeStrict decodes node into out, rejecting unknown fields
func decodeStrict(node *yaml.Node, out any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// CreateExampleRequest creates an example request covering the common calculators
func (ip *InputParser) CreateExampleRequest() *domain.Request {
	in := safemath.In
	return &domain.Request{
		Calculations: []domain.Calculation{
			{
				Name: "Monthly SIP",
				Kind: domain.KindSIP,
				Input: &domain.SIPInput{
					MonthlyInvestment: in("₹5,000"),
					AnnualReturn:      in(12),
					Years:             in(10),
					StepUpPercent:     in(10),
				},
			},
			{
				Name: "Bank FD",
				Kind: domain.KindFD,
				Input: &domain.FDInput{
					Principal:   in(100000),
					AnnualRate:  in(7),
					Years:       in(5),
					Compounding: in("quarterly"),
				},
			},
			{
				Name: "PPF",
				Kind: domain.KindPPF,
				Input: &domain.PPFInput{
					YearlyInvestment: in(150000),
					Years:            in(15),
				},
			},
			{
				Name: "Home Loan",
				Kind: domain.KindHomeLoan,
				Input: &domain.HomeLoanInput{
					PropertyValue: in(7500000),
					DownPayment:   in(1500000),
					AnnualRate:    in(8.5),
					Years:         in(20),
				},
			},
			{
				Name: "Which Regime",
				Kind: domain.KindTaxRegimeComparison,
				Input: &domain.IncomeTaxInput{
					AnnualIncome: in(1500000),
					Age:          in(35),
					Deductions:   in(200000),
				},
			},
			{
				Name: "Retirement",
				Kind: domain.KindRetirement,
				Input: &domain.RetirementInput{
					CurrentAge:          in(30),
					RetirementAge:       in(60),
					CurrentSavings:      in(500000),
					MonthlyContribution: in(20000),
					ExpectedReturn:      in(11),
					MonthlyExpenses:     in(60000),
				},
			},
		},
	}
}
