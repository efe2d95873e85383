package calculation

import (
	"context"
	"fmt"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// Run dispatches a calculation to its calculator by input type. Income tax
// input is routed to CompareTaxRegimes when the kind asks for a comparison.
func (e *Engine) Run(c domain.Calculation) domain.Outcome {
	out := domain.Outcome{Name: c.Name, Kind: c.Kind}
	var result any
	switch in := c.Input.(type) {
	case *domain.SIPInput:
		result = e.CalculateSIP(deref(in))
	case *domain.LumpsumInput:
		result = e.CalculateLumpsum(deref(in))
	case *domain.PPFInput:
		result = e.CalculatePPF(deref(in))
	case *domain.FDInput:
		result = e.CalculateFD(deref(in))
	case *domain.RDInput:
		result = e.CalculateRD(deref(in))
	case *domain.EPFInput:
		result = e.CalculateEPF(deref(in))
	case *domain.GoldInput:
		result = e.CalculateGold(deref(in))
	case *domain.LoanInput:
		result = e.CalculateLoan(deref(in))
	case *domain.HomeLoanInput:
		result = e.CalculateHomeLoan(deref(in))
	case *domain.CarLoanInput:
		result = e.CalculateCarLoan(deref(in))
	case *domain.PersonalLoanInput:
		result = e.CalculatePersonalLoan(deref(in))
	case *domain.MortgageInput:
		result = e.CalculateMortgage(deref(in))
	case *domain.IncomeTaxInput:
		if c.Kind == domain.KindTaxRegimeComparison {
			result = e.CompareTaxRegimes(deref(in))
		} else {
			result = e.CalculateIncomeTax(deref(in))
		}
	case *domain.CapitalGainsInput:
		result = e.CalculateCapitalGains(deref(in))
	case *domain.GSTInput:
		result = e.CalculateGST(deref(in))
	case *domain.HRAInput:
		result = e.CalculateHRA(deref(in))
	case *domain.SalaryInput:
		result = e.CalculateSalary(deref(in))
	case *domain.BreakEvenInput:
		result = e.CalculateBreakEven(deref(in))
	case *domain.RetirementInput:
		result = e.CalculateRetirement(deref(in))
	case *domain.MutualFundInput:
		result = e.CalculateMutualFund(deref(in))
	default:
		out.Error = fmt.Sprintf("unsupported input %T for calculation %q", c.Input, c.Name)
		e.Logger.Warnf("run: %s", out.Error)
		return out
	}
	out.Result = result
	out.Error = errorOf(result)
	return out
}

// RunAll runs every calculation of a request in order. It stops early only
// when ctx is cancelled.
func (e *Engine) RunAll(ctx context.Context, req *domain.Request) (*domain.Report, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	report := &domain.Report{
		GeneratedAt: nowFunc(),
		Assumptions: e.Rates.GenerateAssumptions(),
		Outcomes:    make([]domain.Outcome, 0, len(req.Calculations)),
	}
	for _, c := range req.Calculations {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before %q: %w", c.Name, err)
		}
		out := e.Run(c)
		if out.Error != "" {
			e.Logger.Warnf("calculation %q (%s): %s", c.Name, c.Kind, out.Error)
		} else {
			e.Logger.Debugf("calculation %q (%s) done", c.Name, c.Kind)
		}
		report.Outcomes = append(report.Outcomes, out)
	}
	e.Logger.Infof("ran %d calculations", len(report.Outcomes))
	return report, nil
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
