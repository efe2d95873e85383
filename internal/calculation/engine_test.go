package calculation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// recordingLogger keeps formatted messages per level
type recordingLogger struct {
	debug, info, warn, errs []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

func TestNewEngineOptions(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, domain.DefaultRates(), e.Rates)
	assert.IsType(t, NopLogger{}, e.Logger)

	rates := domain.DefaultRates()
	rates.PPFRate = dec("8")
	log := &recordingLogger{}
	e = NewEngine(WithRates(rates), WithLogger(log))
	assert.True(t, e.Rates.PPFRate.Equal(dec("8")))
	assert.Same(t, log, e.Logger)

	e.SetLogger(nil)
	assert.IsType(t, NopLogger{}, e.Logger)

	assert.Equal(t, rates, NewEngineWithRates(rates).Rates)
}

func TestGuardRecoversPanic(t *testing.T) {
	log := &recordingLogger{}
	e := NewEngine(WithLogger(log))

	res := guard(e, "gst", func() domain.GSTResult { panic("boom") })
	assert.Equal(t, domain.GSTResult{Error: "calculation failed: gst"}, res)
	require.Len(t, log.errs, 1)
	assert.Contains(t, log.errs[0], "boom")

	// embedded results take the error on the promoted field
	home := guard(e, "home_loan", func() domain.HomeLoanResult { panic("boom") })
	assert.Equal(t, "calculation failed: home_loan", home.Error)

	// types without an Error field come back as their zero value
	n := guard(e, "count", func() int { panic("boom") })
	assert.Zero(t, n)
}

func TestErrorOf(t *testing.T) {
	assert.Equal(t, "x", errorOf(domain.SIPResult{Error: "x"}))
	assert.Equal(t, "y", errorOf(&domain.FDResult{Error: "y"}))
	assert.Equal(t, "z", errorOf(domain.CarLoanResult{LoanResult: domain.LoanResult{Error: "z"}}))
	assert.Equal(t, "", errorOf((*domain.FDResult)(nil)))
	assert.Equal(t, "", errorOf(42))
	assert.Equal(t, "", errorOf(nil))
}

func TestRunDispatch(t *testing.T) {
	e := NewEngine()
	tests := []struct {
		name     string
		calc     domain.Calculation
		wantType any
	}{
		{"sip", domain.Calculation{Kind: domain.KindSIP, Input: &domain.SIPInput{MonthlyInvestment: in(1000), AnnualReturn: in(12), Years: in(1)}}, domain.SIPResult{}},
		{"fd", domain.Calculation{Kind: domain.KindFD, Input: &domain.FDInput{Principal: in(1000), AnnualRate: in(7), Years: in(1)}}, domain.FDResult{}},
		{"income tax", domain.Calculation{Kind: domain.KindIncomeTax, Input: &domain.IncomeTaxInput{AnnualIncome: in(900000)}}, domain.IncomeTaxResult{}},
		{"regime comparison", domain.Calculation{Kind: domain.KindTaxRegimeComparison, Input: &domain.IncomeTaxInput{AnnualIncome: in(900000)}}, domain.RegimeComparisonResult{}},
		{"gst", domain.Calculation{Kind: domain.KindGST, Input: &domain.GSTInput{Amount: in(100), Rate: in(18)}}, domain.GSTResult{}},
		{"mortgage", domain.Calculation{Kind: domain.KindMortgage, Input: &domain.MortgageInput{}}, domain.MortgageResult{}},
		{"nil input pointer", domain.Calculation{Kind: domain.KindHRA, Input: (*domain.HRAInput)(nil)}, domain.HRAResult{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.calc.Name = tt.name
			out := e.Run(tt.calc)
			assert.Equal(t, tt.name, out.Name)
			assert.Equal(t, tt.calc.Kind, out.Kind)
			assert.IsType(t, tt.wantType, out.Result)
		})
	}
}

func TestRunCopiesResultError(t *testing.T) {
	out := NewEngine().Run(domain.Calculation{
		Name:  "bad tax",
		Kind:  domain.KindIncomeTax,
		Input: &domain.IncomeTaxInput{AnnualIncome: in(-1)},
	})
	require.NotEmpty(t, out.Error)
	assert.Equal(t, out.Error, out.Result.(domain.IncomeTaxResult).Error)
}

func TestRunUnsupportedInput(t *testing.T) {
	log := &recordingLogger{}
	out := NewEngine(WithLogger(log)).Run(domain.Calculation{Name: "odd", Kind: domain.KindSIP, Input: domain.SIPInput{}})
	assert.Nil(t, out.Result)
	assert.Contains(t, out.Error, "unsupported input")
	assert.Len(t, log.warn, 1)
}

func TestRunAll(t *testing.T) {
	fixed := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	t.Cleanup(func() { SetNowFunc(nil) })

	log := &recordingLogger{}
	req := &domain.Request{Calculations: []domain.Calculation{
		{Name: "gst", Kind: domain.KindGST, Input: &domain.GSTInput{Amount: in(1000), Rate: in(18)}},
		{Name: "break even", Kind: domain.KindBreakEven, Input: &domain.BreakEvenInput{FixedCosts: in(100), VariableCostPerUnit: in(10), SellingPricePerUnit: in(5)}},
	}}
	report, err := NewEngine(WithLogger(log)).RunAll(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, fixed, report.GeneratedAt)
	assert.NotEmpty(t, report.Assumptions)
	require.Len(t, report.Outcomes, 2)
	assert.Empty(t, report.Outcomes[0].Error)
	assert.Equal(t, errNoMargin, report.Outcomes[1].Error)
	assert.Len(t, log.warn, 1)
	assert.Len(t, log.info, 1)
}

func TestRunAllErrors(t *testing.T) {
	_, err := NewEngine().RunAll(context.Background(), nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewEngine().RunAll(ctx, &domain.Request{Calculations: []domain.Calculation{{Name: "x", Kind: domain.KindGST, Input: &domain.GSTInput{}}}})
	assert.ErrorIs(t, err, context.Canceled)

	report, err := NewEngine().RunAll(ctx, &domain.Request{})
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
}
