package output

import (
	"strings"
	"testing"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

func TestSummaryFieldsFlattensEmbeddedAndNested(t *testing.T) {
	res := domain.RegimeComparisonResult{
		NewRegime:   domain.IncomeTaxResult{Regime: "new", TotalTax: d("33800"), EffectiveRate: d("3.38")},
		OldRegime:   domain.IncomeTaxResult{Regime: "old", TotalTax: d("75400")},
		Recommended: "new",
		Savings:     d("41600"),
	}
	fields := SummaryFields(&res)
	byKey := map[string]Field{}
	for _, f := range fields {
		byKey[f.Key] = f
	}
	if got := byKey["new_regime.total_tax"].Display(); got != "₹33,800.00" {
		t.Fatalf("new_regime.total_tax = %q", got)
	}
	if got := byKey["new_regime.effective_rate"].Display(); got != "3.38%" {
		t.Fatalf("new_regime.effective_rate = %q", got)
	}
	if got := byKey["recommended"].Raw(); got != "new" {
		t.Fatalf("recommended = %q", got)
	}
	if _, ok := byKey["error"]; ok {
		t.Fatalf("error field should be skipped")
	}

	car := SummaryFields(domain.CarLoanResult{LoanResult: domain.LoanResult{EMI: d("10"), PayoffMonths: 60}})
	if car[0].Key != "principal" || car[1].Key != "emi" {
		t.Fatalf("embedded fields not first: %v", car[:2])
	}
	for _, f := range car {
		if f.Key == "payoff_months" && f.Raw() != "60" {
			t.Fatalf("payoff_months = %q", f.Raw())
		}
	}

	if SummaryFields(nil) != nil || SummaryFields(42) != nil || SummaryFields((*domain.SIPResult)(nil)) != nil {
		t.Fatalf("non-struct results should have no fields")
	}
}

func TestDecimalKind(t *testing.T) {
	cases := map[string]fieldKind{
		"maturity_amount":           kindMoney,
		"interest_rate":             kindPercent,
		"cagr":                      kindPercent,
		"absolute_return":           kindPercent,
		"contribution_margin_ratio": kindPercent,
		"loan_to_value":             kindPercent,
		"break_even_units":          kindNumber,
		"total_units":               kindNumber,
		"nav":                       kindNumber,
		"new_regime.marginal_rate":  kindPercent,
		"final_price_per_unit":      kindMoney,
	}
	for key, want := range cases {
		if got := decimalKind(key); got != want {
			t.Errorf("decimalKind(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestScheduleFindsNestedSlice(t *testing.T) {
	res := domain.RegimeComparisonResult{
		NewRegime: domain.IncomeTaxResult{Brackets: []domain.TaxBracketEntry{
			{Range: "0 - 300000", Rate: d("0"), TaxableAmount: d("300000"), Tax: d("0")},
			{Range: "300000 - 700000", Rate: d("5"), TaxableAmount: d("400000"), Tax: d("20000")},
		}},
	}
	header, rows := Schedule(res)
	if strings.Join(header, ",") != "range,rate,taxable_amount,tax" {
		t.Fatalf("header = %v", header)
	}
	if len(rows) != 2 || strings.Join(rows[1], ",") != "300000 - 700000,5,400000,20000" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestScheduleKeepsEmptyColumns(t *testing.T) {
	res := domain.MutualFundResult{Schedule: []domain.MutualFundEntry{{Instalment: 1, NAV: d("50"), Amount: d("1000"), Units: d("20"), TotalUnits: d("20"), Value: d("1000")}}}
	header, rows := Schedule(res)
	if len(rows) != 1 || len(rows[0]) != len(header) {
		t.Fatalf("row width %d does not match header width %d", len(rows[0]), len(header))
	}
	if rows[0][1] != "" {
		t.Fatalf("date column = %q, want empty", rows[0][1])
	}
}

func TestScheduleNone(t *testing.T) {
	if h, r := Schedule(domain.GSTResult{}); h != nil || r != nil {
		t.Fatalf("GST has no schedule, got %v %v", h, r)
	}
	if h, r := Schedule(domain.SIPResult{MonthlyBreakdown: []domain.MonthlyEntry{}}); h != nil || r != nil {
		t.Fatalf("empty slices are not schedules")
	}
}

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"maturity_amount":      "Maturity Amount",
		"emi":                  "EMI",
		"new_regime.total_tax": "New Regime Total Tax",
		"cgst":                 "CGST",
	}
	for in, want := range cases {
		if got := Label(in); got != want {
			t.Errorf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBoolToString(t *testing.T) {
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
}
