package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

func TestCalculateIncomeTaxNewRegime(t *testing.T) {
	res := NewEngine().CalculateIncomeTax(domain.IncomeTaxInput{
		AnnualIncome: in(1000000),
		Age:          in(30),
		Deductions:   in(100000),
		Regime:       in("new"),
	})

	require.Empty(t, res.Error)
	assert.Equal(t, domain.RegimeNew, res.Regime)
	assertDecEqual(t, "825000", res.TaxableIncome)
	assertDecEqual(t, "32500", res.IncomeTax) // 400000*5% + 125000*10%
	assertDecEqual(t, "1300", res.Cess)
	assert.True(t, res.Cess.Equal(res.IncomeTax.Mul(dec("0.04"))))
	assertDecEqual(t, "33800", res.TotalTax)
	assertDecEqual(t, "10", res.MarginalRate)
	assertDecEqual(t, "3.38", res.EffectiveRate)
	assertDecEqual(t, "966200", res.NetIncome)

	require.Len(t, res.Brackets, 3)
	for _, b := range res.Brackets {
		assert.True(t, b.Rate.LessThanOrEqual(dec("10")), "slab %s should not be touched", b.Range)
	}
	assert.Equal(t, "700000 - 1000000", res.Brackets[2].Range)
}

func TestCalculateIncomeTaxBracketSum(t *testing.T) {
	e := NewEngine()
	for _, income := range []any{0, 250000, 699999.99, "12,34,567", 1500000, 2000000, 98765432} {
		for _, regime := range []string{domain.RegimeNew, domain.RegimeOld} {
			res := e.CalculateIncomeTax(domain.IncomeTaxInput{AnnualIncome: in(income), Regime: in(regime)})
			require.Empty(t, res.Error)
			sum := decimal.Zero
			taxed := decimal.Zero
			for _, b := range res.Brackets {
				sum = sum.Add(b.Tax)
				taxed = taxed.Add(b.TaxableAmount)
			}
			assert.True(t, sum.Equal(res.IncomeTax), "%v %s: brackets sum %s, tax %s", income, regime, sum, res.IncomeTax)
			assert.True(t, taxed.Equal(res.TaxableIncome), "%v %s: bracket amounts %s, taxable %s", income, regime, taxed, res.TaxableIncome)
		}
	}
}

func TestCalculateIncomeTaxSlabs(t *testing.T) {
	tests := []struct {
		name         string
		income       int
		age          int
		regime       string
		wantTaxable  string
		wantTax      string
		wantMarginal string
	}{
		{"new regime top slab", 2000000, 30, "new", "1925000", "267500", "30"},
		{"new regime below first slab", 350000, 30, "new", "275000", "0", "0"},
		{"old regime standard", 1000000, 30, "old", "950000", "102500", "20"},
		{"old regime senior", 800000, 65, "old", "750000", "60000", "20"},
		{"old regime super senior skips empty slab", 900000, 85, "old", "850000", "70000", "20"},
		{"regime defaults to new", 1000000, 30, "", "925000", "42500", "10"},
		{"unknown regime is new", 1000000, 30, "flat", "925000", "42500", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewEngine().CalculateIncomeTax(domain.IncomeTaxInput{
				AnnualIncome: in(tt.income),
				Age:          in(tt.age),
				Regime:       in(tt.regime),
			})
			require.Empty(t, res.Error)
			assertDecEqual(t, tt.wantTaxable, res.TaxableIncome)
			assertDecEqual(t, tt.wantTax, res.IncomeTax)
			assertDecEqual(t, tt.wantMarginal, res.MarginalRate)
		})
	}
}

func TestCalculateIncomeTaxValidation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.IncomeTaxInput
		want  string
	}{
		{"negative income", domain.IncomeTaxInput{AnnualIncome: in(-1), Age: in(30)}, "Annual income cannot be negative"},
		{"negative formatted income", domain.IncomeTaxInput{AnnualIncome: in("-₹5,00,000")}, "Annual income cannot be negative"},
		{"too young", domain.IncomeTaxInput{AnnualIncome: in(500000), Age: in(17)}, "Age must be between 18 and 120"},
		{"too old", domain.IncomeTaxInput{AnnualIncome: in(500000), Age: in(121)}, "Age must be between 18 and 120"},
		{"negative deductions", domain.IncomeTaxInput{AnnualIncome: in(500000), Age: in(40), Deductions: in(-10)}, "Deductions cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewEngine().CalculateIncomeTax(tt.input)
			assert.Equal(t, tt.want, res.Error)
			assert.Equal(t, domain.IncomeTaxResult{Error: tt.want}, res)
		})
	}
}

func TestCalculateIncomeTaxAgeBoundaries(t *testing.T) {
	e := NewEngine()
	for _, age := range []any{18, 120, nil, "unknown"} {
		res := e.CalculateIncomeTax(domain.IncomeTaxInput{AnnualIncome: in(500000), Age: in(age)})
		assert.Empty(t, res.Error, "age %v", age)
	}
}

func TestCompareTaxRegimes(t *testing.T) {
	e := NewEngine()

	res := e.CompareTaxRegimes(domain.IncomeTaxInput{AnnualIncome: in(1000000), Age: in(30), Deductions: in(150000)})
	require.Empty(t, res.Error)
	assertDecEqual(t, "28600", res.NewRegime.TotalTax)
	assertDecEqual(t, "75400", res.OldRegime.TotalTax)
	assert.Equal(t, domain.RegimeNew, res.Recommended)
	assertDecEqual(t, "46800", res.Savings)

	invalid := e.CompareTaxRegimes(domain.IncomeTaxInput{AnnualIncome: in(-5)})
	assert.Equal(t, "Annual income cannot be negative", invalid.Error)
	assert.Empty(t, invalid.Recommended)
}

func TestCompareTaxRegimesTieAndSuperSenior(t *testing.T) {
	res := NewEngine().CompareTaxRegimes(domain.IncomeTaxInput{AnnualIncome: in(800000), Age: in(45), Deductions: in(500000)})
	require.Empty(t, res.Error)
	// old: taxable 250000, no tax; new: taxable 225000, no tax
	assert.Equal(t, domain.RegimeNew, res.Recommended)
	assert.True(t, res.Savings.IsZero())

	// a super senior's 5L exemption beats the new regime's slabs
	res = NewEngine().CompareTaxRegimes(domain.IncomeTaxInput{AnnualIncome: in(550000), Age: in(85)})
	assert.Equal(t, domain.RegimeOld, res.Recommended)
	assert.True(t, res.OldRegime.TotalTax.IsZero())
	assertDecEqual(t, "9100", res.Savings)
}

func TestApplyBracketsSkipsZeroWidth(t *testing.T) {
	brackets := []domain.TaxBracket{
		{Min: dec("0"), Max: dec("100"), Rate: dec("0")},
		{Min: dec("100"), Max: dec("100"), Rate: dec("5")},
		{Min: dec("100"), Max: topOfScale, Rate: dec("10")},
	}
	tax, marginal, entries := ApplyBrackets(dec("300"), brackets)
	assertDecEqual(t, "20", tax)
	assertDecEqual(t, "10", marginal)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Above 100", entries[1].Range)
}
