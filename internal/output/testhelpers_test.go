package output

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildTestReport() *domain.Report {
	return &domain.Report{
		GeneratedAt: time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC),
		Assumptions: []string{"PPF interest: 7.1% p.a."},
		Outcomes: []domain.Outcome{
			{
				Name: "sip",
				Kind: domain.KindSIP,
				Result: domain.SIPResult{
					TotalInvestment: d("12000"),
					MaturityAmount:  d("12809.33"),
					TotalGains:      d("809.33"),
					YearlyBreakdown: []domain.YearlyEntry{
						{Year: 1, Contribution: d("12000"), Interest: d("809.33"), Balance: d("12809.33"), TotalContributed: d("12000")},
					},
				},
			},
			{
				Name: "car",
				Kind: domain.KindCarLoan,
				Result: domain.CarLoanResult{
					LoanResult: domain.LoanResult{Principal: d("400000"), EMI: d("7929.04")},
					CarPrice:   d("500000"),
				},
			},
			{
				Name:   "bad",
				Kind:   domain.KindBreakEven,
				Result: domain.BreakEvenResult{Error: "Selling price must exceed variable cost"},
				Error:  "Selling price must exceed variable cost",
			},
		},
	}
}
