package commands

import (
	"github.com/spf13/cobra"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// compare-regimes key=value...: income tax under both regimes.
func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare-regimes [key=value...]",
		Aliases: []string{"compare"},
		Short:   "Compare income tax under the new and old regimes",
		Example: "  wealthcalc compare-regimes annual_income=1500000 age=40 deductions=250000",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPairs(cmd, domain.KindTaxRegimeComparison, args)
		},
	}
	return cmd
}
