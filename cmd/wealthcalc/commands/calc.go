package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// calc <type> key=value...: run one calculator from arguments.
func calcCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <type> [key=value...]",
		Short: "Run one calculator",
		Long: "Run one calculator. Keys are the input field names shown by a request file,\n" +
			"for example: wealthcalc calc sip monthly_investment=5000 annual_return=12 years=10",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.Kind(strings.ToLower(args[0]))
			return a.runPairs(cmd, kind, args[1:])
		},
	}
	return cmd
}

// runPairs runs a single calculation of kind built from key=value pairs
func (a *app) runPairs(cmd *cobra.Command, kind domain.Kind, pairs []string) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown calculator %q (see wealthcalc list)", kind)
	}
	input, err := a.parser.InputFromPairs(kind, pairs)
	if err != nil {
		return err
	}
	a.logger.Debug("calculating",
		zap.String("op", "calc"),
		zap.String("type", string(kind)),
		zap.Strings("args", pairs),
	)
	req := &domain.Request{Calculations: []domain.Calculation{{Name: string(kind), Kind: kind, Input: input}}}
	return a.execute(cmd.Context(), cmd.OutOrStdout(), req)
}
