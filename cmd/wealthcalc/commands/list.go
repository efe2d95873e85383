package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range domain.Kinds() {
				fmt.Fprintf(w, "%s\t%s\n", k, k.Description())
			}
			return w.Flush()
		},
	}
	return cmd
}
