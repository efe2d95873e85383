package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// run -f <file>: run every calculation of a request file.
func runCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "run -f <file>",
		Short: "Run the calculations in a YAML or JSON request file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.parser.LoadFromFile(file)
			if err != nil {
				a.logger.Error("failed to load request", zap.String("op", "run"), zap.String("file", file), zap.Error(err))
				return err
			}
			a.logger.Info("running request",
				zap.String("op", "run"),
				zap.String("file", file),
				zap.Int("calculations", len(req.Calculations)),
			)
			return a.execute(cmd.Context(), cmd.OutOrStdout(), req)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "request file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
