package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/output"
)

// example: print or save a starter request file.
func exampleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example request file (or save it with --output)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := a.parser.CreateExampleRequest()
			if a.outputPath != "" {
				if err := output.SaveRequest(req, a.outputPath); err != nil {
					return err
				}
				a.logger.Info("example written", zap.String("op", "example"), zap.String("file", a.outputPath))
				return nil
			}
			data, err := yaml.Marshal(req)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	return cmd
}
