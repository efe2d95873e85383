package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/calculation"
	"github.com/vishalpa8/wealthwisegrow-sub000/internal/config"
	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
	"github.com/vishalpa8/wealthwisegrow-sub000/internal/output"
)

// app holds the flags and the dependencies built from them
type app struct {
	configPath string
	format     string
	logLevel   string
	logFormat  string
	outputPath string

	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.Engine
	parser   *config.InputParser
}

// Execute runs the wealthcalc CLI with os.Args
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{parser: config.NewInputParser()}
	root := &cobra.Command{
		Use:          "wealthcalc",
		Short:        "Personal-finance calculators: investments, loans and Indian tax",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "settings file (default ./wealthcalc.yaml or ~/.config/wealthcalc/wealthcalc.yaml)")
	root.PersistentFlags().StringVar(&a.format, "format", "", "report format: console, json, csv, schedule-csv, html")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console, json")
	root.PersistentFlags().StringVarP(&a.outputPath, "output", "o", "", "write the report to a file instead of stdout")

	root.AddCommand(calcCmd(a), runCmd(a), compareCmd(a), listCmd(), exampleCmd(a))
	return root
}

// setup loads settings and builds the logger and engine
func (a *app) setup() error {
	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	if a.format != "" {
		settings.Output.Format = a.format
	}
	a.settings = settings

	logger, err := initializeLogger(settings.Logging, a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.logger = logger
	a.engine = calculation.NewEngine(
		calculation.WithRates(settings.Rates),
		calculation.WithLogger(logger.Sugar()),
	)
	logger.Debug("settings loaded",
		zap.String("op", "setup"),
		zap.String("config", a.configPath),
		zap.String("format", settings.Output.Format),
	)
	return nil
}

// execute runs a request and writes the report
func (a *app) execute(ctx context.Context, out io.Writer, req *domain.Request) error {
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := a.engine.RunAll(ctx, req)
	if err != nil {
		a.logger.Error("run failed", zap.String("op", "execute"), zap.Error(err))
		return err
	}
	return a.writeReport(out, report)
}

func (a *app) writeReport(out io.Writer, report *domain.Report) error {
	format := a.settings.Output.Format
	if a.outputPath == "" {
		return output.WriteReport(out, report, format)
	}
	f, err := os.Create(a.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", a.outputPath, err)
	}
	defer f.Close()
	if err := output.WriteReport(f, report, format); err != nil {
		return err
	}
	a.logger.Info("report written",
		zap.String("op", "write"),
		zap.String("file", a.outputPath),
		zap.String("format", format),
	)
	return f.Close()
}
