package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/finsim/finance-simulator/internal/calculation"
	"github.com/finsim/finance-simulator/internal/config"
	"github.com/finsim/finance-simulator/internal/output"
)

var (
	configFile string
	formatName string
	outputPath string
	verbose    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one simulation from a YAML scenario file",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario file (required)")
	simulateCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: console, json, csv")
	simulateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	simulateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine steps to stderr")
	simulateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormatterNames())
	}

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	engine := calculation.NewCalculationEngine()
	if verbose {
		engine.SetLogger(slogAdapter{slog.New(slog.NewTextHandler(os.Stderr, nil))})
	}

	report, err := engine.Run(cfg)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	return output.WriteFormatted(formatter, report, outputPath)
}

// slogAdapter lets the engine's printf-style logger speak slog.
type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Debugf(format string, args ...any) { a.l.Debug(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Infof(format string, args ...any)  { a.l.Info(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Warnf(format string, args ...any)  { a.l.Warn(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Errorf(format string, args ...any) { a.l.Error(fmt.Sprintf(format, args...)) }
