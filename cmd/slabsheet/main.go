// Command slabsheet generates slab inspection reports from spreadsheet
// measurements.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger  *zap.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "slabsheet",
	Short: "Generate slab inspection reports from spreadsheet measurements",
	Long: `slabsheet turns pasted or imported slab measurements into a paginated
PDF inspection report with computed net dimensions, areas, and totals.

Measurements can come from pasted text, spreadsheet clipboard HTML, an
.xlsx workbook, or (in OCR-enabled builds) a photo of a measurement sheet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		logger = zap.NewNop()
	}
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)

	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
		}
		os.Exit(1)
	}
}
