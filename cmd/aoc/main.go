package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "aoc2023/internal/days"
)

var (
	// Global flags
	verbose  bool
	inputDir string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2023 solutions",
	Long: `Batch solver for the Advent of Code 2023 puzzles.

Each day reads its puzzle input from <input-dir>/dayNN.txt, computes
both answers and reports how long the computation took.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "input", "Directory containing dayNN.txt puzzle inputs")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
