// aoc2025 runs Maisem's Advent of Code 2025 solutions.
//
// Usage:
//
//	aoc2025 -d 4              - Solve day 4 from inputs/day04.txt
//	aoc2025 -d 4 --sample     - Solve only the worked example
//	aoc2025 -d 4 --check      - Verify the example, then solve the input
//
// Settings are read from aoc.yaml, .env and AOC_* variables; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/day01"
	"github.com/maisem/aoc2025/day02"
	"github.com/maisem/aoc2025/day03"
	"github.com/maisem/aoc2025/day04"
	"github.com/maisem/aoc2025/day05"
	"github.com/maisem/aoc2025/day06"
	"github.com/maisem/aoc2025/day07"
)

var puzzles = []aoc.Day{
	day01.Puzzle,
	day02.Puzzle,
	day03.Puzzle,
	day04.Puzzle,
	day05.Puzzle,
	day06.Puzzle,
	day07.Puzzle,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		flagDay      int
		flagInputDir string
		flagConfig   string
		flagSample   bool
		flagCheck    bool
		flagDebug    bool
	)
	cmd := &cobra.Command{
		Use:   "aoc2025",
		Short: "Solve an Advent of Code 2025 day",
		Long: `Solve both parts of one Advent of Code 2025 day and print the answers.

Inputs are read from <input-dir>/dayNN.txt.

Examples:
  aoc2025 --day 1
  aoc2025 -d 7 --input-dir ~/aoc/2025
  aoc2025 -d 3 --sample`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := aoc.LoadConfig(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input-dir") {
				cfg.InputDir = flagInputDir
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = flagDebug
			}

			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Prefix:          "aoc2025",
				ReportTimestamp: cfg.Debug,
			})
			if cfg.Debug {
				logger.SetLevel(log.DebugLevel)
			}

			r, err := aoc.NewRunner(cfg.Source(), logger, puzzles...)
			if err != nil {
				return err
			}
			switch {
			case flagSample:
				r.Mode = aoc.ModeSample
			case flagCheck:
				r.Mode = aoc.ModeCheck
			}
			logger.Debug("running", "day", flagDay, "input_dir", cfg.InputDir)
			return r.Run(cmd.OutOrStdout(), flagDay)
		},
	}

	cmd.Flags().IntVarP(&flagDay, "day", "d", 1, "Day to solve")
	cmd.Flags().StringVar(&flagInputDir, "input-dir", "", "Directory holding dayNN.txt inputs (default from config: inputs)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (default aoc.yaml if present)")
	cmd.Flags().BoolVar(&flagSample, "sample", false, "Solve only the worked example and compare with its answers")
	cmd.Flags().BoolVar(&flagCheck, "check", false, "Verify the worked example before solving the input")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Log per-part timings")
	cmd.MarkFlagsMutuallyExclusive("sample", "check")
	return cmd
}
