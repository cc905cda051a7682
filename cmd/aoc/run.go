package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aoc2023/internal/puzzle"
)

var parallel bool

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve one or more days",
	Long: `Solves the named days, or every implemented day when none are
given, and prints both answers plus the elapsed time per day.

Example:
  aoc run 1 8 25 --input ./input`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := selectDays(args)
		if err != nil {
			return err
		}
		results, err := solveDays(inputDir, days, parallel)
		if err != nil {
			return err
		}
		printResults(cmd.OutOrStdout(), results)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the implemented days",
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range puzzle.Days() {
			fmt.Fprintf(cmd.OutOrStdout(), "day %02d  %s\n", d.N, d.Title)
		}
	},
}

func init() {
	runCmd.Flags().BoolVarP(&parallel, "parallel", "p", false, "Solve the selected days concurrently")
}

// selectDays resolves the day arguments against the registry; no
// arguments means every registered day.
func selectDays(args []string) ([]puzzle.Day, error) {
	if len(args) == 0 {
		return puzzle.Days(), nil
	}

	days := make([]puzzle.Day, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		d, ok := puzzle.Get(n)
		if !ok {
			return nil, fmt.Errorf("day %d is not implemented", n)
		}
		days = append(days, d)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].N < days[j].N })
	return days, nil
}

type result struct {
	day     puzzle.Day
	answers puzzle.Answers
	elapsed time.Duration
}

func solveDay(dir string, d puzzle.Day) (result, error) {
	logger.Debug("solving", zap.Int("day", d.N), zap.String("title", d.Title))

	in, err := puzzle.Load(dir, d.N)
	if err != nil {
		return result{}, err
	}

	start := time.Now()
	answers, err := d.Solve(in)
	if err != nil {
		return result{}, fmt.Errorf("day %d: %w", d.N, err)
	}

	return result{day: d, answers: answers, elapsed: time.Since(start)}, nil
}

// solveDays runs the selected days, concurrently when parallel is set.
// Results come back in day order either way.
func solveDays(dir string, days []puzzle.Day, parallel bool) ([]result, error) {
	results := make([]result, len(days))

	if !parallel {
		for i, d := range days {
			r, err := solveDay(dir, d)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	var g errgroup.Group
	for i, d := range days {
		i, d := i, d
		g.Go(func() error {
			r, err := solveDay(dir, d)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printResults(w io.Writer, results []result) {
	for _, r := range results {
		fmt.Fprintf(w, "Day %02d: %s\n", r.day.N, r.day.Title)
		fmt.Fprintf(w, "Part 1: %v\n", r.answers.Part1)
		if r.answers.Part2 != nil {
			fmt.Fprintf(w, "Part 2: %v\n", r.answers.Part2)
		}
		fmt.Fprintf(w, "Duration: %s\n", r.elapsed)
	}
}
