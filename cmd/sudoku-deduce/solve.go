package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/puzzle"
	"svw.info/sudoku-deduce/internal/solver"
	"svw.info/sudoku-deduce/internal/usecase"
)

func newSolveCommand() *cobra.Command {
	var (
		techniques []string
		quiet      bool
		cpuprofile string
	)
	cmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Solve puzzles from files or stdin",
		Long: "Reads line-oriented puzzle text: digits 1-9 for givens, space or '.'\n" +
			"for blanks, 81 cells per puzzle, '#' lines skipped. A malformed puzzle\n" +
			"fails on its own; the rest of the batch still runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofile != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuprofile)).Stop()
			}
			logger := loggerFromFlags(cmd)
			s := solver.NewDeduction(logger)
			return runSolve(cmd, s, args, techniques, quiet)
		},
	}
	cmd.Flags().StringSliceVar(&techniques, "techniques", nil,
		"technique names in priority order (default: the full set)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print outcomes")
	cmd.Flags().StringVar(&cpuprofile, "cpuprofile", "", "write a CPU profile into this directory")
	return cmd
}

func runSolve(cmd *cobra.Command, s *solver.Deduction, args, techniques []string, quiet bool) error {
	grids, err := gatherPuzzles(args)
	if err != nil {
		return err
	}
	if len(grids) == 0 {
		return fmt.Errorf("no puzzles in input")
	}
	out := cmd.OutOrStdout()
	failures := 0
	for i, givens := range grids {
		report, err := s.Solve(cmd.Context(), givens, techniques)
		if err != nil {
			return err
		}
		if report.Outcome != domain.OutcomeSolved {
			failures++
		}
		fmt.Fprintf(out, "puzzle %d: %s (%d givens, %d fixed, %v)\n",
			i+1, report.Outcome, givens.Count(), report.Fixed, report.Duration)
		if report.Failure != nil {
			fmt.Fprintf(out, "  %s\n", report.Failure)
		}
		if quiet {
			continue
		}
		fmt.Fprintln(out, report.Grid)
		printTechniqueTable(out, report)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d puzzles not solved", failures, len(grids))
	}
	return nil
}

func printTechniqueTable(out io.Writer, report domain.SolveReport) {
	width := lo.Max(lo.Map(report.Techniques, func(t domain.TechniqueReport, _ int) int { return len(t.Name) }))
	for _, t := range report.Techniques {
		fmt.Fprintf(out, "  %-*s  actions=%-4d defers=%d\n", width, t.Name, t.Actions, t.Defers)
	}
	fmt.Fprintf(out, "  total actions: %d\n", usecase.TotalActions(report))
}

// gatherPuzzles reads every named file, or stdin for "-" or no args.
func gatherPuzzles(args []string) ([]domain.Givens, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var out []domain.Givens
	for _, name := range args {
		r, label := io.Reader(os.Stdin), "stdin"
		if name != "-" {
			f, err := os.Open(name)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r, label = f, name
		}
		gs, err := puzzle.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		out = append(out, gs...)
	}
	return out, nil
}
