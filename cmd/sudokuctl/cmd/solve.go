package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sudokucore/internal/parse"
	"sudokucore/internal/search"
)

var (
	solveMode string
	solveFile string
	solveSeed int64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle read from a file or stdin",
	Long: `Solve reads a textual grid (one row per line, '_' for an open
cell, '#' starts a comment) and runs the convergence-and-backtracking
solver against it.

Examples:
  sudokuctl solve --file puzzle.txt
  sudokuctl solve --file puzzle.txt --mode all
  cat puzzle.txt | sudokuctl solve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseModeFlag(solveMode)
		if err != nil {
			return err
		}

		input := os.Stdin
		if solveFile != "" {
			f, err := os.Open(solveFile)
			if err != nil {
				return fmt.Errorf("opening %s: %w", solveFile, err)
			}
			defer f.Close()
			input = f
		}

		g, err := parse.Grid(input)
		if err != nil {
			return fmt.Errorf("parsing grid: %w", err)
		}

		seed := solveSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		result, count := search.Solve(g, mode, os.Stdout, rng, true)
		if result == nil {
			fmt.Fprintln(os.Stderr, "no solution: grid is not consistent")
			os.Exit(1)
		}
		if mode != search.First {
			fmt.Fprintf(os.Stderr, "found %d solution(s)\n", count)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveMode, "mode", "m", "first", "search mode: first, all, or unique")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "puzzle file to read (default: stdin)")
	solveCmd.Flags().Int64VarP(&solveSeed, "seed", "s", 0, "RNG seed for choice tie-breaking (0 = time-based)")
}

func parseModeFlag(s string) (search.Mode, error) {
	switch s {
	case "first":
		return search.First, nil
	case "all":
		return search.All, nil
	case "unique":
		return search.Unique, nil
	default:
		return search.First, fmt.Errorf("invalid --mode %q (want first, all, or unique)", s)
	}
}
