package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sudokuctl",
	Short: "Generalized Sudoku/Latin-square solving and generation toolkit",
	Long: `sudokuctl solves and generates constraint-propagation puzzles
(Sudoku and its Latin-square generalizations) over grid sizes
1, 4, 9, 16, 25, 36, 49, and 64.

It provides subcommands for:
  - Solving a puzzle given on stdin or a file
  - Generating a new puzzle at a given size and empty-cell rate
  - Serving the solve/generate API over HTTP`,
}

// Execute adds all child commands to the root command and is called by
// main.main(). It only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "disable the progress spinner and run serve in gin debug mode")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}
