package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sudokucore/internal/cliui"
	"sudokucore/internal/generate"
	"sudokucore/internal/grid"
	"sudokucore/internal/search"
	"sudokucore/pkg/constants"
)

var (
	genSize      int
	genMode      string
	genEmptyRate float64
	genSeed      int64
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate a new puzzle",
	Long: `Generate builds a fully solved grid of the requested size, then
carves cells out of it. In --mode unique, every carve is re-verified
to keep the completion unique, which can take noticeably longer on
large grids.

Examples:
  sudokuctl generate --size 9
  sudokuctl gen -n 16 --mode unique
  sudokuctl g -n 9 --empty-rate 0.6 --seed 12345`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !grid.CheckSize(genSize) {
			return fmt.Errorf("invalid --size %d (allowed: 1,4,9,16,25,36,49,64)", genSize)
		}

		mode := search.First
		if genMode == "unique" {
			mode = search.Unique
		} else if genMode != "first" {
			return fmt.Errorf("invalid --mode %q (want first or unique)", genMode)
		}

		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		sp := cliui.NewSpinner(fmt.Sprintf("generating %dx%d puzzle...", genSize, genSize), verbose)
		sp.Start()
		g, ok := generate.Generate(genSize, mode, genEmptyRate, rng)
		sp.Stop()

		if !ok {
			return fmt.Errorf("generation failed for size %d", genSize)
		}

		fmt.Print(g.String())
		fmt.Fprintf(os.Stderr, "%d cells blanked\n", generate.CountEmpty(g))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&genSize, "size", "n", constants.DefaultSize, "grid size (1,4,9,16,25,36,49,64)")
	generateCmd.Flags().StringVarP(&genMode, "mode", "m", "first", "carving mode: first or unique")
	generateCmd.Flags().Float64VarP(&genEmptyRate, "empty-rate", "e", constants.EmptyRate, "target fraction of cells to blank")
	generateCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "RNG seed (0 = time-based)")
}
