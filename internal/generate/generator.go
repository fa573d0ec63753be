// Package generate builds randomly solved grids and carves them down to
// minimally-constrained puzzles, optionally certifying uniqueness.
package generate

import (
	"math/rand"

	"sudokucore/internal/color"
	"sudokucore/internal/grid"
	"sudokucore/internal/search"
)

// DefaultEmptyRate is a default blanking fraction. Generate takes the
// rate per call so the CLI/HTTP layers can expose a --empty-rate flag
// without touching the compile-time constant in pkg/constants.
const DefaultEmptyRate = 0.55

// Generate produces a size×size puzzle. mode must be search.First (blank
// the chosen cells unconditionally) or search.Unique (re-verify
// uniqueness after every blank, restoring cells that would break it).
// emptyRate is the target fraction of cells to blank, in (0,1).
func Generate(size int, mode search.Mode, emptyRate float64, rng *rand.Rand) (*grid.Grid, bool) {
	g, ok := grid.Allocate(size)
	if !ok {
		return nil, false
	}

	seedFirstRow(g, rng)
	solved, _ := search.Solve(g, search.First, nil, rng, true)
	if solved == nil {
		return nil, false
	}

	positions := shuffledPositions(size, rng)
	target := int(float64(size*size) * emptyRate)

	switch mode {
	case search.Unique:
		carveUnique(solved, positions, target, rng)
	default:
		carveUnconditional(solved, positions, target)
	}
	return solved, true
}

// seedFirstRow initializes row 0 to a random permutation of the N
// singletons, giving the first solve a varied arbitrary legal starting
// row (§4.6 step 2).
func seedFirstRow(g *grid.Grid, rng *rand.Rand) {
	size := g.Size()
	perm := rng.Perm(size)
	for col, id := range perm {
		g.SetAt(0, col, color.Singleton(id))
	}
}

// shuffledPositions returns a random permutation of all N² cell
// positions as (row, col) pairs.
func shuffledPositions(size int, rng *rand.Rand) [][2]int {
	total := size * size
	positions := make([][2]int, total)
	for i := 0; i < total; i++ {
		positions[i] = [2]int{i / size, i % size}
	}
	rng.Shuffle(total, func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	return positions
}

// carveUnconditional blanks the first `target` shuffled positions
// without re-checking uniqueness (§4.6 step 6).
func carveUnconditional(g *grid.Grid, positions [][2]int, target int) {
	for i := 0; i < target && i < len(positions); i++ {
		g.SetCell(positions[i][0], positions[i][1], '_')
	}
}

// carveUnique iterates the shuffled positions; for each, it blanks a
// scratch copy and runs an all-solutions search (deterministic choice,
// so the only source of randomness is the earlier full-grid solve) to
// certify the completion stays unique before committing the blank to g
// (§4.6 step 7).
func carveUnique(g *grid.Grid, positions [][2]int, target int, rng *rand.Rand) {
	for _, pos := range positions {
		if target == 0 {
			return
		}
		candidate := g.Copy()
		candidate.SetCell(pos[0], pos[1], '_')
		_, count := search.Solve(candidate, search.All, nil, rng, false)
		if count == 1 {
			g.SetCell(pos[0], pos[1], '_')
			target--
		}
	}
}

// CountEmpty returns the number of fully-open cells in g (every color a
// candidate), the quantity §8's generator property checks against
// floor(N² · EMPTY_RATE).
func CountEmpty(g *grid.Grid) int {
	size := g.Size()
	full := color.Full(size)
	count := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if g.At(r, c) == full && size != 1 {
				count++
			}
		}
	}
	return count
}
