// Package search implements the branching Choice and the recursive
// backtracking Solver built on top of package grid.
package search

import (
	"math/rand"

	"sudokucore/internal/color"
	"sudokucore/internal/grid"
)

// Choice is a branching decision: assign (Row, Col) to one candidate
// color. An empty Color means no branch is available (every cell is a
// singleton).
type Choice struct {
	Row, Col int
	Color    color.Set
}

// Empty reports whether the choice carries no candidate color.
func (c Choice) Empty() bool {
	return c.Color.IsEmpty()
}

// NewChoice scans g in row-major order for the first non-singleton
// cell — matching the original core's grid_choice, which stops at the
// first cell it finds rather than the last — and sets the choice color
// to either a uniformly random member (random=true) or the leftmost
// (highest-index) member (random=false, deterministic mode).
func NewChoice(g *grid.Grid, rng *rand.Rand, random bool) Choice {
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := g.At(r, c)
			if cell.IsSingleton() {
				continue
			}
			picked := cell.Leftmost()
			if random {
				picked = cell.Random(rng)
			}
			return Choice{Row: r, Col: c, Color: picked}
		}
	}
	return Choice{}
}

// Apply overwrites the chosen cell with the choice color.
func (c Choice) Apply(g *grid.Grid) {
	g.SetAt(c.Row, c.Col, c.Color)
}

// Discard subtracts the choice color from the chosen cell, pruning it
// from future consideration at this branch.
func (c Choice) Discard(g *grid.Grid) {
	g.SetAt(c.Row, c.Col, g.At(c.Row, c.Col).Subtract(c.Color))
}

// Blank resets the chosen cell to the full color set for its grid.
func (c Choice) Blank(g *grid.Grid) {
	g.SetAt(c.Row, c.Col, color.Full(g.Size()))
}
