package search

import (
	"io"
	"math/rand"

	"sudokucore/internal/grid"
)

// Mode selects how exhaustively Solve searches.
type Mode int

const (
	// First stops at the first solution found.
	First Mode = iota
	// All enumerates every solution.
	All
	// Unique runs exactly like All inside Solve (it must enumerate to
	// prove uniqueness); callers read uniqueness from the returned
	// solution count.
	Unique
)

func (m Mode) String() string {
	switch m {
	case First:
		return "first"
	case All:
		return "all"
	case Unique:
		return "unique"
	default:
		return "unknown"
	}
}

// Solve runs the convergence driver, and if the grid is not yet solved,
// extracts a Choice and recurses on a deep-copied grid for every
// candidate color. It returns a witness solution (nil if none exists or
// was kept) and the number of solutions reached during the search.
//
// NOT_CONSISTENT never surfaces as an error (§4.5, §7): it only prunes
// the current branch. The solution counter is threaded as an explicit
// return value rather than the original core's process-wide mutable
// counter (see the internal/search entry in DESIGN.md).
func Solve(g *grid.Grid, mode Mode, sink io.Writer, rng *rand.Rand, random bool) (*grid.Grid, int) {
	status := g.Heuristics()
	if status == grid.NotConsistent {
		return nil, 0
	}
	if status == grid.Solved {
		if sink != nil {
			io.WriteString(sink, g.String()) //nolint:errcheck // append-only sink, nothing actionable on write failure
		}
		return g, 1
	}

	choice := NewChoice(g, rng, random)
	var last *grid.Grid
	count := 0
	for !choice.Empty() {
		branch := g.Copy()
		choice.Apply(branch)
		res, n := Solve(branch, mode, sink, rng, random)
		count += n
		if res != nil {
			if mode == First {
				return res, count
			}
			last = res
		}
		choice.Discard(g)
		if !g.IsConsistent() {
			if mode == First {
				return nil, count
			}
			return last, count
		}
		choice = NewChoice(g, rng, random)
	}
	if mode == First {
		return nil, count
	}
	return last, count
}
