// Package grid implements the N×N color-set matrix: allocation, cell
// access, unit iteration (rows, columns, blocks), consistency checking,
// and the heuristic convergence driver (see convergence.go).
package grid

import (
	"math"
	"strings"

	"sudokucore/internal/color"
	"sudokucore/pkg/constants"
)

// Grid is an N×N matrix of color sets plus its size.
type Grid struct {
	size  int
	block int
	cells [][]color.Set
}

// CheckSize reports whether n is one of the eight supported grid sizes.
func CheckSize(n int) bool {
	for _, allowed := range constants.AllowedSizes {
		if n == allowed {
			return true
		}
	}
	return false
}

// Allocate creates a new grid of the given size with every cell set to
// the full color set. Returns (nil, false) on invalid-size — the
// sentinel "no-grid" result §7 calls for; there is no other failure
// mode in a Go allocator.
func Allocate(size int) (*Grid, bool) {
	if !CheckSize(size) {
		return nil, false
	}
	block := int(math.Sqrt(float64(size)))
	cells := make([][]color.Set, size)
	full := color.Full(size)
	for r := range cells {
		cells[r] = make([]color.Set, size)
		for c := range cells[r] {
			cells[r][c] = full
		}
	}
	return &Grid{size: size, block: block, cells: cells}, true
}

// Size returns the grid's N.
func (g *Grid) Size() int {
	if g == nil {
		return 0
	}
	return g.size
}

// BlockSize returns sqrt(N), the side of a block unit.
func (g *Grid) BlockSize() int {
	if g == nil {
		return 0
	}
	return g.block
}

// inRange reports whether (row, col) addresses a cell of g.
func (g *Grid) inRange(row, col int) bool {
	return g != nil && row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At returns the color set at (row, col). Out-of-range access returns
// the empty set, per §7's "silent no-ops ... sentinel returns".
func (g *Grid) At(row, col int) color.Set {
	if !g.inRange(row, col) {
		return color.Empty
	}
	return g.cells[row][col]
}

// SetAt overwrites the color set at (row, col) directly. Used by the
// solver/choice machinery; out-of-range indices are silently ignored.
func (g *Grid) SetAt(row, col int, s color.Set) {
	if !g.inRange(row, col) {
		return
	}
	g.cells[row][col] = s
}

// SetCell assigns a cell from its display character: the empty sentinel
// resets the cell to the full set, any other valid alphabet character
// for this size collapses it to that single color. Invalid characters
// and out-of-range coordinates are silent no-ops.
func (g *Grid) SetCell(row, col int, ch byte) {
	if !g.inRange(row, col) {
		return
	}
	if ch == constants.EmptyCell {
		g.cells[row][col] = color.Full(g.size)
		return
	}
	id, ok := color.IndexOfChar(ch, g.size)
	if !ok {
		return
	}
	g.cells[row][col] = color.Singleton(id)
}

// CheckCharacter reports whether ch is a legal character for this
// grid's size (either the empty sentinel or an in-range alphabet char).
func (g *Grid) CheckCharacter(ch byte) bool {
	return color.CheckCharacter(ch, g.size)
}

// GetCell renders the candidate characters of (row, col) in ascending
// color order; an open cell (full set, size > 1) renders as the empty
// sentinel. Out-of-range coordinates return the empty string.
func (g *Grid) GetCell(row, col int) string {
	if !g.inRange(row, col) {
		return ""
	}
	cell := g.cells[row][col]
	if cell == color.Full(g.size) && g.size != 1 {
		return string(constants.EmptyCell)
	}
	var sb strings.Builder
	for _, id := range cell.ToSlice() {
		sb.WriteByte(color.CharOfIndex(id))
	}
	return sb.String()
}

// Copy returns a deep copy of g. Each recursive solver step owns one of
// these before mutating; the caller retains the original.
func (g *Grid) Copy() *Grid {
	if g == nil {
		return nil
	}
	cells := make([][]color.Set, g.size)
	for r := range cells {
		cells[r] = make([]color.Set, g.size)
		copy(cells[r], g.cells[r])
	}
	return &Grid{size: g.size, block: g.block, cells: cells}
}

// IsSolved reports whether every cell is a singleton.
func (g *Grid) IsSolved() bool {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if !g.cells[r][c].IsSingleton() {
				return false
			}
		}
	}
	return true
}

// IsConsistent reports whether every one of the grid's 3N units
// satisfies the unit invariant (§3, §4.3). A size-1 grid is trivially
// consistent.
func (g *Grid) IsConsistent() bool {
	if g.size == 1 {
		return true
	}
	for _, u := range g.Units() {
		if !unitConsistent(u) {
			return false
		}
	}
	return true
}

func unitConsistent(u UnitRef) bool {
	var singleton, appeared color.Set
	n := u.Len()
	for i := 0; i < n; i++ {
		cell := u.Get(i)
		if cell.IsEmpty() {
			return false
		}
		if cell.IsSingleton() {
			if cell.IsSubset(singleton) {
				return false
			}
			singleton = singleton.Union(cell)
		}
		appeared = appeared.Union(cell)
	}
	return appeared.Equal(color.Full(u.g.size))
}

// String renders the grid in the solver sink format: per row, the
// space-separated candidate strings of its cells, newline-terminated,
// followed by one blank line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.GetCell(r, c))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// RenderBoxed is a human-facing variant of String that additionally
// prints a blank line between rows of blocks, the way the original
// C implementation's print_grid separates box rows. The solver's sink
// does not use it (it writes String), and no command in this repository
// calls it.
func (g *Grid) RenderBoxed() string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.GetCell(r, c))
		}
		sb.WriteByte('\n')
		if g.block > 0 && (r+1)%g.block == 0 && r+1 != g.size {
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
