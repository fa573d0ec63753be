package grid

import "sudokucore/internal/color"

// UnitType distinguishes the three kinds of constraint group.
type UnitType int

const (
	UnitRow UnitType = iota
	UnitCol
	UnitBlock
)

func (t UnitType) String() string {
	switch t {
	case UnitRow:
		return "row"
	case UnitCol:
		return "column"
	case UnitBlock:
		return "block"
	default:
		return "unknown"
	}
}

// UnitRef is a length-N sequence of mutable references to cells of one
// row, column, or block. Cells of a unit may live anywhere in the
// underlying matrix, so a unit is modeled as a grid pointer plus the
// list of (row, col) coordinates it covers, rather than raw pointers —
// "get-mut at index i" against the grid.
type UnitRef struct {
	g     *Grid
	Type  UnitType
	Index int
	coord [][2]int
}

// Len returns N, the number of cells in the unit.
func (u UnitRef) Len() int {
	return len(u.coord)
}

// Get returns the color set currently held at position i of the unit.
func (u UnitRef) Get(i int) color.Set {
	rc := u.coord[i]
	return u.g.At(rc[0], rc[1])
}

// Set overwrites the color set at position i of the unit.
func (u UnitRef) Set(i int, s color.Set) {
	rc := u.coord[i]
	u.g.SetAt(rc[0], rc[1], s)
}

// RowCol returns the underlying grid coordinate of position i.
func (u UnitRef) RowCol(i int) (int, int) {
	rc := u.coord[i]
	return rc[0], rc[1]
}

// Units returns all 3N units of g: N rows, N columns, N blocks.
func (g *Grid) Units() []UnitRef {
	units := make([]UnitRef, 0, g.size*3)
	for i := 0; i < g.size; i++ {
		units = append(units, g.rowUnit(i), g.colUnit(i), g.blockUnit(i))
	}
	return units
}

func (g *Grid) rowUnit(row int) UnitRef {
	coord := make([][2]int, g.size)
	for c := 0; c < g.size; c++ {
		coord[c] = [2]int{row, c}
	}
	return UnitRef{g: g, Type: UnitRow, Index: row, coord: coord}
}

func (g *Grid) colUnit(col int) UnitRef {
	coord := make([][2]int, g.size)
	for r := 0; r < g.size; r++ {
		coord[r] = [2]int{r, col}
	}
	return UnitRef{g: g, Type: UnitCol, Index: col, coord: coord}
}

// blockUnit returns the block at the given index, numbered in row-major
// order of block-size chunks (matching the original grid_heuristics'
// start_row/start_column derivation from a single unit index).
func (g *Grid) blockUnit(index int) UnitRef {
	block := g.block
	startRow := (index / block) * block
	startCol := (index % block) * block
	coord := make([][2]int, 0, g.size)
	for r := startRow; r < startRow+block; r++ {
		for c := startCol; c < startCol+block; c++ {
			coord = append(coord, [2]int{r, c})
		}
	}
	return UnitRef{g: g, Type: UnitBlock, Index: index, coord: coord}
}
