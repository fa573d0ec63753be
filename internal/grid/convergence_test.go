package grid

import (
	"testing"

	"sudokucore/internal/color"
)

func TestHeuristicsSolvesTrivialGrid(t *testing.T) {
	g, _ := Allocate(1)
	if status := g.Heuristics(); status != Solved {
		t.Errorf("size-1 grid: Heuristics() = %v, want Solved", status)
	}
}

func TestHeuristicsDetectsInconsistency(t *testing.T) {
	g, _ := Allocate(9)
	g.SetCell(0, 0, '5')
	g.SetCell(0, 1, '5')
	if status := g.Heuristics(); status != NotConsistent {
		t.Errorf("Heuristics() = %v, want NotConsistent", status)
	}
}

func TestHeuristicsIdempotent(t *testing.T) {
	g, _ := Allocate(9)
	g.SetCell(0, 0, '1')
	first := g.Heuristics()
	snapshot := g.String()
	second := g.Heuristics()
	if first != second {
		t.Errorf("Heuristics() not idempotent: first=%v second=%v", first, second)
	}
	if g.String() != snapshot {
		t.Error("grid changed on second Heuristics() call")
	}
}

func TestHeuristicsSolvedImpliesDistinctFullUnits(t *testing.T) {
	// A 4x4 grid filled as a valid Latin square / Sudoku solution.
	g, _ := Allocate(4)
	rows := [4][4]byte{
		{'1', '2', '3', '4'},
		{'3', '4', '1', '2'},
		{'2', '1', '4', '3'},
		{'4', '3', '2', '1'},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g.SetCell(r, c, rows[r][c])
		}
	}
	status := g.Heuristics()
	if status != Solved {
		t.Fatalf("Heuristics() = %v, want Solved", status)
	}
	for _, u := range g.Units() {
		var seen, union uint64
		for i := 0; i < u.Len(); i++ {
			cell := u.Get(i)
			if !cell.IsSingleton() {
				t.Errorf("unit %v cell %d not a singleton in a solved grid", u.Type, i)
			}
			if uint64(cell)&seen != 0 {
				t.Errorf("unit %v has a repeated color", u.Type)
			}
			seen |= uint64(cell)
			union |= uint64(cell)
		}
		if union != uint64(color.Full(4)) {
			t.Errorf("unit %v union = %b, want the full set", u.Type, union)
		}
	}
}
