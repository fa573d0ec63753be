package grid

import (
	"testing"

	"sudokucore/internal/color"
)

// heuristicNeverAdds checks the soundness invariant shared by all four
// heuristics: for every cell, after running, cell ⊆ original cell.
func heuristicNeverAdds(t *testing.T, name string, h func(UnitRef) bool) {
	t.Helper()
	g, _ := Allocate(9)
	g.SetCell(0, 0, '1')
	g.SetCell(0, 1, '2')
	u := g.rowUnit(0)
	before := make([]uint64, u.Len())
	for i := 0; i < u.Len(); i++ {
		before[i] = uint64(u.Get(i))
	}
	h(u)
	for i := 0; i < u.Len(); i++ {
		after := u.Get(i)
		if uint64(after)&^before[i] != 0 {
			t.Errorf("%s introduced a color into cell %d", name, i)
		}
	}
}

func TestHeuristicsNeverIntroduceColors(t *testing.T) {
	heuristicNeverAdds(t, "CrossHatching", CrossHatching)
	heuristicNeverAdds(t, "LoneNumber", LoneNumber)
	heuristicNeverAdds(t, "NakedSubset", NakedSubset)
	heuristicNeverAdds(t, "HiddenSubset", HiddenSubset)
}

func TestCrossHatchingRemovesPlacedSingletons(t *testing.T) {
	g, _ := Allocate(9)
	g.SetCell(0, 0, '1')
	u := g.rowUnit(0)
	changed := CrossHatching(u)
	if !changed {
		t.Fatal("expected a change")
	}
	if g.At(0, 1).Contains(0) {
		t.Error("color 0 (digit 1) should have been removed from cell (0,1)")
	}
}

func TestLoneNumberCollapsesUniqueColor(t *testing.T) {
	g, _ := Allocate(4)
	// Restrict every cell except (0,0) away from color 0, so color 0 is
	// "lone" in cell (0,0) only.
	for c := 1; c < 4; c++ {
		cell := g.At(0, c).Discard(0)
		g.SetAt(0, c, cell)
	}
	u := g.rowUnit(0)
	changed := LoneNumber(u)
	if !changed {
		t.Fatal("expected lone number to collapse cell (0,0)")
	}
	if !g.At(0, 0).IsSingleton() || !g.At(0, 0).Contains(0) {
		t.Errorf("cell (0,0) = %v, want singleton {0}", g.At(0, 0))
	}
}

func TestNakedSubsetGeneralizesBeyondPairs(t *testing.T) {
	g, _ := Allocate(9)
	// Force a naked triple {0,1,2} across three cells of row 0.
	triple := color.Singleton(0).Union(color.Singleton(1)).Union(color.Singleton(2))
	for c := 0; c < 3; c++ {
		g.SetAt(0, c, g.At(0, c).Intersect(triple))
	}
	u := g.rowUnit(0)
	changed := NakedSubset(u)
	if !changed {
		t.Fatal("expected naked triple to eliminate from the rest of the row")
	}
	for c := 3; c < 9; c++ {
		cell := g.At(0, c)
		if cell.Contains(0) || cell.Contains(1) || cell.Contains(2) {
			t.Errorf("cell (0,%d) still contains a color from the naked triple: %v", c, cell)
		}
	}
}
