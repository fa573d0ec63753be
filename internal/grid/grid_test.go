package grid

import "testing"

func TestAllocateRejectsInvalidSize(t *testing.T) {
	if _, ok := Allocate(10); ok {
		t.Error("Allocate(10) should fail, 10 is not an allowed size")
	}
	for _, size := range []int{1, 4, 9, 16, 25, 36, 49, 64} {
		if _, ok := Allocate(size); !ok {
			t.Errorf("Allocate(%d) should succeed", size)
		}
	}
}

func TestSetCellAndGetCell(t *testing.T) {
	g, _ := Allocate(9)
	g.SetCell(0, 0, '5')
	if got := g.GetCell(0, 0); got != "5" {
		t.Errorf("GetCell(0,0) = %q, want %q", got, "5")
	}
	g.SetCell(0, 0, '_')
	if got := g.GetCell(0, 0); got != "_" {
		t.Errorf("GetCell after blank = %q, want %q", got, "_")
	}
}

func TestGetCellOutOfRange(t *testing.T) {
	g, _ := Allocate(9)
	if got := g.GetCell(100, 0); got != "" {
		t.Errorf("GetCell out of range = %q, want empty", got)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g, _ := Allocate(9)
	g.SetCell(0, 0, '1')
	cp := g.Copy()
	cp.SetCell(0, 0, '2')
	if g.GetCell(0, 0) == cp.GetCell(0, 0) {
		t.Error("mutating the copy should not affect the original")
	}
}

func TestUnitsCoverEveryCellThrice(t *testing.T) {
	g, _ := Allocate(9)
	counts := make(map[[2]int]int)
	for _, u := range g.Units() {
		for i := 0; i < u.Len(); i++ {
			r, c := u.RowCol(i)
			counts[[2]int{r, c}]++
		}
	}
	if len(counts) != 81 {
		t.Fatalf("expected 81 distinct cells, got %d", len(counts))
	}
	for rc, count := range counts {
		if count != 3 {
			t.Errorf("cell %v covered by %d units, want 3 (row, col, block)", rc, count)
		}
	}
}

func TestConsistencySize1Trivial(t *testing.T) {
	g, _ := Allocate(1)
	if !g.IsConsistent() {
		t.Error("size-1 grid should always be consistent")
	}
}

func TestInconsistentDuplicateInRow(t *testing.T) {
	g, _ := Allocate(9)
	g.SetCell(0, 0, '5')
	g.SetCell(0, 1, '5')
	if g.IsConsistent() {
		t.Error("grid with duplicate singleton in a row should be inconsistent")
	}
}

func TestStringSinkFormat(t *testing.T) {
	g, _ := Allocate(1)
	g.SetCell(0, 0, '1')
	out := g.String()
	want := "1\n\n"
	if out != want {
		t.Errorf("String() = %q, want %q", out, want)
	}
}
