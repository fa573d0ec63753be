package generate

import (
	"math/rand"
	"testing"

	"sudokucore/internal/search"
)

func TestGenerateFirstModeExactEmptyCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rate := 0.3
	g, ok := Generate(9, search.First, rate, rng)
	if !ok {
		t.Fatal("Generate failed")
	}
	want := int(float64(9*9) * rate)
	if got := CountEmpty(g); got != want {
		t.Errorf("CountEmpty() = %d, want %d", got, want)
	}
}

func TestGenerateUniqueModeHasExactlyOneCompletion(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g, ok := Generate(4, search.Unique, 0.3, rng)
	if !ok {
		t.Fatal("Generate failed")
	}
	checkRng := rand.New(rand.NewSource(3))
	_, count := search.Solve(g.Copy(), search.All, nil, checkRng, false)
	if count != 1 {
		t.Errorf("unique-mode generation produced %d completions, want 1", count)
	}
}

func TestGenerateRejectsInvalidSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, ok := Generate(10, search.First, 0.3, rng); ok {
		t.Error("Generate(10, ...) should fail, 10 is not an allowed size")
	}
}

func TestGenerateSize1(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, ok := Generate(1, search.First, 0.3, rng)
	if !ok {
		t.Fatal("Generate failed")
	}
	if !g.IsSolved() {
		t.Error("size-1 grid should be trivially solved")
	}
}
