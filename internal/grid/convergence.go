package grid

// Status is the outcome of running the heuristic convergence driver
// over a grid.
type Status int

const (
	// ConsistentNotSolved means the grid still satisfies every unit
	// invariant but at least one cell is not yet a singleton.
	ConsistentNotSolved Status = iota
	// Solved means every cell is a singleton.
	Solved
	// NotConsistent means some unit invariant is violated.
	NotConsistent
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case ConsistentNotSolved:
		return "consistent_not_solved"
	case NotConsistent:
		return "not_consistent"
	default:
		return "unknown"
	}
}

// level indexes the two heuristic tiers the convergence driver escalates
// through: cheap (cross-hatching, lone number) and expensive (naked
// subset, hidden subset).
type level int

const (
	levelCheap level = iota
	levelExpensive
)

// Heuristics runs the convergence driver (§4.3): escalate from cheap to
// expensive heuristics, dropping back to cheap whenever a pass makes
// progress, until a full pass at the expensive level changes nothing.
func (g *Grid) Heuristics() Status {
	if g == nil {
		return NotConsistent
	}
	if g.size == 1 {
		return Solved
	}
	if !g.IsConsistent() {
		return NotConsistent
	}

	lv := levelCheap
	for lv <= levelExpensive {
		changed := false
		for _, u := range g.Units() {
			changed = applyLevel(u, lv) || changed
		}
		if changed {
			if lv == levelExpensive {
				lv = levelCheap
			}
			// level stays at cheap otherwise: repeat the cheap pass.
		} else {
			lv++
		}
	}

	if g.IsSolved() {
		return Solved
	}
	if g.IsConsistent() {
		return ConsistentNotSolved
	}
	return NotConsistent
}

// applyLevel runs both heuristics of the given level over the unit and
// combines their results with a disjunction; neither is short-circuited
// by the other having already changed the unit.
func applyLevel(u UnitRef, lv level) bool {
	if lv == levelCheap {
		hatched := CrossHatching(u)
		loned := LoneNumber(u)
		return hatched || loned
	}
	naked := NakedSubset(u)
	hidden := HiddenSubset(u)
	return naked || hidden
}
