package grid

import "sudokucore/internal/color"

// CrossHatching removes, from every non-determined cell of the unit,
// every color already placed as a singleton elsewhere in the unit.
// Grounded on the original core's cross_hatching: union the singletons
// first, then subtract that union from every other cell in a second
// pass so newly-singleton cells from this same pass don't leak in.
func CrossHatching(u UnitRef) bool {
	changed := false
	var singles color.Set
	n := u.Len()
	for i := 0; i < n; i++ {
		if cell := u.Get(i); cell.IsSingleton() {
			singles = singles.Union(cell)
		}
	}
	for i := 0; i < n; i++ {
		cell := u.Get(i)
		if cell.IsSingleton() {
			continue
		}
		reduced := cell.Subtract(singles)
		if reduced != cell {
			u.Set(i, reduced)
			changed = true
		}
	}
	return changed
}

// LoneNumber collapses any non-determined cell to a singleton for any
// color that appears in exactly one cell of the unit. The "seen twice"
// set R and the union U are tracked in a single incremental pass:
// R ← R ∨ (U ∧ c); U ← U ∨ c. The lone set is U \ R.
func LoneNumber(u UnitRef) bool {
	changed := false
	n := u.Len()
	if n == 0 {
		return false
	}
	appeared := u.Get(0)
	var repeated color.Set
	for i := 1; i < n; i++ {
		cell := u.Get(i)
		repeated = repeated.Union(appeared.Intersect(cell))
		appeared = appeared.Union(cell)
	}
	lone := appeared.Subtract(repeated)
	if lone.IsEmpty() {
		return false
	}
	for i := 0; i < n; i++ {
		cell := u.Get(i)
		if cell.IsSingleton() {
			continue
		}
		reduced := cell.Intersect(lone)
		if reduced.IsSingleton() {
			u.Set(i, reduced)
			changed = true
		}
	}
	return changed
}

// NakedSubset finds, for every non-determined cell c, the set of
// non-determined cells (c included) that are subsets of c; when that count equals
// |c|, those cells form a naked k-subset and their colors are removed
// from every other cell in the unit. Applies uniformly to any k.
func NakedSubset(u UnitRef) bool {
	changed := false
	n := u.Len()
	for i := 0; i < n; i++ {
		ci := u.Get(i)
		if ci.IsSingleton() {
			continue
		}
		count := 0
		for j := 0; j < n; j++ {
			cj := u.Get(j)
			if cj.IsSingleton() {
				continue
			}
			if cj.IsSubset(ci) {
				count++
			}
		}
		if count != ci.Count() {
			continue
		}
		for j := 0; j < n; j++ {
			cj := u.Get(j)
			if cj.IsSubset(ci) {
				continue
			}
			reduced := cj.Subtract(ci)
			if reduced != cj {
				u.Set(j, reduced)
				changed = true
			}
		}
	}
	return changed
}

// HiddenSubset is the dual of NakedSubset: for every color i, position(i)
// is the set of cell indices (within the unit) whose candidates include
// i. When exactly |position(i)| non-singleton-positioned colors (i
// included) have position sets within position(i), those positions are restricted
// to exactly that color subset. Applies uniformly to any k.
func HiddenSubset(u UnitRef) bool {
	changed := false
	n := u.Len()
	position := make([]color.Set, n)
	for i := 0; i < n; i++ {
		cell := u.Get(i)
		for j := 0; j < n; j++ {
			if cell.Contains(j) {
				position[j] = position[j].Add(i)
			}
		}
	}
	for i := 0; i < n; i++ {
		if position[i].IsSingleton() {
			continue
		}
		var subset color.Set
		count := 0
		for j := 0; j < n; j++ {
			if position[j].IsSingleton() || !position[j].IsSubset(position[i]) {
				continue
			}
			count++
			subset = subset.Add(j)
		}
		if count != position[i].Count() {
			continue
		}
		for j := 0; j < n; j++ {
			cell := u.Get(j)
			reduced := cell.Intersect(subset)
			if !reduced.IsEmpty() && reduced != cell {
				u.Set(j, reduced)
				changed = true
			}
		}
	}
	return changed
}
