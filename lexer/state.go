package lexer

import "github.com/sachac/spectra/rules"

// state is the lexer's search-node representation (spec.md §4.E): the keys
// not yet accounted for, plus the ordered list of rule references found so
// far. It mirrors the original flat-list encoding
// ([unmatched, name1, start1, len1, ...]) as a small struct instead, since Go
// has no use for the original's "single list doubles as both the state and
// the storage layout" trick.
type state struct {
	unmatched string
	items     []rules.RuleMapItem
}

func sumLengths(items []rules.RuleMapItem) int {
	sum := 0
	for _, item := range items {
		sum += item.Length
	}
	return sum
}

// keepBetter implements the lexer's four-criterion ranking fold (spec.md
// §4.E, "Ranking"): it returns whichever of current/other scores higher,
// with ties broken in current's favor exactly as the reduce-based fold in
// the original does.
func keepBetter(rareSet map[string]bool, current, other state) state {
	if d := -len(current.unmatched) + len(other.unmatched); d != 0 {
		if d >= 0 {
			return current
		}
		return other
	}
	if d := sumLengths(current.items) - sumLengths(other.items); d != 0 {
		if d >= 0 {
			return current
		}
		return other
	}
	if d := -rareDiffSum(rareSet, current.items, other.items); d != 0 {
		if d >= 0 {
			return current
		}
		return other
	}
	if d := -len(current.items) + len(other.items); d >= 0 {
		return current
	}
	return other
}

// rareDiffSum sums, pairwise by index up to the shorter list's length, the
// difference in "is this rule rare" between current's and other's items —
// reproducing the original's use of Python's index-truncating map() over
// two same-shaped slices of the flat state list.
func rareDiffSum(rareSet map[string]bool, current, other []rules.RuleMapItem) int {
	n := len(current)
	if len(other) < n {
		n = len(other)
	}
	sum := 0
	for i := 0; i < n; i++ {
		c, o := 0, 0
		if rareSet[current[i].Rule.ID()] {
			c = 1
		}
		if rareSet[other[i].Rule.ID()] {
			o = 1
		}
		sum += c - o
	}
	return sum
}

// findBest reduces a set of discovered states right-to-left, as the
// original's reduce(keep_better, reversed(states)) does; the tie-break this
// produces ("earlier in the reduction order" == "later in the discovery
// queue") is part of the documented contract, not an implementation detail.
func findBest(rareSet map[string]bool, states []state) state {
	best := states[len(states)-1]
	for i := len(states) - 2; i >= 0; i-- {
		best = keepBetter(rareSet, best, states[i])
	}
	return best
}

// stateEqual reports whether two states carry the same unmatched keys and
// the same sequence of (rule id, start, length) items.
func stateEqual(a, b state) bool {
	if a.unmatched != b.unmatched || len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if a.items[i].Rule.ID() != b.items[i].Rule.ID() ||
			a.items[i].Start != b.items[i].Start ||
			a.items[i].Length != b.items[i].Length {
			return false
		}
	}
	return true
}
