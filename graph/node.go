package graph

import (
	"strconv"

	"github.com/sachac/spectra/rules"
)

// node is one entry in the tree built from a StenoRule's RuleMap: the rule
// it stands for, its horizontal span within the root's letters, and its
// resolved row/column once layout has run. Zero-length special markers in a
// RuleMap never become nodes; they carry no letters to draw.
type node struct {
	rule        rules.StenoRule
	ref         string
	depth       int
	attachStart int
	children    []*node

	row int
	col int
}

// text is what gets printed for n: its letters, or its keys if it has none
// (pure-key rules, e.g. a brief's stroke with no text of its own).
func (n *node) text() string {
	if n.rule.Letters() != "" {
		return n.rule.Letters()
	}
	return n.rule.Keys()
}

func (n *node) width() int {
	return len([]rune(n.text()))
}

// buildNodes recursively turns rule's RuleMap into a node tree, assigning
// every node a unique, sequential ref (a plain incrementing counter, unlike
// the Python original's id(node), per spec.md's note that refs need only be
// stable and comparable within one draw, not globally unique pointers).
func buildNodes(rule rules.StenoRule, attachStart, depth int, counter *int) *node {
	n := &node{rule: rule, depth: depth, attachStart: attachStart}
	*counter++
	n.ref = strconv.Itoa(*counter)

	rm := rule.RuleMap()
	for i := 0; i < rm.Len(); i++ {
		item := rm.At(i)
		if item.IsSpecial() || item.Rule == nil {
			continue
		}
		child := buildNodes(*item.Rule, item.Start, depth+1, counter)
		n.children = append(n.children, child)
	}
	return n
}

// assignCols resolves every node's absolute starting column: a child's
// attachStart is relative to its parent's own column.
func assignCols(n *node, parentCol int) {
	n.col = parentCol + n.attachStart
	for _, c := range n.children {
		assignCols(c, n.col)
	}
}

// assignRowsCompressed gives every node at the same depth the same row:
// siblings never overlap horizontally (they partition their parent's span),
// so sharing a row never collides two unrelated rules' cells. The root sits
// at row 0, with descendants occupying increasing rows below it.
func assignRowsCompressed(n *node) {
	n.row = n.depth
	for _, c := range n.children {
		assignRowsCompressed(c)
	}
}

// assignRowsExpanded gives every node a distinct row in pre-order, so a
// parent's row always sits above (numerically before) every one of its
// descendants'. Used whenever compressed layout is off, and always in
// compatibility mode.
func assignRowsExpanded(n *node, counter *int) {
	n.row = *counter
	*counter++
	for _, c := range n.children {
		assignRowsExpanded(c, counter)
	}
}

func bounds(n *node) (maxRow, maxCol int) {
	maxRow, maxCol = n.row, n.col+n.width()-1
	for _, c := range n.children {
		r, cc := bounds(c)
		if r > maxRow {
			maxRow = r
		}
		if cc > maxCol {
			maxCol = cc
		}
	}
	return maxRow, maxCol
}

// collectColumnRefs records, for every canvas column a node's text touches,
// the set of node refs covering it. Because RuleMap spans never overlap
// between siblings, two refs sharing a column can only be ancestor and
// descendant, never unrelated siblings — so this union is exactly the
// trigger set spec.md describes for a body cell (itself, any covering
// descendant, any covering ancestor) without needing separate bookkeeping
// for each relationship.
func collectColumnRefs(n *node, out map[int]map[string]bool) {
	w := n.width()
	for c := n.col; c < n.col+w; c++ {
		bucket := out[c]
		if bucket == nil {
			bucket = make(map[string]bool)
			out[c] = bucket
		}
		bucket[n.ref] = true
	}
	for _, c := range n.children {
		collectColumnRefs(c, out)
	}
}

// collectDescendantRefs records n's own ref plus every descendant's, with no
// column restriction: a connector cell lights up for its owning node and any
// rule nested beneath it, per spec.md's "connector cells light up from any
// descendant" (it spans the whole vertical run between a node and its
// child's row, not just one column).
func collectDescendantRefs(n *node, out map[string]bool) {
	out[n.ref] = true
	for _, c := range n.children {
		collectDescendantRefs(c, out)
	}
}
