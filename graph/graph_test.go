package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sachac/spectra/rules"
)

func leafRule(id, keys, letters, description string) rules.StenoRule {
	return rules.New(id, keys, letters, rules.NewSet(), description, rules.RuleMap{})
}

// buildSample makes a two-child tree: root "abcde" split into child1 "ab"
// (cols 0-1) and child2 "cde" (cols 2-4), both leaves.
func buildSample(t *testing.T, compressed bool) (*GraphTree, rules.StenoRule, rules.StenoRule) {
	t.Helper()
	child1 := leafRule("AB", "K1", "ab", "first pair")
	child2 := leafRule("CDE", "K2", "cde", "second triple")

	rb := rules.NewRuleMapBuilder()
	assert.NoError(t, rb.Add(&child1, 0, 2))
	assert.NoError(t, rb.Add(&child2, 2, 3))
	root := rules.New("ROOT", "KEYS1", "abcde", rules.NewSet(), "whole word", rb.Freeze())

	return Build(root, compressed, false), child1, child2
}

// Scenario 8 — graph.draw highlights a node's own span, its connector, and
// the ancestor row(s) that cover the same columns. Root sits at row 0;
// child1 (depth 1, added first) lands at row 1 directly below it with no
// gap, while child2 (also depth 1, but reached second in pre-order) only
// gets its row after recursing through child1's subtree, leaving a gap that
// needs a connector row.
func Test_Draw_HighlightsOwnSpanConnectorAndAncestor(t *testing.T) {
	assert := assert.New(t)
	tr, _, child2 := buildSample(t, false)

	var child2Ref string
	for _, ref := range tr.Refs() {
		r, _ := tr.Rule(ref)
		if r.ID() == child2.ID() {
			child2Ref = ref
		}
	}
	if !assert.NotEmpty(child2Ref, "child2 must have been indexed") {
		return
	}

	rows := tr.canvas.Rows()
	if !assert.Len(rows, 3, "root + gap row + child row = 3 rows in expanded mode") {
		return
	}

	// Row 0: root's own text "abcde"; columns 2-4 belong to child2's span.
	assert.True(rows[0][2].Triggers[child2Ref])
	assert.True(rows[0][3].Triggers[child2Ref])
	assert.True(rows[0][4].Triggers[child2Ref])

	// Row 1: the connector column standing in for the row gap between root
	// and child2 (child1 has no gap, so this row is its own text at
	// columns 0-1 and the connector at columns 2-4).
	assert.Equal('|', rows[1][2].Char)
	assert.True(rows[1][2].Triggers[child2Ref])
	assert.True(rows[1][4].Triggers[child2Ref])

	// Row 2: child2's own text "cde" at columns 2-4.
	assert.True(rows[2][2].Triggers[child2Ref])
	assert.True(rows[2][4].Triggers[child2Ref])

	markup := tr.Draw(child2Ref, false)
	assert.Contains(markup, "<pre>")
	assert.Contains(markup, "<span")
}

// Scenario 8 variant — the sibling not being highlighted stays untouched.
func Test_Draw_FirstChildHighlightsOnlyItsOwnColumns(t *testing.T) {
	assert := assert.New(t)
	tr, child1, _ := buildSample(t, false)

	var child1Ref string
	for _, ref := range tr.Refs() {
		r, _ := tr.Rule(ref)
		if r.ID() == child1.ID() {
			child1Ref = ref
		}
	}
	assert.NotEmpty(child1Ref)

	rows := tr.canvas.Rows()
	// child1 sits directly below root with no gap, so its own row (row 1)
	// carries its letters, not a connector, and its ref never reaches
	// row 2 (child2's row).
	assert.Equal('a', rows[1][0].Char)
	assert.True(rows[1][0].Triggers[child1Ref])
	assert.False(rows[2][0].Triggers[child1Ref])
}

// Property 7 — printed cell count matches character count, and every
// non-empty cell's own ref is a member of its own trigger set.
func Test_Canvas_EveryDrawnCellTriggersItsOwnRef(t *testing.T) {
	assert := assert.New(t)
	tr, _, _ := buildSample(t, true)

	printed := 0
	for _, row := range tr.canvas.Rows() {
		for _, cell := range row {
			if cell.Ref == "" {
				continue
			}
			printed++
			assert.True(cell.Triggers[cell.Ref], "cell %q at ref %s must trigger its own ref", string(cell.Char), cell.Ref)
		}
	}
	// "ab" + "cde" + "abcde" = 2 + 3 + 5 characters printed across the tree.
	assert.Equal(10, printed)
}

func Test_Caption_RootUsesOwnDescription(t *testing.T) {
	assert := assert.New(t)
	tr, _, _ := buildSample(t, true)
	assert.Equal("whole word", tr.Caption(tr.RootRef()))
}

func Test_Caption_LeafUsesKeysColonDescription(t *testing.T) {
	assert := assert.New(t)
	tr, child1, _ := buildSample(t, true)

	var ref string
	for _, r := range tr.Refs() {
		rule, _ := tr.Rule(r)
		if rule.ID() == child1.ID() {
			ref = r
		}
	}
	assert.Equal("K1: first pair", tr.Caption(ref))
}

func Test_Build_CompressedSharesRowsByDepth(t *testing.T) {
	assert := assert.New(t)
	tr, _, _ := buildSample(t, true)
	rows := tr.canvas.Rows()
	assert.Len(rows, 2, "compressed mode gives one row per depth level: root is row 0, children share row 1")
}

func Test_Draw_CompatibilityModeEmitsTable(t *testing.T) {
	assert := assert.New(t)
	child := leafRule("A", "A", "a", "letter a")
	rb := rules.NewRuleMapBuilder()
	assert.NoError(rb.Add(&child, 0, 1))
	root := rules.New("ROOT2", "KEYS2", "a", rules.NewSet(), "single letter", rb.Freeze())

	tr := Build(root, false, true)
	markup := tr.Draw(tr.RootRef(), false)
	assert.Contains(markup, "<table>")
	assert.Contains(markup, "<td>")
}
