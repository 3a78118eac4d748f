// Package graph turns a resolved rule tree into a printable 2D layout and
// HTML markup, per spec.md §4.F. It is grounded on
// original_source/spectra_lexer/graph/graph.py (Canvas, the post-order
// layout walk, and the body/connector bold-threshold split) and
// original_source/spectra_lexer/display/html.py (the color ramp and markup
// wrapping), since base.py's GridElement/IBody/IConnectors abstractions were
// never retrieved into the pack; the layout math here is rebuilt from
// spec.md's prose plus what graph.py's GraphNode.iter_elements does with
// those abstractions' outputs.
package graph

import (
	"fmt"
	"strings"

	"github.com/sachac/spectra/rules"
)

// GraphTree is the frozen, drawable layout of one rule's decomposition.
// Build it once per analyzed translation; Draw and Caption are cheap,
// read-only operations against the same canvas.
type GraphTree struct {
	root          *node
	canvas        *Canvas
	byRef         map[string]*node
	refs          []string
	compressed    bool
	compatibility bool
}

// Build lays out rule's rule tree. compressed lets same-depth siblings share
// a row (the default, and the only mode graph.py itself implements);
// compatibility instead gives every node its own row and switches Draw to
// emit an HTML table instead of a <pre> block, for consumers that can't rely
// on monospace alignment (spec.md §4.F).
func Build(rule rules.StenoRule, compressed, compatibility bool) *GraphTree {
	counter := 0
	root := buildNodes(rule, 0, 0, &counter)
	assignCols(root, 0)

	if compressed && !compatibility {
		assignRowsCompressed(root)
	} else {
		rowCounter := 0
		assignRowsExpanded(root, &rowCounter)
	}

	t := &GraphTree{root: root, byRef: make(map[string]*node), compressed: compressed, compatibility: compatibility}
	t.index(root)

	columnRefs := make(map[int]map[string]bool)
	collectColumnRefs(root, columnRefs)

	maxRow, maxCol := bounds(root)
	canvas := NewCanvas(maxRow+1, maxCol+1)
	t.render(root, canvas, columnRefs)
	t.canvas = canvas
	return t
}

func (t *GraphTree) index(n *node) {
	t.byRef[n.ref] = n
	t.refs = append(t.refs, n.ref)
	for _, c := range n.children {
		t.index(c)
	}
}

// render writes n's own text row plus the connector columns linking it down
// to each child, then recurses. A body cell's BoldAt is 1 minus "always
// bold" (leaf rules, with no children, get 0 and are bold on any row;
// composites get 1 and are bold from canvas row 1 down, so only a composite
// on row 0 needs intense mode to turn bold) — ported verbatim from graph.py's
// GraphNode.iter_elements. A connector cell's BoldAt is the literal 100
// graph.py uses, which no ordinary row count reaches, so connectors only
// turn bold under intense highlighting.
func (t *GraphTree) render(n *node, canvas *Canvas, columnRefs map[int]map[string]bool) {
	text := []rune(n.text())
	boldAt := 1
	if len(n.children) == 0 {
		boldAt = 0
	}
	row := make([]Cell, len(text))
	for i, ch := range text {
		col := n.col + i
		row[i] = Cell{Char: ch, Ref: n.ref, Depth: n.depth, BoldAt: boldAt, Triggers: columnRefs[col]}
	}
	canvas.WriteRow(row, n.row, n.col)

	for _, child := range n.children {
		if child.row-n.row > 1 {
			descendants := make(map[string]bool)
			collectDescendantRefs(child, descendants)
			conn := make([]Cell, child.width())
			for i := range conn {
				conn[i] = Cell{Char: '|', Ref: child.ref, Depth: child.depth, BoldAt: 100, Triggers: descendants}
			}
			for r := n.row + 1; r < child.row; r++ {
				canvas.WriteRow(conn, r, child.col)
			}
		}
		t.render(child, canvas, columnRefs)
	}
}

// RootRef returns the ref of the tree's top-level rule.
func (t *GraphTree) RootRef() string { return t.root.ref }

// Refs returns every node ref in the tree, in pre-order.
func (t *GraphTree) Refs() []string {
	out := make([]string, len(t.refs))
	copy(out, t.refs)
	return out
}

// Rule returns the rule a ref stands for.
func (t *GraphTree) Rule(ref string) (rules.StenoRule, bool) {
	n, ok := t.byRef[ref]
	if !ok {
		return rules.StenoRule{}, false
	}
	return n.rule, true
}

// Caption returns the one-line description shown for ref: the root rule's
// own description, a "keys -> letters: description" form for a composite,
// or "keys: description" for a leaf (spec.md §4.F).
func (t *GraphTree) Caption(ref string) string {
	n, ok := t.byRef[ref]
	if !ok {
		return ""
	}
	if n == t.root {
		return n.rule.Description()
	}
	if len(n.children) > 0 && n.rule.Letters() != "" {
		return fmt.Sprintf("%s -> %s: %s", n.rule.Keys(), n.rule.Letters(), n.rule.Description())
	}
	return fmt.Sprintf("%s: %s", n.rule.Keys(), n.rule.Description())
}

// Draw renders the whole canvas as markup, highlighting every cell whose
// trigger set contains ref. intense forces every highlighted cell bold
// regardless of its own bold threshold, for a caller emphasizing a selection
// (e.g. the currently hovered rule) rather than just marking it.
func (t *GraphTree) Draw(ref string, intense bool) string {
	rows := t.canvas.Rows()
	var sb strings.Builder
	if t.compatibility {
		sb.WriteString("<table>")
		for i, r := range rows {
			sb.WriteString("<tr>")
			for _, cell := range r {
				sb.WriteString("<td>")
				sb.WriteString(t.renderCell(cell, ref, i, intense))
				sb.WriteString("</td>")
			}
			sb.WriteString("</tr>")
		}
		sb.WriteString("</table>")
		return sb.String()
	}

	sb.WriteString("<pre>")
	for i, r := range rows {
		for _, cell := range r {
			sb.WriteString(t.renderCell(cell, ref, i, intense))
		}
		if i < len(rows)-1 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("</pre>")
	return sb.String()
}

func (t *GraphTree) renderCell(cell Cell, ref string, row int, intense bool) string {
	text := escapeHTML(string(cell.Char))
	if cell.Triggers == nil || !cell.Triggers[ref] {
		return text
	}
	r, g, b := rgbColor(cell.Depth, row)
	out := fmt.Sprintf(`<span style="color:%s;">%s</span>`, rgbToHTML(r, g, b), text)
	if intense || cell.BoldAt <= row {
		out = "<b>" + out + "</b>"
	}
	return out
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
