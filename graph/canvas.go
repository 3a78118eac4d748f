package graph

// Cell is a single printed character position together with the metadata
// Draw needs to decide how to render it: which rule it belongs to, its
// depth in the rule tree, the first canvas row (counting down from 0) on
// which it renders bold once highlighted, and the set of node refs whose
// highlight should light it up.
type Cell struct {
	Char     rune
	Ref      string
	Depth    int
	BoldAt   int
	Triggers map[string]bool
}

func emptyCell() Cell {
	return Cell{Char: ' ', BoldAt: -1}
}

func (c Cell) isEmpty() bool {
	return c.Ref == "" && c.Triggers == nil && c.Char == ' '
}

// Canvas is a mutable 2D grid of Cells with auto-expanding origin: a write
// at a negative row or column shifts the whole grid and records an offset,
// so every caller can keep addressing cells the same way regardless of how
// far the tree has grown past its original bounds. Ported directly from
// original_source/spectra_lexer/graph/graph.py's Canvas.
type Canvas struct {
	grid      [][]Cell
	rowOffset int
	colOffset int
}

// NewCanvas makes a blank grid of the given size. Both dimensions must be
// positive; the layout pass that calls this always knows the exact bounds
// it needs up front.
func NewCanvas(rows, cols int) *Canvas {
	grid := make([][]Cell, rows)
	for i := range grid {
		row := make([]Cell, cols)
		for j := range row {
			row[j] = emptyCell()
		}
		grid[i] = row
	}
	return &Canvas{grid: grid}
}

// Write places el at (row, col), expanding the grid's origin if needed.
func (c *Canvas) Write(el Cell, row, col int) {
	row += c.rowOffset
	if row < 0 {
		c.shiftRows(-row)
		row = 0
	}
	col += c.colOffset
	if col < 0 {
		c.shiftCols(-col)
		col = 0
	}
	c.grid[row][col] = el
}

// WriteRow writes seq across a row starting at (row, col).
func (c *Canvas) WriteRow(seq []Cell, row, col int) {
	row += c.rowOffset
	if row < 0 {
		c.shiftRows(-row)
		row = 0
	}
	col += c.colOffset
	if col < 0 {
		c.shiftCols(-col)
		col = 0
	}
	for _, el := range seq {
		c.grid[row][col] = el
		col++
	}
}

// ReplaceEmpty fills every still-empty cell of row with repl, for a row
// meant to span the whole canvas width. Build does not call it; the node
// tree has no separator kind.
func (c *Canvas) ReplaceEmpty(repl Cell, row int) {
	row += c.rowOffset
	r := c.grid[row]
	for col, item := range r {
		if item.isEmpty() {
			r[col] = repl
		}
	}
}

func (c *Canvas) shiftRows(n int) {
	c.rowOffset += n
	ncols := 0
	if len(c.grid) > 0 {
		ncols = len(c.grid[0])
	}
	pad := make([][]Cell, n)
	for i := range pad {
		row := make([]Cell, ncols)
		for j := range row {
			row[j] = emptyCell()
		}
		pad[i] = row
	}
	c.grid = append(pad, c.grid...)
}

func (c *Canvas) shiftCols(n int) {
	c.colOffset += n
	for i, r := range c.grid {
		pad := make([]Cell, n)
		for j := range pad {
			pad[j] = emptyCell()
		}
		c.grid[i] = append(pad, r...)
	}
}

// Rows returns a defensive copy of every grid row in order.
func (c *Canvas) Rows() [][]Cell {
	out := make([][]Cell, len(c.grid))
	for i, r := range c.grid {
		cp := make([]Cell, len(r))
		copy(cp, r)
		out[i] = cp
	}
	return out
}
