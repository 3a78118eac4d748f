package graph

import "fmt"

// rootColor and baseColor are the two anchors of the depth/row color ramp,
// ported verbatim from original_source/spectra_lexer/display/html.py's
// _ROOT_COLOR and _BASE_COLOR.
var (
	rootColor = [3]int{255, 64, 64}
	baseColor = [3]int{0, 0, 255}
)

// rgbColor computes the highlight color for a cell at the given depth and
// row, ported from html.py's _rgb_color: the root rule is always a fixed
// red, and every other node ramps from blue towards white as its depth and
// row increase.
func rgbColor(depth, row int) (r, g, b int) {
	if depth == 0 && row == 0 {
		return rootColor[0], rootColor[1], rootColor[2]
	}
	r, g, b = baseColor[0], baseColor[1], baseColor[2]
	r += minInt(192, depth*64)
	g += minInt(192, row*8)
	return r, g, b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func rgbToHTML(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
