package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// fractalDepth picks the Sierpinski depth for the home screen. The base
// depth tracks hardware parallelism - clamp(ceil(log2(max(cpus,2))), 2, 6) -
// then shrinks until the rendered triangle fits in rows x cols. Depth is
// recomputed on every render so a resize immediately reflows the shape.
func fractalDepth(cpus, rows, cols int) int {
	if cpus < 2 {
		cpus = 2
	}
	depth := int(math.Ceil(math.Log2(float64(cpus))))
	if depth < 2 {
		depth = 2
	}
	if depth > 6 {
		depth = 6
	}
	for depth > 1 && !fractalFits(depth, rows, cols) {
		depth--
	}
	return depth
}

// fractalFits reports whether a depth-d triangle fits in the given cells.
// Two logical rows pack into one terminal row; a row of 2^d logical cells
// spans 2*2^d-1 columns at the base.
func fractalFits(depth, rows, cols int) bool {
	size := 1 << depth
	return size/2 <= rows && 2*size-1 <= cols
}

// pascalFilled reports whether Pascal's triangle cell (r, k) is odd.
// C(r,k) is odd iff k's binary digits are a subset of r's (Kummer's
// theorem mod 2), which makes the fill test O(1) per cell.
func pascalFilled(r, k int) bool {
	return r&k == k
}

// cellFilled reports whether absolute column c of logical row r is part
// of the triangle. Rows are centered: row r spans 2r+1 candidate columns
// inside a total width of 2*size-1, with triangle cells on every second
// column.
func cellFilled(r, c, size int) bool {
	offset := c - (size - 1 - r)
	if offset < 0 || offset > 2*r || offset%2 != 0 {
		return false
	}
	return pascalFilled(r, offset/2)
}

// fractalRamp precomputes one color per logical row: two linear gradient
// segments across the theme's three anchors (cool -> mid for the top
// half, mid -> warm for the bottom).
func fractalRamp(t Theme, size int) []lipgloss.Color {
	cool, _ := colorful.Hex(t.FractalCool)
	mid, _ := colorful.Hex(t.FractalMid)
	warm, _ := colorful.Hex(t.FractalWarm)

	ramp := make([]lipgloss.Color, size)
	for r := 0; r < size; r++ {
		pos := 0.0
		if size > 1 {
			pos = float64(r) / float64(size-1)
		}
		var c colorful.Color
		if pos < 0.5 {
			c = cool.BlendRgb(mid, pos*2)
		} else {
			c = mid.BlendRgb(warm, (pos-0.5)*2)
		}
		ramp[r] = lipgloss.Color(c.Clamped().Hex())
	}
	return ramp
}

// renderFractal draws the triangle for the given depth plus a caption,
// centered within width. Each terminal row packs two logical rows using
// half-block glyphs: foreground colors the top half, background the
// bottom.
func (m Model) renderFractal(depth, width int) string {
	size := 1 << depth
	ramp := fractalRamp(m.theme, size)
	shapeWidth := 2*size - 1
	margin := (width - shapeWidth) / 2
	if margin < 0 {
		margin = 0
	}
	indent := strings.Repeat(" ", margin)

	var b strings.Builder
	for tr := 0; tr < size/2; tr++ {
		top := 2 * tr
		bottom := top + 1
		b.WriteString(indent)
		for c := 0; c < shapeWidth; c++ {
			topOn := cellFilled(top, c, size)
			bottomOn := cellFilled(bottom, c, size)
			switch {
			case topOn && bottomOn:
				b.WriteString(lipgloss.NewStyle().
					Foreground(ramp[top]).
					Background(ramp[bottom]).
					Render("▀"))
			case topOn:
				b.WriteString(lipgloss.NewStyle().Foreground(ramp[top]).Render("▀"))
			case bottomOn:
				b.WriteString(lipgloss.NewStyle().Foreground(ramp[bottom]).Render("▄"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	caption := fmt.Sprintf("sierpinski · depth %d · %d threads", depth, m.cpus)
	capMargin := (width - visibleWidth(caption)) / 2
	if capMargin < 0 {
		capMargin = 0
	}
	b.WriteString(strings.Repeat(" ", capMargin))
	b.WriteString(m.styles.FaintText.Render(caption))
	return b.String()
}
