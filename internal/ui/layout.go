package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// visibleWidth measures the display columns a string occupies. Control
// sequences contribute nothing; any non-ASCII rune is counted as two
// columns. The two-column rule is a deliberate approximation for wide
// glyphs and emoji - it over-counts accented characters, which is an
// accepted trade-off (see DESIGN.md).
func visibleWidth(s string) int {
	width := 0
	for _, r := range ansi.Strip(s) {
		if r < 0x80 {
			width++
		} else {
			width += 2
		}
	}
	return width
}

// padRight pads a string with spaces until its visible width reaches
// width. Strings already at or beyond width are returned unchanged.
func padRight(s string, width int) string {
	gap := width - visibleWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// padLeft prepends spaces until the visible width reaches width.
func padLeft(s string, width int) string {
	gap := width - visibleWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// clip truncates a string so its visible width fits within width,
// appending an ellipsis when anything was cut. Truncation decisions use
// visible width, never rune count.
func clip(s string, width int) string {
	if visibleWidth(s) <= width {
		return s
	}
	// The ellipsis itself is non-ASCII and occupies two columns.
	const ellipsis = "…"
	budget := width - 2
	if budget < 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := 1
		if r >= 0x80 {
			w = 2
		}
		if used+w > budget {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + ellipsis
}

// panelBorder selects the glyph set used for a panel frame.
type panelBorder int

const (
	borderPlain panelBorder = iota
	borderDouble
	borderThick
)

type borderGlyphs struct {
	topLeft, topRight       string
	bottomLeft, bottomRight string
	horizontal, vertical    string
}

var borderSets = map[panelBorder]borderGlyphs{
	borderPlain:  {"╭", "╮", "╰", "╯", "─", "│"},
	borderDouble: {"╔", "╗", "╚", "╝", "═", "║"},
	borderThick:  {"┏", "┓", "┗", "┛", "━", "┃"},
}

// renderPanel frames content in a bordered box of exactly width x height
// cells. A non-empty title is centered in the top border by visible
// width, so titles containing wide glyphs stay visually centered. The
// caller guarantees width and height are at least 2 (the minimum-size
// guard runs before any panel is drawn).
func (m Model) renderPanel(content string, width, height int, title string, border panelBorder, focused bool) string {
	glyphs := borderSets[border]
	frame := m.styles.Border
	if focused {
		frame = m.styles.BorderFocus
	}

	inner := width - 2
	var b strings.Builder

	// Top border with centered title. Border glyphs are non-ASCII and
	// measure two columns each under the width heuristic, so the fill is
	// computed in glyph counts, not columns.
	if title != "" {
		label := " " + clip(title, inner-2) + " "
		lw := visibleWidth(label)
		left := (inner - lw) / 2
		right := inner - lw - left
		if left < 0 {
			left, right = 0, 0
		}
		b.WriteString(frame.Render(glyphs.topLeft + strings.Repeat(glyphs.horizontal, left)))
		b.WriteString(m.styles.Title.Render(label))
		b.WriteString(frame.Render(strings.Repeat(glyphs.horizontal, right) + glyphs.topRight))
	} else {
		b.WriteString(frame.Render(glyphs.topLeft + strings.Repeat(glyphs.horizontal, inner) + glyphs.topRight))
	}
	b.WriteString("\n")

	lines := strings.Split(content, "\n")
	for row := 0; row < height-2; row++ {
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		if visibleWidth(line) > inner {
			line = clip(line, inner)
		}
		b.WriteString(frame.Render(glyphs.vertical))
		b.WriteString(padRight(line, inner))
		b.WriteString(frame.Render(glyphs.vertical))
		b.WriteString("\n")
	}

	b.WriteString(frame.Render(glyphs.bottomLeft + strings.Repeat(glyphs.horizontal, inner) + glyphs.bottomRight))
	return b.String()
}
