package ui

import (
	"fmt"
	"strings"
)

// renderExport renders the generated configuration preview. The scroll
// offset was clamped by the input handler; the renderer only slices.
func (m Model) renderExport() string {
	lines := m.values.Lines()
	rows := m.exportVisibleRows()

	start := m.exportScroll
	end := start + rows
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(" ")
		b.WriteString(m.styles.FaintText.Render(fmt.Sprintf("%3d ", i+1)))
		b.WriteString(m.styles.Text.Render(lines[i]))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("configuration.nix · %d-%d of %d", start+1, end, len(lines))
	return m.renderPanel(b.String(), m.width, m.contentHeight(),
		title, borderThick, true)
}
