package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ALH477/nixos-tui/internal/version"
)

// renderHome renders the landing screen: title, the Sierpinski
// visualization sized to the current terminal, and the screen menu.
func (m Model) renderHome() string {
	var b strings.Builder

	title := m.styles.Title.Render("NixOS Configuration")
	sub := m.styles.MutedText.Render("declarative system setup · " + version.Version)

	menu := []struct{ key, label, desc string }{
		{"s", "Settings", "browse and edit configuration options"},
		{"t", "Tutorials", "step-by-step NixOS walkthroughs"},
		{"e", "Export", "preview the generated configuration.nix"},
		{"?", "Help", "keyboard reference"},
		{"q", "Quit", "leave without writing anything"},
	}

	var menuLines []string
	for _, item := range menu {
		line := m.styles.WarningText.Render(item.key) +
			"  " + m.styles.Text.Render(padRight(item.label, 10)) +
			m.styles.FaintText.Render(item.desc)
		menuLines = append(menuLines, line)
	}
	menuBlock := strings.Join(menuLines, "\n")

	// Rows left for the triangle: total content minus title block,
	// menu block and the surrounding blank lines.
	chrome := 2 + 2 + len(menu) + 2
	fractalRows := m.contentHeight() - chrome - 1 // caption line
	depth := fractalDepth(m.cpus, fractalRows, m.width)

	b.WriteString("\n")
	b.WriteString(centerLine(title, m.width))
	b.WriteString("\n")
	b.WriteString(centerLine(sub, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderFractal(depth, m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menuBlock))

	return lipgloss.PlaceVertical(m.contentHeight(), lipgloss.Top, b.String())
}

// centerLine centers a single styled line within width using visible
// width, so wide glyphs do not skew the placement.
func centerLine(s string, width int) string {
	gap := (width - visibleWidth(s)) / 2
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
