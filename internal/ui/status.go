package ui

import "strings"

// renderStatusBar renders the bottom line: a transient message when one
// is active, followed by context-sensitive key hints for the current
// screen.
func (m Model) renderStatusBar() string {
	var parts []string

	if m.statusText != "" {
		var styled string
		switch m.statusLevel {
		case statusWarn:
			styled = m.styles.WarningText.Render(m.statusText)
		case statusError:
			styled = m.styles.DangerText.Render(m.statusText)
		default:
			styled = m.styles.SuccessText.Render(m.statusText)
		}
		parts = append(parts, styled)
	}

	parts = append(parts, m.styles.MutedText.Render(m.keyHints()))

	line := strings.Join(parts, m.styles.FaintText.Render("  │  "))
	return m.styles.Footer.Width(m.width).MaxHeight(1).Render(clip(line, m.width-2))
}

// keyHints returns the hint text for the active screen and mode.
func (m Model) keyHints() string {
	if m.helpVisible {
		return "esc close"
	}
	if m.editing {
		return "enter commit · esc cancel"
	}
	switch m.screen {
	case screenHome:
		return "s settings · t tutorials · e export · ? help · q quit"
	case screenSettings:
		return "tab pane · enter select · r reset section · w write · ? help · esc home"
	case screenTutorials:
		return "enter open · j/k move · ? help · esc home"
	case screenTutorialDetail:
		return "l next · h previous · esc list"
	case screenExport:
		return "j/k scroll · g/G top/bottom · s settings · w write · esc home"
	}
	return ""
}
