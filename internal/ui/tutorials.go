package ui

import (
	"fmt"
	"strings"
)

// renderTutorials renders the tutorial list with completion marks.
func (m Model) renderTutorials() string {
	var b strings.Builder
	for i, tut := range m.tutorials {
		mark := " "
		if m.completed[tut.ID] {
			mark = m.styles.SuccessText.Render("✓")
		}
		line := fmt.Sprintf(" %s %s  %s", mark,
			padRight(tut.Title, 28),
			m.styles.MutedText.Render(tut.Summary))
		if i == m.tutorialCursor {
			line = m.styles.Selected.Render(padRight(fmt.Sprintf(" %s %s  %s",
				ternary(m.completed[tut.ID], "✓", " "),
				padRight(tut.Title, 28), tut.Summary), m.width-4))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.renderPanel(b.String(), m.width, m.contentHeight(),
		"Tutorials", borderPlain, true)
}

// renderTutorialDetail renders one step of the selected tutorial.
func (m Model) renderTutorialDetail() string {
	tut := m.tutorials[m.tutorialCursor]
	step := tut.Steps[m.stepCursor]
	inner := m.width - 4

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(m.styles.FaintText.Render(fmt.Sprintf("Step %d of %d", m.stepCursor+1, len(tut.Steps))))
	b.WriteString("\n\n ")
	b.WriteString(m.styles.AccentText.Bold(true).Render(step.Title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Width(inner).PaddingLeft(1).Render(step.Body))
	b.WriteString("\n")

	if step.Code != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(step.Code, "\n") {
			b.WriteString(" ")
			b.WriteString(m.styles.Code.Render(line))
			b.WriteString("\n")
		}
	}

	if step.Tip != "" {
		b.WriteString("\n ")
		b.WriteString(m.styles.InfoText.Render("Tip: "))
		b.WriteString(m.styles.MutedText.Width(inner - 5).Render(step.Tip))
		b.WriteString("\n")
	}

	return m.renderPanel(b.String(), m.width, m.contentHeight(),
		tut.Title, borderDouble, true)
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
