package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ALH477/nixos-tui/internal/catalog"
)

const navPaneWidth = 26

// renderSettings renders the two-pane settings screen: section list on
// the left, the active section's fields on the right. The focused pane
// gets the focus border.
func (m Model) renderSettings() string {
	height := m.contentHeight()
	contentWidth := m.width - navPaneWidth

	nav := m.renderPanel(m.renderSectionList(), navPaneWidth, height,
		"Sections", borderPlain, m.focusPane == paneNav)
	content := m.renderPanel(m.renderFieldList(contentWidth-2), contentWidth, height,
		m.currentSection().Title, borderPlain, m.focusPane == paneContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, nav, content)
}

func (m Model) renderSectionList() string {
	var b strings.Builder
	for i, sec := range m.sections {
		label := sec.Title
		if n := m.values.SectionModified(sec); n > 0 {
			label = fmt.Sprintf("%s (%d)", sec.Title, n)
		}
		line := padRight(" "+label, navPaneWidth-2)
		switch {
		case i == m.sectionCursor && m.focusPane == paneNav:
			line = m.styles.Selected.Render(line)
		case i == m.sectionCursor:
			line = m.styles.AccentText.Render(line)
		default:
			line = m.styles.Text.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFieldList(width int) string {
	sec := m.currentSection()
	labelWidth := 0
	for _, f := range sec.Fields {
		if w := visibleWidth(f.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for i, f := range sec.Fields {
		selected := i == m.fieldCursor && m.focusPane == paneContent

		marker := " "
		if m.values.Modified(f.ID) {
			marker = "●"
		}

		var value string
		if selected && m.editing {
			value = m.editInput.View()
		} else {
			value = m.fieldDisplay(f)
		}

		line := fmt.Sprintf(" %s %s  %s", marker, padRight(f.Label, labelWidth), value)
		if selected && !m.editing {
			line = m.styles.Selected.Render(padRight(line, width))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Description footer for the selected field.
	if m.focusPane == paneContent && len(sec.Fields) > 0 {
		f := sec.Fields[m.fieldCursor]
		b.WriteString("\n")
		b.WriteString(m.styles.FaintText.Render(strings.Repeat("─", min(width, 40))))
		b.WriteString("\n ")
		b.WriteString(m.styles.MutedText.Render(clip(f.Description, width-2)))
		b.WriteString("\n ")
		b.WriteString(m.styles.FaintText.Render(m.fieldHint(f)))
	}
	return b.String()
}

// fieldDisplay formats a field's current value for the list.
func (m Model) fieldDisplay(f catalog.Field) string {
	v := m.values.Get(f.ID)
	switch f.Type {
	case catalog.TypeBool:
		if v.Bool {
			return m.styles.SuccessText.Render("[x] enabled")
		}
		return m.styles.MutedText.Render("[ ] disabled")
	case catalog.TypeChoice:
		return m.styles.InfoText.Render("◂ " + v.Str + " ▸")
	case catalog.TypeInt:
		return m.styles.Text.Render(strconv.Itoa(v.Int))
	default:
		return m.styles.Text.Render(v.Str)
	}
}

// fieldHint names the keys that operate on the selected field.
func (m Model) fieldHint(f catalog.Field) string {
	switch f.Type {
	case catalog.TypeBool:
		return "enter toggles"
	case catalog.TypeChoice:
		return "enter or h/l cycles choices"
	case catalog.TypeInt:
		return fmt.Sprintf("enter edits (%d-%d)", f.Min, f.Max)
	default:
		return "enter edits"
	}
}

// fieldText is the editable text form of a value, used to seed the edit
// buffer.
func fieldText(f catalog.Field, v catalog.Value) string {
	switch f.Type {
	case catalog.TypeInt:
		return strconv.Itoa(v.Int)
	case catalog.TypeBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}
