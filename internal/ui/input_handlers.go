package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ALH477/nixos-tui/internal/catalog"
)

// handleKey classifies keyboard input and routes it by UI mode: quit is
// honored everywhere, then the help overlay, then the editing sub-state,
// then the active screen's rules.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Modal help swallows everything except close keys.
	if m.helpVisible {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Confirm) {
			m.helpVisible = false
		}
		return m, nil
	}

	// Inline editing owns the keyboard until commit or cancel.
	if m.editing {
		return m.handleEditKey(msg)
	}

	if key.Matches(msg, m.keys.Help) {
		m.helpVisible = true
		return m, nil
	}

	switch m.screen {
	case screenHome:
		return m.handleHomeKey(msg)
	case screenSettings:
		return m.handleSettingsKey(msg)
	case screenTutorials:
		return m.handleTutorialsKey(msg)
	case screenTutorialDetail:
		return m.handleTutorialDetailKey(msg)
	case screenExport:
		return m.handleExportKey(msg)
	}

	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.GoSettings):
		m.screen = screenSettings
		m.focusPane = paneNav
	case key.Matches(msg, m.keys.GoTutorials):
		m.screen = screenTutorials
	case key.Matches(msg, m.keys.GoExport):
		m.screen = screenExport
		m.clampExportScroll()
	case key.Matches(msg, m.keys.Back), msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), msg.String() == "q":
		m.screen = screenHome
		m.focusPane = paneNav
		return m, nil

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focusPane == paneNav {
			m.focusPane = paneContent
			m.fieldCursor = 0
		} else {
			m.focusPane = paneNav
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, m.saveConfig()

	case key.Matches(msg, m.keys.Reset):
		sec := m.currentSection()
		m.values.ResetSection(sec)
		return m, m.setStatus(statusInfo, sec.Title+" reset to defaults")

	case key.Matches(msg, m.keys.Up):
		if m.focusPane == paneNav {
			m.sectionCursor = wrap(m.sectionCursor-1, len(m.sections))
		} else {
			m.fieldCursor = wrap(m.fieldCursor-1, len(m.currentSection().Fields))
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.focusPane == paneNav {
			m.sectionCursor = wrap(m.sectionCursor+1, len(m.sections))
		} else {
			m.fieldCursor = wrap(m.fieldCursor+1, len(m.currentSection().Fields))
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.focusPane == paneContent {
			m.adjustField(m.currentField(), -1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.focusPane == paneContent {
			m.adjustField(m.currentField(), +1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.focusPane == paneNav {
			m.focusPane = paneContent
			m.fieldCursor = 0
			return m, nil
		}
		return m.activateField(m.currentField())
	}

	return m, nil
}

func (m Model) handleTutorialsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), msg.String() == "q":
		m.screen = screenHome
	case key.Matches(msg, m.keys.Up):
		m.tutorialCursor = wrap(m.tutorialCursor-1, len(m.tutorials))
	case key.Matches(msg, m.keys.Down):
		m.tutorialCursor = wrap(m.tutorialCursor+1, len(m.tutorials))
	case key.Matches(msg, m.keys.Confirm):
		m.screen = screenTutorialDetail
		m.stepCursor = 0
	}
	return m, nil
}

func (m Model) handleTutorialDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tut := m.tutorials[m.tutorialCursor]
	switch {
	case key.Matches(msg, m.keys.Back), msg.String() == "q":
		// Detail backs up to the tutorial list, not home.
		m.screen = screenTutorials

	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Confirm):
		if m.stepCursor < len(tut.Steps)-1 {
			m.stepCursor++
			return m, nil
		}
		// Advancing past the last step completes the tutorial.
		// Idempotent: finishing again only re-adds to the set.
		m.completed[tut.ID] = true
		m.screen = screenTutorials
		return m, m.setStatus(statusInfo, "Tutorial complete: "+tut.Title)

	case key.Matches(msg, m.keys.Left):
		if m.stepCursor > 0 {
			m.stepCursor--
		}
	}
	return m, nil
}

func (m Model) handleExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), msg.String() == "q":
		m.screen = screenHome
		return m, nil
	case key.Matches(msg, m.keys.GoSettings):
		m.screen = screenSettings
		m.focusPane = paneNav
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m, m.saveConfig()
	case key.Matches(msg, m.keys.Up):
		m.exportScroll--
	case key.Matches(msg, m.keys.Down):
		m.exportScroll++
	case key.Matches(msg, m.keys.PageUp):
		m.exportScroll -= m.exportVisibleRows() / 2
	case key.Matches(msg, m.keys.PageDown):
		m.exportScroll += m.exportVisibleRows() / 2
	case key.Matches(msg, m.keys.Top):
		m.exportScroll = 0
	case key.Matches(msg, m.keys.Bottom):
		m.exportScroll = len(m.values.Lines())
	}
	m.clampExportScroll()
	return m, nil
}

// handleEditKey processes keys while the inline editor is active. The
// textinput component owns insertion, backspace and cursor movement.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		f := m.currentField()
		val, err := validateField(f, m.editInput.Value())
		if err != nil {
			// Rejected commit: stay in edit mode, keep the buffer.
			return m, m.setStatus(statusWarn, err.Error())
		}
		m.values.Set(f.ID, val)
		m.editing = false
		m.editInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.editing = false
		m.editInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// activateField acts on the selected field: booleans toggle, choices
// cycle, strings and numbers open the inline editor.
func (m Model) activateField(f catalog.Field) (tea.Model, tea.Cmd) {
	switch f.Type {
	case catalog.TypeBool:
		cur := m.values.Get(f.ID)
		m.values.Set(f.ID, catalog.Value{Bool: !cur.Bool})
		return m, nil

	case catalog.TypeChoice:
		m.adjustField(f, +1)
		return m, nil

	case catalog.TypeString, catalog.TypeInt:
		return m.startEdit(f)
	}
	return m, nil
}

// startEdit snapshots the field's current value into the edit buffer.
func (m Model) startEdit(f catalog.Field) (tea.Model, tea.Cmd) {
	m.editing = true
	m.editInput.SetValue(fieldText(f, m.values.Get(f.ID)))
	m.editInput.CursorEnd()
	return m, m.editInput.Focus()
}

// adjustField cycles a choice field by dir; other types ignore it.
func (m *Model) adjustField(f catalog.Field, dir int) {
	if f.Type != catalog.TypeChoice || len(f.Choices) == 0 {
		return
	}
	cur := m.values.Get(f.ID).Str
	idx := 0
	for i, c := range f.Choices {
		if c == cur {
			idx = i
			break
		}
	}
	idx = wrap(idx+dir, len(f.Choices))
	m.values.Set(f.ID, catalog.Value{Str: f.Choices[idx]})
}

// clampExportScroll keeps the export offset within the generated text.
// Clamping lives here, on the input side; the renderer never adjusts it.
func (m *Model) clampExportScroll() {
	max := len(m.values.Lines()) - m.exportVisibleRows()
	if max < 0 {
		max = 0
	}
	if m.exportScroll > max {
		m.exportScroll = max
	}
	if m.exportScroll < 0 {
		m.exportScroll = 0
	}
}

// exportVisibleRows is the number of text lines the export panel shows.
func (m Model) exportVisibleRows() int {
	rows := m.contentHeight() - 2 // panel borders
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) currentSection() catalog.Section {
	return m.sections[m.sectionCursor]
}

func (m Model) currentField() catalog.Field {
	return m.currentSection().Fields[m.fieldCursor]
}

// wrap keeps a cursor within [0, n) with modulo wrap-around on movement.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
