package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ALH477/nixos-tui/internal/catalog"
	"github.com/ALH477/nixos-tui/internal/nixgen"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{
		Values:     catalog.NewValues(nixgen.Generate),
		ThemeName:  "Nightfox",
		OutputPath: filepath.Join(t.TempDir(), "configuration.nix"),
		CPUs:       8,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press feeds key chunks through Update, discarding commands.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

// pressCmd feeds one key and returns the resulting command too.
func pressCmd(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(k))
	return next.(Model), cmd
}

// clearHostnameEdit backspaces the seeded "nixos" out of the edit buffer.
func clearHostnameEdit(t *testing.T, m Model) Model {
	t.Helper()
	return press(t, m, "backspace", "backspace", "backspace", "backspace", "backspace")
}

func TestScenario_InvalidHostnameRejected(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "tab", "enter") // settings → content → edit hostname
	if !m.editing {
		t.Fatalf("expected editing mode on hostname")
	}

	m = clearHostnameEdit(t, m)
	m = press(t, m, "-bad")
	m, cmd := pressCmd(t, m, "enter")

	if !m.editing {
		t.Fatalf("rejected commit should stay in edit mode")
	}
	if got := m.values.Get(catalog.FieldHostname).Str; got != "nixos" {
		t.Fatalf("hostname = %q after rejected commit, want nixos", got)
	}
	if m.statusLevel != statusWarn || m.statusText == "" {
		t.Fatalf("expected warning status, got level %v text %q", m.statusLevel, m.statusText)
	}
	if cmd == nil {
		t.Fatalf("expected a scheduled status clear")
	}
}

func TestScenario_ValidHostnameCommits(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "tab", "enter")
	m = clearHostnameEdit(t, m)
	m = press(t, m, "web01", "enter")

	if m.editing {
		t.Fatalf("commit should leave edit mode")
	}
	if got := m.values.Get(catalog.FieldHostname).Str; got != "web01" {
		t.Fatalf("hostname = %q, want web01", got)
	}

	found := false
	for _, line := range m.values.Lines() {
		if strings.TrimSpace(line) == `networking.hostName = "web01";` {
			found = true
		}
	}
	if !found {
		t.Fatalf("generated text missing new hostname line")
	}
}

func TestScenario_SectionResetClearsModified(t *testing.T) {
	m := newTestModel(t)
	// System section, third field is the auto-upgrade boolean.
	m = press(t, m, "s", "tab", "j", "j", "enter")

	if !m.values.Get(catalog.FieldAutoUpgrade).Bool {
		t.Fatalf("enter should toggle the boolean on")
	}
	if !m.values.Modified(catalog.FieldAutoUpgrade) {
		t.Fatalf("toggled field should be marked modified")
	}

	m = press(t, m, "r")
	if m.values.Get(catalog.FieldAutoUpgrade).Bool {
		t.Fatalf("reset should restore the default")
	}
	if m.values.Modified(catalog.FieldAutoUpgrade) {
		t.Fatalf("reset should clear the modified marker")
	}
}

func TestScenario_SmallTerminalRendersAdvisoryOnly(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Terminal too small") {
		t.Fatalf("small terminal view missing advisory: %q", view)
	}
	if strings.Contains(view, "sierpinski") || strings.Contains(view, "Settings") {
		t.Fatalf("small terminal view performed layout anyway")
	}

	// Resizing back restores normal rendering.
	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if !strings.Contains(m.View(), "sierpinski") {
		t.Fatalf("restored terminal should render the home screen")
	}
}

func TestStatusMessages_StaleClearIsIgnored(t *testing.T) {
	m := newTestModel(t)

	cmd1 := (&m).setStatus(statusInfo, "first")
	firstSeq := m.statusSeq
	cmd2 := (&m).setStatus(statusInfo, "second")
	if cmd1 == nil || cmd2 == nil {
		t.Fatalf("setStatus must schedule a clear")
	}

	next, _ := m.Update(statusClearMsg{seq: firstSeq})
	m = next.(Model)
	if m.statusText != "second" {
		t.Fatalf("stale clear erased the newer message: %q", m.statusText)
	}

	next, _ = m.Update(statusClearMsg{seq: m.statusSeq})
	m = next.(Model)
	if m.statusText != "" {
		t.Fatalf("current clear did not clear: %q", m.statusText)
	}
}

func TestHelpOverlay_SwallowsOtherKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "?")
	if !m.helpVisible {
		t.Fatalf("? should open help")
	}

	m = press(t, m, "j", "t", "w")
	if !m.helpVisible {
		t.Fatalf("non-close keys should be swallowed by the overlay")
	}
	if m.sectionCursor != 0 || m.screen != screenSettings {
		t.Fatalf("swallowed keys mutated state: cursor %d screen %v", m.sectionCursor, m.screen)
	}

	m = press(t, m, "esc")
	if m.helpVisible {
		t.Fatalf("esc should close help")
	}
	if m.screen != screenSettings {
		t.Fatalf("closing help changed screens")
	}
}

func TestEditing_QuestionMarkIsLiteral(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "tab", "enter", "?")
	if m.helpVisible {
		t.Fatalf("? during editing must be inserted, not open help")
	}
	if !strings.Contains(m.editInput.Value(), "?") {
		t.Fatalf("edit buffer = %q, want literal ?", m.editInput.Value())
	}
}

func TestEditing_EscDiscards(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "tab", "enter")
	m = clearHostnameEdit(t, m)
	m = press(t, m, "zzz", "esc")

	if m.editing {
		t.Fatalf("esc should cancel editing")
	}
	if got := m.values.Get(catalog.FieldHostname).Str; got != "nixos" {
		t.Fatalf("cancelled edit changed value to %q", got)
	}
	if m.screen != screenSettings || m.focusPane != paneContent {
		t.Fatalf("cancel should return to the content pane")
	}
}

func TestSettings_CursorsWrap(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "k")
	if m.sectionCursor != len(m.sections)-1 {
		t.Fatalf("up from first section = %d, want wrap to %d", m.sectionCursor, len(m.sections)-1)
	}
	m = press(t, m, "j")
	if m.sectionCursor != 0 {
		t.Fatalf("down from last section = %d, want wrap to 0", m.sectionCursor)
	}
}

func TestSettings_EnteringContentResetsFieldCursor(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "tab", "j", "tab") // content, move, back to nav
	if m.fieldCursor == 0 {
		t.Fatalf("precondition: field cursor should have moved")
	}
	m = press(t, m, "tab")
	if m.fieldCursor != 0 {
		t.Fatalf("re-entering content pane should reset field cursor, got %d", m.fieldCursor)
	}
}

func TestChoiceField_CyclesWithWrap(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "tab", "j") // timezone choice
	f, _ := catalog.FieldByID(catalog.FieldTimezone)

	m = press(t, m, "h") // left from first choice wraps to last
	if got := m.values.Get(catalog.FieldTimezone).Str; got != f.Choices[len(f.Choices)-1] {
		t.Fatalf("left from first = %q, want %q", got, f.Choices[len(f.Choices)-1])
	}
	m = press(t, m, "l")
	if got := m.values.Get(catalog.FieldTimezone).Str; got != f.Choices[0] {
		t.Fatalf("right should wrap back to %q, got %q", f.Choices[0], got)
	}
}

func TestExportScroll_ClampedByHandler(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "e")
	if m.screen != screenExport {
		t.Fatalf("e should open export")
	}

	total := len(m.values.Lines())
	maxScroll := total - m.exportVisibleRows()
	if maxScroll < 0 {
		maxScroll = 0
	}

	m = press(t, m, "G", "j", "j")
	if m.exportScroll != maxScroll {
		t.Fatalf("scroll = %d, want clamp at %d", m.exportScroll, maxScroll)
	}
	m = press(t, m, "g", "k")
	if m.exportScroll != 0 {
		t.Fatalf("scroll = %d, want clamp at 0", m.exportScroll)
	}
}

func TestExport_ShortcutToSettings(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "e", "s")
	if m.screen != screenSettings {
		t.Fatalf("s on export should jump to settings, got %v", m.screen)
	}
}

func TestTutorials_CompleteOnAdvancePastLastStep(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "t", "enter")
	if m.screen != screenTutorialDetail {
		t.Fatalf("enter should open tutorial detail")
	}

	tut := m.tutorials[m.tutorialCursor]

	// Backing up from the first step is a no-op.
	m = press(t, m, "h")
	if m.stepCursor != 0 {
		t.Fatalf("left on first step moved to %d", m.stepCursor)
	}

	for range tut.Steps {
		m = press(t, m, "l")
	}
	if m.screen != screenTutorials {
		t.Fatalf("finishing should return to the tutorial list")
	}
	if !m.completed[tut.ID] {
		t.Fatalf("tutorial not marked complete")
	}
	if !strings.Contains(m.statusText, "complete") && !strings.Contains(m.statusText, "Tutorial") {
		t.Fatalf("status = %q, want completion report", m.statusText)
	}

	// Finishing again is idempotent.
	m = press(t, m, "enter")
	for range tut.Steps {
		m = press(t, m, "l")
	}
	if !m.completed[tut.ID] || len(m.completed) != 1 {
		t.Fatalf("re-finishing changed the completed set: %v", m.completed)
	}
}

func TestTutorialDetail_EscReturnsToList(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "t", "enter", "l", "esc")
	if m.screen != screenTutorials {
		t.Fatalf("esc from detail should return to the list, got %v", m.screen)
	}
}

func TestSave_WritesGeneratedConfig(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "w")

	data, err := os.ReadFile(m.outputPath)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `networking.hostName = "nixos";`) {
		t.Fatalf("saved config missing hostname line")
	}
	if !strings.HasSuffix(content, "}\n") {
		t.Fatalf("saved config should end with closing brace and newline")
	}
	if !strings.Contains(m.statusText, "Wrote") {
		t.Fatalf("status = %q, want write confirmation", m.statusText)
	}
}

func TestSave_FailureReportsError(t *testing.T) {
	m := newTestModel(t)
	m.outputPath = filepath.Join(t.TempDir(), "missing", "nested", "configuration.nix")
	m = press(t, m, "s", "w")
	if m.statusLevel != statusError {
		t.Fatalf("status level = %v, want error", m.statusLevel)
	}
	if !strings.Contains(m.statusText, "Write failed") {
		t.Fatalf("status = %q, want write failure report", m.statusText)
	}
}

func TestQuit_FromEveryMode(t *testing.T) {
	assertQuit := func(t *testing.T, m Model) {
		t.Helper()
		_, cmd := m.Update(keyMsg("ctrl+c"))
		if cmd == nil {
			t.Fatalf("ctrl+c produced no command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("ctrl+c should quit")
		}
	}

	t.Run("home", func(t *testing.T) {
		assertQuit(t, newTestModel(t))
	})
	t.Run("mid_edit", func(t *testing.T) {
		m := newTestModel(t)
		assertQuit(t, press(t, m, "s", "tab", "enter"))
	})
	t.Run("mid_modal", func(t *testing.T) {
		m := newTestModel(t)
		assertQuit(t, press(t, m, "?"))
	})
}

func TestView_ScreenMarkers(t *testing.T) {
	m := newTestModel(t)

	cases := []struct {
		name   string
		keys   []string
		marker string
	}{
		{"home", nil, "sierpinski"},
		{"settings", []string{"s"}, "Sections"},
		{"tutorials", []string{"t"}, "Tutorials"},
		{"detail", []string{"t", "enter"}, "Step 1 of"},
		{"export", []string{"e"}, "configuration.nix"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := press(t, m, tc.keys...).View()
			if !strings.Contains(view, tc.marker) {
				t.Fatalf("%s view missing %q", tc.name, tc.marker)
			}
		})
	}
}
