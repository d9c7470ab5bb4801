package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ALH477/nixos-tui/internal/catalog"
	"github.com/ALH477/nixos-tui/internal/tutorial"
)

// screen identifies the active top-level view.
type screen int

const (
	screenHome screen = iota
	screenSettings
	screenTutorials
	screenTutorialDetail
	screenExport
)

// pane identifies which settings pane owns vertical movement.
type pane int

const (
	paneNav pane = iota
	paneContent
)

// statusLevel grades transient status messages.
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
)

// Minimum terminal size. Below this the UI renders an advisory message
// and performs no layout at all.
const (
	minWidth  = 80
	minHeight = 24
)

const (
	statusInfoDelay = 2500 * time.Millisecond
	statusWarnDelay = 4 * time.Second
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Values     *catalog.Values
	ThemeName  string
	OutputPath string
	CPUs       int
	Logger     *zap.Logger
}

// Model is the root application state for Bubble Tea. It is the single
// mutable record the event loop owns: every renderer reads it, only
// Update (and the handlers it calls) writes it.
type Model struct {
	// Configuration
	keys       keyMap
	theme      Theme
	styles     Styles
	values     *catalog.Values
	sections   []catalog.Section
	tutorials  []tutorial.Tutorial
	outputPath string
	cpus       int
	log        *zap.Logger

	// Navigation state
	screen         screen
	focusPane      pane
	sectionCursor  int
	fieldCursor    int
	tutorialCursor int
	stepCursor     int

	// Editing sub-state (settings screen only)
	editing   bool
	editInput textinput.Model

	// Per-screen state
	completed    map[string]bool // tutorial IDs finished this session
	exportScroll int
	helpVisible  bool

	// Terminal state
	width  int
	height int
	ready  bool

	// Transient status message
	statusText  string
	statusLevel statusLevel
	statusSeq   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	theme := GetTheme(opts.ThemeName)

	cpus := opts.CPUs
	if cpus < 1 {
		cpus = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 128

	return Model{
		keys:       defaultKeyMap(),
		theme:      theme,
		styles:     theme.Styles(),
		values:     opts.Values,
		sections:   catalog.Sections(),
		tutorials:  tutorial.All(),
		outputPath: opts.OutputPath,
		cpus:       cpus,
		log:        logger,
		screen:     screenHome,
		editInput:  input,
		completed:  make(map[string]bool),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.clampExportScroll()
		return m, nil

	case statusClearMsg:
		// Stale ticks carry an old sequence number; only the clear
		// scheduled by the most recent message takes effect.
		if msg.seq == m.statusSeq {
			m.statusText = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model. It performs the full redraw: minimum-size
// guard, active screen renderer, status bar, help overlay on top.
// Renderers only read the model; all state mutation happens in Update.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		advisory := fmt.Sprintf("Terminal too small (%dx%d). Resize to at least %dx%d.",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.WarningText.Render(advisory))
	}

	if m.helpVisible {
		return m.renderHelp()
	}

	var content string
	switch m.screen {
	case screenHome:
		content = m.renderHome()
	case screenSettings:
		content = m.renderSettings()
	case screenTutorials:
		content = m.renderTutorials()
	case screenTutorialDetail:
		content = m.renderTutorialDetail()
	case screenExport:
		content = m.renderExport()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

// contentHeight is the rows available to screen renderers (everything
// except the status bar).
func (m Model) contentHeight() int {
	return m.height - 1
}

// Messages

type statusClearMsg struct {
	seq int
}

// setStatus installs a transient status message and schedules its clear.
// Bumping the sequence number invalidates any previously scheduled
// clear, so at most one pending clear is ever effective.
func (m *Model) setStatus(level statusLevel, text string) tea.Cmd {
	m.statusSeq++
	m.statusText = text
	m.statusLevel = level

	seq := m.statusSeq
	delay := statusInfoDelay
	if level != statusInfo {
		delay = statusWarnDelay
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// saveConfig writes the generated configuration to the output path and
// reports the outcome in the status bar.
func (m *Model) saveConfig() tea.Cmd {
	data := strings.Join(m.values.Lines(), "\n") + "\n"
	if err := os.WriteFile(m.outputPath, []byte(data), 0o644); err != nil {
		m.log.Warn("write configuration failed", zap.String("path", m.outputPath), zap.Error(err))
		return m.setStatus(statusError, fmt.Sprintf("Write failed: %v", err))
	}
	m.log.Info("wrote configuration", zap.String("path", m.outputPath))
	return m.setStatus(statusInfo, fmt.Sprintf("Wrote %s", m.outputPath))
}

// Run starts the Bubble Tea program. Cancelling the context (for
// example on SIGTERM) shuts the program down through the same path as
// the quit key, so terminal state is restored exactly once either way.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// A signal-driven shutdown is a normal exit, not a failure.
		return nil
	}
	return err
}
