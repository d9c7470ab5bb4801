// Package ui provides the terminal user interface for nixos-tui.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model is the single mutable state
// record; Update (and the per-screen handlers it dispatches to) is the
// only writer, and View performs one full redraw per event. Renderers are
// pure with respect to the model: they read cursors, scroll offsets and
// values but never adjust them - all clamping and wrapping happens on the
// input side.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model definition, Update/View dispatch, status message
//     lifecycle, and the main Run function
//   - input_handlers.go: per-screen key handling, the editing sub-state,
//     and cursor/scroll arithmetic
//   - keys.go: key bindings (bubbles/key)
//   - layout.go: visible-width measurement, padding, clipping, and
//     bordered panels with centered titles
//   - fractal.go: the Sierpinski triangle on the home screen
//   - home.go, settings.go, tutorials.go, export.go: screen renderers
//   - status.go: bottom status bar with hints and transient messages
//   - help.go: modal help overlay
//   - validate.go: field validation for committed edits
//   - theme.go: color themes and pre-built lipgloss styles
//
// # Screens
//
// Five screens are available:
//
//   - Home: Sierpinski visualization and the screen menu
//   - Settings: two-pane option browser with inline editing
//   - Tutorials: tutorial list with completion marks
//   - Tutorial detail: one step at a time, forward/backward
//   - Export: scrollable preview of the generated configuration.nix
//
// A modal help overlay can sit on top of any screen; while visible it
// swallows all input except its close keys.
//
// # Visible Width
//
// Text measurement strips ANSI control sequences and counts every
// non-ASCII rune as two display columns. This deliberately approximates
// wide glyphs and emoji; it over-counts narrow accented characters, which
// is accepted rather than silently changed (see DESIGN.md).
//
// # Status Messages
//
// setStatus stamps each message with a sequence number and schedules a
// clear via tea.Tick. A newer message invalidates older scheduled clears
// because their sequence no longer matches - at most one pending clear is
// ever effective, so a stale timer can never erase a fresh message.
//
// # Terminal Lifecycle
//
// Bubble Tea owns raw mode and the alternate screen buffer; it restores
// the terminal exactly once on quit regardless of whether the exit came
// from the quit key, ctrl+c, or a signal.
package ui
