// Package app provides the orchestration layer for nixos-tui.
//
// # Overview
//
// This package wires together configuration, logging, the option value
// store, and the UI to create the complete nixos-tui experience. It is
// the composition root where all dependencies are initialized and
// connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load the startup config from ~/.config/nixos-tui/config.toml
//  2. Build the zap logger (nop unless a log level is configured)
//  3. Create the catalog value store seeded from catalog defaults,
//     wired to the nixgen generator through the memoizing accessor
//  4. Read the logical processor count for the home-screen fractal
//  5. Start the TUI and block until the user quits or the context
//     is cancelled
//
// # Error Handling
//
// Only startup failures are fatal (config parse errors, logger build
// errors). Everything that happens after the UI starts - validation
// failures, write failures - is reported inside the UI via the status
// bar and never terminates the process.
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal. Domain
// logic lives in catalog, nixgen, tutorial and ui; the app package only
// connects these pieces with sensible defaults.
package app
