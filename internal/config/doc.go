// Package config handles loading and parsing the nixos-tui configuration file.
//
// # Overview
//
// This package reads an optional TOML file that selects the UI theme, the
// output path for generated configuration.nix text, and the diagnostic log
// settings. The file is read once at startup; nixos-tui never writes it.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/nixos-tui/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/nixos-tui/config.toml
//   - Theme: Nightfox
//   - Output path: ~/configuration.nix
//   - Log path: ~/.local/state/nixos-tui/nixos-tui.log
//   - Log level: unset (logging disabled)
//
// # TOML Format
//
// Example config.toml:
//
//	theme = "Nightfox"
//	output_path = "~/configuration.nix"
//	log_level = "debug"
//
// All fields are optional. Tilde expansion is performed automatically for
// path fields.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. A
// missing config file is NOT an error - nixos-tui works out-of-the-box
// without any configuration.
package config
