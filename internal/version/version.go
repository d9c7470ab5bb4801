// Package version exposes the application version for display in the UI.
package version

// Version can be overridden at build time via
// -ldflags="-X github.com/ALH477/nixos-tui/internal/version.Version=v1.2.3".
var Version = "dev"
