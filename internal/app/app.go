package app

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ALH477/nixos-tui/internal/catalog"
	"github.com/ALH477/nixos-tui/internal/config"
	"github.com/ALH477/nixos-tui/internal/logging"
	"github.com/ALH477/nixos-tui/internal/nixgen"
	"github.com/ALH477/nixos-tui/internal/ui"
)

// Options configure the nixos-tui application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/nixos-tui/config.toml
	OutputPath string // empty uses the configured output path
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	outputPath := cfg.OutputPath
	if opts.OutputPath != "" {
		outputPath = opts.OutputPath
	}

	values := catalog.NewValues(nixgen.Generate)

	cpus := runtime.NumCPU()
	if cpus < 1 {
		cpus = 1
	}

	logger.Info("starting nixos-tui")

	uiOpts := ui.Options{
		Context:    ctx,
		Values:     values,
		ThemeName:  cfg.Theme,
		OutputPath: outputPath,
		CPUs:       cpus,
		Logger:     logger,
	}
	err = ui.Run(uiOpts)

	logger.Info("nixos-tui exited")
	return err
}
