package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

// Board flags are shared by the root command and play.
var (
	flagWidth  int
	flagHeight int
	flagTick   int
)

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = fit the terminal)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = fit the terminal)")
	cmd.Flags().IntVar(&flagTick, "tick", 0, "Tick interval in milliseconds")
}

// loadSettings loads the config, applies flags the user set and resolves the
// theme.
func loadSettings(cmd *cobra.Command) (config.SnakeConfig, theme.Theme, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, theme.Theme{}, err
	}

	flags := cmd.Flags()
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Lookup("tick") != nil && flags.Changed("tick") {
		cfg.Loop.TickMS = flagTick
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, theme.Theme{}, fmt.Errorf("flags: %w", err)
	}

	th, err := theme.Get(cfg.Theme)
	if err != nil {
		return config.SnakeConfig{}, theme.Theme{}, err
	}
	return cfg, th, nil
}
