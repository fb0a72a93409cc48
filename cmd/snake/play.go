package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/games/snake"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake on this terminal",
	Long: `Start a game on the local terminal.

Controls:
  Arrows/WASD  - Steer
  Space/R      - Restart (after game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --width 0 --height 0     # Fit the board to the terminal
  snake play --tick 50 --theme mono
  snake play --seed 42 --log-file snake.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, th, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.Tick = cfg.Tick()
	rc.Seed = flagSeed

	// Get terminal size for the first layout
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"tick", rc.Tick,
		"theme", th.Name,
	)

	runErr := tui.Run(snake.New(cfg, th), rc, logger)

	// Close the log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
