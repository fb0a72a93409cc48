// snake is a neon Snake game for the terminal.
//
// Usage:
//
//	snake [play]     - Play on the local terminal
//	snake serve      - Host the game over SSH, one session at a time
//	snake themes     - List color themes
//	snake config     - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--theme <name>     - Color theme (overrides the config)
//	--seed <value>     - RNG seed for reproducible games
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagTheme   string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Neon Snake - a glowing snake game in your terminal",
	Long: `Neon Snake is a terminal Snake game with a gradient board, a glowing
head, pulsing food and particle bursts.

Available commands:
  play     - Play on this terminal (default)
  serve    - Host the game over SSH
  themes   - List color themes
  config   - Print the effective configuration

Examples:
  snake
  snake play --width 40 --height 20 --tick 60
  snake --theme classic
  snake serve --ssh :2222
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (see 'snake themes')")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addBoardFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}
