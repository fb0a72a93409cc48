package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML, after the
search order and command-line flags are applied. Redirect it to a file to
start a custom config.

With --defaults, prints the built-in default file instead, comments included.

Examples:
  snake config
  snake config --width 0 --height 0
  snake config --defaults > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
	addBoardFlags(configCmd)
}

// configYAML returns the YAML the config command prints.
func configYAML(cmd *cobra.Command) ([]byte, error) {
	if flagDefaults {
		return config.DefaultYAML(), nil
	}

	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	return cfg.Marshal()
}

func runConfig(cmd *cobra.Command, _ []string) {
	data, err := configYAML(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
