package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

// newSettingsCmd isolates the config search from the developer's machine and
// resets the global flags.
func newSettingsCmd(t *testing.T) *cobra.Command {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	flagConfig, flagTheme = "", ""
	flagWidth, flagHeight, flagTick = 0, 0, 0
	t.Cleanup(func() {
		flagConfig, flagTheme = "", ""
		flagWidth, flagHeight, flagTick = 0, 0, 0
	})

	cmd := &cobra.Command{Use: "test"}
	addBoardFlags(cmd)
	return cmd
}

func TestLoadSettingsDefaults(t *testing.T) {
	cmd := newSettingsCmd(t)

	cfg, th, err := loadSettings(cmd)
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if cfg.Board.Width != 30 || cfg.Board.Height != 20 {
		t.Errorf("board = %dx%d, expected 30x20", cfg.Board.Width, cfg.Board.Height)
	}
	if th.Name != theme.Default {
		t.Errorf("theme = %q, expected %q", th.Name, theme.Default)
	}
}

func TestLoadSettingsFlagsOverride(t *testing.T) {
	cmd := newSettingsCmd(t)
	for name, value := range map[string]string{"width": "40", "height": "0", "tick": "50"} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("Set(%s) failed: %v", name, err)
		}
	}
	flagTheme = "mono"

	cfg, th, err := loadSettings(cmd)
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if cfg.Board.Width != 40 || cfg.Board.Height != 0 {
		t.Errorf("board = %dx%d, expected 40x0", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Loop.TickMS != 50 {
		t.Errorf("tick = %d, expected 50", cfg.Loop.TickMS)
	}
	if th.Name != "mono" || cfg.Theme != "mono" {
		t.Errorf("theme = %q / %q, expected mono", th.Name, cfg.Theme)
	}
}

func TestLoadSettingsUnsetFlagsKeepConfig(t *testing.T) {
	cmd := newSettingsCmd(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 12\n  height: 8\nloop:\n  tick_ms: 90\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cfg, _, err := loadSettings(cmd)
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 8 || cfg.Loop.TickMS != 90 {
		t.Errorf("config file values lost: %+v", cfg)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Run("invalid flag value", func(t *testing.T) {
		cmd := newSettingsCmd(t)
		if err := cmd.Flags().Set("width", "3"); err != nil {
			t.Fatal(err)
		}

		_, _, err := loadSettings(cmd)
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("err = %v, expected ErrInvalidConfig", err)
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		cmd := newSettingsCmd(t)
		flagTheme = "nope"

		_, _, err := loadSettings(cmd)
		if !errors.Is(err, theme.ErrUnknownTheme) {
			t.Errorf("err = %v, expected ErrUnknownTheme", err)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		cmd := newSettingsCmd(t)
		flagConfig = filepath.Join(t.TempDir(), "missing.yaml")

		if _, _, err := loadSettings(cmd); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	flagLogFile = path
	flagDebug = true
	t.Cleanup(func() {
		flagLogFile = ""
		flagDebug = false
	})

	logger, closeLog, err := newLogger("test", nil)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Debug("hello", "n", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("debug line should reach the log file")
	}
}

func TestConfigYAML(t *testing.T) {
	cmd := newSettingsCmd(t)
	if err := cmd.Flags().Set("width", "40"); err != nil {
		t.Fatal(err)
	}

	data, err := configYAML(cmd)
	if err != nil {
		t.Fatalf("configYAML failed: %v", err)
	}
	cfg, err := config.Parse(data)
	if err != nil {
		t.Fatalf("printed config does not parse: %v", err)
	}
	if cfg.Board.Width != 40 {
		t.Errorf("printed width = %d, expected the flag value 40", cfg.Board.Width)
	}
}

func TestConfigYAMLDefaults(t *testing.T) {
	cmd := newSettingsCmd(t)
	if err := cmd.Flags().Set("width", "40"); err != nil {
		t.Fatal(err)
	}
	flagDefaults = true
	t.Cleanup(func() { flagDefaults = false })

	data, err := configYAML(cmd)
	if err != nil {
		t.Fatalf("configYAML failed: %v", err)
	}
	if !bytes.Equal(data, config.DefaultYAML()) {
		t.Errorf("--defaults should print the built-in file, got:\n%s", data)
	}
}
