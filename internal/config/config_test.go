package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultTick(t *testing.T) {
	if got := DefaultSnakeConfig().Tick(); got != 75*time.Millisecond {
		t.Errorf("Tick() = %v, expected 75ms", got)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("theme: mono\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme = %q, expected mono", cfg.Theme)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 12\n  height: 8\nfood:\n  avoid_snake: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Width != 12 || cfg.Board.Height != 8 {
		t.Errorf("Board = %+v, expected 12x8", cfg.Board)
	}
	if cfg.Food.AvoidSnake {
		t.Error("AvoidSnake should be overridden to false")
	}
	// Untouched keys keep their defaults
	if cfg.Particles != DefaultSnakeConfig().Particles {
		t.Errorf("Particles = %+v, expected defaults", cfg.Particles)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("particles:\n  decay: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() of invalid values: err = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"fit board", func(c *SnakeConfig) { c.Board = BoardConfig{} }, true},
		{"zero length", func(c *SnakeConfig) { c.Snake.InitialLength = 0 }, false},
		{"negative width", func(c *SnakeConfig) { c.Board.Width = -1 }, false},
		{"board narrower than snake", func(c *SnakeConfig) { c.Board.Width = 5 }, false},
		{"zero tick", func(c *SnakeConfig) { c.Loop.TickMS = 0 }, false},
		{"negative burst", func(c *SnakeConfig) { c.Particles.Burst = -1 }, false},
		{"no burst", func(c *SnakeConfig) { c.Particles.Burst = 0 }, true},
		{"decay of one never fades", func(c *SnakeConfig) { c.Particles.Decay = 1 }, false},
		{"zero decay", func(c *SnakeConfig) { c.Particles.Decay = 0 }, false},
		{"min alpha out of range", func(c *SnakeConfig) { c.Particles.MinAlpha = 1 }, false},
		{"inverted size range", func(c *SnakeConfig) { c.Particles.MinSize, c.Particles.MaxSize = 0.5, 0.1 }, false},
		{"zero glow step", func(c *SnakeConfig) { c.Animation.GlowStep = 0 }, false},
		{"zero pulse step", func(c *SnakeConfig) { c.Animation.PulseStep = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Theme = "classic"
	cfg.Board.Width = 0

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, expected %+v", got, cfg)
	}
}
