package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Mode = "ascii-art" }},
		{"negative width", func(c *Config) { c.Width, c.Height = -1, 10 }},
		{"huge height", func(c *Config) { c.Width, c.Height = 10, MaxSide + 1 }},
		{"only width set", func(c *Config) { c.Width = 10 }},
		{"canvas without size", func(c *Config) { c.Mode = ModeCanvas }},
		{"zero history", func(c *Config) { c.HistoryLength = 0 }},
		{"huge cell size", func(c *Config) { c.CellSize = MaxCellSize + 1 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"sub-millisecond frame rate", func(c *Config) { c.FrameRate = 100 * time.Nanosecond }},
		{"negative gliders", func(c *Config) { c.Gliders = -1 }},
		{"too many oscillators", func(c *Config) { c.Oscillators = MaxSeedPatterns + 1 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}

	config := DefaultConfig()
	config.Mode = ModeCanvas
	config.Width, config.Height = 120, 80
	if err := config.Validate(); err != nil {
		t.Errorf("sized canvas config rejected: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 40, "height": 20, "history_length": 4, "mode": "canvas", "seed": 9}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 40 || config.Height != 20 || config.HistoryLength != 4 || config.Mode != ModeCanvas {
		t.Errorf("unexpected config %+v", config)
	}
	if config.CellSize != DefaultConfig().CellSize {
		t.Errorf("unset field lost its default: cell size %d", config.CellSize)
	}
	if config.RandomSeed() != 9 {
		t.Errorf("RandomSeed() = %d, want 9", config.RandomSeed())
	}
}

func TestLoadConfig_FrameRateInNanoseconds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"frame_rate": 100}`), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.FrameRate != 100*time.Nanosecond {
		t.Fatalf("frame rate = %s", config.FrameRate)
	}
	if err = config.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("100ns frame rate accepted: %v", err)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("broken JSON accepted")
	}
}

func TestStatsUpdate(t *testing.T) {
	stats := NewStats()
	stats.Update(1, 50, 100, 10*time.Millisecond)
	if stats.Density != 50 || stats.AveragePopulation != 50 || stats.GenerationsPerSecond != 100 {
		t.Errorf("unexpected stats %+v", stats)
	}

	stats.Update(2, 150, 100, 0)
	if stats.AveragePopulation != 60 {
		t.Errorf("average population = %v, want 60", stats.AveragePopulation)
	}
	if fields := stats.Fields(); fields["generation"] != 2 {
		t.Errorf("fields = %v", fields)
	}
}
