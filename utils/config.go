package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	ModeTerminal = "terminal"
	ModeCanvas   = "canvas"

	MaxSide          = 4096
	MaxHistoryLength = 256
	MaxCellSize      = 64
	MinFrameRate     = time.Millisecond
	MaxFrameRate     = 10 * time.Second
	MaxSeedPatterns  = 64
)

// ErrInvalidConfig is returned by Validate for any out-of-range setting
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`  // 0 fits the board to the terminal
	Height         int           `json:"height"` // 0 fits the board to the terminal
	HistoryLength  int           `json:"history_length"`
	CellSize       int           `json:"cell_size"`
	FrameRate      time.Duration `json:"frame_rate"` // nanoseconds in JSON
	Seed           int64         `json:"seed"`       // 0 seeds from the clock
	Mode           string        `json:"mode"`
	Gliders        int           `json:"gliders"`
	Oscillators    int           `json:"oscillators"`
	MaxGenerations int           `json:"max_generations"` // 0 runs until interrupted
	Verbose        bool          `json:"verbose"`
	LogFile        string        `json:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          0,
		Height:         0,
		HistoryLength:  8,
		CellSize:       6,
		FrameRate:      100 * time.Millisecond,
		Mode:           ModeTerminal,
		Gliders:        2,
		Oscillators:    2,
		MaxGenerations: 0,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that every setting is within its bounds
func (c Config) Validate() error {
	switch {
	case c.Mode != ModeTerminal && c.Mode != ModeCanvas:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] unknown mode %q", c.Mode)
	case c.Width < 0 || c.Width > MaxSide:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] width %d not in [0, %d]", c.Width, MaxSide)
	case c.Height < 0 || c.Height > MaxSide:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] height %d not in [0, %d]", c.Height, MaxSide)
	case (c.Width == 0) != (c.Height == 0):
		return errors.Wrap(ErrInvalidConfig, "[Config.Validate] width and height must both be set or both be 0")
	case c.Mode == ModeCanvas && c.Width == 0:
		return errors.Wrap(ErrInvalidConfig, "[Config.Validate] canvas mode needs an explicit width and height")
	case c.HistoryLength < 1 || c.HistoryLength > MaxHistoryLength:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] history length %d not in [1, %d]", c.HistoryLength, MaxHistoryLength)
	case c.CellSize < 1 || c.CellSize > MaxCellSize:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] cell size %d not in [1, %d]", c.CellSize, MaxCellSize)
	case c.FrameRate < MinFrameRate || c.FrameRate > MaxFrameRate:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] frame rate %s not in [%s, %s]", c.FrameRate, MinFrameRate, MaxFrameRate)
	case c.Gliders < 0 || c.Gliders > MaxSeedPatterns:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] gliders %d not in [0, %d]", c.Gliders, MaxSeedPatterns)
	case c.Oscillators < 0 || c.Oscillators > MaxSeedPatterns:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] oscillators %d not in [0, %d]", c.Oscillators, MaxSeedPatterns)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] max generations %d is negative", c.MaxGenerations)
	}
	return nil
}

// FitsTerminal reports whether the board size should come from the terminal
func (c Config) FitsTerminal() bool {
	return c.Width == 0 && c.Height == 0
}

// RandomSeed returns the configured seed, or one derived from the clock
func (c Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
