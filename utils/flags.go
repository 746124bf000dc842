package utils

import (
	"flag"
	"time"

	"github.com/pkg/errors"
)

// ParseConfig builds the configuration from defaults, an optional JSON file,
// and finally any flags given explicitly on the command line
func ParseConfig(args []string) (Config, error) {
	var (
		defaults   = DefaultConfig()
		flags      = flag.NewFlagSet("lifeboard", flag.ContinueOnError)
		configPath = flags.String("config", "", "path to a JSON config file")
		width      = flags.Int("width", defaults.Width, "board width in cells, 0 fits the terminal")
		height     = flags.Int("height", defaults.Height, "board height in cells, 0 fits the terminal")
		history    = flags.Int("history", defaults.HistoryLength, "generations kept for the fade trail")
		cellSize   = flags.Int("cell-size", defaults.CellSize, "cell edge length in pixels")
		frameMS    = flags.Int("frame-ms", int(defaults.FrameRate/time.Millisecond), "milliseconds between generations")
		seed       = flags.Int64("seed", defaults.Seed, "random seed, 0 uses the clock")
		mode       = flags.String("mode", defaults.Mode, "terminal or canvas")
		gliders    = flags.Int("gliders", defaults.Gliders, "gliders placed before randomizing")
		oscillator = flags.Int("oscillators", defaults.Oscillators, "oscillators placed before randomizing")
		maxGens    = flags.Int("max-generations", defaults.MaxGenerations, "stop after this many generations, 0 runs forever")
		logFile    = flags.String("log-file", defaults.LogFile, "append logs to this file")
		verbose    = flags.Bool("v", defaults.Verbose, "verbose logging")
	)
	if err := flags.Parse(args); err != nil {
		return defaults, errors.Wrap(err, "[ParseConfig] failed to parse flags")
	}

	config := defaults
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return defaults, err
		}
		config = loaded
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			config.Width = *width
		case "height":
			config.Height = *height
		case "history":
			config.HistoryLength = *history
		case "cell-size":
			config.CellSize = *cellSize
		case "frame-ms":
			config.FrameRate = time.Duration(*frameMS) * time.Millisecond
		case "seed":
			config.Seed = *seed
		case "mode":
			config.Mode = *mode
		case "gliders":
			config.Gliders = *gliders
		case "oscillators":
			config.Oscillators = *oscillator
		case "max-generations":
			config.MaxGenerations = *maxGens
		case "log-file":
			config.LogFile = *logFile
		case "v":
			config.Verbose = *verbose
		}
	})

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}
