package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroid-life/model"
)

// Config holds the configuration for a run
type Config struct {
	Width        uint32             `json:"width"`
	Height       uint32             `json:"height"`
	Population   int                `json:"population"`
	Neighborhood model.Neighborhood `json:"neighborhood"`
	MaxSteps     int                `json:"max_steps"`
	Seed         uint64             `json:"seed"`
	HistoryLimit int                `json:"history_limit"`
	Workers      int                `json:"workers"`
	FrameRate    time.Duration      `json:"frame_rate"`
	Interactive  bool               `json:"interactive"`
	PrintHistory bool               `json:"print_history"`
	BlockGlyphs  bool               `json:"block_glyphs"`
	LogLevel     string             `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:        20,
		Height:       10,
		Population:   20,
		Neighborhood: model.Moore,
		MaxSteps:     100,
		Seed:         0, // 0 picks a seed from the clock
		HistoryLimit: 0, // keep every board
		Workers:      0, // one band per CPU
		FrameRate:    150 * time.Millisecond,
		Interactive:  false,
		PrintHistory: true,
		BlockGlyphs:  false,
		LogLevel:     "info",
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

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the engine cannot run
func (c Config) Validate() error {
	switch {
	case c.Width == 0 || c.Height == 0:
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] dimensions must be positive: %dx%d", c.Width, c.Height)
	case c.Population < 0:
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] negative population: %d", c.Population)
	case uint64(c.Population) > uint64(c.Width)*uint64(c.Height):
		return errors.Wrapf(model.ErrInvalidConfig,
			"[Validate] population %d does not fit a %dx%d board", c.Population, c.Width, c.Height)
	case c.MaxSteps < 0:
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] negative max_steps: %d", c.MaxSteps)
	case c.HistoryLimit < 0:
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] negative history_limit: %d", c.HistoryLimit)
	case c.Interactive && c.FrameRate <= 0:
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] interactive mode needs a positive frame_rate: %s", c.FrameRate)
	}
	return nil
}

// SimulationOptions translates the config into engine options
func (c Config) SimulationOptions() []model.Option {
	return []model.Option{
		model.WithNeighborhood(c.Neighborhood),
		model.WithHistoryLimit(c.HistoryLimit),
		model.WithParallelism(c.Workers),
	}
}
