package utils

import (
	"flag"
	"strconv"

	"github.com/pkg/errors"
)

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Func("width", "board width (default from config)", uint32Setter(&c.Width))
	fs.Func("height", "board height (default from config)", uint32Setter(&c.Height))
	fs.IntVar(&c.Population, "population", c.Population, "initial number of living cells")
	fs.TextVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "moore or von-neumann")
	fs.IntVar(&c.MaxSteps, "steps", c.MaxSteps, "maximum number of steps")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.IntVar(&c.HistoryLimit, "history", c.HistoryLimit, "boards to retain, 0 keeps all")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands per step, 0 uses every CPU")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between interactive steps")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "run the interactive terminal view")
	fs.BoolVar(&c.PrintHistory, "print-history", c.PrintHistory, "print every board, not just the last")
	fs.BoolVar(&c.BlockGlyphs, "blocks", c.BlockGlyphs, "draw cells as blocks instead of '#' and '.'")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// ApplyFlags copies every flag explicitly set on fs from src into c, so
// command-line values override the config file
func (c *Config) ApplyFlags(fs *flag.FlagSet, src Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			c.Width = src.Width
		case "height":
			c.Height = src.Height
		case "population":
			c.Population = src.Population
		case "neighborhood":
			c.Neighborhood = src.Neighborhood
		case "steps":
			c.MaxSteps = src.MaxSteps
		case "seed":
			c.Seed = src.Seed
		case "history":
			c.HistoryLimit = src.HistoryLimit
		case "workers":
			c.Workers = src.Workers
		case "frame-rate":
			c.FrameRate = src.FrameRate
		case "interactive":
			c.Interactive = src.Interactive
		case "print-history":
			c.PrintHistory = src.PrintHistory
		case "blocks":
			c.BlockGlyphs = src.BlockGlyphs
		case "log-level":
			c.LogLevel = src.LogLevel
		}
	})
}

func uint32Setter(dst *uint32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "[uint32Setter] invalid value: %q", s)
		}
		*dst = uint32(v)
		return nil
	}
}
