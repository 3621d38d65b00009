package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroid-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	var (
		flagConfig = utils.DefaultConfig()
		configFile = flag.String("config", defaultConfigFile, "path to a JSON config file")
	)
	flagConfig.Bind(flag.CommandLine)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Using default configuration (%s not found)\n", *configFile)
		config = utils.DefaultConfig()
	}
	config.ApplyFlags(flag.CommandLine, flagConfig)

	if err = config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := utils.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim, seed, err := initializeGame(config, logger)
	if err != nil {
		logger.Error("failed to start simulation", "err", err)
		os.Exit(1)
	}
	logger.Info("simulation ready",
		"width", config.Width, "height", config.Height, "population", config.Population,
		"neighborhood", config.Neighborhood, "seed", seed,
	)

	if config.Interactive {
		err = runInteractive(ctx, config, sim, logger)
	} else {
		err = runBatch(ctx, config, sim, logger, os.Stdout)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}
