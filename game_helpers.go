package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/toroid-life/controller"
	"github.com/sheikhrachel/toroid-life/model"
	"github.com/sheikhrachel/toroid-life/utils"
)

// initializeGame sets up the initial game state and returns the seed used
func initializeGame(config utils.Config, logger *log.Logger) (*model.Simulation, uint64, error) {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	opts := append(config.SimulationOptions(), model.WithLogger(logger))
	sim, err := model.NewRandomSimulation(config.Width, config.Height, config.Population, rng, opts...)
	if err != nil {
		return nil, seed, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}
	return sim, seed, nil
}

// newRenderer picks the glyph set from the config
func newRenderer(config utils.Config) *model.TextRenderer {
	renderer := model.NewTextRenderer()
	if config.BlockGlyphs {
		renderer.Glyphs = model.BlockGlyphs
	}
	return renderer
}

// runBatch steps until the board stops changing or the step budget runs
// out, then prints the boards and summary statistics to out
func runBatch(
	ctx context.Context,
	config utils.Config,
	sim *model.Simulation,
	logger *log.Logger,
	out io.Writer,
) error {
	stats := utils.NewStats()

	for steps := 0; steps < config.MaxSteps && !sim.NoChange(); steps++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("interrupted", "step", sim.Step())
			break
		}

		frameStart := time.Now()
		board := sim.Advance()
		stats.Update(sim.Summary(), board, time.Since(frameStart))
	}

	summary := sim.Summary()
	if summary.Stability != model.Changing {
		logger.Info("simulation stopped changing", "step", summary.Step, "stability", summary.Stability)
	} else {
		logger.Info("step budget exhausted", "step", summary.Step, "max_steps", config.MaxSteps)
	}

	renderer := newRenderer(config)
	var err error
	if config.PrintHistory {
		err = renderer.RenderHistory(out, sim.History())
	} else {
		err = renderer.Render(out, sim.Current())
	}
	if err != nil {
		return errors.Wrap(err, "[runBatch] failed to render boards")
	}
	if err = renderer.RenderSummary(out, summary); err != nil {
		return errors.Wrap(err, "[runBatch] failed to render summary")
	}
	displayGameStatus(out, summary, stats)
	return nil
}

// displayGameStatus shows the final game status
func displayGameStatus(out io.Writer, summary model.Summary, stats *utils.Stats) {
	fmt.Fprintf(out, "Step: %d | Living: %d | Ever born: %d | Status: %s\n",
		summary.Step, summary.Alive, summary.EverBorn, summary.Stability)
	fmt.Fprintf(out, "Performance: %.1f steps/sec | Avg Pop: %.1f | Survival: %.1f%% | Runtime: %.1fs\n",
		stats.StepsPerSecond, stats.AveragePopulation, stats.SurvivalRatio()*100,
		time.Since(stats.StartTime).Seconds())
}

// runInteractive hands the terminal to tcell and drives the simulation from
// a timer and keyboard/mouse commands until the user quits
func runInteractive(
	ctx context.Context,
	config utils.Config,
	sim *model.Simulation,
	logger *log.Logger,
) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runInteractive] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runInteractive] failed to initialize screen")
	}
	screen.EnableMouse()

	// Log lines would tear the screen; hold them until it is released.
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	defer func() {
		screen.Fini()
		logger.SetOutput(os.Stderr)
		_, _ = io.Copy(os.Stderr, &logs)
	}()

	view := controller.NewScreen(screen)
	ctrl, err := controller.New(sim, config.FrameRate,
		controller.WithLogger(logger),
		controller.WithUpdate(view.Draw),
		controller.PauseWhenStable(),
	)
	if err != nil {
		return errors.Wrap(err, "[runInteractive] failed to create controller")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return ctrl.Run(egCtx)
	})
	eg.Go(func() error {
		defer cancel()
		return controller.NewInput(view).Poll(egCtx, screen, ctrl)
	})
	eg.Go(func() error {
		// Wake the input loop once the controller has finished
		<-egCtx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	err = eg.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}
