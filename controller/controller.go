package controller

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroid-life/model"
)

const commandBuffer = 64

// UpdateFunc is called after every change with the latest board and statistics
type UpdateFunc func(board *model.Board, sum model.Summary)

// Controller drives a simulation from a timer and a queue of commands. Ticks
// and commands are handled on a single goroutine, so an edit is always fully
// applied before the next step reads the board.
type Controller struct {
	sim      *model.Simulation
	commands chan Command
	period   time.Duration
	logger   *log.Logger
	onUpdate UpdateFunc

	paused       bool
	pauseOnStill bool
	quit         bool
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller's logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUpdate registers the callback run after every change
func WithUpdate(fn UpdateFunc) Option {
	return func(c *Controller) {
		c.onUpdate = fn
	}
}

// StartPaused makes the controller wait for a PauseCmd or StepCmd before stepping
func StartPaused() Option {
	return func(c *Controller) {
		c.paused = true
	}
}

// PauseWhenStable pauses automatic stepping once the board stops changing
func PauseWhenStable() Option {
	return func(c *Controller) {
		c.pauseOnStill = true
	}
}

// New creates a controller stepping sim every period while not paused
func New(sim *model.Simulation, period time.Duration, opts ...Option) (*Controller, error) {
	if sim == nil {
		return nil, errors.Wrap(model.ErrInvalidConfig, "[New] simulation is nil")
	}
	if period <= 0 {
		return nil, errors.Wrapf(model.ErrInvalidConfig, "[New] tick period must be positive: %s", period)
	}

	c := &Controller{
		sim:      sim,
		commands: make(chan Command, commandBuffer),
		period:   period,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Send queues cmd, waiting for room in the queue or for ctx to end
func (c *Controller) Send(ctx context.Context, cmd Command) error {
	select {
	case c.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes ticks and commands until ctx ends or a QuitCmd arrives.
// A QuitCmd returns nil; a cancelled context returns its error.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	c.notify()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd := <-c.commands:
			changed, err := cmd.apply(c)
			if err != nil {
				c.logger.Warn("command rejected", "command", cmd, "err", err)
			}
			if c.quit {
				c.logger.Info("quit requested", "step", c.sim.Step())
				return nil
			}
			if changed {
				c.notify()
			}

		case <-ticker.C:
			if c.paused {
				continue
			}
			c.sim.Advance()
			if c.pauseOnStill && c.sim.NoChange() {
				c.paused = true
				c.logger.Info("board is stable, pausing", "step", c.sim.Step(), "stability", c.sim.Stability())
			}
			c.notify()
		}
	}
}

// Paused reports whether automatic stepping is paused. Only meaningful from
// the Run goroutine or after Run returns.
func (c *Controller) Paused() bool {
	return c.paused
}

func (c *Controller) notify() {
	if c.onUpdate == nil {
		return
	}
	c.onUpdate(c.sim.Current(), c.sim.Summary())
}
