package model

import (
	"io"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/toroid-life/rules"
)

// minHistory is the fewest boards needed to tell a fixed point from a
// period-2 oscillation
const minHistory = 3

// Stability describes whether stepping still produces new configurations
type Stability int

const (
	// Changing means the latest board differs from the previous two
	Changing Stability = iota
	// Static means the latest board has the same living positions as the previous one
	Static
	// Oscillating means the latest board repeats the one two steps earlier
	Oscillating
)

func (s Stability) String() string {
	switch s {
	case Static:
		return "static"
	case Oscillating:
		return "oscillating"
	default:
		return "changing"
	}
}

// Summary is a snapshot of the simulation's statistics
type Summary struct {
	Step      uint64
	Alive     int
	EverBorn  uint64
	Oldest    Cell
	Youngest  Cell
	HasCells  bool
	Stability Stability
}

// Simulation owns the sequence of boards and applies the birth/survival rule
// to move from one to the next. All methods are safe to call from several
// goroutines; each one runs to completion before another starts.
type Simulation struct {
	mu sync.Mutex

	neighborhood Neighborhood
	historyLimit int
	workers      int
	logger       *log.Logger
	pool         *bandPool

	lifeCounter uint64
	history     []*Board
}

// Option configures a Simulation
type Option func(*Simulation)

// WithNeighborhood selects the neighborhood used when stepping. Moore is the default.
func WithNeighborhood(n Neighborhood) Option {
	return func(s *Simulation) {
		s.neighborhood = n
	}
}

// WithHistoryLimit caps the number of retained boards. Zero keeps every
// board; other values are raised to at least 3.
func WithHistoryLimit(limit int) Option {
	return func(s *Simulation) {
		switch {
		case limit <= 0:
			s.historyLimit = 0
		default:
			s.historyLimit = max(limit, minHistory)
		}
	}
}

// WithParallelism sets how many row bands a step is split into. Values
// below 1 mean one band per CPU.
func WithParallelism(workers int) Option {
	return func(s *Simulation) {
		s.workers = workers
	}
}

// WithLogger sets the logger used for step and lifecycle events
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulation starts a simulation from board. The ever-born counter starts
// at the number of cells already on the board.
func NewSimulation(board *Board, opts ...Option) (*Simulation, error) {
	if board == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "[NewSimulation] initial board is nil")
	}

	s := &Simulation{
		neighborhood: Moore,
		workers:      runtime.NumCPU(),
		logger:       log.New(io.Discard),
		pool:         newBandPool(),
		lifeCounter:  uint64(board.Len()),
		history:      []*Board{board},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.NumCPU()
	}
	if s.neighborhood != Moore && s.neighborhood != VonNeumann {
		return nil, errors.Wrapf(ErrInvalidConfig, "[NewSimulation] unknown neighborhood: %d", int(s.neighborhood))
	}
	return s, nil
}

// NewRandomSimulation starts a simulation from a randomly populated board
func NewRandomSimulation(
	width, height uint32,
	population int,
	rng *rand.Rand,
	opts ...Option,
) (*Simulation, error) {
	board, err := RandomBoard(width, height, population, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandomSimulation] failed to create initial board")
	}
	return NewSimulation(board, opts...)
}

// Neighborhood returns the neighborhood used when stepping
func (s *Simulation) Neighborhood() Neighborhood {
	return s.neighborhood
}

// Current returns the latest board
func (s *Simulation) Current() *Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Simulation) current() *Board {
	return s.history[len(s.history)-1]
}

// Step returns the step index of the latest board
func (s *Simulation) Step() uint64 {
	return s.Current().Step()
}

// EverBorn returns the number of cells born since the start or the last reset
func (s *Simulation) EverBorn() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifeCounter
}

// History returns the retained boards, oldest first
func (s *Simulation) History() []*Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Board, len(s.history))
	copy(out, s.history)
	return out
}

// Advance computes the next board from the current one and appends it to
// the history
func (s *Simulation) Advance() *Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advance()
}

func (s *Simulation) advance() *Board {
	var (
		cur    = s.current()
		next   = cur.empty(cur.step + 1)
		before = s.lifeCounter
	)

	s.fill(cur, next)
	s.push(next)

	s.logger.Debug("advanced",
		"step", next.step, "alive", next.Len(), "born", s.lifeCounter-before,
	)
	return next
}

// fill computes next from cur in row bands. Bands only read cur, so they
// run concurrently; their results are merged in row order afterwards so the
// IDs handed to new cells do not depend on scheduling.
func (s *Simulation) fill(cur, next *Board) {
	var (
		eg            errgroup.Group
		height        = int(cur.height)
		numWorkers    = min(s.workers, height)
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
		bands         = make([]*[]Cell, 0, numWorkers)
		birthGen      = next.step
		neighborhood  = s.neighborhood
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		band := s.pool.Get()
		bands = append(bands, band)

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := uint32(0); x < cur.width; x++ {
					pos := Position{X: x, Y: uint32(y)}
					k := cur.NeighborCount(pos, neighborhood)
					if c, alive := cur.cells[pos]; alive {
						if rules.Survives(k) {
							*band = append(*band, c)
						}
					} else if rules.Born(k) {
						*band = append(*band, Cell{Generation: birthGen, Pos: pos})
					}
				}
			}
			return nil
		})
	}

	// bands only fill their own buffers and never fail
	_ = eg.Wait()

	for _, band := range bands {
		for _, c := range *band {
			if _, survived := cur.cells[c.Pos]; !survived {
				c.ID = s.lifeCounter
				s.lifeCounter++
			}
			next.cells[c.Pos] = c
		}
		s.pool.Put(band)
	}
}

func (s *Simulation) push(b *Board) {
	s.history = append(s.history, b)
	if s.historyLimit > 0 && len(s.history) > s.historyLimit {
		drop := len(s.history) - s.historyLimit
		clear(s.history[:drop])
		s.history = s.history[drop:]
	}
}

// Stability compares the living positions of the latest board with the
// previous one and the one before that
func (s *Simulation) Stability() Stability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stability()
}

func (s *Simulation) stability() Stability {
	n := len(s.history)
	if n < 2 {
		return Changing
	}
	latest := s.history[n-1]
	if latest.SamePositions(s.history[n-2]) {
		return Static
	}
	if n >= 3 && latest.SamePositions(s.history[n-3]) {
		return Oscillating
	}
	return Changing
}

// NoChange reports whether the simulation has reached a fixed point or a
// period-2 oscillation
func (s *Simulation) NoChange() bool {
	return s.Stability() != Changing
}

// Run advances until the simulation stops changing or maxSteps advances
// have been made, and returns the number of advances
func (s *Simulation) Run(maxSteps int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	steps := 0
	for steps < maxSteps && s.stability() == Changing {
		s.advance()
		steps++
	}

	cur := s.current()
	s.logger.Info("run finished",
		"steps", steps, "step", cur.step, "alive", cur.Len(), "stability", s.stability(),
	)
	return steps
}

// SetAlive places a new cell at pos, born at the current step. It is a
// no-op if the cell is already alive.
func (s *Simulation) SetAlive(pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setAlive(pos)
}

func (s *Simulation) setAlive(pos Position) error {
	cur := s.current()
	if !cur.Contains(pos) {
		return errors.Wrapf(ErrOutOfRange, "[SetAlive] %s on a %dx%d board", pos, cur.width, cur.height)
	}
	if cur.Alive(pos) {
		return nil
	}

	s.replaceCurrent(cur.with(Cell{ID: s.lifeCounter, Generation: cur.step, Pos: pos}))
	s.lifeCounter++
	return nil
}

// SetDead removes the cell at pos. It is a no-op if the cell is already dead.
func (s *Simulation) SetDead(pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setDead(pos)
}

func (s *Simulation) setDead(pos Position) error {
	cur := s.current()
	if !cur.Contains(pos) {
		return errors.Wrapf(ErrOutOfRange, "[SetDead] %s on a %dx%d board", pos, cur.width, cur.height)
	}
	if !cur.Alive(pos) {
		return nil
	}

	s.replaceCurrent(cur.without(pos))
	return nil
}

// Toggle flips the cell at pos and reports whether it is now alive
func (s *Simulation) Toggle(pos Position) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current().Alive(pos) {
		return false, s.setDead(pos)
	}
	if err := s.setAlive(pos); err != nil {
		return false, err
	}
	return true, nil
}

// replaceCurrent swaps in an edited copy of the latest board. Callers holding
// the old board keep an unchanged snapshot.
func (s *Simulation) replaceCurrent(b *Board) {
	s.history[len(s.history)-1] = b
}

// Reset discards all history and returns to an empty board of the same
// dimensions at step 0
func (s *Simulation) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	blank := s.current().empty(0)
	clear(s.history)
	s.history = []*Board{blank}
	s.lifeCounter = 0
	s.logger.Info("reset")
}

// Summary collects the current statistics
func (s *Simulation) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	sum := Summary{
		Step:      cur.step,
		Alive:     cur.Len(),
		EverBorn:  s.lifeCounter,
		Stability: s.stability(),
	}
	sum.Oldest, sum.HasCells = cur.Oldest()
	sum.Youngest, _ = cur.Youngest()
	return sum
}
