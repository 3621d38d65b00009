package model

import (
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

// Board is the state of one step: which cells are alive and when each was
// born, on a fixed-size surface whose edges wrap around. A Board is never
// modified after it is handed out; edits produce a new Board.
type Board struct {
	step   uint64
	width  uint32
	height uint32
	cells  map[Position]Cell
}

// NewBoard creates an empty board at step 0
func NewBoard(width, height uint32) (*Board, error) {
	if width == 0 || height == 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "[NewBoard] dimensions must be positive: %dx%d", width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make(map[Position]Cell),
	}, nil
}

// RandomBoard creates a board at step 0 with exactly population distinct
// living cells, placed uniformly at random using rng. Cells get IDs
// 0..population-1 in placement order.
func RandomBoard(width, height uint32, population int, rng *rand.Rand) (*Board, error) {
	b, err := NewBoard(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[RandomBoard] failed to create board")
	}
	if rng == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "[RandomBoard] random source is nil")
	}
	if population < 0 || uint64(population) > b.Area() {
		return nil, errors.Wrapf(ErrInvalidConfig,
			"[RandomBoard] population %d does not fit a %dx%d board", population, width, height)
	}

	for id := range population {
		// Occupied draws are retried; this terminates since population <= area.
		for {
			pos := Position{X: rng.Uint32N(width), Y: rng.Uint32N(height)}
			if _, taken := b.cells[pos]; taken {
				continue
			}
			b.cells[pos] = Cell{ID: uint64(id), Pos: pos}
			break
		}
	}
	return b, nil
}

// Step returns the generation index of the board
func (b *Board) Step() uint64 {
	return b.step
}

// Width returns the width of the board
func (b *Board) Width() uint32 {
	return b.width
}

// Height returns the height of the board
func (b *Board) Height() uint32 {
	return b.height
}

// Area returns width*height
func (b *Board) Area() uint64 {
	return uint64(b.width) * uint64(b.height)
}

// Len returns the number of living cells
func (b *Board) Len() int {
	return len(b.cells)
}

// Contains reports whether pos lies on the board
func (b *Board) Contains(pos Position) bool {
	return pos.X < b.width && pos.Y < b.height
}

// Alive reports whether the cell at pos is alive
func (b *Board) Alive(pos Position) bool {
	_, ok := b.cells[pos]
	return ok
}

// Cell returns the living cell at pos, if any
func (b *Board) Cell(pos Position) (Cell, bool) {
	c, ok := b.cells[pos]
	return c, ok
}

// Age returns how many steps ago c was born, relative to this board
func (b *Board) Age(c Cell) uint64 {
	if c.Generation > b.step {
		return 0
	}
	return b.step - c.Generation
}

// Cells returns the living cells in row-major order
func (b *Board) Cells() []Cell {
	cells := slices.Collect(maps.Values(b.cells))
	slices.SortFunc(cells, func(a, c Cell) int {
		switch {
		case a.Pos.Less(c.Pos):
			return -1
		case c.Pos.Less(a.Pos):
			return 1
		}
		return 0
	})
	return cells
}

// Positions returns the living positions in row-major order
func (b *Board) Positions() []Position {
	cells := b.Cells()
	positions := make([]Position, len(cells))
	for i, c := range cells {
		positions[i] = c.Pos
	}
	return positions
}

// wrap maps possibly out-of-range coordinates back onto the torus
func (b *Board) wrap(x, y int) Position {
	w, h := int(b.width), int(b.height)
	x = (x%w + w) % w
	y = (y%h + h) % h
	return Position{X: uint32(x), Y: uint32(y)}
}

// NeighborCount counts living neighbors of pos, wrapping across the edges.
// On boards smaller than 3 in a dimension several offsets land on the same
// cell; each offset is counted on its own.
func (b *Board) NeighborCount(pos Position, n Neighborhood) int {
	count := 0
	x, y := int(pos.X), int(pos.Y)
	for _, o := range n.offsets() {
		if _, ok := b.cells[b.wrap(x+o.dx, y+o.dy)]; ok {
			count++
		}
	}
	return count
}

// Oldest returns the living cell with the lowest birth generation. Ties go
// to the first cell in row-major order. ok is false on an empty board.
func (b *Board) Oldest() (cell Cell, ok bool) {
	return b.pick(func(c, best Cell) bool { return c.Generation < best.Generation })
}

// Youngest returns the living cell with the highest birth generation. Ties go
// to the first cell in row-major order. ok is false on an empty board.
func (b *Board) Youngest() (cell Cell, ok bool) {
	return b.pick(func(c, best Cell) bool { return c.Generation > best.Generation })
}

func (b *Board) pick(better func(c, best Cell) bool) (best Cell, ok bool) {
	for _, c := range b.Cells() {
		if !ok || better(c, best) {
			best, ok = c, true
		}
	}
	return best, ok
}

// SamePositions reports whether both boards have exactly the same living
// positions. Birth generations and IDs are ignored.
func (b *Board) SamePositions(o *Board) bool {
	if o == nil || len(b.cells) != len(o.cells) {
		return false
	}
	for pos := range b.cells {
		if _, ok := o.cells[pos]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether both boards are identical, including step index,
// dimensions and every cell's metadata
func (b *Board) Equal(o *Board) bool {
	if o == nil {
		return false
	}
	return b.step == o.step &&
		b.width == o.width &&
		b.height == o.height &&
		maps.Equal(b.cells, o.cells)
}

// BoundingBoxSize returns the area of the smallest axis-aligned rectangle
// holding every living cell, ignoring wrap-around
func (b *Board) BoundingBoxSize() uint64 {
	if len(b.cells) == 0 {
		return 0
	}
	var (
		minX, minY = b.width, b.height
		maxX, maxY uint32
	)
	for pos := range b.cells {
		minX, maxX = min(minX, pos.X), max(maxX, pos.X)
		minY, maxY = min(minY, pos.Y), max(maxY, pos.Y)
	}
	return uint64(maxX-minX+1) * uint64(maxY-minY+1)
}

// with returns a copy of the board holding c as well
func (b *Board) with(c Cell) *Board {
	next := b.clone()
	next.cells[c.Pos] = c
	return next
}

// without returns a copy of the board with the cell at pos removed
func (b *Board) without(pos Position) *Board {
	next := b.clone()
	delete(next.cells, pos)
	return next
}

func (b *Board) clone() *Board {
	return &Board{
		step:   b.step,
		width:  b.width,
		height: b.height,
		cells:  maps.Clone(b.cells),
	}
}

// empty returns an empty board with the same dimensions at the given step
func (b *Board) empty(step uint64) *Board {
	return &Board{
		step:   step,
		width:  b.width,
		height: b.height,
		cells:  make(map[Position]Cell),
	}
}
