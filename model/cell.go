package model

import "fmt"

// Cell is a single living cell. Generation is the step at which the cell was
// born and never changes while the cell survives. ID is taken from the
// simulation's ever-born counter at birth.
type Cell struct {
	ID         uint64
	Generation uint64
	Pos        Position
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell{id: %d, generation: %d, pos: %s}", c.ID, c.Generation, c.Pos)
}
