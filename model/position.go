package model

import "fmt"

// Position addresses a cell on the board. Positions are comparable and are
// used directly as map keys.
type Position struct {
	X uint32
	Y uint32
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y uint32) Position {
	return Position{X: x, Y: y}
}

// Less orders positions row-major: by Y, then by X
func (p Position) Less(o Position) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
