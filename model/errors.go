package model

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned for dimensions or population counts that
	// cannot describe a board.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfRange is returned when an edit addresses a position outside the
	// board. Wrapping only applies to neighbor counting.
	ErrOutOfRange = errors.New("position out of range")
)
