package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Neighborhood selects which adjacent cells count toward the neighbor total
type Neighborhood int

const (
	// Moore counts all eight surrounding cells
	Moore Neighborhood = iota
	// VonNeumann counts only the four orthogonal cells
	VonNeumann
)

type offset struct{ dx, dy int }

var (
	vonNeumannOffsets = []offset{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
	mooreOffsets = []offset{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

func (n Neighborhood) offsets() []offset {
	if n == VonNeumann {
		return vonNeumannOffsets
	}
	return mooreOffsets
}

// Size returns the number of cells in the neighborhood
func (n Neighborhood) Size() int {
	return len(n.offsets())
}

func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "moore"
	case VonNeumann:
		return "von-neumann"
	default:
		return "unknown"
	}
}

// ParseNeighborhood accepts "moore" / "8" and "von-neumann" / "vonneumann" / "4"
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "moore", "8":
		return Moore, nil
	case "von-neumann", "vonneumann", "von_neumann", "4":
		return VonNeumann, nil
	}
	return Moore, errors.Wrapf(ErrInvalidConfig, "[ParseNeighborhood] unknown neighborhood: %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (n Neighborhood) MarshalText() ([]byte, error) {
	if n != Moore && n != VonNeumann {
		return nil, errors.Wrapf(ErrInvalidConfig, "[MarshalText] unknown neighborhood: %d", int(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (n *Neighborhood) UnmarshalText(text []byte) error {
	parsed, err := ParseNeighborhood(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// UnmarshalJSON accepts either a name ("moore") or a neighbor count (8 or 4)
func (n *Neighborhood) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return errors.Wrap(err, "[UnmarshalJSON] failed to decode neighborhood")
		}
		return n.UnmarshalText([]byte(name))
	}

	var count json.Number
	if err := json.Unmarshal(data, &count); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[UnmarshalJSON] neighborhood must be a name or 4/8, got %s", data)
	}
	return n.UnmarshalText([]byte(count.String()))
}
