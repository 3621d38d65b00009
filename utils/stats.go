package utils

import (
	"time"

	"github.com/sheikhrachel/toroid-life/model"
)

// Stats for performance monitoring
type Stats struct {
	StepsPerSecond    float64
	AveragePopulation float64
	TotalSteps        uint64
	EverBorn          uint64
	StartTime         time.Time
	ActiveCells       int
	BoundingBoxSize   uint64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one step that took duration to compute
func (s *Stats) Update(sum model.Summary, board *model.Board, duration time.Duration) {
	s.TotalSteps = sum.Step
	s.EverBorn = sum.EverBorn
	s.ActiveCells = sum.Alive
	if board != nil {
		s.BoundingBoxSize = board.BoundingBoxSize()
	}
	if duration > 0 {
		s.StepsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(sum.Alive)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(sum.Alive) * 0.1)
	}
}

// SurvivalRatio is the share of ever-born cells that are alive now
func (s *Stats) SurvivalRatio() float64 {
	if s.EverBorn == 0 {
		return 0
	}
	return float64(s.ActiveCells) / float64(s.EverBorn)
}
