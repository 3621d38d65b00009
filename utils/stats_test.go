package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/toroid-life/model"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	if s.SurvivalRatio() != 0 {
		t.Fatalf("SurvivalRatio() before updates = %f, want 0", s.SurvivalRatio())
	}

	s.Update(model.Summary{Step: 1, Alive: 10, EverBorn: 20}, nil, 100*time.Millisecond)
	if s.AveragePopulation != 10 || s.TotalSteps != 1 {
		t.Fatalf("after first update: %+v", s)
	}
	if s.StepsPerSecond < 9.9 || s.StepsPerSecond > 10.1 {
		t.Fatalf("StepsPerSecond = %f, want 10", s.StepsPerSecond)
	}

	s.Update(model.Summary{Step: 2, Alive: 20, EverBorn: 40}, nil, 0)
	if s.AveragePopulation < 10.99 || s.AveragePopulation > 11.01 {
		t.Fatalf("AveragePopulation = %f, want 11", s.AveragePopulation)
	}
	if s.SurvivalRatio() != 0.5 {
		t.Fatalf("SurvivalRatio() = %f, want 0.5", s.SurvivalRatio())
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "step", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, loggerPrefix) {
		t.Fatalf("unexpected log output %q", out)
	}

	if _, err = NewLogger(&buf, "loud"); err == nil {
		t.Fatalf("NewLogger accepted an unknown level")
	}
}
