package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sheikhrachel/toroid-life/model"
	"github.com/sheikhrachel/toroid-life/utils"
)

func TestInitializeGame(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 42

	a, seed, err := initializeGame(config, log.New(io.Discard))
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if seed != 42 {
		t.Fatalf("seed = %d, want 42", seed)
	}
	if a.Current().Len() != config.Population {
		t.Fatalf("initial population = %d, want %d", a.Current().Len(), config.Population)
	}

	b, _, err := initializeGame(config, log.New(io.Discard))
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if !a.Current().Equal(b.Current()) {
		t.Fatalf("same seed produced different boards")
	}

	config.Population = int(config.Width*config.Height) + 1
	if _, _, err = initializeGame(config, log.New(io.Discard)); err == nil {
		t.Fatalf("initializeGame accepted an overfull board")
	}
}

func TestRunBatch(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 7
	config.PrintHistory = false

	sim, _, err := initializeGame(config, log.New(io.Discard))
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	var out bytes.Buffer
	if err = runBatch(context.Background(), config, sim, log.New(io.Discard), &out); err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	steps := sim.Step()
	if steps == 0 || steps > uint64(config.MaxSteps) {
		t.Fatalf("Step() = %d, want between 1 and %d", steps, config.MaxSteps)
	}
	if steps < uint64(config.MaxSteps) && !sim.NoChange() {
		t.Fatalf("run stopped early at step %d while still changing", steps)
	}

	text := out.String()
	for _, want := range []string{"World: ", "Oldest: ", "Youngest: ", "Step: ", "Ever born: "} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if n := strings.Count(text, "World: "); n != 1 {
		t.Fatalf("printed %d boards, want only the last", n)
	}
}

func TestRunBatchPrintsHistory(t *testing.T) {
	config := utils.DefaultConfig()
	config.MaxSteps = 3

	b, err := model.NewBoard(4, 4)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	sim, err := model.NewSimulation(b)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}

	var out bytes.Buffer
	if err = runBatch(context.Background(), config, sim, log.New(io.Discard), &out); err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	// An empty board is static after one step
	text := out.String()
	if n := strings.Count(text, "World: "); n != 2 {
		t.Fatalf("printed %d boards, want 2:\n%s", n, text)
	}
	if !strings.Contains(text, "Oldest: none") || !strings.Contains(text, "Status: static") {
		t.Fatalf("unexpected summary:\n%s", text)
	}
}
