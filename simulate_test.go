package main

import (
	"testing"

	"arbowling/internal/engine"
)

func TestRunSimulation(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxTurns = 2
	if err := runSimulation(cfg, 3); err != nil {
		t.Fatalf("runSimulation: %v", err)
	}
}
