package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"

	"arbowling/internal/engine"
	"arbowling/internal/lane"
)

// runSimulation plays a full game on virtual time with simulated throws.
func runSimulation(cfg engine.GameConfig, seed uint64) error {
	sched := engine.NewStepScheduler()
	enc := json.NewEncoder(os.Stdout)
	g, err := engine.NewGame(cfg, sched, func(ev engine.Event) {
		fmt.Printf("%8s ", sched.Now())
		enc.Encode(ev)
	})
	if err != nil {
		return err
	}
	if err := g.Start(); err != nil {
		return err
	}

	rack := lane.NewRack()
	if err := g.DeckReady(rack.PinSet()); err != nil {
		return err
	}
	sched.Drain()

	rng := rand.New(rand.NewPCG(seed, seed))
	for g.Phase() == engine.PhaseReadyToThrow {
		swipe := 0.5 + rng.Float64()/2
		if _, err := g.ThrowCommitted(swipe); err != nil {
			return err
		}
		rack.Knock(rack.Roll(swipe, rng))
		if err := g.BallLeftPlay(); err != nil {
			return err
		}
		sched.Drain()
	}

	e := g.CalculateScore()
	fmt.Printf("final score %d over %d turns (%d pins, %d strikes)\n", e.Total, e.TurnsPlayed, e.PinPoints, e.Strikes)
	return nil
}
