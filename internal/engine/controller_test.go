package engine_test

import (
	"arbowling/internal/engine"
	"errors"
	"testing"
)

func TestPhaseString(t *testing.T) {
	if engine.PhaseBallPlayEnd.String() != "BallPlayEnd" {
		t.Errorf("got %q", engine.PhaseBallPlayEnd.String())
	}
	if engine.Phase(99).String() != "Unknown" {
		t.Errorf("got %q for unknown phase", engine.Phase(99).String())
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to engine.Phase
		ok       bool
	}{
		{engine.PhaseTitleScreen, engine.PhasePlacingEquipment, true},
		{engine.PhasePlacingEquipment, engine.PhaseSettingUpPins, true},
		{engine.PhaseSettingUpPins, engine.PhaseReadyToThrow, true},
		{engine.PhaseReadyToThrow, engine.PhaseBallInPlay, true},
		{engine.PhaseBallInPlay, engine.PhaseBallPlayEnd, true},
		{engine.PhaseBallPlayEnd, engine.PhaseStrikeAchieved, true},
		{engine.PhaseBallPlayEnd, engine.PhaseTurnEnd, true},
		{engine.PhaseStrikeAchieved, engine.PhaseTurnEnd, true},
		{engine.PhaseTurnEnd, engine.PhaseResettingDeck, true},
		{engine.PhaseTurnEnd, engine.PhaseGameEnded, true},
		{engine.PhaseResettingDeck, engine.PhaseReadyToThrow, true},
		{engine.PhaseReadyToThrow, engine.PhaseReadyToThrow, false},
		{engine.PhaseBallInPlay, engine.PhaseTurnEnd, false},
		{engine.PhaseStrikeAchieved, engine.PhaseResettingDeck, false},
		{engine.PhaseGameEnded, engine.PhaseTitleScreen, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.ok {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}

func TestSetPhaseNotifiesInOrder(t *testing.T) {
	for _, p := range engine.Phases() {
		c := engine.NewPhaseController()
		var calls []int
		c.Subscribe(p, func() { calls = append(calls, 1) })
		c.SubscribeAll(func(engine.Phase) { calls = append(calls, 2) })
		c.Subscribe(p, func() { calls = append(calls, 3) })

		c.SetPhase(p)
		if c.Phase() != p {
			t.Fatalf("phase %s not stored", p)
		}
		if len(calls) != 3 || calls[0] != 1 || calls[1] != 2 || calls[2] != 3 {
			t.Fatalf("%s: calls %v, want [1 2 3]", p, calls)
		}
	}
}

func TestSetPhaseOnlyNotifiesMatchingListeners(t *testing.T) {
	c := engine.NewPhaseController()
	ready, inPlay := 0, 0
	c.Subscribe(engine.PhaseReadyToThrow, func() { ready++ })
	c.Subscribe(engine.PhaseBallInPlay, func() { inPlay++ })

	c.SetPhase(engine.PhaseReadyToThrow)
	c.SetPhase(engine.PhaseReadyToThrow)
	if ready != 2 {
		t.Errorf("same-phase assignment should notify again, got %d", ready)
	}
	if inPlay != 0 {
		t.Errorf("BallInPlay listener fired %d times", inPlay)
	}
}

func TestUnsubscribe(t *testing.T) {
	c := engine.NewPhaseController()
	n := 0
	sub := c.Subscribe(engine.PhaseTurnEnd, func() { n++ })
	c.SetPhase(engine.PhaseTurnEnd)
	c.Unsubscribe(sub)
	c.Unsubscribe(sub)
	c.SetPhase(engine.PhaseTurnEnd)
	if n != 1 {
		t.Fatalf("listener fired %d times, want 1", n)
	}
}

func TestReentrantSetPhase(t *testing.T) {
	c := engine.NewPhaseController()
	var order []string
	c.Subscribe(engine.PhaseResettingDeck, func() {
		order = append(order, "reset")
		c.SetPhase(engine.PhaseReadyToThrow)
	})
	c.Subscribe(engine.PhaseReadyToThrow, func() { order = append(order, "ready") })
	c.Subscribe(engine.PhaseResettingDeck, func() { order = append(order, "reset-2") })

	c.SetPhase(engine.PhaseResettingDeck)
	if c.Phase() != engine.PhaseReadyToThrow {
		t.Fatalf("expected ReadyToThrow, got %s", c.Phase())
	}
	want := []string{"reset", "ready", "reset-2"}
	if len(order) != len(want) {
		t.Fatalf("order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order %v, want %v", order, want)
		}
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	c := engine.NewPhaseController()
	late := 0
	c.Subscribe(engine.PhaseBallInPlay, func() {
		c.Subscribe(engine.PhaseBallInPlay, func() { late++ })
	})
	c.SetPhase(engine.PhaseBallInPlay)
	if late != 0 {
		t.Fatalf("listener added mid-dispatch ran in the same dispatch")
	}
	c.SetPhase(engine.PhaseBallInPlay)
	if late != 1 {
		t.Fatalf("late listener ran %d times, want 1", late)
	}
}

func TestTransitionValidation(t *testing.T) {
	c := engine.NewPhaseController()
	n := 0
	c.SubscribeAll(func(engine.Phase) { n++ })

	err := c.Transition(engine.PhaseBallInPlay)
	if !errors.Is(err, engine.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if c.Phase() != engine.PhaseTitleScreen || n != 0 {
		t.Fatalf("rejected transition changed state: phase=%s notifications=%d", c.Phase(), n)
	}

	if err := c.Transition(engine.PhasePlacingEquipment); err != nil {
		t.Fatalf("valid transition: %v", err)
	}
	if n != 1 {
		t.Fatalf("notifications %d, want 1", n)
	}

	c.SetPhase(engine.PhaseGameEnded)
	if err := c.Transition(engine.PhasePlacingEquipment); !errors.Is(err, engine.ErrGameEnded) {
		t.Fatalf("expected ErrGameEnded, got %v", err)
	}
}
