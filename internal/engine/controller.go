package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrGameEnded         = errors.New("game has ended")
)

// Subscription identifies a registered phase-entry listener.
type Subscription struct {
	id uint64
}

type listener struct {
	id    uint64
	phase Phase
	all   bool
	fn    func(Phase)
}

// PhaseController owns the current phase and notifies entry listeners.
// It is not safe for concurrent use; callers confine it to one goroutine.
type PhaseController struct {
	current   Phase
	nextID    uint64
	listeners []listener
}

// NewPhaseController starts in PhaseTitleScreen.
func NewPhaseController() *PhaseController {
	return &PhaseController{current: PhaseTitleScreen}
}

func (c *PhaseController) Phase() Phase {
	return c.current
}

// SetPhase stores p and invokes every listener registered for p, in
// registration order. It never rejects a phase, and assigning the current
// phase again notifies again. Listeners may call SetPhase re-entrantly.
func (c *PhaseController) SetPhase(p Phase) {
	c.current = p

	// Snapshot so listeners can subscribe, unsubscribe or transition mid-dispatch.
	snapshot := make([]listener, len(c.listeners))
	copy(snapshot, c.listeners)
	for _, l := range snapshot {
		if l.all || l.phase == p {
			l.fn(p)
		}
	}
}

// Transition is SetPhase guarded by the successor table.
func (c *PhaseController) Transition(p Phase) error {
	if c.current.Terminal() {
		return fmt.Errorf("%w: rejected %s", ErrGameEnded, p)
	}
	if !c.current.CanTransitionTo(p) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.current, p)
	}
	c.SetPhase(p)
	return nil
}

// Subscribe registers fn to run on every entry into p.
func (c *PhaseController) Subscribe(p Phase, fn func()) Subscription {
	return c.add(listener{phase: p, fn: func(Phase) { fn() }})
}

// SubscribeAll registers fn to run on entry into any phase.
func (c *PhaseController) SubscribeAll(fn func(Phase)) Subscription {
	return c.add(listener{all: true, fn: fn})
}

func (c *PhaseController) add(l listener) Subscription {
	c.nextID++
	l.id = c.nextID
	c.listeners = append(c.listeners, l)
	return Subscription{id: l.id}
}

// Unsubscribe removes a listener. Unknown subscriptions are ignored.
func (c *PhaseController) Unsubscribe(s Subscription) {
	for i, l := range c.listeners {
		if l.id == s.id {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}
