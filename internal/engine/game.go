package engine

import (
	"errors"
	"fmt"
)

var (
	ErrWrongPhase = errors.New("wrong phase for this action")
	ErrDeckPlaced = errors.New("pin deck already placed")
)

// Game is one bowling session: the phase state machine plus the components
// that react to it. All methods must be called from the goroutine that runs
// the scheduler's steps.
type Game struct {
	Config GameConfig

	ctrl  *PhaseController
	score *ScoreKeeper
	deck  *DeckProtocol
	turns *TurnAdvancer
	sched Scheduler
	sink  EventSink

	deckPlaced bool
}

// NewGame validates cfg and wires a session in PhaseTitleScreen.
func NewGame(cfg GameConfig, sched Scheduler, sink EventSink) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctrl := NewPhaseController()
	score := NewScoreKeeper(cfg, sink)

	g := &Game{
		Config: cfg,
		ctrl:   ctrl,
		score:  score,
		sched:  sched,
		sink:   sink,
	}

	// Registered first so phase_entered precedes whatever the phase triggers.
	ctrl.SubscribeAll(func(p Phase) {
		sink.emit(EventPhaseEntered, map[string]interface{}{"phase": p.String()})
	})
	g.deck = NewDeckProtocol(ctrl, score, sched, cfg, sink)
	g.turns = NewTurnAdvancer(ctrl, score, sched, cfg, sink)
	ctrl.Subscribe(PhaseGameEnded, func() {
		sink.emit(EventGameEnded, map[string]interface{}{
			"score":     score.Score(),
			"breakdown": g.CalculateScore(),
		})
	})
	return g, nil
}

func (g *Game) Phase() Phase {
	return g.ctrl.Phase()
}

// Controller exposes the state machine for observers.
func (g *Game) Controller() *PhaseController {
	return g.ctrl
}

func (g *Game) Score() *ScoreKeeper {
	return g.score
}

func (g *Game) Pins() PinSet {
	return g.deck.Pins()
}

// Start resets the score and begins equipment placement.
func (g *Game) Start() error {
	if err := g.require(PhaseTitleScreen); err != nil {
		return err
	}
	g.score.Reset()
	return g.ctrl.Transition(PhasePlacingEquipment)
}

// DeckReady attaches the spawned pins. SettingUpPins is entered after the
// deck spawn delay.
func (g *Game) DeckReady(pins PinSet) error {
	if err := g.require(PhasePlacingEquipment); err != nil {
		return err
	}
	if g.deckPlaced {
		return ErrDeckPlaced
	}
	g.deckPlaced = true
	g.deck.Attach(pins)
	g.sched.After(g.Config.DeckSpawnDelay, func() { g.deck.advance(PhaseSettingUpPins) })
	return nil
}

// ThrowCommitted uses up one ball and puts it in play. It returns the
// impulse for the given swipe length.
func (g *Game) ThrowCommitted(swipeDelta float64) (float64, error) {
	if err := g.require(PhaseReadyToThrow); err != nil {
		return 0, err
	}
	impulse := g.score.ThrowImpulse(swipeDelta)
	g.score.ConsumeBall()
	g.sink.emit(EventThrowCommitted, map[string]interface{}{
		"swipe":   swipeDelta,
		"impulse": impulse,
	})
	return impulse, g.ctrl.Transition(PhaseBallInPlay)
}

// BallLeftPlay ends the ball's play and triggers scoring.
func (g *Game) BallLeftPlay() error {
	if err := g.require(PhaseBallInPlay); err != nil {
		return err
	}
	return g.ctrl.Transition(PhaseBallPlayEnd)
}

func (g *Game) require(p Phase) error {
	cur := g.ctrl.Phase()
	if cur.Terminal() {
		return ErrGameEnded
	}
	if cur != p {
		return fmt.Errorf("%w: in %s, need %s", ErrWrongPhase, cur, p)
	}
	return nil
}

// PinView is the client-facing state of one pin.
type PinView struct {
	Down bool `json:"down"`
}

// GameView is a full snapshot for clients.
type GameView struct {
	Phase string `json:"phase"`
	ScoreState
	Pins []PinView `json:"pins"`
}

func (g *Game) View() GameView {
	pins := g.deck.Pins()
	views := make([]PinView, len(pins))
	for i, p := range pins {
		views[i] = PinView{Down: p.IsDown()}
	}
	return GameView{
		Phase:      g.ctrl.Phase().String(),
		ScoreState: g.score.Snapshot(),
		Pins:       views,
	}
}
