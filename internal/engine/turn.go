package engine

import (
	"log"
	"time"
)

// TurnAdvancer moves the game to the next turn, or ends it, on every TurnEnd.
type TurnAdvancer struct {
	ctrl  *PhaseController
	score *ScoreKeeper
	sched Scheduler
	delay time.Duration
	sink  EventSink
}

func NewTurnAdvancer(ctrl *PhaseController, score *ScoreKeeper, sched Scheduler, cfg GameConfig, sink EventSink) *TurnAdvancer {
	t := &TurnAdvancer{
		ctrl:  ctrl,
		score: score,
		sched: sched,
		delay: cfg.TurnDisplayDelay,
		sink:  sink,
	}
	ctrl.Subscribe(PhaseTurnEnd, t.endTurn)
	return t
}

func (t *TurnAdvancer) endTurn() {
	turn := t.score.AdvanceTurn()
	if t.score.GameOver() {
		t.advance(PhaseGameEnded)
		return
	}
	t.sink.emit(EventTurnChanged, map[string]interface{}{
		"turn":      turn,
		"max_turns": t.score.MaxTurns(),
	})
	t.sched.After(t.delay, func() { t.advance(PhaseResettingDeck) })
}

func (t *TurnAdvancer) advance(p Phase) {
	if err := t.ctrl.Transition(p); err != nil {
		log.Printf("turn: %v", err)
	}
}
