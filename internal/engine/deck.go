package engine

import "log"

// DeckProtocol scores thrown pins and raises, resets and lowers the deck
// in response to phase entries.
type DeckProtocol struct {
	ctrl  *PhaseController
	score *ScoreKeeper
	sched Scheduler
	cfg   GameConfig
	sink  EventSink

	pins    PinSet
	counted []bool // pins already scored since the last deck reset
}

// NewDeckProtocol subscribes the protocol steps to ctrl.
func NewDeckProtocol(ctrl *PhaseController, score *ScoreKeeper, sched Scheduler, cfg GameConfig, sink EventSink) *DeckProtocol {
	d := &DeckProtocol{
		ctrl:  ctrl,
		score: score,
		sched: sched,
		cfg:   cfg,
		sink:  sink,
	}
	ctrl.Subscribe(PhaseSettingUpPins, d.lowerDeck)
	ctrl.Subscribe(PhaseBallPlayEnd, d.resolveThrow)
	ctrl.Subscribe(PhaseResettingDeck, d.resetDeck)
	return d
}

// Attach replaces the active PinSet.
func (d *DeckProtocol) Attach(pins PinSet) {
	d.pins = pins
	d.counted = make([]bool, len(pins))
}

func (d *DeckProtocol) Pins() PinSet {
	return d.pins
}

func (d *DeckProtocol) lowerDeck() {
	for _, pin := range d.pins {
		pin.Lower()
	}
	d.sink.emit(EventPinsLowered, map[string]interface{}{"count": len(d.pins)})
	d.sched.After(d.cfg.PinLowerDelay, func() { d.advance(PhaseReadyToThrow) })
}

// resolveThrow scores every pin that went down since the last reset.
func (d *DeckProtocol) resolveThrow() {
	knocked := 0
	for i, pin := range d.pins {
		if pin.IsDown() && !d.counted[i] {
			d.counted[i] = true
			knocked++
		}
	}
	d.score.AddPinPoints(knocked)

	if d.score.StrikeCounter() == StrikePins {
		d.advance(PhaseStrikeAchieved)
		d.score.AwardStrike()
		d.sink.emit(EventStrikeAchieved, map[string]interface{}{
			"bonus": d.score.StrikeExtraPoints(),
			"score": d.score.Score(),
		})
		d.sched.After(d.cfg.StrikeHoldDelay, d.finishThrow)
		return
	}
	d.finishThrow()
}

func (d *DeckProtocol) finishThrow() {
	d.score.ResetStrike()

	raised := 0
	for _, pin := range d.pins {
		if !pin.IsDown() {
			pin.Raise()
			raised++
		}
	}
	d.sink.emit(EventPinsRaised, map[string]interface{}{"count": raised})
	d.sched.After(d.cfg.PinRaiseDelay, func() { d.advance(PhaseTurnEnd) })
}

func (d *DeckProtocol) resetDeck() {
	for i, pin := range d.pins {
		pin.Reset()
		pin.Lower()
		d.counted[i] = false
	}
	d.sink.emit(EventPinsLowered, map[string]interface{}{"count": len(d.pins)})
	d.sched.After(d.cfg.PinLowerDelay, func() { d.advance(PhaseReadyToThrow) })
}

func (d *DeckProtocol) advance(p Phase) {
	if err := d.ctrl.Transition(p); err != nil {
		log.Printf("deck: %v", err)
	}
}
