package engine

// EventType identifies notifications emitted by a session.
type EventType string

const (
	EventPhaseEntered   EventType = "phase_entered"
	EventScoreChanged   EventType = "score_changed"
	EventBallsChanged   EventType = "remaining_balls_changed"
	EventTurnChanged    EventType = "turn_changed"
	EventStrikeAchieved EventType = "strike_achieved"
	EventGameEnded      EventType = "game_ended"
	EventThrowCommitted EventType = "throw_committed"
	EventPinsRaised     EventType = "pins_raised"
	EventPinsLowered    EventType = "pins_lowered"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// EventSink receives events synchronously, on the goroutine that owns the session.
type EventSink func(Event)

func (s EventSink) emit(typ EventType, data map[string]interface{}) {
	if s == nil {
		return
	}
	s(Event{Type: typ, Data: data})
}
