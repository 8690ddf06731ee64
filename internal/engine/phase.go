package engine

// Phase represents the current phase of the lane state machine.
type Phase int

const (
	PhaseTitleScreen      Phase = iota // nothing placed yet
	PhasePlacingEquipment              // AR client is placing lane and pin deck
	PhaseSettingUpPins                 // deck spawned, pins lowering onto the lane
	PhaseReadyToThrow                  // waiting for the bowler
	PhaseBallInPlay                    // ball rolling
	PhaseBallPlayEnd                   // ball left play, scoring
	PhaseStrikeAchieved                // strike celebration
	PhaseTurnEnd                       // turn advance
	PhaseResettingDeck                 // pins reset and lowering
	PhaseGameEnded                     // terminal
)

var phaseNames = map[Phase]string{
	PhaseTitleScreen:      "TitleScreen",
	PhasePlacingEquipment: "PlacingEquipment",
	PhaseSettingUpPins:    "SettingUpPins",
	PhaseReadyToThrow:     "ReadyToThrow",
	PhaseBallInPlay:       "BallInPlay",
	PhaseBallPlayEnd:      "BallPlayEnd",
	PhaseStrikeAchieved:   "StrikeAchieved",
	PhaseTurnEnd:          "TurnEnd",
	PhaseResettingDeck:    "ResettingDeck",
	PhaseGameEnded:        "GameEnded",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

var successors = map[Phase][]Phase{
	PhaseTitleScreen:      {PhasePlacingEquipment},
	PhasePlacingEquipment: {PhaseSettingUpPins},
	PhaseSettingUpPins:    {PhaseReadyToThrow},
	PhaseReadyToThrow:     {PhaseBallInPlay},
	PhaseBallInPlay:       {PhaseBallPlayEnd},
	PhaseBallPlayEnd:      {PhaseStrikeAchieved, PhaseTurnEnd},
	PhaseStrikeAchieved:   {PhaseTurnEnd},
	PhaseTurnEnd:          {PhaseResettingDeck, PhaseGameEnded},
	PhaseResettingDeck:    {PhaseReadyToThrow},
}

// CanTransitionTo reports whether target is a permitted successor of p.
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, next := range successors[p] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal returns true once no further transitions are accepted.
func (p Phase) Terminal() bool {
	return p == PhaseGameEnded
}

// Phases returns every phase in canonical flow order.
func Phases() []Phase {
	return []Phase{
		PhaseTitleScreen,
		PhasePlacingEquipment,
		PhaseSettingUpPins,
		PhaseReadyToThrow,
		PhaseBallInPlay,
		PhaseBallPlayEnd,
		PhaseStrikeAchieved,
		PhaseTurnEnd,
		PhaseResettingDeck,
		PhaseGameEnded,
	}
}
