package engine

// StrikePins is the number of counted pins that makes a strike.
const StrikePins = 10

// ScoreState is a snapshot of a session's counters and tunables.
type ScoreState struct {
	Score                int     `json:"score"`
	RemainingBalls       int     `json:"remaining_balls"`
	CurrentTurn          int     `json:"current_turn"`
	MaxTurns             int     `json:"max_turns"`
	StrikeCounter        int     `json:"strike_counter"`
	StrikeExtraPoints    int     `json:"strike_extra_points"`
	ThrowPowerMultiplier float64 `json:"throw_power_multiplier"`
	PinPoints            int     `json:"pin_points"`
	Strikes              int     `json:"strikes"`
}

// ScoreKeeper holds the score state of one game. Its only side effects are
// change notifications.
type ScoreKeeper struct {
	state ScoreState
	sink  EventSink
}

func NewScoreKeeper(cfg GameConfig, sink EventSink) *ScoreKeeper {
	k := &ScoreKeeper{
		state: ScoreState{
			MaxTurns:             cfg.MaxTurns,
			StrikeExtraPoints:    cfg.StrikeExtraPoints,
			ThrowPowerMultiplier: cfg.ThrowPowerMultiplier,
		},
		sink: sink,
	}
	k.Reset()
	return k
}

// Reset prepares the counters for a new game.
func (k *ScoreKeeper) Reset() {
	k.state.CurrentTurn = 1
	k.state.Score = 0
	k.state.RemainingBalls = k.state.MaxTurns
	k.state.StrikeCounter = 0
	k.state.PinPoints = 0
	k.state.Strikes = 0
}

func (k *ScoreKeeper) Score() int             { return k.state.Score }
func (k *ScoreKeeper) RemainingBalls() int    { return k.state.RemainingBalls }
func (k *ScoreKeeper) CurrentTurn() int       { return k.state.CurrentTurn }
func (k *ScoreKeeper) MaxTurns() int          { return k.state.MaxTurns }
func (k *ScoreKeeper) StrikeCounter() int     { return k.state.StrikeCounter }
func (k *ScoreKeeper) StrikeExtraPoints() int { return k.state.StrikeExtraPoints }

func (k *ScoreKeeper) Snapshot() ScoreState {
	return k.state
}

// AddPoints increases the score and notifies. Non-positive values are ignored
// so the score never decreases.
func (k *ScoreKeeper) AddPoints(n int) {
	if n <= 0 {
		return
	}
	k.state.Score += n
	k.sink.emit(EventScoreChanged, map[string]interface{}{"score": k.state.Score})
}

// AddPinPoints scores n knocked pins: one point and one strike unit each.
func (k *ScoreKeeper) AddPinPoints(n int) {
	if n <= 0 {
		return
	}
	k.state.PinPoints += n
	k.AddStrikeProgress(n)
	k.AddPoints(n)
}

// AwardStrike adds the strike bonus.
func (k *ScoreKeeper) AwardStrike() {
	k.state.Strikes++
	k.AddPoints(k.state.StrikeExtraPoints)
}

// ConsumeBall decrements the remaining balls. It does not clamp at zero.
func (k *ScoreKeeper) ConsumeBall() int {
	k.state.RemainingBalls--
	k.sink.emit(EventBallsChanged, map[string]interface{}{"remaining_balls": k.state.RemainingBalls})
	return k.state.RemainingBalls
}

// AdvanceTurn increments the current turn and returns it.
func (k *ScoreKeeper) AdvanceTurn() int {
	k.state.CurrentTurn++
	return k.state.CurrentTurn
}

// GameOver reports whether the current turn is past the last one.
func (k *ScoreKeeper) GameOver() bool {
	return k.state.CurrentTurn > k.state.MaxTurns
}

// AddStrikeProgress counts n pins toward a strike, saturating at StrikePins.
func (k *ScoreKeeper) AddStrikeProgress(n int) {
	k.state.StrikeCounter += n
	if k.state.StrikeCounter > StrikePins {
		k.state.StrikeCounter = StrikePins
	}
	if k.state.StrikeCounter < 0 {
		k.state.StrikeCounter = 0
	}
}

func (k *ScoreKeeper) ResetStrike() {
	k.state.StrikeCounter = 0
}

// ThrowImpulse converts a swipe length into the impulse applied to the ball.
func (k *ScoreKeeper) ThrowImpulse(swipeDelta float64) float64 {
	return swipeDelta * k.state.ThrowPowerMultiplier
}
