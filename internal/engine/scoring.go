package engine

// ScoreEntry holds the scoring breakdown of a game.
type ScoreEntry struct {
	PinPoints   int `json:"pin_points"`
	Strikes     int `json:"strikes"`
	StrikeBonus int `json:"strike_bonus"`
	TurnsPlayed int `json:"turns_played"`
	Total       int `json:"total"`
}

// CalculateScore computes the breakdown of the current score.
func (g *Game) CalculateScore() ScoreEntry {
	s := g.score.Snapshot()
	e := ScoreEntry{
		PinPoints:   s.PinPoints,
		Strikes:     s.Strikes,
		StrikeBonus: s.Strikes * s.StrikeExtraPoints,
		TurnsPlayed: s.CurrentTurn - 1,
	}
	// CurrentTurn is one past the last completed turn
	if e.TurnsPlayed > s.MaxTurns {
		e.TurnsPlayed = s.MaxTurns
	}
	e.Total = e.PinPoints + e.StrikeBonus
	return e
}
