package engine

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig holds the session tunables. They are read once when a session is created.
type GameConfig struct {
	MaxTurns             int     // turns before the game ends (default 5)
	StrikeExtraPoints    int     // bonus on top of the 10 base points (default 10)
	ThrowPowerMultiplier float64 // swipe length to impulse (default 0.05)

	DeckSpawnDelay   time.Duration // deck placed -> SettingUpPins
	PinLowerDelay    time.Duration // pins lowering -> ReadyToThrow
	PinRaiseDelay    time.Duration // standing pins raised -> TurnEnd
	StrikeHoldDelay  time.Duration // strike banner
	TurnDisplayDelay time.Duration // "Turn N" banner -> ResettingDeck
}

func DefaultConfig() GameConfig {
	return GameConfig{
		MaxTurns:             5,
		StrikeExtraPoints:    10,
		ThrowPowerMultiplier: 0.05,
		DeckSpawnDelay:       1 * time.Second,
		PinLowerDelay:        2 * time.Second,
		PinRaiseDelay:        2 * time.Second,
		StrikeHoldDelay:      2 * time.Second,
		TurnDisplayDelay:     3 * time.Second,
	}
}

// Validate checks the config for values the state machine cannot run with.
func (c GameConfig) Validate() error {
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: max turns must be positive, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if c.StrikeExtraPoints < 0 {
		return fmt.Errorf("%w: strike extra points must not be negative, got %d", ErrInvalidConfig, c.StrikeExtraPoints)
	}
	delays := map[string]time.Duration{
		"deck spawn":   c.DeckSpawnDelay,
		"pin lower":    c.PinLowerDelay,
		"pin raise":    c.PinRaiseDelay,
		"strike hold":  c.StrikeHoldDelay,
		"turn display": c.TurnDisplayDelay,
	}
	for name, d := range delays {
		if d < 0 {
			return fmt.Errorf("%w: %s delay must not be negative, got %s", ErrInvalidConfig, name, d)
		}
	}
	return nil
}
