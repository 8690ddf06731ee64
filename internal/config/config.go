package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"arbowling/internal/engine"
)

var ErrInvalidServer = errors.New("invalid server config")

// ServerConfig configures the lane server.
type ServerConfig struct {
	Port int `yaml:"port" env:"BOWLING_PORT"`
	// PublicURL overrides the host used in join QR codes, e.g. "http://192.168.1.20:8080".
	PublicURL string `yaml:"public_url" env:"BOWLING_PUBLIC_URL"`
}

// GameSettings mirrors engine.GameConfig with file and env bindings.
type GameSettings struct {
	MaxTurns             int     `yaml:"max_turns" env:"BOWLING_MAX_TURNS"`
	StrikeExtraPoints    int     `yaml:"strike_extra_points" env:"BOWLING_STRIKE_EXTRA_POINTS"`
	ThrowPowerMultiplier float64 `yaml:"throw_power_multiplier" env:"BOWLING_THROW_POWER_MULTIPLIER"`

	DeckSpawnDelay   time.Duration `yaml:"deck_spawn_delay" env:"BOWLING_DECK_SPAWN_DELAY"`
	PinLowerDelay    time.Duration `yaml:"pin_lower_delay" env:"BOWLING_PIN_LOWER_DELAY"`
	PinRaiseDelay    time.Duration `yaml:"pin_raise_delay" env:"BOWLING_PIN_RAISE_DELAY"`
	StrikeHoldDelay  time.Duration `yaml:"strike_hold_delay" env:"BOWLING_STRIKE_HOLD_DELAY"`
	TurnDisplayDelay time.Duration `yaml:"turn_display_delay" env:"BOWLING_TURN_DISPLAY_DELAY"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameSettings `yaml:"game"`
}

// Default returns the built-in configuration.
func Default() Config {
	g := engine.DefaultConfig()
	return Config{
		Server: ServerConfig{Port: 8080},
		Game: GameSettings{
			MaxTurns:             g.MaxTurns,
			StrikeExtraPoints:    g.StrikeExtraPoints,
			ThrowPowerMultiplier: g.ThrowPowerMultiplier,
			DeckSpawnDelay:       g.DeckSpawnDelay,
			PinLowerDelay:        g.PinLowerDelay,
			PinRaiseDelay:        g.PinRaiseDelay,
			StrikeHoldDelay:      g.StrikeHoldDelay,
			TurnDisplayDelay:     g.TurnDisplayDelay,
		},
	}
}

// Load merges defaults <- YAML file <- environment. An empty path skips the
// file; a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServer, c.Server.Port)
	}
	return c.Game.Engine().Validate()
}

// Engine converts the settings into the engine's session config.
func (g GameSettings) Engine() engine.GameConfig {
	return engine.GameConfig{
		MaxTurns:             g.MaxTurns,
		StrikeExtraPoints:    g.StrikeExtraPoints,
		ThrowPowerMultiplier: g.ThrowPowerMultiplier,
		DeckSpawnDelay:       g.DeckSpawnDelay,
		PinLowerDelay:        g.PinLowerDelay,
		PinRaiseDelay:        g.PinRaiseDelay,
		StrikeHoldDelay:      g.StrikeHoldDelay,
		TurnDisplayDelay:     g.TurnDisplayDelay,
	}
}
