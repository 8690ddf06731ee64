package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"arbowling/internal/config"
	"arbowling/internal/engine"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bowling.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port %d, want 8080", cfg.Server.Port)
	}
	if cfg.Game.Engine() != engine.DefaultConfig() {
		t.Errorf("game config %+v differs from engine defaults", cfg.Game)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
server:
  port: 9090
game:
  max_turns: 3
  strike_hold_delay: 500ms
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port %d, want 9090", cfg.Server.Port)
	}
	if cfg.Game.MaxTurns != 3 {
		t.Errorf("max turns %d, want 3", cfg.Game.MaxTurns)
	}
	if cfg.Game.StrikeHoldDelay != 500*time.Millisecond {
		t.Errorf("strike hold %s, want 500ms", cfg.Game.StrikeHoldDelay)
	}
	// Untouched keys keep their defaults.
	if cfg.Game.StrikeExtraPoints != 10 {
		t.Errorf("strike extra points %d, want 10", cfg.Game.StrikeExtraPoints)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "game:\n  max_turns: 3\n")
	t.Setenv("BOWLING_MAX_TURNS", "7")
	t.Setenv("BOWLING_TURN_DISPLAY_DELAY", "1s")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.MaxTurns != 7 {
		t.Errorf("max turns %d, want 7", cfg.Game.MaxTurns)
	}
	if cfg.Game.TurnDisplayDelay != time.Second {
		t.Errorf("turn display %s, want 1s", cfg.Game.TurnDisplayDelay)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "game:\n  max_turns: 0\n")
	if _, err := config.Load(path); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := writeFile(t, "game: [")
	if _, err := config.Load(bad); err == nil {
		t.Fatal("expected parse error")
	}
}
