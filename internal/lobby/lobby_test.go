package lobby_test

import (
	"errors"
	"testing"

	"arbowling/internal/lobby"
)

func TestJoinBowlerAndSpectators(t *testing.T) {
	l := lobby.NewLobby("abc")
	if err := l.Join("p1", "Ana"); err != nil {
		t.Fatalf("Join: %v", err)
	}
	l.Join("p2", "Ben")
	if !l.IsBowler("p1") || l.IsBowler("p2") {
		t.Fatal("first joiner should bowl")
	}
	if err := l.Join("p1", "Ana B"); err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if got := l.GetPlayers(); len(got) != 2 || got[0].Name != "Ana B" {
		t.Fatalf("unexpected players %+v", got)
	}
	if err := l.Join("", "x"); !errors.Is(err, lobby.ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
}

func TestLeaveHandsOverBowler(t *testing.T) {
	l := lobby.NewLobby("abc")
	l.Join("p1", "Ana")
	l.Join("p2", "Ben")
	l.Leave("p1")
	if !l.IsBowler("p2") {
		t.Fatal("p2 should bowl after p1 leaves")
	}
	l.Leave("p2")
	if _, ok := l.Bowler(); ok {
		t.Fatal("empty lane should have no bowler")
	}
}

func TestLaneFull(t *testing.T) {
	l := lobby.NewLobby("abc")
	l.MaxPlayers = 1
	l.Join("p1", "Ana")
	if err := l.Join("p2", "Ben"); !errors.Is(err, lobby.ErrLaneFull) {
		t.Fatalf("expected ErrLaneFull, got %v", err)
	}
}

func TestStart(t *testing.T) {
	l := lobby.NewLobby("abc")
	if err := l.Start(); !errors.Is(err, lobby.ErrNoBowler) {
		t.Fatalf("expected ErrNoBowler, got %v", err)
	}
	l.Join("p1", "Ana")
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Start(); !errors.Is(err, lobby.ErrStarted) {
		t.Fatalf("expected ErrStarted, got %v", err)
	}
	l.Reopen()
	if l.IsStarted() {
		t.Fatal("Reopen should clear started")
	}
}

func TestManager(t *testing.T) {
	m := lobby.NewManager()
	a := m.Create()
	b := m.Create()
	if a == b {
		t.Fatal("lane IDs should differ")
	}
	if m.Get(a) == nil || m.Get(a).ID != a {
		t.Fatal("Get returned wrong lane")
	}
	if len(m.List()) != 2 {
		t.Fatalf("List %v", m.List())
	}
	m.Remove(a)
	if m.Get(a) != nil {
		t.Fatal("lane should be removed")
	}
}
