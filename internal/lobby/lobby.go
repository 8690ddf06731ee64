package lobby

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrStarted     = errors.New("game already started")
	ErrLaneFull    = errors.New("lane is full")
	ErrNoBowler    = errors.New("no bowler on this lane")
	ErrMissingName = errors.New("player id and name are required")
)

// PlayerInfo holds lane-level player information.
type PlayerInfo struct {
	ID       string
	Name     string
	JoinedAt time.Time
}

// Lobby is one lane. The first player to join bowls; everyone else watches.
type Lobby struct {
	mu         sync.Mutex
	ID         string
	Players    []*PlayerInfo // join order, Players[0] is the bowler
	MaxPlayers int
	Started    bool
	CreatedAt  time.Time
}

// NewLobby creates a new lane lobby.
func NewLobby(id string) *Lobby {
	return &Lobby{
		ID:         id,
		MaxPlayers: 16,
		CreatedAt:  time.Now().UTC(),
	}
}

// Join adds a player to the lane. Rejoining with a known ID updates the name.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id == "" || name == "" {
		return ErrMissingName
	}
	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name // allow reconnect with new name
			return nil
		}
	}
	if len(l.Players) >= l.MaxPlayers {
		return ErrLaneFull
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name, JoinedAt: time.Now().UTC()})
	return nil
}

// Leave removes a player. If the bowler leaves, the next player in join order bowls.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			return
		}
	}
}

// Bowler returns the current bowler.
func (l *Lobby) Bowler() (PlayerInfo, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.Players) == 0 {
		return PlayerInfo{}, false
	}
	return *l.Players[0], true
}

// IsBowler reports whether id is the current bowler.
func (l *Lobby) IsBowler(id string) bool {
	b, ok := l.Bowler()
	return ok && id != "" && b.ID == id
}

// Start marks the lane as started.
func (l *Lobby) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return ErrStarted
	}
	if len(l.Players) == 0 {
		return ErrNoBowler
	}
	l.Started = true
	return nil
}

// Reopen clears the started flag so a new game can begin.
func (l *Lobby) Reopen() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Started = false
}

// GetPlayers returns a copy of the player list.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}

// IsStarted reports whether a game is running on the lane.
func (l *Lobby) IsStarted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Started
}
