package server

import (
	"arbowling/internal/engine"
	"arbowling/internal/lane"
	"arbowling/internal/lobby"
	"arbowling/internal/protocol"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

var (
	ErrNotBowler = errors.New("only the bowler can do that")
	ErrNoGame    = errors.New("game not started")
)

// Hub owns one lane and its game. Client messages, scheduled engine steps
// and queries all run on the Run goroutine, so the game has a single writer.
type Hub struct {
	mu      sync.Mutex // guards clients
	laneID  string
	lobby   *lobby.Lobby
	cfg     engine.GameConfig
	game    *engine.Game
	rack    *lane.Rack
	rng     *rand.Rand
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	tasks      chan func() // due engine steps
	queries    chan func() // read-only work from HTTP handlers
	quit       chan struct{}
	stopOnce   sync.Once
}

func NewHub(laneID string, lob *lobby.Lobby, cfg engine.GameConfig) *Hub {
	return &Hub{
		laneID:     laneID,
		lobby:      lob,
		cfg:        cfg,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		tasks:      make(chan func()),
		queries:    make(chan func()),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendLaneUpdate()
			if h.game != nil {
				h.sendStateToClient(client)
			}

		case client := <-h.unregister:
			h.removeClient(client)

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case fn := <-h.tasks:
			fn()
			h.broadcastState()

		case fn := <-h.queries:
			fn()

		case <-h.quit:
			return
		}
	}
}

// Stop ends the Run loop. Steps still waiting on a timer are dropped.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

// After implements engine.Scheduler. The step is posted back to the Run
// goroutine when its timer fires.
func (h *Hub) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		select {
		case h.tasks <- fn:
		case <-h.quit:
		}
	})
}

// Snapshot returns the lane state, read on the Run goroutine.
func (h *Hub) Snapshot() (Snapshot, bool) {
	done := make(chan Snapshot, 1)
	select {
	case h.queries <- func() { done <- h.snapshot() }:
	case <-h.quit:
		return Snapshot{}, false
	}
	return <-done, true
}

// Snapshot is a point-in-time view of a lane for HTTP pages.
type Snapshot struct {
	LaneID  string
	Bowler  string
	Started bool
	Game    *engine.GameView
}

func (h *Hub) snapshot() Snapshot {
	s := Snapshot{LaneID: h.laneID, Started: h.lobby.IsStarted()}
	if b, ok := h.lobby.Bowler(); ok {
		s.Bowler = b.Name
	}
	if h.game != nil {
		v := h.game.View()
		s.Game = &v
	}
	return s
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	stillConnected := false
	for c := range h.clients {
		if c.PlayerID == client.PlayerID {
			stillConnected = true
			break
		}
	}
	h.mu.Unlock()

	if client.Type == ClientPlayer && client.PlayerID != "" && !stillConnected {
		h.lobby.Leave(client.PlayerID)
		h.sendLaneUpdate()
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	var err error
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		err = h.handleJoin(msg)
	case protocol.MsgStartGame:
		err = h.handleStartGame(msg)
	case protocol.MsgRestart:
		err = h.handleRestart(msg)
	case protocol.MsgPlaceDeck, protocol.MsgThrow, protocol.MsgBallLeft:
		err = h.handleGameAction(msg)
	default:
		err = fmt.Errorf("unknown message type %q", msg.Envelope.Type)
	}
	if err != nil {
		h.sendError(msg.Client, err.Error())
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) error {
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil {
		return fmt.Errorf("invalid join message")
	}
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		return err
	}
	msg.Client.PlayerID = join.PlayerID
	h.sendLaneUpdate()
	return nil
}

func (h *Hub) handleStartGame(msg IncomingMessage) error {
	if !h.lobby.IsBowler(msg.Client.PlayerID) {
		return ErrNotBowler
	}
	if err := h.lobby.Start(); err != nil {
		return err
	}
	if err := h.newGame(); err != nil {
		return err
	}
	h.sendLaneUpdate()
	h.broadcastState()
	return nil
}

// handleRestart discards the current game and starts a fresh one.
func (h *Hub) handleRestart(msg IncomingMessage) error {
	if !h.lobby.IsBowler(msg.Client.PlayerID) {
		return ErrNotBowler
	}
	if h.game == nil {
		return ErrNoGame
	}
	if err := h.newGame(); err != nil {
		return err
	}
	h.broadcastState()
	return nil
}

func (h *Hub) newGame() error {
	var g *engine.Game
	// Steps still pending for a discarded game keep running against it; their
	// events are dropped here.
	sink := func(ev engine.Event) {
		if h.game == g {
			h.broadcastEvent(ev)
		}
	}
	g, err := engine.NewGame(h.cfg, h, sink)
	if err != nil {
		return err
	}
	h.game = g
	h.rack = nil
	log.Printf("lane %s: new game (%d turns)", h.laneID, h.cfg.MaxTurns)
	return g.Start()
}

func (h *Hub) handleGameAction(msg IncomingMessage) error {
	if h.game == nil {
		return ErrNoGame
	}
	if !h.lobby.IsBowler(msg.Client.PlayerID) {
		return ErrNotBowler
	}

	switch msg.Envelope.Type {
	case protocol.MsgPlaceDeck:
		rack := lane.NewRack()
		if err := h.game.DeckReady(rack.PinSet()); err != nil {
			return err
		}
		h.rack = rack

	case protocol.MsgThrow:
		var throw protocol.ThrowMsg
		if err := msg.Envelope.Decode(&throw); err != nil {
			return fmt.Errorf("invalid throw message")
		}
		if _, err := h.game.ThrowCommitted(throw.Swipe); err != nil {
			return err
		}
		knocked := throw.Knocked
		if knocked == nil && h.rack != nil {
			knocked = h.rack.Roll(throw.Swipe, h.rng)
		}
		if h.rack != nil {
			h.rack.Knock(knocked)
		}

	case protocol.MsgBallLeft:
		if err := h.game.BallLeftPlay(); err != nil {
			return err
		}
	}

	h.broadcastState()
	return nil
}

func (h *Hub) broadcastEvent(ev engine.Event) {
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgEvent, ev))
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgGameState, h.game.View()))
}

func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	h.sendToClient(client, protocol.MustEnvelope(protocol.MsgGameState, h.game.View()))
}

func (h *Hub) sendLaneUpdate() {
	update := protocol.LaneUpdate{
		LaneID:     h.laneID,
		Spectators: []protocol.LanePlayer{},
		Started:    h.lobby.IsStarted(),
	}
	for i, p := range h.lobby.GetPlayers() {
		lp := protocol.LanePlayer{ID: p.ID, Name: p.Name}
		if i == 0 {
			update.Bowler = &lp
			continue
		}
		update.Spectators = append(update.Spectators, lp)
	}
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgLaneUpdate, update))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("client %s buffer full", client.PlayerID)
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	h.sendToClient(client, protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}

// sendToClient skips clients that have already been unregistered.
func (h *Hub) sendToClient(client *Client, env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[client] {
		client.SendEnvelope(env)
	}
}
