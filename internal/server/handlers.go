package server

import (
	"arbowling/internal/config"
	"arbowling/internal/lobby"
	qr "arbowling/internal/qrcode"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	LobbyMgr *lobby.Manager
	cfg      config.Config

	mu   sync.Mutex
	hubs map[string]*Hub
}

func NewHandlers(cfg config.Config) *Handlers {
	return &Handlers{
		LobbyMgr: lobby.NewManager(),
		cfg:      cfg,
		hubs:     make(map[string]*Hub),
	}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/create", h.HandleCreateLane)
	r.Get("/api/qr", h.HandleQR)
	r.Get("/api/player-id", h.HandlePlayerID)
	r.Get("/ws", h.HandleWS)
	r.Get("/lanes/{id}/scoreboard", h.HandleScoreboard)
}

// CreateLane registers a lane and starts its hub.
func (h *Handlers) CreateLane() string {
	laneID := h.LobbyMgr.Create()
	hub := NewHub(laneID, h.LobbyMgr.Get(laneID), h.cfg.Game.Engine())

	h.mu.Lock()
	h.hubs[laneID] = hub
	h.mu.Unlock()

	go hub.Run()
	log.Printf("lane %s created", laneID)
	return laneID
}

// Hub returns the hub for a lane.
func (h *Handlers) Hub(laneID string) (*Hub, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hub, ok := h.hubs[laneID]
	return hub, ok
}

// Close stops every hub.
func (h *Handlers) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, hub := range h.hubs {
		hub.Stop()
		h.LobbyMgr.Remove(id)
		delete(h.hubs, id)
	}
}

// HandleCreateLane creates a new lane and redirects to its screen.
func (h *Handlers) HandleCreateLane(w http.ResponseWriter, r *http.Request) {
	laneID := h.CreateLane()
	http.Redirect(w, r, fmt.Sprintf("/lane.html?lane=%s", laneID), http.StatusSeeOther)
}

// HandleQR generates a QR code PNG for joining the lane from a phone.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	laneID := r.URL.Query().Get("lane")
	if laneID == "" {
		http.Error(w, "missing lane parameter", http.StatusBadRequest)
		return
	}
	if _, ok := h.Hub(laneID); !ok {
		http.Error(w, "lane not found", http.StatusNotFound)
		return
	}
	png, err := qr.Generate(h.joinURL(r, laneID), qr.DefaultSize)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handlers) joinURL(r *http.Request, laneID string) string {
	base := strings.TrimRight(h.cfg.Server.PublicURL, "/")
	if base == "" {
		base = "http://" + r.Host
	}
	return fmt.Sprintf("%s/lane.html?lane=%s&role=player", base, laneID)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	laneID := r.URL.Query().Get("lane")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "tv" or "player"

	if laneID == "" {
		http.Error(w, "missing lane parameter", http.StatusBadRequest)
		return
	}
	hub, ok := h.Hub(laneID)
	if !ok {
		http.Error(w, "lane not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	ct := ClientPlayer
	if clientType == "tv" {
		ct = ClientTV
	}

	client := NewClient(hub, conn, playerID, ct)
	select {
	case hub.register <- client:
	case <-hub.quit:
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	id := GeneratePlayerID()
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(id))
}

// HandleScoreboard renders the lane's scoreboard page.
func (h *Handlers) HandleScoreboard(w http.ResponseWriter, r *http.Request) {
	hub, ok := h.Hub(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "lane not found", http.StatusNotFound)
		return
	}
	snap, ok := hub.Snapshot()
	if !ok {
		http.Error(w, "lane closed", http.StatusGone)
		return
	}
	render(w, r, scoreboardPage(snap))
}
