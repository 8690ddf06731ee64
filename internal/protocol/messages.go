package protocol

// Message types: Server → Client
const (
	MsgLaneUpdate = "lane_update"
	MsgGameState  = "game_state"
	MsgEvent      = "event"
	MsgError      = "error"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgStartGame = "start_game"
	MsgPlaceDeck = "place_deck"
	MsgThrow     = "throw"
	MsgBallLeft  = "ball_left"
	MsgRestart   = "restart"
)

// LaneUpdate is sent to all clients when the lane roster changes.
type LaneUpdate struct {
	LaneID     string       `json:"lane_id"`
	Bowler     *LanePlayer  `json:"bowler,omitempty"`
	Spectators []LanePlayer `json:"spectators"`
	Started    bool         `json:"started"`
}

type LanePlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JoinMsg is sent by a player to join the lane.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ThrowMsg commits a throw. Knocked carries the pin indices the AR client's
// physics reported; when nil the server simulates the result from Swipe.
type ThrowMsg struct {
	Swipe   float64 `json:"swipe"`
	Knocked []int   `json:"knocked,omitempty"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
