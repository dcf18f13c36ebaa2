package service

import (
	"time"

	"matchplay/game/engine"
)

// Outbound event names, as delivered to clients.
const (
	EventGameJoined           = "game-joined"
	EventGameUpdate           = "game-update"
	EventOpponentDisconnected = "opponent-disconnected"
	EventMessageReceived      = "message-received"
)

// Conn is the opaque handle for one live client connection. Implemented
// by the WebSocket transport; the service only ever compares handles
// and asks whether they are still live.
type Conn interface {
	// ID uniquely identifies the connection for its lifetime.
	ID() string
	// Name is the verified display identifier supplied by the identity
	// provider at connect time.
	Name() string
	// Alive reports whether the connection can still receive events.
	// Used to re-validate stale waiting entries before pairing.
	Alive() bool
}

// Broadcaster is the room-scoped fan-out capability provided by the
// transport layer.
type Broadcaster interface {
	JoinRoom(conn Conn, roomKey string)
	EmitToRoom(roomKey, event string, payload interface{})
	EmitTo(conn Conn, event string, payload interface{})
}

// MatchRegistry stores participants waiting to be paired, keyed by
// display identifier. Each identifier appears at most once; a repeat
// registration overwrites the stored connection (last write wins).
type MatchRegistry interface {
	Register(name string, conn Conn)
	// Take removes and returns the waiting entry for name, if any.
	Take(name string) (Conn, bool)
	// Cancel removes the entry for name only when the stored connection
	// matches conn, and reports whether an entry was removed.
	Cancel(name string, conn Conn) bool
	Count() int
}

// SessionRegistry stores active game sessions keyed by room key.
type SessionRegistry interface {
	// Put stores sess under its room key, replacing any existing
	// session for that key.
	Put(sess *Session)
	Get(roomKey string) (*Session, bool)
	Delete(roomKey string)
	// FindByConn returns the first session containing conn as a player.
	// A connection is in at most one session by construction.
	FindByConn(conn Conn) (*Session, bool)
	// Touch refreshes the session's last-activity timestamp.
	Touch(roomKey string)
	List() []*Session
	Count() int
}

// Player is one participant in a game session.
type Player struct {
	Name   string
	Symbol engine.Mark
	Conn   Conn
}

// Session is the authoritative game state for one room. It is owned by
// the SessionRegistry; the service holds only a transient reference
// while processing a single event. LastActiveAt is maintained by the
// registry (Put/Touch), not written by the service.
type Session struct {
	RoomKey      string
	Game         *engine.Game
	Players      map[string]*Player
	CreatedAt    time.Time
	LastActiveAt time.Time
}

// NewSession creates a fresh session for roomKey. The waiting player is
// assigned X and moves first; the requesting player is assigned O.
func NewSession(roomKey string, waiting, requester *Player) *Session {
	waiting.Symbol = engine.X
	requester.Symbol = engine.O
	return &Session{
		RoomKey: roomKey,
		Game:    engine.NewGame(),
		Players: map[string]*Player{
			waiting.Name:   waiting,
			requester.Name: requester,
		},
	}
}

// PlayerByConn returns the player bound to conn, if any.
func (s *Session) PlayerByConn(conn Conn) (*Player, bool) {
	for _, p := range s.Players {
		if p.Conn == conn {
			return p, true
		}
	}
	return nil, false
}

// JoinedPayload notifies one side that pairing completed.
type JoinedPayload struct {
	RoomKey  string      `json:"roomKey"`
	Symbol   engine.Mark `json:"symbol"`
	Opponent string      `json:"opponentName"`
}

// ChatPayload carries a relayed chat message. The sender receives its
// own messages back; clients must not assume sender exclusion.
type ChatPayload struct {
	Message string `json:"message"`
	Sender  string `json:"senderName"`
}

// RoomInfo is a read-only session summary for the observability API.
type RoomInfo struct {
	RoomKey      string    `json:"room_key"`
	Players      []string  `json:"players"`
	Winner       string    `json:"winner,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

// Stats summarizes registry occupancy.
type Stats struct {
	ActiveSessions int `json:"active_sessions"`
	WaitingPlayers int `json:"waiting_players"`
}
