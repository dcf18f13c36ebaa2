package websocket

import "encoding/json"

// Inbound event names. Outbound names live in game/service next to the
// payloads they carry.
const (
	eventJoinGame    = "join-game"
	eventMakeMove    = "make-move"
	eventSendMessage = "send-message"
	eventResetGame   = "reset-game"
	eventJoinChat    = "join-chat"
	eventSendChat    = "send-chat"
)

// envelope frames every message in both directions.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outbound struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type joinGamePayload struct {
	OpponentName string `json:"opponentName"`
}

// makeMovePayload still carries the client's board for wire
// compatibility with older clients. The server never reads it; only the
// index is replayed against the authoritative state.
type makeMovePayload struct {
	RoomKey string          `json:"roomKey"`
	Index   *int            `json:"index"`
	Board   json.RawMessage `json:"board"`
}

type roomPayload struct {
	RoomKey string `json:"roomKey"`
}

type sendMessagePayload struct {
	RoomKey string `json:"roomKey"`
	Message string `json:"message"`
}

type joinChatPayload struct {
	OtherUserID string `json:"otherUserId"`
}

type sendChatPayload struct {
	OtherUserID string `json:"otherUserId"`
	Message     string `json:"message"`
}
