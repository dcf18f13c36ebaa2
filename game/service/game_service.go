package service

// GameService defines all operations dispatched from inbound connection
// events. Every method is best-effort: operations referencing a room or
// session that no longer exists do nothing, and no method reports an
// error back to the caller — the broadcast is the only feedback channel.
type GameService interface {
	// Matchmaking
	JoinGame(conn Conn, playerName, opponentName string)

	// Game operations
	MakeMove(conn Conn, roomKey string, index int)
	ResetGame(roomKey string)

	// Chat
	SendMessage(roomKey, message, senderName string)

	// Legacy direct chat (point-to-point, no game state)
	JoinChat(conn Conn, userID, otherUserID string)
	SendChat(userID, otherUserID, senderName, text string)

	// Lifecycle
	Disconnect(conn Conn)

	// Observability
	Stats() Stats
	ListRooms() []RoomInfo
}
