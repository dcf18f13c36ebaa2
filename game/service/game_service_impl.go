package service

import (
	"log"
	"sort"
	"sync"

	"matchplay/game/engine"
	"matchplay/game/roomid"
)

// gameServiceImpl implements the GameService interface.
type gameServiceImpl struct {
	matches  MatchRegistry
	sessions SessionRegistry
	hub      Broadcaster
	mu       sync.Mutex
}

// NewGameService creates a new game service instance. The registries
// and broadcaster are constructed by the caller and passed by handle;
// the service holds no other state.
func NewGameService(matches MatchRegistry, sessions SessionRegistry, hub Broadcaster) GameService {
	return &gameServiceImpl{
		matches:  matches,
		sessions: sessions,
		hub:      hub,
	}
}

// JoinGame pairs conn with an opponent. If opponentName is already
// waiting and its connection is still live, a session is created with
// the waiting side as X and the requester as O, and both sides receive
// a game-joined notification. Otherwise the requester is recorded as
// waiting; a repeated request overwrites the previous entry.
//
// Room membership is granted only when pairing succeeds. Clients learn
// the room key from game-joined, so earlier membership could never be
// used and would leak stale members if the waiter ends up paired under
// a different key.
func (s *gameServiceImpl) JoinGame(conn Conn, playerName, opponentName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	oppConn, ok := s.matches.Take(opponentName)
	if !ok || !oppConn.Alive() {
		// Nobody usable is waiting. A stale entry (opponent vanished
		// between registering and now) is treated the same as no entry.
		s.matches.Register(playerName, conn)
		log.Printf("[MATCH] %s waiting for %s", playerName, opponentName)
		return
	}

	roomKey := roomid.Key(playerName, opponentName)
	s.hub.JoinRoom(oppConn, roomKey)
	s.hub.JoinRoom(conn, roomKey)

	sess := NewSession(roomKey,
		&Player{Name: opponentName, Conn: oppConn},
		&Player{Name: playerName, Conn: conn},
	)
	s.sessions.Put(sess)

	s.hub.EmitTo(oppConn, EventGameJoined, JoinedPayload{
		RoomKey:  roomKey,
		Symbol:   engine.X,
		Opponent: playerName,
	})
	s.hub.EmitTo(conn, EventGameJoined, JoinedPayload{
		RoomKey:  roomKey,
		Symbol:   engine.O,
		Opponent: opponentName,
	})

	log.Printf("[MATCH] game started: %s (X) vs %s (O)", opponentName, playerName)
}

// MakeMove applies one placement to the session's authoritative board.
// The move is replayed as (index, mover's symbol) against the server's
// own state; the client-supplied board is never trusted. Rejected moves
// and unknown room keys are silent no-ops.
func (s *gameServiceImpl) MakeMove(conn Conn, roomKey string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(roomKey)
	if !ok {
		return
	}
	player, ok := sess.PlayerByConn(conn)
	if !ok {
		return
	}

	if err := sess.Game.Apply(index, player.Symbol); err != nil {
		log.Printf("[GAME] rejected move by %s in %.8s: %v", player.Name, roomKey, err)
		return
	}

	s.sessions.Touch(roomKey)
	s.hub.EmitToRoom(roomKey, EventGameUpdate, *sess.Game)
}

// ResetGame reinitializes the session's board and broadcasts the clean
// state. No-op if the session is gone.
func (s *gameServiceImpl) ResetGame(roomKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(roomKey)
	if !ok {
		return
	}

	sess.Game.Reset()
	s.sessions.Touch(roomKey)
	s.hub.EmitToRoom(roomKey, EventGameUpdate, *sess.Game)
}

// SendMessage relays a chat message to every connection joined to the
// room, including the sender. Messages are not persisted; a room with
// no members swallows the broadcast.
func (s *gameServiceImpl) SendMessage(roomKey, message, senderName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Touch(roomKey)
	s.hub.EmitToRoom(roomKey, EventMessageReceived, ChatPayload{
		Message: message,
		Sender:  senderName,
	})
}

// JoinChat joins conn to the direct-chat room shared by the two user
// identifiers. No pairing or game state is involved.
func (s *gameServiceImpl) JoinChat(conn Conn, userID, otherUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hub.JoinRoom(conn, roomid.Key(userID, otherUserID))
}

// SendChat relays a direct-chat message to the room shared by the two
// user identifiers.
func (s *gameServiceImpl) SendChat(userID, otherUserID, senderName, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hub.EmitToRoom(roomid.Key(userID, otherUserID), EventMessageReceived, ChatPayload{
		Message: text,
		Sender:  senderName,
	})
}

// Disconnect purges the departing connection from both registries. The
// waiting entry is removed only if it still points at conn; if conn is
// part of an active session, the remaining participant is notified and
// the session destroyed. Always succeeds. The transport must remove
// conn from its rooms before calling this, so the opponent-disconnected
// broadcast reaches only the remaining side.
func (s *gameServiceImpl) Disconnect(conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.matches.Cancel(conn.Name(), conn) {
		log.Printf("[MATCH] %s left while waiting", conn.Name())
	}

	sess, ok := s.sessions.FindByConn(conn)
	if !ok {
		return
	}

	s.hub.EmitToRoom(sess.RoomKey, EventOpponentDisconnected, struct{}{})
	s.sessions.Delete(sess.RoomKey)
	log.Printf("[GAME] session %.8s destroyed: %s disconnected", sess.RoomKey, conn.Name())
}

// Stats reports registry occupancy.
func (s *gameServiceImpl) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		ActiveSessions: s.sessions.Count(),
		WaitingPlayers: s.matches.Count(),
	}
}

// ListRooms returns a read-only summary of every active session.
func (s *gameServiceImpl) ListRooms() []RoomInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()

	rooms := make([]RoomInfo, 0, len(sessions))
	for _, sess := range sessions {
		names := make([]string, 0, len(sess.Players))
		for name := range sess.Players {
			names = append(names, name)
		}
		sort.Strings(names)

		rooms = append(rooms, RoomInfo{
			RoomKey:      sess.RoomKey,
			Players:      names,
			Winner:       sess.Game.Winner,
			CreatedAt:    sess.CreatedAt,
			LastActiveAt: sess.LastActiveAt,
		})
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].RoomKey < rooms[j].RoomKey
	})

	return rooms
}
