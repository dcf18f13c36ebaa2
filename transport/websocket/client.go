package websocket

import (
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"matchplay/validate"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024

	// Outbound buffer per client; a client that falls this far behind
	// is evicted.
	sendBufferSize = 256
)

// Client is one live WebSocket connection with its verified identity.
// It satisfies the connection handle the service layer dispatches on.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	id     string
	userID string
	name   string
	alive  atomic.Bool
}

// ID uniquely identifies the connection for its lifetime.
func (c *Client) ID() string { return c.id }

// Name is the verified display identifier from the connect token.
func (c *Client) Name() string { return c.name }

// Alive reports whether the connection can still receive events.
func (c *Client) Alive() bool { return c.alive.Load() }

// readPump reads frames off the connection and dispatches them until
// the peer goes away, then tears the client down.
func (c *Client) readPump() {
	defer func() {
		c.hub.dropClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] read error on %s: %v", c.id, err)
			}
			return
		}
		c.dispatch(raw)
	}
}

// dispatch routes one inbound frame to the service. Malformed frames
// and unknown events are dropped; the protocol is fire-and-forget and
// has no error channel back to the client.
func (c *Client) dispatch(raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Event == "" {
		return
	}

	countDispatched(env.Event)

	switch env.Event {
	case eventJoinGame:
		var p joinGamePayload
		if json.Unmarshal(env.Data, &p) != nil {
			return
		}
		if err := validate.PlayerName(p.OpponentName); err != nil {
			log.Printf("[WS] dropped join-game from %s: %v", c.id, err)
			return
		}
		c.hub.svc.JoinGame(c, c.name, p.OpponentName)

	case eventMakeMove:
		var p makeMovePayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomKey == "" || p.Index == nil {
			return
		}
		c.hub.svc.MakeMove(c, p.RoomKey, *p.Index)

	case eventResetGame:
		var p roomPayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomKey == "" {
			return
		}
		c.hub.svc.ResetGame(p.RoomKey)

	case eventSendMessage:
		var p sendMessagePayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomKey == "" {
			return
		}
		if validate.Message(p.Message) != nil {
			return
		}
		c.hub.svc.SendMessage(p.RoomKey, p.Message, c.name)

	case eventJoinChat:
		var p joinChatPayload
		if json.Unmarshal(env.Data, &p) != nil || validate.PlayerName(p.OtherUserID) != nil {
			return
		}
		c.hub.svc.JoinChat(c, c.userID, p.OtherUserID)

	case eventSendChat:
		var p sendChatPayload
		if json.Unmarshal(env.Data, &p) != nil || validate.PlayerName(p.OtherUserID) != nil {
			return
		}
		if validate.Message(p.Message) != nil {
			return
		}
		c.hub.svc.SendChat(c.userID, p.OtherUserID, c.name, p.Message)
	}
}

// writePump drains the send buffer onto the connection and keeps the
// peer alive with periodic pings. One frame per message; the client
// side parses each frame as a single JSON document.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
