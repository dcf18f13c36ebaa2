package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"matchplay/auth"
	"matchplay/game/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Hub maintains the set of live clients and the room membership table,
// and fans events out to rooms. It is the transport-side counterpart of
// the game service: inbound frames are dispatched into the service,
// outbound emissions come back through the Broadcaster methods.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool
	svc     service.GameService
}

// NewHub creates an empty hub. Bind must be called before serving.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		rooms:   make(map[string]map[*Client]bool),
	}
}

// Bind attaches the game service the hub dispatches into. Separate from
// NewHub because the service needs the hub as its broadcaster; main
// constructs the hub first, then the service, then binds.
func (h *Hub) Bind(svc service.GameService) {
	h.svc = svc
}

// ServeWS upgrades the request and runs the connection under the given
// verified identity until the peer goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		id:     uuid.NewString(),
		userID: identity.UserID,
		name:   identity.Name,
	}
	client.alive.Store(true)

	h.mu.Lock()
	h.clients[client] = true
	connected := len(h.clients)
	h.mu.Unlock()

	incConnections()
	log.Printf("[WS] %s connected as %s (%d online)", client.id, client.name, connected)

	go client.writePump()
	go client.readPump()
}

// JoinRoom adds conn to roomKey's membership. A connection that has
// already been torn down stays out: membership implies a writable send
// channel.
func (h *Hub) JoinRoom(conn service.Conn, roomKey string) {
	client, ok := conn.(*Client)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.clients[client] {
		return
	}
	if h.rooms[roomKey] == nil {
		h.rooms[roomKey] = make(map[*Client]bool)
	}
	h.rooms[roomKey][client] = true
	setRooms(len(h.rooms))
}

// EmitToRoom sends event to every member of roomKey. Members whose send
// buffer is full are evicted; an empty or unknown room swallows the
// broadcast.
func (h *Hub) EmitToRoom(roomKey, event string, payload interface{}) {
	data, err := json.Marshal(outbound{Event: event, Data: payload})
	if err != nil {
		log.Printf("[WS] marshal %s failed: %v", event, err)
		return
	}

	h.mu.Lock()
	var slow []*Client
	for client := range h.rooms[roomKey] {
		select {
		case client.send <- data:
			countDelivered(1)
		default:
			slow = append(slow, client)
		}
	}
	h.mu.Unlock()

	// Eviction re-enters the service for the disconnect notification,
	// so it must run outside both the hub lock and the caller's
	// service lock.
	for _, client := range slow {
		go h.dropClient(client)
	}
}

// EmitTo sends event to a single connection. The send happens under
// the hub lock and only while the client is still registered, so a
// concurrent teardown can never close the channel out from under it.
func (h *Hub) EmitTo(conn service.Conn, event string, payload interface{}) {
	client, ok := conn.(*Client)
	if !ok {
		return
	}

	data, err := json.Marshal(outbound{Event: event, Data: payload})
	if err != nil {
		log.Printf("[WS] marshal %s failed: %v", event, err)
		return
	}

	slow := false
	h.mu.Lock()
	if h.clients[client] {
		select {
		case client.send <- data:
			countDelivered(1)
		default:
			slow = true
		}
	}
	h.mu.Unlock()

	if slow {
		go h.dropClient(client)
	}
}

// ClientCount returns the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// dropClient tears a connection down exactly once: mark it dead,
// remove it from every room and close its send channel under the hub
// lock, then report the disconnect to the service. Room removal happens
// before the service call so the opponent-disconnected broadcast
// reaches only the remaining side.
func (h *Hub) dropClient(c *Client) {
	if !c.alive.CompareAndSwap(true, false) {
		return
	}

	h.mu.Lock()
	delete(h.clients, c)
	for roomKey, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, roomKey)
		}
	}
	setRooms(len(h.rooms))
	remaining := len(h.clients)
	// Closed under the lock: every emit path checks registration under
	// the same lock before writing, so nothing can race the close.
	close(c.send)
	h.mu.Unlock()

	decConnections()

	if h.svc != nil {
		h.svc.Disconnect(c)
	}

	log.Printf("[WS] %s (%s) disconnected (%d online)", c.id, c.name, remaining)
}
