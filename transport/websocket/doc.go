// Package websocket provides the WebSocket transport for matchplay.
//
// The package uses a hub-and-spoke model: a central Hub owns the set of
// live connections and the room membership table, and each connection
// runs a dedicated read and write goroutine.
//
// Message Protocol:
//
// Every frame in both directions is a JSON envelope:
//
//	{"event": "make-move", "data": {"roomKey": "...", "index": 4}}
//
// Inbound events are dispatched into the game service; outbound events
// come back through the Broadcaster methods (EmitTo, EmitToRoom). The
// protocol is fire-and-forget: malformed or rejected frames produce no
// error response, only the absence of a broadcast.
//
// Connection Lifecycle:
//
// 1. The HTTP layer verifies the connect token and calls ServeWS
// 2. The connection is registered and the pumps start
// 3. Inbound events drive matchmaking, moves and chat
// 4. Read failure, slow consumption, or peer close triggers teardown:
//    the client leaves all rooms, the service is told, and any game it
//    was in is destroyed
//
// Keepalive follows the standard gorilla pattern: the server pings on a
// ticker and extends the read deadline on each pong.
package websocket
