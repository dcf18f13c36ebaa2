// Package api provides the HTTP surface of matchplay.
//
// The api package implements:
//   - The authenticated WebSocket entry point (/ws)
//   - A read-only observability API (/api/rooms, /api/stats)
//   - Health, version and Prometheus metrics endpoints
//
// Endpoints:
//
//   - GET /ws?token=...   - Verify the connect token and upgrade
//   - GET /api/rooms      - Summaries of active game rooms
//   - GET /api/stats      - Session, waiting and connection counts
//   - GET /healthz        - Liveness probe
//   - GET /version        - Build version
//   - GET /metrics        - Prometheus metrics
//
// All game and chat traffic flows over the WebSocket protocol; see the
// transport/websocket package. The REST endpoints never mutate state.
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "invalid token"
//	}
package api
