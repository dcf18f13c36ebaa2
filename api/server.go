package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"matchplay/auth"
	"matchplay/game/service"
	"matchplay/transport/websocket"
)

// Version is stamped by the build; the default marks dev builds.
var Version = "dev"

// Server is the HTTP surface: the WebSocket entry point plus a small
// read-only observability API.
type Server struct {
	service  service.GameService
	hub      *websocket.Hub
	verifier *auth.Verifier
	router   *mux.Router
}

// NewServer creates the API server and wires its routes.
func NewServer(gameService service.GameService, hub *websocket.Hub, verifier *auth.Verifier) *Server {
	s := &Server{
		service:  gameService,
		hub:      hub,
		verifier: verifier,
		router:   mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rooms", s.handleListRooms).Methods("GET")
	api.HandleFunc("/stats", s.handleStats).Methods("GET")

	s.router.HandleFunc("/ws", s.handleWebSocket)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/version", s.handleVersion).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// WebSocket Handler

// handleWebSocket verifies the connect token and hands the request to
// the hub. The token comes from `?token=` or an Authorization bearer
// header; the identity provider that issued it shares our secret.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	if token == "" {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}

	identity, err := s.verifier.Verify(token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	s.hub.ServeWS(w, r, identity)
}

// Observability Handlers

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"rooms": s.service.ListRooms(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.service.Stats()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"active_sessions": stats.ActiveSessions,
		"waiting_players": stats.WaitingPlayers,
		"connections":     s.hub.ClientCount(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"version": Version,
	})
}
