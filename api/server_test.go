package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"

	"matchplay/auth"
	"matchplay/game/match"
	"matchplay/game/service"
	"matchplay/game/session"
	"matchplay/transport/websocket"
)

func newTestServer(t *testing.T) (*httptest.Server, *auth.Verifier) {
	t.Helper()

	hub := websocket.NewHub()
	svc := service.NewGameService(match.NewRegistry(), session.NewRegistry(), hub)
	hub.Bind(svc)
	verifier := auth.NewVerifier("test-secret")

	server := httptest.NewServer(NewServer(svc, hub, verifier))
	t.Cleanup(server.Close)
	return server, verifier
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s response: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var body map[string]string
	if status := getJSON(t, server.URL+"/healthz", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "healthy" {
		t.Errorf("body = %v", body)
	}
}

func TestVersionEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var body map[string]string
	if status := getJSON(t, server.URL+"/version", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["version"] == "" {
		t.Error("version must not be empty")
	}
}

func TestStatsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var body map[string]interface{}
	if status := getJSON(t, server.URL+"/api/stats", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	for _, key := range []string{"active_sessions", "waiting_players", "connections"} {
		if _, ok := body[key]; !ok {
			t.Errorf("stats response missing %q", key)
		}
	}
}

func TestRoomsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Rooms []service.RoomInfo `json:"rooms"`
	}
	if status := getJSON(t, server.URL+"/api/rooms", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(body.Rooms) != 0 {
		t.Errorf("expected no rooms on a fresh server, got %d", len(body.Rooms))
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "matchplay_ws_connections") {
		t.Error("metrics output should expose the connection gauge")
	}
}

func TestWebSocketAuth(t *testing.T) {
	server, verifier := newTestServer(t)
	wsBase := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	t.Run("missing token", func(t *testing.T) {
		_, resp, err := gws.DefaultDialer.Dial(wsBase, nil)
		if err == nil {
			t.Fatal("dial without token should fail")
		}
		if resp == nil || resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", resp)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		_, resp, err := gws.DefaultDialer.Dial(wsBase+"?token=garbage", nil)
		if err == nil {
			t.Fatal("dial with a bad token should fail")
		}
		if resp == nil || resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", resp)
		}
	})

	t.Run("valid token upgrades", func(t *testing.T) {
		token, err := verifier.Issue("u-1", "alice", time.Minute)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		conn, _, err := gws.DefaultDialer.Dial(wsBase+"?token="+token, nil)
		if err != nil {
			t.Fatalf("dial with a valid token failed: %v", err)
		}
		conn.Close()
	})

	t.Run("bearer header", func(t *testing.T) {
		token, err := verifier.Issue("u-2", "bob", time.Minute)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		header := http.Header{"Authorization": []string{"Bearer " + token}}
		conn, _, err := gws.DefaultDialer.Dial(wsBase, header)
		if err != nil {
			t.Fatalf("dial with a bearer header failed: %v", err)
		}
		conn.Close()
	})
}
