// Command matchplay starts the matchmaking and game server.
//
// It exposes a single WebSocket entry point for matchmaking, moves and
// chat, plus a small REST surface for health, version, metrics and
// read-only room listings. Flags control host/port, lifecycle sweep
// windows, debug logging and version output; the connect-token secret
// comes from the environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"matchplay/api"
	"matchplay/auth"
	"matchplay/game/match"
	"matchplay/game/service"
	"matchplay/game/session"
	"matchplay/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Matchplay Server"
)

// Configuration flags control how the server starts and how aggressively
// stale state is reclaimed.
var (
	port           = flag.Int("port", 8080, "HTTP server port")
	host           = flag.String("host", "localhost", "HTTP server host")
	debug          = flag.Bool("debug", false, "Enable debug logging")
	version        = flag.Bool("version", false, "Show version information")
	waitingTimeout = flag.Duration("waiting-timeout", 10*time.Minute, "How long a player may wait for an opponent")
	sessionTimeout = flag.Duration("session-timeout", 2*time.Hour, "How long an idle game session is kept")
	sweepInterval  = flag.Duration("sweep-interval", time.Minute, "How often stale state is swept")
)

// getJWTSecret returns the shared secret used to verify connect tokens.
// It honors MATCHPLAY_JWT_SECRET; an empty secret refuses to start.
func getJWTSecret() string {
	return os.Getenv("MATCHPLAY_JWT_SECRET")
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "%s v%s\n\n", AppName, Version)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  MATCHPLAY_JWT_SECRET   Shared secret for connect-token verification (required)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                    # Run on default port 8080\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090         # Run on port 9090\n", os.Args[0])
	}
}

// main parses flags, wires the registries, service and transport, and
// runs the HTTP server until a shutdown signal arrives.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", AppName, Version)
		os.Exit(0)
	}

	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	secret := getJWTSecret()
	if secret == "" {
		log.Fatal("MATCHPLAY_JWT_SECRET must be set")
	}

	log.Printf("Starting %s v%s", AppName, Version)

	api.Version = Version
	runHTTPServer(auth.NewVerifier(secret))
}

// runHTTPServer wires the full stack and serves it with graceful
// shutdown. The hub is constructed before the service because the
// service broadcasts through it; Bind closes the loop afterwards.
func runHTTPServer(verifier *auth.Verifier) {
	matches := match.NewRegistry()
	sessions := session.NewRegistry()

	hub := websocket.NewHub()
	gameService := service.NewGameService(matches, sessions, hub)
	hub.Bind(gameService)

	apiServer := api.NewServer(gameService, hub, verifier)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	httpServer := &http.Server{
		Addr:        addr,
		Handler:     apiServer,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: it would sever long-lived WebSocket
		// connections. The transport enforces its own write deadlines.
		IdleTimeout: 60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sweepRoutine(ctx, matches, sessions)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("HTTP server listening on %s", addr)
		log.Printf("WebSocket: ws://%s/ws?token=<connect_token>", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("Metrics: http://%s/metrics", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

// sweepRoutine periodically reclaims waiting entries whose player never
// got an opponent and game sessions idle past the retention window.
func sweepRoutine(ctx context.Context, matches *match.Registry, sessions *session.Registry) {
	ticker := time.NewTicker(*sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := matches.CleanupStale(*waitingTimeout); removed > 0 {
				log.Printf("Cleaned up %d stale waiting entries", removed)
			}
			if removed := sessions.CleanupIdle(*sessionTimeout); removed > 0 {
				log.Printf("Cleaned up %d idle sessions", removed)
			}
		}
	}
}
