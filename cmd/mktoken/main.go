// Command mktoken issues a signed connect token for local development
// and testing. In deployment tokens come from the identity provider
// that shares the server's secret; this tool stands in for it.
//
// Usage:
//
//	MATCHPLAY_JWT_SECRET=... mktoken -user u-1 -name alice -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"matchplay/auth"
)

var (
	userID = flag.String("user", "", "User identifier to embed in the token")
	name   = flag.String("name", "", "Display name (defaults to the user identifier)")
	ttl    = flag.Duration("ttl", 24*time.Hour, "Token lifetime")
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	flag.Parse()

	secret := os.Getenv("MATCHPLAY_JWT_SECRET")
	if secret == "" {
		log.Fatal("MATCHPLAY_JWT_SECRET must be set")
	}
	if *userID == "" {
		log.Fatal("-user is required")
	}

	token, err := auth.NewVerifier(secret).Issue(*userID, *name, *ttl)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
}
