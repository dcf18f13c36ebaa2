// Package roomid derives the shared room key for a pair of participants.
//
// Both matchmaking rooms and legacy direct-chat rooms are keyed by the
// same function, so two identifiers always map to exactly one room.
package roomid

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Key returns the deterministic room key for the two identifiers. The
// pair is sorted before hashing, so Key(a, b) == Key(b, a) for all
// inputs. The result is the lowercase hex SHA-256 of the joined pair.
func Key(a, b string) string {
	pair := []string{a, b}
	if pair[0] > pair[1] {
		pair[0], pair[1] = pair[1], pair[0]
	}
	sum := sha256.Sum256([]byte(strings.Join(pair, "_")))
	return hex.EncodeToString(sum[:])
}
