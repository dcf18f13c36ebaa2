// Package validate checks client-supplied identifiers and chat text at
// the wire boundary. The protocol is fire-and-forget, so callers treat
// a validation error as a reason to drop the frame, not to respond.
package validate

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// MaxNameLength bounds display identifiers. Room keys are derived
	// from names, so unbounded names would mean unbounded hashing work
	// per frame.
	MaxNameLength = 64

	// MaxMessageLength bounds relayed chat text. The transport already
	// caps frame size; this keeps the payload itself in proportion.
	MaxMessageLength = 500
)

var (
	ErrEmpty    = errors.New("must not be empty")
	ErrTooLong  = errors.New("exceeds maximum length")
	ErrNotUTF8  = errors.New("is not valid UTF-8")
	ErrControls = errors.New("contains control characters")
)

// PlayerName validates a display identifier from a join or chat frame.
func PlayerName(name string) error {
	if name == "" {
		return fmt.Errorf("player name %w", ErrEmpty)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("player name %w (%d > %d)", ErrTooLong, len(name), MaxNameLength)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("player name %w", ErrNotUTF8)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("player name %w", ErrControls)
		}
	}
	return nil
}

// Message validates relayed chat text. Empty messages are allowed
// through to the room; clients decide how to render them.
func Message(text string) error {
	if len(text) > MaxMessageLength {
		return fmt.Errorf("message %w (%d > %d)", ErrTooLong, len(text), MaxMessageLength)
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("message %w", ErrNotUTF8)
	}
	return nil
}
