package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestPlayerName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "alice", nil},
		{"unicode", "aliça", nil},
		{"max length", strings.Repeat("a", MaxNameLength), nil},
		{"empty", "", ErrEmpty},
		{"too long", strings.Repeat("a", MaxNameLength+1), ErrTooLong},
		{"invalid utf8", "ali\xffce", ErrNotUTF8},
		{"newline", "ali\nce", ErrControls},
		{"null byte", "ali\x00ce", ErrControls},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PlayerName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("PlayerName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PlayerName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "gl hf", nil},
		{"empty allowed", "", nil},
		{"multiline allowed", "line one\nline two", nil},
		{"max length", strings.Repeat("x", MaxMessageLength), nil},
		{"too long", strings.Repeat("x", MaxMessageLength+1), ErrTooLong},
		{"invalid utf8", "he\xffy", ErrNotUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Message(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Message(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Message(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
