package engine

// Mark represents a player symbol on the board.
type Mark string

const (
	X    Mark = "X"
	O    Mark = "O"
	None Mark = ""
)

// Draw is the terminal result for a full board with no winning line.
// It shares the Winner field with the two marks but is never placed on
// the board itself.
const Draw = "draw"

// BoardSize is the number of cells on the row-major 3x3 grid.
const BoardSize = 9

// Board is the 9-slot game grid. Index 0 is the top-left cell, index 8
// the bottom-right. Empty cells hold None and marshal as "".
type Board [BoardSize]Mark

// Game is the authoritative state for one session. Its JSON form is the
// exact payload broadcast to clients on every state change.
type Game struct {
	Board       Board  `json:"board"`
	CurrentTurn Mark   `json:"currentPlayer"`
	Winner      string `json:"winner,omitempty"`
}

// Other returns the opposing mark. None maps to None.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return None
}

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	for _, m := range b {
		if m == None {
			return false
		}
	}
	return true
}
