package engine

import "errors"

var (
	ErrGameOver     = errors.New("game already decided")
	ErrOutOfRange   = errors.New("cell index out of range")
	ErrNotYourTurn  = errors.New("not this player's turn")
	ErrCellOccupied = errors.New("cell already occupied")
)

// winningLines enumerates the eight lines in fixed order: three rows,
// three columns, two diagonals. Winner reports the first matching line
// in this order.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark occupying the first fully-matching line, or
// None when no line is complete. It does not detect draws; callers check
// Board.Full separately.
func Winner(b Board) Mark {
	for _, line := range winningLines {
		a := b[line[0]]
		if a != None && a == b[line[1]] && a == b[line[2]] {
			return a
		}
	}
	return None
}

// NewGame returns a fresh game: empty board, X to move, no result.
func NewGame() *Game {
	return &Game{CurrentTurn: X}
}

// Over reports whether the game has a terminal result (win or draw).
func (g *Game) Over() bool {
	return g.Winner != ""
}

// Apply places m at index and advances the state machine. The placement
// is validated against the authoritative board: the game must be live,
// the index in range, the cell empty, and m must hold the turn. On
// success the result is re-evaluated; the turn only flips when the game
// stays undecided.
func (g *Game) Apply(index int, m Mark) error {
	if g.Over() {
		return ErrGameOver
	}
	if index < 0 || index >= BoardSize {
		return ErrOutOfRange
	}
	if m != g.CurrentTurn {
		return ErrNotYourTurn
	}
	if g.Board[index] != None {
		return ErrCellOccupied
	}

	g.Board[index] = m

	if w := Winner(g.Board); w != None {
		g.Winner = string(w)
	} else if g.Board.Full() {
		g.Winner = Draw
	} else {
		g.CurrentTurn = g.CurrentTurn.Other()
	}

	return nil
}

// Reset reinitializes the game to its starting state regardless of the
// current position or result.
func (g *Game) Reset() {
	g.Board = Board{}
	g.CurrentTurn = X
	g.Winner = ""
}
