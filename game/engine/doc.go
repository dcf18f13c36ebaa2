// Package engine provides the core game logic for matchplay.
//
// The engine package implements the tic-tac-toe rules: the 3x3 board,
// turn alternation, win detection over the eight fixed lines, and draw
// detection. It has no knowledge of connections, rooms, or matchmaking;
// higher layers own a Game per session and serialize access to it.
//
// Core Types:
//
// Mark is one of the two player symbols (X, O) or None for an empty cell.
// Board is the 9-slot row-major grid. Game is the authoritative state
// machine for one session: board, whose turn it is, and the terminal
// result once the game is decided.
//
// Usage:
//
//	g := engine.NewGame()
//	if err := g.Apply(4, engine.X); err != nil {
//		// move rejected: occupied cell, wrong turn, or game already over
//	}
//	if g.Over() {
//		fmt.Println("result:", g.Winner)
//	}
package engine
