package board

import "errors"

// Sentinel errors for input parsing. Board operations themselves never fail.
var (
	// ErrInvalidSquare indicates malformed algebraic square notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates malformed coordinate move notation.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)
