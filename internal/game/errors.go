package game

import "errors"

var (
	// ErrGameOver is returned for moves submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
	// ErrNoPiece is returned when the origin square is empty.
	ErrNoPiece = errors.New("no piece on square")
	// ErrWrongSide is returned when the origin holds the opponent's piece.
	ErrWrongSide = errors.New("not that side's turn")
	// ErrIllegalMove is returned when the destination is not a legal target.
	ErrIllegalMove = errors.New("illegal move")
)
