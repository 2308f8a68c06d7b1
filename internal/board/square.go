// Package board implements the 64-cell mailbox board, the attack/check oracle
// and the move engine for a reduced chess rule set (no castling, no en
// passant, pawns always promote to a queen).
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Indexed as row*8+file where row 0 is the top row (Black's back rank,
// algebraic rank 8) and file 0 is the a-file: A8=0, H8=7, A1=56, H1=63.
type Square uint8

// Square constants for all 64 squares, top row first.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Row returns the board row of the square (0-7, where 0 is the top row, rank 8).
func (sq Square) Row() int {
	return int(sq) >> 3
}

// Rank returns the algebraic rank number of the square (1-8).
func (sq Square) Rank() int {
	return 8 - sq.Row()
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank())
}

// NewSquare creates a square from a row and file (0-indexed).
func NewSquare(row, file int) Square {
	return Square(row*8 + file)
}

// inside reports whether row and file both lie on the board.
func inside(row, file int) bool {
	return row >= 0 && row < 8 && file >= 0 && file < 8
}

// Offset returns the square reached by moving dr rows and df files,
// and false if that leaves the board.
func (sq Square) Offset(dr, df int) (Square, bool) {
	r, f := sq.Row()+dr, sq.File()+df
	if !inside(r, f) {
		return NoSquare, false
	}
	return NewSquare(r, f), true
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '0'

	if file < 0 || file > 7 || rank < 1 || rank > 8 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(8-rank, file), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// PromotionRow returns the row on which a pawn of color c promotes.
func PromotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// pawnStartRow returns the row a pawn of color c starts on.
func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// pawnDir returns the row delta of a forward pawn step for color c.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}
