package board

import "strings"

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// backRank is the piece order of both back ranks, a-file first.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is the 64-cell mailbox: one Piece (or NoPiece) per square.
// Board is a value type; assigning it produces an independent copy.
type Board [64]Piece

// NewBoard returns a board in the standard starting arrangement.
func NewBoard() *Board {
	b := EmptyBoard()
	for file := 0; file < 8; file++ {
		b[NewSquare(0, file)] = NewPiece(backRank[file], Black)
		b[NewSquare(1, file)] = BlackPawn
		b[NewSquare(6, file)] = WhitePawn
		b[NewSquare(7, file)] = NewPiece(backRank[file], White)
	}
	return b
}

// EmptyBoard returns a board with no pieces on it.
func EmptyBoard() *Board {
	var b Board
	for i := range b {
		b[i] = NoPiece
	}
	return &b
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	if sq >= NoSquare {
		return NoPiece
	}
	return b[sq]
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == NoPiece
}

// Put places p on sq, replacing whatever was there.
func (b *Board) Put(sq Square, p Piece) {
	b[sq] = p
}

// Remove empties sq and returns the piece that was on it.
func (b *Board) Remove(sq Square) Piece {
	p := b[sq]
	b[sq] = NoPiece
	return p
}

// KingSquare returns the square of c's king, or NoSquare if it has none.
func (b *Board) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := Square(0); sq < NoSquare; sq++ {
		if b[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Occupied returns the set of squares holding a piece of color c.
func (b *Board) Occupied(c Color) SquareSet {
	var s SquareSet
	for sq := Square(0); sq < NoSquare; sq++ {
		if b[sq].Is(c) {
			s = s.Set(sq)
		}
	}
	return s
}

// String returns an ASCII diagram of the board, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			p := b[NewSquare(row, file)]
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.String())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
