package board

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares packed into 64 bits; bit i is Square(i).
type SquareSet uint64

// Set returns the set with sq added.
func (s SquareSet) Set(sq Square) SquareSet {
	return s | 1<<sq
}

// Has returns true if sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq < NoSquare && s&(1<<sq) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty returns true if the set holds no squares.
func (s SquareSet) Empty() bool {
	return s == 0
}

// PopFirst removes and returns the lowest-indexed square.
func (s *SquareSet) PopFirst() Square {
	sq := Square(bits.TrailingZeros64(uint64(*s)))
	*s &= *s - 1
	return sq
}

// ForEach calls the function for each square in ascending index order.
func (s SquareSet) ForEach(f func(Square)) {
	for s != 0 {
		f(s.PopFirst())
	}
}

// Squares returns the squares of the set in ascending index order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for s != 0 {
		squares = append(squares, s.PopFirst())
	}
	return squares
}

// String returns a visual representation of the set, top row first.
func (s SquareSet) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if s.Has(NewSquare(row, file)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
