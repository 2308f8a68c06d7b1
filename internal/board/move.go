package board

import (
	"fmt"
	"strings"
)

// Move is a request to move the piece on From to To.
type Move struct {
	From Square
	To   Square
}

// NoMove represents an invalid or null move.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the coordinate form of the move (e.g., "e2e4").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// ParseMove parses a coordinate move such as "e2e4" or "e2-e4".
func ParseMove(s string) (Move, error) {
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 4 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	return NewMove(from, to), nil
}

// MoveRecord describes a move after it was applied. Records are values and
// are never modified once returned.
type MoveRecord struct {
	From     Square
	To       Square
	Piece    Piece // the piece that moved, before any promotion
	Captured Piece // NoPiece if the move was not a capture
	Promoted bool  // true if a pawn became a queen
}

// Move returns the from/to pair of the record.
func (r MoveRecord) Move() Move {
	return NewMove(r.From, r.To)
}

// IsCapture returns true if the move took a piece.
func (r MoveRecord) IsCapture() bool {
	return r.Captured != NoPiece
}

// Notation returns the move-log form of the record: piece letter, origin,
// "-" or "x", destination, and "=Q" after a promotion (e.g., "Pe7xd8=Q").
func (r MoveRecord) Notation() string {
	var sb strings.Builder
	sb.WriteByte(r.Piece.Type().Letter())
	sb.WriteString(r.From.String())
	if r.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(r.To.String())
	if r.Promoted {
		sb.WriteString("=Q")
	}
	return sb.String()
}

// LogLine returns the record as a move-log line prefixed by the mover's
// color initial, e.g. "W: Pe2-e4".
func (r MoveRecord) LogLine() string {
	side := "W"
	if r.Piece.Color() == Black {
		side = "B"
	}
	return side + ": " + r.Notation()
}
