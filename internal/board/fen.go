package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN parses the placement and side-to-move fields of a FEN string.
// Castling and en passant fields are accepted and ignored, as are the move
// counters. A missing side-to-move field means White.
func ParseFEN(fen string) (*Board, Color, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, NoColor, fmt.Errorf("%w: empty string", ErrInvalidFEN)
	}

	b := EmptyBoard()
	if err := parsePlacement(b, parts[0]); err != nil {
		return nil, NoColor, err
	}

	side := White
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			side = White
		case "b":
			side = Black
		default:
			return nil, NoColor, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, parts[1])
		}
	}

	return b, side, nil
}

// parsePlacement fills b from the piece placement field, top row first.
// Each color may have at most one king.
func parsePlacement(b *Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(rows))
	}

	var kings [2]int
	for row, rowStr := range rows {
		file := 0
		for i := 0; i < len(rowStr); i++ {
			c := rowStr[i]
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, 8-row)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, c)
			}
			if piece.Type() == King {
				if kings[piece.Color()]++; kings[piece.Color()] > 1 {
					return fmt.Errorf("%w: more than one %v king", ErrInvalidFEN, piece.Color())
				}
			}
			b[NewSquare(row, file)] = piece
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, 8-row, file)
		}
	}

	return nil
}

// FEN returns the FEN representation of the board with side to move.
// The castling and en passant fields are always "-".
func (b *Board) FEN(side Color) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b[NewSquare(row, file)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(side.Initial())
	sb.WriteString(" - - 0 1")

	return sb.String()
}
