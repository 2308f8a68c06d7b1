package ui

import "github.com/hailam/hotseat/internal/board"

// geometry maps board squares to logical pixel positions. Unflipped, row 0
// (rank 8) is drawn at the top and the a-file on the left; flipped turns the
// board around so Black sits at the bottom.
type geometry struct {
	squareSize int
	flipped    bool
}

// squareOrigin returns the top-left corner of sq.
func (g geometry) squareOrigin(sq board.Square) (int, int) {
	col, row := sq.File(), sq.Row()
	if g.flipped {
		col, row = 7-col, 7-row
	}
	return col * g.squareSize, row * g.squareSize
}

// squareAt returns the square under logical (x, y), or NoSquare if the
// point is off the board.
func (g geometry) squareAt(x, y int) board.Square {
	size := g.squareSize * 8
	if x < 0 || x >= size || y < 0 || y >= size {
		return board.NoSquare
	}
	col, row := x/g.squareSize, y/g.squareSize
	if g.flipped {
		col, row = 7-col, 7-row
	}
	return board.NewSquare(row, col)
}

// step moves sq by one screen cell (dx right, dy down), clamping at the
// board edge so the cursor never leaves the board.
func (g geometry) step(sq board.Square, dx, dy int) board.Square {
	if g.flipped {
		dx, dy = -dx, -dy
	}
	if next, ok := sq.Offset(dy, dx); ok {
		return next
	}
	return sq
}
