package ui

import (
	"testing"

	"github.com/hailam/hotseat/internal/board"
)

func TestGeometryRoundTrip(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		g := geometry{squareSize: SquareSize, flipped: flipped}
		for sq := board.Square(0); sq < board.NoSquare; sq++ {
			x, y := g.squareOrigin(sq)
			if got := g.squareAt(x+SquareSize/2, y+SquareSize/2); got != sq {
				t.Errorf("flipped=%v: squareAt(origin(%v)) = %v", flipped, sq, got)
			}
		}
	}
}

func TestGeometryOrientation(t *testing.T) {
	tests := []struct {
		flipped bool
		x, y    int
		want    board.Square
	}{
		{false, 0, 0, board.A8},
		{false, BoardSize - 1, BoardSize - 1, board.H1},
		{true, 0, 0, board.H1},
		{true, BoardSize - 1, BoardSize - 1, board.A8},
		{false, -1, 10, board.NoSquare},
		{false, 10, BoardSize, board.NoSquare},
	}
	for _, tc := range tests {
		g := geometry{squareSize: SquareSize, flipped: tc.flipped}
		if got := g.squareAt(tc.x, tc.y); got != tc.want {
			t.Errorf("flipped=%v squareAt(%d, %d) = %v, want %v", tc.flipped, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGeometryStep(t *testing.T) {
	tests := []struct {
		name    string
		flipped bool
		from    board.Square
		dx, dy  int
		want    board.Square
	}{
		{"up from e2", false, board.E2, 0, -1, board.E3},
		{"right from e2", false, board.E2, 1, 0, board.F2},
		{"up when flipped", true, board.E2, 0, -1, board.E1},
		{"right when flipped", true, board.E2, 1, 0, board.D2},
		{"clamped at top", false, board.E8, 0, -1, board.E8},
		{"clamped at right", false, board.H4, 1, 0, board.H4},
	}
	for _, tc := range tests {
		g := geometry{squareSize: SquareSize, flipped: tc.flipped}
		if got := g.step(tc.from, tc.dx, tc.dy); got != tc.want {
			t.Errorf("%s: step = %v, want %v", tc.name, got, tc.want)
		}
	}
}
