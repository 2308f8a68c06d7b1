package ui

import (
	"testing"

	"github.com/hailam/hotseat/internal/board"
)

func TestInvalidMoveReason(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to board.Square
		want     InvalidMoveReason
	}{
		{"pawn three squares", board.StartFEN, board.E2, board.E5, ReasonInvalidPieceMovement},
		{"rook boxed in", board.StartFEN, board.A1, board.A3, ReasonNoLegalMoves},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", board.E2, board.D3, ReasonNoLegalMoves},
		{"king steps into check", "4k3/8/8/8/8/8/3r4/7K w - - 0 1", board.H1, board.H2, ReasonWouldLeaveKingInCheck},
		{"king two squares", "4k3/8/8/8/8/8/3r4/7K w - - 0 1", board.H1, board.H3, ReasonInvalidPieceMovement},
		{"opponent piece", board.StartFEN, board.E7, board.E5, ReasonUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, side, err := board.ParseFEN(tc.fen)
			if err != nil {
				t.Fatal(err)
			}
			if got := invalidMoveReason(b, side, tc.from, tc.to); got != tc.want {
				t.Errorf("invalidMoveReason = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInvalidMoveReasonLeavesKingInCheck(t *testing.T) {
	// A pinned knight has nowhere to go. A pinned rook can still slide along
	// the e-file, so its sideways step is a pseudo move that exposes the king.
	b, side, err := board.ParseFEN("4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := invalidMoveReason(b, side, board.E2, board.C3); got != ReasonNoLegalMoves {
		t.Errorf("pinned knight = %v, want %v", got, ReasonNoLegalMoves)
	}

	b, side, err = board.ParseFEN("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := invalidMoveReason(b, side, board.E2, board.D2); got != ReasonWouldLeaveKingInCheck {
		t.Errorf("pinned rook sideways = %v, want %v", got, ReasonWouldLeaveKingInCheck)
	}
}
