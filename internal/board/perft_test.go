package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// TestPerftStartingPosition checks the leaf counts of the reduced rule set.
// No castling, en passant or promotion can occur this early, so the counts
// equal the standard ones.
func TestPerftStartingPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(b, White, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPosition3 uses the rook-and-pawn endgame from the standard
// perft suite. Its first en passant capture appears at depth 3.
// FEN: 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -
func TestPerftPosition3(t *testing.T) {
	b, side := mustParse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(b, side, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	b := NewBoard()
	var sum int64
	for _, n := range Divide(b, White, 2) {
		sum += n
	}
	if sum != 400 {
		t.Errorf("divide(2) sums to %d, want 400", sum)
	}
}

// toDragontooth maps a square of this package (a8=0) to dragontoothmg's
// little-endian index (a1=0).
func toDragontooth(sq Square) uint8 {
	return uint8(sq) ^ 56
}

// TestAgainstDragontooth compares the legal move sets with an independent
// full-rules generator on positions where the two rule sets coincide: no
// castling rights and no en passant target. Underpromotions collapse into
// the same from/to pair, so promotions compare equal too.
func TestAgainstDragontooth(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w - - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b, side := mustParse(t, fen)

			want := make(map[[2]uint8]bool)
			dt := dragontoothmg.ParseFen(fen)
			for _, m := range dt.GenerateLegalMoves() {
				want[[2]uint8{m.From(), m.To()}] = true
			}

			got := make(map[[2]uint8]bool)
			for _, m := range b.LegalMoves(side) {
				got[[2]uint8{toDragontooth(m.From), toDragontooth(m.To)}] = true
			}

			for k := range want {
				if !got[k] {
					t.Errorf("missing move %v-%v", Square(k[0]^56), Square(k[1]^56))
				}
			}
			for k := range got {
				if !want[k] {
					t.Errorf("extra move %v-%v", Square(k[0]^56), Square(k[1]^56))
				}
			}
		})
	}
}
