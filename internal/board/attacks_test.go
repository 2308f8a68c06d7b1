package board

import "testing"

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		square   Square
		defender Color
		want     bool
	}{
		{"white pawn attacks diagonally forward", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", E4, Black, true},
		{"white pawn attacks other diagonal", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", C4, Black, true},
		{"white pawn does not attack straight ahead", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", D4, Black, false},
		{"white pawn does not attack backwards", "4k3/8/8/8/8/3P4/8/7K w - - 0 1", E2, Black, false},
		{"white pawn does not attack other backward diagonal", "4k3/8/8/8/8/3P4/8/7K w - - 0 1", C2, Black, false},
		{"black pawn attacks downward", "4k3/8/8/3p4/8/8/8/4K3 w - - 0 1", E4, White, true},
		{"black pawn does not attack upward", "4k3/8/8/3p4/8/8/8/4K3 w - - 0 1", E6, White, false},
		{"knight", "4k3/8/8/8/8/8/8/1n2K3 w - - 0 1", D2, White, true},
		{"knight misses", "4k3/8/8/8/8/8/8/1n2K3 w - - 0 1", B2, White, false},
		{"rook along file", "4r2k/8/8/8/8/8/8/4K3 w - - 0 1", E1, White, true},
		{"rook blocked by own piece", "4r2k/8/8/8/8/8/4P3/4K3 w - - 0 1", E1, White, false},
		{"rook blocked by non-sliding enemy", "4r2k/8/8/8/8/4p3/8/4K3 w - - 0 1", E1, White, false},
		{"rook behind rook does not count twice", "4r2k/4r3/8/8/8/4n3/8/4K3 w - - 0 1", E1, White, false},
		{"bishop on diagonal", "7k/8/8/b7/8/8/8/4K3 w - - 0 1", E1, White, true},
		{"bishop cannot attack along file", "4b2k/8/8/8/8/8/8/4K3 w - - 0 1", E1, White, false},
		{"rook cannot attack along diagonal", "7k/8/8/r7/8/8/8/4K3 w - - 0 1", E1, White, false},
		{"queen on diagonal", "7k/8/8/q7/8/8/8/4K3 w - - 0 1", E1, White, true},
		{"queen on rank", "7k/8/8/8/8/8/8/q3K3 w - - 0 1", E1, White, true},
		{"own queen does not attack", "7k/8/8/Q7/8/8/8/4K3 w - - 0 1", E1, White, false},
		{"adjacent king", "8/8/8/8/8/3k4/8/4K3 w - - 0 1", E2, White, true},
		{"distant king", "8/8/8/3k4/8/8/8/4K3 w - - 0 1", E2, White, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := mustParse(t, tc.fen)
			if got := b.IsSquareAttacked(tc.square, tc.defender); got != tc.want {
				t.Errorf("IsSquareAttacked(%v, %v) = %v, want %v\n%s", tc.square, tc.defender, got, tc.want, b)
			}
		})
	}
}

func TestIsKingInCheck(t *testing.T) {
	b := NewBoard()
	if b.IsKingInCheck(White) || b.IsKingInCheck(Black) {
		t.Error("no king is in check at the start")
	}

	b, _ = mustParse(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if !b.IsKingInCheck(White) {
		t.Error("white king next to a rook is not in check")
	}
	if b.IsKingInCheck(Black) {
		t.Error("black king is not attacked")
	}
}

func TestMissingKingCountsAsCheck(t *testing.T) {
	b := EmptyBoard()
	if !b.IsKingInCheck(White) || !b.IsKingInCheck(Black) {
		t.Error("a side without a king should count as in check")
	}

	b.Put(E2, WhiteRook)
	if b.AnyLegalMove(White) {
		t.Error("every move of a kingless side leaves it in check")
	}
}
