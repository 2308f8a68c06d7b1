package board

// offset is a (row, file) displacement.
type offset struct{ dr, df int }

var (
	knightOffsets = [8]offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [8]offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4]offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = [4]offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// IsSquareAttacked reports whether any piece of defender's opponent could
// move to sq on its next turn, ignoring the attacker's own king safety.
func (b *Board) IsSquareAttacked(sq Square, defender Color) bool {
	enemy := defender.Other()

	// An enemy pawn attacks from one row behind sq along its own forward direction.
	pawn := NewPiece(Pawn, enemy)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(-pawnDir(enemy), df); ok && b[from] == pawn {
			return true
		}
	}

	knight := NewPiece(Knight, enemy)
	for _, o := range knightOffsets {
		if from, ok := sq.Offset(o.dr, o.df); ok && b[from] == knight {
			return true
		}
	}

	if b.slidingAttacker(sq, diagonalDirs[:], NewPiece(Bishop, enemy), NewPiece(Queen, enemy)) {
		return true
	}
	if b.slidingAttacker(sq, straightDirs[:], NewPiece(Rook, enemy), NewPiece(Queen, enemy)) {
		return true
	}

	king := NewPiece(King, enemy)
	for _, o := range kingOffsets {
		if from, ok := sq.Offset(o.dr, o.df); ok && b[from] == king {
			return true
		}
	}

	return false
}

// slidingAttacker walks each direction from sq and reports whether the first
// occupied square along any of them holds one of the two given pieces.
func (b *Board) slidingAttacker(sq Square, dirs []offset, p1, p2 Piece) bool {
	for _, d := range dirs {
		cur := sq
		for {
			next, ok := cur.Offset(d.dr, d.df)
			if !ok {
				break
			}
			if q := b[next]; q != NoPiece {
				if q == p1 || q == p2 {
					return true
				}
				break
			}
			cur = next
		}
	}
	return false
}

// IsKingInCheck reports whether side's king is attacked. A side with no king
// on the board counts as in check.
func (b *Board) IsKingInCheck(side Color) bool {
	ksq := b.KingSquare(side)
	return ksq == NoSquare || b.IsSquareAttacked(ksq, side)
}
