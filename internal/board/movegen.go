package board

// PseudoMoves returns the destinations the piece on sq could reach by its
// movement pattern and the board's occupancy, without regard to whether the
// mover's own king would be left in check. An empty square yields no moves.
func (b *Board) PseudoMoves(sq Square) SquareSet {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return 0
	}
	us := p.Color()

	switch p.Type() {
	case Pawn:
		return b.pawnMoves(sq, us)
	case Knight:
		return b.stepMoves(sq, us, knightOffsets[:])
	case Bishop:
		return b.slideMoves(sq, us, diagonalDirs[:])
	case Rook:
		return b.slideMoves(sq, us, straightDirs[:])
	case Queen:
		return b.slideMoves(sq, us, diagonalDirs[:]) | b.slideMoves(sq, us, straightDirs[:])
	case King:
		return b.stepMoves(sq, us, kingOffsets[:])
	}
	return 0
}

// pawnMoves generates single and double pushes onto empty squares and
// diagonal captures onto enemy pieces. There is no en passant.
func (b *Board) pawnMoves(sq Square, us Color) SquareSet {
	var moves SquareSet
	dir := pawnDir(us)

	if one, ok := sq.Offset(dir, 0); ok && b[one] == NoPiece {
		moves = moves.Set(one)
		if sq.Row() == pawnStartRow(us) {
			if two, ok := sq.Offset(2*dir, 0); ok && b[two] == NoPiece {
				moves = moves.Set(two)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		if to, ok := sq.Offset(dir, df); ok && b[to].Is(us.Other()) {
			moves = moves.Set(to)
		}
	}
	return moves
}

// stepMoves generates single-step destinations that are empty or hold an enemy.
func (b *Board) stepMoves(sq Square, us Color, offsets []offset) SquareSet {
	var moves SquareSet
	for _, o := range offsets {
		if to, ok := sq.Offset(o.dr, o.df); ok && !b[to].Is(us) {
			moves = moves.Set(to)
		}
	}
	return moves
}

// slideMoves walks each direction until blocked, keeping the first enemy
// square as a capture.
func (b *Board) slideMoves(sq Square, us Color, dirs []offset) SquareSet {
	var moves SquareSet
	for _, d := range dirs {
		cur := sq
		for {
			next, ok := cur.Offset(d.dr, d.df)
			if !ok {
				break
			}
			q := b[next]
			if q == NoPiece {
				moves = moves.Set(next)
				cur = next
				continue
			}
			if q.Color() != us {
				moves = moves.Set(next)
			}
			break
		}
	}
	return moves
}

// LegalMovesFrom returns the destinations of the piece on sq that do not
// leave side's king in check. It is empty when sq holds no piece of side.
// Each candidate is tried on its own copy of the board; the receiver is
// never modified.
func (b *Board) LegalMovesFrom(sq Square, side Color) SquareSet {
	if !b.PieceAt(sq).Is(side) {
		return 0
	}

	var legal SquareSet
	b.PseudoMoves(sq).ForEach(func(to Square) {
		sim := *b
		sim.ApplyMove(NewMove(sq, to))
		if !sim.IsKingInCheck(side) {
			legal = legal.Set(to)
		}
	})
	return legal
}

// AnyLegalMove reports whether side has at least one legal move.
func (b *Board) AnyLegalMove(side Color) bool {
	for own := b.Occupied(side); !own.Empty(); {
		if !b.LegalMovesFrom(own.PopFirst(), side).Empty() {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for side, ordered by origin square
// then destination square.
func (b *Board) LegalMoves(side Color) []Move {
	var moves []Move
	b.Occupied(side).ForEach(func(from Square) {
		b.LegalMovesFrom(from, side).ForEach(func(to Square) {
			moves = append(moves, NewMove(from, to))
		})
	})
	return moves
}

// ApplyMove moves the piece on m.From to m.To, capturing whatever stood there
// and promoting a pawn that reaches its last row to a queen of its own color.
// The move is not validated; callers pass moves drawn from LegalMovesFrom.
func (b *Board) ApplyMove(m Move) MoveRecord {
	moving := b.Remove(m.From)
	rec := MoveRecord{
		From:     m.From,
		To:       m.To,
		Piece:    moving,
		Captured: b[m.To],
	}

	b[m.To] = moving
	if moving.Type() == Pawn && m.To.Row() == PromotionRow(moving.Color()) {
		b[m.To] = NewPiece(Queen, moving.Color())
		rec.Promoted = true
	}
	return rec
}
