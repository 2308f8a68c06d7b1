package board

// Perft counts the leaf nodes of the legal move tree of the given depth,
// starting with side to move. It is the usual check of move generation
// correctness, here under the reduced rule set.
func Perft(b *Board, side Color, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.LegalMoves(side)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		next := *b
		next.ApplyMove(m)
		nodes += Perft(&next, side.Other(), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move.
func Divide(b *Board, side Color, depth int) map[Move]int64 {
	out := make(map[Move]int64)
	if depth < 1 {
		return out
	}
	for _, m := range b.LegalMoves(side) {
		next := *b
		next.ApplyMove(m)
		out[m] = Perft(&next, side.Other(), depth-1)
	}
	return out
}
