package engine

// LegalMoves enumerates every resolved move player could make. The active
// leg of each result is classified against boards.
func LegalMoves(boards *Boards, player Player) []Move {
	var moves []Move
	for _, pb := range HomeBoards(player) {
		for ab := BoardIndex(0); ab < BoardCount; ab++ {
			if ab == pb || SameColor(ab, pb) {
				continue
			}
			moves = appendLegal(moves, boards, player, pb, ab)
		}
	}
	return moves
}

func appendLegal(moves []Move, boards *Boards, player Player, pb, ab BoardIndex) []Move {
	for dir := Direction(0); dir < DirectionCount; dir++ {
		for length := MinLength; length <= MaxLength; length++ {
			for po := Cell(0); po < CellsPerBoard; po++ {
				if boards[pb][po] != player {
					continue
				}
				for ao := Cell(0); ao < CellsPerBoard; ao++ {
					if boards[ab][ao] != player {
						continue
					}
					m, err := NewMove(pb, po, dir, length, ab, ao)
					if err != nil {
						continue
					}
					if m, err = ResolveMove(m); err != nil {
						continue
					}
					if Check(m, boards, player) == nil {
						moves = append(moves, Classify(m, boards))
					}
				}
			}
		}
	}
	return moves
}

// HasLegalMove reports whether player has at least one legal move.
func HasLegalMove(boards *Boards, player Player) bool {
	return len(LegalMoves(boards, player)) > 0
}
