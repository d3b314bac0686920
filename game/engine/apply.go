package engine

// Apply returns the position after a legal move. The input is not modified.
// Callers must run Check first; Apply does not re-validate.
func Apply(boards Boards, m Move, player Player) Boards {
	next := boards

	pb := &next[m.Passive.Board]
	pb[m.Passive.Origin] = Nobody
	pb[m.Passive.Destination] = player

	ab := &next[m.Active.Board]
	if IsPush(m.Active, m.Length, &boards[m.Active.Board]) {
		if m.Length == 2 {
			ab[Midpoint(m.Active.Origin, m.Active.Destination)] = Nobody
		}
		if pd := Resolve(m.Active.Origin, m.Direction, m.Length+1); pd.OnBoard() {
			ab[pd] = player.Opponent()
		}
	}
	ab[m.Active.Origin] = Nobody
	ab[m.Active.Destination] = player
	return next
}

// HasWon reports whether p has cleared every opposing stone from at least
// one board.
func HasWon(boards *Boards, p Player) bool {
	opp := p.Opponent()
	for i := range boards {
		if boards[i].Count(opp) == 0 {
			return true
		}
	}
	return false
}

// DetectWinner checks both sides after mover's turn. The mover is examined
// first and wins a simultaneous double win.
func DetectWinner(boards *Boards, mover Player) Player {
	if HasWon(boards, mover) {
		return mover
	}
	if HasWon(boards, mover.Opponent()) {
		return mover.Opponent()
	}
	return Nobody
}
