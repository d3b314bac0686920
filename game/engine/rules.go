package engine

// IsPush reports whether a leg would displace a stone: its destination is
// occupied, or for a length-2 leg its midpoint is. Both the legality checker
// and Apply consult it so they always agree on what a push is.
func IsPush(sub SubMove, length int, board *Board) bool {
	if !sub.Destination.OnBoard() {
		return false
	}
	if board[sub.Destination] != Nobody {
		return true
	}
	if length == 2 && board[Midpoint(sub.Origin, sub.Destination)] != Nobody {
		return true
	}
	return false
}

// ResolveMove fills in both destinations. A leg whose destination falls off
// the grid is refused with ReasonGeometry before any rule is consulted.
func ResolveMove(m Move) (Move, error) {
	if err := m.Validate(); err != nil {
		return Move{}, err
	}
	m.Passive.Destination = Resolve(m.Passive.Origin, m.Direction, m.Length)
	if !m.Passive.Destination.OnBoard() {
		return Move{}, reject(ReasonGeometry, LegPassive,
			"%s%d moves off the board going %s%d", m.Passive.Board.Letter(), m.Passive.Origin+1, m.Direction, m.Length)
	}
	m.Active.Destination = Resolve(m.Active.Origin, m.Direction, m.Length)
	if !m.Active.Destination.OnBoard() {
		return Move{}, reject(ReasonGeometry, LegActive,
			"%s%d moves off the board going %s%d", m.Active.Board.Letter(), m.Active.Origin+1, m.Direction, m.Length)
	}
	m.Passive.Push, m.Passive.PushDestination = false, OffBoard
	m.Active.Push, m.Active.PushDestination = false, OffBoard
	return m, nil
}

// Classify marks the active leg as a push against the given position and
// resolves where the pushed stone lands. The push destination may be
// OffBoard, meaning the stone is eliminated.
func Classify(m Move, boards *Boards) Move {
	m.Active.Push = IsPush(m.Active, m.Length, &boards[m.Active.Board])
	m.Active.PushDestination = OffBoard
	if m.Active.Push {
		m.Active.PushDestination = Resolve(m.Active.Origin, m.Direction, m.Length+1)
	}
	return m
}

// Check validates a resolved move for player. The passive leg is examined
// before the active one and the first failing rule is reported, so the
// reason for a given position is always the same. A nil result means legal.
func Check(m Move, boards *Boards, player Player) *Rejection {
	if !m.Passive.Destination.OnBoard() || !m.Active.Destination.OnBoard() {
		return reject(ReasonGeometry, LegNone, "move is not resolved onto the board")
	}

	p := m.Passive
	if !IsHomeBoard(p.Board, player) {
		return reject(ReasonHomeBoard, LegPassive,
			"passive move must be played on one of your home boards, not %s", p.Board.Letter())
	}
	pb := &boards[p.Board]
	if r := checkOrigin(pb, p, player, LegPassive); r != nil {
		return r
	}
	if pb[p.Destination] != Nobody {
		return reject(ReasonPassiveBlocked, LegPassive, "passive move cannot push stones (%s%d is occupied)", p.Board.Letter(), p.Destination+1)
	}
	if m.Length == 2 {
		if mid := Midpoint(p.Origin, p.Destination); pb[mid] != Nobody {
			return reject(ReasonPassiveBlocked, LegPassive, "passive move cannot jump over %s%d", p.Board.Letter(), mid+1)
		}
	}

	a := m.Active
	if a.Board == p.Board {
		return reject(ReasonSameBoard, LegActive, "active move must be on a different board than the passive move")
	}
	if SameColor(a.Board, p.Board) {
		return reject(ReasonBoardPairing, LegActive,
			"boards %s and %s share a color; the active move must be on the other color", p.Board.Letter(), a.Board.Letter())
	}
	ab := &boards[a.Board]
	if r := checkOrigin(ab, a, player, LegActive); r != nil {
		return r
	}
	if !IsPush(a, m.Length, ab) {
		return nil
	}

	occupied := 0
	var pushed Player
	if m.Length == 2 {
		if mid := ab[Midpoint(a.Origin, a.Destination)]; mid != Nobody {
			occupied++
			pushed = mid
		}
	}
	if ab[a.Destination] != Nobody {
		occupied++
		pushed = ab[a.Destination]
	}
	if pd := Resolve(a.Origin, m.Direction, m.Length+1); pd.OnBoard() && ab[pd] != Nobody {
		occupied++
	}
	if occupied > 1 {
		return reject(ReasonPushChain, LegActive, "cannot push two stones in a row")
	}
	if pushed == player {
		return reject(ReasonSelfPush, LegActive, "cannot push your own stones")
	}
	return nil
}

func checkOrigin(b *Board, sub SubMove, player Player, leg Leg) *Rejection {
	switch b[sub.Origin] {
	case Nobody:
		return reject(ReasonEmptyOrigin, leg, "there is no stone at %s%d", sub.Board.Letter(), sub.Origin+1)
	case player:
		return nil
	}
	return reject(ReasonOwnership, leg, "the stone at %s%d belongs to %s", sub.Board.Letter(), sub.Origin+1, player.Opponent())
}
