package engine

import (
	"fmt"
	"strings"
)

// Player identifies the occupant of a cell. Nobody marks an empty cell.
type Player int

const (
	Nobody Player = 0
	Black  Player = 1 // moves first, home boards a and b
	White  Player = 2 // home boards c and d
)

// Board and move domain constants
const (
	BoardCount     = 4
	BoardSide      = 4
	CellsPerBoard  = BoardSide * BoardSide
	StonesPerSide  = 4
	DirectionCount = 8
	MinLength      = 1
	MaxLength      = 2
)

// Opponent returns the other player. Nobody has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return Nobody
}

// Valid reports whether p is one of the two seated players.
func (p Player) Valid() bool {
	return p == Black || p == White
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}

// Cell is a 0-15 index into a 4x4 board, x = i%4 and y = i/4.
type Cell int

// OffBoard is the resolution result for a step leaving the 4x4 grid.
const OffBoard Cell = -1

// X returns the column of the cell.
func (c Cell) X() int { return int(c) % BoardSide }

// Y returns the row of the cell.
func (c Cell) Y() int { return int(c) / BoardSide }

// OnBoard reports whether c addresses a real cell.
func (c Cell) OnBoard() bool { return c >= 0 && c < CellsPerBoard }

// CellAt builds a cell from coordinates, returning OffBoard outside the grid.
func CellAt(x, y int) Cell {
	if x < 0 || x >= BoardSide || y < 0 || y >= BoardSide {
		return OffBoard
	}
	return Cell(y*BoardSide + x)
}

// BoardIndex addresses one of the four boards, 0-3 (a-d).
type BoardIndex int

// Valid reports whether b is in range.
func (b BoardIndex) Valid() bool { return b >= 0 && b < BoardCount }

// Letter returns the external board letter a-d.
func (b BoardIndex) Letter() string {
	if !b.Valid() {
		return "?"
	}
	return string(rune('a' + int(b)))
}

// ColorClass is 0 for the light boards {0,3} and 1 for the dark boards {1,2}.
func (b BoardIndex) ColorClass() int {
	if b == 0 || b == 3 {
		return 0
	}
	return 1
}

// SameColor reports whether two boards share a color class. For distinct
// boards this holds exactly when their indices sum to 3.
func SameColor(a, b BoardIndex) bool {
	return a.ColorClass() == b.ColorClass()
}

// IsHomeBoard reports whether b is one of p's two home boards.
func IsHomeBoard(b BoardIndex, p Player) bool {
	switch p {
	case Black:
		return b == 0 || b == 1
	case White:
		return b == 2 || b == 3
	}
	return false
}

// HomeBoards returns the two boards a player may play a passive leg on.
func HomeBoards(p Player) []BoardIndex {
	switch p {
	case Black:
		return []BoardIndex{0, 1}
	case White:
		return []BoardIndex{2, 3}
	}
	return nil
}

// Direction is one of the eight compass directions, N=0 clockwise to NW=7.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [DirectionCount]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

// Valid reports whether d is one of the eight directions.
func (d Direction) Valid() bool { return d >= 0 && d < DirectionCount }

func (d Direction) String() string {
	if !d.Valid() {
		return "?"
	}
	return directionNames[d]
}

// ParseDirection accepts n, ne, e, se, s, sw, w, nw in any case.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: direction %q", ErrOutOfRange, s)
}

// Board is one 4x4 grid in row-major order.
type Board [CellsPerBoard]Player

// Count returns how many stones p has on the board.
func (b *Board) Count(p Player) int {
	n := 0
	for _, c := range b {
		if c == p {
			n++
		}
	}
	return n
}

// Boards is the full snapshot of the four boards. It is a value type, so
// assignment copies it.
type Boards [BoardCount]Board

// At returns the occupant of a cell.
func (bs *Boards) At(b BoardIndex, c Cell) Player {
	return bs[b][c]
}

// Count returns p's stones across all boards.
func (bs *Boards) Count(p Player) int {
	n := 0
	for i := range bs {
		n += bs[i].Count(p)
	}
	return n
}

// StandardBoards returns the opening position: black on row 0, white on row 3
// of every board.
func StandardBoards() Boards {
	var bs Boards
	for b := range bs {
		for i := 0; i < StonesPerSide; i++ {
			bs[b][i] = Black
			bs[b][CellsPerBoard-StonesPerSide+i] = White
		}
	}
	return bs
}

// SubMove is one leg of a turn. Destination and the push fields are filled by
// the resolver; they are never supplied by the caller.
type SubMove struct {
	Board           BoardIndex `json:"board"`
	Origin          Cell       `json:"origin"`
	Destination     Cell       `json:"destination"`
	Push            bool       `json:"push,omitempty"`
	PushDestination Cell       `json:"push_destination,omitempty"`
}

// Move is a full turn: a passive leg on a home board and an active leg on a
// board of the other color, both travelling the same vector.
type Move struct {
	Passive   SubMove   `json:"passive"`
	Active    SubMove   `json:"active"`
	Direction Direction `json:"direction"`
	Length    int       `json:"length"`
}

// NewMove builds an unresolved move and checks every field against its domain.
func NewMove(passiveBoard BoardIndex, passiveOrigin Cell, dir Direction, length int, activeBoard BoardIndex, activeOrigin Cell) (Move, error) {
	m := Move{
		Passive:   SubMove{Board: passiveBoard, Origin: passiveOrigin, Destination: OffBoard, PushDestination: OffBoard},
		Active:    SubMove{Board: activeBoard, Origin: activeOrigin, Destination: OffBoard, PushDestination: OffBoard},
		Direction: dir,
		Length:    length,
	}
	if err := m.Validate(); err != nil {
		return Move{}, err
	}
	return m, nil
}

// Validate checks the range invariants of the caller-supplied fields.
func (m Move) Validate() error {
	switch {
	case !m.Passive.Board.Valid():
		return fmt.Errorf("%w: passive board %d", ErrOutOfRange, m.Passive.Board)
	case !m.Active.Board.Valid():
		return fmt.Errorf("%w: active board %d", ErrOutOfRange, m.Active.Board)
	case !m.Passive.Origin.OnBoard():
		return fmt.Errorf("%w: passive origin %d", ErrOutOfRange, m.Passive.Origin)
	case !m.Active.Origin.OnBoard():
		return fmt.Errorf("%w: active origin %d", ErrOutOfRange, m.Active.Origin)
	case !m.Direction.Valid():
		return fmt.Errorf("%w: direction %d", ErrOutOfRange, m.Direction)
	case m.Length < MinLength || m.Length > MaxLength:
		return fmt.Errorf("%w: length %d", ErrOutOfRange, m.Length)
	}
	return nil
}

// String renders the move in the notation accepted by the command loop,
// e.g. "a1 s1 c2".
func (m Move) String() string {
	return fmt.Sprintf("%s%d %s%d %s%d",
		m.Passive.Board.Letter(), int(m.Passive.Origin)+1,
		m.Direction, m.Length,
		m.Active.Board.Letter(), int(m.Active.Origin)+1)
}

// GameState is the observable session: boards, side to move and winner.
type GameState struct {
	Boards      Boards             `json:"boards"`
	Turn        Player             `json:"turn"`
	Winner      Player             `json:"winner"`
	ConfigName  string             `json:"config_name"`
	Message     string             `json:"message"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`
}

// GameOver reports whether a winner has been decided.
func (gs *GameState) GameOver() bool {
	return gs.Winner != Nobody
}

// Clone returns a deep copy safe to hand to callers.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.MoveHistory = append([]MoveHistoryEntry(nil), gs.MoveHistory...)
	return &c
}

// MoveHistoryEntry records one applied move.
type MoveHistoryEntry struct {
	MoveNumber int    `json:"move_number"`
	Player     Player `json:"player"`
	Move       Move   `json:"move"`
	Notation   string `json:"notation"`
	Pushed     bool   `json:"pushed"`
	Eliminated bool   `json:"eliminated"`
	Winner     Player `json:"winner,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}
