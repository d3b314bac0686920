package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	GetWinner() Player
	GetTurn() Player

	// Moves
	Move(m Move) (MoveOutcome, error)
	CanMove(m Move) error
	GetPossibleMoves() []Move

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// MoveOutcome describes what an accepted move did to the position.
type MoveOutcome struct {
	Move       Move   `json:"move"`
	Player     Player `json:"player"`
	Pushed     bool   `json:"pushed"`
	Eliminated bool   `json:"eliminated"`
	Winner     Player `json:"winner"`
}

// GameEngine implements the Engine interface. It owns one session and is not
// safe for concurrent use; callers serialize access.
type GameEngine struct {
	state  *GameState
	config *GameConfig
	now    func() time.Time
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config),
		now:    time.Now,
	}

	return engine, nil
}

// NewEngineWithDefaults creates a new game engine on the standard opening
func NewEngineWithDefaults() *GameEngine {
	config := DefaultConfig()
	return &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config),
		now:    time.Now,
	}
}

// GetState returns a copy of the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state.Clone()
}

// SetState replaces the session, e.g. to set up a position for analysis
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if !state.Turn.Valid() {
		return fmt.Errorf("state turn must be black or white, got %d", state.Turn)
	}
	if state.Winner != Nobody && !state.Winner.Valid() {
		return fmt.Errorf("state winner is invalid: %d", state.Winner)
	}
	e.state = state.Clone()
	return nil
}

// Reset restores the configured starting position and clears the history
func (e *GameEngine) Reset() *GameState {
	e.state = InitGameStateFromConfig(e.config)
	return e.GetState()
}

// IsGameOver returns whether a winner has been decided
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver()
}

// GetWinner returns the winner or Nobody
func (e *GameEngine) GetWinner() Player {
	return e.state.Winner
}

// GetTurn returns the player to move
func (e *GameEngine) GetTurn() Player {
	return e.state.Turn
}

// CanMove reports why m would be refused for the player to move, or nil.
func (e *GameEngine) CanMove(m Move) error {
	_, err := e.prepare(m)
	return err
}

func (e *GameEngine) prepare(m Move) (Move, error) {
	if e.state.GameOver() {
		return Move{}, reject(ReasonTerminalState, LegNone, "%s has already won; reset to play again", e.state.Winner)
	}
	resolved, err := ResolveMove(m)
	if err != nil {
		return Move{}, err
	}
	if r := Check(resolved, &e.state.Boards, e.state.Turn); r != nil {
		return Move{}, r
	}
	return Classify(resolved, &e.state.Boards), nil
}

// Move resolves, checks and applies m for the player to move. A refused move
// returns a *Rejection (or an ErrOutOfRange error) and leaves the state as it
// was.
func (e *GameEngine) Move(m Move) (MoveOutcome, error) {
	resolved, err := e.prepare(m)
	if err != nil {
		return MoveOutcome{}, err
	}

	mover := e.state.Turn
	e.state.Boards = Apply(e.state.Boards, resolved, mover)

	outcome := MoveOutcome{
		Move:       resolved,
		Player:     mover,
		Pushed:     resolved.Active.Push,
		Eliminated: resolved.Active.Push && !resolved.Active.PushDestination.OnBoard(),
		Winner:     DetectWinner(&e.state.Boards, mover),
	}

	e.state.TotalMoves++
	e.state.MoveHistory = append(e.state.MoveHistory, MoveHistoryEntry{
		MoveNumber: e.state.TotalMoves,
		Player:     mover,
		Move:       resolved,
		Notation:   resolved.String(),
		Pushed:     outcome.Pushed,
		Eliminated: outcome.Eliminated,
		Winner:     outcome.Winner,
		Timestamp:  e.now().Unix(),
	})

	if outcome.Winner != Nobody {
		e.state.Winner = outcome.Winner
		e.state.Message = victoryMessage(e.config, outcome.Winner)
		return outcome, nil
	}

	e.state.Turn = mover.Opponent()
	switch {
	case outcome.Eliminated:
		e.state.Message = fmt.Sprintf("%s pushed a stone off board %s. %s to move.", mover, resolved.Active.Board.Letter(), e.state.Turn)
	case outcome.Pushed:
		e.state.Message = fmt.Sprintf("%s pushed a stone on board %s. %s to move.", mover, resolved.Active.Board.Letter(), e.state.Turn)
	default:
		e.state.Message = fmt.Sprintf("%s played %s. %s to move.", mover, resolved, e.state.Turn)
	}
	return outcome, nil
}

// GetPossibleMoves returns every legal move for the player to move
func (e *GameEngine) GetPossibleMoves() []Move {
	if e.state.GameOver() {
		return nil
	}
	return LegalMoves(&e.state.Boards, e.state.Turn)
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitGameStateFromConfig(config)
	return nil
}

// GetMoveHistory returns the moves applied since the last reset
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return append([]MoveHistoryEntry(nil), e.state.MoveHistory...)
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	last := e.state.MoveHistory[len(e.state.MoveHistory)-1]
	return &last
}
