package service

import (
	"time"

	"github.com/wricardo/shobu/game/engine"
)

// SessionInfo provides information about the game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	Strategy       string             `json:"strategy,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation. A refused move is
// reported through Rejection, not as an error.
type MoveResult struct {
	Success   bool              `json:"success"`
	Move      *engine.Move      `json:"move,omitempty"`
	Rejection *engine.Rejection `json:"rejection,omitempty"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// Event types
const (
	EventMove        = "move"
	EventPush        = "push"
	EventElimination = "elimination"
	EventVictory     = "victory"
)

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string        `json:"type"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Player    engine.Player `json:"player,omitempty"`
	Board     string        `json:"board,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to pass to Reset
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	BlackStones int    `json:"black_stones"`
	WhiteStones int    `json:"white_stones"`
}
