package service

import (
	"context"
	"time"

	"github.com/wricardo/shobu/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session
	GetSession(ctx context.Context) (*SessionInfo, error)
	Reset(ctx context.Context, configName string) (*engine.GameState, error)

	// Game Operations
	Move(ctx context.Context, move engine.Move) (*MoveResult, error)
	MoveNotation(ctx context.Context, text string) (*MoveResult, error)
	LegalMoves(ctx context.Context) ([]engine.Move, error)
	Suggest(ctx context.Context) (engine.Move, error)
	PlayStrategy(ctx context.Context) (*MoveResult, error)

	// Game State
	GetGameState(ctx context.Context) (*engine.GameState, error)
	GetMoveHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session is the single game the service owns.
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
