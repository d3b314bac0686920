package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/wricardo/shobu/game/engine"
	"github.com/wricardo/shobu/game/notation"
	"github.com/wricardo/shobu/game/strategy"
)

// ErrNoStrategy is returned by Suggest and PlayStrategy when the service was
// built without a strategy.
var ErrNoStrategy = errors.New("no strategy configured")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	session  *Session
	configs  ConfigManager
	strategy strategy.Strategy
	mu       sync.Mutex
}

// NewGameService creates a service owning one session started from the
// configuration manager's default setup. strat may be nil.
func NewGameService(configs ConfigManager, strat strategy.Strategy) (GameService, error) {
	config := configs.GetDefault()
	if config == nil {
		config = engine.DefaultConfig()
	}
	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	now := time.Now()
	s := &gameServiceImpl{
		session: &Session{
			ID:             uuid.New().String(),
			Engine:         eng,
			Config:         config,
			CreatedAt:      now,
			LastAccessedAt: now,
		},
		configs:  configs,
		strategy: strat,
	}

	log.WithFields(log.Fields{
		"session": s.session.ID,
		"config":  config.Name,
	}).Info("game session started")
	return s, nil
}

func (s *gameServiceImpl) logger() *log.Entry {
	return log.WithField("session", s.session.ID)
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.LastAccessedAt = time.Now()
	info := &SessionInfo{
		ID:             s.session.ID,
		ConfigName:     s.session.Config.Name,
		CreatedAt:      s.session.CreatedAt,
		LastAccessedAt: s.session.LastAccessedAt,
		GameState:      s.session.Engine.GetState(),
		GameConfig:     s.session.Config,
	}
	if s.strategy != nil {
		info.Strategy = s.strategy.Name()
	}
	return info, nil
}

// Move applies a structured move for the player to move
func (s *gameServiceImpl) Move(ctx context.Context, move engine.Move) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(move)
}

// MoveNotation parses text such as "a1 s1 c2" and applies it
func (s *gameServiceImpl) MoveNotation(ctx context.Context, text string) (*MoveResult, error) {
	move, err := notation.ParseMove(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse move: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(move)
}

// apply must be called with s.mu held
func (s *gameServiceImpl) apply(move engine.Move) (*MoveResult, error) {
	eng := s.session.Engine
	s.session.LastAccessedAt = time.Now()
	mover := eng.GetTurn()

	outcome, err := eng.Move(move)
	if err != nil {
		var rejection *engine.Rejection
		if !errors.As(err, &rejection) {
			return nil, err
		}
		s.logger().WithFields(log.Fields{
			"player": mover,
			"move":   move.String(),
			"reason": rejection.Reason,
		}).Debug("move rejected")

		return &MoveResult{
			Success:   false,
			Rejection: rejection,
			GameState: eng.GetState(),
			Message:   rejection.Detail,
		}, nil
	}

	s.logger().WithFields(log.Fields{
		"player": mover,
		"move":   outcome.Move.String(),
		"push":   outcome.Pushed,
	}).Info("move applied")

	state := eng.GetState()
	if outcome.Winner != engine.Nobody {
		s.logger().WithField("winner", outcome.Winner).Info("game won")
	}

	resolved := outcome.Move
	return &MoveResult{
		Success:   true,
		Move:      &resolved,
		GameState: state,
		Message:   state.Message,
		Events:    moveEvents(outcome, time.Now()),
	}, nil
}

// LegalMoves lists every legal move for the player to move
func (s *gameServiceImpl) LegalMoves(ctx context.Context) ([]engine.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Engine.GetPossibleMoves(), nil
}

// Suggest asks the strategy for a move without playing it
func (s *gameServiceImpl) Suggest(ctx context.Context) (engine.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.propose()
}

// propose must be called with s.mu held
func (s *gameServiceImpl) propose() (engine.Move, error) {
	if s.strategy == nil {
		return engine.Move{}, ErrNoStrategy
	}
	state := s.session.Engine.GetState()
	if state.GameOver() {
		return engine.Move{}, fmt.Errorf("game is over: %w", engine.ErrTerminalState)
	}
	move, err := s.strategy.ProposeMove(state.Boards, state.Turn)
	if err != nil {
		return engine.Move{}, fmt.Errorf("strategy %s: %w", s.strategy.Name(), err)
	}
	return move, nil
}

// PlayStrategy lets the strategy move for the player to move. Its proposal
// goes through the same checks as any other move.
func (s *gameServiceImpl) PlayStrategy(ctx context.Context) (*MoveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	move, err := s.propose()
	if err != nil {
		return nil, err
	}
	return s.apply(move)
}

// Reset restarts the game. An empty configName keeps the current setup.
func (s *gameServiceImpl) Reset(ctx context.Context, configName string) (*engine.GameState, error) {
	var config *engine.GameConfig
	if configName != "" {
		var err error
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			return nil, s.configError(configName, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.LastAccessedAt = time.Now()
	var state *engine.GameState
	if config != nil {
		if err := s.session.Engine.SetConfig(config); err != nil {
			return nil, err
		}
		s.session.Config = config
		state = s.session.Engine.GetState()
	} else {
		state = s.session.Engine.Reset()
	}

	s.logger().WithField("config", s.session.Config.Name).Info("game reset")
	return state, nil
}

func (s *gameServiceImpl) configError(configName string, err error) error {
	if strings.Contains(err.Error(), "configuration not found") {
		available, listErr := s.configs.ListConfigs()
		if listErr == nil && len(available) > 0 {
			var ids []string
			for _, cfg := range available {
				ids = append(ids, cfg.ConfigID)
			}
			return fmt.Errorf("config '%s' not found. Available configs: %v: %w", configName, ids, err)
		}
	}
	return fmt.Errorf("failed to load config %s: %w", configName, err)
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.LastAccessedAt = time.Now()
	return s.session.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.Lock()
	history := s.session.Engine.GetMoveHistory()
	s.mu.Unlock()

	return paginate(history, opts), nil
}

func paginate(history []engine.MoveHistoryEntry, opts HistoryOptions) *HistoryResponse {
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	moves := []engine.MoveHistoryEntry{}
	if start < total {
		if opts.Order == "desc" {
			// most recent first
			for i := total - 1 - start; i >= total-end; i-- {
				moves = append(moves, history[i])
			}
		} else {
			moves = append(moves, history[start:end]...)
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

func moveEvents(outcome engine.MoveOutcome, now time.Time) []GameEvent {
	m := outcome.Move
	events := []GameEvent{{
		Type:      EventMove,
		Message:   fmt.Sprintf("%s played %s", outcome.Player, m),
		Timestamp: now,
		Player:    outcome.Player,
	}}

	board := m.Active.Board.Letter()
	switch {
	case outcome.Eliminated:
		events = append(events, GameEvent{
			Type:      EventElimination,
			Message:   fmt.Sprintf("%s stone pushed off board %s", outcome.Player.Opponent(), board),
			Timestamp: now,
			Player:    outcome.Player,
			Board:     board,
		})
	case outcome.Pushed:
		events = append(events, GameEvent{
			Type:      EventPush,
			Message:   fmt.Sprintf("%s stone pushed to %s%d", outcome.Player.Opponent(), board, m.Active.PushDestination+1),
			Timestamp: now,
			Player:    outcome.Player,
			Board:     board,
		})
	}

	if outcome.Winner != engine.Nobody {
		events = append(events, GameEvent{
			Type:      EventVictory,
			Message:   fmt.Sprintf("%s wins", outcome.Winner),
			Timestamp: now,
			Player:    outcome.Winner,
		})
	}
	return events
}
