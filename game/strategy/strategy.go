// Package strategy provides move-proposing players that sit outside the rules
// engine. A Strategy only proposes; the engine still resolves and checks
// everything it is given.
package strategy

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/wricardo/shobu/game/engine"
)

// ErrNoLegalMove is returned when the player has nothing legal to play.
var ErrNoLegalMove = errors.New("no legal move available")

// ErrUnknownStrategy is returned by ByName for an unregistered name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy proposes one move for player in the given position.
type Strategy interface {
	Name() string
	ProposeMove(boards engine.Boards, player engine.Player) (engine.Move, error)
}

// Fixed always proposes the same move regardless of position.
type Fixed struct {
	Move engine.Move
}

// NewFixed returns the reference stub: c16 n1 d16.
func NewFixed() *Fixed {
	m, _ := engine.NewMove(2, 15, engine.North, 1, 3, 15)
	return &Fixed{Move: m}
}

func (f *Fixed) Name() string { return "fixed" }

func (f *Fixed) ProposeMove(engine.Boards, engine.Player) (engine.Move, error) {
	return f.Move, nil
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed, so games are reproducible.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) ProposeMove(boards engine.Boards, player engine.Player) (engine.Move, error) {
	moves := engine.LegalMoves(&boards, player)
	if len(moves) == 0 {
		return engine.Move{}, fmt.Errorf("%s: %w", player, ErrNoLegalMove)
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// Aggressive prefers moves that eliminate a stone, then pushes, and otherwise
// plays like Random.
type Aggressive struct {
	Random
}

// NewAggressive returns an Aggressive seeded with seed.
func NewAggressive(seed int64) *Aggressive {
	return &Aggressive{Random: *NewRandom(seed)}
}

func (a *Aggressive) Name() string { return "aggressive" }

func (a *Aggressive) ProposeMove(boards engine.Boards, player engine.Player) (engine.Move, error) {
	moves := engine.LegalMoves(&boards, player)
	if len(moves) == 0 {
		return engine.Move{}, fmt.Errorf("%s: %w", player, ErrNoLegalMove)
	}

	best, bestScore := []engine.Move{}, -1
	for _, m := range moves {
		score := scoreMove(boards, m, player)
		switch {
		case score > bestScore:
			best, bestScore = []engine.Move{m}, score
		case score == bestScore:
			best = append(best, m)
		}
	}
	return best[a.rng.Intn(len(best))], nil
}

func scoreMove(boards engine.Boards, m engine.Move, player engine.Player) int {
	next := engine.Apply(boards, m, player)
	if engine.HasWon(&next, player) {
		return 3
	}
	switch {
	case m.Active.Push && !m.Active.PushDestination.OnBoard():
		return 2
	case m.Active.Push:
		return 1
	}
	return 0
}

var registry = map[string]func(seed int64) Strategy{
	"fixed":      func(int64) Strategy { return NewFixed() },
	"random":     func(seed int64) Strategy { return NewRandom(seed) },
	"aggressive": func(seed int64) Strategy { return NewAggressive(seed) },
}

// ByName builds a registered strategy.
func ByName(name string, seed int64) (Strategy, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, Names())
	}
	return build(seed), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
