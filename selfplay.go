package main

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/shobu/game/config"
	"github.com/wricardo/shobu/game/engine"
	"github.com/wricardo/shobu/game/strategy"
)

// matchStats totals the outcomes of a run of self-play games.
type matchStats struct {
	Games      int
	BlackWins  int
	WhiteWins  int
	Unfinished int
	TotalMoves int
}

func (s *matchStats) record(winner engine.Player, moves int) {
	s.Games++
	s.TotalMoves += moves
	switch winner {
	case engine.Black:
		s.BlackWins++
	case engine.White:
		s.WhiteWins++
	default:
		s.Unfinished++
	}
}

func selfPlayCommand() *cli.Command {
	return &cli.Command{
		Name:  "selfplay",
		Usage: "play strategies against each other and report the results",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "black", Value: "aggressive", Usage: "strategy playing Black"},
			&cli.StringFlag{Name: "white", Value: "random", Usage: "strategy playing White"},
			&cli.IntFlag{Name: "games", Value: 10, Usage: "number of games"},
			&cli.IntFlag{Name: "max-moves", Value: 300, Usage: "moves after which a game counts as unfinished"},
		},
		Action: runSelfPlay,
	}
}

func runSelfPlay(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}
	cfg := manager.GetDefault()
	if name := cmd.String("setup"); name != "" {
		if cfg, err = manager.LoadConfig(name); err != nil {
			return err
		}
	}

	seed := cmd.Int64("seed")
	black, err := strategy.ByName(cmd.String("black"), seed)
	if err != nil {
		return err
	}
	white, err := strategy.ByName(cmd.String("white"), seed+1)
	if err != nil {
		return err
	}

	var stats matchStats
	for game := 1; game <= cmd.Int("games"); game++ {
		winner, moves, err := playMatch(ctx, cfg, black, white, cmd.Int("max-moves"))
		if err != nil {
			return fmt.Errorf("game %d: %w", game, err)
		}
		log.WithFields(log.Fields{
			"game":   game,
			"winner": winner,
			"moves":  moves,
		}).Debug("self-play game finished")
		stats.record(winner, moves)
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "Setup: %s | %s (black) vs %s (white)\n", cfg.Name, black.Name(), white.Name())
	fmt.Fprintf(out, "Games: %d | Black wins: %d | White wins: %d | Unfinished: %d\n",
		stats.Games, stats.BlackWins, stats.WhiteWins, stats.Unfinished)
	if stats.Games > 0 {
		fmt.Fprintf(out, "Average length: %.1f moves\n", float64(stats.TotalMoves)/float64(stats.Games))
	}
	return nil
}

// playMatch plays one game from cfg. It returns engine.Nobody when the move
// cap is hit or the player to move has no legal move.
func playMatch(ctx context.Context, cfg *engine.GameConfig, black, white strategy.Strategy, maxMoves int) (engine.Player, int, error) {
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		return engine.Nobody, 0, err
	}

	players := map[engine.Player]strategy.Strategy{engine.Black: black, engine.White: white}
	for moves := 0; moves < maxMoves; moves++ {
		if err := ctx.Err(); err != nil {
			return engine.Nobody, moves, err
		}
		state := eng.GetState()
		if state.GameOver() {
			return state.Winner, moves, nil
		}

		move, err := players[state.Turn].ProposeMove(state.Boards, state.Turn)
		if errors.Is(err, strategy.ErrNoLegalMove) {
			return engine.Nobody, moves, nil
		}
		if err != nil {
			return engine.Nobody, moves, err
		}
		if _, err := eng.Move(move); err != nil {
			return engine.Nobody, moves, fmt.Errorf("%s proposed %s: %w", players[state.Turn].Name(), move, err)
		}
	}
	return eng.GetWinner(), maxMoves, nil
}
