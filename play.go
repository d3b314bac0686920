package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/shobu/game/engine"
	"github.com/wricardo/shobu/game/notation"
	"github.com/wricardo/shobu/game/service"
	"github.com/wricardo/shobu/transport/mcp"
)

const playHelp = `Commands:
  <move>             play a move, e.g. "a1 s1 c2" (passive square, vector, active square)
  read, board        show the boards
  moves              list legal moves
  hint               ask the strategy for a move
  ai                 let the strategy play the current turn
  history            show the last moves
  restart [setup]    start over, optionally from another setup
  help               show this help
  quit, q, :q        leave
`

func runPlay(ctx context.Context, cmd *cli.Command) error {
	auto, err := parseAuto(cmd.String("auto"))
	if err != nil {
		return err
	}
	svc, err := servicesFromFlags(cmd)
	if err != nil {
		return err
	}
	root := cmd.Root()
	return runREPL(ctx, svc, root.Reader, root.Writer, auto)
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	svc, err := servicesFromFlags(cmd)
	if err != nil {
		return err
	}
	log.Info("starting MCP stdio server")
	return mcp.NewServer(svc, Version).ServeStdio()
}

// parseAuto maps the --auto flag to the side the strategy plays.
func parseAuto(s string) (engine.Player, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return engine.Nobody, nil
	case "black", "1":
		return engine.Black, nil
	case "white", "2":
		return engine.White, nil
	}
	return engine.Nobody, fmt.Errorf("invalid --auto value %q: use black, white or none", s)
}

// runREPL reads commands from in until quit or end of input. When auto is a
// player, the service's strategy answers for that side after every move.
func runREPL(ctx context.Context, svc service.GameService, in io.Reader, out io.Writer, auto engine.Player) error {
	session, err := svc.GetSession(ctx)
	if err != nil {
		return err
	}
	if session.GameConfig != nil && session.GameConfig.Messages.Welcome != "" {
		fmt.Fprintln(out, session.GameConfig.Messages.Welcome)
	}
	fmt.Fprintln(out, "Type \"help\" for commands.")
	printState(out, session.GameState)

	if err := autoPlay(ctx, svc, out, auto); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "~> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(strings.ToLower(line))

		switch fields[0] {
		case "quit", "q", ":q":
			fmt.Fprintln(out, "exiting...")
			return nil
		case "help":
			fmt.Fprint(out, playHelp)
		case "read", "board":
			state, err := svc.GetGameState(ctx)
			if err != nil {
				return err
			}
			printState(out, state)
		case "restart", "reset":
			setup := ""
			if len(fields) > 1 {
				setup = fields[1]
			}
			state, err := svc.Reset(ctx, setup)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			printState(out, state)
			if err := autoPlay(ctx, svc, out, auto); err != nil {
				return err
			}
		case "moves":
			moves, err := svc.LegalMoves(ctx)
			if err != nil {
				return err
			}
			printMoves(out, moves)
		case "hint":
			move, err := svc.Suggest(ctx)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "hint: %s\n", move)
		case "ai":
			result, err := svc.PlayStrategy(ctx)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			printResult(out, result)
			if err := autoPlay(ctx, svc, out, auto); err != nil {
				return err
			}
		case "history":
			history, err := svc.GetMoveHistory(ctx, service.HistoryOptions{Limit: 10, Order: "desc"})
			if err != nil {
				return err
			}
			printHistory(out, history)
		default:
			result, err := svc.MoveNotation(ctx, line)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			printResult(out, result)
			if result.Success {
				if err := autoPlay(ctx, svc, out, auto); err != nil {
					return err
				}
			}
		}
	}
}

// autoPlay lets the strategy move while it is auto's turn and the game
// is still running.
func autoPlay(ctx context.Context, svc service.GameService, out io.Writer, auto engine.Player) error {
	if auto == engine.Nobody {
		return nil
	}
	for {
		state, err := svc.GetGameState(ctx)
		if err != nil {
			return err
		}
		if state.GameOver() || state.Turn != auto {
			return nil
		}
		result, err := svc.PlayStrategy(ctx)
		if err != nil {
			if errors.Is(err, service.ErrNoStrategy) {
				return err
			}
			fmt.Fprintf(out, "%s cannot move: %v\n", auto, err)
			return nil
		}
		fmt.Fprintf(out, "%s plays: ", auto)
		printResult(out, result)
		if !result.Success {
			return nil
		}
	}
}

func printState(out io.Writer, state *engine.GameState) {
	fmt.Fprintln(out)
	fmt.Fprint(out, notation.RenderBoards(state.Boards))
	if state.GameOver() {
		fmt.Fprintf(out, "game over: %s\n", state.Message)
		return
	}
	fmt.Fprintf(out, "%s to move\n", state.Turn)
}

func printResult(out io.Writer, result *service.MoveResult) {
	if !result.Success {
		fmt.Fprintf(out, "rejected (%s): %s\n", result.Rejection.Reason, result.Rejection.Detail)
		return
	}
	fmt.Fprintln(out, result.Move)
	for _, event := range result.Events {
		if event.Type == service.EventPush || event.Type == service.EventElimination {
			fmt.Fprintf(out, "  %s\n", event.Message)
		}
	}
	printState(out, result.GameState)
}

func printMoves(out io.Writer, moves []engine.Move) {
	if len(moves) == 0 {
		fmt.Fprintln(out, "no legal moves")
		return
	}
	for _, m := range moves {
		suffix := ""
		if m.Active.Push {
			suffix = " (push)"
		}
		fmt.Fprintf(out, "%s%s\n", m, suffix)
	}
	fmt.Fprintf(out, "%d legal moves\n", len(moves))
}

func printHistory(out io.Writer, history *service.HistoryResponse) {
	if history.TotalMoves == 0 {
		fmt.Fprintln(out, "no moves yet")
		return
	}
	for _, entry := range history.Moves {
		fmt.Fprintf(out, "%3d. %-5s %s\n", entry.MoveNumber, entry.Player, entry.Notation)
	}
}
