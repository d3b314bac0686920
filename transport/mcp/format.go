package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/shobu/game/engine"
	"github.com/wricardo/shobu/game/notation"
	"github.com/wricardo/shobu/game/service"
)

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Setup: %s | To move: %s | Moves: %d\n\n", state.ConfigName, state.Turn, state.TotalMoves))
	result.WriteString(notation.RenderBoards(state.Boards))

	if state.GameOver() {
		result.WriteString(fmt.Sprintf("\nGAME OVER - winner: %s", state.Winner))
	}
	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}
	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder
	if result.Success {
		b.WriteString(fmt.Sprintf("✓ %s\n", result.Move))
		for _, event := range result.Events {
			if event.Type == service.EventMove {
				continue
			}
			b.WriteString(fmt.Sprintf("  [%s] %s\n", event.Type, event.Message))
		}
	} else {
		b.WriteString(fmt.Sprintf("✗ rejected (%s): %s\n", result.Rejection.Reason, result.Rejection.Detail))
	}
	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatMoves(moves []engine.Move, limit int, pushesOnly bool) string {
	var lines []string
	for _, m := range moves {
		if pushesOnly && !m.Active.Push {
			continue
		}
		line := m.String()
		switch {
		case m.Active.Push && !m.Active.PushDestination.OnBoard():
			line += "  (pushes off board)"
		case m.Active.Push:
			line += "  (push)"
		}
		lines = append(lines, line)
	}

	total := len(lines)
	if total == 0 {
		return "No legal moves."
	}
	if total > limit {
		lines = lines[:limit]
	}
	return fmt.Sprintf("Legal moves (%d of %d):\n%s", len(lines), total, strings.Join(lines, "\n"))
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) | Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, move := range history.Moves {
		extra := ""
		switch {
		case move.Eliminated:
			extra = " (elimination)"
		case move.Pushed:
			extra = " (push)"
		}
		if move.Winner != engine.Nobody {
			extra += fmt.Sprintf(" - %s wins", move.Winner)
		}
		result += fmt.Sprintf("%d. %s %s%s\n", move.MoveNumber, move.Player, move.Notation, extra)
	}
	return result
}
