package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/shobu/game/service"
)

// Server exposes the game service as MCP tools
type Server struct {
	svc       service.GameService
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers every tool
func NewServer(svc service.GameService, version string) *Server {
	s := &Server{svc: svc}
	s.mcpServer = server.NewMCPServer(
		"Shobu",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Shobu - MCP Interface

You are playing Shobu on four 4x4 boards against the built-in rules engine.

AVAILABLE TOOLS:
- game_state: Show the boards, the player to move and the winner
- move: Play a move in notation, e.g. "a1 s1 c2"
- legal_moves: List legal moves for the player to move
- suggest_move: Ask the configured strategy for a move without playing it
- play_strategy: Let the configured strategy play for the side to move
- reset_game: Start over, optionally with another setup
- move_history: View past moves
- list_setups: List available starting setups
- game_instructions: Rules and notation

NOTE: The 'intent' parameter on move serves as rubber duck debugging - explain your reasoning!`),
	)

	s.registerTools()
	return s
}

// GetMCPServer returns the underlying server, e.g. for server.ServeStdio
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio blocks serving MCP over stdin and stdout
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	noArgs := mcp.ToolInputSchema{Type: "object", Properties: map[string]interface{}{}}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current boards, side to move and winner",
		InputSchema: noArgs,
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Play a move for the side to move. Notation: <board><cell> <dir><len> <board><cell>, e.g. a1 s1 c2",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"move": map[string]interface{}{
					"type":        "string",
					"description": "Move in notation, e.g. \"a1 s1 c2\"",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"move"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List legal moves for the side to move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of moves to list (default 50)",
				},
				"pushes_only": map[string]interface{}{
					"type":        "boolean",
					"description": "Only list moves that push a stone",
				},
			},
		},
	}, s.handleLegalMoves)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "suggest_move",
		Description: "Ask the configured strategy for a move without playing it",
		InputSchema: noArgs,
	}, s.handleSuggest)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "play_strategy",
		Description: "Let the configured strategy play one move for the side to move",
		InputSchema: noArgs,
	}, s.handlePlayStrategy)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game, optionally switching setup",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"setup": map[string]interface{}{
					"type":        "string",
					"description": "Setup ID from list_setups (optional, keeps the current one)",
				},
			},
		},
	}, s.handleReset)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get the moves played since the last reset",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (default 1)",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Moves per page (default 20, max 100)",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Sort order (default desc)",
				},
			},
		},
	}, s.handleMoveHistory)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_setups",
		Description: "List available starting setups",
		InputSchema: noArgs,
	}, s.handleListSetups)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules of the game and the move notation",
		InputSchema: noArgs,
	}, s.handleGameInstructions)
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.svc.GetGameState(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	text, _ := args["move"].(string)
	if text == "" {
		return mcp.NewToolResultError("move is required, e.g. \"a1 s1 c2\""), nil
	}

	result, err := s.svc.MoveNotation(ctx, text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatMoveResult(result)), nil
}

func (s *Server) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	limit := 50
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = int(l)
	}
	pushesOnly, _ := args["pushes_only"].(bool)

	moves, err := s.svc.LegalMoves(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatMoves(moves, limit, pushesOnly)), nil
}

func (s *Server) handleSuggest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	move, err := s.svc.Suggest(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Suggested move: %s", move)), nil
}

func (s *Server) handlePlayStrategy(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.svc.PlayStrategy(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatMoveResult(result)), nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	setup, _ := arguments(request)["setup"].(string)
	state, err := s.svc.Reset(ctx, setup)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("Game reset.\n\n" + formatGameState(state)), nil
}

func (s *Server) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	var opts service.HistoryOptions
	if page, ok := args["page"].(float64); ok {
		opts.Page = int(page)
	}
	if limit, ok := args["limit"].(float64); ok {
		opts.Limit = int(limit)
	}
	opts.Order, _ = args["order"].(string)

	history, err := s.svc.GetMoveHistory(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatHistory(history)), nil
}

func (s *Server) handleListSetups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configs, err := s.svc.ListConfigs(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Setups:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Stones: %d black, %d white\n\n",
			config.ConfigID, config.Name, config.Description, config.BlackStones, config.WhiteStones)
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

const instructions = `Shobu - Rules and Notation

BOARDS:
Four 4x4 boards, a b c d. Black (1) owns a and b, White (2) owns c and d.
a and d are light, b and c are dark. Cells are numbered 1-16 left to right,
top to bottom:

   1  2  3  4
   5  6  7  8
   9 10 11 12
  13 14 15 16

A TURN:
1. Passive move: on one of YOUR home boards, move one of your stones 1 or 2
   cells in any of the 8 directions. It may not touch or jump any stone.
2. Active move: on a board of the OTHER color, move one of your stones the
   same direction and distance. It may push a single opposing stone one cell
   further. Pushing your own stone, or two stones in a row, is illegal.
   A stone pushed off the edge is removed from the game.

WINNING:
Remove all opposing stones from any one board.

NOTATION:
<board><cell> <direction><length> <board><cell>
  a1 s1 c2    Black: a1 south 1 on board a, then c2 south 1 on board c
Directions: n ne e se s sw w nw`
