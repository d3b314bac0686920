// Package mcp provides a Model Context Protocol server for the Shobu game.
//
// The server lets an AI agent take a seat at the table: it can read the
// boards, play moves in text notation, ask the configured strategy for a
// suggestion, and restart with another setup. Tools call the game service
// in-process and the server speaks MCP over stdio.
//
// MCP Tools:
//   - game_state: Boards, side to move and winner
//   - move: Play a move in notation
//   - legal_moves: Legal moves for the side to move
//   - suggest_move: Strategy proposal without playing it
//   - play_strategy: Let the strategy play one move
//   - reset_game: Restart, optionally with another setup
//   - move_history: Paginated history
//   - list_setups: Available starting setups
//   - game_instructions: Rules and notation
//
// Usage:
//
//	srv := mcp.NewServer(gameService, "1.0.0")
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
//
// Rejected moves are reported as normal tool output with the reason; only
// unparsable input and infrastructure failures produce tool errors.
package mcp
