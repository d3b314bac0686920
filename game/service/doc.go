// Package service provides the business logic layer for the Shobu game.
//
// The service package implements:
//   - Ownership of a single game session
//   - Text and structured move submission
//   - Strategy-driven suggestions and moves
//   - Paginated move history
//   - Configuration loading and listing
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// ConfigManager manages named starting setups.
//
// Architecture:
//
// The service layer sits between the front ends (the interactive loop and the
// MCP tool server) and the game engine. Every call takes the service mutex, so
// moves are applied one at a time. A refused move is not an error: it comes
// back as a MoveResult with Success false and the Rejection filled in.
//
// Usage:
//
//	configMgr, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gameService, err := service.NewGameService(configMgr, strategy.NewRandom(1))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.MoveNotation(ctx, "a1 s1 c2")
package service
