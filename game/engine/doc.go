// Package engine provides the rules of Shobu, played on four linked 4x4 boards.
//
// The engine package implements:
//   - Move geometry over the eight compass directions
//   - Legality checking for the passive and active legs of a turn
//   - Pushes and eliminations
//   - Win detection
//   - Setup loading and validation
//
// Core Types:
//
// Boards is a value snapshot of the four boards. Move pairs a passive leg on
// one of the mover's home boards with an active leg on a board of the other
// color. Resolve, Check, Apply and DetectWinner are pure functions over a
// snapshot; GameEngine sequences them for a single session and keeps the
// side to move, the winner and the move history.
//
// Usage:
//
//	gameEngine := engine.NewEngineWithDefaults()
//
//	move, err := engine.NewMove(0, 0, engine.South, 1, 2, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := gameEngine.Move(move)
//	if errors.Is(err, engine.ErrPassiveBlocked) {
//		// refused; the session is unchanged
//	}
//
// Game Rules:
//
// Black owns boards a and b, White owns c and d. Boards a and d are light,
// b and c are dark. Each turn a player moves one of their stones on a home
// board without touching any other stone, then repeats the same direction
// and distance with a stone on a board of the opposite color. The second
// move may push a single opposing stone one cell further; a stone pushed off
// the edge is removed. A player wins by clearing all opposing stones from
// any one board.
package engine
