// Package engine provides the core grid logic for the 2048 sliding-tile game.
//
// The engine package implements the game mechanics including:
//   - Per-line tile sliding and merging for the four directions
//   - Random tile spawning after effective moves
//   - Terminal (no-moves-left) detection with an empty-cell fast path
//   - Win detection against a configurable target tile
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState holds the tile matrix and the
// session's score and flags, while GameConfig defines the rules (board
// size, seed tiles, spawn distribution, win tile) loaded from preset files.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(4, 4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide all tiles left
//	moved := gameEngine.Move(engine.Left)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Every move slides all tiles toward one edge. Two tiles with equal values
// that collide merge into one tile holding their sum, at most once per tile
// per move. An effective move spawns one new tile (2 or 4) into a random
// empty cell. The game ends when the board is full and no two neighboring
// tiles are equal; reaching the win tile is a milestone and play continues.
//
// Determinism:
//
// The random source is injected at construction. NewEngineWithRand with a
// seeded rand.Rand replays the exact same spawn sequence, which the tests
// rely on; NewEngine and NewEngineFromConfig seed from the clock.
package engine
