package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidDimension reports a construction request below the playable minimum
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	HasWon() bool
	HasReached(target int) bool
	GetScore() int
	GetMoveCount() int
	GetGrid() [][]int
	GetHighestTile() int

	// Movement operations
	Move(dir Direction) bool
	CanMove(dir Direction) bool
	GetPossibleMoves() []Direction

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error
}

// GameEngine implements the Engine interface. It is not safe for concurrent
// use; a session is owned and driven by exactly one caller, and embeddings
// with multiple sessions hold one engine per session.
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    *rand.Rand

	// scratch buffers reused by every slide so the hot path stays
	// allocation free
	lineSrc  []int
	lineDst  []int
	emptyBuf []int
}

// NewEngine creates a new game engine with default rules on a rows x cols board
func NewEngine(rows, cols int) (*GameEngine, error) {
	config := DefaultGameConfig()
	config.Rows = rows
	config.Cols = cols
	return NewEngineFromConfig(config)
}

// NewEngineFromConfig creates a new game engine with the provided configuration
func NewEngineFromConfig(config *GameConfig) (*GameEngine, error) {
	return NewEngineWithRand(config, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand creates a new game engine with an injected random source,
// so spawn positions and values are reproducible from the seed
func NewEngineWithRand(config *GameConfig, rng *rand.Rand) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	lineLen := config.Rows
	if config.Cols > lineLen {
		lineLen = config.Cols
	}

	engine := &GameEngine{
		config:   config,
		rng:      rng,
		lineSrc:  make([]int, lineLen),
		lineDst:  make([]int, lineLen),
		emptyBuf: make([]int, 0, config.Rows*config.Cols),
	}
	engine.state = InitGameStateFromConfig(config)
	engine.seedTiles()

	return engine, nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState replaces the game state, used by tests and embeddings to install
// a fixed board. The grid must be rectangular and at least the playable
// minimum in both dimensions. Terminal status is recomputed from the grid.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if len(state.Grid) < MinGridDimension {
		return fmt.Errorf("%w: state grid has %d rows", ErrInvalidDimension, len(state.Grid))
	}
	cols := len(state.Grid[0])
	if cols < MinGridDimension {
		return fmt.Errorf("%w: state grid has %d cols", ErrInvalidDimension, cols)
	}
	for i, row := range state.Grid {
		if len(row) != cols {
			return fmt.Errorf("state grid is not rectangular: row %d has %d cols, want %d", i, len(row), cols)
		}
	}

	e.state = state
	e.state.GameOver = !state.HasMovesAvailable()
	e.resizeScratch(len(state.Grid), cols)
	return nil
}

// Reset reinitializes the game: empty board, fresh seed tiles, zero score
func (e *GameEngine) Reset() *GameState {
	e.state = InitGameStateFromConfig(e.config)
	e.seedTiles()
	return e.state
}

// IsGameOver reports whether no direction has an effective move left
func (e *GameEngine) IsGameOver() bool {
	return !e.state.HasMovesAvailable()
}

// HasWon reports whether the win tile was reached at any point this game
func (e *GameEngine) HasWon() bool {
	return e.state.Won
}

// HasReached reports whether any tile holds the target value or more
func (e *GameEngine) HasReached(target int) bool {
	return e.state.HasReached(target)
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// GetMoveCount returns how many effective moves were made this game
func (e *GameEngine) GetMoveCount() int {
	return e.state.MoveCount
}

// GetGrid returns the live tile matrix for rendering. Callers must treat it
// as read-only.
func (e *GameEngine) GetGrid() [][]int {
	return e.state.Grid
}

// GetHighestTile returns the largest tile value on the board
func (e *GameEngine) GetHighestTile() int {
	return HighestTile(e.state.Grid)
}

// Move slides all tiles in the given direction. It reports whether the move
// was effective: an effective move merges or shifts at least one tile, adds
// any merge gains to the score, and spawns exactly one new tile. A no-op
// move leaves the grid untouched and spawns nothing.
func (e *GameEngine) Move(dir Direction) bool {
	if e.state.GameOver {
		return false
	}

	gained, moved := slideGrid(e.state.Grid, dir, e.lineSrc, e.lineDst)
	if !moved {
		return false
	}

	e.state.Score += gained
	e.state.MoveCount++
	e.spawnTile()

	if !e.state.Won && e.state.HasReached(e.config.WinTile) {
		e.state.Won = true
	}
	if !e.state.HasMovesAvailable() {
		e.state.GameOver = true
	}

	return true
}

// CanMove reports whether a slide in the given direction would change the
// grid, without mutating it
func (e *GameEngine) CanMove(dir Direction) bool {
	if e.state.GameOver {
		return false
	}

	n := lineCount(e.state.Grid, dir)
	for i := 0; i < n; i++ {
		line := readLine(e.state.Grid, dir, i, e.lineSrc)
		if _, changed := applyLine(e.lineDst[:len(line)], line); changed {
			return true
		}
	}
	return false
}

// GetPossibleMoves returns all directions with an effective move available
func (e *GameEngine) GetPossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig installs a new game configuration and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.resizeScratch(config.Rows, config.Cols)
	e.state = InitGameStateFromConfig(config)
	e.seedTiles()
	return nil
}

// seedTiles spawns the configured number of starting tiles onto the board
func (e *GameEngine) seedTiles() {
	for i := 0; i < e.config.InitialTiles; i++ {
		e.spawnTile()
	}
}

// spawnTile places one tile into a uniformly random empty cell: 2 with the
// complementary probability, 4 with the configured four-chance. A full board
// is a silent no-op.
func (e *GameEngine) spawnTile() {
	grid := e.state.Grid
	cols := len(grid[0])

	empties := e.emptyBuf[:0]
	for r, row := range grid {
		for c, v := range row {
			if v == 0 {
				empties = append(empties, r*cols+c)
			}
		}
	}
	if len(empties) == 0 {
		return
	}

	idx := empties[e.rng.Intn(len(empties))]
	value := 2
	if e.rng.Float64() < e.config.FourChance {
		value = 4
	}
	grid[idx/cols][idx%cols] = value
}

// resizeScratch grows the reusable line and empty-cell buffers to fit a
// rows x cols board
func (e *GameEngine) resizeScratch(rows, cols int) {
	lineLen := rows
	if cols > lineLen {
		lineLen = cols
	}
	if len(e.lineSrc) < lineLen {
		e.lineSrc = make([]int, lineLen)
		e.lineDst = make([]int, lineLen)
	}
	if cap(e.emptyBuf) < rows*cols {
		e.emptyBuf = make([]int, 0, rows*cols)
	}
}
