package engine

import "fmt"

// Direction represents one of the four slide directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all slide directions in a stable order
var Directions = [4]Direction{Up, Down, Left, Right}

const (
	// Validation constants
	MinGridDimension = 2
	MaxGridDimension = 16
	MinWinTile       = 8

	// Default rules
	DefaultRows         = 4
	DefaultCols         = 4
	DefaultInitialTiles = 2
	DefaultFourChance   = 0.1
	DefaultWinTile      = 2048
)

// String returns the lowercase direction name used at service boundaries
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name ("up", "down", "left", "right")
// into a Direction. Matching is exact and lowercase.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// GameStatus describes where a session is in its lifecycle. Won is a
// milestone, not a terminal state; a won game keeps accepting moves until
// the board locks up.
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusOver       GameStatus = "over"
)

// GameConfig represents the game rules loaded from a preset file
type GameConfig struct {
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description" yaml:"description"`
	Rows         int     `json:"rows" yaml:"rows"`
	Cols         int     `json:"cols" yaml:"cols"`
	InitialTiles int     `json:"initial_tiles" yaml:"initial_tiles"`
	FourChance   float64 `json:"four_chance" yaml:"four_chance"`
	WinTile      int     `json:"win_tile" yaml:"win_tile"`
}

// GameState represents the complete state of one game session. Grid cells
// hold 0 for empty or a power-of-two tile value.
type GameState struct {
	Grid       [][]int `json:"grid"`
	Score      int     `json:"score"`
	MoveCount  int     `json:"move_count"`
	GameOver   bool    `json:"game_over"`
	Won        bool    `json:"won"`
	ConfigName string  `json:"config_name"`
}

// Status derives the lifecycle state. A locked board reports StatusOver
// even when the win tile was reached earlier.
func (gs *GameState) Status() GameStatus {
	if gs.GameOver {
		return StatusOver
	}
	if gs.Won {
		return StatusWon
	}
	return StatusInProgress
}
