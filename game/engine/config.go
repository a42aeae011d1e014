package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultGameConfig returns the standard rules: a 4x4 board, two seed tiles,
// a 10% chance of spawning a 4, and 2048 as the win tile
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:         "classic",
		Description:  "Standard 4x4 board, first to 2048 wins",
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		InitialTiles: DefaultInitialTiles,
		FourChance:   DefaultFourChance,
		WinTile:      DefaultWinTile,
	}
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	// Validate board dimensions
	if config.Rows < MinGridDimension || config.Rows > MaxGridDimension {
		return fmt.Errorf("config validation: %w: rows must be between %d and %d, got %d",
			ErrInvalidDimension, MinGridDimension, MaxGridDimension, config.Rows)
	}
	if config.Cols < MinGridDimension || config.Cols > MaxGridDimension {
		return fmt.Errorf("config validation: %w: cols must be between %d and %d, got %d",
			ErrInvalidDimension, MinGridDimension, MaxGridDimension, config.Cols)
	}

	// Validate spawn settings
	if config.InitialTiles < 1 || config.InitialTiles > config.Rows*config.Cols {
		return fmt.Errorf("config validation: initial_tiles must be between 1 and %d, got %d",
			config.Rows*config.Cols, config.InitialTiles)
	}
	if config.FourChance < 0 || config.FourChance > 1 {
		return fmt.Errorf("config validation: four_chance must be between 0 and 1, got %g", config.FourChance)
	}

	// Validate win condition
	if config.WinTile < MinWinTile || !isPowerOfTwo(config.WinTile) {
		return fmt.Errorf("config validation: win_tile must be a power of two >= %d, got %d",
			MinWinTile, config.WinTile)
	}

	return nil
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIGS_DIR environment variable for alternative preset directory
	configPath := filename
	if configsDir := os.Getenv("CONFIGS_DIR"); configsDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configsDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// InitGameStateFromConfig creates an all-empty game state sized by the
// provided configuration. Seed tiles are spawned by the engine, not here,
// so the random source stays in one place.
func InitGameStateFromConfig(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}

	grid := make([][]int, config.Rows)
	for i := range grid {
		grid[i] = make([]int, config.Cols)
	}

	return &GameState{
		Grid:       grid,
		Score:      0,
		MoveCount:  0,
		GameOver:   false,
		Won:        false,
		ConfigName: config.Name,
	}
}

// isPowerOfTwo reports whether v is a positive power of two
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
