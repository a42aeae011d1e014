package service

import (
	"time"

	"github.com/wricardo/merge2048/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Moved      bool              `json:"moved"`
	Direction  string            `json:"direction"`
	ScoreDelta int               `json:"score_delta"`
	GameState  *engine.GameState `json:"game_state"`
	Events     []GameEvent       `json:"events,omitempty"`
}

// GameEvent represents a notable occurrence during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // move|won|game_over
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ConfigInfo provides summary information about an available configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // Identifier to use when creating sessions
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	WinTile     int    `json:"win_tile"`
}
