// Package config provides rule preset management for the 2048 game.
//
// The config package handles:
//   - Loading rule presets from JSON and YAML files
//   - Preset validation and verification
//   - Default preset management
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets are stored as JSON or YAML files in the configs directory. Each
// preset defines:
//   - Board dimensions (rows, cols)
//   - Spawn behavior (initial tile count, chance of spawning a 4)
//   - The win tile value
//
// Available Presets:
//
// The repository ships a few example rule sets:
//   - classic: standard 4x4 board, first to 2048 wins
//   - marathon: same board, the win tile pushed out to 4096
//   - lucky: a 4 spawns far more often than in classic rules
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific preset
//	gameConfig, err := manager.LoadConfig("marathon")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default preset
//	defaultConfig := manager.GetDefault()
//
//	// List available presets
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All presets are validated for:
//   - Board dimensions within the playable range
//   - A seed tile count that fits the board
//   - A four-chance between 0 and 1
//   - A win tile that is a power of two
package config
