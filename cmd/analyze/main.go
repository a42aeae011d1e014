// Command analyze prints quick, human-readable heuristics about board preset
// files in the project's configs directory. It summarizes dimensions, spawn
// settings, the estimated number of spawns needed to build the winning tile,
// and highlights boards where the win tile leaves little or no headroom.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AnalysisPreset is a light struct for reading preset files used by analysis.
type AnalysisPreset struct {
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description" yaml:"description"`
	Rows         int     `json:"rows" yaml:"rows"`
	Cols         int     `json:"cols" yaml:"cols"`
	InitialTiles int     `json:"initial_tiles" yaml:"initial_tiles"`
	FourChance   float64 `json:"four_chance" yaml:"four_chance"`
	WinTile      int     `json:"win_tile" yaml:"win_tile"`
}

func main() {
	presets := []string{
		"classic.json",
		"lucky.yaml",
		"marathon.json",
	}

	for _, presetFile := range presets {
		fmt.Printf("\n=== Analyzing %s ===\n", presetFile)
		analyzePreset(filepath.Join("configs", presetFile))
	}
}

func analyzePreset(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var preset AnalysisPreset
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &preset); err != nil {
			fmt.Printf("Error parsing YAML: %v\n", err)
			return
		}
	default:
		if err := json.Unmarshal(data, &preset); err != nil {
			fmt.Printf("Error parsing JSON: %v\n", err)
			return
		}
	}

	cells := preset.Rows * preset.Cols
	fmt.Printf("Name: %s\n", preset.Name)
	fmt.Printf("Grid: %d x %d (%d cells)\n", preset.Rows, preset.Cols, cells)
	if cells > 0 {
		fmt.Printf("Initial Tiles: %d (%.0f%% full at start)\n",
			preset.InitialTiles, float64(preset.InitialTiles)/float64(cells)*100)
	} else {
		fmt.Printf("Initial Tiles: %d\n", preset.InitialTiles)
	}
	fmt.Printf("Four Chance: %.0f%%\n", preset.FourChance*100)

	if preset.WinTile <= 0 {
		fmt.Printf("⚠️  CRITICAL: win_tile is missing or not positive!\n")
		return
	}

	exponent := tileExponent(preset.WinTile)
	fmt.Printf("Win Tile: %d (2^%d)\n", preset.WinTile, exponent)

	// Merges conserve total tile value, so the spawns needed to build the win
	// tile sum to at least its value
	avgSpawnValue := 2 + 2*preset.FourChance
	estimatedSpawns := int(float64(preset.WinTile) / avgSpawnValue)
	fmt.Printf("Estimated spawns to win: ~%d (average spawn value %.1f)\n",
		estimatedSpawns, avgSpawnValue)

	// Headroom analysis - how close the win tile sits to the board's ceiling
	maxExponent := cells
	if preset.FourChance > 0 {
		maxExponent++
	}
	headroom := maxExponent - exponent

	switch {
	case headroom < 0:
		fmt.Printf("⚠️  CRITICAL: win tile 2^%d cannot be built, this board caps at 2^%d!\n",
			exponent, maxExponent)
	case headroom <= 2:
		fmt.Printf("⚠️  WARNING: only %d doublings of headroom, winning requires near-perfect play\n",
			headroom)
	default:
		fmt.Printf("✅ Comfortable headroom: board caps at 2^%d, win needs 2^%d\n",
			maxExponent, exponent)
	}

	// Starting density check
	if cells > 0 && preset.InitialTiles*2 > cells {
		fmt.Printf("⚠️  WARNING: board starts more than half full, early game will be cramped\n")
	} else {
		fmt.Printf("✅ Starting density leaves room to maneuver\n")
	}
}

// tileExponent returns e where v == 2^e, assuming v is a positive power of two.
func tileExponent(v int) int {
	e := 0
	for v > 1 {
		v >>= 1
		e++
	}
	return e
}
