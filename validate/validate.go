// Command validate provides a small CLI that validates board preset files in
// the ../configs directory. It checks:
//   - JSON/YAML structure and required fields
//   - Board dimensions within the supported range
//   - Spawn settings (initial tile count and four-tile chance)
//   - Win tile is a power of two
//   - Achievability: a tile of the winning value can actually be built on a
//     board of the configured size
package main

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset mirrors the JSON/YAML schema for a board preset.
type Preset struct {
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description" yaml:"description"`
	Rows         int     `json:"rows" yaml:"rows"`
	Cols         int     `json:"cols" yaml:"cols"`
	InitialTiles int     `json:"initial_tiles" yaml:"initial_tiles"`
	FourChance   float64 `json:"four_chance" yaml:"four_chance"`
	WinTile      int     `json:"win_tile" yaml:"win_tile"`
}

// Validation bounds mirror the limits the game engine enforces.
const (
	minDimension = 2
	maxDimension = 16
	minWinTile   = 8
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single preset file. It performs
// structural checks, field range validation, and achievability analysis for
// the winning tile.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var preset Preset
	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &preset); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid YAML: %v", err))
			return result
		}
	default:
		if err := json.Unmarshal(data, &preset); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
			return result
		}
	}

	// Validate required fields
	if preset.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Name is required")
	}

	// Validate board dimensions
	if preset.Rows < minDimension || preset.Rows > maxDimension {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("rows must be between %d and %d, got %d", minDimension, maxDimension, preset.Rows))
	}
	if preset.Cols < minDimension || preset.Cols > maxDimension {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("cols must be between %d and %d, got %d", minDimension, maxDimension, preset.Cols))
	}

	// Validate spawn settings
	cells := preset.Rows * preset.Cols
	if preset.InitialTiles < 1 || preset.InitialTiles > cells {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("initial_tiles must be between 1 and %d, got %d", cells, preset.InitialTiles))
	}
	if preset.FourChance < 0 || preset.FourChance > 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("four_chance must be between 0 and 1, got %g", preset.FourChance))
	}

	// Validate win condition
	if preset.WinTile < minWinTile || !isPowerOfTwo(preset.WinTile) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("win_tile must be a power of two >= %d, got %d", minWinTile, preset.WinTile))
	}

	// Achievability validation - check the winning tile can be built at all
	if result.Valid {
		achievability := validateAchievability(preset.Rows, preset.Cols, preset.WinTile, preset.FourChance)
		if !achievability.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, achievability.Errors...)
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", preset.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", preset.Rows, preset.Cols))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Initial tiles: %d", preset.InitialTiles))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Four chance: %g", preset.FourChance))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Win tile: %d", preset.WinTile))
	}

	return result
}

// validateAchievability checks that the winning tile can ever be built on a
// board with the given cell count. Every merge doubles a tile, so a board
// with n cells caps out at 2^n from two-spawns alone, one doubling higher
// when four-spawns can occur. The comparison runs on exponents so large
// boards don't overflow.
func validateAchievability(rows, cols, winTile int, fourChance float64) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	cells := rows * cols
	maxExponent := cells
	if fourChance > 0 {
		maxExponent++
	}

	// winTile is a validated power of two, so trailing zeros give its exponent
	exponent := bits.TrailingZeros(uint(winTile))

	if exponent > maxExponent {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Achievability failure: win_tile %d needs 2^%d but a %dx%d board caps at 2^%d", winTile, exponent, rows, cols, maxExponent))
		return result
	}

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Achievability: win_tile %d (2^%d) fits on a %d-cell board", winTile, exponent, cells))
	return result
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// main scans ../configs for preset files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(configDir, pattern))
		if err != nil {
			fmt.Printf("Error finding preset files: %v\n", err)
			os.Exit(1)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All presets are valid!")
	} else {
		fmt.Println("❌ Some presets have errors")
		os.Exit(1)
	}
}
