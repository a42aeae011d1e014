package engine

// CountEmptyCells counts the cells holding no tile
func CountEmptyCells(grid [][]int) int {
	count := 0
	for _, row := range grid {
		for _, v := range row {
			if v == 0 {
				count++
			}
		}
	}
	return count
}

// CountTiles counts the non-empty cells
func CountTiles(grid [][]int) int {
	count := 0
	for _, row := range grid {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// HighestTile returns the largest tile value on the grid, 0 for an empty board
func HighestTile(grid [][]int) int {
	highest := 0
	for _, row := range grid {
		for _, v := range row {
			if v > highest {
				highest = v
			}
		}
	}
	return highest
}

// TileSum returns the sum of all tile values. Merges conserve this sum, so
// across one effective move it grows by exactly the spawned tile's value.
func TileSum(grid [][]int) int {
	sum := 0
	for _, row := range grid {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// CloneGrid returns a deep copy of the grid
func CloneGrid(grid [][]int) [][]int {
	clone := make([][]int, len(grid))
	for i, row := range grid {
		clone[i] = make([]int, len(row))
		copy(clone[i], row)
	}
	return clone
}

// GridsEqual reports whether two grids have identical dimensions and cells
func GridsEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
