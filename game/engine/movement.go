package engine

// applyLine slides the tiles of src toward index 0 and merges adjacent equal
// pairs, writing the result into dst. Each merge combines exactly two tiles;
// the merged tile is skipped so it can never merge again within the same
// pass. dst and src must have the same length and must not alias. Returns
// the score gained from merges and whether dst differs from src.
func applyLine(dst, src []int) (gained int, changed bool) {
	n := len(src)
	w := 0
	i := 0
	for i < n {
		if src[i] == 0 {
			i++
			continue
		}
		v := src[i]
		j := i + 1
		for j < n && src[j] == 0 {
			j++
		}
		if j < n && src[j] == v {
			dst[w] = v * 2
			gained += v * 2
			i = j + 1
		} else {
			dst[w] = v
			i = j
		}
		w++
	}
	for ; w < n; w++ {
		dst[w] = 0
	}
	for k := 0; k < n; k++ {
		if dst[k] != src[k] {
			changed = true
			break
		}
	}
	return gained, changed
}

// lineCount returns how many lines a slide in the given direction touches:
// one per row for horizontal moves, one per column for vertical moves.
func lineCount(grid [][]int, dir Direction) int {
	if dir == Left || dir == Right {
		return len(grid)
	}
	return len(grid[0])
}

// readLine copies line i of the grid into buf, ordered from the target edge
// of the slide inward, and returns the filled prefix of buf.
func readLine(grid [][]int, dir Direction, i int, buf []int) []int {
	switch dir {
	case Left:
		row := grid[i]
		line := buf[:len(row)]
		copy(line, row)
		return line
	case Right:
		row := grid[i]
		line := buf[:len(row)]
		for c := range row {
			line[c] = row[len(row)-1-c]
		}
		return line
	case Up:
		line := buf[:len(grid)]
		for r := range grid {
			line[r] = grid[r][i]
		}
		return line
	default: // Down
		line := buf[:len(grid)]
		for r := range grid {
			line[r] = grid[len(grid)-1-r][i]
		}
		return line
	}
}

// writeLine stores line back into line i of the grid, undoing the ordering
// applied by readLine.
func writeLine(grid [][]int, dir Direction, i int, line []int) {
	switch dir {
	case Left:
		copy(grid[i], line)
	case Right:
		row := grid[i]
		for c := range row {
			row[len(row)-1-c] = line[c]
		}
	case Up:
		for r := range grid {
			grid[r][i] = line[r]
		}
	default: // Down
		for r := range grid {
			grid[len(grid)-1-r][i] = line[r]
		}
	}
}

// slideGrid applies one slide to the whole grid, mutating it in place. The
// src and dst buffers must be at least max(rows, cols) long; they let the
// per-line work run without allocating. Returns the total merge gain and
// whether any cell changed.
func slideGrid(grid [][]int, dir Direction, src, dst []int) (gained int, moved bool) {
	n := lineCount(grid, dir)
	for i := 0; i < n; i++ {
		line := readLine(grid, dir, i, src)
		g, changed := applyLine(dst[:len(line)], line)
		gained += g
		if changed {
			writeLine(grid, dir, i, dst[:len(line)])
			moved = true
		}
	}
	return gained, moved
}

// HasMovesAvailable reports whether at least one direction would change the
// grid. Any empty cell means a slide can compact, so the scan returns early
// without comparing neighbors; a full grid is only playable if some cell
// equals its right or down neighbor.
func (gs *GameState) HasMovesAvailable() bool {
	grid := gs.Grid
	for _, row := range grid {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	rows := len(grid)
	cols := len(grid[0])
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols && grid[r][c] == grid[r][c+1] {
				return true
			}
			if r+1 < rows && grid[r][c] == grid[r+1][c] {
				return true
			}
		}
	}
	return false
}

// HasReached reports whether any tile has grown to the target value or past it
func (gs *GameState) HasReached(target int) bool {
	for _, row := range gs.Grid {
		for _, v := range row {
			if v >= target {
				return true
			}
		}
	}
	return false
}
