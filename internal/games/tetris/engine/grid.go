package engine

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Grid holds the placed cubes. A nil cell is empty.
// Grid is an array value, so assigning it copies every cell; the cubes it
// points at are never modified after placement.
type Grid [Rows][Columns]*Cube

// Block is the set of cubes that spawned together.
type Block []Cube

// Predicate reports whether a single cube is blocked against the grid.
type Predicate func(g Grid, c Cube) bool

// Occupied reports whether the cell at (row, col) holds a cube.
// Cells outside the grid are never occupied.
func (g Grid) Occupied(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return false
	}
	return g[row][col] != nil
}

// Cubes returns every placed cube in row-major order.
func (g Grid) Cubes() []Cube {
	var cubes []Cube
	for row := range Rows {
		for col := range Columns {
			if c := g[row][col]; c != nil {
				cubes = append(cubes, *c)
			}
		}
	}
	return cubes
}

// Find returns the first placed cube, in row-major order, matching fn.
func (g Grid) Find(fn func(Cube) bool) (Cube, bool) {
	for row := range Rows {
		for col := range Columns {
			if c := g[row][col]; c != nil && fn(*c) {
				return *c, true
			}
		}
	}
	return Cube{}, false
}

// ExceedsRowBoundary is true at or below the last row, or above the first.
// The bottom check uses Rows-1, so it fires together with CannotMoveDown
// on the floor row.
func ExceedsRowBoundary(_ Grid, c Cube) bool {
	return c.Row >= Rows-1 || c.Row < 0
}

// ExceedsColumnBoundary is true left of the first column or at or beyond
// the last column.
func ExceedsColumnBoundary(_ Grid, c Cube) bool {
	return c.Col < 0 || c.Col >= Columns-1
}

// Overlaps is true when the cube's own cell is already occupied.
func Overlaps(g Grid, c Cube) bool {
	return g.Occupied(c.Row, c.Col)
}

// CannotMoveDown is true on the floor row or above an occupied cell.
func CannotMoveDown(g Grid, c Cube) bool {
	return c.Row >= Rows-1 || g.Occupied(c.Row+1, c.Col)
}

// CannotMoveLeft is true on the first column or beside an occupied cell.
func CannotMoveLeft(g Grid, c Cube) bool {
	return c.Col <= 0 || g.Occupied(c.Row, c.Col-1)
}

// CannotMoveRight is true on the last column or beside an occupied cell.
func CannotMoveRight(g Grid, c Cube) bool {
	return c.Col >= Columns-1 || g.Occupied(c.Row, c.Col+1)
}

// Collides reports whether any cube of the block satisfies any predicate.
func Collides(g Grid, b Block, preds ...Predicate) bool {
	for _, c := range b {
		for _, p := range preds {
			if p(g, c) {
				return true
			}
		}
	}
	return false
}

// IsColumnFilled reports whether any cell of the top row is occupied.
func IsColumnFilled(g Grid) bool {
	for col := range Columns {
		if g[0][col] != nil {
			return true
		}
	}
	return false
}

// SetBlockInArray returns a copy of the grid with the block's cubes placed
// in their cells. Cubes outside the grid are dropped.
func SetBlockInArray(g Grid, b Block) Grid {
	next := g
	for _, c := range b {
		if c.Row < 0 || c.Row >= Rows || c.Col < 0 || c.Col >= Columns {
			continue
		}
		placed := c
		next[c.Row][c.Col] = &placed
	}
	return next
}

// TouchedRows returns the distinct rows covered by the block, ascending.
func TouchedRows(b Block) []int {
	rows := make([]int, 0, len(b))
	for _, c := range b {
		rows = append(rows, c.Row)
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

// GetDeletingRows returns the candidate rows in which every column is occupied.
func GetDeletingRows(g Grid, candidates []int) []int {
	rows := slices.Clone(candidates)
	slices.Sort(rows)
	rows = slices.Compact(rows)

	var full []int
	for _, row := range rows {
		if row < 0 || row >= Rows {
			continue
		}
		filled := true
		for col := range Columns {
			if g[row][col] == nil {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, row)
		}
	}
	return full
}

// GetRemovedCubes returns every placed cube lying in one of the rows.
func GetRemovedCubes(g Grid, rows []int) []Cube {
	var removed []Cube
	for _, c := range g.Cubes() {
		if slices.Contains(rows, c.Row) {
			removed = append(removed, c)
		}
	}
	return removed
}

// RemoveRowsAndShiftDown drops the given rows. Cubes above the topmost
// removed row fall by the number of removed rows; cubes below it stay put.
// If a falling cube lands on a cell kept by a stationary cube, the
// stationary cube keeps the cell.
func RemoveRowsAndShiftDown(g Grid, rows []int) Grid {
	if len(rows) == 0 {
		return g
	}
	top := slices.Min(rows)
	shift := len(rows)

	byCell := intmap.New[int, Cube](Rows * Columns)
	var falling []Cube
	for _, c := range g.Cubes() {
		switch {
		case slices.Contains(rows, c.Row):
			continue
		case c.Row < top:
			falling = append(falling, c.Offset(shift, 0))
		default:
			byCell.Put(cellKey(c.Row, c.Col), c)
		}
	}
	for _, c := range falling {
		if _, taken := byCell.Get(cellKey(c.Row, c.Col)); !taken {
			byCell.Put(cellKey(c.Row, c.Col), c)
		}
	}

	var next Grid
	for row := range Rows {
		for col := range Columns {
			if c, ok := byCell.Get(cellKey(row, col)); ok {
				next[row][col] = &c
			}
		}
	}
	return next
}

func cellKey(row, col int) int {
	return row*Columns + col
}
