package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow places single-cube "blocks" across row, skipping the given columns.
func fillRow(g Grid, row int, skip ...int) Grid {
	for col := range Columns {
		skipped := false
		for _, s := range skip {
			if s == col {
				skipped = true
			}
		}
		if skipped {
			continue
		}
		id := CubeID{Spawn: 1000 + row, Row: row, Col: col}
		g = SetBlockInArray(g, Block{newCube(id, row, col, ShapeI, false)})
	}
	return g
}

func single(spawn, row, col int) Cube {
	return newCube(CubeID{Spawn: spawn}, row, col, ShapeI, false)
}

func TestCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		index int
		count int
		size  int
		want  int
	}{
		{"origin", 0, Columns, CanvasWidth, 0},
		{"first column", 1, Columns, CanvasWidth, 30},
		{"last row", Rows - 1, Rows, CanvasHeight, 570},
		{"floors fractions", 1, 3, 100, 33},
		{"floors negative fractions", -1, 3, 100, -34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coordinate(tt.index, tt.count, tt.size))
		})
	}
}

func TestCubePixelsFollowGrid(t *testing.T) {
	c := single(1, 0, 0).At(3, 7)
	assert.Equal(t, 3, c.Row)
	assert.Equal(t, 7, c.Col)
	assert.Equal(t, 7*CubeSize, c.X)
	assert.Equal(t, 3*CubeSize, c.Y)

	moved := c.Offset(1, -1)
	assert.Equal(t, 4*CubeSize, moved.Y)
	assert.Equal(t, 6*CubeSize, moved.X)
}

func TestBoundaryPredicates(t *testing.T) {
	var g Grid
	tests := []struct {
		name     string
		row, col int
		rowOut   bool
		colOut   bool
	}{
		{"inside", 5, 5, false, false},
		{"floor row", Rows - 1, 0, true, false},
		{"above grid", -1, 0, true, false},
		{"left of grid", 0, -1, false, true},
		{"last column", 0, Columns - 1, false, true},
		{"second to last column", 0, Columns - 2, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := single(1, tt.row, tt.col)
			assert.Equal(t, tt.rowOut, ExceedsRowBoundary(g, c))
			assert.Equal(t, tt.colOut, ExceedsColumnBoundary(g, c))
		})
	}
}

func TestMovementBlockers(t *testing.T) {
	var g Grid
	g = SetBlockInArray(g, Block{single(1, 6, 4), single(1, 5, 3), single(1, 5, 5)})
	c := single(2, 5, 4)

	assert.True(t, CannotMoveDown(g, c))
	assert.True(t, CannotMoveLeft(g, c))
	assert.True(t, CannotMoveRight(g, c))

	free := single(2, 10, 4)
	assert.False(t, CannotMoveDown(g, free))
	assert.False(t, CannotMoveLeft(g, free))
	assert.False(t, CannotMoveRight(g, free))

	assert.True(t, CannotMoveDown(g, single(2, Rows-1, 0)))
	assert.True(t, CannotMoveLeft(g, single(2, 0, 0)))
	assert.True(t, CannotMoveRight(g, single(2, 0, Columns-1)))
}

func TestCollidesAnyCubeAnyPredicate(t *testing.T) {
	var g Grid
	b := Block{single(1, 3, 3), single(1, Rows-1, 3)}
	assert.True(t, Collides(g, b, CannotMoveLeft, CannotMoveDown))
	assert.False(t, Collides(g, b, CannotMoveLeft))
	assert.False(t, Collides(g, b))
}

func TestIsColumnFilled(t *testing.T) {
	var g Grid
	assert.False(t, IsColumnFilled(g))
	g = SetBlockInArray(g, Block{single(1, 1, 3)})
	assert.False(t, IsColumnFilled(g))
	g = SetBlockInArray(g, Block{single(1, 0, 9)})
	assert.True(t, IsColumnFilled(g))
}

func TestSetBlockInArrayCopies(t *testing.T) {
	var g Grid
	next := SetBlockInArray(g, Block{single(1, 2, 2)})
	assert.False(t, g.Occupied(2, 2), "original grid must not change")
	assert.True(t, next.Occupied(2, 2))
	assert.Len(t, next.Cubes(), 1)
}

func TestGetDeletingRows(t *testing.T) {
	var g Grid
	g = fillRow(g, 19)
	g = fillRow(g, 18, 4)
	g = fillRow(g, 17)

	got := GetDeletingRows(g, []int{19, 18, 19, 17})
	assert.Equal(t, []int{17, 19}, got)
	assert.Empty(t, GetDeletingRows(g, []int{18, 5}))
}

func TestGetRemovedCubes(t *testing.T) {
	var g Grid
	g = fillRow(g, 19)
	g = SetBlockInArray(g, Block{single(1, 10, 0)})

	removed := GetRemovedCubes(g, []int{19})
	require.Len(t, removed, Columns)
	for _, c := range removed {
		assert.Equal(t, 19, c.Row)
	}
}

func TestRemoveRowsAndShiftDown(t *testing.T) {
	var g Grid
	g = fillRow(g, 19)
	g = fillRow(g, 18, 0)
	g = fillRow(g, 17)
	g = SetBlockInArray(g, Block{single(1, 15, 2), single(1, 16, 3)})

	next := RemoveRowsAndShiftDown(g, []int{17, 19})

	// Row 18 sits below the topmost removed row and stays in place.
	for col := 1; col < Columns; col++ {
		assert.True(t, next.Occupied(18, col), "col %d", col)
	}
	assert.False(t, next.Occupied(18, 0))
	// Cubes above row 17 fall by two rows.
	require.True(t, next.Occupied(17, 2))
	assert.Equal(t, 17*CubeSize, next[17][2].Y)
	// Row 18 col 3 is kept by the stationary cube.
	assert.Equal(t, 1018, next[18][3].ID.Spawn)
	assert.False(t, next.Occupied(19, 5))
	assert.False(t, next.Occupied(15, 2))
}

func TestRemoveRowsNoRows(t *testing.T) {
	var g Grid
	g = fillRow(g, 19, 3)
	assert.Equal(t, g, RemoveRowsAndShiftDown(g, nil))
}

func TestTouchedRowsDeduplicates(t *testing.T) {
	b := CreateBlock(ShapeT, 8)
	assert.Equal(t, []int{0, 1}, TouchedRows(b))
}

func TestGridFind(t *testing.T) {
	var g Grid
	g = SetBlockInArray(g, Block{single(7, 4, 4), single(9, 6, 1)})
	c, ok := g.Find(func(c Cube) bool { return c.ID.Spawn == 9 })
	require.True(t, ok)
	assert.Equal(t, 6, c.Row)

	_, ok = g.Find(func(c Cube) bool { return c.ID.Spawn == 3 })
	assert.False(t, ok)
}
