package engine

import "fmt"

// CubeID uniquely identifies a cube for the lifetime of a process.
// Spawn is the object counter of the block the cube was created with,
// Row and Col are its local position inside the shape layout.
type CubeID struct {
	Spawn int
	Row   int
	Col   int
	Hash  uint32
}

// String returns a compact form used in logs and debug output.
func (id CubeID) String() string {
	return fmt.Sprintf("%d-%d-%d-%08x", id.Spawn, id.Row, id.Col, id.Hash)
}

// Cube is a single unit square. Cubes are values: moving a cube produces
// a new Cube, so a state snapshot never changes underneath its holder.
type Cube struct {
	ID     CubeID
	Row    int
	Col    int
	X      int
	Y      int
	Shape  Shape
	Center bool
}

// Coordinate converts a row or column index to a pixel position along an
// axis with dimensionCount cells spread over canvasSize pixels, rounding
// toward negative infinity. Integer arithmetic keeps exact cell edges.
func Coordinate(index, dimensionCount, canvasSize int) int {
	n := index * canvasSize
	q := n / dimensionCount
	if n%dimensionCount != 0 && (n < 0) != (dimensionCount < 0) {
		q--
	}
	return q
}

// newCube places a cube at (row, col) with pixel coordinates derived from them.
func newCube(id CubeID, row, col int, shape Shape, center bool) Cube {
	return Cube{
		ID:     id,
		Row:    row,
		Col:    col,
		X:      Coordinate(col, Columns, CanvasWidth),
		Y:      Coordinate(row, Rows, CanvasHeight),
		Shape:  shape,
		Center: center,
	}
}

// At returns a copy of the cube moved to (row, col). Pixel coordinates
// always follow the grid position.
func (c Cube) At(row, col int) Cube {
	return newCube(c.ID, row, col, c.Shape, c.Center)
}

// Offset returns a copy of the cube shifted by (dRow, dCol).
func (c Cube) Offset(dRow, dCol int) Cube {
	return c.At(c.Row+dRow, c.Col+dCol)
}
