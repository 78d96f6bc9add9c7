// Package engine implements the Tetris state machine.
// Every transition is a pure function from State to State: nothing here
// blocks, allocates shared state, or returns an error.
package engine

// Canvas and grid dimensions. The grid size is derived from the canvas
// divided by the cube size and never changes during play.
const (
	CanvasWidth  = 300
	CanvasHeight = 600
	CubeSize     = 30

	Columns = CanvasWidth / CubeSize
	Rows    = CanvasHeight / CubeSize
)

// Timing constants. TickRate is the external tick interval in milliseconds;
// speeds are measured in ticks between gravity steps.
const (
	TickRate     = 10
	InitialSpeed = 100
	MaxSpeed     = 10
	SpeedStep    = 10
)

// TetriminoSize is the number of cubes in a full block.
const TetriminoSize = 4

// DefaultShapeIndex is the fallback position in the shape list for
// out-of-range random indexes.
const DefaultShapeIndex = 3
