package engine

import (
	"fmt"
	"slices"
)

// Action is a closed set of state transitions. The variants are
// GenerateBlock, Tick, Move, Rotate, Drop and Restart; Reduce switches over
// them exhaustively.
type Action interface {
	fmt.Stringer
	isAction()
}

// Rotation is the direction of a quarter turn.
type Rotation int

const (
	Clockwise Rotation = iota
	Anticlockwise
)

func (r Rotation) String() string {
	if r == Anticlockwise {
		return "anticlockwise"
	}
	return "clockwise"
}

// GenerateBlock stages the shape at Index as the next preview.
type GenerateBlock struct {
	Index int
}

// Tick advances gravity by one row, locking the block when it cannot fall.
type Tick struct {
	Elapsed int
}

// Move shifts the active block one column left (negative) or right (positive).
type Move struct {
	Direction int
}

// Rotate turns the active block a quarter turn about its pivot.
type Rotate struct {
	Direction Rotation
}

// Drop lowers the active block as far as it can fall without locking it.
type Drop struct{}

// Restart starts a new game after game over.
type Restart struct{}

func (GenerateBlock) isAction() {}
func (Tick) isAction()          {}
func (Move) isAction()          {}
func (Rotate) isAction()        {}
func (Drop) isAction()          {}
func (Restart) isAction()       {}

func (a GenerateBlock) String() string { return fmt.Sprintf("GenerateBlock(%d)", a.Index) }
func (a Tick) String() string          { return fmt.Sprintf("Tick(%d)", a.Elapsed) }
func (a Move) String() string          { return fmt.Sprintf("Move(%d)", a.Direction) }
func (a Rotate) String() string        { return fmt.Sprintf("Rotate(%s)", a.Direction) }
func (Drop) String() string            { return "Drop" }
func (Restart) String() string         { return "Restart" }

// Apply replaces the staged random shape.
func (a GenerateBlock) Apply(s State) State {
	if s.GameEnd {
		return s
	}
	s.RandomShape = ShapeAt(a.Index)
	return s
}

// Apply runs one gravity step, or locks the block when it cannot fall.
func (a Tick) Apply(s State) State {
	if s.GameEnd {
		return s
	}
	s.ClearBlocks = nil
	if Collides(s.Grid, s.ActiveBlock, ExceedsRowBoundary, CannotMoveDown) {
		return lock(s)
	}
	return fall(s)
}

// Apply shifts the block by one column unless an edge or cube is in the way.
func (a Move) Apply(s State) State {
	if s.GameEnd || a.Direction == 0 {
		return s
	}
	blocked, step := Predicate(CannotMoveRight), 1
	if a.Direction < 0 {
		blocked, step = CannotMoveLeft, -1
	}
	if Collides(s.Grid, s.ActiveBlock, blocked) {
		return s
	}
	s.ActiveBlock = s.ActiveBlock.Offset(0, step)
	return s
}

// Apply rotates about the pivot cube. Shapes without a pivot, and rotations
// that would overlap a cube or leave the grid, leave the state unchanged.
func (a Rotate) Apply(s State) State {
	if s.GameEnd {
		return s
	}
	pivot, ok := s.ActiveBlock.Pivot()
	if !ok {
		return s
	}

	rotated := make(Block, len(s.ActiveBlock))
	for i, c := range s.ActiveBlock {
		var row, col int
		if a.Direction == Anticlockwise {
			row = pivot.Row + pivot.Col - c.Col
			col = pivot.Col - pivot.Row + c.Row
		} else {
			row = pivot.Row - pivot.Col + c.Col
			col = pivot.Col + pivot.Row - c.Row
		}
		rotated[i] = c.At(row, col)
	}

	if Collides(s.Grid, rotated, Overlaps, ExceedsRowBoundary, ExceedsColumnBoundary) {
		return s
	}
	s.ActiveBlock = rotated
	return s
}

// Apply repeats the gravity step until the next step would lock.
// The loop is bounded by the grid height.
func (a Drop) Apply(s State) State {
	for range Rows {
		if s.GameEnd || Collides(s.Grid, s.ActiveBlock, ExceedsRowBoundary, CannotMoveDown) {
			break
		}
		s = fall(s)
	}
	return s
}

// Apply resets an ended game, keeping the high score and handing every
// visible cube to the renderer for removal.
func (a Restart) Apply(s State) State {
	if !s.GameEnd {
		return s
	}
	next := InitialState()
	next.HighScore = max(s.HighScore, s.Score)
	next.ObjCount = s.ObjCount + 2*TetriminoSize
	next.ActiveBlock = CreateBlock(s.RandomShape, next.ObjCount)
	next.ShapePreview = s.RandomShape
	next.ClearBlocks = append(s.Grid.Cubes(), s.ActiveBlock...)
	return next
}

// fall moves the active block down one row and ends the game if the top
// row of the grid is occupied.
func fall(s State) State {
	s.ActiveBlock = s.ActiveBlock.Offset(1, 0)
	s.GameEnd = IsColumnFilled(s.Grid)
	return s
}

// lock commits the active block to the grid, spawns the preview shape and
// clears any rows the block completed.
func lock(s State) State {
	grid := SetBlockInArray(s.Grid, s.ActiveBlock)
	spawn := TetriminoSize + s.ObjCount
	candidate := CreateBlock(s.ShapePreview, spawn)
	overlap := Collides(grid, candidate, Overlaps)
	deleting := GetDeletingRows(grid, TouchedRows(s.ActiveBlock))

	next := s
	next.Grid = grid
	next.ObjCount = spawn
	next.ShapePreview = s.RandomShape
	if !overlap {
		next.ActiveBlock = candidate
	}
	if len(deleting) > 0 {
		next = clearRows(next, deleting)
	}
	next.GameEnd = overlap || IsColumnFilled(next.Grid)
	return next
}

// clearRows removes full rows, scores them and queues their cubes for removal.
func clearRows(s State, rows []int) State {
	removed := GetRemovedCubes(s.Grid, rows)
	s.Score += Columns * len(rows)
	s.Level = levelFor(s.Score)
	s.Grid = RemoveRowsAndShiftDown(s.Grid, rows)
	s.ClearBlocks = append(slices.Clone(s.ClearBlocks), removed...)
	return s
}
