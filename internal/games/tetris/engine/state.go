package engine

// State is one immutable snapshot of a game. Transitions return a new
// State and never modify the one they were given.
type State struct {
	GameEnd     bool
	ActiveBlock Block
	Grid        Grid
	// ShapePreview is the shape that spawns at the next lock.
	ShapePreview Shape
	// RandomShape is the most recent GenerateBlock pick. It becomes the
	// preview once the current block locks.
	RandomShape Shape
	// ClearBlocks lists cubes the renderer must remove.
	ClearBlocks []Cube
	Score       int
	HighScore   int
	Level       int
	ObjCount    int
}

// Initial block parameters.
const (
	initialSpawn        = TetriminoSize
	initialActiveShape  = ShapeO
	initialPreviewShape = ShapeT
	initialRandomShape  = ShapeJ
)

// InitialState returns a fresh game with an empty grid.
func InitialState() State {
	return State{
		ActiveBlock:  CreateBlock(initialActiveShape, initialSpawn),
		ShapePreview: initialPreviewShape,
		RandomShape:  initialRandomShape,
		ObjCount:     initialSpawn,
	}
}

// WithHighScore returns a copy of s carrying a previously recorded high score.
func (s State) WithHighScore(high int) State {
	if high > s.HighScore {
		s.HighScore = high
	}
	return s
}

// Speed returns the number of ticks between gravity steps at level.
func Speed(level int) int {
	return max(InitialSpeed-level*SpeedStep, MaxSpeed)
}

// levelFor returns the level reached at score.
func levelFor(score int) int {
	return score / Columns
}
