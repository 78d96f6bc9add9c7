package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(b Block) []int {
	out := make([]int, len(b))
	for i, c := range b {
		out[i] = c.Row
	}
	return out
}

func TestInitialState(t *testing.T) {
	s := InitialState()
	assert.False(t, s.GameEnd)
	assert.Equal(t, ShapeT, s.ShapePreview)
	assert.Equal(t, ShapeJ, s.RandomShape)
	assert.Equal(t, TetriminoSize, s.ObjCount)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Level)
	assert.Empty(t, s.Grid.Cubes())
	require.Len(t, s.ActiveBlock, TetriminoSize)
	for _, c := range s.ActiveBlock {
		assert.Equal(t, ShapeO, c.Shape)
		assert.Equal(t, TetriminoSize, c.ID.Spawn)
	}
}

func TestTickGravity(t *testing.T) {
	before := InitialState()
	s := InitialState()

	next := Tick{}.Apply(s)

	require.Len(t, next.ActiveBlock, len(s.ActiveBlock))
	for i, c := range next.ActiveBlock {
		assert.Equal(t, s.ActiveBlock[i].Row+1, c.Row)
		assert.Equal(t, s.ActiveBlock[i].Col, c.Col)
		assert.Equal(t, c.Row*CubeSize, c.Y)
	}
	assert.Equal(t, s.Grid, next.Grid)
	assert.Equal(t, s.Score, next.Score)
	assert.False(t, next.GameEnd)
	assert.Equal(t, before, s, "input state must not change")
}

func TestReduceThrottlesTicks(t *testing.T) {
	s := InitialState()
	require.Equal(t, 100, Speed(s.Level))

	for elapsed := 1; elapsed < 100; elapsed++ {
		assert.Equal(t, s, Reduce(s, Tick{Elapsed: elapsed}), "elapsed %d", elapsed)
	}
	for _, elapsed := range []int{0, 100, 200} {
		next := Reduce(s, Tick{Elapsed: elapsed})
		assert.Equal(t, []int{1, 1, 2, 2}, rows(next.ActiveBlock), "elapsed %d", elapsed)
	}

	s.Level = 5
	assert.Equal(t, s, Reduce(s, Tick{Elapsed: 25}))
	assert.NotEqual(t, s, Reduce(s, Tick{Elapsed: 50}))
}

func TestSpeed(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 100},
		{1, 90},
		{5, 50},
		{9, 10},
		{12, MaxSpeed},
		{100, MaxSpeed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Speed(tt.level), "level %d", tt.level)
	}
}

func TestTickLocksAtFloor(t *testing.T) {
	s := Drop{}.Apply(InitialState())
	require.Equal(t, []int{Rows - 2, Rows - 2, Rows - 1, Rows - 1}, rows(s.ActiveBlock))

	next := Tick{}.Apply(s)

	for _, cell := range [][2]int{{18, 4}, {18, 5}, {19, 4}, {19, 5}} {
		assert.True(t, next.Grid.Occupied(cell[0], cell[1]), "cell %v", cell)
	}
	assert.Equal(t, CreateBlock(ShapeT, 2*TetriminoSize), next.ActiveBlock)
	assert.Equal(t, 2*TetriminoSize, next.ObjCount)
	assert.Equal(t, ShapeJ, next.ShapePreview)
	assert.False(t, next.GameEnd)
	assert.Zero(t, next.Score)
	assert.Empty(t, next.ClearBlocks)
}

func TestFullRowClear(t *testing.T) {
	s := InitialState()
	s.Grid = fillRow(s.Grid, Rows-1, Columns-1)
	s.ActiveBlock = Block{single(50, Rows-1, Columns-1)}

	next := Reduce(s, Tick{Elapsed: 0})

	for col := range Columns {
		assert.False(t, next.Grid.Occupied(Rows-1, col), "col %d", col)
	}
	assert.Empty(t, next.Grid.Cubes())
	assert.Equal(t, Columns, next.Score)
	assert.Equal(t, 1, next.Level)
	assert.Len(t, next.ClearBlocks, Columns)
	assert.Equal(t, ShapeJ, next.ShapePreview)
	assert.Equal(t, CreateBlock(ShapeT, 2*TetriminoSize), next.ActiveBlock)
	assert.False(t, next.GameEnd)
}

func TestMultiRowClearScoring(t *testing.T) {
	s := InitialState()
	s.Grid = fillRow(s.Grid, Rows-1, Columns-1)
	s.Grid = fillRow(s.Grid, Rows-2, Columns-1)
	s.ActiveBlock = Block{single(50, Rows-2, Columns-1), single(50, Rows-1, Columns-1)}

	next := Tick{}.Apply(s)

	assert.Equal(t, 2*Columns, next.Score)
	assert.Equal(t, 2, next.Level)
	assert.Len(t, next.ClearBlocks, 2*Columns)
	assert.Empty(t, next.Grid.Cubes())
}

func TestLineClearShiftsCubesAbove(t *testing.T) {
	s := InitialState()
	s.Grid = fillRow(s.Grid, Rows-1, 8, 9)
	s.Grid = SetBlockInArray(s.Grid, Block{single(60, 17, 0)})
	s.ActiveBlock = CreateBlock(ShapeO, 64).Offset(Rows-2, 4)
	require.Equal(t, 8, s.ActiveBlock[0].Col)

	next := Tick{}.Apply(s)

	assert.Equal(t, Columns, next.Score)
	assert.True(t, next.Grid.Occupied(18, 0), "cube above falls one row")
	assert.False(t, next.Grid.Occupied(17, 0))
	assert.True(t, next.Grid.Occupied(19, 8))
	assert.True(t, next.Grid.Occupied(19, 9))
	assert.False(t, next.Grid.Occupied(18, 8))
	assert.Len(t, next.Grid.Cubes(), 3)
	assert.Equal(t, 19*CubeSize, next.Grid[19][8].Y)
}

func TestSpawnOverlapEndsGame(t *testing.T) {
	s := InitialState()
	s.Grid = fillRow(s.Grid, 0)
	s.Grid = fillRow(s.Grid, 1)
	placed := Block{single(50, Rows-1, 0)}
	s.ActiveBlock = placed

	next := Tick{}.Apply(s)

	assert.True(t, next.GameEnd)
	assert.Equal(t, placed, next.ActiveBlock, "candidate must not replace the active block")
	assert.True(t, next.Grid.Occupied(Rows-1, 0))
}

func TestEndedStateIgnoresActions(t *testing.T) {
	s := InitialState()
	s.GameEnd = true

	actions := []Action{
		GenerateBlock{Index: 6},
		Tick{Elapsed: 0},
		Move{Direction: -1},
		Move{Direction: 1},
		Rotate{Direction: Clockwise},
		Drop{},
	}
	for _, a := range actions {
		assert.Equal(t, s, Reduce(s, a), a.String())
	}
}

func TestGenerateBlock(t *testing.T) {
	s := InitialState()

	next := GenerateBlock{Index: 6}.Apply(s)
	assert.Equal(t, ShapeZ, next.RandomShape)
	assert.Equal(t, s.ShapePreview, next.ShapePreview)
	assert.Equal(t, s.ActiveBlock, next.ActiveBlock)

	for _, idx := range []int{-1, 7, 42} {
		assert.Equal(t, Shapes[DefaultShapeIndex], GenerateBlock{Index: idx}.Apply(s).RandomShape)
	}
}

func TestMove(t *testing.T) {
	s := InitialState()

	left := s
	for range Columns {
		left = Move{Direction: -1}.Apply(left)
	}
	assert.Equal(t, 0, left.ActiveBlock[0].Col)
	assert.Equal(t, 0, left.ActiveBlock[0].X)

	right := s
	for range Columns {
		right = Move{Direction: 1}.Apply(right)
	}
	assert.Equal(t, Columns-1, right.ActiveBlock[1].Col)

	assert.Equal(t, s, Move{}.Apply(s))

	blocked := s
	blocked.Grid = SetBlockInArray(blocked.Grid, Block{single(90, 1, 3)})
	assert.Equal(t, blocked, Move{Direction: -1}.Apply(blocked))
	assert.NotEqual(t, blocked, Move{Direction: 1}.Apply(blocked))
}

func TestRotateReversible(t *testing.T) {
	for _, shape := range Shapes {
		if shape == ShapeO {
			continue
		}
		t.Run(string(shape), func(t *testing.T) {
			s := InitialState()
			s.ActiveBlock = CreateBlock(shape, 8).Offset(6, 0)

			cw := Rotate{Direction: Clockwise}.Apply(s)
			require.NotEqual(t, s.ActiveBlock, cw.ActiveBlock)

			back := Rotate{Direction: Anticlockwise}.Apply(cw)
			assert.Equal(t, s.ActiveBlock, back.ActiveBlock)

			acw := Rotate{Direction: Anticlockwise}.Apply(s)
			assert.Equal(t, s.ActiveBlock, Rotate{Direction: Clockwise}.Apply(acw).ActiveBlock)
		})
	}
}

func TestRotateClockwiseGeometry(t *testing.T) {
	s := InitialState()
	s.ActiveBlock = CreateBlock(ShapeT, 8).Offset(6, 0)

	next := Rotate{Direction: Clockwise}.Apply(s)

	got := make(map[[2]int]bool)
	for _, c := range next.ActiveBlock {
		got[[2]int{c.Row, c.Col}] = true
		assert.Equal(t, c.Col*CubeSize, c.X)
		assert.Equal(t, c.Row*CubeSize, c.Y)
	}
	want := map[[2]int]bool{{6, 5}: true, {7, 5}: true, {8, 5}: true, {7, 6}: true}
	assert.Equal(t, want, got)
}

func TestRotateRejected(t *testing.T) {
	t.Run("square has no pivot", func(t *testing.T) {
		s := InitialState()
		assert.Equal(t, s, Rotate{Direction: Clockwise}.Apply(s))
	})

	t.Run("occupied cell", func(t *testing.T) {
		s := InitialState()
		s.ActiveBlock = CreateBlock(ShapeT, 8).Offset(6, 0)
		s.Grid = SetBlockInArray(s.Grid, Block{single(90, 8, 5)})
		assert.Equal(t, s, Rotate{Direction: Clockwise}.Apply(s))
	})

	t.Run("above the grid", func(t *testing.T) {
		s := InitialState()
		s.ActiveBlock = CreateBlock(ShapeI, 8)
		assert.Equal(t, s, Rotate{Direction: Clockwise}.Apply(s))
	})

	t.Run("left of the grid", func(t *testing.T) {
		s := InitialState()
		s.ActiveBlock = CreateBlock(ShapeI, 8).Offset(6, 0)
		s = Rotate{Direction: Clockwise}.Apply(s)
		for range Columns {
			s = Move{Direction: -1}.Apply(s)
		}
		require.Equal(t, 0, s.ActiveBlock[0].Col)
		assert.Equal(t, s, Rotate{Direction: Anticlockwise}.Apply(s))
	})
}

func TestDrop(t *testing.T) {
	t.Run("empty grid", func(t *testing.T) {
		s := InitialState()
		next := Drop{}.Apply(s)
		assert.Equal(t, Rows-1, next.ActiveBlock[3].Row)
		assert.Equal(t, s.ObjCount, next.ObjCount, "drop does not lock")
		assert.Equal(t, s.Grid, next.Grid)
	})

	t.Run("onto a cube", func(t *testing.T) {
		s := InitialState()
		s.Grid = SetBlockInArray(s.Grid, Block{single(90, 10, 4)})
		next := Drop{}.Apply(s)
		assert.Equal(t, []int{8, 8, 9, 9}, rows(next.ActiveBlock))
		assert.True(t, Collides(next.Grid, next.ActiveBlock, ExceedsRowBoundary, CannotMoveDown))
	})
}

func TestRestartNoopWhilePlaying(t *testing.T) {
	s := Tick{}.Apply(InitialState())
	assert.Equal(t, s, Restart{}.Apply(s))
	assert.Equal(t, s, Reduce(s, Restart{}))
}

func TestRestartAfterGameOver(t *testing.T) {
	s := InitialState()
	s.Grid = fillRow(s.Grid, Rows-1, 2)
	s.GameEnd = true
	s.Score = 30
	s.HighScore = 20
	s.Level = 3
	s.RandomShape = ShapeZ
	s.ObjCount = 40

	next := Restart{}.Apply(s)

	assert.False(t, next.GameEnd)
	assert.Zero(t, next.Score)
	assert.Zero(t, next.Level)
	assert.Equal(t, 30, next.HighScore)
	assert.Equal(t, ShapeZ, next.ShapePreview)
	assert.Equal(t, ShapeJ, next.RandomShape)
	assert.Equal(t, 40+2*TetriminoSize, next.ObjCount)
	assert.Equal(t, CreateBlock(ShapeZ, next.ObjCount), next.ActiveBlock)
	assert.Empty(t, next.Grid.Cubes())
	assert.Len(t, next.ClearBlocks, Columns-1+len(s.ActiveBlock))

	s.Score = 5
	assert.Equal(t, 20, Restart{}.Apply(s).HighScore)
}

// play folds a deterministic pseudo-random game and calls check after every action.
func play(t *testing.T, seed uint64, steps int, check func(prev, next State, a Action)) State {
	t.Helper()
	stream := NewStream(seed)
	s := InitialState()
	for i := range steps {
		var a Action
		switch i % 6 {
		case 0:
			a = GenerateBlock{Index: stream.NextShapeIndex()}
		case 1:
			a = Move{Direction: []int{-1, 1}[i%4/2]}
		case 2:
			a = Rotate{Direction: Rotation(i / 6 % 2)}
		case 3:
			a = Drop{}
		default:
			a = Tick{Elapsed: i * Speed(s.Level)}
		}
		next := Reduce(s, a)
		check(s, next, a)
		s = next
		if s.GameEnd {
			s = Reduce(s, Restart{})
		}
	}
	return s
}

func TestRandomPlayInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 7, 2024} {
		play(t, seed, 3000, func(prev, next State, a Action) {
			if !prev.GameEnd {
				assert.GreaterOrEqual(t, next.Score, prev.Score)
			}
			assert.Equal(t, next.Score/Columns, next.Level)
			assert.GreaterOrEqual(t, next.ObjCount, prev.ObjCount)

			if _, ok := a.(Drop); ok && !next.GameEnd {
				assert.True(t, Collides(next.Grid, next.ActiveBlock, ExceedsRowBoundary, CannotMoveDown))
			}

			seen := make(map[CubeID]bool)
			for _, c := range next.Grid.Cubes() {
				assert.False(t, seen[c.ID], "duplicate cube %s", c.ID)
				seen[c.ID] = true
			}
			if !next.GameEnd {
				for _, c := range next.ActiveBlock {
					assert.False(t, seen[c.ID], "active cube %s already placed", c.ID)
					assert.GreaterOrEqual(t, c.Row, 0)
					assert.Less(t, c.Row, Rows)
				}
			}
		})
	}
}

func TestFoldIsDeterministic(t *testing.T) {
	actions := []Action{Drop{}, Tick{}, GenerateBlock{Index: 0}, Move{Direction: 1}, Drop{}, Tick{}}
	assert.Equal(t, Fold(InitialState(), actions...), Fold(InitialState(), actions...))
}
