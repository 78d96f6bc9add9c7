package engine

// Shape identifies one of the seven tetriminos.
type Shape string

const (
	ShapeI Shape = "I"
	ShapeJ Shape = "J"
	ShapeL Shape = "L"
	ShapeO Shape = "O"
	ShapeS Shape = "S"
	ShapeT Shape = "T"
	ShapeZ Shape = "Z"
)

// Shapes is the fixed shape list indexed by GenerateBlock.
var Shapes = [...]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// noPivot marks shapes that do not rotate.
var noPivot = [2]int{-1, -1}

type tetrimino struct {
	layout [][]bool
	pivot  [2]int // row, col inside layout
}

var tetriminos = map[Shape]tetrimino{
	ShapeI: {
		layout: [][]bool{
			{true, true, true, true},
		},
		pivot: [2]int{0, 1},
	},
	ShapeJ: {
		layout: [][]bool{
			{true, false, false},
			{true, true, true},
		},
		pivot: [2]int{1, 1},
	},
	ShapeL: {
		layout: [][]bool{
			{false, false, true},
			{true, true, true},
		},
		pivot: [2]int{1, 1},
	},
	ShapeO: {
		layout: [][]bool{
			{true, true},
			{true, true},
		},
		pivot: noPivot,
	},
	ShapeS: {
		layout: [][]bool{
			{false, true, true},
			{true, true, false},
		},
		pivot: [2]int{1, 1},
	},
	ShapeT: {
		layout: [][]bool{
			{false, true, false},
			{true, true, true},
		},
		pivot: [2]int{1, 1},
	},
	ShapeZ: {
		layout: [][]bool{
			{true, true, false},
			{false, true, true},
		},
		pivot: [2]int{1, 1},
	},
}

// ShapeAt returns the shape at index, or the default shape when the index
// is outside the shape list.
func ShapeAt(index int) Shape {
	if index < 0 || index >= len(Shapes) {
		return Shapes[DefaultShapeIndex]
	}
	return Shapes[index]
}

// Layout returns a copy of the shape's boolean layout, for previews.
// Unknown shapes have an empty layout.
func Layout(s Shape) [][]bool {
	t, ok := tetriminos[s]
	if !ok {
		return nil
	}
	out := make([][]bool, len(t.layout))
	for i, row := range t.layout {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// CreateBlock spawns a block of the given shape at the top of the grid,
// centred horizontally. spawn is the object counter minted into every
// cube id.
func CreateBlock(s Shape, spawn int) Block {
	t, ok := tetriminos[s]
	if !ok {
		s = Shapes[DefaultShapeIndex]
		t = tetriminos[s]
	}
	hash := uint32(Hash(uint64(spawn)))

	block := make(Block, 0, TetriminoSize)
	for row, cells := range t.layout {
		for col, filled := range cells {
			if !filled {
				continue
			}
			id := CubeID{Spawn: spawn, Row: row, Col: col, Hash: hash}
			center := t.pivot != noPivot && t.pivot == [2]int{row, col}
			block = append(block, newCube(id, row, col+Columns/2-1, s, center))
		}
	}
	return block
}

// Pivot returns the block's rotation centre, if it has one.
func (b Block) Pivot() (Cube, bool) {
	for _, c := range b {
		if c.Center {
			return c, true
		}
	}
	return Cube{}, false
}

// Offset returns a copy of the block shifted by (dRow, dCol).
func (b Block) Offset(dRow, dCol int) Block {
	next := make(Block, len(b))
	for i, c := range b {
		next[i] = c.Offset(dRow, dCol)
	}
	return next
}
