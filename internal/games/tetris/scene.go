package tetris

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Sprite is the renderer-side copy of one cube.
type Sprite struct {
	ID     engine.CubeID
	Row    int
	Col    int
	X      int
	Y      int
	Shape  engine.Shape
	Active bool
}

// Scene is an id-keyed set of sprites maintained the way an external
// renderer would: remove what a state lists in ClearBlocks, then upsert
// the active block and every placed cube.
type Scene struct {
	sprites map[engine.CubeID]Sprite
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{sprites: make(map[engine.CubeID]Sprite)}
}

// Apply brings the scene in line with s. It returns the number of sprites
// that were neither listed for removal nor present in s and had to be
// dropped; a cube displaced during a row shift ends up this way.
func (sc *Scene) Apply(s engine.State) int {
	for _, c := range s.ClearBlocks {
		delete(sc.sprites, c.ID)
	}

	live := make(map[engine.CubeID]struct{}, len(sc.sprites)+len(s.ActiveBlock))
	for _, c := range s.Grid.Cubes() {
		sc.sprites[c.ID] = spriteOf(c, false)
		live[c.ID] = struct{}{}
	}
	for _, c := range s.ActiveBlock {
		sc.sprites[c.ID] = spriteOf(c, true)
		live[c.ID] = struct{}{}
	}

	pruned := 0
	for id := range sc.sprites {
		if _, ok := live[id]; !ok {
			delete(sc.sprites, id)
			pruned++
		}
	}
	return pruned
}

// Len returns the number of sprites.
func (sc *Scene) Len() int {
	return len(sc.sprites)
}

// Get returns the sprite with the given id.
func (sc *Scene) Get(id engine.CubeID) (Sprite, bool) {
	sp, ok := sc.sprites[id]
	return sp, ok
}

// Sprites returns all sprites ordered by row then column.
func (sc *Scene) Sprites() []Sprite {
	out := make([]Sprite, 0, len(sc.sprites))
	for _, sp := range sc.sprites {
		out = append(out, sp)
	}
	slices.SortFunc(out, func(a, b Sprite) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}
		// Active cubes sort last so they draw on top.
		return cmp.Compare(boolInt(a.Active), boolInt(b.Active))
	})
	return out
}

func spriteOf(c engine.Cube, active bool) Sprite {
	return Sprite{
		ID:     c.ID,
		Row:    c.Row,
		Col:    c.Col,
		X:      c.X,
		Y:      c.Y,
		Shape:  c.Shape,
		Active: active,
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
