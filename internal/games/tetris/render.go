package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Layout dimensions in terminal cells. Each grid column is two cells wide
// so cubes look square in most terminal fonts.
const (
	cellW    = 2
	boardW   = engine.Columns*cellW + 2
	boardH   = engine.Rows + 2
	panelGap = 2
	panelW   = 16
	previewH = 6
	layoutW  = boardW + panelGap + panelW
	layoutH  = boardH
)

// shapeColors assigns each shape its conventional colour.
var shapeColors = map[engine.Shape]core.Color{
	engine.ShapeI: core.ColorCyan,
	engine.ShapeJ: core.ColorBlue,
	engine.ShapeL: core.ColorOrange,
	engine.ShapeO: core.ColorYellow,
	engine.ShapeS: core.ColorGreen,
	engine.ShapeT: core.ColorMagenta,
	engine.ShapeZ: core.ColorRed,
}

func colorOf(s engine.Shape) core.Color {
	if c, ok := shapeColors[s]; ok {
		return c
	}
	return core.ColorWhite
}

// Render draws the board, the preview and the HUD.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < layoutW || h < layoutH {
		renderTooSmall(dst)
		return
	}

	origin := core.NewRect(0, 0, w, h).Centered(layoutW, layoutH)
	board := core.NewRect(origin.X, origin.Y, boardW, boardH)
	panel := core.NewRect(board.Right()+panelGap, origin.Y, panelW, layoutH)

	g.renderBoard(dst, board)
	g.renderPanel(dst, panel)

	switch {
	case g.state.GameEnd:
		renderOverlay(dst, board, core.ColorRed, "GAME OVER", fmt.Sprintf("Score: %d", g.state.Score), "R to restart")
	case g.paused:
		renderOverlay(dst, board, core.ColorYellow, "PAUSED", "P to resume")
	}
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, core.ColorGray)

	for row := range engine.Rows {
		for col := range engine.Columns {
			x, y := cellPos(board, row, col)
			dst.SetColor(x+1, y, '.', core.ColorGray)
		}
	}

	for _, sp := range g.scene.Sprites() {
		if sp.Row < 0 || sp.Row >= engine.Rows || sp.Col < 0 || sp.Col >= engine.Columns {
			continue
		}
		x, y := cellPos(board, sp.Row, sp.Col)
		c := colorOf(sp.Shape)
		dst.SetColor(x, y, '█', c)
		dst.SetColor(x+1, y, '█', c)
	}
}

// cellPos returns the screen position of a grid cell inside the board frame.
func cellPos(board core.Rect, row, col int) (int, int) {
	return board.X + 1 + col*cellW, board.Y + 1 + row
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	preview := core.NewRect(panel.X, panel.Y, panel.W, previewH)
	dst.DrawBox(preview, core.ColorGray)
	dst.DrawTextColor(preview.X+2, preview.Y, " NEXT ", core.ColorWhite)

	layout := engine.Layout(g.state.ShapePreview)
	c := colorOf(g.state.ShapePreview)
	py := preview.Y + (previewH-len(layout))/2
	for r, line := range layout {
		px := preview.X + (preview.W-len(line)*cellW)/2
		for col, filled := range line {
			if filled {
				dst.SetColor(px+col*cellW, py+r, '█', c)
				dst.SetColor(px+col*cellW+1, py+r, '█', c)
			}
		}
	}

	y := preview.Bottom() + 1
	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.state.Score},
		{"HIGH", max(g.state.HighScore, g.state.Score)},
		{"LEVEL", g.state.Level},
		{"SPEED", engine.Speed(g.state.Level)},
	}
	for _, st := range stats {
		dst.DrawTextColor(panel.X, y, st.label, core.ColorGray)
		dst.DrawText(panel.X, y+1, fmt.Sprintf("%d", st.value))
		y += 3
	}
}

// renderOverlay draws a framed message centred on area.
func renderOverlay(dst *core.Screen, area core.Rect, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	box := area.Centered(w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, c)
	}
}

func renderTooSmall(dst *core.Screen) {
	msg := "Terminal too small"
	need := fmt.Sprintf("need %dx%d", layoutW, layoutH)
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+1, need)
}
