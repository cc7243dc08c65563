package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const (
	hudHeight = 2
	cellRune  = '█'
)

// Render draws the HUD, the board and any overlay to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	cellW := max(1, g.cfg.CellSize)
	boardW := g.cfg.GridW * cellW
	if dst.Width() < boardW || dst.Height() < g.cfg.GridH+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, g.cfg.GridH+hudHeight))
		return
	}

	offsetX := (dst.Width() - boardW) / 2
	cellRect := func(c core.Cell) core.Rect {
		return core.NewRect(offsetX+c.X*cellW, hudHeight+c.Y, cellW, 1)
	}

	dst.Fill(core.NewRect(offsetX, hudHeight, boardW, g.cfg.GridH), cellRune, g.Background())
	for _, h := range g.Hints() {
		dst.Fill(cellRect(h.Cell), cellRune, h.Color)
	}

	if g.gameOver {
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SNAKE | Score: %d | Best: %d", g.score, g.highScore)
	dst.Text(0, 0, hud, core.ColorWhite)

	for x := range dst.Width() {
		dst.Put(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.Frame(box, core.ColorWhite)
	dst.TextCentered(box.Y+1, line1, core.ColorRed)
	dst.TextCentered(box.Y+3, line2, core.ColorWhite)
}
