package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board layout in terminal cells.
const (
	CellWidth = 2 // columns per grid cell, so cells look square
	HUDHeight = 2 // status line + separator
	border    = 1
)

// RequiredSize returns the terminal size needed to draw a grid of the given bounds.
func RequiredSize(b core.Bounds) (w, h int) {
	return b.Width*CellWidth + 2*border, HUDHeight + b.Height + 2*border
}

// Render draws the current state into dst. It only reads game state, so it can
// run any number of times between updates.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	needW, needH := RequiredSize(g.bounds)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()))
		return
	}

	originX := (dst.Width() - needW) / 2
	originY := HUDHeight
	frame := core.NewRect(originX, originY, needW, g.bounds.Height+2*border)
	dst.DrawBox(frame, core.ColorBorder)
	dst.DrawRect(core.NewRect(originX+border, originY+border, g.bounds.Width*CellWidth, g.bounds.Height), ' ', core.ColorBoard)

	toScreen := func(p core.Point) (int, int) {
		return originX + border + p.X*CellWidth, originY + border + p.Y
	}

	for i, seg := range g.snake.body {
		color := core.ColorSnake
		if i == 0 {
			color = core.ColorSnakeHead
		}
		x, y := toScreen(seg)
		dst.SetCell(x, y, '█', color)
		dst.SetCell(x+1, y, '█', color)
	}

	fx, fy := toScreen(g.food.Position())
	dst.SetCell(fx, fy, '◖', core.ColorFood)
	dst.SetCell(fx+1, fy, '◗', core.ColorFood)

	if g.phase == PhaseOver {
		renderOverlay(dst, "Game over!", fmt.Sprintf("Length: %d", g.snake.Len()))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake │ Length: %d  Eaten: %d", g.snake.Len(), g.eaten)
	dst.DrawText(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorBorder)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorOverlay)
}
