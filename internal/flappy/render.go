package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	ActorChar     = '█'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot scaled to fill dst. The bottom row is the
// ground line; the field maps onto the rows above it.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 1 || snap.FieldW <= 0 || snap.FieldH <= 0 {
		return
	}

	fieldRows := h - 1
	sx := float64(w) / float64(snap.FieldW)
	sy := float64(fieldRows) / float64(snap.FieldH)

	dst.DrawHLine(0, fieldRows, w, GroundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		drawPipe(dst, o, sx, sy, fieldRows)
	}

	x0, y0, x1, y1 := snap.Actor.Scale(sx, sy).Cells()
	// Keep the actor at least one cell big on tiny terminals.
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	dst.FillCells(x0, y0, x1, core.Clamp(y1, 0, fieldRows), ActorChar, core.ColorBrightYellow)

	if snap.Phase == core.PhaseGameOver {
		drawGameOver(dst, snap.Score)
		return
	}
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)
}

// drawPipe renders both segments of one obstacle with caps facing the gap.
func drawPipe(dst *core.Screen, o ObstacleView, sx, sy float64, fieldRows int) {
	if !o.Upper.Empty() {
		x0, y0, x1, y1 := o.Upper.Scale(sx, sy).Cells()
		dst.FillCells(x0, y0, x1, y1, PipeChar, core.ColorGreen)
		dst.FillCells(x0, y1-1, x1, y1, PipeCapTop, core.ColorBrightGreen)
	}
	if !o.Lower.Empty() {
		x0, y0, x1, y1 := o.Lower.Scale(sx, sy).Cells()
		y1 = core.Clamp(y1, 0, fieldRows)
		dst.FillCells(x0, y0, x1, y1, PipeChar, core.ColorGreen)
		dst.FillCells(x0, y0, x1, y0+1, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawGameOver draws a message box in the center of the screen.
func drawGameOver(dst *core.Screen, score int) {
	title := "Game Over! Press R to restart"
	subtitle := fmt.Sprintf("Final Score: %d", score)

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillCells(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}
