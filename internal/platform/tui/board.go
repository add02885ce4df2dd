package tui

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/engine"
	"github.com/vovakirdan/gridsnake/internal/grid"
)

// Board layout constants
const (
	hudHeight = 2 // Status line plus separator
	cellWidth = 2 // Terminal columns per board cell, keeps cells roughly square
)

// Glyphs for board contents, one per terminal column of a cell.
const (
	glyphHead = '█'
	glyphBody = '▓'
	glyphFood = '●'
)

// BoardLayout maps board cells to screen positions.
type BoardLayout struct {
	Frame core.Rect // Border box
	Inner core.Rect // Cell area inside the border
	Fits  bool      // Whether the whole board is visible
}

// Layout centers a gridSize board below the HUD on a w x h screen.
func Layout(w, h, gridSize int) BoardLayout {
	frameW := gridSize*cellWidth + 2
	frameH := gridSize + 2

	area := core.NewRect(0, hudHeight, w, core.Max(0, h-hudHeight))
	frame := area.Centered(frameW, frameH)
	frame.X = core.Max(0, frame.X)
	frame.Y = core.Max(hudHeight, frame.Y)

	return BoardLayout{
		Frame: frame,
		Inner: frame.Inset(1),
		Fits:  frameW <= w && frameH <= area.H,
	}
}

// ScreenPos returns the top-left screen position of a board cell.
func (l BoardLayout) ScreenPos(c grid.Cell) (int, int) {
	return l.Inner.X + c.X*cellWidth, l.Inner.Y + c.Y
}

// CellAt returns the board cell under a screen position.
func (l BoardLayout) CellAt(x, y int) (grid.Cell, bool) {
	if !l.Inner.Contains(x, y) {
		return grid.Cell{}, false
	}
	return grid.Cell{X: (x - l.Inner.X) / cellWidth, Y: y - l.Inner.Y}, true
}

// DrawBoard renders a snapshot into dst and returns the layout used.
func DrawBoard(dst *core.Screen, snap engine.Snapshot) BoardLayout {
	dst.Clear()
	layout := Layout(dst.Width(), dst.Height(), snap.GridSize)

	drawHUD(dst, snap)

	if !layout.Fits {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", layout.Frame.W, layout.Frame.H+hudHeight), core.ColorGray)
		return layout
	}

	dst.DrawBox(layout.Frame, core.ColorGray)

	// Food first so a snake drawn over it stays visible
	if snap.Food.X >= 0 && snap.Food.X < snap.GridSize && snap.Food.Y >= 0 && snap.Food.Y < snap.GridSize {
		drawCell(dst, layout, snap.Food, glyphFood, core.ColorBrightRed)
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, layout, snap.Snake[i], glyphHead, core.ColorBrightGreen)
		} else {
			drawCell(dst, layout, snap.Snake[i], glyphBody, core.ColorGreen)
		}
	}

	if snap.Over {
		drawOverlay(dst, layout.Frame, "Game Over", fmt.Sprintf("Length %d - press R to restart", snap.Len()))
	}

	return layout
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap engine.Snapshot) {
	hud := fmt.Sprintf(" SNAKE │ Length: %d  Tick: %d  Heading: %s", snap.Len(), snap.Tick, snap.Direction)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// drawCell fills one board cell.
func drawCell(dst *core.Screen, l BoardLayout, c grid.Cell, r rune, color core.Color) {
	x, y := l.ScreenPos(c)
	for i := range cellWidth {
		dst.SetColor(x+i, y, r, color)
	}
}

// drawOverlay draws a centered message box inside area.
func drawOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	box := area.Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	drawCenteredIn(dst, box, box.Y+1, line1, core.ColorBrightYellow)
	drawCenteredIn(dst, box, box.Y+3, line2, core.ColorWhite)
}

// drawCenteredIn draws text centered horizontally within box.
func drawCenteredIn(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColor(x, y, text, c)
}

// steerToward picks the action that moves the head toward a clicked cell,
// comparing horizontal and vertical distance.
func steerToward(head, target grid.Cell) core.Action {
	return core.Swipe(target.X-head.X, target.Y-head.Y)
}
