package game

import (
	"fmt"

	"github.com/voskhod/minofall/internal/core"
)

// Each board cell is drawn two terminal columns wide so the playfield
// looks roughly square.
const cellRuneWidth = 2

const (
	hudHeight  = 2
	minScreenW = BoardWidth*cellRuneWidth + 2
	minScreenH = BoardHeight + hudHeight + 2
)

// Pixel-space constants for graphical front ends drawing fixed-size
// square sprites. Purely presentational; nothing in the simulation
// reads them back.
const (
	BlockSize   = 48
	BoardPixelW = BlockSize * BoardWidth  // 480
	BoardPixelH = BlockSize * BoardHeight // 768
)

// PixelOrigin converts a board coordinate to the sprite position in
// pixel space, relative to the board center.
func PixelOrigin(c Coord) (x, y int) {
	return c.Col*BlockSize - BoardPixelW/2, c.Row*BlockSize - BoardPixelH/2
}

// Render draws the session into the screen buffer: HUD, board frame,
// landed cells, then the falling piece. Cells in the spawn buffer
// (Row >= BoardHeight) are simulated but not drawn.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.grid == nil {
		return
	}

	// Center the board frame below the HUD.
	frameW := BoardWidth*cellRuneWidth + 2
	frameH := BoardHeight + 2
	frameX := (dst.Width() - frameW) / 2
	frameY := hudHeight
	dst.DrawBox(core.NewRect(frameX, frameY, frameW, frameH))

	for c, color := range g.grid.landed {
		g.renderCell(dst, frameX, frameY, c, color)
	}

	if g.piece != nil {
		cells := g.piece.Occupied()
		for _, c := range cells {
			g.renderCell(dst, frameX, frameY, c, g.piece.Shape().Color)
		}
	}
}

// renderCell draws one board cell inside the frame. Row 0 is the
// bottom board row, which maps to the lowest interior screen row.
func (g *Game) renderCell(dst *core.Screen, frameX, frameY int, c Coord, color core.Color) {
	if c.Col < 0 || c.Col >= BoardWidth || c.Row < 0 || c.Row >= BoardHeight {
		return
	}
	x := frameX + 1 + c.Col*cellRuneWidth
	y := frameY + 1 + (BoardHeight - 1 - c.Row)
	for i := 0; i < cellRuneWidth; i++ {
		dst.SetColored(x+i, y, '█', color)
	}
}

// renderHUD draws the score line and a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Minofall — Score: %d", g.score)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
