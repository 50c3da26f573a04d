package gems

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-gems/internal/core"
	"github.com/vovakirdan/tui-gems/internal/match3"
)

const (
	cellWidth = 3 // marker, glyph, marker
	hudHeight = 3
)

// boardSize returns the board frame size including borders.
func (g *Game) boardSize() (w, h int) {
	return g.cfg.Board.Columns*cellWidth + 2, g.cfg.Board.Rows + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.board == nil {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	frame := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, boardX, boardW)
	dst.DrawBox(frame, core.ColorGray)
	g.renderMarkers(dst, boardX, boardY)
	g.renderTiles(dst, frame)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the score, level and move info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightCyan)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d  %d/%d", g.levelIndex+1, LevelCount(), g.score-g.levelStart, g.target)
	} else {
		info = fmt.Sprintf("Chain: %d", g.stats.LongestChain)
	}
	infoX := max(boardX, boardX+boardW-len(info))
	dst.DrawText(infoX, 1, info)

	var status string
	if g.moveLimit > 0 {
		status = fmt.Sprintf("Moves left: %d", g.movesLeft)
	} else {
		status = fmt.Sprintf("Moves: %d", g.stats.Moves)
	}
	dst.DrawTextCentered(2, status, core.ColorDefault)
}

// cellOrigin returns the screen position of the left marker of a cell.
// Row 0 is drawn at the bottom of the frame.
func (g *Game) cellOrigin(boardX, boardY int, col, row float64) (x, y int) {
	c := int(math.Round(col))
	r := int(math.Round(row))
	return boardX + 1 + c*cellWidth, boardY + 1 + (g.board.Rows() - 1 - r)
}

// renderMarkers draws the cursor, the selection and the hint around cells.
func (g *Game) renderMarkers(dst *core.Screen, boardX, boardY int) {
	mark := func(pos match3.Position, left, right rune, color core.Color) {
		x, y := g.cellOrigin(boardX, boardY, float64(pos.Column), float64(pos.Row))
		dst.SetColored(x, y, left, color)
		dst.SetColored(x+2, y, right, color)
	}

	if g.hintA != nil && g.hintB != nil && (g.hintTicks/4)%2 == 0 {
		mark(g.hintA.Position(), '{', '}', core.ColorBrightYellow)
		mark(g.hintB.Position(), '{', '}', core.ColorBrightYellow)
	}
	if g.selected != nil {
		mark(g.selected.Position(), '(', ')', core.ColorBrightCyan)
	}
	if !g.gameOver && !g.won {
		mark(g.cursor, '[', ']', core.ColorBrightWhite)
	}
}

// renderTiles draws every tile at its sprite position, clipped to the frame.
func (g *Game) renderTiles(dst *core.Screen, frame core.Rect) {
	inner := frame.Inset(1)

	flashing := match3.NewTileSet(g.flash...)
	for _, t := range g.board.Tiles() {
		col, row := g.drawPosition(t)
		x, y := g.cellOrigin(frame.X, frame.Y, col, row)
		if !inner.Contains(x+1, y) {
			continue
		}

		style, ok := g.styles[strings.ToLower(string(t.Category))]
		if !ok {
			style = gemStyle{glyph: '?', color: core.ColorWhite}
		}
		if flashing.Contains(t) {
			style = gemStyle{glyph: '✶', color: core.ColorBrightWhite}
		}
		dst.SetColored(x+1, y, style.glyph, style.color)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		done := fmt.Sprintf("Level %d cleared!", g.levelIndex+1)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, done, "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, done, fmt.Sprintf("Next: %s", Levels[g.levelIndex+1].Name))
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
		return
	}

	if g.gameOver {
		chain := fmt.Sprintf("Best chain: %d", g.stats.LongestChain)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", chain, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select | Esc: Cancel | H: Hint | P: Pause | Q: Quit"
}
