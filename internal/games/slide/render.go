package slide

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

const helpLine = "arrows/wasd slide  click tile  space shuffle  p pause  r reset  q quit"

// Render draws the board to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.p == nil {
		return
	}

	g.renderHUD(dst)

	if !g.layout.fits {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBoxColor(g.layout.board, core.ColorGray)
	g.renderTiles(dst)
	g.renderFooter(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Round: %d  Moves: %d  Time: %s  [%s]",
		g.Title(), g.p.Round(), g.p.Moves(), formatElapsed(seconds(g.p.Elapsed())), g.p.State())
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderTiles draws every visible tile at its interpolated position.
// Moving tiles are drawn last so they stay on top.
func (g *Game) renderTiles(dst *core.Screen) {
	n := g.p.Grid().Size()
	var moving []*puzzle.Tile
	for _, t := range g.p.Grid().AllTiles() {
		if !t.Visible() {
			continue
		}
		if t.Moving() {
			moving = append(moving, t)
			continue
		}
		g.drawTile(dst, n, t)
	}
	for _, t := range moving {
		g.drawTile(dst, n, t)
	}
}

func (g *Game) drawTile(dst *core.Screen, n int, t *puzzle.Tile) {
	r := g.layout.tileRect(t.Position())
	color := core.ColorCyan
	if t.IsAtStartingCoordinate() && !t.Moving() {
		color = core.ColorGreen
	}

	dst.DrawRect(r.Inset(1), ' ')
	dst.DrawBoxColor(r, color)

	text := strconv.Itoa(label(n, t.StartingCoord()))
	dst.DrawTextColor(r.X+(r.W-len(text))/2, r.Y+r.H/2, text, core.ColorBrightWhite)
}

// renderFooter draws the status line and key help under the board.
func (g *Game) renderFooter(dst *core.Screen) {
	var status string
	switch g.p.State() {
	case puzzle.StateSolved:
		if g.p.Round() == 0 {
			status = "Press Space to shuffle"
		} else {
			status = fmt.Sprintf("Solved in %d moves, %s! Space to play again",
				g.p.Moves(), formatElapsed(seconds(g.p.Elapsed())))
		}
	case puzzle.StateShuffling:
		status = fmt.Sprintf("Shuffling... %d", g.p.ShuffleMovesRemaining())
	case puzzle.StatePlay:
		status = "Put the tiles back in order"
	}

	h := dst.Height()
	drawCentered(dst, h-2, status, core.ColorYellow)
	drawCentered(dst, h-1, helpLine, core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-5)/2, w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, box.Y+1, line1, core.ColorYellow)
	drawCentered(dst, box.Y+3, line2, core.ColorDefault)
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColor(x, y, text, c)
}

// formatElapsed renders d as m:ss.t.
func formatElapsed(d time.Duration) string {
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
