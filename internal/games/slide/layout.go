package slide

import (
	"math"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

const (
	hudHeight    = 2 // title line and separator
	footerHeight = 2 // status line and key help
	tileH        = 3
)

// tileWidths are tried widest first until the board fits.
var tileWidths = []int{7, 5}

// layout places an NxN board of boxed tiles on the screen.
type layout struct {
	n     int
	board core.Rect // frame around the tiles
	tileW int
	fits  bool
}

func newLayout(n, screenW, screenH int) layout {
	availH := screenH - hudHeight - footerHeight
	for _, tw := range tileWidths {
		w := n*tw + 2
		h := n*tileH + 2
		if w > screenW || h > availH {
			continue
		}
		return layout{
			n:     n,
			board: core.NewRect((screenW-w)/2, hudHeight+(availH-h)/2, w, h),
			tileW: tw,
			fits:  true,
		}
	}
	return layout{n: n}
}

// tileRect returns the screen box for a tile's current visual position.
// World Y grows upward, so the top screen row holds the highest Y.
func (l layout) tileRect(pos puzzle.Vec2) core.Rect {
	half := float64(l.n-1) * 0.5
	col := pos.X + half
	row := half - pos.Y
	x := l.board.X + 1 + int(math.Round(col*float64(l.tileW)))
	y := l.board.Y + 1 + int(math.Round(row*float64(tileH)))
	return core.NewRect(x, y, l.tileW, tileH)
}

// tileAt returns the visible tile drawn under screen point pt, or nil.
func (g *Game) tileAt(pt core.Point) *puzzle.Tile {
	if !g.layout.fits {
		return nil
	}
	for _, t := range g.p.Grid().AllTiles() {
		if !t.Visible() {
			continue
		}
		if g.layout.tileRect(t.Position()).Contains(pt.X, pt.Y) {
			return t
		}
	}
	return nil
}

// label is the number printed on a tile: 1 at the top-left home cell,
// counting row by row, N*N on the empty tile.
func label(n int, home puzzle.Coord) int {
	row := n - 1 - home.Y
	return row*n + home.X + 1
}
