package slide

import "github.com/vovakirdan/tui-slide/internal/puzzle"

// Snapshot captures the game state for determinism testing and spectators.
type Snapshot struct {
	Tick     uint64       `json:"tick"`
	GridSize int          `json:"grid_size"`
	Round    int          `json:"round"`
	State    puzzle.State `json:"state"`
	Moves    int          `json:"moves"`
	Elapsed  float64      `json:"elapsed"`
	Layout   []int        `json:"layout"` // tile ID per cell, row-major from the bottom row
	Busy     bool         `json:"busy"`
	Pending  int          `json:"pending"`
	Paused   bool         `json:"paused"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.p == nil {
		return Snapshot{Tick: g.tick}
	}
	return Snapshot{
		Tick:     g.tick,
		GridSize: g.p.Grid().Size(),
		Round:    g.p.Round(),
		State:    g.p.State(),
		Moves:    g.p.Moves(),
		Elapsed:  g.p.Elapsed(),
		Layout:   g.p.Grid().Layout(),
		Busy:     g.p.Busy(),
		Pending:  g.p.Pending(),
		Paused:   g.paused,
	}
}
