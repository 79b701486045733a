package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// logEvents returns an observer that writes puzzle events to logger.
// State changes are logged at info level, individual slides at debug.
func logEvents(logger *log.Logger, gameID string) puzzle.Observer {
	l := logger.With("game", gameID)
	return func(e puzzle.Event) {
		switch e.Kind {
		case puzzle.EventStateChanged:
			l.Info("state changed", "state", e.State, "round", e.Round, "moves", e.Moves)
		case puzzle.EventMoved:
			l.Debug("tile moved", "tile", e.TileID, "from", e.From, "to", e.To, "moves", e.Moves)
		case puzzle.EventShuffleStep:
			l.Debug("shuffle step", "tile", e.TileID, "offset", e.Offset)
		case puzzle.EventMoveRejected:
			l.Debug("move rejected", "tile", e.TileID, "at", e.From)
		case puzzle.EventShuffleStalled:
			l.Warn("shuffle stalled", "empty", e.To, "round", e.Round)
		}
	}
}
