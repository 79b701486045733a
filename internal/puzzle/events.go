package puzzle

// EventKind identifies what happened inside the puzzle.
type EventKind string

const (
	EventStateChanged   EventKind = "state_changed"
	EventMoved          EventKind = "moved"
	EventShuffleStep    EventKind = "shuffle_step"
	EventMoveRejected   EventKind = "move_rejected"
	EventShuffleStalled EventKind = "shuffle_stalled"
)

// Event describes one observable change. Fields not relevant to Kind are zero.
type Event struct {
	Kind   EventKind `json:"kind"`
	Round  int       `json:"round"`
	State  State     `json:"state"`
	TileID int       `json:"tile_id"`
	From   Coord     `json:"from"`
	To     Coord     `json:"to"`
	Offset Coord     `json:"offset"`
	Moves  int       `json:"moves"`
}

// Observer receives puzzle events synchronously.
type Observer func(Event)
