package puzzle

// MoveQueue serialises move requests so that at most one tile animates at a time.
// Requests run in arrival order; an illegal request is dropped and the next one tried.
type MoveQueue struct {
	pending  []*Tile
	inFlight bool
	try      func(*Tile) bool
}

// NewMoveQueue creates a queue that executes requests with try.
// try returns true when it started an animation.
func NewMoveQueue(try func(*Tile) bool) *MoveQueue {
	return &MoveQueue{try: try}
}

// Request appends tile to the queue and drains it.
func (q *MoveQueue) Request(tile *Tile) {
	q.pending = append(q.pending, tile)
	q.drain()
}

// Done clears the in-flight flag after an animation completed and drains the queue.
func (q *MoveQueue) Done() {
	q.inFlight = false
	q.drain()
}

// Begin marks an animation started outside the queue (a shuffle step) as in flight.
func (q *MoveQueue) Begin() {
	q.inFlight = true
}

// Release clears the in-flight flag without draining.
func (q *MoveQueue) Release() {
	q.inFlight = false
}

// InFlight reports whether an animation is running.
func (q *MoveQueue) InFlight() bool { return q.inFlight }

// Len returns the number of requests waiting.
func (q *MoveQueue) Len() int { return len(q.pending) }

// Reset drops every pending request.
func (q *MoveQueue) Reset() {
	q.pending = nil
}

func (q *MoveQueue) drain() {
	for len(q.pending) > 0 && !q.inFlight {
		tile := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]

		if q.try(tile) {
			q.inFlight = true
		}
	}
}
