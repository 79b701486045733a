// Package puzzle implements the sliding-tile puzzle core: the tile model and its
// animation, the grid, the single-flight move queue and the Solved/Shuffling/Play
// state machine. It has no terminal or rendering dependencies; the platform drives
// it by forwarding tile presses and calling Advance once per tick.
package puzzle

import (
	"fmt"
	"math/rand"
)

// State is the puzzle's lifecycle state.
type State string

const (
	StateSolved    State = "solved"
	StateShuffling State = "shuffling"
	StatePlay      State = "play"
)

// Puzzle is the controller that owns the grid and runs the state machine.
// It is not safe for concurrent use; a single tick loop must drive it.
type Puzzle struct {
	cfg   Config
	rng   *rand.Rand
	grid  *Grid
	queue *MoveQueue
	state State

	shuffleMovesRemaining int
	prevShuffleOffset     Coord

	round   int
	moves   int     // successful player moves this round
	elapsed float64 // seconds spent in Play this round

	observers []Observer
}

// Option customises a puzzle at construction.
type Option func(*options)

type options struct {
	newBody func(id int, c Coord) Body
}

// WithBodies lets the presentation supply the visual body of each tile.
func WithBodies(fn func(id int, c Coord) Body) Option {
	return func(o *options) {
		o.newBody = fn
	}
}

// New builds a solved puzzle. It fails if cfg is invalid.
// A nil rng is replaced by one seeded with 1.
func New(cfg Config, rng *rand.Rand, opts ...Option) (*Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("puzzle: invalid config: %w", err)
	}
	if cfg.Strategy == "" {
		cfg.Strategy = ShuffleRotate
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := &Puzzle{
		cfg:   cfg,
		rng:   rng,
		grid:  NewGrid(cfg.GridSize, o.newBody),
		state: StateSolved,
	}
	p.queue = NewMoveQueue(p.tryPlayerMove)

	for _, t := range p.grid.AllTiles() {
		t.OnPressed(p.RequestMove)
		t.OnFinishedMoving(p.onFinishedMoving)
	}

	return p, nil
}

// Subscribe registers an observer for puzzle events.
func (p *Puzzle) Subscribe(fn Observer) {
	p.observers = append(p.observers, fn)
}

func (p *Puzzle) emit(e Event) {
	e.Round = p.round
	e.State = p.state
	e.Moves = p.moves
	for _, fn := range p.observers {
		fn(e)
	}
}

// Config returns the validated configuration.
func (p *Puzzle) Config() Config { return p.cfg }

// Grid returns the board.
func (p *Puzzle) Grid() *Grid { return p.grid }

// State returns the current lifecycle state.
func (p *Puzzle) State() State { return p.state }

// Round returns how many shuffles have been started.
func (p *Puzzle) Round() int { return p.round }

// Moves returns the number of successful player moves this round.
func (p *Puzzle) Moves() int { return p.moves }

// Elapsed returns the seconds spent in Play this round.
func (p *Puzzle) Elapsed() float64 { return p.elapsed }

// ShuffleMovesRemaining returns how many shuffle swaps are still to come.
func (p *Puzzle) ShuffleMovesRemaining() int { return p.shuffleMovesRemaining }

// Busy reports whether a tile animation is in flight.
func (p *Puzzle) Busy() bool { return p.queue.InFlight() }

// Pending returns the number of queued player moves.
func (p *Puzzle) Pending() int { return p.queue.Len() }

// Shuffle starts a shuffle. It is ignored unless the puzzle is Solved.
// Returns true if the shuffle started.
func (p *Puzzle) Shuffle() bool {
	if p.state != StateSolved {
		return false
	}

	p.round++
	p.moves = 0
	p.elapsed = 0
	p.queue.Reset()
	p.setState(StateShuffling)
	p.grid.Empty().SetVisible(false)
	p.shuffleMovesRemaining = p.cfg.NumShuffleMoves
	p.prevShuffleOffset = Coord{}

	if p.shuffleMovesRemaining <= 0 {
		p.setState(StatePlay)
		return true
	}
	if !p.shuffleStep() {
		p.emit(Event{Kind: EventShuffleStalled, To: p.grid.Empty().Coord()})
		p.setState(StatePlay)
	}
	return true
}

// RequestMove queues tile for a player move. Ignored unless the puzzle is in Play.
func (p *Puzzle) RequestMove(tile *Tile) {
	if p.state != StatePlay || tile == nil {
		return
	}
	p.queue.Request(tile)
}

// TileToward returns the tile that would slide in direction dir once every queued
// move has run, or nil if no such tile exists. dir is a unit offset such as C(-1, 0).
func (p *Puzzle) TileToward(dir Coord) *Tile {
	moved := make(map[*Tile]Coord)
	coordOf := func(t *Tile) Coord {
		if c, ok := moved[t]; ok {
			return c
		}
		return t.coord
	}

	empty := p.grid.Empty().coord
	for _, t := range p.queue.pending {
		c := coordOf(t)
		if c.Adjacent(empty) {
			moved[t] = empty
			empty = c
		}
	}

	target := empty.Sub(dir)
	if !p.grid.InBounds(target) || !target.Adjacent(empty) {
		return nil
	}
	for t, c := range moved {
		if c == target {
			return t
		}
	}
	return p.grid.At(target)
}

// Advance is the animation driver: it steps every moving tile by dt seconds.
// Completion notifications run synchronously and may start the next move,
// which begins advancing on the following call.
func (p *Puzzle) Advance(dt float64) {
	if p.state == StatePlay {
		p.elapsed += dt
	}

	var moving []*Tile
	for _, t := range p.grid.cells {
		if t.Moving() {
			moving = append(moving, t)
		}
	}
	for _, t := range moving {
		t.Advance(dt)
	}
}

// tryPlayerMove is the queue's executor for player requests.
func (p *Puzzle) tryPlayerMove(tile *Tile) bool {
	if !p.moveTile(tile, p.cfg.ManualTileMoveDuration) {
		p.emit(Event{Kind: EventMoveRejected, TileID: tile.id, From: tile.coord})
		return false
	}
	p.moves++
	p.emit(Event{Kind: EventMoved, TileID: tile.id, From: p.grid.Empty().coord, To: tile.coord})
	return true
}

// moveTile swaps tile with the empty tile and animates it into the vacated cell.
// Returns false if tile is not adjacent to the empty tile.
func (p *Puzzle) moveTile(tile *Tile, duration float64) bool {
	empty := p.grid.Empty()
	if !p.grid.Swap(tile, empty) {
		return false
	}

	empty.SetPosition(p.grid.WorldPosition(empty.coord))
	tile.AnimateTo(p.grid.WorldPosition(tile.coord), duration)
	return true
}

// shuffleStep swaps the empty tile with one neighbour, never undoing the previous step.
func (p *Puzzle) shuffleStep() bool {
	empty := p.grid.Empty()
	reverse := p.prevShuffleOffset.Neg()

	var candidates []Coord
	start := p.rng.Intn(len(Offsets))
	for i := range len(Offsets) {
		offset := Offsets[(start+i)%len(Offsets)]
		if !p.prevShuffleOffset.IsZero() && offset == reverse {
			continue
		}
		if !p.grid.InBounds(empty.coord.Add(offset)) {
			continue
		}
		candidates = append(candidates, offset)
		if p.cfg.Strategy == ShuffleRotate {
			break
		}
	}
	if len(candidates) == 0 {
		return false
	}

	offset := candidates[0]
	if p.cfg.Strategy == ShuffleUniform {
		offset = candidates[p.rng.Intn(len(candidates))]
	}

	tile := p.grid.At(empty.coord.Add(offset))
	from := tile.coord
	if !p.moveTile(tile, p.cfg.ShuffleTileMoveDuration) {
		return false
	}
	p.queue.Begin()
	p.shuffleMovesRemaining--
	p.prevShuffleOffset = offset
	p.emit(Event{Kind: EventShuffleStep, TileID: tile.id, From: from, To: tile.coord, Offset: offset})
	return true
}

// onFinishedMoving advances the state machine after an animation completes.
func (p *Puzzle) onFinishedMoving() {
	switch p.state {
	case StatePlay:
		p.queue.Release()
		if p.grid.Solved() {
			p.queue.Reset()
			p.setState(StateSolved)
			p.grid.Empty().SetVisible(true)
			return
		}
		p.queue.Done()

	case StateShuffling:
		p.queue.Release()
		if p.shuffleMovesRemaining > 0 {
			if !p.shuffleStep() {
				p.emit(Event{Kind: EventShuffleStalled, To: p.grid.Empty().Coord()})
				p.setState(StatePlay)
			}
			return
		}
		p.setState(StatePlay)

	default:
		p.queue.Release()
	}
}

func (p *Puzzle) setState(s State) {
	if p.state == s {
		return
	}
	p.state = s
	p.emit(Event{Kind: EventStateChanged})
}
