package puzzle

import "fmt"

// Tile is the occupant of one grid cell: a numbered piece or the hidden empty placeholder.
// It owns its grid coordinates and animates its own visual position.
type Tile struct {
	id      int
	coord   Coord
	start   Coord
	inited  bool
	visible bool
	body    Body

	anims []*moveAnimation

	pressedHandlers  []func(*Tile)
	finishedHandlers []func()
}

// NewTile creates a tile whose visual position lives in body.
// A nil body gets an in-memory position.
func NewTile(id int, body Body) *Tile {
	if body == nil {
		body = &pointBody{}
	}
	return &Tile{
		id:      id,
		visible: true,
		body:    body,
	}
}

// Init sets both the current and the starting coordinate.
// Only the first call has any effect.
func (t *Tile) Init(start Coord) {
	if t.inited {
		return
	}
	t.start = start
	t.coord = start
	t.inited = true
}

// ID returns the tile's index in row-major creation order.
func (t *Tile) ID() int { return t.id }

// Coord returns the cell the tile currently occupies.
func (t *Tile) Coord() Coord { return t.coord }

// StartingCoord returns the tile's home cell in the solved puzzle.
func (t *Tile) StartingCoord() Coord { return t.start }

// IsAtStartingCoordinate reports whether the tile is on its home cell.
func (t *Tile) IsAtStartingCoordinate() bool {
	return t.coord == t.start
}

// Visible reports whether the presentation should draw the tile.
func (t *Tile) Visible() bool { return t.visible }

// SetVisible shows or hides the tile.
func (t *Tile) SetVisible(v bool) { t.visible = v }

// Position returns the tile's visual position.
func (t *Tile) Position() Vec2 { return t.body.Position() }

// SetPosition places the tile without animating.
func (t *Tile) SetPosition(p Vec2) { t.body.SetPosition(p) }

// Moving reports whether any AnimateTo call is still running.
func (t *Tile) Moving() bool { return len(t.anims) > 0 }

// OnPressed registers a handler for user activation of this tile.
func (t *Tile) OnPressed(fn func(*Tile)) {
	t.pressedHandlers = append(t.pressedHandlers, fn)
}

// OnFinishedMoving registers a handler called once per completed AnimateTo call.
func (t *Tile) OnFinishedMoving(fn func()) {
	t.finishedHandlers = append(t.finishedHandlers, fn)
}

// Press forwards a user activation to the pressed handlers.
func (t *Tile) Press() {
	for _, fn := range t.pressedHandlers {
		fn(t)
	}
}

// AnimateTo starts moving the tile from its current position to target over duration seconds.
// Any animation already running keeps its timer and still reports completion,
// but stops driving the visual position.
// It panics if duration is not positive.
func (t *Tile) AnimateTo(target Vec2, duration float64) {
	if duration <= 0 {
		panic(fmt.Sprintf("puzzle: tile %d: move duration must be positive, got %v", t.id, duration))
	}
	for _, a := range t.anims {
		a.superseded = true
	}
	t.anims = append(t.anims, &moveAnimation{
		from:     t.body.Position(),
		to:       target,
		duration: duration,
	})
}

// Advance steps every running animation by dt seconds and fires one
// finished notification for each animation that reached its target.
// Animations started by those notifications begin on the next call.
func (t *Tile) Advance(dt float64) {
	if len(t.anims) == 0 {
		return
	}

	active := t.anims
	t.anims = nil

	var running []*moveAnimation
	finished := 0
	for _, a := range active {
		pos, done := a.advance(dt)
		if !a.superseded {
			t.body.SetPosition(pos)
		}
		if done {
			finished++
			continue
		}
		running = append(running, a)
	}
	t.anims = append(running, t.anims...)

	for range finished {
		for _, fn := range t.finishedHandlers {
			fn()
		}
	}
}
