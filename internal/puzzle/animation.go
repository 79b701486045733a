package puzzle

// Vec2 is a visual position in world units (one unit per grid cell).
type Vec2 struct {
	X float64
	Y float64
}

// Lerp interpolates linearly between a and b.
// t is clamped to [0, 1] so the result never overshoots b.
func Lerp(a, b Vec2, t float64) Vec2 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Body is the presentation-side holder of a tile's visual position.
type Body interface {
	Position() Vec2
	SetPosition(p Vec2)
}

// pointBody is the in-memory Body used when the presentation supplies none.
type pointBody struct {
	pos Vec2
}

func (b *pointBody) Position() Vec2     { return b.pos }
func (b *pointBody) SetPosition(p Vec2) { b.pos = p }

// moveAnimation is one AnimateTo call in flight.
type moveAnimation struct {
	from     Vec2
	to       Vec2
	duration float64 // seconds
	percent  float64 // 0.0 -> 1.0

	// superseded animations keep their timer but no longer move the tile
	superseded bool
}

// advance moves the animation forward by dt seconds.
// Returns the interpolated position and whether the animation has finished.
func (a *moveAnimation) advance(dt float64) (Vec2, bool) {
	a.percent += dt / a.duration
	if a.percent >= 1.0 {
		return a.to, true
	}
	return Lerp(a.from, a.to, a.percent), false
}
