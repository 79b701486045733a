package puzzle

import "testing"

func TestLerpClamps(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 2, Y: -4}

	tests := []struct {
		name     string
		t        float64
		expected Vec2
	}{
		{"start", 0, a},
		{"halfway", 0.5, Vec2{X: 1, Y: -2}},
		{"end", 1, b},
		{"overshoot clamps to end", 1.7, b},
		{"negative clamps to start", -0.3, a},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lerp(a, b, tc.t)
			if got != tc.expected {
				t.Errorf("Lerp(%v) = %v, want %v", tc.t, got, tc.expected)
			}
		})
	}
}

func TestTileInitOnlyOnce(t *testing.T) {
	tile := NewTile(0, nil)
	tile.Init(C(2, 1))
	tile.Init(C(0, 0))

	if tile.StartingCoord() != C(2, 1) {
		t.Errorf("StartingCoord() = %v, want (2,1)", tile.StartingCoord())
	}
	if !tile.IsAtStartingCoordinate() {
		t.Error("fresh tile should be at its starting coordinate")
	}
}

func TestTileAnimateLandsAndFinishesOnce(t *testing.T) {
	tile := NewTile(0, nil)
	tile.Init(C(0, 0))

	finished := 0
	tile.OnFinishedMoving(func() { finished++ })

	target := Vec2{X: 1, Y: 0}
	tile.AnimateTo(target, 1.0)

	tile.Advance(0.25)
	if got := tile.Position(); got.X != 0.25 {
		t.Errorf("after 0.25s position = %v, want x=0.25", got)
	}
	if finished != 0 {
		t.Fatalf("finished fired early")
	}

	tile.Advance(0.25)
	tile.Advance(0.25)
	tile.Advance(0.25)
	if tile.Position() != target {
		t.Errorf("position = %v, want %v", tile.Position(), target)
	}
	if finished != 1 {
		t.Errorf("finished = %d, want 1", finished)
	}
	if tile.Moving() {
		t.Error("tile should not be moving after completion")
	}

	// Further ticks must not fire again.
	tile.Advance(0.25)
	if finished != 1 {
		t.Errorf("finished fired again: %d", finished)
	}
}

func TestTileAnimateSupersede(t *testing.T) {
	tile := NewTile(0, nil)
	tile.Init(C(0, 0))

	finished := 0
	tile.OnFinishedMoving(func() { finished++ })

	first := Vec2{X: 4, Y: 0}
	second := Vec2{X: 0, Y: 4}

	tile.AnimateTo(first, 1.0)
	tile.Advance(0.5) // halfway to first: (2,0)
	tile.AnimateTo(second, 1.0)

	tile.Advance(0.5) // first timer elapses, second drives position
	if finished != 1 {
		t.Fatalf("finished = %d after first timer, want 1", finished)
	}
	if got := tile.Position(); got != (Vec2{X: 1, Y: 2}) {
		t.Errorf("position = %v, want (1,2) halfway from (2,0) to second target", got)
	}

	tile.Advance(0.5)
	if finished != 2 {
		t.Errorf("finished = %d, want 2", finished)
	}
	if tile.Position() != second {
		t.Errorf("position = %v, want %v", tile.Position(), second)
	}
}

func TestTilePressCarriesIdentity(t *testing.T) {
	tile := NewTile(7, nil)

	var got *Tile
	tile.OnPressed(func(pt *Tile) { got = pt })
	tile.Press()

	if got != tile {
		t.Errorf("pressed handler got %v, want tile 7", got)
	}
}

type recordingBody struct {
	pos  Vec2
	sets int
}

func (b *recordingBody) Position() Vec2     { return b.pos }
func (b *recordingBody) SetPosition(p Vec2) { b.pos = p; b.sets++ }

func TestTileUsesSuppliedBody(t *testing.T) {
	body := &recordingBody{}
	tile := NewTile(0, body)
	tile.AnimateTo(Vec2{X: 1, Y: 1}, 0.5)
	tile.Advance(0.5)

	if body.pos != (Vec2{X: 1, Y: 1}) {
		t.Errorf("body position = %v, want (1,1)", body.pos)
	}
	if body.sets == 0 {
		t.Error("body was never written")
	}
}

func TestTileAnimateRejectsNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -0.5} {
		tile := NewTile(1, nil)
		tile.Init(C(0, 0))
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("AnimateTo(duration %v) should panic", d)
				}
			}()
			tile.AnimateTo(Vec2{X: 1}, d)
		}()
		if tile.Moving() {
			t.Errorf("duration %v: no animation should be queued", d)
		}
	}
}
