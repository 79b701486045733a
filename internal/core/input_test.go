package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionShuffle) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionShuffle)
	f.Press(4, 7)
	if !f.Has(ActionShuffle) {
		t.Error("Set(ActionShuffle) not recorded")
	}
	if len(f.Presses) != 1 || f.Presses[0] != (Point{X: 4, Y: 7}) {
		t.Errorf("Presses = %v, expected [{4 7}]", f.Presses)
	}

	f.Clear()
	if f.Has(ActionShuffle) || len(f.Presses) != 0 {
		t.Error("Clear should drop actions and presses")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionLeft:    "Left",
		ActionShuffle: "Shuffle",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, a.String(), want)
		}
	}
}
