package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Elapsed = 250 * time.Millisecond
	if !f.Has(ActionJump) {
		t.Error("Set should mark the action")
	}
	if f.Has(ActionPause) {
		t.Error("unrelated action should not be set")
	}
	if f.DT() != 0.25 {
		t.Errorf("DT() = %v, expected 0.25", f.DT())
	}

	f.Clear()
	if f.Has(ActionJump) || f.Elapsed != 0 {
		t.Errorf("Clear should reset the frame, got %+v", f)
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
