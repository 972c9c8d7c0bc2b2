package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestDirectional() (*DirectionalInput, *fakeClock) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 100*time.Millisecond)
	d.SetClock(clock.Now)
	return &d, clock
}

func TestDirectionalInput_RepeatTiming(t *testing.T) {
	d, clock := newTestDirectional()

	d.SetHeld(constants.ControlDown, true)
	if got := d.Update(); got != DirectionNone {
		t.Fatalf("Update() right after press = %v, want none", got)
	}

	clock.Advance(299 * time.Millisecond)
	if got := d.Update(); got != DirectionNone {
		t.Errorf("Update() before the delay = %v, want none", got)
	}

	clock.Advance(time.Millisecond)
	if got := d.Update(); got != DirectionDown {
		t.Errorf("Update() at the delay = %v, want down", got)
	}

	clock.Advance(99 * time.Millisecond)
	if got := d.Update(); got != DirectionNone {
		t.Errorf("Update() before the interval = %v, want none", got)
	}

	clock.Advance(time.Millisecond)
	if got := d.Update(); got != DirectionDown {
		t.Errorf("Update() at the interval = %v, want down", got)
	}
}

func TestDirectionalInput_ReleaseResetsDelay(t *testing.T) {
	d, clock := newTestDirectional()

	d.SetHeld(constants.ControlUp, true)
	clock.Advance(300 * time.Millisecond)
	if got := d.Update(); got != DirectionUp {
		t.Fatalf("Update() = %v, want up", got)
	}

	d.SetHeld(constants.ControlUp, false)
	d.Update()

	d.SetHeld(constants.ControlUp, true)
	clock.Advance(100 * time.Millisecond)
	if got := d.Update(); got != DirectionNone {
		t.Errorf("Update() 100ms after a fresh press = %v, want none", got)
	}
}

func TestDirectionalInput_Priority(t *testing.T) {
	d, _ := newTestDirectional()

	d.SetHeld(constants.ControlRight, true)
	d.SetHeld(constants.ControlDown, true)

	if got := d.HeldDirection(); got != DirectionDown {
		t.Errorf("HeldDirection() = %v, want down", got)
	}
	if got := d.HeldDirection().Control(); got != constants.ControlDown {
		t.Errorf("Control() = %v, want Down", got)
	}

	if d.SetHeld(constants.ControlAccept, true) {
		t.Error("SetHeld(Accept) reported a directional control")
	}

	d.Reset()
	if d.IsHeld() {
		t.Error("IsHeld() = true after Reset")
	}
}
