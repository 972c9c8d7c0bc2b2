package internal

import (
	"time"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
)

// Direction represents a vertical or horizontal navigation step.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held directions and handles repeat timing.
// Menus feed it the held state of the directional controls every frame.
type DirectionalInput struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (d *DirectionalInput) SetClock(now func() time.Time) {
	d.now = now
	d.lastRepeatTime = now()
}

func (d *DirectionalInput) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}

// SetHeld updates the held state for a direction based on a control.
// Returns true if the control was directional.
func (d *DirectionalInput) SetHeld(control constants.Control, held bool) bool {
	var slot *bool
	switch control {
	case constants.ControlUp:
		slot = &d.held.up
	case constants.ControlDown:
		slot = &d.held.down
	case constants.ControlLeft:
		slot = &d.held.left
	case constants.ControlRight:
		slot = &d.held.right
	default:
		return false
	}

	if *slot && !held {
		d.hasRepeated = false
	}
	if !*slot && held {
		// A fresh press restarts the initial delay
		d.lastRepeatTime = d.clock()
		d.hasRepeated = false
	}
	*slot = held
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.left || d.held.right
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.held.up:
		return DirectionUp
	case d.held.down:
		return DirectionDown
	case d.held.left:
		return DirectionLeft
	case d.held.right:
		return DirectionRight
	}
	return DirectionNone
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. The first repeat occurs after the repeat delay,
// subsequent repeats after the repeat interval.
func (d *DirectionalInput) Update() Direction {
	now := d.clock()

	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeatTime = d.clock()
}

// Control returns the control for a Direction.
func (d Direction) Control() constants.Control {
	switch d {
	case DirectionUp:
		return constants.ControlUp
	case DirectionDown:
		return constants.ControlDown
	case DirectionLeft:
		return constants.ControlLeft
	case DirectionRight:
		return constants.ControlRight
	default:
		return constants.ControlUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
