package internal

import (
	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"go.uber.org/atomic"
)

// ControlState is the per-control state shared between an input goroutine
// and the game loop. Presses are counted by the producer and latched once
// per frame by BeginFrame.
type ControlState struct {
	pressed     map[constants.Control]*atomic.Bool
	presses     map[constants.Control]*atomic.Int32
	justPressed map[constants.Control]bool
	frame       uint64
}

func NewControlState() *ControlState {
	s := &ControlState{
		pressed:     make(map[constants.Control]*atomic.Bool),
		presses:     make(map[constants.Control]*atomic.Int32),
		justPressed: make(map[constants.Control]bool),
	}
	for _, c := range constants.Controls {
		s.pressed[c] = atomic.NewBool(false)
		s.presses[c] = atomic.NewInt32(0)
	}
	return s
}

// Press records a press or release. Safe to call from any goroutine.
func (s *ControlState) Press(c constants.Control, down bool) {
	held, ok := s.pressed[c]
	if !ok {
		return
	}
	if down && !held.Swap(true) {
		s.presses[c].Inc()
	}
	if !down {
		held.Store(false)
	}
}

// BeginFrame latches the presses seen since the previous frame.
// Must be called from the game loop.
func (s *ControlState) BeginFrame() {
	for c, count := range s.presses {
		s.justPressed[c] = count.Swap(0) > 0
	}
	s.frame++
}

// Frame returns the number of BeginFrame calls so far.
func (s *ControlState) Frame() uint64 {
	return s.frame
}

func (s *ControlState) IsPressed(c constants.Control) bool {
	held, ok := s.pressed[c]
	return ok && held.Load()
}

func (s *ControlState) IsJustPressed(c constants.Control) bool {
	return s.justPressed[c]
}
