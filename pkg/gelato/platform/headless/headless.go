// Package headless provides a host that draws nothing and records every call.
//
// It backs the gelato tests and lets menus run where no display exists, such
// as a dedicated server validating menu definitions.
package headless

import (
	"fmt"
	"image/color"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
	"go.uber.org/atomic"
)

// Recorded operation names.
const (
	OpDrawRect                = "DrawRect"
	OpDrawText                = "DrawText"
	OpDrawTexture             = "DrawTexture"
	OpLoadScaleform           = "LoadScaleform"
	OpCallScaleformFunction   = "CallScaleformFunction"
	OpDrawScaleformFullscreen = "DrawScaleformFullscreen"
	OpReleaseScaleform        = "ReleaseScaleform"
)

// Call is one recorded host call.
type Call struct {
	Op   string
	Args []any
}

// Host is a recording host.Host.
type Host struct {
	resolution host.Size
	calls      []Call
	scaleforms map[host.Handle]string
	failures   map[string]error
	nextHandle *atomic.Int32
	controls   *internal.ControlState
}

var (
	_ host.Host         = (*Host)(nil)
	_ host.FrameCounter = (*Host)(nil)
)

// New creates a headless host with the given resolution.
func New(width, height float32) *Host {
	return &Host{
		resolution: host.Size{Width: width, Height: height},
		scaleforms: make(map[host.Handle]string),
		failures:   make(map[string]error),
		nextHandle: atomic.NewInt32(0),
		controls:   internal.NewControlState(),
	}
}

func (h *Host) record(op string, args ...any) {
	h.calls = append(h.calls, Call{Op: op, Args: args})
}

// SetResolution simulates a window resize.
func (h *Host) SetResolution(width, height float32) {
	h.resolution = host.Size{Width: width, Height: height}
}

func (h *Host) Resolution() host.Size {
	return h.resolution
}

func (h *Host) DrawRect(pos host.Point, size host.Size, c color.RGBA) {
	h.record(OpDrawRect, pos, size, c)
}

func (h *Host) DrawText(pos host.Point, text string, style host.TextStyle) {
	h.record(OpDrawText, pos, text, style)
}

func (h *Host) DrawTexture(pos host.Point, size host.Size, dictionary, name string, heading float32, c color.RGBA) {
	h.record(OpDrawTexture, pos, size, dictionary, name, heading, c)
}

// FailScaleform makes LoadScaleform fail for name.
func (h *Host) FailScaleform(name string, err error) {
	h.failures[name] = err
}

func (h *Host) LoadScaleform(name string) (host.Handle, error) {
	h.record(OpLoadScaleform, name)
	if err, ok := h.failures[name]; ok {
		return 0, fmt.Errorf("failed to load scaleform %s: %w", name, err)
	}

	handle := host.Handle(h.nextHandle.Inc())
	h.scaleforms[handle] = name
	return handle, nil
}

func (h *Host) CallScaleformFunction(handle host.Handle, function string, args ...any) {
	h.record(OpCallScaleformFunction, append([]any{handle, function}, args...)...)
}

func (h *Host) DrawScaleformFullscreen(handle host.Handle, r, g, b, a uint8, unused int) {
	h.record(OpDrawScaleformFullscreen, handle, r, g, b, a, unused)
}

func (h *Host) ReleaseScaleform(handle host.Handle) {
	h.record(OpReleaseScaleform, handle)
	delete(h.scaleforms, handle)
}

// LiveScaleforms returns the number of loaded, unreleased movies.
func (h *Host) LiveScaleforms() int {
	return len(h.scaleforms)
}

func (h *Host) IsControlPressed(c constants.Control) bool {
	return h.controls.IsPressed(c)
}

func (h *Host) IsControlJustPressed(c constants.Control) bool {
	return h.controls.IsJustPressed(c)
}

// Press holds a control down.
func (h *Host) Press(c constants.Control) {
	h.controls.Press(c, true)
}

// Release lets a control go.
func (h *Host) Release(c constants.Control) {
	h.controls.Press(c, false)
}

// BeginFrame latches the presses since the previous frame.
func (h *Host) BeginFrame() {
	h.controls.BeginFrame()
}

// Frame returns the number of BeginFrame calls so far.
func (h *Host) Frame() uint64 {
	return h.controls.Frame()
}

// Tap presses and releases c so that it reads as just pressed until the next BeginFrame.
func (h *Host) Tap(c constants.Control) {
	h.Press(c)
	h.BeginFrame()
	h.Release(c)
}

// Calls returns every recorded call in order.
func (h *Host) Calls() []Call {
	calls := make([]Call, len(h.calls))
	copy(calls, h.calls)
	return calls
}

// Ops returns the recorded operation names in order.
func (h *Host) Ops() []string {
	ops := make([]string, len(h.calls))
	for i, c := range h.calls {
		ops[i] = c.Op
	}
	return ops
}

// CallsOf returns the recorded calls of one operation.
func (h *Host) CallsOf(op string) []Call {
	var calls []Call
	for _, c := range h.calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset forgets recorded calls. Loaded movies and control state are kept.
func (h *Host) Reset() {
	h.calls = nil
}
