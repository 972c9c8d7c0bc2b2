package gelato

import (
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
	"go.uber.org/atomic"
)

// Updater pushes the current parameters of a concrete scaleform into its movie.
type Updater interface {
	Update()
}

// Scaleform owns one host movie. Concrete scaleforms embed it and supply
// their Update through NewScaleform.
//
// The handle belongs to the Scaleform until Dispose. Prefer
//
//	sf, err := NewBigMessage("title", "message")
//	if err != nil { ... }
//	defer sf.Dispose()
//
// so the movie is released on every exit path.
type Scaleform struct {
	name     string
	handle   host.Handle
	visible  bool
	updater  Updater
	disposed *atomic.Bool
}

// NewScaleform loads the named movie from the active host.
func NewScaleform(name string, updater Updater) (*Scaleform, error) {
	h := internal.GetHost()
	if h == nil {
		return nil, ErrNoHost
	}

	handle, err := h.LoadScaleform(name)
	if err != nil {
		return nil, NewHostError("load_scaleform", err)
	}

	internal.GetInternalLogger().Debug("Loaded scaleform", "name", name, "handle", handle)

	return &Scaleform{
		name:     name,
		handle:   handle,
		updater:  updater,
		disposed: atomic.NewBool(false),
	}, nil
}

// Name returns the movie name.
func (s *Scaleform) Name() string {
	return s.name
}

// Handle returns the host handle of the movie.
func (s *Scaleform) Handle() host.Handle {
	return s.handle
}

// Visible reports whether the scaleform is drawn. It does not affect the
// lifetime of the movie.
func (s *Scaleform) Visible() bool {
	return s.visible
}

func (s *Scaleform) SetVisible(visible bool) {
	s.visible = visible
}

// CallFunction pushes a function call into the movie. Used by Update implementations.
func (s *Scaleform) CallFunction(function string, args ...any) {
	h := internal.GetHost()
	if h == nil || s.disposed.Load() {
		return
	}
	h.CallScaleformFunction(s.handle, function, args...)
}

// DrawFullScreen updates the movie and draws it over the whole screen.
// Nothing happens while the scaleform is hidden or after Dispose.
func (s *Scaleform) DrawFullScreen() {
	if !s.visible || s.disposed.Load() {
		return
	}

	h := internal.GetHost()
	if h == nil {
		return
	}

	if s.updater != nil {
		s.updater.Update()
	}
	h.DrawScaleformFullscreen(s.handle, 255, 255, 255, 255, 0)
}

// Draw is DrawFullScreen.
func (s *Scaleform) Draw() {
	s.DrawFullScreen()
}

// Process is DrawFullScreen.
func (s *Scaleform) Process() {
	s.DrawFullScreen()
}

// Disposed reports whether Dispose has run.
func (s *Scaleform) Disposed() bool {
	return s.disposed.Load()
}

// Dispose marks the movie as no longer needed. Only the first call reaches
// the host; later calls do nothing.
func (s *Scaleform) Dispose() {
	if s.disposed.Swap(true) {
		return
	}

	h := internal.GetHost()
	if h == nil {
		return
	}
	h.ReleaseScaleform(s.handle)
}
