// Package host defines the native-call boundary between gelato and the game
// runtime it is drawn into.
//
// Menus, elements and scaleforms only ever talk to a Host. Each supported
// runtime (SDL, ebiten, headless) ships an implementation under platform/.
package host

import (
	"image/color"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
)

// Point is a position in screen pixels.
type Point struct {
	X float32
	Y float32
}

// Size is a width and height in screen pixels.
type Size struct {
	Width  float32
	Height float32
}

// Handle references a scaleform movie allocated by a Host.
// The zero value never refers to a live movie.
type Handle int32

// TextStyle describes how a single line of text is drawn.
type TextStyle struct {
	Font      constants.Font
	Size      float32 // Pixel height of the line
	Color     color.RGBA
	Alignment constants.TextAlign
}

// Host is the set of native calls every runtime must provide.
// All methods are called from the game loop thread.
type Host interface {
	// Resolution returns the current drawable size in pixels.
	Resolution() Size

	DrawRect(pos Point, size Size, c color.RGBA)
	DrawText(pos Point, text string, style TextStyle)
	DrawTexture(pos Point, size Size, dictionary, name string, heading float32, c color.RGBA)

	// LoadScaleform allocates the movie with the given name.
	LoadScaleform(name string) (Handle, error)
	// CallScaleformFunction pushes a function call with its arguments into the movie.
	CallScaleformFunction(h Handle, function string, args ...any)
	DrawScaleformFullscreen(h Handle, r, g, b, a uint8, unused int)
	// ReleaseScaleform marks the movie as no longer needed.
	ReleaseScaleform(h Handle)

	IsControlPressed(c constants.Control) bool
	IsControlJustPressed(c constants.Control) bool
}

// FrameCounter is implemented by hosts that number their input frames. The
// number changes each time the host latches new control state.
type FrameCounter interface {
	Frame() uint64
}

// White is the default element color.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Black is used for the subtitle band.
var Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
