package sdlhost

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWindowWidth  = 1280
	devWindowHeight = 720
)

// window wraps the SDL window and renderer the overlay is drawn with.
type window struct {
	window          *sdl.Window
	renderer        *sdl.Renderer
	hasVSync        bool
	lastPresentTime uint64
}

func openWindow(opts Options) (*window, error) {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = devWindowWidth, devWindowHeight
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	winOpts := opts.WindowOptions
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		winOpts.FullscreenDesktop = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(opts.Title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		sdlWindow.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &window{
		window:   sdlWindow,
		renderer: renderer,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// size returns the output size of the renderer, which differs from the
// window size on high-DPI displays.
func (w *window) size() (int32, int32) {
	width, height, err := w.renderer.GetOutputSize()
	if err != nil {
		return w.window.GetSize()
	}
	return width, height
}

// present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *window) close() {
	w.renderer.Destroy()
	w.window.Destroy()
}
