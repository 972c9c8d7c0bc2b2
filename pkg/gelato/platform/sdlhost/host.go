// Package sdlhost draws gelato overlays with SDL2.
//
// It owns a window, reads controls from the keyboard, SDL game controllers
// and optionally a Linux evdev device, and renders scaleform movies by
// rasterizing their SVG templates.
//
//	h, err := sdlhost.New(sdlhost.Options{Title: "Menu"})
//	if err != nil { ... }
//	defer h.Close()
//
//	gelato.Init(gelato.Options{Host: h})
//	pool := gelato.NewPool()
//	...
//	h.Run(pool.Process)
package sdlhost

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"
)

type movieInstance struct {
	movie   *internal.Movie
	texture *sdl.Texture
	texts   internal.MovieTexts
}

// Host is a host.Host backed by an SDL window.
type Host struct {
	window      *window
	fonts       *fontsManager
	textures    *internal.TextureCache[*sdl.Texture]
	library     *internal.TextureLibrary
	missing     map[string]bool
	movies      *internal.MovieLibrary
	instances   map[host.Handle]*movieInstance
	nextHandle  *atomic.Int32
	controls    *internal.ControlState
	evdev       *internal.EvdevReader
	keymap      map[sdl.Keycode]constants.Control
	controllers map[sdl.JoystickID]*sdl.GameController
	quit        bool
}

var (
	_ host.Host         = (*Host)(nil)
	_ host.FrameCounter = (*Host)(nil)
)

// New initializes SDL and opens the window.
func New(opts Options) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to initialize SDL_ttf: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	win, err := openWindow(opts)
	if err != nil {
		img.Quit()
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	assetRoot := opts.AssetRoot
	if v := os.Getenv(constants.AssetRootEnvVar); v != "" {
		assetRoot = v
	}

	keymap := opts.Keymap
	if keymap == nil {
		keymap = DefaultKeymap()
	}

	h := &Host{
		window: win,
		fonts:  newFontsManager(opts.Fonts, opts.DefaultFont),
		textures: internal.NewTextureCacheWithSize(opts.CacheSize, func(t *sdl.Texture) {
			t.Destroy()
		}),
		library:     internal.NewTextureLibrary(assetRoot),
		missing:     make(map[string]bool),
		movies:      internal.NewMovieLibrary(assetRoot),
		instances:   make(map[host.Handle]*movieInstance),
		nextHandle:  atomic.NewInt32(0),
		controls:    internal.NewControlState(),
		keymap:      keymap,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}

	if opts.EvdevDevice != "" {
		reader, err := internal.OpenEvdevReader(opts.EvdevDevice, nil)
		if err != nil {
			internal.GetInternalLogger().Warn("Evdev controls unavailable", "device", opts.EvdevDevice, "error", err)
		} else {
			h.evdev = reader
		}
	}

	return h, nil
}

// RegisterMovie adds an SVG movie template that takes precedence over files
// and the built-in movies.
func (h *Host) RegisterMovie(name string, source []byte) {
	h.movies.Register(name, source)
}

// Renderer exposes the SDL renderer so games can draw their world below the overlay.
func (h *Host) Renderer() *sdl.Renderer {
	return h.window.renderer
}

func (h *Host) Resolution() host.Size {
	w, ht := h.window.size()
	return host.Size{Width: float32(w), Height: float32(ht)}
}

func toSDLColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toRect(pos host.Point, size host.Size) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(float64(pos.X))),
		Y: int32(math.Round(float64(pos.Y))),
		W: int32(math.Round(float64(size.Width))),
		H: int32(math.Round(float64(size.Height))),
	}
}

func (h *Host) DrawRect(pos host.Point, size host.Size, c color.RGBA) {
	r := toRect(pos, size)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	gfx.BoxColor(h.window.renderer, r.X, r.Y, r.X+r.W-1, r.Y+r.H-1, toSDLColor(c))
}

func (h *Host) DrawText(pos host.Point, text string, style host.TextStyle) {
	if text == "" || style.Size <= 0 {
		return
	}

	font, err := h.fonts.get(style.Font, style.Size)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to open font", "font", style.Font, "error", err)
		return
	}

	surface, err := font.RenderUTF8Blended(text, toSDLColor(style.Color))
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return
	}
	defer surface.Free()

	texture, err := h.window.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create text texture", "error", err)
		return
	}
	defer texture.Destroy()

	x := int32(math.Round(float64(pos.X)))
	switch style.Alignment {
	case constants.TextAlignCenter:
		x -= surface.W / 2
	case constants.TextAlignRight:
		x -= surface.W
	}

	dst := sdl.Rect{X: x, Y: int32(math.Round(float64(pos.Y))), W: surface.W, H: surface.H}
	texture.SetAlphaMod(style.Color.A)
	h.window.renderer.Copy(texture, nil, &dst)
}

func (h *Host) DrawTexture(pos host.Point, size host.Size, dictionary, name string, heading float32, c color.RGBA) {
	dst := toRect(pos, size)
	if dst.W <= 0 || dst.H <= 0 {
		return
	}

	texture, ok := h.loadTexture(dictionary, name, dst.W, dst.H)
	if !ok {
		return
	}

	texture.SetColorMod(c.R, c.G, c.B)
	texture.SetAlphaMod(c.A)
	h.window.renderer.CopyEx(texture, nil, &dst, float64(heading), nil, sdl.FLIP_NONE)
}

func (h *Host) loadTexture(dictionary, name string, width, height int32) (*sdl.Texture, bool) {
	key := internal.TextureKey(dictionary, name)
	if h.missing[key] {
		return nil, false
	}

	sizedKey := fmt.Sprintf("%s@%dx%d", key, width, height)
	if texture, ok := h.textures.Get(key); ok {
		return texture, true
	}
	if texture, ok := h.textures.Get(sizedKey); ok {
		return texture, true
	}

	data, err := h.library.Open(dictionary, name)
	if err != nil {
		internal.GetInternalLogger().Warn("Texture unavailable, not drawing it", "texture", key, "error", err)
		h.missing[key] = true
		return nil, false
	}

	// SVG textures are rasterized at the size they are drawn at
	cacheKey := key
	if internal.IsSVG(data) {
		raster, err := internal.RasterizeSVG(data, int(width), int(height))
		if err != nil {
			internal.GetInternalLogger().Error("Failed to rasterize texture", "texture", key, "error", err)
			h.missing[key] = true
			return nil, false
		}
		data, err = encodePNG(raster)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to encode texture", "texture", key, "error", err)
			return nil, false
		}
		cacheKey = sizedKey
	}

	texture, err := h.textureFromData(data)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load texture", "texture", key, "error", err)
		h.missing[key] = true
		return nil, false
	}

	h.textures.Set(cacheKey, texture)
	return texture, true
}

func encodePNG(raster image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, raster); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (h *Host) textureFromData(data []byte) (*sdl.Texture, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(h.window.renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

func (h *Host) LoadScaleform(name string) (host.Handle, error) {
	movie, err := h.movies.Open(name)
	if err != nil {
		return 0, err
	}

	handle := host.Handle(h.nextHandle.Inc())
	h.instances[handle] = &movieInstance{movie: movie}
	internal.GetInternalLogger().Debug("Opened movie", "name", name, "handle", handle)
	return handle, nil
}

func (h *Host) CallScaleformFunction(handle host.Handle, function string, args ...any) {
	instance, ok := h.instances[handle]
	if !ok {
		return
	}
	instance.movie.Call(function, args...)
}

func (h *Host) DrawScaleformFullscreen(handle host.Handle, r, g, b, a uint8, _ int) {
	instance, ok := h.instances[handle]
	if !ok {
		return
	}

	width, height := h.window.size()
	if instance.movie.NeedsRender(int(width), int(height)) {
		if err := h.renderMovie(instance, int(width), int(height)); err != nil {
			internal.GetInternalLogger().Error("Failed to render movie", "name", instance.movie.Name, "error", err)
			return
		}
	}

	if instance.texture != nil {
		instance.texture.SetColorMod(r, g, b)
		instance.texture.SetAlphaMod(a)
		h.window.renderer.Copy(instance.texture, nil, nil)
	}

	sx, sy := instance.texts.Scale(float32(width), float32(height))
	for _, label := range instance.texts.Labels {
		pos, style := label.Placement(sx, sy)
		style.Color.A = uint8(uint16(style.Color.A) * uint16(a) / 255)
		h.DrawText(pos, label.Text, style)
	}
}

func (h *Host) renderMovie(instance *movieInstance, width, height int) error {
	frame, err := instance.movie.Rasterize(width, height)
	if err != nil {
		return err
	}

	data, err := encodePNG(frame.Image)
	if err != nil {
		return err
	}

	texture, err := h.textureFromData(data)
	if err != nil {
		return err
	}

	if instance.texture != nil {
		instance.texture.Destroy()
	}
	instance.texture = texture
	instance.texts = frame.Texts
	return nil
}

func (h *Host) ReleaseScaleform(handle host.Handle) {
	instance, ok := h.instances[handle]
	if !ok {
		return
	}
	if instance.texture != nil {
		instance.texture.Destroy()
	}
	delete(h.instances, handle)
}

func (h *Host) IsControlPressed(c constants.Control) bool {
	if h.evdev != nil && h.evdev.IsPressed(c) {
		return true
	}
	return h.controls.IsPressed(c)
}

func (h *Host) IsControlJustPressed(c constants.Control) bool {
	if h.evdev != nil && h.evdev.IsJustPressed(c) {
		return true
	}
	return h.controls.IsJustPressed(c)
}

// Frame returns the number of input frames latched by BeginFrame.
func (h *Host) Frame() uint64 {
	return h.controls.Frame()
}

// BeginFrame polls pending events, latches controls and clears the screen.
// It returns false once the window has been closed.
func (h *Host) BeginFrame() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		h.handleEvent(event)
	}
	if h.quit {
		return false
	}

	h.controls.BeginFrame()
	if h.evdev != nil {
		h.evdev.BeginFrame()
	}

	h.window.renderer.SetDrawColor(0, 0, 0, 255)
	h.window.renderer.Clear()
	return true
}

func (h *Host) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		h.quit = true
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return
		}
		if control, ok := h.keymap[e.Keysym.Sym]; ok {
			h.controls.Press(control, e.Type == sdl.KEYDOWN)
		}
	case *sdl.ControllerButtonEvent:
		if control, ok := controllerMap[sdl.GameControllerButton(e.Button)]; ok {
			h.controls.Press(control, e.State == sdl.PRESSED)
		}
	case *sdl.ControllerDeviceEvent:
		h.handleControllerDevice(e)
	}
}

func (h *Host) handleControllerDevice(e *sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		controller := sdl.GameControllerOpen(int(e.Which))
		if controller == nil {
			internal.GetInternalLogger().Warn("Failed to open game controller", "index", e.Which)
			return
		}
		id := controller.Joystick().InstanceID()
		h.controllers[id] = controller
		internal.GetInternalLogger().Debug("Game controller connected", "name", controller.Name())
	case sdl.CONTROLLERDEVICEREMOVED:
		if controller, ok := h.controllers[e.Which]; ok {
			controller.Close()
			delete(h.controllers, e.Which)
		}
	}
}

// EndFrame presents the frame.
func (h *Host) EndFrame() {
	h.window.present()
}

// Run calls process once per frame until the window is closed.
func (h *Host) Run(process func()) {
	for h.BeginFrame() {
		process()
		h.EndFrame()
	}
}

// Close releases every texture, movie and the window, then shuts SDL down.
func (h *Host) Close() {
	if h.evdev != nil {
		h.evdev.Close()
	}

	for handle := range h.instances {
		h.ReleaseScaleform(handle)
	}
	h.textures.Destroy()
	h.fonts.close()

	for id, controller := range h.controllers {
		controller.Close()
		delete(h.controllers, id)
	}

	h.window.close()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
