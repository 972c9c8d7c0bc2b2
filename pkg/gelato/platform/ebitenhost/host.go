// Package ebitenhost draws gelato overlays inside an ebiten game.
//
// Menus read controls in ebiten's Update and draw in Draw. Wrap the game with
// a Game, or from an existing ebiten.Game call Host.Update and
// Pool.HandleControls in Update, and SetScreen and Pool.Draw in Draw:
//
//	h, err := ebitenhost.New(ebitenhost.Options{})
//	if err != nil { ... }
//	gelato.Init(gelato.Options{Host: h})
//	pool := gelato.NewPool()
//	...
//	ebiten.RunGame(ebitenhost.NewGame(h, pool))
package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/atomic"
	"golang.org/x/image/font/gofont/goregular"
)

// Options configures the ebiten host.
type Options struct {
	AssetRoot   string                    // Directory holding texture dictionaries and scaleform movies
	Fonts       map[constants.Font]string // TTF/OTF file per game font
	Keymap      map[ebiten.Key]constants.Control
	EvdevDevice string // Optional /dev/input/eventN read for controls
	CacheSize   int    // Texture cache entries; 0 uses the default
}

// DefaultKeymap binds arrow keys, Enter and Backspace/Escape.
func DefaultKeymap() map[ebiten.Key]constants.Control {
	return map[ebiten.Key]constants.Control{
		ebiten.KeyArrowUp:     constants.ControlUp,
		ebiten.KeyArrowDown:   constants.ControlDown,
		ebiten.KeyArrowLeft:   constants.ControlLeft,
		ebiten.KeyArrowRight:  constants.ControlRight,
		ebiten.KeyEnter:       constants.ControlAccept,
		ebiten.KeyNumpadEnter: constants.ControlAccept,
		ebiten.KeyBackspace:   constants.ControlBack,
		ebiten.KeyEscape:      constants.ControlBack,
	}
}

var gamepadMap = map[ebiten.StandardGamepadButton]constants.Control{
	ebiten.StandardGamepadButtonLeftTop:     constants.ControlUp,
	ebiten.StandardGamepadButtonLeftBottom:  constants.ControlDown,
	ebiten.StandardGamepadButtonLeftLeft:    constants.ControlLeft,
	ebiten.StandardGamepadButtonLeftRight:   constants.ControlRight,
	ebiten.StandardGamepadButtonRightBottom: constants.ControlAccept,
	ebiten.StandardGamepadButtonRightRight:  constants.ControlBack,
}

type movieInstance struct {
	movie *internal.Movie
	image *ebiten.Image
	texts internal.MovieTexts
}

// Host is a host.Host that draws onto the screen image of the current frame.
type Host struct {
	screen     *ebiten.Image
	resolution host.Size

	faces    map[constants.Font]*text.GoTextFaceSource
	fallback *text.GoTextFaceSource

	textures  *internal.TextureCache[*ebiten.Image]
	library   *internal.TextureLibrary
	missing   map[string]bool
	movies    *internal.MovieLibrary
	instances map[host.Handle]*movieInstance

	nextHandle *atomic.Int32
	evdev      *internal.EvdevReader
	keymap     map[ebiten.Key]constants.Control
	gamepads   []ebiten.GamepadID
	frame      uint64
}

var (
	_ host.Host         = (*Host)(nil)
	_ host.FrameCounter = (*Host)(nil)
)

// New creates a host. Fonts that fail to load fall back to Go Regular.
func New(opts Options) (*Host, error) {
	fallback, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded font: %w", err)
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
		faces:    make(map[constants.Font]*text.GoTextFaceSource),
		fallback: fallback,
		textures: internal.NewTextureCacheWithSize(opts.CacheSize, func(img *ebiten.Image) {
			img.Deallocate()
		}),
		library:    internal.NewTextureLibrary(assetRoot),
		missing:    make(map[string]bool),
		movies:     internal.NewMovieLibrary(assetRoot),
		instances:  make(map[host.Handle]*movieInstance),
		nextHandle: atomic.NewInt32(0),
		keymap:     keymap,
	}

	for font, path := range opts.Fonts {
		source, err := loadFaceSource(path)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to load font, using fallback", "font", font, "path", path, "error", err)
			continue
		}
		h.faces[font] = source
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

func loadFaceSource(path string) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return text.NewGoTextFaceSource(bytes.NewReader(data))
}

// RegisterMovie adds an SVG movie template that takes precedence over files
// and the built-in movies.
func (h *Host) RegisterMovie(name string, source []byte) {
	h.movies.Register(name, source)
}

// Update starts an input frame. Call it once per ebiten Update, before any
// menu reads controls.
func (h *Host) Update() {
	h.gamepads = ebiten.AppendGamepadIDs(h.gamepads[:0])
	if h.evdev != nil {
		h.evdev.BeginFrame()
	}
	h.frame++
}

// Frame returns the number of input frames started by Update.
func (h *Host) Frame() uint64 {
	return h.frame
}

// SetScreen sets the image drawn to until the next call. Call it at the
// start of Draw with the screen and with nil afterwards.
func (h *Host) SetScreen(screen *ebiten.Image) {
	h.screen = screen
	if screen != nil {
		b := screen.Bounds()
		h.resolution = host.Size{Width: float32(b.Dx()), Height: float32(b.Dy())}
	}
}

func (h *Host) Resolution() host.Size {
	return h.resolution
}

func (h *Host) DrawRect(pos host.Point, size host.Size, c color.RGBA) {
	if h.screen == nil {
		return
	}
	vector.DrawFilledRect(h.screen, pos.X, pos.Y, size.Width, size.Height, c, false)
}

func (h *Host) faceSource(font constants.Font) *text.GoTextFaceSource {
	if source, ok := h.faces[font]; ok {
		return source
	}
	return h.fallback
}

func (h *Host) DrawText(pos host.Point, s string, style host.TextStyle) {
	if h.screen == nil || s == "" || style.Size <= 0 {
		return
	}

	face := &text.GoTextFace{
		Source:    h.faceSource(style.Font),
		Size:      float64(style.Size),
		Direction: text.DirectionLeftToRight,
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(style.Color)
	switch style.Alignment {
	case constants.TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case constants.TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}

	text.Draw(h.screen, s, face, op)
}

func (h *Host) DrawTexture(pos host.Point, size host.Size, dictionary, name string, heading float32, c color.RGBA) {
	if h.screen == nil || size.Width <= 0 || size.Height <= 0 {
		return
	}

	img, ok := h.loadTexture(dictionary, name, int(math.Round(float64(size.Width))), int(math.Round(float64(size.Height))))
	if !ok {
		return
	}

	b := img.Bounds()
	w, ht := float64(size.Width), float64(size.Height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), ht/float64(b.Dy()))
	op.GeoM.Translate(-w/2, -ht/2)
	op.GeoM.Rotate(float64(heading) * math.Pi / 180)
	op.GeoM.Translate(float64(pos.X)+w/2, float64(pos.Y)+ht/2)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear

	h.screen.DrawImage(img, op)
}

func (h *Host) loadTexture(dictionary, name string, width, height int) (*ebiten.Image, bool) {
	key := internal.TextureKey(dictionary, name)
	if h.missing[key] {
		return nil, false
	}

	sizedKey := fmt.Sprintf("%s@%dx%d", key, width, height)
	if img, ok := h.textures.Get(key); ok {
		return img, true
	}
	if img, ok := h.textures.Get(sizedKey); ok {
		return img, true
	}

	data, err := h.library.Open(dictionary, name)
	if err != nil {
		internal.GetInternalLogger().Warn("Texture unavailable, not drawing it", "texture", key, "error", err)
		h.missing[key] = true
		return nil, false
	}

	decoded, err := internal.DecodeTexture(data, width, height)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to decode texture", "texture", key, "error", err)
		h.missing[key] = true
		return nil, false
	}

	cacheKey := key
	if internal.IsSVG(data) {
		cacheKey = sizedKey
	}

	img := ebiten.NewImageFromImage(decoded)
	h.textures.Set(cacheKey, img)
	return img, true
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
	if instance, ok := h.instances[handle]; ok {
		instance.movie.Call(function, args...)
	}
}

func (h *Host) DrawScaleformFullscreen(handle host.Handle, r, g, b, a uint8, _ int) {
	instance, ok := h.instances[handle]
	if !ok || h.screen == nil {
		return
	}

	width, height := int(h.resolution.Width), int(h.resolution.Height)
	if width <= 0 || height <= 0 {
		return
	}

	if instance.movie.NeedsRender(width, height) {
		frame, err := instance.movie.Rasterize(width, height)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render movie", "name", instance.movie.Name, "error", err)
			return
		}
		if instance.image != nil {
			instance.image.Deallocate()
		}
		instance.image = ebiten.NewImageFromImage(frame.Image)
		instance.texts = frame.Texts
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.Scale(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
	h.screen.DrawImage(instance.image, op)

	sx, sy := instance.texts.Scale(float32(width), float32(height))
	for _, label := range instance.texts.Labels {
		pos, style := label.Placement(sx, sy)
		style.Color.A = uint8(uint16(style.Color.A) * uint16(a) / 255)
		h.DrawText(pos, label.Text, style)
	}
}

func (h *Host) ReleaseScaleform(handle host.Handle) {
	instance, ok := h.instances[handle]
	if !ok {
		return
	}
	if instance.image != nil {
		instance.image.Deallocate()
	}
	delete(h.instances, handle)
}

func (h *Host) IsControlPressed(c constants.Control) bool {
	if h.evdev != nil && h.evdev.IsPressed(c) {
		return true
	}
	return h.anyBound(c, ebiten.IsKeyPressed, ebiten.IsStandardGamepadButtonPressed)
}

// IsControlJustPressed is only meaningful during ebiten's Update.
func (h *Host) IsControlJustPressed(c constants.Control) bool {
	if h.evdev != nil && h.evdev.IsJustPressed(c) {
		return true
	}
	return h.anyBound(c, inpututil.IsKeyJustPressed, inpututil.IsStandardGamepadButtonJustPressed)
}

func (h *Host) anyBound(c constants.Control, key func(ebiten.Key) bool, button func(ebiten.GamepadID, ebiten.StandardGamepadButton) bool) bool {
	for k, control := range h.keymap {
		if control == c && key(k) {
			return true
		}
	}

	for _, id := range h.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, control := range gamepadMap {
			if control == c && button(id, b) {
				return true
			}
		}
	}
	return false
}

// Close releases textures, movies and the evdev device.
func (h *Host) Close() {
	if h.evdev != nil {
		h.evdev.Close()
	}
	for handle := range h.instances {
		h.ReleaseScaleform(handle)
	}
	h.textures.Destroy()
}
