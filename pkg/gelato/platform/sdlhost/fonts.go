package sdlhost

import (
	"fmt"
	"math"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"
)

type fontKey struct {
	font constants.Font
	size int
}

// fontsManager opens each game font lazily at every pixel size it is drawn at.
type fontsManager struct {
	paths    map[constants.Font]string
	fallback string
	open     map[fontKey]*ttf.Font
	failed   map[constants.Font]bool
}

func newFontsManager(paths map[constants.Font]string, fallback string) *fontsManager {
	return &fontsManager{
		paths:    paths,
		fallback: fallback,
		open:     make(map[fontKey]*ttf.Font),
		failed:   make(map[constants.Font]bool),
	}
}

func pixelSize(size float32) int {
	return max(1, int(math.Round(float64(size))))
}

func (fm *fontsManager) get(font constants.Font, size float32) (*ttf.Font, error) {
	key := fontKey{font: font, size: pixelSize(size)}
	if f, ok := fm.open[key]; ok {
		return f, nil
	}

	f, err := fm.load(font, key.size)
	if err != nil {
		return nil, err
	}
	fm.open[key] = f
	return f, nil
}

func (fm *fontsManager) load(font constants.Font, size int) (*ttf.Font, error) {
	for _, path := range []string{fm.paths[font], fm.fallback} {
		if path == "" {
			continue
		}
		f, err := ttf.OpenFont(path, size)
		if err == nil {
			return f, nil
		}
		if !fm.failed[font] {
			internal.GetInternalLogger().Debug("Failed to load font file, trying next", "font", font, "path", path, "error", err)
		}
	}
	fm.failed[font] = true

	return loadEmbeddedFont(goregular.TTF, size)
}

func loadEmbeddedFont(data []byte, size int) (*ttf.Font, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create RW from embedded font: %w", err)
	}

	font, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded font: %w", err)
	}
	return font, nil
}

func (fm *fontsManager) close() {
	for key, f := range fm.open {
		f.Close()
		delete(fm.open, key)
	}
}
