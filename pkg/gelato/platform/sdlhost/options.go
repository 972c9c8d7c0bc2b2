package sdlhost

import (
	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Options configures the SDL host.
type Options struct {
	Title         string                            // Window title displayed in windowed mode
	Width         int32                             // Window width; 0 uses the display width
	Height        int32                             // Window height; 0 uses the display height
	WindowOptions WindowOptions                     // SDL window flags (borderless, resizable, etc.)
	AssetRoot     string                            // Directory holding texture dictionaries and scaleform movies
	Fonts         map[constants.Font]string         // TTF file per game font
	DefaultFont   string                            // TTF file used for fonts missing from Fonts
	Keymap        map[sdl.Keycode]constants.Control // Keyboard bindings; nil uses DefaultKeymap
	EvdevDevice   string                            // Optional /dev/input/eventN read for controls
	CacheSize     int                               // Texture cache entries; 0 uses the default
}

type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}

// DefaultKeymap binds arrow keys, Enter and Backspace/Escape.
func DefaultKeymap() map[sdl.Keycode]constants.Control {
	return map[sdl.Keycode]constants.Control{
		sdl.K_UP:        constants.ControlUp,
		sdl.K_DOWN:      constants.ControlDown,
		sdl.K_LEFT:      constants.ControlLeft,
		sdl.K_RIGHT:     constants.ControlRight,
		sdl.K_RETURN:    constants.ControlAccept,
		sdl.K_KP_ENTER:  constants.ControlAccept,
		sdl.K_BACKSPACE: constants.ControlBack,
		sdl.K_ESCAPE:    constants.ControlBack,
	}
}

// controllerMap binds the d-pad and face buttons of SDL game controllers.
var controllerMap = map[sdl.GameControllerButton]constants.Control{
	sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.ControlUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.ControlDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.ControlLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.ControlRight,
	sdl.CONTROLLER_BUTTON_A:          constants.ControlAccept,
	sdl.CONTROLLER_BUTTON_B:          constants.ControlBack,
}
