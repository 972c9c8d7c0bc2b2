// Package constants defines shared constants, types, and configuration values
// used throughout the gelato overlay toolkit.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read during Init.
const (
	LayoutPathEnvVar = "GELATO_LAYOUT"
	LanguageEnvVar   = "GELATO_LANGUAGE"
	AssetRootEnvVar  = "GELATO_ASSETS"
)

// Environment variables read by desktop hosts in development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Control represents an abstract game control, mapped from the host's physical input.
// Hosts translate keyboard, controller and evdev codes into these values.
type Control int

const (
	ControlUnassigned Control = iota
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ControlAccept
	ControlBack
)

func (c Control) String() string {
	switch c {
	case ControlUnassigned:
		return "Unassigned"
	case ControlUp:
		return "Up"
	case ControlDown:
		return "Down"
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlAccept:
		return "Accept"
	case ControlBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Controls lists every assignable control in declaration order.
var Controls = []Control{ControlUp, ControlDown, ControlLeft, ControlRight, ControlAccept, ControlBack}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Font identifies one of the game fonts. Hosts map each to a font file.
type Font int

const (
	FontChaletLondon Font = iota
	FontHouseScript
	FontMonospace
	FontCharletComprimeColonge
	FontPricedown
)

func (f Font) String() string {
	switch f {
	case FontChaletLondon:
		return "ChaletLondon"
	case FontHouseScript:
		return "HouseScript"
	case FontMonospace:
		return "Monospace"
	case FontCharletComprimeColonge:
		return "CharletComprimeColonge"
	case FontPricedown:
		return "Pricedown"
	default:
		return "Unknown"
	}
}

// Layout space and timing.
const (
	// ReferenceHeight is the screen height that element positions are authored against.
	ReferenceHeight float32 = 1080
	// TextBaseHeight is the pixel height of text with scale 1.0 at the reference height.
	TextBaseHeight float32 = 40

	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 100 * time.Millisecond
)

// ParseFont returns the font with the given name, matched case-insensitively.
func ParseFont(name string) (Font, bool) {
	for f := FontChaletLondon; f <= FontPricedown; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return FontChaletLondon, false
}

// ParseTextAlign maps "left", "center" and "right". Empty means left.
func ParseTextAlign(name string) (TextAlign, bool) {
	switch strings.ToLower(name) {
	case "", "left":
		return TextAlignLeft, true
	case "center", "centre":
		return TextAlignCenter, true
	case "right":
		return TextAlignRight, true
	default:
		return TextAlignLeft, false
	}
}
