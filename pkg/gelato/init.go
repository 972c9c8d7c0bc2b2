// Package gelato provides an in-game overlay toolkit: menus, scaleform movie
// wrappers and scaled drawable elements processed once per frame on top of a
// game world.
//
// The package never calls a game runtime directly. Everything goes through a
// host.Host supplied at Init; platform/sdlhost, platform/ebitenhost and
// platform/headless provide ready-made hosts.
//
// All functions and methods must be called from the game loop thread.
package gelato

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/i18n"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
)

// Options configures gelato initialization.
type Options struct {
	Host         host.Host // Runtime the overlay is drawn into (required)
	LogPath      string    // Full path for log file including filename (creates parent directories)
	LogLevel     string    // Application log level: "debug", "info", "warn" or "error"
	LayoutPath   string    // Optional .toml, .yaml or .json file overriding the default menu layout
	Language     string    // BCP 47 code for built-in strings, e.g. "es"
	MessageFiles []string  // Extra go-i18n message files
}

// Layout holds the geometry and colors used when menus are constructed.
type Layout = internal.Layout

// Init sets the host and loads logging, layout and language configuration.
// Must be called before menus or scaleforms are created.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.Host == nil {
		return ErrNoHost
	}
	internal.SetHost(options.Host)

	layoutPath := options.LayoutPath
	if v := os.Getenv(constants.LayoutPathEnvVar); v != "" {
		layoutPath = v
	}
	if layoutPath != "" {
		if err := LoadLayout(layoutPath); err != nil {
			return err
		}
	}

	if len(options.MessageFiles) > 0 {
		if err := i18n.Init(options.MessageFiles); err != nil {
			return fmt.Errorf("failed to load message files: %w", err)
		}
	}

	language := options.Language
	if v := os.Getenv(constants.LanguageEnvVar); v != "" {
		language = v
	}
	if language != "" {
		if err := i18n.SetWithCode(language); err != nil {
			return fmt.Errorf("invalid language %q: %w", language, err)
		}
	}

	res := options.Host.Resolution()
	internal.GetInternalLogger().Debug("gelato initialized",
		"width", res.Width,
		"height", res.Height,
		"layout", layoutPath,
		"language", language,
	)

	return nil
}

// Close detaches the host and closes the log file.
// Hosts own their native resources and are closed by the caller.
func Close() {
	internal.SetHost(nil)
	internal.CloseLogger()
}

// GetHost returns the host set by Init.
func GetHost() host.Host {
	return internal.GetHost()
}

// LoadLayout reads a layout file and makes it the active layout.
func LoadLayout(path string) error {
	layout, err := internal.LoadLayoutFromFile(path)
	if err != nil {
		return err
	}
	internal.SetLayout(layout)
	return nil
}

// DefaultLayout returns the stock layout.
func DefaultLayout() Layout {
	return internal.DefaultLayout()
}

// SetLayout makes layout the active layout for menus created afterwards.
func SetLayout(layout Layout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	internal.SetLayout(layout)
	return nil
}

// CurrentLayout returns the active layout.
func CurrentLayout() Layout {
	return internal.GetLayout()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
