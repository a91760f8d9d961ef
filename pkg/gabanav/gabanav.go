// Package gabanav provides path-based navigation with animated screen
// transitions for SDL2 applications on handheld Linux devices.
//
// The package wires the pieces together: Options describes the navigator and
// host, LoadOptions reads them from a TOML file, and Init sets up logging.
// The navigation logic itself lives in the router, transition and
// presentation subpackages; the SDL window lives in sdlhost.
package gabanav

import (
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/constants"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/router"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// Options configures the navigator and the SDL host.
type Options struct {
	WindowTitle       string              // Window title displayed in windowed mode
	Fullscreen        bool                // Open fullscreen even outside dev mode defaults
	LogPath           string              // Full path for log file including filename (creates parent directories)
	LogLevel          string              // Application log level: debug, info, warn, error
	InitialPath       string              // Root of the history, "/" when empty
	DefaultTransition transition.Resolved // Transition for pushes that don't request one
	MinPanDistance    float64             // Distance a back gesture must travel to commit
	EdgeWidth         float64             // Width of the zone where edge drags may start
	TouchDevice       string              // Optional evdev touch device, e.g. /dev/input/event3
}

// DefaultOptions returns options with a slide transition and the default
// gesture thresholds.
func DefaultOptions() Options {
	return Options{
		WindowTitle: "gabanav",
		LogLevel:    "info",
		InitialPath: constants.DefaultInitialPath,
		DefaultTransition: transition.Resolved{
			Kind:     transition.SliderNav(true),
			Duration: constants.DefaultTransitionDuration,
			Curve:    transition.CurveEaseInOut,
		},
		MinPanDistance: constants.DefaultMinPanDistance,
		EdgeWidth:      constants.DefaultEdgeWidth,
	}
}

// Init configures logging. Call it before creating a navigator so the
// internal logger picks up the log path.
// If GABANAV_DEBUG is set, internal debug logging is enabled.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetRawLogLevel(options.LogLevel)
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// NewNavigator builds a navigator from the options.
func (o Options) NewNavigator() (*router.Navigator, error) {
	def := o.DefaultTransition
	nav, err := router.New(router.Options{
		InitialPath:       o.InitialPath,
		DefaultTransition: &def,
		MinPanDistance:    o.MinPanDistance,
	})
	if err != nil {
		return nil, NewConfigurationError("navigator", err)
	}
	return nav, nil
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
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

// SetInternalLogLevel sets the level of the navigation and presentation logs.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// Transition is shorthand for building a resolved transition.
func Transition(kind transition.Kind, duration time.Duration, curve transition.Curve) transition.Resolved {
	return transition.Resolved{Kind: kind, Duration: duration, Curve: curve}
}
