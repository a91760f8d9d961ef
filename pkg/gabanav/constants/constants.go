// Package constants defines shared constants and configuration defaults
// used throughout gabanav.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"   // DEV opens a decorated window instead of fullscreen
	DebugEnvVar        = "GABANAV_DEBUG" // any value enables internal debug logging
	WindowWidthEnvVar  = "WINDOW_WIDTH"  // window width in dev mode
	WindowHeightEnvVar = "WINDOW_HEIGHT" // window height in dev mode
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Navigation defaults.
const (
	DefaultInitialPath        = "/"
	DefaultTransitionDuration = 300 * time.Millisecond
	DefaultMinPanDistance     = 60.0 // pixels a back gesture must travel to commit
	DefaultEdgeWidth          = 24.0 // pixels from the edge where an edge drag may start
)
