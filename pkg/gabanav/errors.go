package gabanav

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoRoutes indicates a host was started without a route table.
	ErrNoRoutes = errors.New("no routes configured")

	// ErrUnrenderableContent indicates routed content the SDL host cannot draw.
	ErrUnrenderableContent = errors.New("content does not implement gabanav.Content")
)

// ConfigurationError reports configuration that cannot be turned into a
// working navigator, such as an unknown transition kind or a custom builder
// that was never registered. Transitions are resolved eagerly at startup, so
// these errors are fatal.
type ConfigurationError struct {
	Op  string // Setting or step that failed (e.g., "default_transition.kind")
	Err error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gabanav: config %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gabanav: config %s", e.Op)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// InfrastructureError represents a failure of the display layer itself
// (SDL could not start, a texture could not be created, etc.).
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_window", "render")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gabanav: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gabanav: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
