package swingnav

import (
	"errors"
	"fmt"
)

// Sentinel errors for navigation failures.
var (
	// ErrRouteNotFound indicates navigation or resolution was requested
	// for a path that was never registered. History and the frame are
	// left untouched.
	ErrRouteNotFound = errors.New("route not found")

	// ErrHistoryUnderflow indicates Back was called with fewer than two
	// history entries, so there is no previous screen to return to.
	ErrHistoryUnderflow = errors.New("history underflow: no previous screen")

	// ErrSurfaceNotConfigured indicates navigation was attempted before
	// a frame was set on the navigator.
	ErrSurfaceNotConfigured = errors.New("display surface not configured")
)

// ConstructionError reports that a route's screen could not be built:
// the factory returned an error, returned a nil screen, or the route
// cannot accept the argument groups it was given. These indicate a
// programmer error in the screen implementation and are never retried.
type ConstructionError struct {
	Path string // Route path whose factory failed
	Err  error  // Underlying error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("swingnav: constructing screen for %q: %v", e.Path, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// IsConstructionError checks if an error is a screen construction failure.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}

// IsRouteNotFound checks if an error indicates an unregistered path.
func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}
