package brlapi

import (
	"errors"
	"fmt"

	"github.com/a11y/brlapi-go/internal/bindings"
)

var (
	// ErrUnavailable matches every error caused by the native library not
	// being loaded, including *LoadError and *UnavailableError.
	ErrUnavailable = errors.New("brlapi: native library unavailable")

	// ErrInvalidVersion is returned when the native library reports a
	// negative version component.
	ErrInvalidVersion = errors.New("brlapi: invalid native version component")

	// ErrUnsupportedPlatform reports that runtime loading of shared libraries
	// is not implemented for the current GOOS.
	ErrUnsupportedPlatform = bindings.ErrUnsupportedPlatform

	errNilNative = errors.New("brlapi: opener returned no native module")
)

// LoadError reports that the native library could not be located or
// initialized. Err carries the dynamic loader diagnostics.
type LoadError struct {
	Library string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("brlapi: load native library %q: %v", e.Library, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrUnavailable.
func (e *LoadError) Is(target error) bool { return target == ErrUnavailable }

// UnavailableError is returned by every query issued after the load failure
// was reported once. Loading is never retried.
type UnavailableError struct {
	Library string
	Cause   error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("brlapi: native library %q unavailable: %v", e.Library, e.Cause)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrUnavailable.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }
