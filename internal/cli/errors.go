package cli

import (
	"errors"
	"fmt"

	"github.com/a11y/brlapi-go/pkg/brlapi"
)

// ErrRequirementNotMet is wrapped by the error returned when the native
// library is older than --require.
var ErrRequirementNotMet = errors.New("native library too old")

// ErrInvalidOutputFormat is returned when an unsupported output format is specified.
func ErrInvalidOutputFormat(format string) error {
	return fmt.Errorf("invalid output format %q: must be one of: text, json", format)
}

// ErrInvalidRequirement is returned when --require does not parse as a version.
func ErrInvalidRequirement(value string, err error) error {
	return fmt.Errorf("invalid --require %q: %w", value, err)
}

func errTooOld(got, want brlapi.VersionIdentifier) error {
	return fmt.Errorf("%w: have %s, require at least %s", ErrRequirementNotMet, got, want)
}
