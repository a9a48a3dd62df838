package brlapi

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is the wrapper version, populated at build time via
// -ldflags "-X github.com/a11y/brlapi-go/pkg/brlapi.Version=v1.2.3".
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this Go module build.
func WrapperVersion() string {
	return Version
}

// VersionIdentifier is the (major, minor, revision) triple reported by the
// native library. Ordering is provided for callers doing compatibility
// checks; the native side defines no ordering itself.
type VersionIdentifier struct {
	Major    int
	Minor    int
	Revision int
}

func (v VersionIdentifier) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Compare returns -1, 0 or +1 when v is older than, equal to or newer than o,
// comparing major, minor and revision in turn.
func (v VersionIdentifier) Compare(o VersionIdentifier) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Revision, o.Revision)
}

// AtLeast reports whether v is min or newer.
func (v VersionIdentifier) AtLeast(min VersionIdentifier) bool {
	return v.Compare(min) >= 0
}

// ParseVersion parses "major[.minor[.revision]]" with an optional leading
// "v". Missing components are zero. Pre-release and build suffixes are
// rejected.
func ParseVersion(s string) (VersionIdentifier, error) {
	s = strings.TrimSpace(s)
	sv := s
	if !strings.HasPrefix(sv, "v") {
		sv = "v" + sv
	}
	if !semver.IsValid(sv) || semver.Prerelease(sv) != "" || semver.Build(sv) != "" {
		return VersionIdentifier{}, fmt.Errorf("brlapi: invalid version %q", s)
	}
	parts := strings.Split(strings.TrimPrefix(semver.Canonical(sv), "v"), ".")
	var out [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return VersionIdentifier{}, fmt.Errorf("brlapi: invalid version %q: %w", s, err)
		}
		out[i] = n
	}
	return VersionIdentifier{Major: out[0], Minor: out[1], Revision: out[2]}, nil
}
