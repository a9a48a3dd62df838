package brlapi

import "fmt"

// Reporter exposes the version entry points of the module held by a Loader.
// Every call goes to the native side; nothing is cached.
type Reporter struct {
	loader *Loader
}

// NewReporter returns a Reporter backed by l.
func NewReporter(l *Loader) *Reporter {
	return &Reporter{loader: l}
}

// Loader returns the Loader backing r.
func (r *Reporter) Loader() *Loader { return r.loader }

// MajorVersion returns the major version reported by the native library.
func (r *Reporter) MajorVersion() (int, error) {
	return r.read("major", Native.MajorVersion)
}

// MinorVersion returns the minor version reported by the native library.
func (r *Reporter) MinorVersion() (int, error) {
	return r.read("minor", Native.MinorVersion)
}

// Revision returns the revision reported by the native library.
func (r *Reporter) Revision() (int, error) {
	return r.read("revision", Native.Revision)
}

// Version reads the three components in sequence. The reads are separate
// native calls, not one atomic snapshot.
func (r *Reporter) Version() (VersionIdentifier, error) {
	var (
		v   VersionIdentifier
		err error
	)
	if v.Major, err = r.MajorVersion(); err != nil {
		return VersionIdentifier{}, err
	}
	if v.Minor, err = r.MinorVersion(); err != nil {
		return VersionIdentifier{}, err
	}
	if v.Revision, err = r.Revision(); err != nil {
		return VersionIdentifier{}, err
	}
	return v, nil
}

func (r *Reporter) read(component string, get func(Native) int32) (int, error) {
	n, err := r.loader.acquire()
	if err != nil {
		return 0, err
	}
	v := get(n)
	if v < 0 {
		return 0, fmt.Errorf("%w: %s = %d", ErrInvalidVersion, component, v)
	}
	return int(v), nil
}
