package bindings

import "errors"

// Config captures the parameters required to locate and bind the native
// brlapi library.
type Config struct {
	// Library is the logical library name (for example "brlapi") or an
	// explicit file name such as "libbrlapi.so.0.8".
	Library string

	// SearchPaths are probed in order before falling back to the platform
	// dynamic linker search path.
	SearchPaths []string

	// MajorSymbol, MinorSymbol and RevisionSymbol name the three exported
	// entry points. Each must have the C signature int32_t (*)(void).
	MajorSymbol    string
	MinorSymbol    string
	RevisionSymbol string
}

var (
	// ErrUnsupportedPlatform reports that runtime loading of shared
	// libraries is not available for the current GOOS.
	ErrUnsupportedPlatform = errors.New("brlapi/internal/bindings: native loading not supported on this platform")

	// ErrNoLibrary is returned when Config.Library is empty.
	ErrNoLibrary = errors.New("brlapi/internal/bindings: no library name configured")

	// ErrNoSymbol is returned when one of the entry point names is empty.
	ErrNoSymbol = errors.New("brlapi/internal/bindings: entry point name is empty")
)

// Library is a loaded native module with its three version entry points
// bound. It is never unloaded.
type Library struct {
	path string

	major    func() int32
	minor    func() int32
	revision func() int32
}

// Path returns the file name that was handed to the dynamic loader.
func (l *Library) Path() string { return l.path }

// MajorVersion calls the native major version entry point.
func (l *Library) MajorVersion() int32 { return l.major() }

// MinorVersion calls the native minor version entry point.
func (l *Library) MinorVersion() int32 { return l.minor() }

// Revision calls the native revision entry point.
func (l *Library) Revision() int32 { return l.revision() }
