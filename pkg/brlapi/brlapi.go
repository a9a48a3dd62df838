package brlapi

var (
	defaultLoader   = NewNativeLoader(ConfigFromEnv())
	defaultReporter = NewReporter(defaultLoader)
)

// The default library is loaded while the package initializes so that a
// broken installation surfaces before the first query.
func init() {
	defaultLoader.load()
}

// Load reports the outcome of loading the default native library.
func Load() error {
	return defaultLoader.EnsureLoaded()
}

// LoadState returns the state of the default loader.
func LoadState() State {
	return defaultLoader.State()
}

// MajorVersion returns the major version of the default native library.
func MajorVersion() (int, error) {
	return defaultReporter.MajorVersion()
}

// MinorVersion returns the minor version of the default native library.
func MinorVersion() (int, error) {
	return defaultReporter.MinorVersion()
}

// Revision returns the revision of the default native library.
func Revision() (int, error) {
	return defaultReporter.Revision()
}

// LibraryVersion reads the full version triple of the default native
// library.
func LibraryVersion() (VersionIdentifier, error) {
	return defaultReporter.Version()
}
